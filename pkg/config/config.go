package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "shoplite"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App       AppConfig
	API       APIConfig
	Session   SessionConfig
	DevServer DevServerConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.API.validateBaseURL(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SHOPLITE_APP_ENV" default:"dev"`
	LogLevel     string `envconfig:"SHOPLITE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SHOPLITE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// APIConfig points the engine at the storefront backend. SubmitTimeout
// bounds only the final order submission; cart mutations run without a
// per-call deadline.
type APIConfig struct {
	BaseURL       string        `envconfig:"SHOPLITE_API_BASE_URL" default:"http://localhost:8080"`
	SubmitTimeout time.Duration `envconfig:"SHOPLITE_API_SUBMIT_TIMEOUT" default:"5s"`
}

func (a APIConfig) validateBaseURL() error {
	parsed, err := url.Parse(strings.TrimSpace(a.BaseURL))
	if err != nil {
		return fmt.Errorf("invalid api base url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("api base url must include scheme and host, got %q", a.BaseURL)
	}
	return nil
}

// SessionConfig locates the durable session store on disk.
type SessionConfig struct {
	Path string `envconfig:"SHOPLITE_SESSION_PATH" default:"shoplite-session.db"`
}

type DevServerConfig struct {
	Port           string   `envconfig:"SHOPLITE_DEVSERVER_PORT" default:"8080"`
	AllowedOrigins []string `envconfig:"SHOPLITE_DEVSERVER_ALLOWED_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
}
