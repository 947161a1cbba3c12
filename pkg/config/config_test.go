package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Env != AppEnvDev || !cfg.App.IsDev() {
		t.Fatalf("expected dev environment by default, got %q", cfg.App.Env)
	}
	if cfg.API.BaseURL != "http://localhost:8080" {
		t.Fatalf("unexpected default base url %q", cfg.API.BaseURL)
	}
	if cfg.API.SubmitTimeout != 5*time.Second {
		t.Fatalf("unexpected default submit timeout %s", cfg.API.SubmitTimeout)
	}
	if cfg.Session.Path == "" {
		t.Fatal("session path must have a default")
	}
	if cfg.DevServer.Port != "8080" {
		t.Fatalf("unexpected default port %q", cfg.DevServer.Port)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SHOPLITE_APP_ENV", "prod")
	t.Setenv("SHOPLITE_API_BASE_URL", "https://api.example.com")
	t.Setenv("SHOPLITE_API_SUBMIT_TIMEOUT", "750ms")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.App.IsProd() {
		t.Fatalf("expected prod environment, got %q", cfg.App.Env)
	}
	if cfg.API.BaseURL != "https://api.example.com" {
		t.Fatalf("unexpected base url %q", cfg.API.BaseURL)
	}
	if cfg.API.SubmitTimeout != 750*time.Millisecond {
		t.Fatalf("unexpected submit timeout %s", cfg.API.SubmitTimeout)
	}
}

func TestLoadRejectsMalformedBaseURL(t *testing.T) {
	t.Setenv("SHOPLITE_API_BASE_URL", "localhost:8080")

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for a base url without a scheme")
	}
}
