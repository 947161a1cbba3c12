package flow

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/multierr"

	"github.com/shoplite/storefront/internal/cart"
	"github.com/shoplite/storefront/internal/payment"
	"github.com/shoplite/storefront/internal/session"
	"github.com/shoplite/storefront/pkg/config"
	"github.com/shoplite/storefront/pkg/logger"
	"github.com/shoplite/storefront/pkg/metrics"
)

// Engine wires the full storefront flow from configuration: durable
// session store, cart sync client, order submitter, and the wizard
// controller on top.
type Engine struct {
	Sessions   *session.Store
	Cart       *cart.Client
	Controller *Controller
	Metrics    *metrics.FlowMetrics

	closers []io.Closer
}

// NewEngine boots the flow engine. Registering metrics is optional; pass
// a nil registerer to run without counters.
func NewEngine(cfg *config.Config, logg *logger.Logger, reg prometheus.Registerer) (*Engine, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger is required")
	}

	sessions, err := session.Open(cfg.Session.Path)
	if err != nil {
		return nil, err
	}

	flowMetrics := metrics.NewFlowMetrics(reg)

	cartClient, err := cart.NewClient(cfg.API.BaseURL, sessions, logg, cart.WithMetrics(flowMetrics))
	if err != nil {
		sessions.Close()
		return nil, err
	}

	submitter, err := payment.NewSubmitter(payment.SubmitterParams{
		BaseURL: cfg.API.BaseURL,
		Tokens:  sessions,
		Cart:    cartClient,
		Logger:  logg,
		Metrics: flowMetrics,
		Timeout: cfg.API.SubmitTimeout,
	})
	if err != nil {
		sessions.Close()
		return nil, err
	}

	return &Engine{
		Sessions:   sessions,
		Cart:       cartClient,
		Controller: NewController(cartClient, submitter),
		Metrics:    flowMetrics,
		closers:    []io.Closer{sessions},
	}, nil
}

// Close releases everything the engine owns.
func (e *Engine) Close() error {
	var err error
	for _, closer := range e.closers {
		err = multierr.Append(err, closer.Close())
	}
	return err
}
