package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// FlowMetrics records cart synchronization and order submission outcomes.
type FlowMetrics struct {
	syncFailure *prometheus.CounterVec
	submission  *prometheus.CounterVec
}

// NewFlowMetrics registers the flow metrics on the provided registerer.
func NewFlowMetrics(reg prometheus.Registerer) *FlowMetrics {
	if reg == nil {
		return &FlowMetrics{}
	}
	syncFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cart_sync_failure",
		Help: "Cart synchronization calls that failed and were absorbed.",
	}, []string{"op"})
	submission := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "order_submission",
		Help: "Order submissions by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(syncFailure, submission)
	return &FlowMetrics{
		syncFailure: syncFailure,
		submission:  submission,
	}
}

// IncSyncFailure increments the absorbed-failure counter for the cart op.
func (f *FlowMetrics) IncSyncFailure(op string) {
	if f == nil || f.syncFailure == nil {
		return
	}
	f.syncFailure.WithLabelValues(normalizeLabel(op)).Inc()
}

// IncSubmission increments the submission counter for the outcome.
func (f *FlowMetrics) IncSubmission(outcome string) {
	if f == nil || f.submission == nil {
		return
	}
	f.submission.WithLabelValues(normalizeLabel(outcome)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
