package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the fund registry.
type Metrics struct {
	FundsCreated      prometheus.Counter
	StatusChanges     prometheus.Counter
	CreateDuration    prometheus.Histogram
	AuthFailures      prometheus.Counter
}

// New creates a new Metrics instance with all fund registry metrics registered.
func New() *Metrics {
	return &Metrics{
		FundsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundcore_funds_created_total",
			Help: "Total number of funds registered",
		}),
		StatusChanges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundcore_fund_status_changes_total",
			Help: "Total number of fund active-flag changes",
		}),
		CreateDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "fundcore_fund_create_duration_seconds",
			Help:    "Duration of fund creation operations",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		AuthFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fundcore_fund_auth_failures_total",
			Help: "Total number of rejected non-manager status updates",
		}),
	}
}

// IncrementFundsCreated records a successful fund registration.
func (m *Metrics) IncrementFundsCreated() {
	if m != nil {
		m.FundsCreated.Inc()
	}
}

// IncrementStatusChanges records a successful active-flag change.
func (m *Metrics) IncrementStatusChanges() {
	if m != nil {
		m.StatusChanges.Inc()
	}
}

// IncrementAuthFailures records a rejected status update.
func (m *Metrics) IncrementAuthFailures() {
	if m != nil {
		m.AuthFailures.Inc()
	}
}

// ObserveCreate records the duration of a fund creation.
func (m *Metrics) ObserveCreate(start time.Time) {
	if m != nil {
		m.CreateDuration.Observe(time.Since(start).Seconds())
	}
}
