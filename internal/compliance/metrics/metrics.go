package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks compliance gate activity.
type Metrics struct {
	Submissions       *prometheus.CounterVec
	EligibilityChecks *prometheus.CounterVec
	SubmitDuration    prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		Submissions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_submissions_total",
			Help: "Compliance proof submissions by outcome.",
		}, []string{"outcome"}),
		EligibilityChecks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "compliance_eligibility_checks_total",
			Help: "Eligibility checks by result.",
		}, []string{"result"}),
		SubmitDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "compliance_submit_duration_seconds",
			Help:    "Latency of proof verification and storage.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

func (m *Metrics) RecordSubmission(outcome string) {
	if m != nil {
		m.Submissions.WithLabelValues(outcome).Inc()
	}
}

func (m *Metrics) RecordEligibilityCheck(eligible bool) {
	if m == nil {
		return
	}
	result := "blocked"
	if eligible {
		result = "eligible"
	}
	m.EligibilityChecks.WithLabelValues(result).Inc()
}

func (m *Metrics) ObserveSubmit(d time.Duration) {
	if m != nil {
		m.SubmitDuration.Observe(d.Seconds())
	}
}
