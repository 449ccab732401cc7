package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for punch registration and compliance
// evaluation. A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Registration results by register type and result
	PunchesRegistered *prometheus.CounterVec

	// Compliance outcomes by register type and status
	ComplianceOutcome *prometheus.CounterVec

	// Review notifications created
	ReviewNotifications prometheus.Counter

	// Duration of a single compliance evaluation
	EvaluateLatency prometheus.Histogram

	// Punches picked up by the retry job
	PendingEvaluations prometheus.Counter
}

// New registers all metrics with reg. Passing prometheus.DefaultRegisterer
// exposes them on the default /metrics handler.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		PunchesRegistered: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pontolegal_punches_registered_total",
			Help: "Punch registration attempts by register type and result",
		}, []string{"register_type", "result"}), // result: "created", "duplicate", "invalid", "error"

		ComplianceOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pontolegal_compliance_outcomes_total",
			Help: "Compliance evaluation outcomes by register type and status",
		}, []string{"register_type", "status"}),

		ReviewNotifications: factory.NewCounter(prometheus.CounterOpts{
			Name: "pontolegal_review_notifications_total",
			Help: "Review notifications created for out-of-tolerance punches",
		}),

		EvaluateLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pontolegal_compliance_evaluate_duration_seconds",
			Help:    "Duration of compliance evaluation including schedule lookup and persistence",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),

		PendingEvaluations: factory.NewCounter(prometheus.CounterOpts{
			Name: "pontolegal_compliance_retried_total",
			Help: "Punches re-evaluated by the compliance retry job",
		}),
	}
}

// IncrementRegistered records one registration attempt.
func (m *Metrics) IncrementRegistered(registerType, result string) {
	if m != nil {
		m.PunchesRegistered.WithLabelValues(registerType, result).Inc()
	}
}

// IncrementOutcome records a compliance outcome.
func (m *Metrics) IncrementOutcome(registerType, status string) {
	if m != nil {
		m.ComplianceOutcome.WithLabelValues(registerType, status).Inc()
	}
}

// IncrementReviewNotifications records a created review notification.
func (m *Metrics) IncrementReviewNotifications() {
	if m != nil {
		m.ReviewNotifications.Inc()
	}
}

// ObserveEvaluateLatency records the duration of one evaluation.
func (m *Metrics) ObserveEvaluateLatency(d time.Duration) {
	if m != nil {
		m.EvaluateLatency.Observe(d.Seconds())
	}
}

// AddRetried records punches re-evaluated by the retry job.
func (m *Metrics) AddRetried(n int) {
	if m != nil {
		m.PendingEvaluations.Add(float64(n))
	}
}
