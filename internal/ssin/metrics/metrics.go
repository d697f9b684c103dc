package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for SSIN validation.
type Metrics struct {
	// Outcomes by result and encoding kind
	ValidationOutcome *prometheus.CounterVec

	// Which check rejected a number that parsed
	CheckFailures *prometheus.CounterVec

	// Batch sizes as received
	BatchSize prometheus.Histogram

	// Full batch validation latency
	BatchLatency prometheus.Histogram
}

// New creates the SSIN validation metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ValidationOutcome: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ssin_validations_total",
			Help: "Total SSIN validations by result and kind",
		}, []string{"result", "kind"}), // result: "valid", "invalid", "malformed"

		CheckFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "ssin_check_failures_total",
			Help: "Failed SSIN checks by check name",
		}, []string{"check"}), // check: "date", "index", "control"

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssin_batch_size",
			Help:    "Number of SSINs per batch validation request",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		}),

		BatchLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "ssin_batch_duration_seconds",
			Help:    "Duration of batch SSIN validation",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
	}
}

// IncrementOutcome records a validation outcome.
func (m *Metrics) IncrementOutcome(result, kind string) {
	if m != nil {
		m.ValidationOutcome.WithLabelValues(result, kind).Inc()
	}
}

// IncrementCheckFailure records a failed check.
func (m *Metrics) IncrementCheckFailure(check string) {
	if m != nil {
		m.CheckFailures.WithLabelValues(check).Inc()
	}
}

// ObserveBatch records a batch size and its total duration.
func (m *Metrics) ObserveBatch(size int, d time.Duration) {
	if m != nil {
		m.BatchSize.Observe(float64(size))
		m.BatchLatency.Observe(d.Seconds())
	}
}
