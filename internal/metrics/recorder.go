// Package metrics records how each fetch tier behaved during a run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Outcome labels for tier results.
const (
	OutcomeSuccess = "success"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
)

const namespace = "ghheat"

// Recorder owns a private registry so nothing leaks into the default one.
type Recorder struct {
	registry *prometheus.Registry

	attempts *prometheus.CounterVec
	results  *prometheus.CounterVec
	duration *prometheus.HistogramVec
	records  *prometheus.GaugeVec
}

// NewRecorder creates and registers the fetch metrics.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "tier_attempts_total",
			Help:      "Number of times a fetch tier was attempted.",
		}, []string{"tier"}),
		results: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "tier_results_total",
			Help:      "Fetch tier results by outcome.",
		}, []string{"tier", "outcome"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "tier_duration_seconds",
			Help:      "Time spent in each fetch tier.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"tier"}),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "fetch",
			Name:      "records",
			Help:      "Number of daily records returned by the tier.",
		}, []string{"tier"}),
	}

	r.registry.MustRegister(r.attempts, r.results, r.duration, r.records)
	return r
}

// Skipped records a tier that was not attempted, e.g. for lack of a token.
func (r *Recorder) Skipped(tier string) {
	if r == nil {
		return
	}
	r.results.WithLabelValues(tier, OutcomeSkipped).Inc()
}

// Observe records one attempt of tier.
func (r *Recorder) Observe(tier, outcome string, elapsed time.Duration, records int) {
	if r == nil {
		return
	}
	r.attempts.WithLabelValues(tier).Inc()
	r.results.WithLabelValues(tier, outcome).Inc()
	r.duration.WithLabelValues(tier).Observe(elapsed.Seconds())
	r.records.WithLabelValues(tier).Set(float64(records))
}

// ResultCount returns how many times tier finished with outcome.
func (r *Recorder) ResultCount(tier, outcome string) float64 {
	if r == nil {
		return 0
	}
	var m dto.Metric
	if err := r.results.WithLabelValues(tier, outcome).Write(&m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// Gatherer exposes the registry for export and tests.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes the metrics in the node-exporter textfile format.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
