package driver

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports grow-loop progress to Prometheus. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	size       prometheus.Gauge
	steps      prometheus.Counter
	extensions prometheus.Counter
	failures   prometheus.Counter
	iterations prometheus.Histogram
}

// NewMetrics registers the squaresum collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		size: f.NewGauge(prometheus.GaugeOpts{
			Name: "squaresum_cycle_size",
			Help: "Number of vertices of the current Hamiltonian cycle.",
		}),
		steps: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_perturbation_steps_total",
			Help: "Perturbation steps spent closing extended paths.",
		}),
		extensions: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_extensions_total",
			Help: "Successful one-vertex extensions.",
		}),
		failures: f.NewCounter(prometheus.CounterOpts{
			Name: "squaresum_closure_failures_total",
			Help: "Paths that exhausted the attempt cap without closing.",
		}),
		iterations: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "squaresum_close_iterations",
			Help:    "Perturbation steps needed per closed cycle.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 14),
		}),
	}
}

func (m *Metrics) setSize(n int) {
	if m == nil {
		return
	}
	m.size.Set(float64(n))
}

func (m *Metrics) closed(n, iterations int) {
	if m == nil {
		return
	}
	m.size.Set(float64(n))
	m.extensions.Inc()
	m.steps.Add(float64(iterations))
	m.iterations.Observe(float64(iterations))
}

func (m *Metrics) closureFailed(iterations int) {
	if m == nil {
		return
	}
	m.steps.Add(float64(iterations))
	m.failures.Inc()
}
