package ensemble

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the chain driver's prometheus collectors. Build one set per
// registerer; a nil registerer leaves them unregistered.
type Metrics struct {
	Steps    prometheus.Counter
	Failures prometheus.Counter
	Duration prometheus.Histogram
	Length   prometheus.Gauge
}

// NewMetrics creates and registers the collectors with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Steps: factory.NewCounter(prometheus.CounterOpts{
			Name: "supervillain_steps_total",
			Help: "Total number of Markov chain steps taken",
		}),
		Failures: factory.NewCounter(prometheus.CounterOpts{
			Name: "supervillain_step_failures_total",
			Help: "Number of steps that returned an error",
		}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "supervillain_step_duration_seconds",
			Help:    "Wall time of one Markov chain step",
			Buckets: prometheus.ExponentialBuckets(1e-5, 4, 10),
		}),
		Length: factory.NewGauge(prometheus.GaugeOpts{
			Name: "supervillain_chain_length",
			Help: "Number of configurations in the most recently driven ensemble",
		}),
	}
}

func (m *Metrics) step(elapsed time.Duration) {
	if m == nil {
		return
	}
	m.Steps.Inc()
	m.Duration.Observe(elapsed.Seconds())
}

func (m *Metrics) failure() {
	if m == nil {
		return
	}
	m.Failures.Inc()
}

func (m *Metrics) length(n int) {
	if m == nil {
		return
	}
	m.Length.Set(float64(n))
}
