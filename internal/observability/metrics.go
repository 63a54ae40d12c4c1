package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "fan_globe"

// Metrics holds the Prometheus collectors for the signup pipeline.
type Metrics struct {
	// Geocoding metrics.
	GeocodeLookups        *prometheus.CounterVec // labels: source={seed,cache,remote}, outcome={hit,not_found,error}
	GeocodeRemoteDuration prometheus.Histogram

	// Signup metrics.
	Submissions *prometheus.CounterVec // labels: outcome={pinned,invalid,unresolved,rejected,failed}
	Pins        prometheus.Gauge
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.GeocodeLookups,
		m.GeocodeRemoteDuration,
		m.Submissions,
		m.Pins,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registering them, so tests can
// build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		GeocodeLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_lookups_total",
			Help:      "ZIP resolutions by source and outcome.",
		}, []string{"source", "outcome"}),
		GeocodeRemoteDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "geocode_remote_duration_seconds",
			Help:      "Remote ZIP lookup duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Signup attempts by outcome.",
		}, []string{"outcome"}),
		Pins: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pins",
			Help:      "Number of pins currently stored.",
		}),
	}
}
