package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for a report run.
type Metrics struct {
	RecordsGenerated prometheus.Counter
	ExportsWritten   prometheus.Counter
	ChartsRendered   prometheus.Counter
	RunActive        prometheus.Gauge

	StageDuration *prometheus.HistogramVec // labels: stage={generate,export,report,chart}
}

// NewMetrics creates and registers all run metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "earth_report",
			Name:      "records_generated_total",
			Help:      "Total yearly records synthesized.",
		}),
		ExportsWritten: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "earth_report",
			Name:      "exports_written_total",
			Help:      "Total CSV exports written.",
		}),
		ChartsRendered: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "earth_report",
			Name:      "charts_rendered_total",
			Help:      "Total chart images rendered.",
		}),
		RunActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "earth_report",
			Name:      "run_active",
			Help:      "1 while a report run is in progress, 0 otherwise.",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "earth_report",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each run stage.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2.5, 5},
		}, []string{"stage"}),
	}

	prometheus.MustRegister(
		m.RecordsGenerated,
		m.ExportsWritten,
		m.ChartsRendered,
		m.RunActive,
		m.StageDuration,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsGenerated: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "earth_report", Name: "records_generated_total"}),
		ExportsWritten:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "earth_report", Name: "exports_written_total"}),
		ChartsRendered:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "earth_report", Name: "charts_rendered_total"}),
		RunActive:        prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "earth_report", Name: "run_active"}),
		StageDuration:    prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "earth_report", Name: "stage_duration_seconds"}, []string{"stage"}),
	}
}
