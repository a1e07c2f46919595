package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for loading tables and
// rendering summaries.
type Metrics struct {
	RecordsLoaded prometheus.Counter
	RowsRejected  prometheus.Counter
	LoadErrors    *prometheus.CounterVec // labels: kind={io,parse}

	// Summary rendering.
	SummariesRendered *prometheus.CounterVec // labels: kind={overview,daily}
	SummaryErrors     *prometheus.CounterVec // labels: kind={overview,daily}
	RunDuration       prometheus.Histogram
}

func newMetrics() *Metrics {
	return &Metrics{
		RecordsLoaded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_summary",
			Name:      "records_loaded_total",
			Help:      "Total weather records read from input tables.",
		}),
		RowsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_summary",
			Name:      "rows_rejected_total",
			Help:      "Total malformed input rows that aborted a load.",
		}),
		LoadErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_summary",
			Name:      "load_errors_total",
			Help:      "Table load failures by kind.",
		}, []string{"kind"}),
		SummariesRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_summary",
			Name:      "summaries_rendered_total",
			Help:      "Summaries rendered by kind.",
		}, []string{"kind"}),
		SummaryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_summary",
			Name:      "summary_errors_total",
			Help:      "Summary rendering failures by kind.",
		}, []string{"kind"}),
		RunDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_summary",
			Name:      "run_duration_seconds",
			Help:      "Duration of a complete load-and-render run.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}),
	}
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.RecordsLoaded,
		m.RowsRejected,
		m.LoadErrors,
		m.SummariesRendered,
		m.SummaryErrors,
		m.RunDuration,
	}
}

// NewMetrics creates all metrics and registers them with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(m.collectors()...)
	return m
}

// NewMetricsWithRegistry registers the metrics with reg instead of the
// default registry. Tests use a fresh registry per case.
func NewMetricsWithRegistry(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(m.collectors()...)
	return m
}

// NewMetricsForTesting creates unregistered metrics, avoiding
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}
