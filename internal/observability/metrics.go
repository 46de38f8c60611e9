package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "stormwater"

// Metrics holds the Prometheus counters, histograms, and gauges for the assessment service.
type Metrics struct {
	EntriesSaved   *prometheus.CounterVec // labels: feature
	EntriesDeleted prometheus.Counter

	ConditionsAdded    prometheus.Counter
	ConditionsRejected prometheus.Counter

	IndicatorEvaluations *prometheus.CounterVec // labels: indicator, outcome={calculated,not_calculated}
	Simulations          prometheus.Counter
	ReportsGenerated     *prometheus.CounterVec // labels: format={text,pdf}

	// Session metrics.
	SessionsActive  prometheus.Gauge
	SessionsEvicted *prometheus.CounterVec // labels: reason={capacity,idle}

	RequestDuration *prometheus.HistogramVec // labels: route
}

// NewMetrics creates and registers all service metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()

	prometheus.MustRegister(
		m.EntriesSaved,
		m.EntriesDeleted,
		m.ConditionsAdded,
		m.ConditionsRejected,
		m.IndicatorEvaluations,
		m.Simulations,
		m.ReportsGenerated,
		m.SessionsActive,
		m.SessionsEvicted,
		m.RequestDuration,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		EntriesSaved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_saved_total",
			Help:      "Feature entries saved, by feature key.",
		}, []string{"feature"}),
		EntriesDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_deleted_total",
			Help:      "Saved feature entries deleted.",
		}),
		ConditionsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conditions_added_total",
			Help:      "Condition items added to a rating list.",
		}),
		ConditionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conditions_rejected_total",
			Help:      "Condition additions rejected as duplicates.",
		}),
		IndicatorEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "indicator_evaluations_total",
			Help:      "Reactive indicator evaluations by indicator and outcome.",
		}, []string{"indicator", "outcome"}),
		Simulations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Hydrological performance simulations run.",
		}),
		ReportsGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reports_generated_total",
			Help:      "Reports generated by format.",
		}, []string{"format"}),
		SessionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Sessions currently held in memory.",
		}),
		SessionsEvicted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_evicted_total",
			Help:      "Sessions dropped, by reason.",
		}, []string{"reason"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration by route pattern.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"route"}),
	}
}
