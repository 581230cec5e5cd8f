package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Dispatcher metrics
	RequestsTotal  *prometheus.CounterVec
	RequestLatency *prometheus.HistogramVec

	// Triage metrics
	TriageBatchSize prometheus.Histogram

	// Supply metrics
	ReordersTotal     *prometheus.CounterVec
	InventoryQuantity *prometheus.GaugeVec

	// Patient registry metrics
	PatientsRegistered prometheus.Gauge

	// Event publishing metrics
	EventsPublished *prometheus.CounterVec
	EventsFailed    *prometheus.CounterVec
}

// New creates and registers all application metrics on the given registerer.
// Tests pass a fresh prometheus.NewRegistry to avoid duplicate registration.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of coordination requests by intent and outcome",
		}, []string{"intent", "outcome"}),
		RequestLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Time spent handling coordination requests",
			Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
		}, []string{"intent"}),
		TriageBatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "triage_batch_size",
			Help:      "Number of patients per triage request",
			Buckets:   []float64{1, 2, 5, 10, 25, 50, 100},
		}),
		ReordersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "supply_reorders_total",
			Help:      "Total number of supply reorders placed",
		}, []string{"item"}),
		InventoryQuantity: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "inventory_quantity",
			Help:      "Current inventory quantity by item",
		}, []string{"item"}),
		PatientsRegistered: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "patients_registered",
			Help:      "Current number of patient records",
		}),
		EventsPublished: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_published_total",
			Help:      "Total number of lifecycle events published",
		}, []string{"event_type"}),
		EventsFailed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_failed_total",
			Help:      "Total number of lifecycle events that failed to publish",
		}, []string{"event_type"}),
	}
}
