package gallery

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the gallery's Prometheus metrics.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vellum").
	Namespace string

	// Subsystem is the metrics subsystem (default: "gallery").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for decode duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the gallery metrics.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) { c.Namespace = namespace }
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) { c.ConstLabels = labels }
}

// WithBuckets sets the histogram buckets for decode duration.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) { c.Buckets = buckets }
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) { c.Registry = registry }
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vellum",
		Subsystem: "gallery",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the gallery server's Prometheus collectors.
type Metrics struct {
	documentsServed *prometheus.CounterVec
	decodeDuration  *prometheus.HistogramVec
	decodeErrors    *prometheus.CounterVec
	liveClients     prometheus.Gauge
}

// NewMetrics registers and returns the gallery metrics.
func NewMetrics(opts ...MetricsOption) *Metrics {
	cfg := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	factory := promauto.With(cfg.Registry)
	return &Metrics{
		documentsServed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "documents_served_total",
			Help:        "Documents served, by name.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"document"}),
		decodeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "decode_duration_seconds",
			Help:        "Time spent validating and decoding documents.",
			ConstLabels: cfg.ConstLabels,
			Buckets:     cfg.Buckets,
		}, []string{"document"}),
		decodeErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "decode_errors_total",
			Help:        "Documents that failed to decode, by error kind.",
			ConstLabels: cfg.ConstLabels,
		}, []string{"kind"}),
		liveClients: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   cfg.Namespace,
			Subsystem:   cfg.Subsystem,
			Name:        "live_clients",
			Help:        "Connected live-reload websocket clients.",
			ConstLabels: cfg.ConstLabels,
		}),
	}
}

func (m *Metrics) observeDecode(document string, d time.Duration) {
	if m == nil {
		return
	}
	m.documentsServed.WithLabelValues(document).Inc()
	m.decodeDuration.WithLabelValues(document).Observe(d.Seconds())
}

func (m *Metrics) decodeError(kind string) {
	if m == nil {
		return
	}
	m.decodeErrors.WithLabelValues(kind).Inc()
}

func (m *Metrics) clientConnected(delta float64) {
	if m == nil {
		return
	}
	m.liveClients.Add(delta)
}
