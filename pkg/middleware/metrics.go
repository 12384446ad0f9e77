package middleware

import (
	"context"
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vango-dev/regctx/pkg/features/registration"
	"github.com/vango-dev/regctx/pkg/server"
)

// MetricsConfig configures the Prometheus metrics observer.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vango").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for flush duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus metrics observer.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the flush duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "vango",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Metrics records Prometheus metrics for sessions and registration stores.
// It implements both server.Observer and registration.Observer, so one value
// can be passed to SessionConfig.Observer and registration.WithObserver.
type Metrics struct {
	registrations *prometheus.CounterVec
	registrants   *prometheus.GaugeVec
	storeSize     *prometheus.HistogramVec
	flushes       *prometheus.CounterVec
	flushDuration prometheus.Histogram
	flushPasses   prometheus.Histogram
	flushErrors   *prometheus.CounterVec
	renders       prometheus.Counter
	effects       prometheus.Counter
	components    prometheus.Gauge
}

var (
	_ server.Observer       = (*Metrics)(nil)
	_ registration.Observer = (*Metrics)(nil)
)

// globalMetrics is the singleton created by the first call to Prometheus.
var (
	globalMetrics   *Metrics
	globalMetricsMu sync.Mutex
)

// NewMetrics creates and registers a Metrics. Registering twice with the same
// registry and namespace panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}
	return initMetrics(config)
}

// Prometheus returns the process-wide Metrics registered with the default
// registerer, creating it on first call. Options apply only to that first
// call.
//
// Metrics collected:
//   - vango_registrations_total: registration store writes by context and op
//   - vango_registrants: live registrants by context
//   - vango_registration_store_size: store size after each mutation
//   - vango_flushes_total: flushes by status
//   - vango_flush_duration_seconds: flush duration
//   - vango_flush_passes: render/commit passes per flush
//   - vango_flush_errors_total: failed flushes by error type
//   - vango_renders_total: component renders
//   - vango_effects_total: effect runs
//   - vango_mounted_components: mounted component instances
//
// Example:
//
//	metrics := middleware.Prometheus()
//	var Headings = registration.Create(registration.WithObserver[Heading](metrics))
//	sess := server.NewSession(root, &server.SessionConfig{Observer: metrics})
func Prometheus(opts ...MetricsOption) *Metrics {
	globalMetricsMu.Lock()
	defer globalMetricsMu.Unlock()

	if globalMetrics == nil {
		globalMetrics = NewMetrics(opts...)
	}
	return globalMetrics
}

// initMetrics initializes the Prometheus metrics.
func initMetrics(config MetricsConfig) *Metrics {
	factory := promauto.With(config.Registry)

	return &Metrics{
		registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registrations_total",
			Help:        "Total registration store writes by operation",
			ConstLabels: config.ConstLabels,
		}, []string{"context", "op"}),

		registrants: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registrants",
			Help:        "Number of live registrants across stores",
			ConstLabels: config.ConstLabels,
		}, []string{"context"}),

		storeSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "registration_store_size",
			Help:        "Registration store size observed after each mutation",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{0, 1, 2, 5, 10, 25, 50, 100, 250},
		}, []string{"context"}),

		flushes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flushes_total",
			Help:        "Total number of session flushes",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		flushDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_duration_seconds",
			Help:        "Session flush duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		flushPasses: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_passes",
			Help:        "Render/commit passes needed for a flush to settle",
			ConstLabels: config.ConstLabels,
			Buckets:     []float64{1, 2, 3, 5, 10, 25, 50, 100},
		}),

		flushErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "flush_errors_total",
			Help:        "Total number of failed flushes by error type",
			ConstLabels: config.ConstLabels,
		}, []string{"error_type"}),

		renders: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of component renders",
			ConstLabels: config.ConstLabels,
		}),

		effects: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "effects_total",
			Help:        "Total number of effect runs in commit phases",
			ConstLabels: config.ConstLabels,
		}),

		components: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "mounted_components",
			Help:        "Number of mounted component instances",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// OnFlush implements server.Observer.
func (m *Metrics) OnFlush(_ context.Context, _ string, stats server.FlushStats) {
	m.flushDuration.Observe(stats.Duration.Seconds())
	m.flushPasses.Observe(float64(stats.Passes))
	m.renders.Add(float64(stats.Renders))
	m.effects.Add(float64(stats.Effects))

	status := "success"
	if stats.Err != nil {
		status = "error"
		m.flushErrors.WithLabelValues(categorizeError(stats.Err)).Inc()
	}
	m.flushes.WithLabelValues(status).Inc()
}

// OnMount implements server.Observer.
func (m *Metrics) OnMount(string, *server.ComponentInstance) {
	m.components.Inc()
}

// OnUnmount implements server.Observer.
func (m *Metrics) OnUnmount(string, *server.ComponentInstance) {
	m.components.Dec()
}

// OnRegister implements registration.Observer.
func (m *Metrics) OnRegister(name string, _ registration.ID) {
	m.registrations.WithLabelValues(name, "register").Inc()
	m.registrants.WithLabelValues(name).Inc()
}

// OnUpdate implements registration.Observer.
func (m *Metrics) OnUpdate(name string, _ registration.ID) {
	m.registrations.WithLabelValues(name, "update").Inc()
}

// OnRemove implements registration.Observer.
func (m *Metrics) OnRemove(name string, _ registration.ID) {
	m.registrations.WithLabelValues(name, "remove").Inc()
	m.registrants.WithLabelValues(name).Dec()
}

// OnSize implements registration.Observer.
func (m *Metrics) OnSize(name string, size int) {
	m.storeSize.WithLabelValues(name).Observe(float64(size))
}

// categorizeError returns a low-cardinality label for a flush error.
func categorizeError(err error) string {
	switch {
	case errors.Is(err, server.ErrFlushLimit):
		return "flush_limit"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	case errors.Is(err, server.ErrSessionClosed):
		return "closed"
	default:
		return "internal"
	}
}
