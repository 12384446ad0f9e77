package middleware

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/regctx/pkg/server"
)

// Default tracer name for Vango applications.
const defaultTracerName = server.DefaultTracerName

// OTelConfig configures the OpenTelemetry observer.
type OTelConfig struct {
	// TracerName is the name of the tracer (default: "vango").
	TracerName string

	// SlowFlush is the duration above which a "vango.flush.slow" event is
	// added to the flush span. Zero disables the event.
	SlowFlush time.Duration

	// Filter determines which flushes are annotated.
	// Return true to annotate the flush, false to skip.
	// If nil, all flushes are annotated.
	Filter func(sessionID string, stats server.FlushStats) bool

	// AttributeExtractor extracts custom attributes for a flush.
	AttributeExtractor func(sessionID string, stats server.FlushStats) []attribute.KeyValue
}

// OTelOption configures the OpenTelemetry observer.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithSlowFlush sets the slow flush threshold.
func WithSlowFlush(d time.Duration) OTelOption {
	return func(c *OTelConfig) {
		c.SlowFlush = d
	}
}

// WithFlushFilter sets a filter function for flushes.
func WithFlushFilter(filter func(sessionID string, stats server.FlushStats) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

// WithAttributeExtractor sets a custom attribute extractor.
func WithAttributeExtractor(extractor func(sessionID string, stats server.FlushStats) []attribute.KeyValue) OTelOption {
	return func(c *OTelConfig) {
		c.AttributeExtractor = extractor
	}
}

// defaultOTelConfig returns the default OpenTelemetry configuration.
func defaultOTelConfig() OTelConfig {
	return OTelConfig{
		TracerName: defaultTracerName,
		SlowFlush:  100 * time.Millisecond,
	}
}

// Tracing annotates the session's flush spans.
// Sessions start one span per flush with their SessionConfig.Tracer; Tracing
// adds the configured attributes and events to that span.
type Tracing struct {
	config OTelConfig
	tracer trace.Tracer
}

var _ server.Observer = (*Tracing)(nil)

// OpenTelemetry creates a tracing observer.
//
// Example:
//
//	tracing := middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	    middleware.WithSlowFlush(50*time.Millisecond),
//	)
//	cfg := server.DefaultSessionConfig()
//	cfg.Tracer = tracing.Tracer()
//	cfg.Observer = server.Observers(tracing, middleware.Prometheus())
//
// The tracer uses the global OpenTelemetry tracer provider. Configure it
// in your main() before creating sessions:
//
//	otel.SetTracerProvider(tp)
func OpenTelemetry(opts ...OTelOption) *Tracing {
	config := defaultOTelConfig()
	for _, opt := range opts {
		opt(&config)
	}

	return &Tracing{
		config: config,
		tracer: otel.Tracer(config.TracerName),
	}
}

// Tracer returns the tracer resolved from the global provider.
func (t *Tracing) Tracer() trace.Tracer {
	return t.tracer
}

// OnFlush implements server.Observer. ctx carries the flush span.
func (t *Tracing) OnFlush(ctx context.Context, sessionID string, stats server.FlushStats) {
	if t.config.Filter != nil && !t.config.Filter(sessionID, stats) {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.Int64("vango.flush.duration_us", stats.Duration.Microseconds()),
	}
	if t.config.AttributeExtractor != nil {
		attrs = append(attrs, t.config.AttributeExtractor(sessionID, stats)...)
	}
	span.SetAttributes(attrs...)

	if t.config.SlowFlush > 0 && stats.Duration > t.config.SlowFlush {
		span.AddEvent("vango.flush.slow", trace.WithAttributes(
			attribute.String("vango.session_id", sessionID),
			attribute.Int("vango.flush.passes", stats.Passes),
		))
	}
}

// OnMount implements server.Observer.
func (t *Tracing) OnMount(string, *server.ComponentInstance) {}

// OnUnmount implements server.Observer.
func (t *Tracing) OnUnmount(string, *server.ComponentInstance) {}
