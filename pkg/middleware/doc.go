// Package middleware provides production-grade observers for Vango sessions
// and registration contexts.
//
// This package includes:
//   - OpenTelemetry flush span annotation
//   - Prometheus metrics for sessions and registration stores
//
// # OpenTelemetry
//
// Sessions trace every flush with their configured tracer. The Tracing
// observer adds custom attributes and a slow-flush event to those spans:
//
//	tracing := middleware.OpenTelemetry(
//	    middleware.WithTracerName("my-app"),
//	    middleware.WithAttributeExtractor(func(id string, s server.FlushStats) []attribute.KeyValue {
//	        return []attribute.KeyValue{attribute.Int("app.renders", s.Renders)}
//	    }),
//	)
//
// # Prometheus Metrics
//
// The Metrics observer implements both server.Observer and
// registration.Observer:
//   - vango_registrations_total: store writes by context and op
//   - vango_registrants: live registrants by context
//   - vango_flush_duration_seconds: flush duration histogram
//   - vango_mounted_components: mounted component instances
//
//	metrics := middleware.Prometheus()
//	cfg := server.DefaultSessionConfig()
//	cfg.Observer = server.Observers(tracing, metrics)
//
//	var TOC = registration.Create(
//	    registration.WithName[Heading]("toc"),
//	    registration.WithObserver[Heading](metrics),
//	)
package middleware
