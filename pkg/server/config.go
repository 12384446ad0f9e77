package server

import (
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// DefaultTracerName is the tracer used when SessionConfig.Tracer is nil.
const DefaultTracerName = "vango"

// SessionConfig holds configuration for a session.
type SessionConfig struct {
	// MaxFlushPasses bounds the render/commit passes of a single Flush.
	// Default: 100.
	MaxFlushPasses int

	// Logger receives session logs. Default: slog.Default().
	Logger *slog.Logger

	// Tracer records one span per flush.
	// Default: the global OpenTelemetry provider's "vango" tracer.
	Tracer trace.Tracer

	// Observer is notified of flushes, mounts and unmounts. Default: none.
	Observer Observer
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		MaxFlushPasses: 100,
		Logger:         slog.Default(),
		Tracer:         otel.Tracer(DefaultTracerName),
		Observer:       NopObserver{},
	}
}

// Clone returns a copy of the SessionConfig.
func (c *SessionConfig) Clone() *SessionConfig {
	if c == nil {
		return nil
	}
	clone := *c
	return &clone
}

// withDefaults fills zero fields from DefaultSessionConfig.
func (c *SessionConfig) withDefaults() *SessionConfig {
	def := DefaultSessionConfig()
	if c == nil {
		return def
	}
	out := c.Clone()
	if out.MaxFlushPasses <= 0 {
		out.MaxFlushPasses = def.MaxFlushPasses
	}
	if out.Logger == nil {
		out.Logger = def.Logger
	}
	if out.Tracer == nil {
		out.Tracer = def.Tracer
	}
	if out.Observer == nil {
		out.Observer = def.Observer
	}
	return out
}
