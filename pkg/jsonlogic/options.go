package jsonlogic

import (
	"log/slog"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/observability"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for operator and apply records.
// A nil logger disables logging. Default: nil.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics sets the recorder for apply counters and latency.
// Default: observability.NoopMetrics.
//
// Example:
//
//	engine := jsonlogic.New(jsonlogic.WithMetrics(observability.NewMetricsRecorder()))
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpanManager sets the span manager that wraps each Apply call.
// Default: observability.NoopSpanManager.
func WithSpanManager(sm observability.SpanManager) Option {
	return func(e *Engine) {
		if sm != nil {
			e.spans = sm
		}
	}
}

// WithOperation registers a custom operator at construction time.
// It is equivalent to calling AddOperation after New.
func WithOperation(name string, fn Operation) Option {
	return func(e *Engine) {
		e.pending = append(e.pending, namedOperation{name: name, fn: fn})
	}
}

// WithSafeMode sets the default evaluation mode for Apply.
// Default: true, failures become false.
func WithSafeMode(safe bool) Option {
	return func(e *Engine) {
		e.safe = safe
	}
}

// applyConfig holds per-call settings for Apply.
type applyConfig struct {
	safe bool
}

// ApplyOption overrides engine defaults for a single Apply call.
type ApplyOption func(*applyConfig)

// Strict propagates evaluation failures to the caller.
func Strict() ApplyOption {
	return func(c *applyConfig) {
		c.safe = false
	}
}

// Safe converts any evaluation failure into false.
func Safe() ApplyOption {
	return func(c *applyConfig) {
		c.safe = true
	}
}

type namedOperation struct {
	name string
	fn   Operation
}
