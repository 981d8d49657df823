package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records jsonlogic metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordApply records one evaluation with its root operator, duration
	// and error status.
	RecordApply(ctx context.Context, operator string, duration time.Duration, err error)

	// RecordSafeFallback records an error that safe mode replaced with false.
	RecordSafeFallback(ctx context.Context, operator string)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	applies       metric.Int64Counter
	applyLatency  metric.Float64Histogram
	applyErrors   metric.Int64Counter
	safeFallbacks metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("jsonlogic")

	applies, err := meter.Int64Counter("jsonlogic.apply.count",
		metric.WithDescription("Number of rule evaluations"),
	)
	if err != nil {
		return nil, err
	}

	applyLatency, err := meter.Float64Histogram("jsonlogic.apply.latency_ms",
		metric.WithDescription("Rule evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	applyErrors, err := meter.Int64Counter("jsonlogic.apply.errors",
		metric.WithDescription("Number of failed rule evaluations"),
	)
	if err != nil {
		return nil, err
	}

	safeFallbacks, err := meter.Int64Counter("jsonlogic.apply.safe_fallbacks",
		metric.WithDescription("Number of failures replaced with false by safe mode"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		applies:       applies,
		applyLatency:  applyLatency,
		applyErrors:   applyErrors,
		safeFallbacks: safeFallbacks,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordApply records an evaluation.
func (m *otelMetrics) RecordApply(ctx context.Context, operator string, duration time.Duration, err error) {
	attrs := metric.WithAttributes(attribute.String("operator", operator))

	m.applies.Add(ctx, 1, attrs)
	m.applyLatency.Record(ctx, Milliseconds(duration), attrs)

	if err != nil {
		m.applyErrors.Add(ctx, 1, attrs)
	}
}

// RecordSafeFallback records a swallowed failure.
func (m *otelMetrics) RecordSafeFallback(ctx context.Context, operator string) {
	m.safeFallbacks.Add(ctx, 1, metric.WithAttributes(attribute.String("operator", operator)))
}
