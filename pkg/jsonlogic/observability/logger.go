// Package observability provides logging, metrics and tracing hooks
// for jsonlogic engines.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"context"
	"log/slog"
	"time"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// EnrichLogger adds the engine id to a logger.
func EnrichLogger(logger *slog.Logger, engineID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("engine_id", engineID))
}

// LogOperator logs a single operator application at debug level.
// The result is only rendered when debug logging is enabled.
func LogOperator(logger *slog.Logger, operator string, args value.List, result value.Value) {
	if logger == nil || !logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	logger.Debug("operator applied",
		slog.String("operator", operator),
		slog.String("args", value.Text(args)),
		slog.String("result", value.Text(result)),
	)
}

// LogApplyComplete logs a finished evaluation.
func LogApplyComplete(logger *slog.Logger, operator string, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("rule applied",
		slog.String("operator", operator),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogApplyError logs an evaluation failure returned to a strict-mode caller.
func LogApplyError(logger *slog.Logger, operator string, err error) {
	if logger == nil {
		return
	}
	logger.Error("rule failed",
		slog.String("operator", operator),
		slog.String("error", err.Error()),
	)
}

// LogSafeFallback logs a failure that safe mode replaced with false.
func LogSafeFallback(logger *slog.Logger, operator string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("rule failed, returning false",
		slog.String("operator", operator),
		slog.String("error", err.Error()),
	)
}

// LogValue emits a value on behalf of the log operator.
func LogValue(logger *slog.Logger, v value.Value) {
	if logger == nil {
		return
	}
	logger.Info("log", slog.String("value", value.Text(v)))
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... evaluate ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
