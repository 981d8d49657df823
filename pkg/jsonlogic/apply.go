package jsonlogic

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/codec"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/config"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/observability"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/rulestore"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// Apply evaluates logic against data and returns the JSON encoded result.
//
// logic and data may be value.Value, JSON text (string, []byte or
// json.RawMessage) or plain Go values. Blank text is null and text that is
// not valid JSON is taken as a string literal.
//
// In safe mode, the engine default, any failure yields "false" and a nil
// error. Pass Strict() to receive the failure instead.
func (e *Engine) Apply(logic, data any, opts ...ApplyOption) (string, error) {
	return e.ApplyContext(context.Background(), logic, data, opts...)
}

// ApplyContext is Apply with a context for tracing and metrics.
// Evaluation itself never blocks and ignores cancellation.
func (e *Engine) ApplyContext(ctx context.Context, logic, data any, opts ...ApplyOption) (string, error) {
	cfg := e.applyConfig(opts)

	lv, err := toValue(logic)
	if err != nil {
		return e.inputFailure(cfg, fmt.Errorf("logic: %w", err))
	}
	dv, err := toValue(data)
	if err != nil {
		return e.inputFailure(cfg, fmt.Errorf("data: %w", err))
	}

	result, err := e.ApplyValue(ctx, lv, dv, opts...)
	if err != nil {
		return "", err
	}
	return codec.EncodeString(result), nil
}

// ApplyValue evaluates logic against data without any text conversion.
// It records a span and metrics and applies the evaluation mode.
func (e *Engine) ApplyValue(ctx context.Context, logic, data value.Value, opts ...ApplyOption) (value.Value, error) {
	cfg := e.applyConfig(opts)
	op := operatorName(logic)

	ctx, span := e.spans.StartApplySpan(ctx, op, cfg.safe)
	done := observability.TimedOperation()

	result, err := e.Evaluate(logic, data)

	elapsed := done()
	e.metrics.RecordApply(ctx, op, elapsed, err)

	if err == nil {
		e.spans.EndSpanWithError(span, nil)
		observability.LogApplyComplete(e.logger, op, observability.Milliseconds(elapsed))
		return result, nil
	}

	if cfg.safe {
		e.metrics.RecordSafeFallback(ctx, op)
		e.spans.AddSpanEvent(ctx, "safe_fallback", attribute.String("error", err.Error()))
		e.spans.EndSpanWithError(span, err)
		observability.LogSafeFallback(e.logger, op, err)
		return value.Bool(false), nil
	}

	e.spans.EndSpanWithError(span, err)
	observability.LogApplyError(e.logger, op, err)
	return nil, err
}

// ApplyRule loads the named rule from store and applies it to data.
// Store failures are returned in either mode.
func (e *Engine) ApplyRule(ctx context.Context, store rulestore.Store, name string, data any, opts ...ApplyOption) (string, error) {
	rule, err := store.Get(name)
	if err != nil {
		return "", fmt.Errorf("load rule %q: %w", name, err)
	}
	logic, err := codec.Decode(rule.Logic)
	if err != nil {
		return "", fmt.Errorf("decode rule %q: %w", name, err)
	}
	return e.ApplyContext(ctx, logic, data, opts...)
}

func (e *Engine) applyConfig(opts []ApplyOption) applyConfig {
	cfg := applyConfig{safe: e.safe}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

func (e *Engine) inputFailure(cfg applyConfig, err error) (string, error) {
	if cfg.safe {
		observability.LogSafeFallback(e.logger, "", err)
		return codec.EncodeString(value.Bool(false)), nil
	}
	observability.LogApplyError(e.logger, "", err)
	return "", err
}

// operatorName names a logic node for logs, spans and metrics.
func operatorName(logic value.Value) string {
	if m, ok := logic.(*value.Map); ok {
		if op, _, ok := m.First(); ok {
			return op
		}
	}
	return "literal"
}

// toValue converts an Apply argument to a value.
func toValue(v any) (value.Value, error) {
	switch val := v.(type) {
	case nil:
		return value.Null{}, nil
	case value.Value:
		return value.Normalize(val), nil
	case string:
		return codec.DecodeLenient(val), nil
	case []byte:
		return codec.DecodeLenient(string(val)), nil
	case json.RawMessage:
		return codec.DecodeLenient(string(val)), nil
	default:
		return value.FromGo(v)
	}
}

// NewFromSettings creates an Engine configured by s.
// Options passed after s override it.
func NewFromSettings(s config.Settings, opts ...Option) *Engine {
	base := []Option{
		WithSafeMode(s.Safe),
		WithLogger(s.Logger(os.Stderr)),
	}
	if s.Metrics {
		base = append(base, WithMetrics(observability.NewMetricsRecorder()))
	}
	if s.Tracing {
		base = append(base, WithSpanManager(observability.NewSpanManager()))
	}
	return New(append(base, opts...)...)
}

// OpenRuleStore opens the store named by s.Store and saves s.Rules into it.
// An empty store path opens an in-memory store.
func OpenRuleStore(s config.Settings) (rulestore.Store, error) {
	store, err := rulestore.Open(s.Store)
	if err != nil {
		return nil, fmt.Errorf("open rule store: %w", err)
	}
	if err := rulestore.SaveAll(store, s.Rules); err != nil {
		store.Close()
		return nil, fmt.Errorf("save configured rules: %w", err)
	}
	return store, nil
}

var (
	defaultEngine     *Engine
	defaultEngineOnce sync.Once
)

// Default returns the shared engine used by the package-level functions.
func Default() *Engine {
	defaultEngineOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Apply evaluates logic against data on the default engine.
func Apply(logic, data any, opts ...ApplyOption) (string, error) {
	return Default().Apply(logic, data, opts...)
}

// AddOperation registers a custom operator on the default engine.
func AddOperation(name string, fn Operation) error {
	return Default().AddOperation(name, fn)
}
