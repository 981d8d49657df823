package jsonlogic

import (
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/observability"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/registry"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// Operation is a custom operator.
//
// args is the raw, unevaluated operand list of the logic node and data is
// the current data context. Use Engine.Evaluate to evaluate operands when
// needed. A returned error fails the evaluation; in safe mode the overall
// result becomes false.
type Operation func(args value.List, data value.Value) (value.Value, error)

// operatorFunc is the signature shared by built-in and array-context operators.
type operatorFunc func(e *Engine, args value.List, data value.Value) (value.Value, error)

// Engine evaluates logic nodes against data contexts.
//
// Operators are resolved in priority order: custom, array-context, built-in.
// A custom operator registered under a built-in name overrides it.
//
// Engine is safe for concurrent use. AddOperation may run concurrently with
// evaluation; an evaluation in flight sees the registry as it was at each lookup.
type Engine struct {
	id       string
	builtins *registry.Registry[string, operatorFunc]
	arrayOps *registry.Registry[string, operatorFunc]
	custom   *registry.Registry[string, Operation]

	logger  *slog.Logger
	metrics observability.MetricsRecorder
	spans   observability.SpanManager
	safe    bool

	pending []namedOperation
}

// New creates an Engine with the built-in operator tables.
// Options registering invalid custom operators cause New to panic.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:       uuid.New().String(),
		builtins: builtinOperators,
		arrayOps: arrayOperators,
		custom:   registry.New[string, Operation](),
		metrics:  observability.NoopMetrics{},
		spans:    observability.NoopSpanManager{},
		safe:     true,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger != nil {
		e.logger = observability.EnrichLogger(e.logger, e.id)
	}
	for _, op := range e.pending {
		if err := e.AddOperation(op.name, op.fn); err != nil {
			panic(err)
		}
	}
	e.pending = nil
	return e
}

// ID returns the identifier attached to the engine's log records.
func (e *Engine) ID() string {
	return e.id
}

// AddOperation registers or replaces the custom operator name.
// It takes effect for every subsequent evaluation on this engine.
func (e *Engine) AddOperation(name string, fn Operation) error {
	if name == "" {
		return fmt.Errorf("add operation: empty name")
	}
	if fn == nil {
		return fmt.Errorf("add operation %q: nil function", name)
	}
	return e.custom.Register(name, fn)
}

// Operators returns the names of the custom operators, sorted.
func (e *Engine) Operators() []string {
	return e.custom.Keys()
}

// Evaluate evaluates a logic node against data.
//
// A non-map node evaluates to itself and an empty map evaluates to data.
// Otherwise the first key names the operator and its value holds the operands.
// Custom and array-context operators receive raw operands; built-in operators
// receive them evaluated. Failures are returned unchanged regardless of mode.
func (e *Engine) Evaluate(logic, data value.Value) (value.Value, error) {
	data = value.Normalize(data)
	node, ok := value.Normalize(logic).(*value.Map)
	if !ok {
		return value.Normalize(logic), nil
	}
	op, raw, ok := node.First()
	if !ok {
		return data, nil
	}

	if fn, ok := e.custom.Get(op); ok {
		args := asList(raw)
		result, err := e.invokeCustom(op, fn, args, data)
		if err != nil {
			return nil, err
		}
		observability.LogOperator(e.logger, op, args, result)
		return result, nil
	}

	if fn, ok := e.arrayOps.Get(op); ok {
		args := asList(raw)
		result, err := fn(e, args, data)
		if err != nil {
			return nil, err
		}
		observability.LogOperator(e.logger, op, args, result)
		return result, nil
	}

	if fn, ok := e.builtins.Get(op); ok {
		args, err := e.evaluateOperands(raw, data)
		if err != nil {
			return nil, err
		}
		result, err := fn(e, args, data)
		if err != nil {
			return nil, err
		}
		observability.LogOperator(e.logger, op, args, result)
		return result, nil
	}

	return nil, &UnimplementedOperatorError{Operator: op}
}

// evaluateOperands evaluates the operand of a built-in operator.
// A list is evaluated element-wise; any other value becomes a single operand.
func (e *Engine) evaluateOperands(raw, data value.Value) (value.List, error) {
	list, ok := raw.(value.List)
	if !ok {
		v, err := e.Evaluate(raw, data)
		if err != nil {
			return nil, err
		}
		return value.List{v}, nil
	}

	args := make(value.List, len(list))
	for i, item := range list {
		v, err := e.Evaluate(item, data)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	return args, nil
}

// invokeCustom calls a custom operator, converting panics into PanicError.
func (e *Engine) invokeCustom(op string, fn Operation, args value.List, data value.Value) (result value.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &PanicError{
				Operator: op,
				Value:    r,
				Stack:    string(debug.Stack()),
			}
		}
	}()

	result, err = fn(args, data)
	if err != nil {
		return nil, &OperatorError{Operator: op, Err: err}
	}
	return value.Normalize(result), nil
}

// asList coerces a raw operand into an operand list.
// A string starting with "[" is split on commas into trimmed string elements.
func asList(raw value.Value) value.List {
	switch v := raw.(type) {
	case value.List:
		return v
	case value.String:
		s := string(v)
		if !strings.HasPrefix(s, "[") {
			return value.List{v}
		}
		inner := strings.TrimSpace(strings.NewReplacer("[", "", "]", "").Replace(s))
		if inner == "" {
			return value.List{}
		}
		parts := strings.Split(inner, ",")
		out := make(value.List, len(parts))
		for i, p := range parts {
			out[i] = value.String(strings.TrimSpace(p))
		}
		return out
	}
	return value.List{value.Normalize(raw)}
}
