package jsonlogic

import (
	"strings"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/codec"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/registry"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// arrayOperators receive [source, item(, initial)] unevaluated and
// evaluate item once per element with that element as the data context.
var arrayOperators = registry.Sealed(map[string]operatorFunc{
	"map":    opMap,
	"filter": opFilter,
	"all":    opAll,
	"none":   opNone,
	"some":   opSome,
	"reduce": opReduce,
})

// source evaluates the first operand against data and returns it as a list.
// ok is false when data is null or the source is not a list.
func (e *Engine) source(args value.List, data value.Value) (value.List, bool, error) {
	if value.IsNull(data) {
		return nil, false, nil
	}
	src, err := e.Evaluate(arg(args, 0), data)
	if err != nil {
		return nil, false, err
	}
	list, ok := asSourceList(src)
	return list, ok, nil
}

// asSourceList accepts a list, or a string holding a JSON array.
func asSourceList(v value.Value) (value.List, bool) {
	switch src := v.(type) {
	case value.List:
		return src, true
	case value.String:
		if !strings.HasPrefix(strings.TrimSpace(string(src)), "[") {
			return nil, false
		}
		decoded, err := codec.DecodeString(string(src))
		if err != nil {
			return nil, false
		}
		list, ok := decoded.(value.List)
		return list, ok
	}
	return nil, false
}

// each evaluates the item operand for every element until visit returns false.
func (e *Engine) each(items value.List, logic value.Value, visit func(item, result value.Value) bool) error {
	for _, item := range items {
		result, err := e.Evaluate(logic, item)
		if err != nil {
			return err
		}
		if !visit(item, result) {
			return nil
		}
	}
	return nil
}

func opMap(e *Engine, args value.List, data value.Value) (value.Value, error) {
	items, ok, err := e.source(args, data)
	if err != nil || !ok {
		return value.List{}, err
	}
	out := make(value.List, 0, len(items))
	err = e.each(items, arg(args, 1), func(_, result value.Value) bool {
		out = append(out, result)
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func opFilter(e *Engine, args value.List, data value.Value) (value.Value, error) {
	items, ok, err := e.source(args, data)
	if err != nil || !ok {
		return value.List{}, err
	}
	out := value.List{}
	err = e.each(items, arg(args, 1), func(item, result value.Value) bool {
		if value.Truthy(result) {
			out = append(out, value.Normalize(item))
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// opAll is false for null data or a non-list source and true for an empty list.
func opAll(e *Engine, args value.List, data value.Value) (value.Value, error) {
	items, ok, err := e.source(args, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.Bool(false), nil
	}
	all := true
	err = e.each(items, arg(args, 1), func(_, result value.Value) bool {
		all = value.Truthy(result)
		return all
	})
	if err != nil {
		return nil, err
	}
	return value.Bool(all), nil
}

func opNone(e *Engine, args value.List, data value.Value) (value.Value, error) {
	items, ok, err := e.source(args, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.Bool(true), nil
	}
	none := true
	err = e.each(items, arg(args, 1), func(_, result value.Value) bool {
		none = !value.Truthy(result)
		return none
	})
	if err != nil {
		return nil, err
	}
	return value.Bool(none), nil
}

// opSome yields an empty list for null data and false for a non-list source.
func opSome(e *Engine, args value.List, data value.Value) (value.Value, error) {
	if value.IsNull(data) {
		return value.List{}, nil
	}
	items, ok, err := e.source(args, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.Bool(false), nil
	}
	some := false
	err = e.each(items, arg(args, 1), func(_, result value.Value) bool {
		some = value.Truthy(result)
		return !some
	})
	if err != nil {
		return nil, err
	}
	return value.Bool(some), nil
}

// opReduce folds the source into a number. Each step evaluates the item
// operand against {"current": element, "accumulator": running value}.
// The initial accumulator is the third operand coerced to a number, or 0.
func opReduce(e *Engine, args value.List, data value.Value) (value.Value, error) {
	var acc float64
	if len(args) > 2 {
		initial, err := e.Evaluate(args[2], data)
		if err != nil {
			return nil, err
		}
		acc = value.AsDouble(initial)
	}

	items, ok, err := e.source(args, data)
	if err != nil {
		return nil, err
	}
	if !ok {
		return value.Number(acc), nil
	}

	logic := arg(args, 1)
	for _, item := range items {
		step := value.MapOf("current", item, "accumulator", value.Number(acc))
		result, err := e.Evaluate(logic, step)
		if err != nil {
			return nil, err
		}
		acc = value.AsDouble(result)
	}
	return value.Number(acc), nil
}
