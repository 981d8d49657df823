package jsonlogic

import (
	"math"
	"strings"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/observability"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/registry"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// builtinOperators receive their operands already evaluated.
var builtinOperators = registry.Sealed(map[string]operatorFunc{
	"var":          opVar,
	"missing":      opMissing,
	"missing_some": opMissingSome,

	"==":  equality(value.Compare, true),
	"!=":  equality(value.Compare, false),
	"===": equality(value.CompareStrict, true),
	"!==": equality(value.CompareStrict, false),
	">":   relation(func(c int) bool { return c > 0 }),
	">=":  relation(func(c int) bool { return c >= 0 }),
	"<":   relation(func(c int) bool { return c < 0 }),
	"<=":  relation(func(c int) bool { return c <= 0 }),

	"!":   opNot,
	"!!":  opTruthy,
	"and": opAnd,
	"or":  opOr,
	"if":  opIf,
	"?:":  opIf,

	"in":     opIn,
	"cat":    opCat,
	"substr": opSubstr,
	"merge":  opMerge,
	"log":    opLog,

	"+":   opAdd,
	"*":   opMultiply,
	"-":   opSubtract,
	"/":   opDivide,
	"%":   opModulo,
	"min": extremum(func(a, b float64) bool { return a < b }),
	"max": extremum(func(a, b float64) bool { return a > b }),
})

// Comparison

func equality(compare func(a, b value.Value) int, want bool) operatorFunc {
	return func(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
		equal := compare(arg(args, 0), arg(args, 1)) == 0
		return value.Bool(equal == want), nil
	}
}

// relation builds a chained comparison: two operands compare directly,
// three operands form a range check (a OP b and b OP c).
func relation(holds func(c int) bool) operatorFunc {
	return func(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
		switch len(args) {
		case 2:
			return value.Bool(holds(value.Compare(args[0], args[1]))), nil
		case 3:
			return value.Bool(holds(value.Compare(args[0], args[1])) &&
				holds(value.Compare(args[1], args[2]))), nil
		default:
			return value.Bool(false), nil
		}
	}
}

// Logic

func opNot(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	return value.Bool(!value.Truthy(arg(args, 0))), nil
}

func opTruthy(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	return value.Bool(value.Truthy(arg(args, 0))), nil
}

// opAnd returns a boolean when every operand is a boolean. Otherwise it
// returns the first falsy operand, or the last operand if all are truthy.
func opAnd(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool(true), nil
	}
	if allBools(args) {
		for _, a := range args {
			if !value.Truthy(a) {
				return value.Bool(false), nil
			}
		}
		return value.Bool(true), nil
	}
	for _, a := range args {
		if !value.Truthy(a) {
			return value.Normalize(a), nil
		}
	}
	return arg(args, len(args)-1), nil
}

// opOr mirrors opAnd: the first truthy operand, or the last operand.
func opOr(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Bool(false), nil
	}
	if allBools(args) {
		for _, a := range args {
			if value.Truthy(a) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}
	for _, a := range args {
		if value.Truthy(a) {
			return value.Normalize(a), nil
		}
	}
	return arg(args, len(args)-1), nil
}

func allBools(args value.List) bool {
	for _, a := range args {
		if _, ok := a.(value.Bool); !ok {
			return false
		}
	}
	return true
}

func opIf(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	return ifChain(args), nil
}

// ifChain walks [cond, then, cond2, then2, ..., else] pairs.
func ifChain(args value.List) value.Value {
	switch len(args) {
	case 0:
		return value.Null{}
	case 1:
		return arg(args, 0)
	case 2:
		if value.Truthy(args[0]) {
			return arg(args, 1)
		}
		return value.Null{}
	case 3:
		if value.Truthy(args[0]) {
			return arg(args, 1)
		}
		return arg(args, 2)
	default:
		if value.Truthy(args[0]) {
			return arg(args, 1)
		}
		return ifChain(args[2:])
	}
}

// Strings and lists

// opIn tests whether the first operand occurs in the second: as a substring
// of a string, or as an element of a list compared by string form.
func opIn(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	needle := value.Unquote(value.Text(arg(args, 0)))
	switch hay := arg(args, 1).(type) {
	case value.String:
		return value.Bool(strings.Contains(string(hay), needle)), nil
	case value.List:
		for _, item := range hay {
			if value.Unquote(value.Text(item)) == needle {
				return value.Bool(true), nil
			}
		}
	}
	return value.Bool(false), nil
}

func opCat(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(value.Text(a))
	}
	return value.String(sb.String()), nil
}

// opSubstr slices by rune with negative start and length counting from
// the end. Ranges that fall outside the string yield null.
func opSubstr(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	if len(args) != 2 && len(args) != 3 {
		return value.Null{}, nil
	}

	runes := []rune(value.Text(args[0]))
	n := len(runes)

	begin := value.AsInt(args[1])
	if begin < 0 {
		begin += n
	}
	end := n
	if len(args) == 3 {
		length := value.AsInt(args[2])
		if length < 0 {
			end = n + length
		} else {
			end = begin + length
		}
	}

	if begin < 0 || begin > n || end < begin || end > n {
		return value.Null{}, nil
	}
	return value.String(string(runes[begin:end])), nil
}

func opMerge(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	return flatten(value.List{}, args), nil
}

func flatten(dst, src value.List) value.List {
	for _, item := range src {
		if inner, ok := item.(value.List); ok {
			dst = flatten(dst, inner)
			continue
		}
		dst = append(dst, value.Normalize(item))
	}
	return dst
}

// opLog passes its first operand through and records it.
func opLog(e *Engine, args value.List, _ value.Value) (value.Value, error) {
	v := arg(args, 0)
	observability.LogValue(e.logger, v)
	return v, nil
}

// Arithmetic

func opAdd(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	var sum float64
	for _, a := range args {
		sum += value.AsDouble(a)
	}
	return value.Number(sum), nil
}

func opMultiply(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	if len(args) == 0 {
		return value.Null{}, nil
	}
	product := value.AsDouble(args[0])
	for _, a := range args[1:] {
		product *= value.AsDouble(a)
	}
	return value.Number(product), nil
}

// opSubtract negates a single operand and subtracts the second from the
// first otherwise. Operands past the second are ignored.
func opSubtract(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	switch len(args) {
	case 0:
		return value.Null{}, nil
	case 1:
		return value.Number(-value.AsDouble(args[0])), nil
	default:
		return value.Number(value.AsDouble(args[0]) - value.AsDouble(args[1])), nil
	}
}

// opDivide follows IEEE 754: dividing by zero yields an infinity or NaN,
// which encode as null.
func opDivide(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Null{}, nil
	}
	return value.Number(value.AsDouble(args[0]) / value.AsDouble(args[1])), nil
}

func opModulo(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
	if len(args) < 2 {
		return value.Null{}, nil
	}
	return value.Number(math.Mod(value.AsDouble(args[0]), value.AsDouble(args[1]))), nil
}

// extremum picks the operand that beats every other under better.
// Only number operands take part; with none the result is null.
func extremum(better func(a, b float64) bool) operatorFunc {
	return func(_ *Engine, args value.List, _ value.Value) (value.Value, error) {
		var (
			best  float64
			found bool
		)
		for _, a := range args {
			n, ok := a.(value.Number)
			if !ok {
				continue
			}
			if !found || better(float64(n), best) {
				best = float64(n)
				found = true
			}
		}
		if !found {
			return value.Null{}, nil
		}
		return value.Number(best), nil
	}
}
