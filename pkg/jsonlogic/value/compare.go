package value

import (
	"cmp"
	"strings"
)

// NotEqual is returned by CompareStrict for operands of different kinds.
const NotEqual = -1

// Compare orders a and b loosely and returns -1, 0 or 1.
//
//   - number vs number: numeric order
//   - number vs string: the string is coerced with AsDouble
//   - string vs string: lexical order after Unquote
//   - either side bool: order of their truthiness (false < true)
//   - anything else: a deterministic order by kind, then by JSON text
func Compare(a, b Value) int {
	a, b = Normalize(a), Normalize(b)
	switch av := a.(type) {
	case Number:
		switch bv := b.(type) {
		case Number:
			return cmp.Compare(float64(av), float64(bv))
		case String:
			return cmp.Compare(float64(av), AsDouble(bv))
		}
	case String:
		switch bv := b.(type) {
		case Number:
			return cmp.Compare(AsDouble(av), float64(bv))
		case String:
			return strings.Compare(Unquote(string(av)), Unquote(string(bv)))
		}
	}
	if a.Kind() == KindBool || b.Kind() == KindBool {
		return compareBool(Truthy(a), Truthy(b))
	}
	return compareFallback(a, b)
}

// CompareStrict is Compare without cross-kind coercion. Only number/number
// and string/string pairs can compare equal; every other pairing yields
// NotEqual.
func CompareStrict(a, b Value) int {
	switch av := Normalize(a).(type) {
	case Number:
		if bv, ok := Normalize(b).(Number); ok {
			return cmp.Compare(float64(av), float64(bv))
		}
	case String:
		if bv, ok := Normalize(b).(String); ok {
			return strings.Compare(Unquote(string(av)), Unquote(string(bv)))
		}
	}
	return NotEqual
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// compareFallback orders values of unrelated kinds. Kinds are ranked by
// their declaration order; equal kinds compare by their JSON encoding.
func compareFallback(a, b Value) int {
	if c := cmp.Compare(a.Kind(), b.Kind()); c != 0 {
		return c
	}
	if a.Kind() == KindNull {
		return 0
	}
	return strings.Compare(string(AppendJSON(nil, a)), string(AppendJSON(nil, b)))
}
