package value

import (
	"math"
	"strconv"
	"strings"
)

// Truthy reports whether v counts as true in a boolean context.
//
//   - null: false
//   - bool: the boolean value
//   - number: false if zero
//   - string: false if empty or one of "false", "null", "[]"
//   - list, map: false if empty
func Truthy(v Value) bool {
	switch val := Normalize(v).(type) {
	case Null:
		return false
	case Bool:
		return bool(val)
	case Number:
		return val != 0
	case String:
		switch val {
		case "", "false", "null", "[]":
			return false
		}
		return true
	case List:
		return len(val) > 0
	case *Map:
		return val.Len() > 0
	default:
		return true
	}
}

// AsDouble converts v to a float64. Strings that do not parse and all
// non-numeric kinds yield 0.
func AsDouble(v Value) float64 {
	switch val := Normalize(v).(type) {
	case Number:
		return float64(val)
	case String:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(val)), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AsInt truncates AsDouble(v) toward zero.
func AsInt(v Value) int {
	f := AsDouble(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return int(f)
}

// Unquote strips one layer of surrounding double quotes from s.
func Unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// Text returns the plain string form of v: strings are returned as is,
// whole numbers drop their fraction, collections are rendered as JSON.
func Text(v Value) string {
	switch val := Normalize(v).(type) {
	case Null:
		return "null"
	case Bool:
		return strconv.FormatBool(bool(val))
	case Number:
		return FormatNumber(float64(val))
	case String:
		return string(val)
	default:
		return string(AppendJSON(nil, val))
	}
}

// FormatNumber renders f the way JSON encoders do: integral values without
// a fraction, non-finite values as "null".
func FormatNumber(f float64) string {
	return string(appendNumber(nil, f))
}

func appendNumber(dst []byte, f float64) []byte {
	switch {
	case math.IsNaN(f), math.IsInf(f, 0):
		return append(dst, "null"...)
	case f == 0:
		return append(dst, '0')
	}
	abs := math.Abs(f)
	if abs < 1e21 && abs >= 1e-6 {
		return strconv.AppendFloat(dst, f, 'f', -1, 64)
	}
	return strconv.AppendFloat(dst, f, 'g', -1, 64)
}
