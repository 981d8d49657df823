package value

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
)

// FromGo converts a plain Go value into a Value.
//
// Accepts nil, Value, bool, all integer and float kinds, string,
// json.Number, slices, arrays and maps with string keys. Keys of Go maps
// have no order, so they are inserted sorted. Any other type is round-tripped
// through encoding/json first, so tagged structs work too.
func FromGo(v any) (Value, error) {
	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case Value:
		return Normalize(val), nil
	case bool:
		return Bool(val), nil
	case string:
		return String(val), nil
	case float64:
		return Number(val), nil
	case float32:
		return Number(val), nil
	case int:
		return Number(val), nil
	case int64:
		return Number(val), nil
	case int32:
		return Number(val), nil
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return nil, fmt.Errorf("convert number %q: %w", val.String(), err)
		}
		return Number(f), nil
	case []any:
		out := make(List, len(val))
		for i, item := range val {
			conv, err := FromGo(item)
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out := NewMap(len(keys))
		for _, k := range keys {
			conv, err := FromGo(val[k])
			if err != nil {
				return nil, err
			}
			out.Set(k, conv)
		}
		return out, nil
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null{}, nil
		}
		if _, ok := rv.Interface().(json.Marshaler); !ok {
			return FromGo(rv.Elem().Interface())
		}
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null{}, nil
		}
		out := make(List, rv.Len())
		for i := range out {
			conv, err := FromGo(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out[i] = conv
		}
		return out, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null{}, nil
		}
		keys := rv.MapKeys()
		sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
		out := NewMap(len(keys))
		for _, k := range keys {
			conv, err := FromGo(rv.MapIndex(k).Interface())
			if err != nil {
				return nil, err
			}
			out.Set(k.String(), conv)
		}
		return out, nil
	}
	return fromJSON(rv.Interface())
}

func fromJSON(v any) (Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("convert %T: %w", v, err)
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("convert %T: %w", v, err)
	}
	return FromGo(decoded)
}

// ToGo converts v into plain Go values: nil, bool, float64, string,
// []any and map[string]any.
func ToGo(v Value) any {
	switch val := Normalize(v).(type) {
	case Bool:
		return bool(val)
	case Number:
		return float64(val)
	case String:
		return string(val)
	case List:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = ToGo(item)
		}
		return out
	case *Map:
		out := make(map[string]any, val.Len())
		val.Range(func(k string, item Value) bool {
			out[k] = ToGo(item)
			return true
		})
		return out
	default:
		return nil
	}
}
