package jsonlogic

import (
	"strconv"
	"strings"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// getVar resolves {"var": path} or {"var": [path, default]} against data.
// The default is used when the path is empty, missing or resolves to null.
func getVar(data value.Value, args value.List) value.Value {
	path := pathText(arg(args, 0))
	result, found := resolvePath(data, path)
	if (path == "" || !found || value.IsNull(result)) && len(args) > 1 {
		return args[1]
	}
	if !found {
		return value.Null{}
	}
	return result
}

// resolvePath walks a dot-separated path through maps and lists.
// An empty path resolves to data itself.
func resolvePath(data value.Value, path string) (value.Value, bool) {
	if path == "" {
		return data, true
	}

	cur := data
	for _, seg := range strings.Split(path, ".") {
		switch c := cur.(type) {
		case *value.Map:
			next, ok := c.Get(seg)
			if !ok {
				return value.Null{}, false
			}
			cur = next
		case value.List:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return value.Null{}, false
			}
			cur = c[i]
		default:
			return value.Null{}, false
		}
	}
	return value.Normalize(cur), true
}

// pathText renders a var operand as a path.
func pathText(v value.Value) string {
	switch p := v.(type) {
	case value.Null:
		return ""
	case value.String:
		return value.Unquote(string(p))
	default:
		return value.Unquote(value.Text(v))
	}
}

// missingKeys returns the keys whose var lookup yields null.
func missingKeys(data value.Value, keys value.List) value.List {
	out := value.List{}
	for _, key := range keys {
		if value.IsNull(getVar(data, value.List{key})) {
			out = append(out, key)
		}
	}
	return out
}

func opVar(_ *Engine, args value.List, data value.Value) (value.Value, error) {
	return getVar(data, args), nil
}

// opMissing accepts keys as operands or as a single list operand,
// so {"missing": {"merge": [...]}} works.
func opMissing(_ *Engine, args value.List, data value.Value) (value.Value, error) {
	keys := args
	if len(args) == 1 {
		if list, ok := args[0].(value.List); ok {
			keys = list
		}
	}
	return missingKeys(data, keys), nil
}

func opMissingSome(_ *Engine, args value.List, data value.Value) (value.Value, error) {
	need := value.AsInt(arg(args, 0))
	keys, _ := arg(args, 1).(value.List)
	missing := missingKeys(data, keys)
	if len(keys)-len(missing) >= need {
		return value.List{}, nil
	}
	return missing, nil
}

// arg returns args[i] or null when i is out of range.
func arg(args value.List, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.Null{}
	}
	return value.Normalize(args[i])
}
