package value

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return "unknown"
	}
}

// Value is any value flowing through evaluation.
// The set of implementations is closed: Null, Bool, Number, String, List and *Map.
type Value interface {
	Kind() Kind
	sealed()
}

// Null is the JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number. All numbers are float64.
type Number float64

// String is a JSON string.
type String string

// List is an ordered JSON array.
type List []Value

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }
func (*Map) Kind() Kind   { return KindMap }

func (Null) sealed()   {}
func (Bool) sealed()   {}
func (Number) sealed() {}
func (String) sealed() {}
func (List) sealed()   {}
func (*Map) sealed()   {}

// Normalize maps a nil interface (or nil *Map) to Null so callers can
// type-switch without nil checks.
func Normalize(v Value) Value {
	switch val := v.(type) {
	case nil:
		return Null{}
	case *Map:
		if val == nil {
			return Null{}
		}
	}
	return v
}

// IsNull reports whether v is null (or a nil interface).
func IsNull(v Value) bool {
	return Normalize(v).Kind() == KindNull
}

// Map is a string-keyed map that remembers insertion order.
// Setting an existing key replaces its value and keeps its position.
type Map struct {
	keys    []string
	entries map[string]Value
}

// NewMap creates an empty map with room for n entries.
func NewMap(n int) *Map {
	return &Map{
		keys:    make([]string, 0, n),
		entries: make(map[string]Value, n),
	}
}

// MapOf builds a map from alternating key/value arguments.
// It panics if the arguments are not key/value pairs.
func MapOf(kv ...any) *Map {
	if len(kv)%2 != 0 {
		panic("value: MapOf requires key/value pairs")
	}
	m := NewMap(len(kv) / 2)
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			panic("value: MapOf keys must be strings")
		}
		val, ok := kv[i+1].(Value)
		if !ok && kv[i+1] != nil {
			panic("value: MapOf values must implement Value")
		}
		m.Set(key, val)
	}
	return m
}

// Set stores val under key. Last write wins.
func (m *Map) Set(key string, val Value) {
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = Normalize(val)
}

// Get returns the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
// The returned slice must not be modified.
func (m *Map) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// First returns the first inserted entry. ok is false for an empty map.
func (m *Map) First() (key string, val Value, ok bool) {
	if m.Len() == 0 {
		return "", nil, false
	}
	key = m.keys[0]
	return key, m.entries[key], true
}

// Range calls fn for each entry in insertion order until fn returns false.
func (m *Map) Range(fn func(key string, val Value) bool) {
	if m == nil {
		return
	}
	for _, k := range m.keys {
		if !fn(k, m.entries[k]) {
			return
		}
	}
}
