package value

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruthy(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want bool
	}{
		{"nil interface", nil, false},
		{"null", Null{}, false},
		{"true", Bool(true), true},
		{"false", Bool(false), false},
		{"zero", Number(0), false},
		{"negative", Number(-1), true},
		{"fraction", Number(0.5), true},
		{"empty string", String(""), false},
		{"string false", String("false"), false},
		{"string null", String("null"), false},
		{"string empty list", String("[]"), false},
		{"string zero", String("0"), true},
		{"string text", String("hello"), true},
		{"empty list", List{}, false},
		{"list", List{Number(0)}, true},
		{"empty map", NewMap(0), false},
		{"map", MapOf("a", Number(1)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truthy(tt.v))
		})
	}
}

func TestAsDouble(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
	}{
		{"number", Number(3.5), 3.5},
		{"numeric string", String("42"), 42},
		{"padded numeric string", String(" 1.5 "), 1.5},
		{"negative string", String("-7"), -7},
		{"garbage string", String("abc"), 0},
		{"empty string", String(""), 0},
		{"bool", Bool(true), 0},
		{"null", Null{}, 0},
		{"list", List{Number(1)}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AsDouble(tt.v))
		})
	}
}

func TestAsInt(t *testing.T) {
	assert.Equal(t, 3, AsInt(Number(3.9)))
	assert.Equal(t, -2, AsInt(String("-2.7")))
	assert.Equal(t, 0, AsInt(Number(math.Inf(1))))
	assert.Equal(t, 0, AsInt(Number(math.NaN())))
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "abc", Unquote(`"abc"`))
	assert.Equal(t, `"abc"`, Unquote(`""abc""`))
	assert.Equal(t, "abc", Unquote("abc"))
	assert.Equal(t, `"`, Unquote(`"`))
	assert.Equal(t, "", Unquote(`""`))
}

func TestText(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null{}, "null"},
		{"bool", Bool(false), "false"},
		{"whole number", Number(3), "3"},
		{"fraction", Number(3.25), "3.25"},
		{"negative zero", Number(math.Copysign(0, -1)), "0"},
		{"large", Number(1e21), "1e+21"},
		{"small", Number(1e-7), "1e-07"},
		{"string", String("a\"b"), "a\"b"},
		{"list", List{Number(1), String("x")}, `[1,"x"]`},
		{"map", MapOf("b", Number(1), "a", Bool(true)), `{"b":1,"a":true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Text(tt.v))
		})
	}
}

func TestAppendJSON_Escaping(t *testing.T) {
	got := string(AppendJSON(nil, String("line\n\ttab \"q\" \\ \x01 é")))
	assert.Equal(t, `"line\n\ttab \"q\" \\ \u0001 é"`, got)

	var back string
	require.NoError(t, json.Unmarshal([]byte(got), &back))
	assert.Equal(t, "line\n\ttab \"q\" \\ \x01 é", back)
}

func TestAppendJSON_NonFinite(t *testing.T) {
	assert.Equal(t, "null", string(AppendJSON(nil, Number(math.Inf(1)))))
	assert.Equal(t, "null", string(AppendJSON(nil, Number(math.NaN()))))
}

func TestMarshalJSON(t *testing.T) {
	m := MapOf("z", List{Number(1), Null{}}, "a", String("x"))
	raw, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, `{"z":[1,null],"a":"x"}`, string(raw))
}

func TestMap_Ordering(t *testing.T) {
	m := NewMap(0)
	m.Set("b", Number(1))
	m.Set("a", Number(2))
	m.Set("b", Number(3))

	assert.Equal(t, []string{"b", "a"}, m.Keys())
	assert.Equal(t, 2, m.Len())

	v, ok := m.Get("b")
	require.True(t, ok)
	assert.Equal(t, Number(3), v)

	key, first, ok := m.First()
	require.True(t, ok)
	assert.Equal(t, "b", key)
	assert.Equal(t, Number(3), first)

	_, _, ok = NewMap(0).First()
	assert.False(t, ok)
}

func TestMap_SetNilStoresNull(t *testing.T) {
	m := NewMap(1)
	m.Set("k", nil)
	v, ok := m.Get("k")
	require.True(t, ok)
	assert.Equal(t, Null{}, v)
}

func TestMapOf_PanicsOnOddArgs(t *testing.T) {
	assert.Panics(t, func() { MapOf("a") })
}

func TestNormalize(t *testing.T) {
	var nilMap *Map
	assert.Equal(t, Null{}, Normalize(nil))
	assert.Equal(t, Null{}, Normalize(nilMap))
	assert.Equal(t, Number(1), Normalize(Number(1)))
	assert.True(t, IsNull(nil))
	assert.False(t, IsNull(String("")))
}
