package value

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type order struct {
	ID    string   `json:"id"`
	Total float64  `json:"total"`
	Tags  []string `json:"tags"`
}

func TestFromGo(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want Value
	}{
		{"nil", nil, Null{}},
		{"value passthrough", String("x"), String("x")},
		{"bool", true, Bool(true)},
		{"int", 7, Number(7)},
		{"int64", int64(-3), Number(-3)},
		{"uint8", uint8(200), Number(200)},
		{"float32", float32(1.5), Number(1.5)},
		{"json number", json.Number("2.25"), Number(2.25)},
		{"string", "hi", String("hi")},
		{"any slice", []any{1, "a", nil}, List{Number(1), String("a"), Null{}}},
		{"string slice", []string{"a", "b"}, List{String("a"), String("b")}},
		{"nil slice", []int(nil), Null{}},
		{"any map sorted", map[string]any{"b": 2, "a": 1}, MapOf("a", Number(1), "b", Number(2))},
		{"typed map", map[string]int{"y": 1, "x": 2}, MapOf("x", Number(2), "y", Number(1))},
		{"pointer", ptr(5), Number(5)},
		{"big int", big.NewInt(12), Number(12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromGo(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromGo_Struct(t *testing.T) {
	got, err := FromGo(order{ID: "o-1", Total: 9.5, Tags: []string{"x"}})
	require.NoError(t, err)

	m, ok := got.(*Map)
	require.True(t, ok)
	total, _ := m.Get("total")
	assert.Equal(t, Number(9.5), total)
	tags, _ := m.Get("tags")
	assert.Equal(t, List{String("x")}, tags)
}

func TestFromGo_Unsupported(t *testing.T) {
	_, err := FromGo(make(chan int))
	assert.Error(t, err)
}

func TestToGo(t *testing.T) {
	v := MapOf(
		"n", Number(1),
		"s", String("a"),
		"l", List{Bool(true), Null{}},
	)
	assert.Equal(t, map[string]any{
		"n": float64(1),
		"s": "a",
		"l": []any{true, nil},
	}, ToGo(v))
	assert.Nil(t, ToGo(nil))
}

func ptr[T any](v T) *T { return &v }
