package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want value.Value
	}{
		{"null", "null", value.Null{}},
		{"bool", "true", value.Bool(true)},
		{"integer", "42", value.Number(42)},
		{"float", "-1.5e2", value.Number(-150)},
		{"string", `"hi"`, value.String("hi")},
		{"empty list", "[]", value.List{}},
		{"nested list", `[1,[2,"x"]]`, value.List{value.Number(1), value.List{value.Number(2), value.String("x")}}},
		{"empty object", "{}", value.NewMap(0)},
		{"object", ` {"b": 1, "a": [true]} `, value.MapOf("b", value.Number(1), "a", value.List{value.Bool(true)})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeString(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_KeepsKeyOrder(t *testing.T) {
	got, err := DecodeString(`{"z":1,"a":2,"m":3}`)
	require.NoError(t, err)
	m, ok := got.(*value.Map)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, m.Keys())
}

func TestDecode_DuplicateKeyLastWins(t *testing.T) {
	got, err := DecodeString(`{"a":1,"b":2,"a":3}`)
	require.NoError(t, err)
	m := got.(*value.Map)
	assert.Equal(t, []string{"a", "b"}, m.Keys())
	v, _ := m.Get("a")
	assert.Equal(t, value.Number(3), v)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"unterminated", `{"a":1`},
		{"trailing data", `{"a":1} x`},
		{"two values", `1 2`},
		{"bare word", `abc`},
		{"unquoted keys", `{ a : 1 }`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeString(tt.in)
			require.Error(t, err)
			var syntaxErr *SyntaxError
			assert.True(t, errors.As(err, &syntaxErr))
			assert.Equal(t, "json", syntaxErr.Format)
		})
	}
}

func TestDecodeLenient(t *testing.T) {
	assert.Equal(t, value.Null{}, DecodeLenient(""))
	assert.Equal(t, value.Null{}, DecodeLenient("   "))
	assert.Equal(t, value.Number(1), DecodeLenient("1"))
	assert.Equal(t, value.String("apple"), DecodeLenient(`"apple"`))
	assert.Equal(t, value.String("apple"), DecodeLenient("apple"))
	assert.Equal(t, value.String("{ a : 1 }"), DecodeLenient("{ a : 1 }"))
	assert.Equal(t, value.List{value.Number(1)}, DecodeLenient("[1]"))
}

func TestEncode(t *testing.T) {
	v := value.MapOf(
		"z", value.List{value.Number(1), value.Number(2.5), value.Null{}},
		"a", value.String("x\"y"),
		"t", value.Bool(true),
	)
	assert.Equal(t, `{"z":[1,2.5,null],"a":"x\"y","t":true}`, EncodeString(v))
}

func TestRoundTrip(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`3.25`,
		`"text with \"quotes\" and \\ slashes"`,
		`[1,"two",[3],{"four":4}]`,
		`{"and":[{">":[{"var":"a"},1]},{"in":["x",["x","y"]]}]}`,
		`{"b":{},"a":[]}`,
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			v, err := DecodeString(doc)
			require.NoError(t, err)
			assert.Equal(t, doc, EncodeString(v))

			again, err := Decode(Encode(v))
			require.NoError(t, err)
			assert.Equal(t, v, again)
		})
	}
}
