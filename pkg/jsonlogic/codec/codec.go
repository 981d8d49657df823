// Package codec converts between JSON (or YAML) text and jsonlogic values.
//
// Decoding keeps the key order of objects, which matters for logic nodes:
// the first key of an object names its operator.
package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// SyntaxError reports text that could not be decoded.
type SyntaxError struct {
	// Format is "json" or "yaml".
	Format string
	// Err is the underlying decoder error.
	Err error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Format, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Decode parses a single JSON document.
func Decode(data []byte) (value.Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, &SyntaxError{Format: "json", Err: err}
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Format: "json", Err: errors.New("unexpected data after top-level value")}
	}
	return v, nil
}

// DecodeString parses a single JSON document held in a string.
func DecodeString(s string) (value.Value, error) {
	return Decode([]byte(s))
}

// DecodeLenient decodes text the way callers of Apply expect: blank text is
// null, valid JSON is decoded, and anything else becomes a string literal.
func DecodeLenient(text string) value.Value {
	if strings.TrimSpace(text) == "" {
		return value.Null{}
	}
	v, err := DecodeString(text)
	if err != nil {
		return value.String(text)
	}
	return v
}

// Encode returns the compact JSON encoding of v.
func Encode(v value.Value) []byte {
	return value.AppendJSON(nil, v)
}

// EncodeString returns the compact JSON encoding of v as a string.
func EncodeString(v value.Value) string {
	return string(Encode(v))
}

func decodeValue(dec *json.Decoder) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (value.Value, error) {
	switch t := tok.(type) {
	case nil:
		return value.Null{}, nil
	case bool:
		return value.Bool(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", t.String(), err)
		}
		return value.Number(f), nil
	case string:
		return value.String(t), nil
	case json.Delim:
		switch t {
		case '[':
			return decodeList(dec)
		case '{':
			return decodeMap(dec)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func decodeList(dec *json.Decoder) (value.Value, error) {
	list := value.List{}
	for dec.More() {
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}

func decodeMap(dec *json.Decoder) (value.Value, error) {
	m := value.NewMap(0)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		item, err := decodeValue(dec)
		if err != nil {
			return nil, err
		}
		m.Set(key, item)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return m, nil
}
