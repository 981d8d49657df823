package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/codec"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// FromFile loads configuration from a file, auto-detecting format by extension.
// Supported extensions: .yaml, .yml, .json
func FromFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		return FromYAML(data)
	case ".json":
		return FromJSON(data)
	default:
		return Config{}, fmt.Errorf("unsupported config file extension: %s", ext)
	}
}

// FromYAML parses YAML data into a Config.
func FromYAML(data []byte) (Config, error) {
	v, err := codec.DecodeYAML(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	return fromDocument(v)
}

// FromJSON parses JSON data into a Config.
func FromJSON(data []byte) (Config, error) {
	v, err := codec.Decode(data)
	if err != nil {
		return Config{}, fmt.Errorf("parse json: %w", err)
	}
	return fromDocument(v)
}

func fromDocument(v value.Value) (Config, error) {
	switch doc := value.Normalize(v).(type) {
	case *value.Map:
		return New(doc), nil
	case value.Null:
		return New(nil), nil
	default:
		return Config{}, fmt.Errorf("config document must be a mapping, got %s", doc.Kind())
	}
}
