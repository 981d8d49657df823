package config

import (
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// Config wraps a decoded document for type-safe value extraction.
// All accessor methods return default values if the key is missing
// or the value has the wrong kind.
type Config struct {
	data *value.Map
}

// New creates a Config from the given map.
// If data is nil, an empty Config is returned.
func New(data *value.Map) Config {
	if data == nil {
		data = value.NewMap(0)
	}
	return Config{data: data}
}

// String returns the string value for key, or defaultVal if missing or not a string.
func (c Config) String(key, defaultVal string) string {
	if s, ok := c.get(key).(value.String); ok {
		return string(s)
	}
	return defaultVal
}

// Bool returns the boolean value for key, or defaultVal if missing or not a bool.
func (c Config) Bool(key string, defaultVal bool) bool {
	if b, ok := c.get(key).(value.Bool); ok {
		return bool(b)
	}
	return defaultVal
}

// Float returns the numeric value for key, or defaultVal if missing or not a number.
func (c Config) Float(key string, defaultVal float64) float64 {
	if n, ok := c.get(key).(value.Number); ok {
		return float64(n)
	}
	return defaultVal
}

// Value returns the raw value for key, or nil if missing.
func (c Config) Value(key string) value.Value {
	v, _ := c.data.Get(key)
	return v
}

// Section returns the nested mapping stored under key.
// A missing key or a non-mapping value yields an empty Config.
func (c Config) Section(key string) Config {
	m, _ := c.get(key).(*value.Map)
	return New(m)
}

// Has returns true if the key exists in the config.
func (c Config) Has(key string) bool {
	_, ok := c.data.Get(key)
	return ok
}

// Keys returns the keys in document order.
func (c Config) Keys() []string {
	return c.data.Keys()
}

// Raw returns the underlying map.
// The returned map should not be modified.
func (c Config) Raw() *value.Map {
	return c.data
}

func (c Config) get(key string) value.Value {
	v, ok := c.data.Get(key)
	if !ok {
		return nil
	}
	return v
}
