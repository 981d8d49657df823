package config_test

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/config"
	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

const settingsYAML = `
safe: false
log_level: debug
log_format: json
metrics: true
tracing: true
store: ./rules.db
rules:
  adult:
    ">=": [{var: age}, 18]
  greeting:
    cat: ["Hello, ", {var: name}]
`

func TestDefaultSettings(t *testing.T) {
	s := config.DefaultSettings()
	assert.True(t, s.Safe)
	assert.Equal(t, slog.LevelInfo, s.LogLevel)
	assert.Equal(t, config.LogFormatText, s.LogFormat)
	assert.False(t, s.Metrics)
	assert.False(t, s.Tracing)
	assert.Empty(t, s.Store)
	assert.Equal(t, 0, s.Rules.Len())
}

func TestLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jsonlogic.yaml")
	require.NoError(t, os.WriteFile(path, []byte(settingsYAML), 0o600))

	s, err := config.LoadSettings(path)
	require.NoError(t, err)

	assert.False(t, s.Safe)
	assert.Equal(t, slog.LevelDebug, s.LogLevel)
	assert.Equal(t, config.LogFormatJSON, s.LogFormat)
	assert.True(t, s.Metrics)
	assert.True(t, s.Tracing)
	assert.Equal(t, "./rules.db", s.Store)

	assert.Equal(t, []string{"adult", "greeting"}, s.Rules.Keys())
	adult, ok := s.Rules.Get("adult")
	require.True(t, ok)
	assert.Equal(t, value.MapOf(">=", value.List{
		value.MapOf("var", value.String("age")),
		value.Number(18),
	}), adult)
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSettingsFrom_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"bad level", "log_level: loud\n", "log_level"},
		{"bad format", "log_format: xml\n", "log_format"},
		{"rules not a mapping", "rules: [1, 2]\n", "rules"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := config.FromYAML([]byte(tt.doc))
			require.NoError(t, err)
			_, err = config.SettingsFrom(cfg)
			assert.ErrorContains(t, err, tt.msg)
		})
	}
}

func TestSettingsLogger(t *testing.T) {
	var buf bytes.Buffer

	s := config.DefaultSettings()
	s.LogFormat = config.LogFormatJSON
	s.LogLevel = slog.LevelWarn

	logger := s.Logger(&buf)
	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	s.LogFormat = config.LogFormatText
	s.Logger(&buf).Warn("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
