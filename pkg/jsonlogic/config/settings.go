package config

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/randalmurphal/jsonlogic/pkg/jsonlogic/value"
)

// Log formats accepted by the log_format key.
const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// Settings configures an engine and the rules it serves.
//
// Recognised keys:
//
//	safe        bool    default true; failures evaluate to false
//	log_level   string  debug | info | warn | error (default info)
//	log_format  string  text | json (default text)
//	metrics     bool    record OpenTelemetry metrics (default false)
//	tracing     bool    record OpenTelemetry spans (default false)
//	store       string  rule store location; empty keeps rules in memory
//	rules       map     rule name -> logic
type Settings struct {
	Safe      bool
	LogLevel  slog.Level
	LogFormat string
	Metrics   bool
	Tracing   bool
	Store     string
	Rules     *value.Map
}

// DefaultSettings returns the settings used when a key is absent.
func DefaultSettings() Settings {
	return Settings{
		Safe:      true,
		LogLevel:  slog.LevelInfo,
		LogFormat: LogFormatText,
		Rules:     value.NewMap(0),
	}
}

// LoadSettings reads settings from a YAML or JSON file.
func LoadSettings(path string) (Settings, error) {
	cfg, err := FromFile(path)
	if err != nil {
		return Settings{}, err
	}
	return SettingsFrom(cfg)
}

// SettingsFrom extracts settings from a loaded Config.
func SettingsFrom(c Config) (Settings, error) {
	s := DefaultSettings()
	s.Safe = c.Bool("safe", s.Safe)
	s.Metrics = c.Bool("metrics", s.Metrics)
	s.Tracing = c.Bool("tracing", s.Tracing)
	s.Store = c.String("store", s.Store)

	if c.Has("log_level") {
		if err := s.LogLevel.UnmarshalText([]byte(c.String("log_level", ""))); err != nil {
			return Settings{}, fmt.Errorf("log_level: %w", err)
		}
	}

	s.LogFormat = c.String("log_format", s.LogFormat)
	if s.LogFormat != LogFormatText && s.LogFormat != LogFormatJSON {
		return Settings{}, fmt.Errorf("log_format: unsupported format %q", s.LogFormat)
	}

	if c.Has("rules") {
		rules, ok := c.Value("rules").(*value.Map)
		if !ok {
			return Settings{}, fmt.Errorf("rules: must be a mapping of name to logic")
		}
		s.Rules = rules
	}

	return s, nil
}

// Logger builds a slog logger writing to w with the configured level and format.
func (s Settings) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: s.LogLevel}
	if s.LogFormat == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
