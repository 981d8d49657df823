/*
Package config loads jsonlogic engine settings and rule definitions.

# Overview

config wraps a decoded YAML or JSON document and provides typed accessor
methods that return default values when a key is missing or holds the
wrong kind. Documents are decoded into ordered jsonlogic values, so rule
logic written in YAML keeps its key order.

# Basic Usage

	cfg, err := config.FromFile("rules.yaml")
	if err != nil {
	    log.Fatal(err)
	}

	safe := cfg.Bool("safe", true)
	level := cfg.String("log_level", "info")
	rules := cfg.Section("rules")

# Settings

Settings gathers the keys an engine understands:

	safe: true
	log_level: debug
	log_format: json
	metrics: true
	tracing: false
	store: ./rules.db
	rules:
	  adult:
	    ">=": [{var: age}, 18]

Load them with LoadSettings and pass them to jsonlogic.NewFromSettings.
*/
package config
