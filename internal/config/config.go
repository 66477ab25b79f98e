// Package config loads and writes the tell CLI configuration. Settings come
// from three places, later ones winning: built-in defaults, a .tell.yaml
// file (working directory, then the XDG config home), and TELL_* environment
// variables.
package config

import (
	"strings"

	"github.com/rileyhilliard/tell/pkg/tell"
)

// ConfigFileName is the per-project config file name.
const ConfigFileName = ".tell.yaml"

// GlobalConfigName is the file name used under the XDG config home.
const GlobalConfigName = "config.yaml"

// AppName is the directory name for global configuration.
const AppName = "tell"

// Config mirrors the .tell.yaml schema.
type Config struct {
	Level      string `yaml:"level" mapstructure:"level"`
	Color      string `yaml:"color" mapstructure:"color"` // auto, always, never
	Live       bool   `yaml:"live" mapstructure:"live"`
	Symbols    bool   `yaml:"symbols" mapstructure:"symbols"`
	Tracebacks bool   `yaml:"tracebacks" mapstructure:"tracebacks"`
}

// Default returns the documented defaults.
func Default() Config {
	return Config{
		Level:      "info",
		Color:      "auto",
		Live:       true,
		Symbols:    true,
		Tracebacks: true,
	}
}

// Apply pushes the file-level settings onto a logger.
func (c Config) Apply(l *tell.Logger) {
	l.SetLevel(tell.ParseLevel(c.Level))
	l.SetColorMode(c.ColorMode())
	l.EnableLiveUpdates(c.Live)
	l.SetSymbols(c.Symbols)
	l.SetShowTracebacks(c.Tracebacks)
}

// ColorMode maps the config string to the logger tri-state. Unknown values
// fall back to auto.
func (c Config) ColorMode() tell.ColorMode {
	switch strings.ToLower(strings.TrimSpace(c.Color)) {
	case "always", "on", "true":
		return tell.ColorOn
	case "never", "off", "false":
		return tell.ColorOff
	default:
		return tell.ColorAuto
	}
}
