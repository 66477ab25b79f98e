package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/tell/pkg/tell"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "auto", cfg.Color)
	assert.True(t, cfg.Live)
	assert.True(t, cfg.Symbols)
	assert.True(t, cfg.Tracebacks)
}

func TestColorMode(t *testing.T) {
	tests := []struct {
		value    string
		expected tell.ColorMode
	}{
		{"auto", tell.ColorAuto},
		{"always", tell.ColorOn},
		{"on", tell.ColorOn},
		{"never", tell.ColorOff},
		{"off", tell.ColorOff},
		{"NEVER", tell.ColorOff},
		{"", tell.ColorAuto},
		{"bogus", tell.ColorAuto},
	}

	for _, tt := range tests {
		cfg := Config{Color: tt.value}
		assert.Equal(t, tt.expected, cfg.ColorMode(), "color=%q", tt.value)
	}
}

func TestApply(t *testing.T) {
	var buf bytes.Buffer
	log := tell.New(&buf)

	cfg := Config{
		Level:      "debug",
		Color:      "never",
		Live:       false,
		Symbols:    false,
		Tracebacks: false,
	}
	cfg.Apply(log)

	got := log.Config()
	assert.Equal(t, tell.LevelDebug, got.Level)
	assert.Equal(t, tell.ColorOff, got.Color)
	assert.False(t, got.LiveUpdates)
	assert.False(t, got.Symbols)
	assert.False(t, got.ShowTracebacks)
}

func TestLoadEmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	content := "level: trace\ncolor: never\nlive: false\nsymbols: true\ntracebacks: false\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Level)
	assert.Equal(t, "never", cfg.Color)
	assert.False(t, cfg.Live)
	assert.True(t, cfg.Symbols)
	assert.False(t, cfg.Tracebacks)
}

func TestLoadMissingFileErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))

	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)

	want := Config{Level: "warn", Color: "always", Live: false, Symbols: true, Tracebacks: true}
	require.NoError(t, Write(path, want))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFindExplicitMissingErrors(t *testing.T) {
	_, err := Find(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestFindExplicitExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0o644))

	found, err := Find(path)

	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestFindLocalConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("level: info\n"), 0o644))

	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	found, err := Find("")

	require.NoError(t, err)
	// TempDir may be behind a symlink; compare by base name.
	assert.Equal(t, ConfigFileName, filepath.Base(found))
}
