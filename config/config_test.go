// SPDX-License-Identifier: MIT

package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde slash", "~/foo/bar", filepath.Join(home, "foo", "bar")},
		{"absolute", "/tmp/foo", "/tmp/foo"},
		{"relative", "foo/bar", "foo/bar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, got)
		})
	}
}

func TestLoadDefaultConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, Defaults(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadYAMLConfig(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	path := filepath.Join(dir, "diffgap", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(`
run:
  seed: 7
  sigma: 0.5
  method: composed
sweep:
  sigmas: [0.2, 0.4]
log:
  level: debug
`), 0600))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, int64(7), cfg.Run.Seed)
	require.Equal(t, 0.5, cfg.Run.Sigma)
	require.Equal(t, "composed", cfg.Run.Method)
	require.Equal(t, 80, cfg.Run.Points) // untouched fields keep defaults
	require.Equal(t, 50, cfg.Run.Iterations)
	require.Equal(t, []float64{0.2, 0.4}, cfg.Sweep.Sigmas)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, ":8080", cfg.Serve.Addr)
}

func TestLoadFile_Invalid(t *testing.T) {
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("run:\n  sigma: -1\n"), 0600))
	_, err := LoadFile(bad)
	require.ErrorIs(t, err, ErrInvalidConfig)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("run: [unterminated"), 0600))
	_, err = LoadFile(broken)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Defaults()
	cfg.Run.Exact = true
	cfg.Serve.MaxPoints = 120
	require.NoError(t, cfg.Save(path))

	got, err := LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, cfg, got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative points", func(c *Config) { c.Run.Points = -1 }},
		{"zero sigma", func(c *Config) { c.Run.Sigma = 0 }},
		{"zero iterations", func(c *Config) { c.Run.Iterations = 0 }},
		{"negative tolerance", func(c *Config) { c.Run.Tolerance = -1 }},
		{"negative noise", func(c *Config) { c.Sampler.Noise = -0.1 }},
		{"floor too high", func(c *Config) { c.Sampler.Floor = 0.5 }},
		{"max points", func(c *Config) { c.Serve.MaxPoints = 0 }},
		{"max sigmas", func(c *Config) { c.Serve.MaxSigmas = 0 }},
		{"level", func(c *Config) { c.Log.Level = "loud" }},
		{"format", func(c *Config) { c.Log.Format = "xml" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("debug")
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, l)
	l, err = ParseLevel("WARN")
	require.NoError(t, err)
	require.Equal(t, slog.LevelWarn, l)
}
