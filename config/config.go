// SPDX-License-Identifier: MIT

// Package config loads diffgap defaults from
// $XDG_CONFIG_HOME/diffgap/config.yaml. A missing file yields Defaults();
// fields absent from the file keep their default values.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid value")

// Config is the on-disk configuration.
type Config struct {
	Run     RunConfig     `yaml:"run"`
	Sampler SamplerConfig `yaml:"sampler"`
	Sweep   SweepConfig   `yaml:"sweep"`
	Serve   ServeConfig   `yaml:"serve"`
	Log     LogConfig     `yaml:"log"`
}

// RunConfig holds the computation parameters.
type RunConfig struct {
	Seed       int64   `yaml:"seed"`
	Points     int     `yaml:"points"`
	Sigma      float64 `yaml:"sigma"`
	Method     string  `yaml:"method"`
	Iterations int     `yaml:"iterations"`
	Tolerance  float64 `yaml:"tolerance"`
	Exact      bool    `yaml:"exact"`
}

// SamplerConfig overrides the point sampler.
type SamplerConfig struct {
	Noise float64 `yaml:"noise"`
	Floor float64 `yaml:"floor"`
}

// SweepConfig lists the kernel widths of `diffgap sweep`.
type SweepConfig struct {
	Sigmas []float64 `yaml:"sigmas"`
}

// ServeConfig configures `diffgap serve`.
type ServeConfig struct {
	Addr      string `yaml:"addr"`
	MaxPoints int    `yaml:"max_points"`
	MaxSigmas int    `yaml:"max_sigmas"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Run: RunConfig{
			Seed:       42,
			Points:     80,
			Sigma:      0.3,
			Method:     "heuristic",
			Iterations: 50,
		},
		Sampler: SamplerConfig{Noise: 0.1, Floor: 0.01},
		Sweep:   SweepConfig{Sigmas: []float64{0.1, 0.2, 0.3, 0.5, 0.8, 1.0}},
		Serve:   ServeConfig{Addr: ":8080", MaxPoints: 500, MaxSigmas: 16},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// Validate checks value ranges. Method names are checked by the caller.
func (c *Config) Validate() error {
	switch {
	case c.Run.Points < 0:
		return fmt.Errorf("run.points=%d: %w", c.Run.Points, ErrInvalidConfig)
	case !(c.Run.Sigma > 0) || math.IsInf(c.Run.Sigma, 0):
		return fmt.Errorf("run.sigma=%g: %w", c.Run.Sigma, ErrInvalidConfig)
	case c.Run.Iterations < 1:
		return fmt.Errorf("run.iterations=%d: %w", c.Run.Iterations, ErrInvalidConfig)
	case c.Run.Tolerance < 0:
		return fmt.Errorf("run.tolerance=%g: %w", c.Run.Tolerance, ErrInvalidConfig)
	case c.Sampler.Noise < 0:
		return fmt.Errorf("sampler.noise=%g: %w", c.Sampler.Noise, ErrInvalidConfig)
	case !(c.Sampler.Floor > 0) || c.Sampler.Floor >= 1.0/3:
		return fmt.Errorf("sampler.floor=%g: %w", c.Sampler.Floor, ErrInvalidConfig)
	case c.Serve.MaxPoints < 1:
		return fmt.Errorf("serve.max_points=%d: %w", c.Serve.MaxPoints, ErrInvalidConfig)
	case c.Serve.MaxSigmas < 1:
		return fmt.Errorf("serve.max_sigmas=%d: %w", c.Serve.MaxSigmas, ErrInvalidConfig)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if f := strings.ToLower(c.Log.Format); f != "text" && f != "json" {
		return fmt.Errorf("log.format=%q: %w", c.Log.Format, ErrInvalidConfig)
	}

	return nil
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level=%q: %w", s, ErrInvalidConfig)
	}

	return l, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() (string, error) {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}

	return filepath.Join(configDir, "diffgap", "config.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}

	return filepath.Join(home, path[2:]), nil
}

// Load reads the default config path.
func Load() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	return LoadFile(path)
}

// LoadFile reads path (after ~ expansion) over Defaults(). A missing file
// is not an error.
func LoadFile(path string) (*Config, error) {
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}

		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config as YAML to path, creating parent directories.
func (c *Config) Save(path string) error {
	path, err := ExpandPath(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}
