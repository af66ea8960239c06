// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/config"
	"github.com/katalvlaran/diffgap/spectral"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	globalConfig *config.Config
	globalLogger *slog.Logger
)

// Persistent flags.
var (
	configPath string
	logLevel   string
	logFormat  string
)

var rootCmd = &cobra.Command{
	Use:           "diffgap",
	Short:         "Multi-embedding diffusion spectral-gap estimator",
	Long:          "Sample points on the 2-simplex, build Gaussian diffusion operators under the classical,\nlog, power and curvature embeddings, and compare their spectral gaps.",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var (
			cfg *config.Config
			err error
		)
		if configPath != "" {
			cfg, err = config.LoadFile(configPath)
		} else {
			cfg, err = config.Load()
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if cmd.Flags().Changed("log-level") {
			cfg.Log.Level = logLevel
		}
		if cmd.Flags().Changed("log-format") {
			cfg.Log.Format = logFormat
		}
		logger, err := newLogger(cmd.ErrOrStderr(), cfg.Log)
		if err != nil {
			return err
		}
		slog.SetDefault(logger)
		globalConfig, globalLogger = cfg, logger

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/diffgap/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format: text or json")
}

// newLogger builds the process logger on w.
func newLogger(w io.Writer, lc config.LogConfig) (*slog.Logger, error) {
	level, err := config.ParseLevel(lc.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(lc.Format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}

	return nil, fmt.Errorf("unknown log format %q", lc.Format)
}

// Computation flags shared by run, sweep and serve.
var (
	flagSeed       int64
	flagPoints     int
	flagSigma      float64
	flagMethod     string
	flagIterations int
	flagTolerance  float64
	flagExact      bool
	flagNoise      float64
	flagFloor      float64
)

func addComputeFlags(cmd *cobra.Command) {
	d := config.Defaults()
	f := cmd.Flags()
	f.Int64Var(&flagSeed, "seed", d.Run.Seed, "Sampler seed")
	f.IntVar(&flagPoints, "points", d.Run.Points, "Number of points")
	f.Float64Var(&flagSigma, "sigma", d.Run.Sigma, "Gaussian kernel width (> 0)")
	f.StringVar(&flagMethod, "method", d.Run.Method, "Effective-gap method: heuristic or composed")
	f.IntVar(&flagIterations, "iterations", d.Run.Iterations, "Power-iteration count")
	f.Float64Var(&flagTolerance, "tolerance", d.Run.Tolerance, "Early-exit tolerance (0 = fixed iterations)")
	f.BoolVar(&flagExact, "exact", d.Run.Exact, "Also compute exact reference gaps")
	f.Float64Var(&flagNoise, "noise", d.Sampler.Noise, "Sampler noise amplitude")
	f.Float64Var(&flagFloor, "floor", d.Sampler.Floor, "Sampler coordinate floor")
}

// applyComputeFlags overlays explicitly set flags onto the loaded config.
func applyComputeFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	if f.Changed("seed") {
		cfg.Run.Seed = flagSeed
	}
	if f.Changed("points") {
		cfg.Run.Points = flagPoints
	}
	if f.Changed("sigma") {
		cfg.Run.Sigma = flagSigma
	}
	if f.Changed("method") {
		cfg.Run.Method = flagMethod
	}
	if f.Changed("iterations") {
		cfg.Run.Iterations = flagIterations
	}
	if f.Changed("tolerance") {
		cfg.Run.Tolerance = flagTolerance
	}
	if f.Changed("exact") {
		cfg.Run.Exact = flagExact
	}
	if f.Changed("noise") {
		cfg.Sampler.Noise = flagNoise
	}
	if f.Changed("floor") {
		cfg.Sampler.Floor = flagFloor
	}

	return cfg.Validate()
}

// inputFrom extracts the computation input.
func inputFrom(cfg *config.Config) calculi.Input {
	return calculi.Input{Seed: cfg.Run.Seed, PointCount: cfg.Run.Points, Sigma: cfg.Run.Sigma}
}

// samplerOptions maps the sampler section onto builder options.
func samplerOptions(cfg *config.Config) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithNoise(cfg.Sampler.Noise),
		builder.WithFloor(cfg.Sampler.Floor),
	}
}

// calculiOptions maps the run section onto calculi options, sampler included.
func calculiOptions(cfg *config.Config, logger *slog.Logger) ([]calculi.Option, error) {
	method, err := calculi.ParseMethod(cfg.Run.Method)
	if err != nil {
		return nil, err
	}
	sp := []spectral.Option{spectral.WithIterations(cfg.Run.Iterations)}
	if cfg.Run.Tolerance > 0 {
		sp = append(sp, spectral.WithTolerance(cfg.Run.Tolerance))
	}

	return []calculi.Option{
		calculi.WithMethod(method),
		calculi.WithSpectralOptions(sp...),
		calculi.WithExact(cfg.Run.Exact),
		calculi.WithSamplerOptions(samplerOptions(cfg)...),
		calculi.WithLogger(logger),
	}, nil
}
