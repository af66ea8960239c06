// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng     = nil           (resolved to NewLCG(seed) by the constructor)
//   • noise   = DefaultNoise  (0.1)
//   • floor   = DefaultFloor  (0.01)
//   • centers = DefaultCenters()

package builder

import "github.com/katalvlaran/diffgap/simplex"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	rng     Source          // nil means "derive from the seed argument"
	noise   float64         // >= 0
	floor   float64         // (0, 1/3)
	centers []simplex.Point // non-empty
}

// DefaultCenters returns the reference centers: three near-pure corners and
// the centroid, in that order.
func DefaultCenters() []simplex.Point {
	return []simplex.Point{
		{0.8, 0.1, 0.1},
		{0.1, 0.8, 0.1},
		{0.1, 0.1, 0.8},
		simplex.Centroid(),
	}
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		noise:   DefaultNoise,
		floor:   DefaultFloor,
		centers: DefaultCenters(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// rngFrom prefers an explicitly configured source; otherwise it seeds the LCG.
func rngFrom(cfg builderConfig, seed int64) Source {
	if cfg.rng != nil {
		return cfg.rng
	}

	return NewLCG(seed)
}
