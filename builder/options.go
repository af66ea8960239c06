// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via the seed argument,
//     WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"

	"github.com/katalvlaran/diffgap/simplex"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the dataset is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit random source, overriding the seeded LCG.
// Panics on nil; prefer the seed argument for portable reproducibility.
func WithRand(r Source) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed replaces the constructor's seed argument with a fresh LCG.
// Useful when options are assembled far from the call site.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = NewLCG(seed)
	}
}

// WithNoise sets the half-width a of the uniform noise U[-a, a] added to each
// coordinate. Panics if a < 0 or a is not finite; 0 disables noise.
func WithNoise(a float64) BuilderOption {
	if a < 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		panic("builder: WithNoise(a<0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.noise = a
	}
}

// WithFloor sets the minimum coordinate value. Panics unless 0 < f < MaxFloor.
func WithFloor(f float64) BuilderOption {
	if !(f > 0 && f < MaxFloor) {
		panic("builder: WithFloor(f outside (0, 1/3))")
	}
	return func(c *builderConfig) {
		c.floor = f
	}
}

// WithCenters replaces the reference centers points cluster around.
// Panics on an empty list; centers are validated against the simplex
// constraint when the dataset is built (ErrOptionViolation).
func WithCenters(centers ...simplex.Point) BuilderOption {
	if len(centers) == 0 {
		panic("builder: WithCenters()")
	}
	cp := make([]simplex.Point, len(centers))
	copy(cp, centers)
	return func(c *builderConfig) {
		c.centers = cp
	}
}
