// Package builder provides reusable "functional-options"-style building blocks
// for the synthetic datasets that drive the diffusion spectral-gap pipeline.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the random source, noise amplitude, floor and centers.
//   - Random sources:
//     – Source:            anything with Float64() in [0,1) (*rand.Rand qualifies).
//     – LCG:               the portable linear-congruential default, so a given
//     (n, seed) reproduces the same points in any language.
//   - Datasets:
//     – BuildSimplex:      clustered points on the 2-simplex around three
//     near-pure corners and the centroid, plus uniform noise.
//
// Guarantees:
//
//   - Determinism: identical (n, seed, options) always yield identical points.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors (builderErrorf) for invalid build parameters,
//     wrapping sentinels for errors.Is.
//   - Every produced point satisfies the simplex constraint and the floor.
package builder
