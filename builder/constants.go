// Package builder defines shared constants used by dataset builders, ensuring
// consistent defaults and validation across constructors.
package builder

// MethodSimplex is the canonical name for the BuildSimplex constructor,
// used to prefix errors with the constructor name for context.
const MethodSimplex = "BuildSimplex"

// DefaultFloor is the smallest coordinate a sampled point may carry. It keeps
// log/curvature embeddings away from their singular points.
const DefaultFloor = 0.01

// DefaultNoise is the half-width of the uniform per-coordinate noise.
const DefaultNoise = 0.1

// MaxFloor is the exclusive upper bound for a floor on the 2-simplex
// (three coordinates at 1/3 already sum to 1).
const MaxFloor = 1.0 / 3

// Parameters of the default linear-congruential generator:
// s ← (s·LCGMultiplier + LCGIncrement) mod LCGModulus, u = s / LCGModulus.
const (
	LCGMultiplier = 9301
	LCGIncrement  = 49297
	LCGModulus    = 233280
)
