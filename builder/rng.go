// SPDX-License-Identifier: MIT
// Package: builder
//
// rng.go — random sources for stochastic builders.

package builder

// Source yields uniform variates in [0,1). *rand.Rand satisfies it, which is
// how WithRand plugs the standard generator in.
type Source interface {
	Float64() float64
}

// LCG is the portable default generator. Its state transition is fully
// specified by the LCG* constants, so a port in another language reproduces
// the same stream for the same seed. Not safe for concurrent use.
type LCG struct {
	state int64
}

// NewLCG seeds a generator. Any int64 is accepted; the seed is reduced into
// [0, LCGModulus) so negative seeds are valid and deterministic.
func NewLCG(seed int64) *LCG {
	s := seed % LCGModulus
	if s < 0 {
		s += LCGModulus
	}

	return &LCG{state: s}
}

// Float64 advances the state and returns state/LCGModulus ∈ [0,1).
func (g *LCG) Float64() float64 {
	g.state = (g.state*LCGMultiplier + LCGIncrement) % LCGModulus

	return float64(g.state) / LCGModulus
}
