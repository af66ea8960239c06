// SPDX-License-Identifier: MIT

package spectral

import "math"

const (
	// DefaultIterations is the fixed power-iteration count.
	DefaultIterations = 50

	// DefaultEpsilon is the norm below which a deflated vector counts as zero.
	DefaultEpsilon = 1e-10
)

// Option customizes EstimateGap. Constructors panic on meaningless input;
// EstimateGap itself never panics.
type Option func(*config)

type config struct {
	iterations int
	tolerance  float64 // 0 disables the early exit
	epsilon    float64
	probe      []float64
}

func newConfig(opts ...Option) config {
	cfg := config{iterations: DefaultIterations, epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIterations sets the iteration count (≥ 1). With a tolerance it is the cap.
func WithIterations(n int) Option {
	if n < 1 {
		panic("spectral: WithIterations requires n >= 1")
	}

	return func(c *config) { c.iterations = n }
}

// WithTolerance stops once two successive λ₂ estimates differ by less than
// tol. tol == 0 restores the fixed schedule.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) {
		panic("spectral: WithTolerance requires tol >= 0")
	}

	return func(c *config) { c.tolerance = tol }
}

// WithEpsilon sets the zero-norm threshold for deflated vectors.
func WithEpsilon(eps float64) Option {
	if !(eps > 0) {
		panic("spectral: WithEpsilon requires eps > 0")
	}

	return func(c *config) { c.epsilon = eps }
}

// WithProbe replaces the default starting vector. The vector is copied,
// deflated and normalized before use; its length must equal the operator size.
func WithProbe(v []float64) Option {
	if len(v) == 0 {
		panic("spectral: WithProbe requires a non-empty vector")
	}
	cp := make([]float64, len(v))
	copy(cp, v)

	return func(c *config) { c.probe = cp }
}

// RampProbe returns the centered ramp v_i = i − (n−1)/2, the default probe.
// It is orthogonal to the uniform vector and overlaps every non-constant
// smooth mode, so deflation never annihilates it on the first step.
func RampProbe(n int) []float64 {
	v := make([]float64, n)
	mid := float64(n-1) / 2
	for i := range v {
		v[i] = float64(i) - mid
	}

	return v
}
