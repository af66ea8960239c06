// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/diffgap/matrix"
)

// Estimate is the outcome of one power-iteration run.
type Estimate struct {
	Lambda2    float64 // |λ₂| estimate, before clamping
	Gap        float64 // 1 − Lambda2 clamped to [0,1]
	Iterations int     // iterations actually performed
	Converged  bool    // tolerance met before the cap
	Degenerate bool    // deflation produced a zero vector: no secondary mode
}

// EstimateGap returns the spectral gap of a square operator.
func EstimateGap(P matrix.Matrix, opts ...Option) (float64, error) {
	est, err := Run(P, opts...)
	if err != nil {
		return 0, err
	}

	return est.Gap, nil
}

// Run performs deflated power iteration on P.
//
// Implementation:
//   - Stage 1: n ≤ 1 → gap 1 (no second mode).
//   - Stage 2: v ← probe, deflated (mean removed) and normalized.
//   - Stage 3: repeat: w = P·v, remove the mean of w, v = w/‖w‖. A norm below
//     epsilon ends the run as Degenerate with λ₂ = 0.
//   - Stage 4: λ₂ = |v · P·v|, gap = clamp(1 − λ₂, 0, 1).
//
// Errors:
//   - matrix.ErrNilMatrix, matrix.ErrDimensionMismatch for a non-square input.
//   - ErrProbeLength for a probe of the wrong size.
//
// Complexity:
//   - Time O(iterations · n²), Space O(n).
func Run(P matrix.Matrix, opts ...Option) (Estimate, error) {
	if err := matrix.ValidateSquare(P); err != nil {
		return Estimate{}, spectralErrorf(opEstimate, err)
	}
	cfg := newConfig(opts...)
	n := P.Rows()
	if n <= 1 {
		return Estimate{Gap: 1, Degenerate: true}, nil
	}

	v := cfg.probe
	if v == nil {
		v = RampProbe(n)
	} else if len(v) != n {
		return Estimate{}, spectralErrorf(opEstimate,
			fmt.Errorf("len=%d n=%d: %w", len(v), n, ErrProbeLength))
	} else {
		v = append([]float64(nil), v...)
	}
	if !deflateNormalize(v, cfg.epsilon) {
		return Estimate{Gap: 1, Degenerate: true}, nil
	}

	w := make([]float64, n)
	var (
		it        int
		lambda    float64
		prev      = math.NaN()
		converged bool
		err       error
	)
	for it = 0; it < cfg.iterations; it++ {
		if err = matrix.MatVecInto(P, v, w); err != nil {
			return Estimate{}, spectralErrorf(opEstimate, err)
		}
		if cfg.tolerance > 0 {
			lambda = math.Abs(floats.Dot(v, w))
			if math.Abs(lambda-prev) < cfg.tolerance {
				converged = true
				break
			}
			prev = lambda
		}
		if !deflateNormalize(w, cfg.epsilon) {
			return Estimate{Gap: 1, Iterations: it + 1, Degenerate: true}, nil
		}
		v, w = w, v
	}

	if err = matrix.MatVecInto(P, v, w); err != nil {
		return Estimate{}, spectralErrorf(opEstimate, err)
	}
	lambda = math.Abs(floats.Dot(v, w))

	return Estimate{
		Lambda2:    lambda,
		Gap:        clampUnit(1 - lambda),
		Iterations: it,
		Converged:  converged,
	}, nil
}

// deflateNormalize removes the uniform component of v in place and scales it
// to unit norm. It reports false, leaving v untouched, when the deflated
// norm falls below eps.
func deflateNormalize(v []float64, eps float64) bool {
	mean := floats.Sum(v) / float64(len(v))
	var ss float64
	for _, x := range v {
		ss += (x - mean) * (x - mean)
	}
	norm := math.Sqrt(ss)
	if !(norm >= eps) {
		return false
	}
	floats.AddConst(-mean, v)
	floats.Scale(1/norm, v)

	return true
}

func clampUnit(x float64) float64 {
	switch {
	case math.IsNaN(x), x < 0:
		return 0
	case x > 1:
		return 1
	}

	return x
}
