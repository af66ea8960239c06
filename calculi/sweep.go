// SPDX-License-Identifier: MIT

package calculi

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diffgap/embedding"
	"github.com/katalvlaran/diffgap/simplex"
)

// SweepPoint is the aggregate at one kernel width.
type SweepPoint struct {
	Sigma  float64 `json:"sigma"`
	Result Result  `json:"result"`
}

// SweepResult is a σ series over one fixed point set.
type SweepResult []SweepPoint

// Sweep aggregates points at every sigma, in the given order.
//
// Errors:
//   - ErrInvalidSigma, naming the offending entry.
//   - anything Aggregate returns.
func Sweep(points simplex.PointSet, sigmas []float64, opts ...Option) (SweepResult, error) {
	for i, s := range sigmas {
		if math.IsNaN(s) || math.IsInf(s, 0) || s <= 0 {
			return nil, calculiErrorf(opSweep, fmt.Errorf("sigmas[%d]=%g: %w", i, s, ErrInvalidSigma))
		}
	}
	cfg := newConfig(opts...)

	out := make(SweepResult, len(sigmas))
	for i, s := range sigmas {
		res, err := aggregate(points, s, cfg)
		if err != nil {
			return nil, calculiErrorf(opSweep, err)
		}
		out[i] = SweepPoint{Sigma: s, Result: res}
	}

	return out, nil
}

// Series returns the gap of kind at every sweep point; missing kinds read NaN.
func (s SweepResult) Series(kind embedding.Kind) []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = math.NaN()
		for _, g := range p.Result.PerEmbedding {
			if g.Kind == kind {
				out[i] = g.Gap
				break
			}
		}
	}

	return out
}

// EffectiveSeries returns the effective gap at every sweep point.
func (s SweepResult) EffectiveSeries() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Result.Effective.EffectiveGap
	}

	return out
}

// NonDecreasing reports whether xs never drops by more than tol.
func NonDecreasing(xs []float64, tol float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] < xs[i-1]-tol {
			return false
		}
	}

	return true
}
