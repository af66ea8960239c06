// SPDX-License-Identifier: MIT

package calculi

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/simplex"
)

// Input is the single entry point's parameter set.
type Input struct {
	Seed       int64   `json:"seed" yaml:"seed"`
	PointCount int     `json:"pointCount" yaml:"pointCount"`
	Sigma      float64 `json:"sigma" yaml:"sigma"`
}

// Validate checks the boundary preconditions.
func (in Input) Validate() error {
	if in.PointCount < 0 {
		return fmt.Errorf("pointCount=%d: %w", in.PointCount, ErrInvalidPointCount)
	}
	if math.IsNaN(in.Sigma) || math.IsInf(in.Sigma, 0) || in.Sigma <= 0 {
		return fmt.Errorf("sigma=%g: %w", in.Sigma, ErrInvalidSigma)
	}

	return nil
}

// Output carries raw numbers only; formatting belongs to the caller.
type Output struct {
	Points         simplex.PointSet `json:"points"`
	Gaps           []GapResult      `json:"gaps"`
	EffectiveGap   float64          `json:"effectiveGap"`
	MaxSingleGap   float64          `json:"maxSingleGap"`
	ImprovementPct float64          `json:"improvementPct"`
	Method         Method           `json:"method"`
	Exact          *float64         `json:"exactEffectiveGap,omitempty"`
}

// Ranked returns Gaps by descending gap.
func (o Output) Ranked() []GapResult {
	return Result{PerEmbedding: o.Gaps}.Ranked()
}

// Run samples in.PointCount points with in.Seed and aggregates them at
// in.Sigma. Identical inputs and options give identical outputs.
//
// Errors:
//   - ErrInvalidPointCount, ErrInvalidSigma at the boundary.
//   - builder.ErrOptionViolation for bad sampler centers.
//   - anything Aggregate returns.
func Run(in Input, opts ...Option) (Output, error) {
	if err := in.Validate(); err != nil {
		return Output{}, calculiErrorf(opRun, err)
	}
	cfg := newConfig(opts...)

	points, err := builder.BuildSimplex(in.PointCount, in.Seed, cfg.sampler...)
	if err != nil {
		if errors.Is(err, builder.ErrBadSize) {
			err = fmt.Errorf("%v: %w", err, ErrInvalidPointCount)
		}

		return Output{}, calculiErrorf(opRun, err)
	}

	res, err := aggregate(points, in.Sigma, cfg)
	if err != nil {
		return Output{}, calculiErrorf(opRun, err)
	}
	cfg.logger.Info("calculi run",
		"seed", in.Seed,
		"points", in.PointCount,
		"sigma", in.Sigma,
		"method", res.Effective.Method,
		"effective_gap", res.Effective.EffectiveGap,
	)

	return Output{
		Points:         points,
		Gaps:           res.PerEmbedding,
		EffectiveGap:   res.Effective.EffectiveGap,
		MaxSingleGap:   res.Effective.MaxSingleGap,
		ImprovementPct: res.Effective.ImprovementPct,
		Method:         res.Effective.Method,
		Exact:          res.Effective.Exact,
	}, nil
}
