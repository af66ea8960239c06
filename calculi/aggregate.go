// SPDX-License-Identifier: MIT

package calculi

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/diffgap/diffusion"
	"github.com/katalvlaran/diffgap/embedding"
	"github.com/katalvlaran/diffgap/simplex"
	"github.com/katalvlaran/diffgap/spectral"
)

// GapResult is the spectral gap of one embedding.
type GapResult struct {
	Name  string         `json:"name"`
	Kind  embedding.Kind `json:"kind"`
	Gap   float64        `json:"gap"`
	Exact *float64       `json:"exactGap,omitempty"`
}

// Effective summarizes the multi-embedding process against the best single
// embedding.
type Effective struct {
	Method         Method   `json:"method"`
	MaxSingleGap   float64  `json:"maxSingleGap"`
	MeanGap        float64  `json:"meanGap"`
	EffectiveGap   float64  `json:"effectiveGap"`
	ImprovementPct float64  `json:"improvementPct"`
	Exact          *float64 `json:"exactEffectiveGap,omitempty"`
}

// Result is the outcome of Aggregate.
type Result struct {
	PerEmbedding []GapResult `json:"perEmbedding"`
	Effective    Effective   `json:"effective"`
}

// Ranked returns the per-embedding results by descending gap. Ties keep
// registry order.
func (r Result) Ranked() []GapResult {
	out := make([]GapResult, len(r.PerEmbedding))
	copy(out, r.PerEmbedding)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Gap > out[j].Gap })

	return out
}

// Gaps returns the per-embedding gaps in registry order.
func (r Result) Gaps() []float64 {
	out := make([]float64, len(r.PerEmbedding))
	for i, g := range r.PerEmbedding {
		out[i] = g.Gap
	}

	return out
}

// Aggregate builds one diffusion operator per embedding over points,
// estimates each gap and derives the effective gap.
//
// Errors:
//   - ErrInvalidSigma, ErrNoEmbeddings.
//   - diffusion and spectral errors, wrapped.
//
// Complexity:
//   - Heuristic: O(k·(n² · iterations)). Composed adds O(k·n³).
func Aggregate(points simplex.PointSet, sigma float64, opts ...Option) (Result, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return Result{}, calculiErrorf(opAggregate, fmt.Errorf("sigma=%g: %w", sigma, ErrInvalidSigma))
	}
	cfg := newConfig(opts...)

	return aggregate(points, sigma, cfg)
}

func aggregate(points simplex.PointSet, sigma float64, cfg config) (Result, error) {
	embs := cfg.embeddings()
	if len(embs) == 0 {
		return Result{}, calculiErrorf(opAggregate, ErrNoEmbeddings)
	}

	var (
		res = Result{PerEmbedding: make([]GapResult, len(embs))}
		ops = make([]*diffusion.Operator, len(embs))
	)
	for i, e := range embs {
		op, err := diffusion.Build(points, e, sigma)
		if err != nil {
			return Result{}, calculiErrorf(opAggregate, fmt.Errorf("%s: %w", e.Kind, err))
		}
		est, err := spectral.Run(op.P, cfg.spectral...)
		if err != nil {
			return Result{}, calculiErrorf(opAggregate, fmt.Errorf("%s: %w", e.Kind, err))
		}
		ops[i] = op
		res.PerEmbedding[i] = GapResult{Name: e.Name, Kind: e.Kind, Gap: est.Gap}

		if cfg.exact {
			S, err := op.Symmetric()
			if err != nil {
				return Result{}, calculiErrorf(opAggregate, err)
			}
			exact, err := spectral.SymmetricGap(S)
			if err != nil {
				return Result{}, calculiErrorf(opAggregate, fmt.Errorf("%s: %w", e.Kind, err))
			}
			res.PerEmbedding[i].Exact = &exact
		}

		cfg.logger.Debug("embedding gap",
			"kind", e.Kind,
			"sigma", sigma,
			"points", len(points),
			"gap", est.Gap,
			"iterations", est.Iterations,
			"degenerate", est.Degenerate,
		)
	}

	gaps := res.Gaps()
	eff := Effective{
		Method:       cfg.method,
		MaxSingleGap: floats.Max(gaps),
		MeanGap:      stat.Mean(gaps, nil),
	}

	switch cfg.method {
	case EffectiveComposed:
		Peff, err := diffusion.Compose(ops...)
		if err != nil {
			return Result{}, calculiErrorf(opAggregate, err)
		}
		if eff.EffectiveGap, err = spectral.EstimateGap(Peff, cfg.spectral...); err != nil {
			return Result{}, calculiErrorf(opAggregate, err)
		}
		if cfg.exact {
			exact, err := spectral.ExactGap(Peff)
			if err != nil {
				return Result{}, calculiErrorf(opAggregate, err)
			}
			eff.Exact = &exact
		}
	default:
		eff.EffectiveGap = HeuristicGap(eff.MaxSingleGap, eff.MeanGap)
	}
	eff.ImprovementPct = ImprovementPct(eff.EffectiveGap, eff.MaxSingleGap)
	res.Effective = eff

	cfg.logger.Debug("effective gap",
		"method", eff.Method,
		"max", eff.MaxSingleGap,
		"effective", eff.EffectiveGap,
		"improvement_pct", eff.ImprovementPct,
	)

	return res, nil
}

// HeuristicGap is min(HeuristicCap, HeuristicMaxWeight·maxGap + HeuristicMeanWeight·meanGap).
func HeuristicGap(maxGap, meanGap float64) float64 {
	return math.Min(HeuristicCap, maxGap*HeuristicMaxWeight+meanGap*HeuristicMeanWeight)
}

// ImprovementPct is (effective − max) / max × 100, or 0 when max is 0.
func ImprovementPct(effective, maxGap float64) float64 {
	if maxGap == 0 {
		return 0
	}

	return (effective - maxGap) / maxGap * 100
}
