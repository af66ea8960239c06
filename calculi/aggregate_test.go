// SPDX-License-Identifier: MIT

package calculi_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/calculi"
	"github.com/katalvlaran/diffgap/embedding"
	"github.com/katalvlaran/diffgap/simplex"
	"github.com/katalvlaran/diffgap/spectral"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var demo = calculi.Input{Seed: 42, PointCount: 80, Sigma: 0.3}

// TestRun_Demo pins the reference scenario.
func TestRun_Demo(t *testing.T) {
	t.Parallel()

	out, err := calculi.Run(demo)
	require.NoError(t, err)
	require.Len(t, out.Points, 80)
	require.NoError(t, out.Points.Validate(builder.DefaultFloor))
	require.Len(t, out.Gaps, 4)
	for i, kind := range embedding.Kinds() {
		require.Equal(t, kind, out.Gaps[i].Kind)
		require.NotEmpty(t, out.Gaps[i].Name)
		require.GreaterOrEqual(t, out.Gaps[i].Gap, 0.0)
		require.LessOrEqual(t, out.Gaps[i].Gap, 1.0)
		require.Nil(t, out.Gaps[i].Exact)
	}
	assert.InDelta(t, 0.1238919, out.Gaps[0].Gap, 1e-6)
	assert.InDelta(t, 0.2198947, out.Gaps[2].Gap, 1e-6)

	require.Equal(t, calculi.EffectiveHeuristic, out.Method)
	require.Equal(t, out.Gaps[2].Gap, out.MaxSingleGap)
	require.GreaterOrEqual(t, out.EffectiveGap, out.MaxSingleGap)
	require.GreaterOrEqual(t, out.ImprovementPct, 0.0)
	assert.InDelta(t, 0.2572647, out.EffectiveGap, 1e-6)
	assert.InDelta(t, 16.99, out.ImprovementPct, 0.01)
}

func TestRun_Idempotent(t *testing.T) {
	t.Parallel()

	a, err := calculi.Run(demo)
	require.NoError(t, err)
	b, err := calculi.Run(demo)
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := calculi.Run(demo, calculi.WithMethod(calculi.EffectiveComposed))
	require.NoError(t, err)
	d, err := calculi.Run(demo, calculi.WithMethod(calculi.EffectiveComposed))
	require.NoError(t, err)
	require.Equal(t, c, d)
}

func TestRun_Composed(t *testing.T) {
	t.Parallel()

	heur, err := calculi.Run(demo)
	require.NoError(t, err)
	comp, err := calculi.Run(demo, calculi.WithMethod(calculi.EffectiveComposed), calculi.WithExact(true))
	require.NoError(t, err)

	require.Equal(t, calculi.EffectiveComposed, comp.Method)
	require.Equal(t, heur.Points, comp.Points)
	require.Equal(t, heur.MaxSingleGap, comp.MaxSingleGap)
	assert.InDelta(t, 0.3238421, comp.EffectiveGap, 1e-5)
	require.Greater(t, comp.EffectiveGap, comp.MaxSingleGap)

	require.NotNil(t, comp.Exact)
	require.GreaterOrEqual(t, *comp.Exact, 0.0)
	require.LessOrEqual(t, *comp.Exact, 1.0)
	for _, g := range comp.Gaps {
		require.NotNil(t, g.Exact, "%s", g.Kind)
	}
	// The uniform deflation is close to exact for the well-conditioned kinds.
	assert.InDelta(t, *comp.Gaps[0].Exact, comp.Gaps[0].Gap, 0.01)
	assert.InDelta(t, *comp.Gaps[2].Exact, comp.Gaps[2].Gap, 0.01)
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   calculi.Input
		want error
	}{
		{"zero sigma", calculi.Input{Seed: 1, PointCount: 10, Sigma: 0}, calculi.ErrInvalidSigma},
		{"negative sigma", calculi.Input{Seed: 1, PointCount: 10, Sigma: -0.3}, calculi.ErrInvalidSigma},
		{"nan sigma", calculi.Input{Seed: 1, PointCount: 10, Sigma: math.NaN()}, calculi.ErrInvalidSigma},
		{"negative count", calculi.Input{Seed: 1, PointCount: -1, Sigma: 0.3}, calculi.ErrInvalidPointCount},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := calculi.Run(tc.in)
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := calculi.Run(calculi.Input{PointCount: 5, Sigma: 1},
		calculi.WithSamplerOptions(builder.WithCenters(simplex.Point{2, -0.5, -0.5})))
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = calculi.Aggregate(nil, 0.3, calculi.WithRegistry(&embedding.Registry{}))
	require.ErrorIs(t, err, calculi.ErrNoEmbeddings)
}

func TestRun_TrivialSizes(t *testing.T) {
	t.Parallel()

	for _, n := range []int{0, 1} {
		out, err := calculi.Run(calculi.Input{Seed: 3, PointCount: n, Sigma: 0.3})
		require.NoError(t, err)
		require.Len(t, out.Points, n)
		for _, g := range out.Gaps {
			require.Equal(t, 1.0, g.Gap)
		}
		require.Equal(t, 1.0, out.MaxSingleGap)
		require.Equal(t, calculi.HeuristicCap, out.EffectiveGap)
	}
}

func TestAggregate_CustomRegistry(t *testing.T) {
	t.Parallel()

	pts, err := builder.BuildSimplex(40, 9)
	require.NoError(t, err)
	reg, err := embedding.NewRegistry(embedding.Embedding{
		Kind: "square",
		Name: "Square",
		Fn:   func(x float64) float64 { return x * x },
	})
	require.NoError(t, err)

	res, err := calculi.Aggregate(pts, 0.3, calculi.WithRegistry(reg))
	require.NoError(t, err)
	require.Len(t, res.PerEmbedding, 5)
	require.Equal(t, embedding.Kind("square"), res.PerEmbedding[4].Kind)

	base, err := calculi.Aggregate(pts, 0.3)
	require.NoError(t, err)
	require.Equal(t, base.PerEmbedding, res.PerEmbedding[:4])
}

func TestAggregate_SpectralOptions(t *testing.T) {
	t.Parallel()

	pts, err := builder.BuildSimplex(30, 2)
	require.NoError(t, err)
	one, err := calculi.Aggregate(pts, 0.5, calculi.WithIterations(1))
	require.NoError(t, err)
	fifty, err := calculi.Aggregate(pts, 0.5, calculi.WithSpectralOptions(spectral.WithIterations(50)))
	require.NoError(t, err)
	dflt, err := calculi.Aggregate(pts, 0.5)
	require.NoError(t, err)
	require.Equal(t, dflt, fifty)
	require.NotEqual(t, dflt.Gaps(), one.Gaps())
}

func TestAggregate_Logger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := calculi.Run(calculi.Input{Seed: 1, PointCount: 12, Sigma: 0.4}, calculi.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "kind=curvature")
	assert.Contains(t, buf.String(), "effective gap")
	assert.Contains(t, buf.String(), "calculi run")
}

func TestHeuristic(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 0.2*1.15+0.1*0.05, calculi.HeuristicGap(0.2, 0.1), 1e-15)
	require.Equal(t, 0.95, calculi.HeuristicGap(0.9, 0.9))
	require.Equal(t, 0.0, calculi.HeuristicGap(0, 0))

	require.Equal(t, 0.0, calculi.ImprovementPct(0.5, 0))
	assert.InDelta(t, 15.0, calculi.ImprovementPct(0.23, 0.2), 1e-9)
	require.Less(t, calculi.ImprovementPct(0.95, 1), 0.0)
}

func TestRanked(t *testing.T) {
	t.Parallel()

	r := calculi.Result{PerEmbedding: []calculi.GapResult{
		{Kind: "a", Gap: 0.1},
		{Kind: "b", Gap: 0.3},
		{Kind: "c", Gap: 0.1},
		{Kind: "d", Gap: 0.2},
	}}
	got := r.Ranked()
	kinds := make([]embedding.Kind, len(got))
	for i, g := range got {
		kinds[i] = g.Kind
	}
	require.Equal(t, []embedding.Kind{"b", "d", "a", "c"}, kinds)
	require.Equal(t, embedding.Kind("a"), r.PerEmbedding[0].Kind)
}

func TestMethodOptions(t *testing.T) {
	t.Parallel()

	m, err := calculi.ParseMethod("")
	require.NoError(t, err)
	require.Equal(t, calculi.EffectiveHeuristic, m)
	m, err = calculi.ParseMethod("composed")
	require.NoError(t, err)
	require.Equal(t, calculi.EffectiveComposed, m)
	_, err = calculi.ParseMethod("magic")
	require.Error(t, err)

	require.Panics(t, func() { calculi.WithMethod("magic") })
	require.Panics(t, func() { calculi.WithMethod("") })
	require.Panics(t, func() { calculi.WithLogger(nil) })
	require.Panics(t, func() { calculi.WithRegistry(nil) })
	require.Panics(t, func() { calculi.WithIterations(0) })
}
