// Package builder_test contains unit tests for the simplex dataset builder.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/katalvlaran/diffgap/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLCGStream pins the first draws so ports can cross-check their generator.
func TestLCGStream(t *testing.T) {
	t.Parallel()

	g := builder.NewLCG(42)
	require.Equal(t, 206659.0/233280, g.Float64())
	require.Equal(t, 190736.0/233280, g.Float64())

	// Negative seeds reduce into [0, modulus).
	neg := builder.NewLCG(-1)
	ref := builder.NewLCG(builder.LCGModulus - 1)
	for i := 0; i < 5; i++ {
		require.Equal(t, ref.Float64(), neg.Float64())
	}
}

// TestBuildSimplex_Deterministic checks byte-identical output for equal inputs.
func TestBuildSimplex_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildSimplex(80, 42)
	require.NoError(t, err)
	b, err := builder.BuildSimplex(80, 42)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Len(t, a, 80)

	c, err := builder.BuildSimplex(80, 43)
	require.NoError(t, err)
	require.NotEqual(t, a, c)

	// Same seed via option overrides the argument.
	d, err := builder.BuildSimplex(80, 7, builder.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, a, d)
}

// TestBuildSimplex_Invariant verifies Σ=1 and the floor across seeds and noise levels.
func TestBuildSimplex_Invariant(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		noise float64
		floor float64
	}{
		{"defaults", builder.DefaultNoise, builder.DefaultFloor},
		{"heavy noise", 0.5, builder.DefaultFloor},
		{"tall floor", 0.3, 0.2},
		{"no noise", 0, builder.DefaultFloor},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			for seed := int64(0); seed < 20; seed++ {
				ps, err := builder.BuildSimplex(50, seed,
					builder.WithNoise(tc.noise), builder.WithFloor(tc.floor))
				require.NoError(t, err)
				for i, p := range ps {
					assert.InDelta(t, 1.0, p.Sum(), 1e-9, "seed %d point %d", seed, i)
					for k := range p {
						require.GreaterOrEqual(t, p[k], tc.floor-1e-12, "seed %d point %d", seed, i)
					}
				}
			}
		})
	}
}

// TestBuildSimplex_NoNoiseHitsCenters checks that zero noise reproduces the centers.
func TestBuildSimplex_NoNoiseHitsCenters(t *testing.T) {
	t.Parallel()

	ps, err := builder.BuildSimplex(30, 1, builder.WithNoise(0))
	require.NoError(t, err)

	centers := builder.DefaultCenters()
	for i, p := range ps {
		var hit bool
		for _, c := range centers {
			if closePoint(p, c, 1e-12) {
				hit = true
				break
			}
		}
		require.True(t, hit, "point %d = %v is not a center", i, p)
	}
}

// TestBuildSimplex_Edges covers n == 0, negative n and bad centers.
func TestBuildSimplex_Edges(t *testing.T) {
	t.Parallel()

	ps, err := builder.BuildSimplex(0, 42)
	require.NoError(t, err)
	require.NotNil(t, ps)
	require.Empty(t, ps)

	_, err = builder.BuildSimplex(-1, 42)
	require.ErrorIs(t, err, builder.ErrBadSize)

	_, err = builder.BuildSimplex(5, 42, builder.WithCenters(simplex.Point{0.5, 0.5, 0.5}))
	require.ErrorIs(t, err, builder.ErrOptionViolation)

	_, err = builder.BuildSimplex(5, 42, builder.WithCenters(simplex.Point{1.1, -0.05, -0.05}))
	require.ErrorIs(t, err, builder.ErrOptionViolation)
}

// TestBuildSimplex_WithRand plugs the standard generator in.
// TestBuildSimplex_FloorRepin pins the two seed-42 points whose first
// coordinate drops under the floor after clamp-and-divide (0.0096046 and
// 0.0093705) and is pinned back to it, with the other two rescaled.
func TestBuildSimplex_FloorRepin(t *testing.T) {
	t.Parallel()

	pts, err := builder.BuildSimplex(80, 42)
	require.NoError(t, err)

	golden := map[int]simplex.Point{
		56: {0.01, 0.8416776677622033, 0.14832233223779662},
		79: {0.01, 0.16308155872213395, 0.826918441277866},
	}
	for i, want := range golden {
		got := pts[i]
		require.Equal(t, builder.DefaultFloor, got[0], "point %d", i)
		for k := 1; k < simplex.Dim; k++ {
			assert.InDelta(t, want[k], got[k], 1e-15, "point %d coord %d", i, k)
		}
		assert.InDelta(t, 1.0, got.Sum(), 1e-15)
	}
}

func TestBuildSimplex_WithRand(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildSimplex(40, 0, builder.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	b, err := builder.BuildSimplex(40, 0, builder.WithRand(rand.New(rand.NewSource(9))))
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.NoError(t, a.Validate(builder.DefaultFloor-1e-12))
}

// TestBuildSimplex_SingleCenter clusters every point around one custom center.
func TestBuildSimplex_SingleCenter(t *testing.T) {
	t.Parallel()

	c := simplex.Point{0.2, 0.3, 0.5}
	ps, err := builder.BuildSimplex(25, 3, builder.WithCenters(c), builder.WithNoise(0.01))
	require.NoError(t, err)
	for _, p := range ps {
		require.True(t, closePoint(p, c, 0.05), "point %v too far from %v", p, c)
	}
}

func closePoint(a, b simplex.Point, tol float64) bool {
	for k := range a {
		d := a[k] - b[k]
		if d < -tol || d > tol {
			return false
		}
	}

	return true
}
