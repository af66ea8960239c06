// SPDX-License-Identifier: MIT

package embedding_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/diffgap/embedding"
	"github.com/katalvlaran/diffgap/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbed_KnownValues(t *testing.T) {
	t.Parallel()

	p := simplex.Point{0.25, 0.25, 0.5}
	tests := []struct {
		kind embedding.Kind
		want embedding.Vector
	}{
		{embedding.Classical, embedding.Vector{0.25, 0.25, 0.5}},
		{embedding.Log, embedding.Vector{math.Log(0.25 + 1e-10), math.Log(0.25 + 1e-10), math.Log(0.5 + 1e-10)}},
		{embedding.Power, embedding.Vector{0.5, 0.5, math.Sqrt(0.5)}},
		{embedding.Curvature, embedding.Vector{math.Pi / 3, math.Pi / 3, math.Pi / 2}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(string(tc.kind), func(t *testing.T) {
			t.Parallel()
			got, err := embedding.Embed(p, tc.kind)
			require.NoError(t, err)
			for k := range got {
				assert.InDelta(t, tc.want[k], got[k], 1e-12)
			}
		})
	}
}

func TestEmbed_Boundaries(t *testing.T) {
	t.Parallel()

	// log stays finite at zero; curvature reaches π at one.
	v, err := embedding.Embed(simplex.Point{0, 0, 1}, embedding.Log)
	require.NoError(t, err)
	require.False(t, math.IsInf(v[0], 0))
	assert.InDelta(t, math.Log(1e-10), v[0], 1e-9)

	v, err = embedding.Embed(simplex.Point{0, 0, 1}, embedding.Curvature)
	require.NoError(t, err)
	assert.InDelta(t, math.Pi, v[2], 1e-12)
	assert.Equal(t, 0.0, v[0])

	_, err = embedding.Embed(simplex.Point{}, "mystery")
	require.ErrorIs(t, err, embedding.ErrUnknownKind)
}

func TestDefaults_Order(t *testing.T) {
	t.Parallel()

	ds := embedding.Defaults()
	require.Len(t, ds, 4)
	for i, k := range embedding.Kinds() {
		require.Equal(t, k, ds[i].Kind)
		require.NotEmpty(t, ds[i].Name)
	}
}

func TestApplyAll(t *testing.T) {
	t.Parallel()

	e, err := embedding.Lookup(embedding.Power)
	require.NoError(t, err)
	out := e.ApplyAll(simplex.PointSet{{0.04, 0.32, 0.64}, simplex.Centroid()})
	require.Len(t, out, 2)
	assert.InDelta(t, 0.2, out[0][0], 1e-12)
	assert.InDelta(t, 0.8, out[0][2], 1e-12)
	require.Empty(t, e.ApplyAll(nil))
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	cube := embedding.Embedding{Kind: "cube", Fn: func(x float64) float64 { return x * x * x }}
	r, err := embedding.NewRegistry(cube)
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())

	got, err := r.Lookup("cube")
	require.NoError(t, err)
	require.Equal(t, "cube", got.Name) // defaults to the kind
	cubed := got.Apply(simplex.Point{0.5, 0.1, 0})
	for k, want := range []float64{0.125, 0.001, 0} {
		assert.InDelta(t, want, cubed[k], 1e-15)
	}

	require.ErrorIs(t, r.Register(cube), embedding.ErrDuplicateKind)
	require.ErrorIs(t, r.Register(embedding.Embedding{Kind: "nil-fn"}), embedding.ErrInvalidEmbedding)
	_, err = r.Lookup("none")
	require.ErrorIs(t, err, embedding.ErrUnknownKind)

	all := r.All()
	all[0].Name = "mutated"
	first, _ := r.Lookup(embedding.Classical)
	require.Equal(t, "Classical", first.Name)

	_, err = embedding.NewRegistry(embedding.Embedding{Kind: embedding.Log, Fn: math.Abs})
	require.ErrorIs(t, err, embedding.ErrDuplicateKind)
}
