// Package builder_test validates option constructors and their panic contracts.
package builder_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/diffgap/builder"
	"github.com/stretchr/testify/require"
)

// TestOptionPanics verifies that option constructors reject meaningless input.
func TestOptionPanics(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		fn   func()
	}{
		{"WithRand(nil)", func() { builder.WithRand(nil) }},
		{"WithNoise(-1)", func() { builder.WithNoise(-1) }},
		{"WithNoise(NaN)", func() { builder.WithNoise(math.NaN()) }},
		{"WithFloor(0)", func() { builder.WithFloor(0) }},
		{"WithFloor(1/3)", func() { builder.WithFloor(builder.MaxFloor) }},
		{"WithCenters()", func() { builder.WithCenters() }},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, tc.fn)
		})
	}
}

// TestOptionsLastWins applies conflicting options and checks the later one wins.
func TestOptionsLastWins(t *testing.T) {
	t.Parallel()

	a, err := builder.BuildSimplex(10, 1, builder.WithNoise(0.3), builder.WithNoise(0))
	require.NoError(t, err)
	b, err := builder.BuildSimplex(10, 1, builder.WithNoise(0))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
