// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/diffgap/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps a Matrix so kernels cannot see the concrete *Dense and must take
// the generic At/Set path.
type hide struct{ matrix.Matrix }

// mustDense builds a rows×cols Dense from row-major values or fails the test.
func mustDense(t *testing.T, rows, cols int, vals ...float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, cols, vals)
	require.NoError(t, err)

	return m
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewSquare(-1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewSquareZero checks that the 0×0 matrix is legal and inert.
func TestNewSquareZero(t *testing.T) {
	m, err := matrix.NewSquare(0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.Equal(t, "", m.String())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(2, 0, 1.23), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 4.56), matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf validates the finite-only numeric policy.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(1)), matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.Inf(-1)})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestCloneIndependence mutates a clone and checks the original is untouched.
func TestCloneIndependence(t *testing.T) {
	m := mustDense(t, 2, 2, 1, 2, 3, 4)
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, v)
	require.Equal(t, "[9, 2]\n[3, 4]\n", c.(*matrix.Dense).String())
}

// TestApply covers the in-place transform and the finite-only guard.
func TestApply(t *testing.T) {
	m := mustDense(t, 2, 3, 1, 2, 3, 4, 5, 6)

	require.NoError(t, m.Apply(func(_, _ int, v float64) float64 { return v * 2 }))
	require.Equal(t, "[2, 4, 6]\n[8, 10, 12]\n", m.String())

	err := m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.NaN()
		}
		return v
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
