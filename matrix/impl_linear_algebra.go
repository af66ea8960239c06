// SPDX-License-Identifier: MIT
// Package matrix provides universal operations on any Matrix implementation:
// matrix multiplication, matrix-vector product, row sums and diagonal
// scaling. All functions perform strict fail-fast validation and return
// wrapped sentinels on dimension mismatches.
//
// Notes:
//   - Every kernel has a *Dense fast path over the flat buffer and a generic
//     At/Set fallback with the same loop order, so both paths agree bit-for-bit.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opMul             = "Mul"
	opMatVec          = "MatVec"
	opRowSums         = "RowSums"
	opDiagScale       = "DiagScale"
	opNormalizeRowsL1 = "NormalizeRowsL1"
	opEigenSym        = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use the same i→k→j order through At/Set.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewSquareOrDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k int
		av, bv  float64
	)

	// Fast-path for two Dense matrices.
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			var rowA, rowB, rowR int
			for i = 0; i < aRows; i++ {
				rowA = i * aCols
				rowR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowA+k]
					if av == 0 {
						continue // zero contributes nothing
					}
					rowB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowR+j] += av * db.data[rowB+j]
					}
				}
			}

			return res, nil
		}
	}

	// Fallback: interface path with the same i→k→j order.
	for i = 0; i < aRows; i++ {
		for k = 0; k < aCols; k++ {
			if av, err = a.At(i, k); err != nil {
				return nil, matrixErrorf(opMul, err)
			}
			if av == 0 {
				continue
			}
			for j = 0; j < bCols; j++ {
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, err)
				}
				res.data[i*bCols+j] += av * bv
			}
		}
	}

	return res, nil
}

// NewSquareOrDense allocates a rows×cols result, allowing the 0×0 case that
// arises when an empty operator is multiplied by another empty operator.
func NewSquareOrDense(rows, cols int) (*Dense, error) {
	if rows == 0 && cols == 0 {
		return NewSquare(0)
	}

	return NewDense(rows, cols)
}

// MatVecInto computes y = m · x into a caller-owned buffer, which lets
// iterative solvers reuse one allocation across iterations.
// Complexity: O(r*c), no allocations.
func MatVecInto(m Matrix, x, y []float64) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(y, m.Rows()); err != nil {
		return matrixErrorf(opMatVec, err)
	}

	return matVecInto(m, x, y)
}

// matVecInto assumes validated shapes.
func matVecInto(m Matrix, x, y []float64) error {
	var i, j, base int
	var acc float64

	if d, ok := m.(*Dense); ok {
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return nil
	}

	var mv float64
	var err error
	rows, cols := m.Rows(), m.Cols()
	for i = 0; i < rows; i++ {
		acc = ZeroSum
		for j = 0; j < cols; j++ {
			if mv, err = m.At(i, j); err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			acc += mv * x[j]
		}
		y[i] = acc
	}

	return nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}
	y := make([]float64, m.Rows())
	if err := matVecInto(m, ones, y); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return y, nil
}

// DiagScale returns D_left · m · D_right, i.e. out[i,j] = left[i]·m[i,j]·right[j].
// With left = right = d^{-1/2} this is the symmetric conjugation used to map a
// row-normalized kernel onto a similar symmetric matrix.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (vector lengths).
//
// Complexity: O(r*c).
func DiagScale(m Matrix, left, right []float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDiagScale, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(left, rows); err != nil {
		return nil, matrixErrorf(opDiagScale, err)
	}
	if err := ValidateVecLen(right, cols); err != nil {
		return nil, matrixErrorf(opDiagScale, err)
	}
	res, err := NewSquareOrDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opDiagScale, err)
	}
	var i, j int
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opDiagScale, err)
			}
			res.data[i*cols+j] = left[i] * v * right[j]
		}
	}

	return res, nil
}
