// SPDX-License-Identifier: MIT

package spectral

import (
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/diffgap/matrix"
)

// Jacobi settings for SymmetricGap.
const (
	symTolerance = 1e-12
	symMaxSweeps = 100
)

// ExactGap returns 1 − |λ₂| from a full eigen-decomposition of a general
// square operator, where |λ₂| is the second-largest eigenvalue magnitude.
// It is the reference for EstimateGap and for composed operators.
//
// Complexity: O(n³).
func ExactGap(P matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(P); err != nil {
		return 0, spectralErrorf(opExact, err)
	}
	n := P.Rows()
	if n <= 1 {
		return 1, nil
	}

	data := make([]float64, n*n)
	var err error
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if data[i*n+j], err = P.At(i, j); err != nil {
				return 0, spectralErrorf(opExact, err)
			}
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(n, n, data), mat.EigenNone); !ok {
		return 0, spectralErrorf(opExact, ErrEigenFailed)
	}
	vals := eig.Values(nil)
	mags := make([]float64, len(vals))
	for i, v := range vals {
		mags[i] = cmplx.Abs(v)
	}

	return clampUnit(1 - secondLargest(mags)), nil
}

// SymmetricGap returns 1 − |λ₂| for a symmetric matrix, typically the
// conjugate D^{-1/2} K D^{-1/2} of a diffusion operator, using the Jacobi
// solver in package matrix.
//
// Complexity: O(sweeps · n³).
func SymmetricGap(S matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(S); err != nil {
		return 0, spectralErrorf(opSymmetric, err)
	}
	if S.Rows() <= 1 {
		return 1, nil
	}
	vals, _, err := matrix.EigenSym(S, symTolerance, symMaxSweeps)
	if err != nil {
		return 0, spectralErrorf(opSymmetric, err)
	}
	for i, v := range vals {
		vals[i] = math.Abs(v)
	}

	return clampUnit(1 - secondLargest(vals)), nil
}

// secondLargest sorts xs in place and returns the second-largest value.
func secondLargest(xs []float64) float64 {
	sort.Sort(sort.Reverse(sort.Float64Slice(xs)))

	return xs[1]
}
