// SPDX-License-Identifier: MIT
// Package matrix - row statistics used to turn kernels into Markov operators.

package matrix

// NormalizeRowsL1 returns Y where each row i is scaled to L1-norm = 1, plus
// the original per-row L1 norms.
//
// Implementation:
//   - Stage 1: Validate X (non-nil); zero-size input is a strict no-op copy.
//   - Stage 2: Compute per-row L1 norms deterministically.
//   - Stage 3: Scale rows by 1/norm; rows with norm==0 are left unchanged.
//
// Behavior highlights:
//   - For a non-negative kernel with a positive diagonal the result is
//     row-stochastic: every row sums to 1 and every entry lies in [0,1].
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) norms).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	r, c := X.Rows(), X.Cols()
	norms := make([]float64, r)
	Y, err := NewSquareOrDense(r, c)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	if r == 0 || c == 0 {
		return Y, norms, nil
	}

	var i, j, base int
	var s, v float64
	for i = 0; i < r; i++ {
		s = 0.0
		base = i * c
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
			}
			Y.data[base+j] = v
			if v < 0 {
				v = -v
			}
			s += v
		}
		norms[i] = s
		if s == 0 {
			continue // degenerate row stays as-is
		}
		for j = 0; j < c; j++ {
			Y.data[base+j] /= s
		}
	}

	return Y, norms, nil
}
