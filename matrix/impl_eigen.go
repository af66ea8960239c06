// SPDX-License-Identifier: MIT
// Package matrix - Jacobi eigen-decomposition for small symmetric matrices.

package matrix

import (
	"math"
)

// EigenSym computes eigenvalues and eigenvectors of a symmetric matrix via
// cyclic Jacobi sweeps.
//
// Implementation:
//   - Stage 1: Validate symmetric square input within tol.
//   - Stage 2: Sweep all (p,q), p<q, in fixed row-major order applying a
//     rotation that annihilates A[p,q]; stop once the off-diagonal
//     Frobenius norm drops below tol.
//
// Inputs:
//   - m: symmetric Matrix (within tol).
//   - tol: convergence threshold on the off-diagonal norm (typ. 1e-10..1e-12).
//   - maxSweeps: safety cap on full sweeps.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (unsorted).
//   - *Dense: Q whose columns are the matching unit eigenvectors.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrAsymmetry,
//     ErrEigenFailed (not converged after maxSweeps).
//
// Complexity:
//   - Time O(maxSweeps · n³), Space O(n²).
//
// Notes:
//   - Rotations with |A[p,q]| below tol/n² are skipped (c=1, s=0).
func EigenSym(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if err := ValidateSymmetric(m, math.Max(tol, DefaultEpsilon)); err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	n := m.Rows()
	A, err := copyToDense(m)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	Q, err := NewSquare(n)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	var i int
	for i = 0; i < n; i++ {
		Q.data[i*n+i] = 1.0
	}

	var (
		sweep          int
		p, q, r        int
		app, aqq, apq  float64
		arp, arq       float64
		theta, t, c, s float64
		skip           = tol / float64(n*n+1)
		converged      = offDiagNorm(A) < tol
	)
	for sweep = 0; sweep < maxSweeps && !converged; sweep++ {
		for p = 0; p < n-1; p++ {
			for q = p + 1; q < n; q++ {
				apq = A.data[p*n+q]
				if math.Abs(apq) <= skip {
					continue
				}
				app = A.data[p*n+p]
				aqq = A.data[q*n+q]

				// θ = (aqq−app)/(2·apq); t = sign(θ)/(|θ|+√(θ²+1)).
				theta = (aqq - app) / (2 * apq)
				t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
				c = 1.0 / math.Sqrt(t*t+1)
				s = t * c

				for r = 0; r < n; r++ {
					if r == p || r == q {
						continue
					}
					arp = A.data[r*n+p]
					arq = A.data[r*n+q]
					A.data[r*n+p] = c*arp - s*arq
					A.data[p*n+r] = A.data[r*n+p]
					A.data[r*n+q] = s*arp + c*arq
					A.data[q*n+r] = A.data[r*n+q]
				}
				A.data[p*n+p] = app - t*apq
				A.data[q*n+q] = aqq + t*apq
				A.data[p*n+q], A.data[q*n+p] = 0, 0

				for r = 0; r < n; r++ {
					arp = Q.data[r*n+p]
					arq = Q.data[r*n+q]
					Q.data[r*n+p] = c*arp - s*arq
					Q.data[r*n+q] = s*arp + c*arq
				}
			}
		}
		converged = offDiagNorm(A) < tol
	}
	if !converged {
		return nil, nil, matrixErrorf(opEigenSym, ErrEigenFailed)
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = A.data[i*n+i]
	}

	return eigs, Q, nil
}

// copyToDense materializes any square Matrix as a fresh *Dense.
func copyToDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	n := m.Rows()
	out, err := NewSquare(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*n+j] = v
		}
	}

	return out, nil
}

// offDiagNorm returns sqrt(Σ_{i≠j} A[i,j]²).
func offDiagNorm(A *Dense) float64 {
	var sum float64
	n := A.r
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				sum += A.data[i*n+j] * A.data[i*n+j]
			}
		}
	}

	return math.Sqrt(sum)
}
