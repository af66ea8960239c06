// SPDX-License-Identifier: MIT

package diffusion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/diffgap/embedding"
	"github.com/katalvlaran/diffgap/matrix"
	"github.com/katalvlaran/diffgap/simplex"
)

// Operator is the diffusion operator of one embedding over one point set.
// All fields are owned by the Operator and must be treated as read-only.
type Operator struct {
	Kind    embedding.Kind
	Sigma   float64
	Kernel  *matrix.Dense // symmetric Gaussian affinity K, unit diagonal
	Degrees []float64     // row sums of K, each ≥ 1
	P       *matrix.Dense // row-stochastic D⁻¹K
}

// Size returns the number of states (points).
func (o *Operator) Size() int { return o.P.Rows() }

// BuildOperator embeds points under the built-in kind and returns its
// diffusion operator.
//
// Errors:
//   - embedding.ErrUnknownKind for a kind outside the defaults.
//   - see Build.
func BuildOperator(points simplex.PointSet, kind embedding.Kind, sigma float64) (*Operator, error) {
	e, err := embedding.Lookup(kind)
	if err != nil {
		return nil, diffusionErrorf(opBuild, err)
	}

	return Build(points, e, sigma)
}

// Build is BuildOperator for an arbitrary embedding.
//
// Implementation:
//   - Stage 1: Validate σ and the simplex constraint of every point.
//   - Stage 2: Embed all points once.
//   - Stage 3: Squared distances (upper triangle, mirrored), then
//     K = exp(−d²/(2σ²)) in place via Dense.Apply; the diagonal is exp(0) = 1.
//   - Stage 4: matrix.RowSums gives the degrees, matrix.NormalizeRowsL1 gives P.
//
// Errors:
//   - ErrInvalidSigma, ErrInvalidPoints,
//   - matrix.ErrNaNInf if the embedding produced non-finite coordinates.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func Build(points simplex.PointSet, e embedding.Embedding, sigma float64) (*Operator, error) {
	if math.IsNaN(sigma) || math.IsInf(sigma, 0) || sigma <= 0 {
		return nil, diffusionErrorf(opBuild, fmt.Errorf("sigma=%g: %w", sigma, ErrInvalidSigma))
	}
	if err := points.Validate(0); err != nil {
		return nil, diffusionErrorf(opBuild, fmt.Errorf("%v: %w", err, ErrInvalidPoints))
	}

	n := len(points)
	var K *matrix.Dense
	var err error
	if n == 0 {
		K, err = matrix.NewSquare(0)
	} else {
		K, err = matrix.NewDenseFrom(n, n, sqDistances(e.ApplyAll(points)))
	}
	if err != nil {
		return nil, diffusionErrorf(opBuild, err)
	}
	inv := 1.0 / (2 * sigma * sigma)
	// d² = 0 maps to 1 directly: for σ small enough that inv overflows,
	// 0·Inf would be NaN.
	err = K.Apply(func(_, _ int, d2 float64) float64 {
		if d2 == 0 {
			return 1
		}
		return math.Exp(-d2 * inv)
	})
	if err != nil {
		return nil, diffusionErrorf(opBuild, err)
	}

	degrees, err := matrix.RowSums(K)
	if err != nil {
		return nil, diffusionErrorf(opBuild, err)
	}
	P, _, err := matrix.NormalizeRowsL1(K)
	if err != nil {
		return nil, diffusionErrorf(opBuild, err)
	}

	return &Operator{Kind: e.Kind, Sigma: sigma, Kernel: K, Degrees: degrees, P: P}, nil
}

// sqDistances returns the row-major matrix of squared Euclidean distances
// over vs. The diagonal is zero, so K has a unit diagonal after the kernel.
func sqDistances(vs []embedding.Vector) []float64 {
	n := len(vs)
	data := make([]float64, n*n)

	var (
		i, j, k int
		d, d2   float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d2 = 0
			for k = 0; k < simplex.Dim; k++ {
				d = vs[i][k] - vs[j][k]
				d2 += d * d
			}
			data[i*n+j] = d2
			data[j*n+i] = d2
		}
	}

	return data
}

// Symmetric returns S = D^{-1/2} K D^{-1/2}. S is symmetric and similar to
// P (S = D^{1/2} P D^{-1/2}), so both have the same eigenvalues.
// Complexity: O(n²).
func (o *Operator) Symmetric() (*matrix.Dense, error) {
	scale := make([]float64, len(o.Degrees))
	for i, d := range o.Degrees {
		scale[i] = 1 / math.Sqrt(d)
	}
	S, err := matrix.DiagScale(o.Kernel, scale, scale)
	if err != nil {
		return nil, diffusionErrorf(opSymmetric, err)
	}

	return S, nil
}

// Compose returns the operator of applying ops in order, first to last:
// ops[len-1] · … · ops[1] · ops[0]. A product of row-stochastic matrices is
// row-stochastic.
//
// Errors:
//   - ErrNoOperators for an empty list.
//   - matrix.ErrDimensionMismatch when operators cover different point sets.
//
// Complexity:
//   - Time O(k·n³) for k operators.
func Compose(ops ...*Operator) (*matrix.Dense, error) {
	if len(ops) == 0 {
		return nil, diffusionErrorf(opCompose, ErrNoOperators)
	}
	acc := ops[0].P.Clone().(*matrix.Dense)
	var err error
	for _, op := range ops[1:] {
		if acc, err = matrix.Mul(op.P, acc); err != nil {
			return nil, diffusionErrorf(opCompose, err)
		}
	}

	return acc, nil
}
