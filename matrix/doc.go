// SPDX-License-Identifier: MIT

// Package matrix offers the dense linear-algebra primitives behind the
// diffusion spectral-gap pipeline.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-safe At/Set/Apply and an
//     optional finite-only numeric policy.
//   - Kernels: Mul, MatVecInto, RowSums, NormalizeRowsL1 (row-stochastic
//     normalization for Markov operators) and DiagScale (D₁·A·D₂).
//   - EigenSym: Jacobi eigen-decomposition for small symmetric matrices.
//   - Validators: a single source of truth for nil/shape/symmetry/stochastic
//     checks, returning package sentinels matched with errors.Is.
//
// All kernels use fixed loop orders, so identical inputs always produce
// bit-identical outputs. Sizes of interest are tens to a few hundred rows;
// nothing here is blocked or parallelized.
package matrix
