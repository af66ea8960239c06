// SPDX-License-Identifier: MIT

// Package spectral estimates the spectral gap 1 − |λ₂| of a Markov operator.
//
// EstimateGap runs power iteration on the subspace orthogonal to the uniform
// vector: every step multiplies by P and subtracts the mean (the projection
// onto 1/√n). For row-stochastic P the uniform vector is the right Perron
// eigenvector, but its orthogonal complement is invariant only when P is
// doubly stochastic; for general D⁻¹K operators the estimate is therefore an
// approximation. ExactGap and SymmetricGap compute reference values from a
// full eigen-decomposition.
//
// The default schedule is a fixed 50 iterations with no convergence test.
// WithTolerance enables an early exit on a stalled Rayleigh estimate.
package spectral
