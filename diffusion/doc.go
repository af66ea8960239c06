// SPDX-License-Identifier: MIT

// Package diffusion turns a point set into a Markov (diffusion) operator
// under one embedding.
//
// For embedded points e_i the Gaussian affinity is
//
//	K[i,j] = exp(-‖e_i − e_j‖² / (2σ²))
//
// and the operator is its row-normalization P = D⁻¹K with D = diag(ΣⱼK[i,j]).
// K has a unit diagonal, so every degree is ≥ 1 and P is always
// row-stochastic. Small σ drives P toward the identity, large σ toward the
// uniform matrix.
//
// Operators keep K and D so callers can form the symmetric conjugate
// D^{-1/2} K D^{-1/2}, which shares P's spectrum.
package diffusion
