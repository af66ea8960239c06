// SPDX-License-Identifier: MIT

// Package embedding is the library of coordinate-wise "calculi": pure scalar
// transforms applied independently to each coordinate of a simplex point.
//
// Four kinds ship by default, in canonical order:
//
//	classical  x
//	log        ln(x + δ), δ = 1e-10
//	power      √x
//	curvature  2·arcsin(√x)
//
// A new calculus is one more Embedding value in a Registry; nothing downstream
// changes.
package embedding
