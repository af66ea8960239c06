// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_simplex.go — deterministic clustered point cloud on the 2-simplex.
//
// Contract:
//   • BuildSimplex(n, seed, opts...) returns exactly n points (empty for n == 0).
//   • Strict determinism per (n, seed, options); no panics; no global state.
//   • O(n) time and O(n) memory.
//
// Per point, the random stream is consumed in a fixed order:
//   1. one draw picks the center index floor(u·len(centers));
//   2. three draws add noise (2u−1)·a to p0, p1, p2 in that order.
// Then every coordinate is clamped to the floor and the point is divided by
// its sum. Renormalizing can push a clamped coordinate back under the floor
// (the sum exceeds 1), so enforceFloor pins such coordinates and rescales the
// rest; it is a no-op for points that already satisfy the floor.

package builder

import (
	"fmt"

	"github.com/katalvlaran/diffgap/simplex"
)

// BuildSimplex samples n points clustered around the configured centers.
//
// Errors:
//   - ErrBadSize when n < 0.
//   - ErrOptionViolation when a configured center is off the simplex or has
//     a negative coordinate. Centers below the floor are fine: the clamp
//     lifts every sample anyway.
//
// Complexity:
//   - O(n) time, O(n) memory.
func BuildSimplex(n int, seed int64, opts ...BuilderOption) (simplex.PointSet, error) {
	if n < 0 {
		return nil, builderErrorf(MethodSimplex, fmt.Sprintf("n=%d", n), ErrBadSize)
	}

	cfg := newBuilderConfig(opts...)
	for i, c := range cfg.centers {
		if err := c.Validate(0); err != nil {
			return nil, builderErrorf(MethodSimplex, fmt.Sprintf("center %d: %v", i, err), ErrOptionViolation)
		}
	}
	rng := rngFrom(cfg, seed)

	out := make(simplex.PointSet, n)
	nc := len(cfg.centers)
	var (
		idx int
		p   simplex.Point
		k   int
		sum float64
	)
	for i := 0; i < n; i++ {
		idx = int(rng.Float64() * float64(nc))
		if idx >= nc { // a Source returning exactly 1.0 must not index past the end
			idx = nc - 1
		}
		p = cfg.centers[idx]

		for k = 0; k < simplex.Dim; k++ {
			p[k] += (2*rng.Float64() - 1) * cfg.noise
		}

		sum = 0
		for k = 0; k < simplex.Dim; k++ {
			if p[k] < cfg.floor {
				p[k] = cfg.floor
			}
			sum += p[k]
		}
		for k = 0; k < simplex.Dim; k++ {
			p[k] /= sum
		}

		out[i] = enforceFloor(p, cfg.floor)
	}

	return out, nil
}

// enforceFloor pins coordinates below floor to floor and rescales the
// remaining coordinates so the sum stays 1. Each pass pins at least one
// more coordinate, so Dim passes always suffice.
func enforceFloor(p simplex.Point, floor float64) simplex.Point {
	var (
		k           int
		low         bool
		pinned      float64
		free, scale float64
	)
	for pass := 0; pass < simplex.Dim; pass++ {
		low = false
		for k = 0; k < simplex.Dim; k++ {
			if p[k] < floor {
				low = true
				break
			}
		}
		if !low {
			return p
		}

		pinned, free = 0, 0
		for k = 0; k < simplex.Dim; k++ {
			if p[k] <= floor {
				pinned += floor
			} else {
				free += p[k]
			}
		}
		scale = (1 - pinned) / free
		for k = 0; k < simplex.Dim; k++ {
			if p[k] <= floor {
				p[k] = floor
			} else {
				p[k] *= scale
			}
		}
	}

	return p
}
