// SPDX-License-Identifier: MIT

package simplex

import (
	"errors"
	"fmt"
	"math"
)

// Dim is the number of coordinates of a point on the 2-simplex.
const Dim = 3

// SumTolerance bounds |Σp − 1| for a valid point.
const SumTolerance = 1e-9

var (
	// ErrOffSimplex indicates coordinates that do not sum to 1 within SumTolerance.
	ErrOffSimplex = errors.New("simplex: coordinates do not sum to 1")

	// ErrBelowFloor indicates a coordinate below the required floor (or NaN).
	ErrBelowFloor = errors.New("simplex: coordinate below floor")
)

// Point is an ordered triple (p0, p1, p2) on the 2-simplex.
type Point [Dim]float64

// PointSet is an ordered sequence of points owned by one computation run.
type PointSet []Point

// Sum returns p0+p1+p2.
func (p Point) Sum() float64 { return p[0] + p[1] + p[2] }

// Validate checks the simplex constraint and the coordinate floor.
func (p Point) Validate(floor float64) error {
	for k, v := range p {
		if math.IsNaN(v) || v < floor {
			return fmt.Errorf("coordinate %d=%g floor %g: %w", k, v, floor, ErrBelowFloor)
		}
	}
	if s := p.Sum(); math.Abs(s-1) > SumTolerance {
		return fmt.Errorf("sum=%.17g: %w", s, ErrOffSimplex)
	}

	return nil
}

// Validate checks every point and reports the first offending index.
func (ps PointSet) Validate(floor float64) error {
	for i, p := range ps {
		if err := p.Validate(floor); err != nil {
			return fmt.Errorf("point %d: %w", i, err)
		}
	}

	return nil
}

// Clone returns an independent copy of the set.
func (ps PointSet) Clone() PointSet {
	if ps == nil {
		return nil
	}
	out := make(PointSet, len(ps))
	copy(out, ps)

	return out
}

// Centroid is the barycenter (1/3, 1/3, 1/3).
func Centroid() Point {
	return Point{1.0 / 3, 1.0 / 3, 1.0 / 3}
}
