// SPDX-License-Identifier: MIT

package diffusion

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSigma is returned when the kernel width is not a finite positive number.
	ErrInvalidSigma = errors.New("diffusion: sigma must be finite and > 0")

	// ErrInvalidPoints is returned when an input point is off the simplex.
	ErrInvalidPoints = errors.New("diffusion: invalid point set")

	// ErrNoOperators is returned by Compose when called without operators.
	ErrNoOperators = errors.New("diffusion: no operators to compose")
)

const (
	opBuild     = "BuildOperator"
	opSymmetric = "Symmetric"
	opCompose   = "Compose"
)

// diffusionErrorf wraps err with an operation tag. Call only with err != nil.
func diffusionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
