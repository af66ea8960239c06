// SPDX-License-Identifier: MIT

package calculi

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSigma is returned for a kernel width that is not finite and > 0.
	ErrInvalidSigma = errors.New("calculi: sigma must be finite and > 0")

	// ErrInvalidPointCount is returned for a negative point count.
	ErrInvalidPointCount = errors.New("calculi: point count must be >= 0")

	// ErrNoEmbeddings is returned when the registry is empty.
	ErrNoEmbeddings = errors.New("calculi: no embeddings registered")
)

const (
	opAggregate = "Aggregate"
	opRun       = "Run"
	opSweep     = "Sweep"
)

// calculiErrorf wraps err with an operation tag. Call only with err != nil.
func calculiErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
