// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"
)

var (
	// ErrProbeLength is returned when a WithProbe vector does not match the operator size.
	ErrProbeLength = errors.New("spectral: probe length does not match operator")

	// ErrEigenFailed is returned when a reference eigen-decomposition does not converge.
	ErrEigenFailed = errors.New("spectral: eigen-decomposition failed")
)

const (
	opEstimate  = "EstimateGap"
	opExact     = "ExactGap"
	opSymmetric = "SymmetricGap"
)

// spectralErrorf wraps err with an operation tag. Call only with err != nil.
func spectralErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
