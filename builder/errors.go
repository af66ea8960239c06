// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with builderErrorf, which keeps %w.
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrBadSize indicates an invalid dataset size (e.g. n < 0).
var ErrBadSize = errors.New("builder: invalid size/length")

// ErrOptionViolation indicates an option combination that can only be
// detected once all options are resolved (e.g. a center off the simplex).
var ErrOptionViolation = errors.New("builder: invalid option value")

// builderErrorf wraps err with the given method context and detail message.
// It returns an error of the form "<Method>: <detail>: <err>".
func builderErrorf(method, detail string, err error) error {
	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
