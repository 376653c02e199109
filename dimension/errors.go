// SPDX-License-Identifier: MIT
// Package dimension: sentinel error set.
// Every message is prefixed with "dimension: ..."; call sites wrap with the
// operation and operands ("Add(L, M): dimension: dimension mismatch") and
// callers match with errors.Is.

package dimension

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch is returned by Add/Sub when the operands do not
	// flatten to the same exponents. Only like dimensions may be summed.
	ErrDimensionMismatch = errors.New("dimension: dimension mismatch")

	// ErrNotStandardForm is returned when canonicalizing a dimension whose
	// flattened exponents are not all integers (or do not fit int64).
	ErrNotStandardForm = errors.New("dimension: not in standard form")

	// ErrOutOfRange indicates a base-dimension index outside [0, NumBase).
	ErrOutOfRange = errors.New("dimension: base index out of range")

	// ErrParse indicates malformed dimension text or an unknown catalog name.
	ErrParse = errors.New("dimension: invalid dimension text")
)

// dimensionErrorf wraps err with an operation tag, preserving it for errors.Is.
func dimensionErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
