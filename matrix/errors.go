// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// a call-site tag) and tests MUST check them via errors.Is. No operation panics
// on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Public methods wrap with the method name and the
// offending coordinates ("Dense.At(3,0): matrix: index out of range"); callers
// still match with errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	// Zero rows or zero columns are legal (empty matrix).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrBadShape is returned when nested input is ragged (rows of unequal
	// length in FromRows, columns of unequal length in FromCols).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch indicates incompatible operand shapes (Mul inner
	// sizes, MatVec vector length).
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix is returned when a nil *Dense is passed where an operand is required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrOutOfRange indicates that an index (row or column) is outside the
	// current shape. Public accessors MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")
)
