// SPDX-License-Identifier: MIT

// Package matrix: element constraint for exact dense matrices.
// This file intentionally contains ONLY the Scalar constraint.
package matrix

import "fmt"

// Scalar is the arithmetic the matrix engine needs from its element type.
//
// Contract:
//   - T is a value type whose zero value can answer Zero and One.
//   - Operations return fresh values and never mutate the receiver or argument.
//   - Quo is only called with a non-zero divisor.
//   - Cmp orders values; it is used on Abs() results for pivot selection.
//
// rational.Rat satisfies Scalar[rational.Rat].
type Scalar[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Quo(T) T
	Neg() T
	Abs() T
	Cmp(T) int
	IsZero() bool
	Zero() T
	One() T
	fmt.Stringer
}

// zeroOf returns the additive identity of T.
func zeroOf[T Scalar[T]]() T {
	var z T

	return z.Zero()
}

// oneOf returns the multiplicative identity of T.
func oneOf[T Scalar[T]]() T {
	var z T

	return z.One()
}
