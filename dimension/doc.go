// SPDX-License-Identifier: MIT

// Package dimension models physical dimensions over the seven SI base
// dimensions L (length), M (mass), T (time), I (electric current),
// Θ (temperature), N (amount of substance) and J (luminous intensity).
//
// A Dimension is an immutable expression tree:
//
//	Literal          seven integer exponents
//	LiteralRational  seven rational exponents
//	Product          a * b
//	Quotient         a / b
//	Power            a ^ r, r rational
//
// Every tree flattens to one Exponents vector. Two dimensions are equal
// when their vectors are equal, whatever the shape of their trees:
//
//	dimension.Mass.Mul(dimension.Acceleration).Equal(dimension.Force) // true
//
// Canonical collapses a tree into a Literal and fails with
// ErrNotStandardForm when an exponent is fractional. Add and Sub exist to
// check that summed quantities agree; they fail with ErrDimensionMismatch
// otherwise.
//
// The text form ("LMT^-2", "L^1/2", "-" for dimensionless) is produced by
// String and read back by Parse; Lookup resolves catalog names such as
// "force". Dimensions implement encoding.TextMarshaler and yaml.Marshaler,
// so they embed directly in JSON and YAML documents.
package dimension
