// SPDX-License-Identifier: MIT

// Package dimension - algebra over Dimension values.
//
// Determinism & Policy:
//   - Mul/Div/Reciprocal/Square/Sqrt build new tree nodes and never fail.
//   - Add/Sub succeed only for equal dimensions and return a canonical Literal.
//   - Pow collapses its receiver to a single leaf before wrapping it, so
//     repeated powers never grow the tree deeper than two levels.
package dimension

import (
	"fmt"

	"github.com/katalvlaran/metrology/rational"
)

var (
	_half   = rational.New(1, 2)
	_two    = rational.Int(2)
	_negOne = rational.Int(-1)
)

// Mul returns the product d*o.
func (d Dimension) Mul(o Dimension) Dimension { return Product(d, o) }

// Div returns the quotient d/o.
func (d Dimension) Div(o Dimension) Dimension { return Quotient(d, o) }

// Add checks that d and o are the same dimension and returns it in canonical form.
// Summing quantities never changes their dimension.
func (d Dimension) Add(o Dimension) (Dimension, error) { return d.sameAs("Add", o) }

// Sub is Add: subtraction is only defined between like dimensions.
func (d Dimension) Sub(o Dimension) (Dimension, error) { return d.sameAs("Sub", o) }

func (d Dimension) sameAs(op string, o Dimension) (Dimension, error) {
	if !d.Equal(o) {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("%s(%s, %s)", op, d, o), ErrDimensionMismatch)
	}
	c, err := d.Canonical()
	if err != nil {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("%s(%s, %s)", op, d, o), err)
	}

	return c, nil
}

// Pow returns d^r over the collapsed form of d.
func (d Dimension) Pow(r rational.Rat) Dimension {
	return Dimension{n: power{base: d.collapse(), exp: r}}
}

// PowInt returns d^k.
func (d Dimension) PowInt(k int64) Dimension { return d.Pow(rational.Int(k)) }

// Reciprocal returns d^-1.
func (d Dimension) Reciprocal() Dimension { return d.Pow(_negOne) }

// Square returns d^2.
func (d Dimension) Square() Dimension { return d.Pow(_two) }

// Sqrt returns d^(1/2).
func (d Dimension) Sqrt() Dimension { return d.Pow(_half) }

// Canonical flattens d to a Literal with integer exponents.
// It fails with ErrNotStandardForm when any exponent is fractional or
// outside the int64 range.
func (d Dimension) Canonical() (Dimension, error) {
	e := d.Exponents()
	ints, ok := e.Ints()
	if !ok {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("Canonical(%s)", e), ErrNotStandardForm)
	}

	return FromInts(ints), nil
}

// MustCanonical is Canonical that panics on error, for package-level tables.
func (d Dimension) MustCanonical() Dimension {
	c, err := d.Canonical()
	if err != nil {
		panic(err)
	}

	return c
}

// collapse flattens d to one leaf: a Literal when integral, else a LiteralRational.
func (d Dimension) collapse() node {
	e := d.Exponents()
	if ints, ok := e.Ints(); ok {
		return literal(ints)
	}

	return literalRational(e)
}
