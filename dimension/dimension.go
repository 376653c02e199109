// SPDX-License-Identifier: MIT

// Package dimension - the Dimension value and its expression-tree variants.
//
// Purpose:
//   - Represent a physical dimension as an immutable expression tree whose
//     leaves are exponent literals and whose inner nodes are product, quotient
//     and rational power.
//   - Resolve any tree to one flat Exponents vector on demand.
//
// Behavior highlights:
//   - The zero value Dimension{} is dimensionless.
//   - Trees are never mutated, so a node reachable from two trees is
//     indistinguishable from two private copies.
//   - Equality is semantic (flattened exponents), never structural.
//
// Complexity:
//   - Exponents(): O(nodes) with 7 rational operations per node.
package dimension

import (
	"fmt"

	"github.com/katalvlaran/metrology/rational"
)

// Kind identifies the variant at the root of a Dimension tree.
type Kind int

// Tree variants.
const (
	KindLiteral         Kind = iota // seven integer exponents
	KindLiteralRational             // seven rational exponents
	KindProduct                     // left * right
	KindQuotient                    // left / right
	KindPower                       // base ^ exponent
)

var kindNames = [...]string{"Literal", "LiteralRational", "Product", "Quotient", "Power"}

// String returns the variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// node is the closed set of tree variants.
type node interface {
	flatten() Exponents
	kind() Kind
}

type (
	literal         [NumBase]int64
	literalRational Exponents
	product         struct{ left, right node }
	quotient        struct{ left, right node }
	power           struct {
		base node
		exp  rational.Rat
	}
)

func (n literal) flatten() Exponents { return IntExponents(n) }
func (literal) kind() Kind           { return KindLiteral }

func (n literalRational) flatten() Exponents { return Exponents(n) }
func (literalRational) kind() Kind           { return KindLiteralRational }

func (n product) flatten() Exponents { return n.left.flatten().Add(n.right.flatten()) }
func (product) kind() Kind           { return KindProduct }

func (n quotient) flatten() Exponents { return n.left.flatten().Sub(n.right.flatten()) }
func (quotient) kind() Kind           { return KindQuotient }

func (n power) flatten() Exponents { return n.base.flatten().Scale(n.exp) }
func (power) kind() Kind           { return KindPower }

// Dimension is an immutable physical dimension. The zero value is dimensionless.
type Dimension struct {
	n node // nil means the dimensionless literal
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Dimension{}

// root returns the tree root, substituting the dimensionless literal for nil.
func (d Dimension) root() node {
	if d.n == nil {
		return literal{}
	}

	return d.n
}

// Literal builds a dimension from integer exponents in [L, M, T, I, Θ, N, J] order.
func Literal(l, m, t, i, th, n, j int64) Dimension {
	return Dimension{n: literal{l, m, t, i, th, n, j}}
}

// FromInts builds a Literal from an exponent array.
func FromInts(e [NumBase]int64) Dimension { return Dimension{n: literal(e)} }

// FromExponents builds a LiteralRational leaf holding e.
func FromExponents(e Exponents) Dimension { return Dimension{n: literalRational(e)} }

// Product builds the tree node a*b without simplification.
func Product(a, b Dimension) Dimension {
	return Dimension{n: product{left: a.root(), right: b.root()}}
}

// Quotient builds the tree node a/b without simplification.
func Quotient(a, b Dimension) Dimension {
	return Dimension{n: quotient{left: a.root(), right: b.root()}}
}

// PowerOf builds the tree node base^exp over base as given, without
// collapsing it first. Dimension.Pow is the collapsing variant.
func PowerOf(base Dimension, exp rational.Rat) Dimension {
	return Dimension{n: power{base: base.root(), exp: exp}}
}

// Kind reports the variant at the root of the tree.
func (d Dimension) Kind() Kind { return d.root().kind() }

// Exponents flattens the tree to its seven exponents.
func (d Dimension) Exponents() Exponents { return d.root().flatten() }

// Exponent returns the exponent of base slot i.
func (d Dimension) Exponent(i Base) (rational.Rat, error) {
	if i < 0 || int(i) >= NumBase {
		return rational.Rat{}, dimensionErrorf(fmt.Sprintf("Exponent(%d)", int(i)), ErrOutOfRange)
	}

	return d.Exponents()[i], nil
}

// WithExponent returns a LiteralRational equal to d's flattened exponents
// with slot i replaced by v.
func (d Dimension) WithExponent(i Base, v rational.Rat) (Dimension, error) {
	if i < 0 || int(i) >= NumBase {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("WithExponent(%d)", int(i)), ErrOutOfRange)
	}
	e := d.Exponents()
	e[i] = v

	return FromExponents(e), nil
}

// Equal reports whether d and o flatten to the same exponents, regardless of tree shape.
func (d Dimension) Equal(o Dimension) bool { return d.Exponents().Equal(o.Exponents()) }

// IsDimensionless reports whether every flattened exponent is zero.
func (d Dimension) IsDimensionless() bool { return d.Exponents().IsZero() }

// String renders the flattened exponents; see format for the grammar.
func (d Dimension) String() string { return format(d.Exponents()) }
