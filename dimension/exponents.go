// SPDX-License-Identifier: MIT

// Package dimension - the flattened 7-exponent vector.
//
// Every Dimension tree resolves to exactly one Exponents value; equality,
// display and the solver consult nothing else.
package dimension

import "github.com/katalvlaran/metrology/rational"

// Base indexes one of the seven SI base dimensions, in label order.
type Base int

// Base dimension slots, fixed order [L, M, T, I, Θ, N, J].
const (
	BaseLength Base = iota
	BaseMass
	BaseTime
	BaseCurrent
	BaseTemperature
	BaseAmount
	BaseLuminousIntensity
)

// NumBase is the number of base dimensions.
const NumBase = 7

// Labels are the display symbols of the base dimensions, indexed by Base.
var Labels = [NumBase]string{"L", "M", "T", "I", "Θ", "N", "J"}

// String returns the display label of b, or "?" when b is out of range.
func (b Base) String() string {
	if b < 0 || int(b) >= NumBase {
		return "?"
	}

	return Labels[b]
}

// Exponents is the flattened form of a dimension. The zero value is dimensionless.
type Exponents [NumBase]rational.Rat

// IntExponents lifts integer exponents into an Exponents vector.
func IntExponents(e [NumBase]int64) Exponents {
	var out Exponents
	for i, v := range e {
		out[i] = rational.Int(v)
	}

	return out
}

// Add returns e + o component-wise.
func (e Exponents) Add(o Exponents) Exponents {
	var out Exponents
	for i := range e {
		out[i] = e[i].Add(o[i])
	}

	return out
}

// Sub returns e - o component-wise.
func (e Exponents) Sub(o Exponents) Exponents {
	var out Exponents
	for i := range e {
		out[i] = e[i].Sub(o[i])
	}

	return out
}

// Scale returns every component multiplied by r.
func (e Exponents) Scale(r rational.Rat) Exponents {
	var out Exponents
	for i := range e {
		out[i] = e[i].Mul(r)
	}

	return out
}

// Equal reports component-wise equality.
func (e Exponents) Equal(o Exponents) bool {
	for i := range e {
		if !e[i].Equal(o[i]) {
			return false
		}
	}

	return true
}

// IsZero reports whether every component is exactly zero.
func (e Exponents) IsZero() bool {
	for i := range e {
		if !e[i].IsZero() {
			return false
		}
	}

	return true
}

// IsIntegral reports whether every component has denominator 1.
func (e Exponents) IsIntegral() bool {
	for i := range e {
		if !e[i].IsInt() {
			return false
		}
	}

	return true
}

// Ints converts to integer exponents; ok is false if any component is
// fractional or does not fit int64.
func (e Exponents) Ints() (out [NumBase]int64, ok bool) {
	for i := range e {
		if out[i], ok = e[i].Int64(); !ok {
			return [NumBase]int64{}, false
		}
	}

	return out, true
}

// String renders the canonical dimension text (see Dimension.String).
func (e Exponents) String() string { return format(e) }
