// SPDX-License-Identifier: MIT

// Package rational - immutable exact rational numbers.
//
// Purpose:
//   - Provide a value type over math/big.Rat that never aliases or mutates its operands.
//   - Serve as the scalar field for matrix.Dense and as the exponent type of dimension.
//
// Behavior highlights:
//   - The zero value Rat{} is a valid 0; no constructor is required.
//   - Every operation allocates a fresh big.Rat, so Rat values may be copied and shared freely.
//   - String form is "n" for integers and "n/d" otherwise; the sign lives on the numerator.
//
// Complexity quicksheet:
//   - Add/Sub/Mul/Quo: O(size of operands) big-integer arithmetic; Cmp/IsZero: O(1) for small values.
package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// ErrSyntax is returned by Parse and UnmarshalText for malformed input.
var ErrSyntax = errors.New("rational: invalid syntax")

// Rat is an exact rational number. The zero value is 0.
type Rat struct {
	v *big.Rat // nil means 0; never mutated after construction
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Rat{}

// New returns num/den in lowest terms. It panics if den == 0, as does big.NewRat.
func New(num, den int64) Rat {
	return Rat{v: big.NewRat(num, den)}
}

// Int returns the integer n as a Rat.
func Int(n int64) Rat {
	return Rat{v: new(big.Rat).SetInt64(n)}
}

// FromBig copies x into a new Rat. A nil x yields 0.
func FromBig(x *big.Rat) Rat {
	if x == nil {
		return Rat{}
	}

	return Rat{v: new(big.Rat).Set(x)}
}

// Parse reads "n" or "n/d" in base 10; only the numerator may carry a sign.
// Leading zeros are plain decimal digits ("010/3" is 10/3). Decimal and
// exponent forms are rejected to keep the text form canonical.
func Parse(s string) (Rat, error) {
	numText, denText, isFrac := strings.Cut(s, "/")
	num, ok := parseInt(numText, true)
	if !ok {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	if !isFrac {
		return Rat{v: new(big.Rat).SetInt(num)}, nil
	}
	den, ok := parseInt(denText, false)
	if !ok || den.Sign() == 0 {
		return Rat{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return Rat{v: new(big.Rat).SetFrac(num, den)}, nil
}

// parseInt reads an optionally signed run of decimal digits.
func parseInt(s string, signed bool) (*big.Int, bool) {
	digits := s
	if signed && digits != "" && (digits[0] == '-' || digits[0] == '+') {
		digits = digits[1:]
	}
	if digits == "" {
		return nil, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return nil, false
		}
	}

	return new(big.Int).SetString(s, 10)
}

// big returns the backing value for read-only use.
func (r Rat) big() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}

	return r.v
}

// Big returns a copy of r as a *big.Rat owned by the caller.
func (r Rat) Big() *big.Rat { return new(big.Rat).Set(r.big()) }

// Zero returns 0. Together with One it lets generic code obtain the neutral
// elements from any value of the type.
func (Rat) Zero() Rat { return Rat{} }

// One returns 1.
func (Rat) One() Rat { return Int(1) }

// Add returns r + o.
func (r Rat) Add(o Rat) Rat { return Rat{v: new(big.Rat).Add(r.big(), o.big())} }

// Sub returns r - o.
func (r Rat) Sub(o Rat) Rat { return Rat{v: new(big.Rat).Sub(r.big(), o.big())} }

// Mul returns r * o.
func (r Rat) Mul(o Rat) Rat { return Rat{v: new(big.Rat).Mul(r.big(), o.big())} }

// Quo returns r / o. Division by zero panics (programmer error).
func (r Rat) Quo(o Rat) Rat {
	if o.IsZero() {
		panic("rational: division by zero")
	}

	return Rat{v: new(big.Rat).Quo(r.big(), o.big())}
}

// Neg returns -r.
func (r Rat) Neg() Rat { return Rat{v: new(big.Rat).Neg(r.big())} }

// Abs returns |r|.
func (r Rat) Abs() Rat { return Rat{v: new(big.Rat).Abs(r.big())} }

// Inv returns 1/r. Panics if r is zero.
func (r Rat) Inv() Rat {
	if r.IsZero() {
		panic("rational: division by zero")
	}

	return Rat{v: new(big.Rat).Inv(r.big())}
}

// Cmp compares r and o and returns -1, 0 or +1.
func (r Rat) Cmp(o Rat) int { return r.big().Cmp(o.big()) }

// Equal reports whether r == o.
func (r Rat) Equal(o Rat) bool { return r.Cmp(o) == 0 }

// Sign returns -1, 0 or +1.
func (r Rat) Sign() int { return r.big().Sign() }

// IsZero reports whether r == 0.
func (r Rat) IsZero() bool { return r.v == nil || r.v.Sign() == 0 }

// IsInt reports whether the denominator of r is 1.
func (r Rat) IsInt() bool { return r.big().IsInt() }

// Int64 returns r as an int64 when r is an integer that fits; ok is false otherwise.
func (r Rat) Int64() (n int64, ok bool) {
	b := r.big()
	if !b.IsInt() || !b.Num().IsInt64() {
		return 0, false
	}

	return b.Num().Int64(), true
}

// Num returns a copy of the numerator (sign included).
func (r Rat) Num() *big.Int { return new(big.Int).Set(r.big().Num()) }

// Denom returns a copy of the (positive) denominator.
func (r Rat) Denom() *big.Int { return new(big.Int).Set(r.big().Denom()) }

// String renders "n" or "n/d".
func (r Rat) String() string { return r.big().RatString() }

// MarshalText implements encoding.TextMarshaler using the String form.
func (r Rat) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler; it accepts the Parse syntax.
func (r *Rat) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}
