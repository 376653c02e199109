// SPDX-License-Identifier: MIT

// Package dimension - canonical text form.
//
// Grammar (produced by String, accepted by Parse):
//
//	dim   = "-" | term { term }
//	term  = label [ "^" exp ]
//	label = "L" | "M" | "T" | "I" | "Θ" | "N" | "J"
//	exp   = [ "-" ] digits [ "/" digits ]
//
// String emits labels in base order, omits zero exponents and omits "^1".
// Parse additionally tolerates any label order and explicit "^1", but
// rejects repeated labels.
package dimension

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/metrology/rational"
)

const (
	_dimensionless = "-"
	_caret         = "^"
)

var _one = rational.Int(1)

// format renders e per the grammar above.
func format(e Exponents) string {
	if e.IsZero() {
		return _dimensionless
	}
	var sb strings.Builder
	for i := range e {
		if e[i].IsZero() {
			continue
		}
		sb.WriteString(Labels[i])
		if !e[i].Equal(_one) {
			sb.WriteString(_caret)
			sb.WriteString(e[i].String())
		}
	}

	return sb.String()
}

// Parse reads the canonical text form. Integral results are Literal,
// fractional ones LiteralRational.
func Parse(s string) (Dimension, error) {
	e, err := parseExponents(strings.TrimSpace(s))
	if err != nil {
		return Dimension{}, dimensionErrorf(fmt.Sprintf("Parse(%q)", s), err)
	}

	return Dimension{n: FromExponents(e).collapse()}, nil
}

// MustParse is Parse that panics on error.
func MustParse(s string) Dimension {
	d, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return d
}

func parseExponents(s string) (Exponents, error) {
	var (
		e    Exponents
		seen [NumBase]bool
	)
	if s == _dimensionless {
		return e, nil
	}
	if s == "" {
		return e, fmt.Errorf("empty input: %w", ErrParse)
	}

	for rest := s; rest != ""; {
		b, ok := matchLabel(rest)
		if !ok {
			return e, fmt.Errorf("unknown label at %q: %w", rest, ErrParse)
		}
		if seen[b] {
			return e, fmt.Errorf("repeated label %s: %w", Labels[b], ErrParse)
		}
		seen[b] = true
		rest = rest[len(Labels[b]):]

		if !strings.HasPrefix(rest, _caret) {
			e[b] = _one

			continue
		}
		rest = rest[len(_caret):]
		n := exponentLen(rest)
		if n == 0 {
			return e, fmt.Errorf("missing exponent after %s^: %w", Labels[b], ErrParse)
		}
		r, err := rational.Parse(rest[:n])
		if err != nil {
			return e, fmt.Errorf("exponent %q: %w", rest[:n], ErrParse)
		}
		e[b] = r
		rest = rest[n:]
	}

	return e, nil
}

// matchLabel reports which base label prefixes s.
func matchLabel(s string) (Base, bool) {
	for i, l := range Labels {
		if strings.HasPrefix(s, l) {
			return Base(i), true
		}
	}

	return 0, false
}

// exponentLen returns the byte length of the exponent token at the start of s.
func exponentLen(s string) int {
	i := 0
	if i < len(s) && s[i] == '-' {
		i++
	}
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0
	}
	if i < len(s) && s[i] == '/' {
		j := i + 1
		for j < len(s) && s[j] >= '0' && s[j] <= '9' {
			j++
		}
		if j > i+1 {
			i = j
		}
	}

	return i
}
