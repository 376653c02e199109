// SPDX-License-Identifier: MIT

// Package dimension - text and YAML encodings.
//
// A Dimension encodes as its canonical text ("LMT^-2"). Decoding accepts
// catalog names ("force"), the canonical text, or, in YAML only, a mapping
// from base labels to exponents:
//
//	{L: 1, M: 1, T: -2}
package dimension

import (
	"encoding"
	"fmt"

	"github.com/katalvlaran/metrology/rational"
	"gopkg.in/yaml.v3"
)

var (
	_ encoding.TextMarshaler   = Dimension{}
	_ encoding.TextUnmarshaler = (*Dimension)(nil)
	_ yaml.Marshaler           = Dimension{}
	_ yaml.Unmarshaler         = (*Dimension)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler via Resolve.
func (d *Dimension) UnmarshalText(text []byte) error {
	v, err := Resolve(string(text))
	if err != nil {
		return err
	}
	*d = v

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Dimension) MarshalYAML() (interface{}, error) { return d.String(), nil }

// UnmarshalYAML implements yaml.Unmarshaler for scalar and mapping nodes.
func (d *Dimension) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		return d.UnmarshalText([]byte(value.Value))
	case yaml.MappingNode:
		e, err := exponentsFromMapping(value)
		if err != nil {
			return dimensionErrorf(fmt.Sprintf("line %d", value.Line), err)
		}
		*d = Dimension{n: FromExponents(e).collapse()}

		return nil
	default:
		return dimensionErrorf(fmt.Sprintf("line %d: unsupported YAML node", value.Line), ErrParse)
	}
}

// exponentsFromMapping reads label/exponent pairs; Content alternates key and value nodes.
func exponentsFromMapping(value *yaml.Node) (Exponents, error) {
	var (
		e    Exponents
		seen [NumBase]bool
	)
	for i := 0; i+1 < len(value.Content); i += 2 {
		k, v := value.Content[i].Value, value.Content[i+1]
		b, ok := matchLabel(k)
		if !ok || Labels[b] != k {
			return e, fmt.Errorf("unknown base label %q: %w", k, ErrParse)
		}
		if seen[b] {
			return e, fmt.Errorf("repeated label %s: %w", k, ErrParse)
		}
		seen[b] = true
		if v.Kind != yaml.ScalarNode {
			return e, fmt.Errorf("exponent for %s is not a scalar: %w", k, ErrParse)
		}
		r, err := rational.Parse(v.Value)
		if err != nil {
			return e, fmt.Errorf("exponent %q for %s: %w", v.Value, k, ErrParse)
		}
		e[b] = r
	}

	return e, nil
}
