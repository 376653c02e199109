// SPDX-License-Identifier: MIT

package analysis

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/metrology/dimension"
	"github.com/katalvlaran/metrology/matrix"
	"github.com/katalvlaran/metrology/rational"
	"gopkg.in/yaml.v3"
)

// Problem asks for exponents x such that Π Dependencies[j]^x[j] has the
// dimension of Target.
type Problem struct {
	Target       dimension.Dimension   `yaml:"target" json:"target"`
	Dependencies []dimension.Dimension `yaml:"dependencies" json:"dependencies"`
}

// ActiveSlots returns the base slots that are non-zero in the target or in
// at least one dependency, in base order. Inactive slots yield 0 = 0 and are
// left out of the system.
func (p Problem) ActiveSlots() []dimension.Base {
	return activeSlots(p.flatten())
}

// flatten resolves the target and every dependency once.
func (p Problem) flatten() (dimension.Exponents, []dimension.Exponents) {
	deps := make([]dimension.Exponents, len(p.Dependencies))
	for j, d := range p.Dependencies {
		deps[j] = d.Exponents()
	}

	return p.Target.Exponents(), deps
}

func activeSlots(target dimension.Exponents, deps []dimension.Exponents) []dimension.Base {
	out := make([]dimension.Base, 0, dimension.NumBase)
	for b := 0; b < dimension.NumBase; b++ {
		active := !target[b].IsZero()
		for j := 0; !active && j < len(deps); j++ {
			active = !deps[j][b].IsZero()
		}
		if active {
			out = append(out, dimension.Base(b))
		}
	}

	return out
}

// AugmentedMatrix builds [A | b]: one row per active slot, column j holds
// dependency j's exponent and the last column holds the target's.
// It also returns the active slots in row order.
func (p Problem) AugmentedMatrix() (*matrix.Dense[rational.Rat], []dimension.Base) {
	target, deps := p.flatten()
	slots := activeSlots(target, deps)

	n := len(deps)
	rows := make([][]rational.Rat, len(slots))
	for i, b := range slots {
		row := make([]rational.Rat, n+1)
		for j := range deps {
			row[j] = deps[j][b]
		}
		row[n] = target[b]
		rows[i] = row
	}
	ab, err := matrix.FromRows(rows)
	if err != nil {
		// rows are rectangular by construction
		panic(err)
	}

	return ab, slots
}

// String renders "Ab=" followed by the augmented matrix.
func (p Problem) String() string {
	ab, _ := p.AugmentedMatrix()

	return "Ab=\n" + ab.String()
}

// Residual returns A*x - b over the active slots, in slot order. It is all
// zeros exactly when exps reproduces the target.
func (p Problem) Residual(exps []rational.Rat) ([]rational.Rat, error) {
	n := len(p.Dependencies)
	if len(exps) != n {
		return nil, fmt.Errorf("Residual(%d deps, %d exponents): %w", n, len(exps), ErrExponentCount)
	}
	ab, slots := p.AugmentedMatrix()
	if len(slots) == 0 {
		return []rational.Rat{}, nil
	}
	a, b := splitAugmented(ab, n)
	ax, err := matrix.MatVec(a, exps)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	rhs, err := b.Col(0)
	if err != nil {
		return nil, fmt.Errorf("Residual: %w", err)
	}
	for i := range ax {
		ax[i] = ax[i].Sub(rhs[i])
	}

	return ax, nil
}

// Solve is Solve(p.Target, p.Dependencies, opts...).
func (p Problem) Solve(opts ...Option) Solution {
	return Solve(p.Target, p.Dependencies, opts...)
}

// DecodeProblem reads a YAML problem document:
//
//	target: force
//	dependencies: [mass, "LT^-2"]
//
// Dimensions may be catalog names, canonical text or label/exponent mappings.
// Unknown fields are rejected, and so are null dependencies (ErrNullDependency),
// since every entry fixes the column of the exponent returned for it.
func DecodeProblem(data []byte) (Problem, error) {
	var doc struct {
		Target       *dimension.Dimension `yaml:"target"`
		Dependencies []yaml.Node          `yaml:"dependencies"`
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return Problem{}, fmt.Errorf("DecodeProblem: %w", ErrEmptyTarget)
		}
		return Problem{}, fmt.Errorf("DecodeProblem: %w", err)
	}
	if doc.Target == nil {
		return Problem{}, fmt.Errorf("DecodeProblem: %w", ErrEmptyTarget)
	}

	deps := make([]dimension.Dimension, len(doc.Dependencies))
	for j := range doc.Dependencies {
		node := &doc.Dependencies[j]
		if node.Kind == yaml.AliasNode && node.Alias != nil {
			node = node.Alias
		}
		if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
			return Problem{}, fmt.Errorf("DecodeProblem: dependency %d (line %d): %w", j, node.Line, ErrNullDependency)
		}
		if err := node.Decode(&deps[j]); err != nil {
			return Problem{}, fmt.Errorf("DecodeProblem: dependency %d: %w", j, err)
		}
	}

	return Problem{Target: *doc.Target, Dependencies: deps}, nil
}
