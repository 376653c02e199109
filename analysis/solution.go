// SPDX-License-Identifier: MIT

// Package analysis - solver result and its views.
//
// A Solution is exactly one of three outcomes:
//   - NoSolution: some equation reduced to 0 = non-zero.
//   - UniqueSolution: rank == variables; Exponents holds the answer.
//   - MultipleSolutions: rank < variables; free exponents exist.
//
// For MultipleSolutions, Particular fixes every free exponent at 0 and
// NullSpace lists one exponent set per free variable whose combination of
// dependencies is dimensionless (an independent dimensionless group).
package analysis

import (
	"fmt"

	"github.com/katalvlaran/metrology/dimension"
	"github.com/katalvlaran/metrology/matrix"
	"github.com/katalvlaran/metrology/rational"
	"gopkg.in/yaml.v3"
)

// Outcome classifies a Solution.
type Outcome int

// Solver outcomes.
const (
	NoSolution Outcome = iota
	UniqueSolution
	MultipleSolutions
)

var outcomeNames = [...]string{"none", "unique", "multiple"}

// String returns "none", "unique" or "multiple".
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return fmt.Sprintf("Outcome(%d)", int(o))
	}

	return outcomeNames[o]
}

// MarshalText implements encoding.TextMarshaler.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Solution is the result of Solve.
type Solution struct {
	Outcome Outcome

	// Exponents holds one exponent per dependency, in dependency order.
	// Set for UniqueSolution only.
	Exponents []rational.Rat

	Rank      int              // pivots found in [A | b]
	Variables int              // number of dependencies
	Equations int              // number of active base slots
	Slots     []dimension.Base // active base slots, in row order

	// ReducedA and ReducedB are the reduced coefficient block and right-hand
	// side. Set for MultipleSolutions unless disabled by WithReducedSystem.
	ReducedA *matrix.Dense[rational.Rat]
	ReducedB *matrix.Dense[rational.Rat]

	ab *matrix.Dense[rational.Rat] // reduced [A | b]; nil for the trivial system
}

// String renders the outcome in its report form.
func (s Solution) String() string {
	switch s.Outcome {
	case UniqueSolution:
		return "Unique solution:\n" + matrix.FromRow(s.Exponents).String()
	case MultipleSolutions:
		a, b := s.reduced()

		return fmt.Sprintf("Multiple solutions (rank = %d, variables = %d)\nReduced row echelon form:\nA:\n%s\nb:\n%s",
			s.Rank, s.Variables, a, b)
	default:
		return "No feasible solution."
	}
}

// reduced splits the reduced [A | b] into its coefficient block and right-hand side.
func (s Solution) reduced() (a, b *matrix.Dense[rational.Rat]) {
	if s.ReducedA != nil && s.ReducedB != nil {
		return s.ReducedA, s.ReducedB
	}

	return splitAugmented(s.ab, s.Variables)
}

func splitAugmented(ab *matrix.Dense[rational.Rat], n int) (a, b *matrix.Dense[rational.Rat]) {
	if ab == nil {
		return matrix.FromRow[rational.Rat](nil), matrix.FromRow[rational.Rat](nil)
	}
	rows := matrix.Span(0, ab.Rows())
	// indices are within the shape by construction
	a, _ = ab.Induced(rows, matrix.Span(0, n))
	b, _ = ab.Induced(rows, []int{n})

	return a, b
}

// pivots maps each pivot row of a consistent reduced system to its column.
func (s Solution) pivots() []int {
	if s.ab == nil {
		return nil
	}

	return s.ab.PivotColumns()
}

// FreeVariables returns the dependency indices not fixed by a pivot.
// It is empty for UniqueSolution and nil for NoSolution.
func (s Solution) FreeVariables() []int {
	switch s.Outcome {
	case NoSolution:
		return nil
	case UniqueSolution:
		return []int{}
	}
	pivot := make([]bool, s.Variables)
	for _, c := range s.pivots() {
		pivot[c] = true
	}
	out := make([]int, 0, s.Variables-s.Rank)
	for j, isPivot := range pivot {
		if !isPivot {
			out = append(out, j)
		}
	}

	return out
}

// Particular returns one exponent set reproducing the target. For
// MultipleSolutions every free exponent is 0. ok is false for NoSolution.
func (s Solution) Particular() (exps []rational.Rat, ok bool) {
	switch s.Outcome {
	case NoSolution:
		return nil, false
	case UniqueSolution:
		return append([]rational.Rat(nil), s.Exponents...), true
	}
	exps = make([]rational.Rat, s.Variables)
	for r, c := range s.pivots() {
		// consistent system: b[r] is the pivot variable's value
		exps[c], _ = s.ab.At(r, s.Variables)
	}

	return exps, true
}

// NullSpace returns a basis of exponent sets whose dependency combination is
// dimensionless, one vector per free variable: the free variable is 1, other
// free variables are 0, and each pivot variable is minus its row's entry in
// the free column. Empty for UniqueSolution, nil for NoSolution.
func (s Solution) NullSpace() [][]rational.Rat {
	free := s.FreeVariables()
	if free == nil {
		return nil
	}
	pivots := s.pivots()
	out := make([][]rational.Rat, 0, len(free))
	for _, f := range free {
		v := make([]rational.Rat, s.Variables)
		v[f] = rational.Int(1)
		for r, c := range pivots {
			x, _ := s.ab.At(r, f)
			v[c] = x.Neg()
		}
		out = append(out, v)
	}

	return out
}

// solutionReport is the YAML shape of a Solution.
type solutionReport struct {
	Outcome       string     `yaml:"outcome"`
	Rank          int        `yaml:"rank"`
	Variables     int        `yaml:"variables"`
	Equations     int        `yaml:"equations"`
	Exponents     []string   `yaml:"exponents,omitempty"`
	FreeVariables []int      `yaml:"free_variables,omitempty"`
	Particular    []string   `yaml:"particular,omitempty"`
	NullSpace     [][]string `yaml:"null_space,omitempty"`
}

var _ yaml.Marshaler = Solution{}

// MarshalYAML implements yaml.Marshaler with exact rationals as "n/d" strings.
func (s Solution) MarshalYAML() (interface{}, error) {
	rep := solutionReport{
		Outcome:   s.Outcome.String(),
		Rank:      s.Rank,
		Variables: s.Variables,
		Equations: s.Equations,
	}
	switch s.Outcome {
	case UniqueSolution:
		rep.Exponents = ratStrings(s.Exponents)
	case MultipleSolutions:
		rep.FreeVariables = s.FreeVariables()
		p, _ := s.Particular()
		rep.Particular = ratStrings(p)
		for _, v := range s.NullSpace() {
			rep.NullSpace = append(rep.NullSpace, ratStrings(v))
		}
	}

	return rep, nil
}

func ratStrings(v []rational.Rat) []string {
	out := make([]string, len(v))
	for i, r := range v {
		out[i] = r.String()
	}

	return out
}
