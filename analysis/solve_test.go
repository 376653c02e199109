// SPDX-License-Identifier: MIT
// Package analysis_test contains unit tests for the dimensional analysis solver.
package analysis_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/katalvlaran/metrology/analysis"
	"github.com/katalvlaran/metrology/dimension"
	"github.com/katalvlaran/metrology/rational"
	"github.com/stretchr/testify/require"
)

// deps shortens dependency lists.
func deps(d ...dimension.Dimension) []dimension.Dimension { return d }

// ratStrings renders exact rationals for comparison.
func ratStrings(v []rational.Rat) []string {
	out := make([]string, len(v))
	for i, r := range v {
		out[i] = r.String()
	}

	return out
}

// requireReproduces checks Π deps^exps equals want.
func requireReproduces(t *testing.T, ds []dimension.Dimension, exps []rational.Rat, want dimension.Dimension) {
	t.Helper()
	got, err := analysis.Combine(ds, exps)
	require.NoError(t, err)
	require.True(t, got.Equal(want), "got %s want %s", got, want)
}

// groupDeps is the underdetermined fixture: mass, acceleration, force/velocity², velocity.
func groupDeps() []dimension.Dimension {
	return deps(
		dimension.Mass,
		dimension.Acceleration,
		dimension.Force.Div(dimension.Velocity.Square()),
		dimension.Velocity,
	)
}

// TestSolveUnique covers frequency from length, mass and acceleration.
func TestSolveUnique(t *testing.T) {
	ds := deps(dimension.Length, dimension.Mass, dimension.Acceleration)
	sol := analysis.Solve(dimension.Frequency, ds)

	require.Equal(t, analysis.UniqueSolution, sol.Outcome)
	require.Equal(t, []string{"-1/2", "0", "1/2"}, ratStrings(sol.Exponents))
	require.Equal(t, 3, sol.Rank)
	require.Equal(t, 3, sol.Variables)
	require.Equal(t, 3, sol.Equations)
	require.Equal(t, []dimension.Base{dimension.BaseLength, dimension.BaseMass, dimension.BaseTime}, sol.Slots)
	require.Equal(t, "Unique solution:\n[[-1/2,0,1/2]]", sol.String())
	require.Empty(t, sol.FreeVariables())
	require.Empty(t, sol.NullSpace())
	requireReproduces(t, ds, sol.Exponents, dimension.Frequency)
}

// TestSolveNoSolution covers a target with a mass component no dependency supplies.
func TestSolveNoSolution(t *testing.T) {
	sol := analysis.Solve(dimension.Force, deps(dimension.Length, dimension.Time))

	require.Equal(t, analysis.NoSolution, sol.Outcome)
	require.Equal(t, 3, sol.Rank)
	require.Nil(t, sol.Exponents)
	require.Equal(t, "No feasible solution.", sol.String())
	require.Nil(t, sol.FreeVariables())
	require.Nil(t, sol.NullSpace())
	_, ok := sol.Particular()
	require.False(t, ok)

	sol = analysis.Solve(dimension.Length, nil)
	require.Equal(t, analysis.NoSolution, sol.Outcome)
}

// TestSolveMultiple covers the underdetermined system with one dimensionless group.
func TestSolveMultiple(t *testing.T) {
	ds := groupDeps()
	sol := analysis.Solve(dimension.Dimensionless, ds)

	require.Equal(t, analysis.MultipleSolutions, sol.Outcome)
	require.Equal(t, 3, sol.Rank)
	require.Equal(t, 4, sol.Variables)
	require.Equal(t, "Multiple solutions (rank = 3, variables = 4)\n"+
		"Reduced row echelon form:\n"+
		"A:\n[[1,0,0,1/2],\n [0,1,0,1/2],\n [0,0,1,-1/2]]\n"+
		"b:\n[[0],\n [0],\n [0]]", sol.String())
	require.Equal(t, "[[1,0,0,1/2],\n [0,1,0,1/2],\n [0,0,1,-1/2]]", sol.ReducedA.String())
	require.Equal(t, "[[0],\n [0],\n [0]]", sol.ReducedB.String())

	require.Equal(t, []int{3}, sol.FreeVariables())
	p, ok := sol.Particular()
	require.True(t, ok)
	require.Equal(t, []string{"0", "0", "0", "0"}, ratStrings(p))

	ns := sol.NullSpace()
	require.Len(t, ns, 1)
	require.Equal(t, []string{"-1/2", "-1/2", "1/2", "1"}, ratStrings(ns[0]))
	requireReproduces(t, ds, ns[0], dimension.Dimensionless)
}

// TestSolveMultipleWithTarget checks the particular solution reproduces a non-trivial target.
func TestSolveMultipleWithTarget(t *testing.T) {
	ds := groupDeps()
	sol := analysis.Solve(dimension.Length, ds)

	require.Equal(t, analysis.MultipleSolutions, sol.Outcome)
	require.Equal(t, 3, sol.Rank)
	require.Equal(t, 4, sol.Variables)
	require.Equal(t, "[[1],\n [0],\n [-1]]", sol.ReducedB.String())

	p, ok := sol.Particular()
	require.True(t, ok)
	require.Equal(t, []string{"1", "0", "-1", "0"}, ratStrings(p))
	requireReproduces(t, ds, p, dimension.Length)

	// particular plus any multiple of a null vector still reproduces the target
	v := sol.NullSpace()[0]
	shifted := make([]rational.Rat, len(p))
	for i := range p {
		shifted[i] = p[i].Add(v[i].Mul(rational.Int(2)))
	}
	requireReproduces(t, ds, shifted, dimension.Length)
}

// TestSolveRedundantEquation keeps 0 = 0 rows apart from 0 = c rows.
func TestSolveRedundantEquation(t *testing.T) {
	sol := analysis.Solve(dimension.Velocity, deps(dimension.Velocity))

	require.Equal(t, analysis.UniqueSolution, sol.Outcome)
	require.Equal(t, 1, sol.Rank)
	require.Equal(t, 2, sol.Equations)
	require.Equal(t, []string{"1"}, ratStrings(sol.Exponents))

	// two proportional dependencies: a 0 = 0 row plus a free variable
	sol = analysis.Solve(dimension.Area, deps(dimension.Length, dimension.Area))
	require.Equal(t, analysis.MultipleSolutions, sol.Outcome)
	require.Equal(t, 1, sol.Rank)
	require.Equal(t, []int{1}, sol.FreeVariables())
	p, ok := sol.Particular()
	require.True(t, ok)
	requireReproduces(t, deps(dimension.Length, dimension.Area), p, dimension.Area)
}

// TestSolveTrivial covers systems with no active base slot.
func TestSolveTrivial(t *testing.T) {
	sol := analysis.Solve(dimension.Dimensionless, deps(dimension.Dimensionless, dimension.Length.Div(dimension.Length)))
	require.Equal(t, analysis.UniqueSolution, sol.Outcome)
	require.Equal(t, []string{"0", "0"}, ratStrings(sol.Exponents))
	require.Equal(t, 0, sol.Rank)
	require.Equal(t, 0, sol.Equations)
	require.Empty(t, sol.Slots)
	require.Equal(t, "Unique solution:\n[[0,0]]", sol.String())

	sol = analysis.Solve(dimension.Dimension{}, nil)
	require.Equal(t, analysis.UniqueSolution, sol.Outcome)
	require.Equal(t, "Unique solution:\n[]", sol.String())
}

// TestSolveFractionalDependencies solves against dependencies with rational exponents.
func TestSolveFractionalDependencies(t *testing.T) {
	ds := deps(dimension.Length.Sqrt(), dimension.Time)
	sol := analysis.Solve(dimension.Velocity, ds)
	require.Equal(t, analysis.UniqueSolution, sol.Outcome)
	require.Equal(t, []string{"2", "-1"}, ratStrings(sol.Exponents))
	requireReproduces(t, ds, sol.Exponents, dimension.Velocity)
}

// TestWithReducedSystem disables the exported reduced blocks only.
func TestWithReducedSystem(t *testing.T) {
	full := analysis.Solve(dimension.Dimensionless, groupDeps())
	bare := analysis.Solve(dimension.Dimensionless, groupDeps(), analysis.WithReducedSystem(false))

	require.Nil(t, bare.ReducedA)
	require.Nil(t, bare.ReducedB)
	require.Equal(t, full.String(), bare.String())
	require.Len(t, bare.NullSpace(), 1)
	require.Equal(t, ratStrings(full.NullSpace()[0]), ratStrings(bare.NullSpace()[0]))
}

// TestWithLogger checks one structured debug record per call.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	analysis.Solve(dimension.Frequency, deps(dimension.Length, dimension.Mass, dimension.Acceleration),
		analysis.WithLogger(logger), analysis.WithLogger(nil))

	out := buf.String()
	require.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	require.Contains(t, out, `"msg":"dimensional analysis solved"`)
	require.Contains(t, out, `"outcome":"unique"`)
	require.Contains(t, out, `"rank":3`)
	require.Contains(t, out, `"variables":3`)
	require.Contains(t, out, `"equations":3`)
}

// TestProblem covers the augmented matrix view and Problem.Solve.
func TestProblem(t *testing.T) {
	p := analysis.Problem{
		Target:       dimension.Frequency,
		Dependencies: deps(dimension.Length, dimension.Mass, dimension.Acceleration),
	}
	require.Equal(t, "Ab=\n[[1,0,1,0],\n [0,1,0,0],\n [0,0,-2,-1]]", p.String())

	ab, slots := p.AugmentedMatrix()
	require.Equal(t, 3, ab.Rows())
	require.Equal(t, 4, ab.Cols())
	require.Equal(t, slots, p.ActiveSlots())

	require.Equal(t, analysis.Solve(p.Target, p.Dependencies).String(), p.Solve().String())

	// inactive slots are dropped; an all-inactive problem has an empty system
	require.Equal(t, "Ab=\n[]", analysis.Problem{}.String())
	require.Equal(t, []dimension.Base{dimension.BaseTemperature},
		analysis.Problem{Target: dimension.Temperature}.ActiveSlots())
}

// TestCombine checks the exponent count guard.
func TestCombine(t *testing.T) {
	d, err := analysis.Combine(nil, nil)
	require.NoError(t, err)
	require.True(t, d.IsDimensionless())

	_, err = analysis.Combine(deps(dimension.Length), nil)
	require.ErrorIs(t, err, analysis.ErrExponentCount)
	require.EqualError(t, err, "Combine(1 deps, 0 exponents): analysis: exponent count does not match dependencies")
}

// TestOutcomeString covers names and the fallback.
func TestOutcomeString(t *testing.T) {
	require.Equal(t, "none", analysis.NoSolution.String())
	require.Equal(t, "unique", analysis.UniqueSolution.String())
	require.Equal(t, "multiple", analysis.MultipleSolutions.String())
	require.Equal(t, "Outcome(7)", analysis.Outcome(7).String())
}

// TestResidual checks A*x - b for solutions and non-solutions.
func TestResidual(t *testing.T) {
	p := analysis.Problem{
		Target:       dimension.Frequency,
		Dependencies: deps(dimension.Length, dimension.Mass, dimension.Acceleration),
	}
	sol := p.Solve()
	r, err := p.Residual(sol.Exponents)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "0", "0"}, ratStrings(r))

	r, err = p.Residual([]rational.Rat{rational.Int(1), rational.Int(0), rational.Int(0)})
	require.NoError(t, err)
	require.Equal(t, []string{"1", "0", "1"}, ratStrings(r))

	g := analysis.Problem{Target: dimension.Dimensionless, Dependencies: groupDeps()}
	r, err = g.Residual(g.Solve().NullSpace()[0])
	require.NoError(t, err)
	require.Equal(t, []string{"0", "0", "0"}, ratStrings(r))

	_, err = p.Residual(nil)
	require.ErrorIs(t, err, analysis.ErrExponentCount)

	r, err = analysis.Problem{}.Residual(nil)
	require.NoError(t, err)
	require.Empty(t, r)
}
