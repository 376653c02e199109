// SPDX-License-Identifier: MIT

// Package analysis - the solver.
//
// Implementation:
//   - Stage 1: keep the base slots that are non-zero in the target or any
//     dependency. With none left the system is trivially solved by zeros.
//   - Stage 2: build [A | b] (rows = active slots, columns = dependencies,
//     last column = target) and reduce it to RREF.
//   - Stage 3: classify. A zero coefficient row with a non-zero right-hand
//     side is 0 = c and overrides everything (NoSolution). Otherwise
//     rank == n is UniqueSolution read off column n, and rank < n is
//     MultipleSolutions.
//
// Complexity:
//   - Time O(m^2 * n) for m active slots (m <= 7) and n dependencies.
package analysis

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/metrology/dimension"
	"github.com/katalvlaran/metrology/matrix"
	"github.com/katalvlaran/metrology/rational"
)

// Solve finds exponents x with Π deps[j]^x[j] dimensionally equal to target.
// It is a pure function of its inputs; the outcome is carried in Solution.
func Solve(target dimension.Dimension, deps []dimension.Dimension, opts ...Option) Solution {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	sol := solve(Problem{Target: target, Dependencies: deps}, o)
	o.Logger.Debug("dimensional analysis solved",
		slog.String("outcome", sol.Outcome.String()),
		slog.Int("rank", sol.Rank),
		slog.Int("variables", sol.Variables),
		slog.Int("equations", sol.Equations),
	)

	return sol
}

func solve(p Problem, o Options) Solution {
	ab, slots := p.AugmentedMatrix()
	n, m := len(p.Dependencies), len(slots)

	if m == 0 {
		return Solution{
			Outcome:   UniqueSolution,
			Exponents: make([]rational.Rat, n),
			Variables: n,
			Slots:     slots,
		}
	}

	sol := Solution{
		Rank:      ab.ReduceToRREF(),
		Variables: n,
		Equations: m,
		Slots:     slots,
		ab:        ab,
	}

	if inconsistent(ab, n) {
		sol.Outcome = NoSolution

		return sol
	}

	if sol.Rank == n {
		sol.Outcome = UniqueSolution
		sol.Exponents = make([]rational.Rat, n)
		for j := 0; j < n; j++ {
			sol.Exponents[j], _ = ab.At(j, n)
		}

		return sol
	}

	sol.Outcome = MultipleSolutions
	if o.ReducedSystem {
		sol.ReducedA, sol.ReducedB = splitAugmented(ab, n)
	}

	return sol
}

// inconsistent reports whether some row of the reduced [A | b] reads 0 = c, c != 0.
func inconsistent(ab *matrix.Dense[rational.Rat], n int) bool {
	for i := 0; i < ab.Rows(); i++ {
		row, _ := ab.Row(i)
		zero := true
		for j := 0; zero && j < n; j++ {
			zero = row[j].IsZero()
		}
		if zero && !row[n].IsZero() {
			return true
		}
	}

	return false
}

// Combine rebuilds Π deps[j]^exps[j], so a solution can be checked against its target.
func Combine(deps []dimension.Dimension, exps []rational.Rat) (dimension.Dimension, error) {
	if len(deps) != len(exps) {
		return dimension.Dimension{}, fmt.Errorf("Combine(%d deps, %d exponents): %w", len(deps), len(exps), ErrExponentCount)
	}
	out := dimension.Dimensionless
	for j, d := range deps {
		out = out.Mul(d.Pow(exps[j]))
	}

	return out, nil
}
