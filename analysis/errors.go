// SPDX-License-Identifier: MIT
// Package analysis: sentinel error set.
// Solver outcomes (no solution, multiple solutions) are results, never errors.
// Errors below cover malformed inputs to the helpers around the solver.

package analysis

import "errors"

var (
	// ErrEmptyTarget indicates a decoded problem document without a target.
	ErrEmptyTarget = errors.New("analysis: problem has no target")

	// ErrNullDependency indicates a null entry in a decoded dependency list.
	// Dropping it would shift every later dependency into the wrong column.
	ErrNullDependency = errors.New("analysis: null dependency")

	// ErrExponentCount indicates len(exponents) != len(dependencies) in Combine.
	ErrExponentCount = errors.New("analysis: exponent count does not match dependencies")
)
