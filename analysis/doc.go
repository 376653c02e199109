// SPDX-License-Identifier: MIT

// Package analysis performs dimensional analysis: given a target dimension
// and an ordered list of dependency dimensions, it finds the exponents with
// which the dependencies must combine to reproduce the target.
//
// Each active base dimension (L, M, T, I, Θ, N, J) contributes one linear
// equation over the unknown exponents. The augmented system [A | b] is
// reduced exactly over the rationals, and the result is classified as
// NoSolution, UniqueSolution or MultipleSolutions:
//
//	sol := analysis.Solve(dimension.Frequency,
//		[]dimension.Dimension{dimension.Length, dimension.Mass, dimension.Acceleration})
//	fmt.Println(sol) // Unique solution:
//	                 // [[-1/2,0,1/2]]
//
// Underdetermined systems expose their free variables, a particular solution
// and a null-space basis (the independent dimensionless groups). Problems can
// be decoded from YAML with DecodeProblem, and solutions encode back to YAML.
//
// Solve is a pure function and safe for concurrent use.
package analysis
