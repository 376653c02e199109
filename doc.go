// SPDX-License-Identifier: MIT

// Package metrology is an exact toolkit for physical dimensions and
// dimensional analysis.
//
// What is inside?
//
//	rational/  — immutable exact rationals over math/big
//	matrix/    — generic dense matrices, row operations, exact RREF
//	dimension/ — Dimension expression trees over the seven SI base dimensions,
//	             a named catalog (Force, Energy, ...) and text/JSON/YAML codecs
//	analysis/  — the solver: which exponents of given dependencies reproduce a
//	             target dimension (unique, none, or a family with free exponents)
//
// Quick start:
//
//	sol := analysis.Solve(dimension.Frequency, []dimension.Dimension{
//		dimension.Length, dimension.Mass, dimension.Acceleration,
//	})
//	fmt.Println(sol) // Unique solution:
//	                 // [[-1/2,0,1/2]]
//
// Every computation is exact: no floating point is involved anywhere, so
// results and their text forms are reproducible bit for bit.
//
// All values are immutable or caller-owned; the packages hold no global
// mutable state and are safe for concurrent use.
package metrology
