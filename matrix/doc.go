// SPDX-License-Identifier: MIT

// Package matrix offers an exact, generic dense matrix and the Gauss–Jordan
// machinery used to solve small linear systems without rounding.
//
// The matrix package provides:
//
//   - Dense[T], a row-major r×c grid over any Scalar[T] (rational.Rat in
//     practice), with bounds-checked At/Set and copying Row/Col/Induced.
//   - Elementary operations: SwapRows, SwapCols, ScaleRow, AddScaledRow.
//   - Pivot search: RowMaxAbs, ColMaxAbs (first occurrence wins ties).
//   - ReduceToRREF, an in-place reduction to reduced row-echelon form that
//     returns the rank, and PivotColumns to read the pivot layout back.
//   - Exact kernels: Mul, Transpose, MatVec.
//
// Zero-sized matrices are legal; every operation on them is a no-op.
// Errors are package sentinels (see errors.go) matched with errors.Is.
//
// A Dense is not safe for concurrent mutation; distinct matrices share nothing.
package matrix
