// SPDX-License-Identifier: MIT

// Package matrix - exact linear-algebra kernels over Dense.
//
// Purpose:
//   - Matrix product, transpose and matrix-vector product over any Scalar.
//   - Used to check solutions (A*x == b, A*v == 0) without rounding.
//
// Determinism & Policy:
//   - Fixed loop orders (i→k→j for Mul, i→j for MatVec); zero left-hand
//     entries are skipped, which never changes an exact result.
//   - Operands are never mutated; every result is a fresh allocation.

package matrix

import "fmt"

const (
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
)

// Mul returns the product a*b.
//
// Implementation:
//   - Stage 1: validate non-nil operands and a.Cols() == b.Rows().
//   - Stage 2: accumulate row-major with the i→k→j order, skipping zero a[i,k].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Scalar[T]](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, fmt.Errorf("%s: %dx%d * %dx%d: %w", opMul, a.r, a.c, b.r, b.c, ErrDimensionMismatch)
	}
	res, err := NewDense[T](a.r, b.c)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	var (
		i, j, k int
		av      T
	)
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			av = a.data[i*a.c+k]
			if av.IsZero() {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*b.c+j] = res.data[i*b.c+j].Add(av.Mul(b.data[k*b.c+j]))
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Scalar[T]](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	res, err := NewDense[T](m.c, m.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res, nil
}

// MatVec computes y = m*x for a column vector x with len(x) == m.Cols().
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec[T Scalar[T]](m *Dense[T], x []T) ([]T, error) {
	if m == nil {
		return nil, matrixErrorf(opMatVec, ErrNilMatrix)
	}
	if len(x) != m.c {
		return nil, fmt.Errorf("%s: vector length %d, want %d: %w", opMatVec, len(x), m.c, ErrDimensionMismatch)
	}

	zero := zeroOf[T]()
	y := make([]T, m.r)
	var (
		i, j int
		acc  T
	)
	for i = 0; i < m.r; i++ {
		acc = zero
		for j = 0; j < m.c; j++ {
			if x[j].IsZero() {
				continue
			}
			acc = acc.Add(m.data[i*m.c+j].Mul(x[j]))
		}
		y[i] = acc
	}

	return y, nil
}
