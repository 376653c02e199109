// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major buffer of exact scalars with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Induced) for independent lifetimes.
//
// Ownership:
//   - A Dense exclusively owns its buffer. Constructors copy their input and
//     Row/Col/Induced/Clone return copies; no two matrices alias storage.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Induced: O(r'*c').

package matrix

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCol      = "Col"      // method tag used in error wrappers
	ctxInduce   = "Induced"  // ctor/tag for Dense.Induced
	ctxFromRows = "FromRows" // ctor tag
	ctxFromCols = "FromCols" // ctor tag
)

// ---------- Formatting literals ----------
const (
	_fmtOpen     = "["
	_fmtClose    = "]"
	_fmtSep      = ","
	_fmtRowBreak = ",\n "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//
// Inputs:
//   - method: context tag (ctxAt/ctxSet/...)
//   - row, col: coordinates (pass the single index twice for row/col-only methods)
//   - err: sentinel (e.g., ErrOutOfRange)
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Dense is a concrete row-major matrix over an exact scalar type.
//   - r,c hold dimensions (rows, cols); both may be zero.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense[T Scalar[T]] struct {
	r, c int // row and column counts (>= 0)
	data []T // contiguous row-major storage (len == r*c)
}

// NewDense creates an r×c matrix with every entry equal to T's zero.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate the buffer and fill it with Zero() (the Go zero value
//     of T is not assumed to be the additive identity).
//
// Behavior highlights:
//   - 0×N, N×0 and 0×0 are legal; every operation on them is a no-op.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Scalar[T]](rows, cols int) (*Dense[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	buf := make([]T, rows*cols)
	zero := zeroOf[T]()
	for k := range buf {
		buf[k] = zero
	}

	return &Dense[T]{r: rows, c: cols, data: buf}, nil
}

// FromRows builds a matrix from row-major nested data (rows[i][j] is entry (i,j)).
// Empty input yields a 0×0 matrix. The input is copied.
//
// Errors:
//   - ErrBadShape when rows have unequal lengths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromRows[T Scalar[T]](rows [][]T) (*Dense[T], error) {
	if len(rows) == 0 {
		return NewDense[T](0, 0)
	}
	r, c := len(rows), len(rows[0])
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromRows, err)
	}
	var i int
	for i = 0; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%s: row %d has %d entries, want %d: %w", ctxFromRows, i, len(rows[i]), c, ErrBadShape)
		}
		copy(m.data[i*c:(i+1)*c], rows[i])
	}

	return m, nil
}

// FromCols builds a matrix from column-major nested data (cols[j][i] is entry (i,j)).
// Empty input yields a 0×0 matrix. The input is copied.
//
// Errors:
//   - ErrBadShape when columns have unequal lengths.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromCols[T Scalar[T]](cols [][]T) (*Dense[T], error) {
	if len(cols) == 0 {
		return NewDense[T](0, 0)
	}
	c, r := len(cols), len(cols[0])
	m, err := NewDense[T](r, c)
	if err != nil {
		return nil, matrixErrorf(ctxFromCols, err)
	}
	var i, j int
	for j = 0; j < c; j++ {
		if len(cols[j]) != r {
			return nil, fmt.Errorf("%s: column %d has %d entries, want %d: %w", ctxFromCols, j, len(cols[j]), r, ErrBadShape)
		}
		for i = 0; i < r; i++ {
			m.data[i*c+j] = cols[j][i]
		}
	}

	return m, nil
}

// FromRow builds a 1×n row vector; empty input yields 0×0.
func FromRow[T Scalar[T]](row []T) *Dense[T] {
	if len(row) == 0 {
		return &Dense[T]{data: []T{}}
	}
	m, _ := FromRows([][]T{row}) // a single row cannot be ragged

	return m
}

// FromCol builds an n×1 column vector; empty input yields 0×0.
func FromCol[T Scalar[T]](col []T) *Dense[T] {
	if len(col) == 0 {
		return &Dense[T]{data: []T{}}
	}
	m, _ := FromCols([][]T{col}) // a single column cannot be ragged

	return m
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// empty reports whether the matrix has no cells.
func (m *Dense[T]) empty() bool { return m.r == 0 || m.c == 0 }

// indexOf computes the row-major offset or returns ErrOutOfRange.
//
// Behavior highlights:
//   - Returns the bare sentinel; public methods wrap with coordinates and method name.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// checkRow validates a row index against the current shape.
func (m *Dense[T]) checkRow(i int) error {
	if i < 0 || i >= m.r {
		return ErrOutOfRange
	}

	return nil
}

// checkCol validates a column index against the current shape.
func (m *Dense[T]) checkCol(j int) error {
	if j < 0 || j >= m.c {
		return ErrOutOfRange
	}

	return nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		var zero T

		return zero, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i. A matrix with no rows yields an empty slice;
// on an r×0 matrix i is still checked against [0, r).
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()) and Rows() > 0.
//
// Complexity:
//   - Time O(c), Space O(c).
func (m *Dense[T]) Row(i int) ([]T, error) {
	if m.r == 0 {
		return []T{}, nil
	}
	if err := m.checkRow(i); err != nil {
		return nil, denseErrorf(ctxRow, i, 0, err)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j. A matrix with no columns yields an empty
// slice; on a 0×c matrix j is still checked against [0, c).
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()) and Cols() > 0.
//
// Complexity:
//   - Time O(r), Space O(r).
func (m *Dense[T]) Col(j int) ([]T, error) {
	if m.c == 0 {
		return []T{}, nil
	}
	if err := m.checkCol(j); err != nil {
		return nil, denseErrorf(ctxCol, 0, j, err)
	}
	out := make([]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out, nil
}

// Clone returns a deep copy with its own buffer.
// Complexity: O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp}
}

// Equal reports whether o has the same shape and entries (Cmp == 0 cell-wise).
// A nil o is never equal.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if o == nil || m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k].Cmp(o.data[k]) != 0 {
			return false
		}
	}

	return true
}

// String renders the canonical bracketed form consumed by reports:
//
//	[[1,2],
//	 [3,4]]
//
// Rows are comma-separated and joined by ",\n "; fields are comma-separated
// without spaces. Any zero-sized matrix renders as "[]".
//
// Complexity:
//   - Time O(r*c).
func (m *Dense[T]) String() string {
	if m.empty() {
		return _fmtOpen + _fmtClose
	}
	var b strings.Builder
	var i, j int
	b.WriteString(_fmtOpen)
	for i = 0; i < m.r; i++ {
		if i > 0 {
			b.WriteString(_fmtRowBreak)
		}
		b.WriteString(_fmtOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				b.WriteString(_fmtSep)
			}
			b.WriteString(m.data[i*m.c+j].String())
		}
		b.WriteString(_fmtClose)
	}
	b.WriteString(_fmtClose)

	return b.String()
}

// Induced materializes a copy submatrix using explicit index sets.
//
// Implementation:
//   - Stage 1: validate every index against the current shape.
//   - Stage 2: allocate via NewDense and copy with direct offset math.
//
// Behavior highlights:
//   - Duplicates in index sets are allowed (repeated rows/cols in the result).
//   - Empty index sets yield a legal zero-sized matrix.
//
// Errors:
//   - ErrOutOfRange (index outside bounds).
//
// Complexity:
//   - Time O(rp*cp), Space O(rp*cp).
func (m *Dense[T]) Induced(rowsIdx, colsIdx []int) (*Dense[T], error) {
	var i, j int
	for i = range rowsIdx {
		if err := m.checkRow(rowsIdx[i]); err != nil {
			return nil, fmt.Errorf("Dense.%s: row index %d: %w", ctxInduce, rowsIdx[i], err)
		}
	}
	for j = range colsIdx {
		if err := m.checkCol(colsIdx[j]); err != nil {
			return nil, fmt.Errorf("Dense.%s: col index %d: %w", ctxInduce, colsIdx[j], err)
		}
	}

	rp, cp := len(rowsIdx), len(colsIdx)
	res, err := NewDense[T](rp, cp)
	if err != nil {
		return nil, matrixErrorf(ctxInduce, err)
	}
	for i = 0; i < rp; i++ {
		for j = 0; j < cp; j++ {
			res.data[i*cp+j] = m.data[rowsIdx[i]*m.c+colsIdx[j]]
		}
	}

	return res, nil
}

// Span returns the index list [from, to) for use with Induced.
func Span(from, to int) []int {
	if to <= from {
		return []int{}
	}
	out := make([]int, 0, to-from)
	for k := from; k < to; k++ {
		out = append(out, k)
	}

	return out
}
