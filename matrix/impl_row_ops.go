// SPDX-License-Identifier: MIT

// Package matrix - elementary row/column operations and pivot search.
//
// Purpose:
//   - Expose the in-place primitives Gauss–Jordan elimination is built from.
//   - Keep every index bounds-checked against the current shape.
//
// Behavior highlights:
//   - Row operations are no-ops when there are no rows, column operations when
//     there are no columns. Otherwise indices are checked even if the other
//     dimension is zero (Row ops on an r×0 matrix still reject i >= r).
//   - Pivot search returns the FIRST index holding the maximal |value| (strict > scan).
//
// Complexity quicksheet:
//   - SwapRows/ScaleRow/AddScaledRow/RowMaxAbs: O(c); SwapCols/ColMaxAbs: O(r).

package matrix

const (
	ctxSwapRows     = "SwapRows"
	ctxSwapCols     = "SwapCols"
	ctxScaleRow     = "ScaleRow"
	ctxAddScaledRow = "AddScaledRow"
	ctxRowMaxAbs    = "RowMaxAbs"
	ctxColMaxAbs    = "ColMaxAbs"
)

// SwapRows exchanges rows i1 and i2 in place.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Rows()).
func (m *Dense[T]) SwapRows(i1, i2 int) error {
	if m.r == 0 {
		return nil
	}
	if err := m.checkRow(i1); err != nil {
		return denseErrorf(ctxSwapRows, i1, i2, err)
	}
	if err := m.checkRow(i2); err != nil {
		return denseErrorf(ctxSwapRows, i1, i2, err)
	}
	if i1 == i2 {
		return nil
	}
	m.swapRows(i1, i2)

	return nil
}

// swapRows is the unchecked kernel used by the reduction loop.
func (m *Dense[T]) swapRows(i1, i2 int) {
	a, b := i1*m.c, i2*m.c
	for j := 0; j < m.c; j++ {
		m.data[a+j], m.data[b+j] = m.data[b+j], m.data[a+j]
	}
}

// SwapCols exchanges columns j1 and j2 in place.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Cols()).
func (m *Dense[T]) SwapCols(j1, j2 int) error {
	if m.c == 0 {
		return nil
	}
	if err := m.checkCol(j1); err != nil {
		return denseErrorf(ctxSwapCols, j1, j2, err)
	}
	if err := m.checkCol(j2); err != nil {
		return denseErrorf(ctxSwapCols, j1, j2, err)
	}
	var base int
	for i := 0; i < m.r; i++ {
		base = i * m.c
		m.data[base+j1], m.data[base+j2] = m.data[base+j2], m.data[base+j1]
	}

	return nil
}

// ScaleRow multiplies every entry of row i by factor, in place.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
func (m *Dense[T]) ScaleRow(i int, factor T) error {
	if m.r == 0 {
		return nil
	}
	if err := m.checkRow(i); err != nil {
		return denseErrorf(ctxScaleRow, i, 0, err)
	}
	m.scaleRow(i, factor)

	return nil
}

func (m *Dense[T]) scaleRow(i int, factor T) {
	base := i * m.c
	for j := 0; j < m.c; j++ {
		m.data[base+j] = m.data[base+j].Mul(factor)
	}
}

// AddScaledRow performs row[target] += factor * row[source], in place.
// This is the elementary elimination step.
//
// Errors:
//   - ErrOutOfRange when either index is outside [0, Rows()).
func (m *Dense[T]) AddScaledRow(target, source int, factor T) error {
	if m.r == 0 {
		return nil
	}
	if err := m.checkRow(target); err != nil {
		return denseErrorf(ctxAddScaledRow, target, source, err)
	}
	if err := m.checkRow(source); err != nil {
		return denseErrorf(ctxAddScaledRow, target, source, err)
	}
	m.addScaledRow(target, source, factor)

	return nil
}

func (m *Dense[T]) addScaledRow(target, source int, factor T) {
	t, s := target*m.c, source*m.c
	for j := 0; j < m.c; j++ {
		m.data[t+j] = m.data[t+j].Add(m.data[s+j].Mul(factor))
	}
}

// RowMaxAbs returns the column index and absolute value of the largest-magnitude
// entry in row i. Ties keep the first occurrence. A matrix with no rows, or
// a valid row of an r×0 matrix, yields (0, zero).
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()) and Rows() > 0.
func (m *Dense[T]) RowMaxAbs(i int) (int, T, error) {
	if m.r == 0 {
		return 0, zeroOf[T](), nil
	}
	if err := m.checkRow(i); err != nil {
		return 0, zeroOf[T](), denseErrorf(ctxRowMaxAbs, i, 0, err)
	}
	if m.c == 0 {
		return 0, zeroOf[T](), nil
	}
	base := i * m.c
	best, bestVal := 0, m.data[base].Abs()
	var v T
	for j := 1; j < m.c; j++ {
		v = m.data[base+j].Abs()
		if v.Cmp(bestVal) > 0 {
			best, bestVal = j, v
		}
	}

	return best, bestVal, nil
}

// ColMaxAbs returns the row index and absolute value of the largest-magnitude
// entry in column j. Ties keep the first occurrence. A matrix with no
// columns, or a valid column of a 0×c matrix, yields (0, zero).
//
// Errors:
//   - ErrOutOfRange when j is outside [0, Cols()) and Cols() > 0.
func (m *Dense[T]) ColMaxAbs(j int) (int, T, error) {
	if m.c == 0 {
		return 0, zeroOf[T](), nil
	}
	if err := m.checkCol(j); err != nil {
		return 0, zeroOf[T](), denseErrorf(ctxColMaxAbs, 0, j, err)
	}
	if m.r == 0 {
		return 0, zeroOf[T](), nil
	}
	row, val := m.colMaxAbsFrom(j, 0)

	return row, val, nil
}

// colMaxAbsFrom scans column j over rows [from, r) and returns the first row
// holding the maximal |value|. Assumes from < r.
func (m *Dense[T]) colMaxAbsFrom(j, from int) (int, T) {
	best, bestVal := from, m.data[from*m.c+j].Abs()
	var v T
	for i := from + 1; i < m.r; i++ {
		v = m.data[i*m.c+j].Abs()
		if v.Cmp(bestVal) > 0 {
			best, bestVal = i, v
		}
	}

	return best, bestVal
}
