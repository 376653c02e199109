// SPDX-License-Identifier: MIT

// Package matrix - Gauss–Jordan reduction to reduced row-echelon form.
//
// Purpose:
//   - Reduce an exact matrix in place so that every pivot is 1 and is the only
//     non-zero entry of its column, and report the rank.
//
// Determinism & Policy:
//   - Pivot row = largest |value| in the current column among the remaining rows;
//     ties keep the first occurrence. With exact scalars this keeps denominators
//     small; it is a policy choice, not a mathematical necessity.
//   - A column with no non-zero candidate is skipped without consuming a row.
//
// Complexity:
//   - Time O(r^2 * c), Space O(1) beyond the matrix.

package matrix

// ReduceToRREF reduces m in place to reduced row-echelon form and returns its rank.
//
// Implementation:
//   - Stage 1 (forward): for target row i and pivot column p, pick the pivot row
//     via colMaxAbsFrom(p, i). If the best magnitude is zero, advance p only and
//     retry; stop when p reaches Cols() or i reaches Rows().
//   - Stage 2: swap the pivot row into position i, scale it so the pivot is 1,
//     and eliminate column p from every row below i.
//   - Stage 3: count the pivot; advance i and p.
//   - Stage 4 (backward): for every pivot row i < rank, locate its pivot column
//     by scanning forward and eliminate that column from every row above i.
//
// Behavior highlights:
//   - Zero-sized matrices return 0 untouched.
//   - Idempotent: reducing an already reduced matrix changes nothing.
//
// Returns:
//   - int: number of pivots found (rank).
//
// Complexity:
//   - Time O(r^2 * c), Space O(1).
func (m *Dense[T]) ReduceToRREF() int {
	if m.empty() {
		return 0
	}

	one := oneOf[T]()
	var (
		rank, i, k, p int
		pivotRow      int
		best, pivot   T
		factor        T
	)

	// Forward elimination (row-echelon form with unit pivots).
	for i < m.r && p < m.c {
		pivotRow, best = m.colMaxAbsFrom(p, i)
		if best.IsZero() {
			p++ // column deficiency: same row, next column

			continue
		}
		if pivotRow != i {
			m.swapRows(i, pivotRow)
		}
		pivot = m.data[i*m.c+p]
		if pivot.Cmp(one) != 0 {
			m.scaleRow(i, one.Quo(pivot))
		}
		for k = i + 1; k < m.r; k++ {
			factor = m.data[k*m.c+p]
			if !factor.IsZero() {
				m.addScaledRow(k, i, factor.Neg())
			}
		}
		rank++
		i++
		p++
	}

	// Backward elimination (clear entries above each pivot).
	p = 0
	for i = 0; i < rank; i++ {
		for p < m.c && m.data[i*m.c+p].IsZero() {
			p++
		}
		if p >= m.c {
			break
		}
		for k = 0; k < i; k++ {
			factor = m.data[k*m.c+p]
			if !factor.IsZero() {
				m.addScaledRow(k, i, factor.Neg())
			}
		}
		p++
	}

	return rank
}

// PivotColumns returns, for every non-zero row of a reduced matrix, the column
// of its leading entry, in row order. On an unreduced matrix it reports the
// leading non-zero column of each non-zero row.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func (m *Dense[T]) PivotColumns() []int {
	out := make([]int, 0, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if !m.data[i*m.c+j].IsZero() {
				out = append(out, j)

				break
			}
		}
	}

	return out
}
