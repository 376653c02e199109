// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures for the Dense kernels.
//   - Keep literals short: q(1,2) is 1/2, z(3) is the integer 3.

package matrix_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/metrology/matrix"
	"github.com/katalvlaran/metrology/rational"
	"github.com/stretchr/testify/require"
)

// ratT shortens nested literals in tables.
type ratT = rational.Rat

// q builds the rational num/den.
func q(num, den int64) rational.Rat { return rational.New(num, den) }

// z builds the integer n as a rational.
func z(n int64) rational.Rat { return rational.Int(n) }

// ints converts a row-major integer table into rationals.
func ints(rows ...[]int64) [][]rational.Rat {
	out := make([][]rational.Rat, len(rows))
	for i, row := range rows {
		out[i] = make([]rational.Rat, len(row))
		for j, v := range row {
			out[i][j] = rational.Int(v)
		}
	}

	return out
}

// MustFromRows builds a rational Dense from row-major data or fails the test.
func MustFromRows(t *testing.T, rows [][]rational.Rat) *matrix.Dense[rational.Rat] {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustDense allocates an r×c rational Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense[rational.Rat] {
	t.Helper()
	m, err := matrix.NewDense[rational.Rat](r, c)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt[T matrix.Scalar[T]](t *testing.T, m *matrix.Dense[T], i, j int) T {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireRat asserts exact rational equality with a readable failure message.
func RequireRat(t *testing.T, want, got rational.Rat, msgAndArgs ...interface{}) {
	t.Helper()
	require.Truef(t, want.Equal(got), "want %s, got %s %v", want, got, msgAndArgs)
}

// RequireMatrix compares m cell-by-cell against an expected rational table.
func RequireMatrix(t *testing.T, want [][]rational.Rat, m *matrix.Dense[rational.Rat]) {
	t.Helper()
	require.Equal(t, len(want), m.Rows(), "rows")
	for i := range want {
		require.Equal(t, len(want[i]), m.Cols(), "cols")
		for j := range want[i] {
			RequireRat(t, want[i][j], MustAt(t, m, i, j), i, j)
		}
	}
}

// fl is a float64 scalar used to show the engine is generic over its element type.
type fl float64

func (a fl) Add(b fl) fl    { return a + b }
func (a fl) Sub(b fl) fl    { return a - b }
func (a fl) Mul(b fl) fl    { return a * b }
func (a fl) Quo(b fl) fl    { return a / b }
func (a fl) Neg() fl        { return -a }
func (a fl) IsZero() bool   { return a == 0 }
func (fl) Zero() fl         { return 0 }
func (fl) One() fl          { return 1 }
func (a fl) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }
func (a fl) Abs() fl {
	if a < 0 {
		return -a
	}

	return a
}
func (a fl) Cmp(b fl) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}
