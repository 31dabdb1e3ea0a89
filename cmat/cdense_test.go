// Package cmat_test validates the dense complex matrix primitives: shape
// and bounds checking, stacking, and the matrix-vector kernels the sheaf
// solver is built on.
package cmat_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bon-cdp/sheaflearn/cmat"
)

// ------------------------------------------------------------------------
// 1. Construction and bounds.
// ------------------------------------------------------------------------

func TestNewCDense_BadShape(t *testing.T) {
	for _, dims := range [][2]int{{-1, 2}, {2, 0}, {2, -3}} {
		_, err := cmat.NewCDense(dims[0], dims[1])
		require.ErrorIs(t, err, cmat.ErrBadShape)
	}
}

func TestNewCDense_ZeroRowsAllowed(t *testing.T) {
	// An empty stack of rows with a known column count is a valid matrix:
	// it is what a problem without gluing constraints produces.
	m, err := cmat.NewCDense(0, 5)
	require.NoError(t, err)
	require.Equal(t, 0, m.Rows())
	require.Equal(t, 5, m.Cols())
}

func TestAtSet_Bounds(t *testing.T) {
	m, err := cmat.NewCDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 4+2i))
	got, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 4+2i, got)

	for _, idx := range [][2]int{{-1, 0}, {2, 0}, {0, -1}, {0, 3}} {
		_, err := m.At(idx[0], idx[1])
		require.ErrorIs(t, err, cmat.ErrOutOfRange)
		require.ErrorIs(t, m.Set(idx[0], idx[1], 1), cmat.ErrOutOfRange)
	}
}

func TestSetRow_RowSegment(t *testing.T) {
	m, err := cmat.NewCDense(2, 4)
	require.NoError(t, err)

	require.NoError(t, m.SetRow(0, []complex128{1, 2, 3, 4}))
	require.ErrorIs(t, m.SetRow(0, []complex128{1, 2}), cmat.ErrDimensionMismatch)
	require.ErrorIs(t, m.SetRow(2, []complex128{1, 2, 3, 4}), cmat.ErrOutOfRange)

	require.NoError(t, m.SetRowSegment(1, 2, []complex128{5i, 6i}))
	require.ErrorIs(t, m.SetRowSegment(1, 3, []complex128{1, 2}), cmat.ErrOutOfRange)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []complex128{0, 0, 5i, 6i}, row)
}

func TestClone_Independent(t *testing.T) {
	m, err := cmat.NewCDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))

	orig, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(1), orig)
}

// ------------------------------------------------------------------------
// 2. Stacking and matrix-vector products.
// ------------------------------------------------------------------------

func TestVStack(t *testing.T) {
	a, err := cmat.NewCDense(1, 2)
	require.NoError(t, err)
	require.NoError(t, a.SetRow(0, []complex128{1, 2}))

	b, err := cmat.NewCDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, b.SetRow(0, []complex128{3, 4}))
	require.NoError(t, b.SetRow(1, []complex128{5, 6}))

	s, err := cmat.VStack(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, s.Rows())
	row, err := s.Row(2)
	require.NoError(t, err)
	require.Equal(t, []complex128{5, 6}, row)
}

func TestVStack_ZeroRowOperand(t *testing.T) {
	a, err := cmat.NewCDense(2, 3)
	require.NoError(t, err)
	empty, err := cmat.NewCDense(0, 3)
	require.NoError(t, err)

	s, err := cmat.VStack(a, empty)
	require.NoError(t, err)
	require.Equal(t, 2, s.Rows())
	require.Equal(t, 3, s.Cols())
}

func TestVStack_DimensionMismatch(t *testing.T) {
	a, _ := cmat.NewCDense(1, 2)
	b, _ := cmat.NewCDense(1, 3)
	_, err := cmat.VStack(a, b)
	require.ErrorIs(t, err, cmat.ErrDimensionMismatch)
}

func TestMulVec(t *testing.T) {
	m, err := cmat.NewCDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []complex128{1, 1i}))
	require.NoError(t, m.SetRow(1, []complex128{0, 2}))

	got, err := m.MulVec([]complex128{1i, 3})
	require.NoError(t, err)
	require.Equal(t, []complex128{1i + 3i, 6}, got)

	_, err = m.MulVec([]complex128{1})
	require.ErrorIs(t, err, cmat.ErrDimensionMismatch)
}

func TestMulVec_NoConjugation(t *testing.T) {
	// A·x multiplies the row entries as stored. A conjugating kernel (BLAS
	// dotc) would return +1 here instead of i·i = -1.
	m, err := cmat.NewCDense(1, 1)
	require.NoError(t, err)
	require.NoError(t, m.SetRow(0, []complex128{1i}))

	got, err := m.MulVec([]complex128{1i})
	require.NoError(t, err)
	require.Equal(t, []complex128{-1}, got)
}
