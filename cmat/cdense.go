// Package cmat provides dense complex linear algebra primitives used by the
// sheaf solver. CDense is a row-major matrix of complex128 values backed by a
// flat slice for cache friendliness.
package cmat

import (
	"fmt"
	"strings"
)

// CDense is a row-major matrix of complex128 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
// A CDense with r == 0 is valid: it represents an empty stack of rows with a
// known column count (needed when a problem declares no gluing constraints).
type CDense struct {
	r, c int          // number of rows and columns
	data []complex128 // flat backing storage, length == r*c
}

// NewCDense creates an r×c CDense matrix initialized to zeros.
// Returns ErrBadShape if rows < 0 or cols <= 0.
// Complexity: O(r*c) time and memory.
func NewCDense(rows, cols int) (*CDense, error) {
	if rows < 0 || cols <= 0 {
		return nil, fmt.Errorf("cmat: NewCDense(%d,%d): %w", rows, cols, ErrBadShape)
	}

	return &CDense{r: rows, c: cols, data: make([]complex128, rows*cols)}, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *CDense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *CDense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *CDense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("cmat: index (%d,%d) of %dx%d matrix: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *CDense) At(row, col int) (complex128, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrOutOfRange for invalid indices. Complexity: O(1).
func (m *CDense) Set(row, col int, v complex128) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Returns ErrOutOfRange for an invalid index.
// Complexity: O(c).
func (m *CDense) Row(i int) ([]complex128, error) {
	if i < 0 || i >= m.r {
		return nil, fmt.Errorf("cmat: row %d of %dx%d matrix: %w", i, m.r, m.c, ErrOutOfRange)
	}
	out := make([]complex128, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// SetRow copies v into row i. The length of v must equal Cols.
// Returns ErrOutOfRange for an invalid index and ErrDimensionMismatch for a
// wrong-length row. Complexity: O(c).
func (m *CDense) SetRow(i int, v []complex128) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("cmat: row %d of %dx%d matrix: %w", i, m.r, m.c, ErrOutOfRange)
	}
	if len(v) != m.c {
		return fmt.Errorf("cmat: SetRow length %d, want %d: %w", len(v), m.c, ErrDimensionMismatch)
	}
	copy(m.data[i*m.c:(i+1)*m.c], v)

	return nil
}

// SetRowSegment copies v into row i starting at column offset.
// The segment must lie entirely inside the row.
// Complexity: O(len(v)).
func (m *CDense) SetRowSegment(i, offset int, v []complex128) error {
	if i < 0 || i >= m.r {
		return fmt.Errorf("cmat: row %d of %dx%d matrix: %w", i, m.r, m.c, ErrOutOfRange)
	}
	if offset < 0 || offset+len(v) > m.c {
		return fmt.Errorf("cmat: segment [%d,%d) of %d columns: %w", offset, offset+len(v), m.c, ErrOutOfRange)
	}
	copy(m.data[i*m.c+offset:i*m.c+offset+len(v)], v)

	return nil
}

// Clone returns a deep copy of the matrix. Complexity: O(r*c).
func (m *CDense) Clone() *CDense {
	cp := make([]complex128, len(m.data))
	copy(cp, m.data)

	return &CDense{r: m.r, c: m.c, data: cp}
}

// VStack returns the vertical concatenation of a on top of b.
// Both operands must share a column count; either may have zero rows.
// Returns ErrDimensionMismatch on differing column counts.
// Complexity: O((ra+rb)*c).
func VStack(a, b *CDense) (*CDense, error) {
	if a.c != b.c {
		return nil, fmt.Errorf("cmat: VStack cols %d vs %d: %w", a.c, b.c, ErrDimensionMismatch)
	}
	out := &CDense{r: a.r + b.r, c: a.c, data: make([]complex128, (a.r+b.r)*a.c)}
	copy(out.data, a.data)
	copy(out.data[a.r*a.c:], b.data)

	return out, nil
}

// MulVec computes A·x and returns the resulting vector of length Rows.
// Returns ErrDimensionMismatch when len(x) != Cols.
// Complexity: O(r*c).
func (m *CDense) MulVec(x []complex128) ([]complex128, error) {
	if len(x) != m.c {
		return nil, fmt.Errorf("cmat: MulVec length %d, want %d: %w", len(x), m.c, ErrDimensionMismatch)
	}
	out := make([]complex128, m.r)
	for i := 0; i < m.r; i++ {
		// Plain row product. cmplxs.Dot conjugates its first operand
		// (BLAS dotc), which would compute conj(A)·x instead.
		row := m.data[i*m.c : (i+1)*m.c]
		var s complex128
		for j, v := range row {
			s += v * x[j]
		}
		out[i] = s
	}

	return out, nil
}

// String implements fmt.Stringer for debugging.
func (m *CDense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
			if j < m.c-1 {
				sb.WriteString(", ")
			}
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
