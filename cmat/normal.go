package cmat

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
)

// Normal computes the ridge-regularized normal-equations matrix
//
//	H = AᴴA + λI
//
// where Aᴴ is the conjugate transpose of the receiver. H is Hermitian by
// construction (and positive definite for λ > 0), which SolveHermitian
// relies on. A zero-row receiver yields H = λI.
// Complexity: O(r*c²) time, O(c²) memory.
func (m *CDense) Normal(lambda float64) *CDense {
	n := m.c
	h := &CDense{r: n, c: n, data: make([]complex128, n*n)}
	for i := 0; i < n; i++ {
		// Hermitian symmetry: compute the upper triangle, mirror the rest.
		for j := i; j < n; j++ {
			var sum complex128
			for k := 0; k < m.r; k++ {
				sum += cmplx.Conj(m.data[k*m.c+i]) * m.data[k*m.c+j]
			}
			h.data[i*n+j] = sum
			if i != j {
				h.data[j*n+i] = cmplx.Conj(sum)
			}
		}
		h.data[i*n+i] += complex(lambda, 0)
	}

	return h
}

// ApplyAdjoint computes Aᴴb for the receiver A.
// Returns ErrDimensionMismatch when len(b) != Rows.
// Complexity: O(r*c).
func (m *CDense) ApplyAdjoint(b []complex128) ([]complex128, error) {
	if len(b) != m.r {
		return nil, fmt.Errorf("cmat: ApplyAdjoint length %d, want %d: %w", len(b), m.r, ErrDimensionMismatch)
	}
	out := make([]complex128, m.c)
	for k := 0; k < m.r; k++ {
		row := m.data[k*m.c : (k+1)*m.c]
		for j, v := range row {
			out[j] += cmplx.Conj(v) * b[k]
		}
	}

	return out, nil
}

// ResidualNormSq computes ‖Ax − b‖² for the receiver A, i.e. the squared
// Euclidean norm of the true (unregularized) residual.
// Returns ErrDimensionMismatch on incompatible lengths.
// Complexity: O(r*c).
func (m *CDense) ResidualNormSq(x, b []complex128) (float64, error) {
	if len(b) != m.r {
		return 0, fmt.Errorf("cmat: ResidualNormSq rhs length %d, want %d: %w", len(b), m.r, ErrDimensionMismatch)
	}
	ax, err := m.MulVec(x)
	if err != nil {
		return 0, err
	}
	cmplxs.Sub(ax, b)
	norm := cmplxs.Norm(ax, 2)

	return norm * norm, nil
}
