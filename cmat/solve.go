package cmat

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// SolveHermitian solves H·w = rhs for a Hermitian positive-definite H.
//
// The complex system is embedded into an equivalent real symmetric system of
// twice the size,
//
//	[ Re(H)  -Im(H) ] [ Re(w) ]   [ Re(rhs) ]
//	[ Im(H)   Re(H) ] [ Im(w) ] = [ Im(rhs) ]
//
// which is solved by Cholesky factorization. The embedding is symmetric
// exactly when H is Hermitian and positive definite exactly when H is, so a
// failed factorization means the original system is numerically singular;
// in that case ErrSingularSystem is returned.
//
// Complexity: O(n³) time, O(n²) memory, n = H.Cols.
func SolveHermitian(h *CDense, rhs []complex128) ([]complex128, error) {
	if h.r != h.c {
		return nil, fmt.Errorf("cmat: SolveHermitian %dx%d matrix: %w", h.r, h.c, ErrDimensionMismatch)
	}
	n := h.c
	if len(rhs) != n {
		return nil, fmt.Errorf("cmat: SolveHermitian rhs length %d, want %d: %w", len(rhs), n, ErrDimensionMismatch)
	}

	// Hermitian guard: the embedding below is only valid for H = Hᴴ.
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if h.data[i*n+j] != cmplx.Conj(h.data[j*n+i]) {
				return nil, fmt.Errorf("cmat: SolveHermitian entry (%d,%d): %w", i, j, ErrNotHermitian)
			}
		}
	}

	// Real symmetric embedding of size 2n.
	sym := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := h.data[i*n+j]
			sym.SetSym(i, j, real(v))
			sym.SetSym(n+i, n+j, real(v))
			// Upper-right block is -Im(H); symmetry of the embedding holds
			// because Im(H) is antisymmetric for Hermitian H.
			sym.SetSym(i, n+j, -imag(v))
			if i != j {
				sym.SetSym(j, n+i, -imag(h.data[j*n+i]))
			}
		}
	}

	b := mat.NewVecDense(2*n, nil)
	for i := 0; i < n; i++ {
		b.SetVec(i, real(rhs[i]))
		b.SetVec(n+i, imag(rhs[i]))
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, ErrSingularSystem
	}
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, b); err != nil {
		return nil, fmt.Errorf("cmat: SolveHermitian: %w", ErrSingularSystem)
	}

	w := make([]complex128, n)
	for i := 0; i < n; i++ {
		w[i] = complex(x.AtVec(i), x.AtVec(n+i))
	}

	return w, nil
}
