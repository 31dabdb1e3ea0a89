package character

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Sentinel errors returned by the character basis.
var (
	// ErrBadOrder indicates that a non-positive group order was requested.
	ErrBadOrder = errors.New("character: group order must be positive")

	// ErrBadCharacter indicates that a character or group-element index is
	// outside [0, n).
	ErrBadCharacter = errors.New("character: index out of range")
)

// Basis holds the character table of the cyclic group C_n.
// The table is computed once at construction and never mutated afterwards,
// so a Basis is safe for concurrent readers.
type Basis struct {
	n     int          // group order
	table []complex128 // row-major n×n table, table[j*n+k] = χ_j(g^k) = ω^(jk)
}

// New constructs the character basis of the cyclic group of order n.
// Returns ErrBadOrder when n <= 0.
// Complexity: O(n²).
func New(n int) (*Basis, error) {
	if n <= 0 {
		return nil, fmt.Errorf("character: New(%d): %w", n, ErrBadOrder)
	}

	table := make([]complex128, n*n)
	for j := 0; j < n; j++ {
		for k := 0; k < n; k++ {
			// χ_j(g^k) = e^(2πi·jk/n). Reduce the exponent mod n to keep the
			// argument small for large j·k.
			angle := 2 * math.Pi * float64((j*k)%n) / float64(n)
			table[j*n+k] = cmplx.Exp(complex(0, angle))
		}
	}

	return &Basis{n: n, table: table}, nil
}

// Order returns the group order n. Complexity: O(1).
func (b *Basis) Order() int { return b.n }

// At evaluates character χ_j on group element g^k.
// Returns ErrBadCharacter when j or k is outside [0, n).
// Complexity: O(1).
func (b *Basis) At(j, k int) (complex128, error) {
	if j < 0 || j >= b.n || k < 0 || k >= b.n {
		return 0, fmt.Errorf("character: At(%d,%d) with order %d: %w", j, k, b.n, ErrBadCharacter)
	}

	return b.table[j*b.n+k], nil
}

// Table returns a deep copy of the n×n character table, row j holding
// character χ_j evaluated on e, g, g², ..., g^(n-1). This is the inverse-DFT
// matrix W[j,k] = ω^(jk).
// Complexity: O(n²).
func (b *Basis) Table() [][]complex128 {
	out := make([][]complex128, b.n)
	for j := 0; j < b.n; j++ {
		row := make([]complex128, b.n)
		copy(row, b.table[j*b.n:(j+1)*b.n])
		out[j] = row
	}

	return out
}

// Project computes the projection of v onto the subspace of character χ_j:
//
//	(1/k) Σ_{t=0}^{k-1} conj(χ_j(g^t)) · rotate(v, t),  k = min(len(v), n)
//
// where rotate shifts v cyclically by t positions. The result has the same
// length as v. An empty v yields an empty projection.
// Returns ErrBadCharacter when j is outside [0, n).
// Complexity: O(k·len(v)).
func (b *Basis) Project(v []complex128, j int) ([]complex128, error) {
	if j < 0 || j >= b.n {
		return nil, fmt.Errorf("character: Project character %d with order %d: %w", j, b.n, ErrBadCharacter)
	}
	m := len(v)
	if m == 0 {
		return nil, nil
	}
	k := m
	if b.n < k {
		k = b.n
	}

	proj := make([]complex128, m)
	for t := 0; t < k; t++ {
		w := cmplx.Conj(b.table[j*b.n+t])
		// rotate(v, t)[p] = v[(p-t) mod m]
		for p := 0; p < m; p++ {
			proj[p] += w * v[(p-t+m)%m]
		}
	}
	inv := complex(1/float64(k), 0)
	for p := range proj {
		proj[p] *= inv
	}

	return proj, nil
}

// Decompose splits v into its character projections for j = 0..k-1 with
// k = min(len(v), n). For len(v) >= n summing the returned projections
// reconstructs v exactly (Maschke's theorem). An empty v yields no
// projections.
//
// When len(v) == n the projections are computed through a single FFT: with
// Ṽ_j = Σ_s ω^(js)·v[s] the rotation average collapses to
// Proj_j(v)[p] = Ṽ_j·ω^(-jp)/n, which is algebraically identical to the
// general path.
// Complexity: O(n log n + n·len(v)) on the fast path, O(k²·len(v)) otherwise.
func (b *Basis) Decompose(v []complex128) [][]complex128 {
	m := len(v)
	if m == 0 {
		return nil
	}
	if m == b.n {
		return b.decomposeFFT(v)
	}

	k := m
	if b.n < k {
		k = b.n
	}
	projs := make([][]complex128, k)
	for j := 0; j < k; j++ {
		proj, err := b.Project(v, j)
		if err != nil {
			// j < k <= n by construction; Project cannot fail here.
			panic(err)
		}
		projs[j] = proj
	}

	return projs
}

// decomposeFFT is the len(v) == n fast path of Decompose.
func (b *Basis) decomposeFFT(v []complex128) [][]complex128 {
	n := b.n
	fft := fourier.NewCmplxFFT(n)

	// Sequence applies the unnormalized ω = e^(+2πi/n) transform, which is
	// exactly the character table acting on v: Ṽ_j = Σ_s ω^(js)·v[s].
	src := make([]complex128, n)
	copy(src, v)
	spectrum := fft.Sequence(nil, src)

	inv := complex(1/float64(n), 0)
	projs := make([][]complex128, n)
	for j := 0; j < n; j++ {
		proj := make([]complex128, n)
		coeff := spectrum[j] * inv
		for p := 0; p < n; p++ {
			proj[p] = coeff * cmplx.Conj(b.table[j*n+p])
		}
		projs[j] = proj
	}

	return projs
}

// Reconstruct recombines character projections with per-character
// coefficients: Σ_j coeffs[j]·projections[j]. Projections beyond the
// coefficient list (or vice versa) are ignored; the shorter length wins.
// Complexity: O(k·m).
func Reconstruct(coeffs []complex128, projections [][]complex128) []complex128 {
	k := len(coeffs)
	if len(projections) < k {
		k = len(projections)
	}
	if k == 0 {
		return nil
	}
	out := make([]complex128, len(projections[0]))
	for j := 0; j < k; j++ {
		for p, x := range projections[j] {
			out[p] += coeffs[j] * x
		}
	}

	return out
}
