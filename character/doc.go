// Package character implements the character theory of finite cyclic groups
// used as the feature basis of the sheaf solver.
//
// The cyclic group C_n has exactly n irreducible representations, all
// one-dimensional: the characters χ_j(g^k) = ω^(jk) with ω = e^(2πi/n).
// The character table is therefore exactly the inverse-DFT matrix under this
// sign convention, and projecting a sequence onto the characters is Fourier
// analysis.
//
// For a sequence V of length m the projection onto character j averages the
// conjugated-character-weighted cyclic shifts of V:
//
//	Proj_j(V) = (1/k) Σ_{t=0}^{k-1} conj(χ_j(g^t)) · rotate(V, t),  k = min(m, n)
//
// By Maschke's theorem the projections of a sequence at least as long as the
// group order sum back to V exactly; Decompose relies on this as a
// correctness property, not a convenience.
//
// Complexity:
//
//	– Table construction: O(n²) time and memory.
//	– Project: O(k·m) time.
//	– Decompose: O(k²·m) time via rotation sums; O(n log n + n·m) when the
//	  sequence length equals the group order, using an FFT fast path that
//	  evaluates the same formula in closed form.
//
// Errors (sentinel):
//
//	– ErrBadOrder     if the requested group order is not positive.
//	– ErrBadCharacter if a character or group-element index is out of range.
//
// Example usage:
//
//	basis, err := character.New(8)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	projs := basis.Decompose(v)
//	// Σ projs == v to within floating-point tolerance.
package character
