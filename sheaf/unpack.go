package sheaf

// PatchSolution is one patch's share of a solved fit.
//
// Flat always holds the patch's slice of the global solution vector.
// Weights is the same data reshaped to (NumPositions, NumCharacters), row p
// holding the weights of every character at position p; it is nil when the
// patch's position count was unresolvable (a patch with zero samples and no
// declared positions), in which case only Flat is available.
type PatchSolution struct {
	Weights [][]complex128
	Flat    []complex128
	Config  Config
}

// PredPosition returns the position index a consumer typically predicts at:
// the final position. Returns -1 when positions are unresolvable.
func (ps PatchSolution) PredPosition() int {
	return ps.Config.NumPositions - 1
}

// Solution is the result of one Fit: per-patch weights plus the scalar
// obstruction. A Solution is immutable after creation and owned by the
// caller. Patches is nil when the fit was numerically degenerate
// (Obstruction is then +Inf).
type Solution struct {
	Patches     map[string]PatchSolution
	Obstruction float64
}

// unpack slices the flat solution vector per patch using the offset table
// and reshapes each slice to (NumPositions, NumCharacters). A patch whose
// positions never resolved keeps only the unreshaped flat slice, so one
// empty patch does not fail the whole fit.
func unpack(w []complex128, tab offsetTable) map[string]PatchSolution {
	out := make(map[string]PatchSolution, len(tab.order))
	for _, name := range tab.order {
		sp := tab.spans[name]
		flat := make([]complex128, sp.width)
		copy(flat, w[sp.offset:sp.offset+sp.width])

		ps := PatchSolution{Flat: flat, Config: sp.cfg}
		if sp.cfg.NumPositions > 0 {
			ps.Weights = make([][]complex128, sp.cfg.NumPositions)
			for p := 0; p < sp.cfg.NumPositions; p++ {
				ps.Weights[p] = flat[p*sp.cfg.NumCharacters : (p+1)*sp.cfg.NumCharacters]
			}
		}
		out[name] = ps
	}

	return out
}
