package sheaf

import (
	"fmt"
	"math/cmplx"
)

// Predict evaluates the fitted model of one patch at a sample and returns
// the real-valued prediction: the real part of featureRow(sample) · w. This
// is exactly the quantity the accuracy rows fit and the gluing rows
// constrain.
// Returns ErrUnknownPatch when the solution holds no patch under name.
func (s *Solution) Predict(name string, sample []float64) (float64, error) {
	ps, ok := s.Patches[name]
	if !ok {
		return 0, fmt.Errorf("sheaf: Predict(%q): %w", name, ErrUnknownPatch)
	}
	row, err := FeatureRow(sample, ps.Config)
	if err != nil {
		return 0, fmt.Errorf("sheaf: Predict(%q): %w", name, err)
	}

	// Unconjugated product, matching the accuracy rows the fit minimized.
	var pred complex128
	for i, f := range row {
		pred += f * ps.Flat[i]
	}

	return real(pred), nil
}

// PositionWeights returns the magnitude of each complex weight at position
// p, the readout a model-export stage consumes (typically at PredPosition).
// Returns nil when the weights are unreshaped or p is out of range.
func (ps PatchSolution) PositionWeights(p int) []float64 {
	if ps.Weights == nil || p < 0 || p >= len(ps.Weights) {
		return nil
	}
	out := make([]float64, len(ps.Weights[p]))
	for j, w := range ps.Weights[p] {
		out[j] = cmplx.Abs(w)
	}

	return out
}
