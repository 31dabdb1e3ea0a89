package sheaf

import (
	"fmt"

	"github.com/bon-cdp/sheaflearn/character"
)

// FeatureRow turns one sample into one row of a patch's design matrix.
//
// The sample is decomposed into character projections of the cyclic group of
// order cfg.NumPositions, and the flattened feature at index p·C + j is the
// value of projection j at position p (C = cfg.NumCharacters). The basis is
// truncated when NumCharacters < NumPositions. When a projection index is
// missing (a sample shorter than the declared NumPositions produces fewer
// projections) the corresponding features are left at zero. This zero-fill
// is a deliberate, documented leniency, not an error.
//
// The returned row has length cfg.Width(). Pure function of its inputs.
// Complexity: O(P²·len(sample)) via the character decomposition.
func FeatureRow(sample []float64, cfg Config) ([]complex128, error) {
	if cfg.NumPositions <= 0 || cfg.NumCharacters <= 0 {
		return nil, fmt.Errorf("sheaf: FeatureRow with %d positions, %d characters: %w",
			cfg.NumPositions, cfg.NumCharacters, ErrBadConfig)
	}

	basis, err := character.New(cfg.NumPositions)
	if err != nil {
		return nil, fmt.Errorf("sheaf: FeatureRow: %w", err)
	}
	projs := basis.Decompose(complexify(sample))

	row := make([]complex128, cfg.Width())
	for p := 0; p < cfg.NumPositions; p++ {
		for j := 0; j < cfg.NumCharacters; j++ {
			if j >= len(projs) || p >= len(projs[j]) {
				continue // missing character or position: feature stays zero
			}
			row[p*cfg.NumCharacters+j] = projs[j][p]
		}
	}

	return row, nil
}

// complexify widens a real sample to the complex sequence the character
// basis operates on.
func complexify(v []float64) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = complex(x, 0)
	}

	return out
}
