package sheaf

import (
	"fmt"

	"github.com/bon-cdp/sheaflearn/cmat"
)

// buildLocalSystem assembles the accuracy-fitting rows: one feature row per
// sample of every patch, placed at the patch's column offset so the stacked
// matrix is block-diagonal across patches. Patches are iterated in insertion
// order. Returns the stacked matrix together with the complex target vector.
func buildLocalSystem(p *Problem, tab offsetTable) (*cmat.CDense, []complex128, error) {
	rows := 0
	for _, name := range tab.order {
		patch, _ := p.Patch(name)
		rows += len(patch.Samples)
	}

	local, err := cmat.NewCDense(rows, tab.total)
	if err != nil {
		return nil, nil, fmt.Errorf("sheaf: local system %dx%d: %w", rows, tab.total, err)
	}
	targets := make([]complex128, rows)

	r := 0
	for _, name := range tab.order {
		patch, _ := p.Patch(name)
		sp := tab.spans[name]
		for i, sample := range patch.Samples {
			row, err := FeatureRow(sample, sp.cfg)
			if err != nil {
				return nil, nil, fmt.Errorf("sheaf: patch %q sample %d: %w", name, i, err)
			}
			if err := local.SetRowSegment(r, sp.offset, row); err != nil {
				return nil, nil, fmt.Errorf("sheaf: patch %q sample %d: %w", name, i, err)
			}
			targets[r] = complex(patch.Targets[i], 0)
			r++
		}
	}

	return local, targets, nil
}

// validateGluings checks every gluing against the problem definition:
// both referenced patches must exist (ErrUnknownPatch) and have at least one
// sample (ErrEmptyGluedPatch: a patch without samples has no feature basis
// to constrain). Runs eagerly, before any matrix is assembled.
func validateGluings(p *Problem) error {
	for i, g := range p.gluings {
		for _, name := range []string{g.Patch1, g.Patch2} {
			patch, ok := p.patches[name]
			if !ok {
				return fmt.Errorf("sheaf: gluing %d references %q: %w", i, name, ErrUnknownPatch)
			}
			if len(patch.Samples) == 0 {
				return fmt.Errorf("sheaf: gluing %d references %q: %w", i, name, ErrEmptyGluedPatch)
			}
		}
	}

	return nil
}
