package sheaf

import (
	"fmt"

	"github.com/bon-cdp/sheaflearn/cmat"
)

// buildGluingSystem assembles the consistency-enforcing rows: one row per
// gluing constraint, of full global width. The row carries patch 1's feature
// row at patch 1's column offset and the negation of patch 2's feature row
// at patch 2's offset; every other column is zero, and the target is always
// zero, encoding
//
//	featureRow1 · w1 − featureRow2 · w2 = 0.
//
// With no gluings the result has zero rows but the correct column count, so
// vertical concatenation with the local system stays well-typed.
func buildGluingSystem(p *Problem, tab offsetTable) (*cmat.CDense, []complex128, error) {
	glue, err := cmat.NewCDense(len(p.gluings), tab.total)
	if err != nil {
		return nil, nil, fmt.Errorf("sheaf: gluing system %dx%d: %w", len(p.gluings), tab.total, err)
	}

	for i, g := range p.gluings {
		sp1, sp2 := tab.spans[g.Patch1], tab.spans[g.Patch2]

		row1, err := FeatureRow(g.Sample1, sp1.cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("sheaf: gluing %d patch %q: %w", i, g.Patch1, err)
		}
		if err := glue.SetRowSegment(i, sp1.offset, row1); err != nil {
			return nil, nil, fmt.Errorf("sheaf: gluing %d: %w", i, err)
		}

		row2, err := FeatureRow(g.Sample2, sp2.cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("sheaf: gluing %d patch %q: %w", i, g.Patch2, err)
		}
		for j := range row2 {
			row2[j] = -row2[j]
		}
		if err := glue.SetRowSegment(i, sp2.offset, row2); err != nil {
			return nil, nil, fmt.Errorf("sheaf: gluing %d: %w", i, err)
		}
	}

	// Constraint targets are identically zero.
	return glue, make([]complex128, len(p.gluings)), nil
}
