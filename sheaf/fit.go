package sheaf

import (
	"errors"
	"fmt"
	"math"

	"github.com/bon-cdp/sheaflearn/cmat"
)

// solveHermitian is swapped out by tests exercising the degenerate-solve
// recovery path.
var solveHermitian = cmat.SolveHermitian

// Fit solves the sheaf-structured least-squares problem and reports the
// obstruction.
//
// The local (accuracy) rows and gluing (consistency) rows are concatenated
// vertically into one dense system A·w = b, solved through the ridge-
// regularized normal equations (AᴴA + λI)·w = Aᴴb, and the obstruction is
// the squared residual ‖A·w − b‖² of the unregularized system, clamped to 0
// below the residual floor.
//
// Configuration errors (see package doc) are returned eagerly, before any
// matrix is assembled. Numerical degeneracy is recovered at this boundary:
// if the regularized system is singular despite λ, Fit returns a Solution
// with nil Patches and an Obstruction of +Inf, and a nil error.
func Fit(p *Problem, opts ...Option) (*Solution, error) {
	o := gatherOptions(opts...)

	resolved, err := p.resolveConfigs()
	if err != nil {
		return nil, err
	}
	if err := validateGluings(p); err != nil {
		return nil, err
	}

	// One explicit offset pass before any matrix: the table is the single
	// source of truth for the global column layout.
	tab := buildOffsets(p, resolved)
	if tab.total == 0 {
		// No patch owns any weight column (no patches, or none with
		// resolvable positions): the model is empty and the obstruction is
		// the energy of the targets it cannot explain.
		obstruction := 0.0
		for _, name := range tab.order {
			patch, _ := p.Patch(name)
			for _, t := range patch.Targets {
				obstruction += t * t
			}
		}
		if obstruction < o.residualFloor {
			obstruction = 0
		}

		return &Solution{Patches: unpack(nil, tab), Obstruction: obstruction}, nil
	}

	local, bLocal, err := buildLocalSystem(p, tab)
	if err != nil {
		return nil, err
	}
	glue, bGlue, err := buildGluingSystem(p, tab)
	if err != nil {
		return nil, err
	}

	a, err := cmat.VStack(local, glue)
	if err != nil {
		return nil, fmt.Errorf("sheaf: assembling global system: %w", err)
	}
	b := append(bLocal, bGlue...)

	if o.trace != nil {
		fmt.Fprintf(o.trace, "sheaf: global system %dx%d (%d local rows, %d gluing rows)\n",
			a.Rows(), a.Cols(), local.Rows(), glue.Rows())
	}

	h := a.Normal(o.ridge)
	rhs, err := a.ApplyAdjoint(b)
	if err != nil {
		return nil, fmt.Errorf("sheaf: normal equations: %w", err)
	}

	w, err := solveHermitian(h, rhs)
	if err != nil {
		if errors.Is(err, cmat.ErrSingularSystem) {
			// Degenerate despite regularization: sentinel result, no error
			// past the fit boundary.
			if o.trace != nil {
				fmt.Fprintln(o.trace, "sheaf: regularized system is singular")
			}

			return &Solution{Obstruction: math.Inf(1)}, nil
		}

		return nil, fmt.Errorf("sheaf: solving normal equations: %w", err)
	}

	obstruction, err := a.ResidualNormSq(w, b)
	if err != nil {
		return nil, fmt.Errorf("sheaf: computing obstruction: %w", err)
	}
	if obstruction < o.residualFloor {
		obstruction = 0
	}
	if o.trace != nil {
		fmt.Fprintf(o.trace, "sheaf: solved %d weights, obstruction %.4e\n", len(w), obstruction)
	}

	return &Solution{Patches: unpack(w, tab), Obstruction: obstruction}, nil
}
