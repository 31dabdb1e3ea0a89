package sheaf

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bon-cdp/sheaflearn/cmat"
)

// TestFit_SingularRecovery drives Fit through a failing solve and checks the
// boundary contract: a sentinel Solution (nil Patches, +Inf obstruction) and
// a nil error.
func TestFit_SingularRecovery(t *testing.T) {
	orig := solveHermitian
	solveHermitian = func(_ *cmat.CDense, _ []complex128) ([]complex128, error) {
		return nil, fmt.Errorf("forced: %w", cmat.ErrSingularSystem)
	}
	defer func() { solveHermitian = orig }()

	p := NewProblem()
	require.NoError(t, p.AddPatch("a", Patch{
		Samples: [][]float64{{1, 2}},
		Targets: []float64{3},
		Config:  Config{NumCharacters: 2, NumPositions: 2},
	}))

	sol, err := Fit(p)
	require.NoError(t, err)
	require.Nil(t, sol.Patches)
	require.True(t, math.IsInf(sol.Obstruction, 1))
}

// Any other solve failure is not recovered; it surfaces wrapped.
func TestFit_SolveErrorPropagates(t *testing.T) {
	orig := solveHermitian
	solveHermitian = func(_ *cmat.CDense, _ []complex128) ([]complex128, error) {
		return nil, cmat.ErrNotHermitian
	}
	defer func() { solveHermitian = orig }()

	p := NewProblem()
	require.NoError(t, p.AddPatch("a", Patch{
		Samples: [][]float64{{1, 2}},
		Targets: []float64{3},
		Config:  Config{NumCharacters: 2, NumPositions: 2},
	}))

	_, err := Fit(p)
	require.ErrorIs(t, err, cmat.ErrNotHermitian)
}
