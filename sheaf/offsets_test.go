package sheaf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestBuildOffsets_NonOverlappingCover pins the column-layout invariant:
// spans of distinct patches never overlap and together cover
// [0, total) exactly, in patch insertion order.
func TestBuildOffsets_NonOverlappingCover(t *testing.T) {
	p := NewProblem()
	require.NoError(t, p.AddPatch("a", Patch{
		Samples: [][]float64{{1, 2, 3, 4}},
		Targets: []float64{0},
		Config:  Config{NumCharacters: 4, NumPositions: 4},
	}))
	require.NoError(t, p.AddPatch("b", Patch{
		Samples: [][]float64{{1, 2}},
		Targets: []float64{0},
		Config:  Config{NumCharacters: 1, NumPositions: 2},
	}))
	require.NoError(t, p.AddPatch("c", Patch{
		Samples: [][]float64{{1, 2, 3}},
		Targets: []float64{0},
		Config:  Config{NumCharacters: 2}, // positions resolved from data
	}))

	resolved, err := p.resolveConfigs()
	require.NoError(t, err)
	tab := buildOffsets(p, resolved)

	require.Equal(t, []string{"a", "b", "c"}, tab.order)
	require.Equal(t, 16+2+6, tab.total)

	// Accumulated in insertion order starting at 0.
	require.Equal(t, span{offset: 0, width: 16, cfg: resolved["a"]}, tab.spans["a"])
	require.Equal(t, span{offset: 16, width: 2, cfg: resolved["b"]}, tab.spans["b"])
	require.Equal(t, span{offset: 18, width: 6, cfg: resolved["c"]}, tab.spans["c"])

	// Exact cover: every column claimed exactly once.
	claimed := make([]int, tab.total)
	for _, name := range tab.order {
		sp := tab.spans[name]
		for c := sp.offset; c < sp.offset+sp.width; c++ {
			claimed[c]++
		}
	}
	for c, n := range claimed {
		require.Equal(t, 1, n, "column %d", c)
	}
}

func TestResolveConfigs_Validation(t *testing.T) {
	p := NewProblem()
	require.NoError(t, p.AddPatch("bad-dim", Patch{
		Samples: [][]float64{{1}},
		Targets: []float64{1},
		Config:  Config{NumCharacters: 1, NumPositions: 1, ModelDim: 2},
	}))
	_, err := p.resolveConfigs()
	require.ErrorIs(t, err, ErrModelDim)

	p = NewProblem()
	require.NoError(t, p.AddPatch("no-chars", Patch{
		Samples: [][]float64{{1}},
		Targets: []float64{1},
		Config:  Config{NumPositions: 1},
	}))
	_, err = p.resolveConfigs()
	require.ErrorIs(t, err, ErrBadConfig)
}
