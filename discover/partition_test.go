package discover_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bon-cdp/sheaflearn/discover"
	"github.com/bon-cdp/sheaflearn/sheaf"
)

func TestPartition_Validation(t *testing.T) {
	base := sheaf.Config{NumCharacters: 2}

	_, err := discover.Partition([][]float64{{1}}, []float64{1}, base, nil)
	require.ErrorIs(t, err, discover.ErrNilConditioning)

	_, err = discover.Partition([][]float64{{1}}, []float64{1, 2}, base, discover.SinglePatch)
	require.ErrorIs(t, err, discover.ErrLengthMismatch)

	_, err = discover.Partition(nil, nil, base, discover.SinglePatch)
	require.ErrorIs(t, err, discover.ErrNoSamples)
}

func TestPartition_FirstSeenOrder(t *testing.T) {
	samples := [][]float64{{3, 0}, {2, 0}, {5, 0}, {4, 0}}
	targets := []float64{0, 0, 0, 0}

	p, err := discover.Partition(samples, targets, sheaf.Config{NumCharacters: 2}, discover.LeadTokenMod(2))
	require.NoError(t, err)

	// 3 arrives before 2, so the odd bucket is first.
	require.Equal(t, []string{"lead_1", "lead_0"}, p.PatchNames())

	odd, ok := p.Patch("lead_1")
	require.True(t, ok)
	require.Equal(t, [][]float64{{3, 0}, {5, 0}}, odd.Samples)

	even, ok := p.Patch("lead_0")
	require.True(t, ok)
	require.Equal(t, [][]float64{{2, 0}, {4, 0}}, even.Samples)
}

func TestPartition_PositionsFromFirstSample(t *testing.T) {
	samples := [][]float64{{1, 2, 3}, {4, 5, 6}}
	targets := []float64{1, 2}

	p, err := discover.Partition(samples, targets, sheaf.Config{NumCharacters: 3}, discover.SinglePatch)
	require.NoError(t, err)

	patch, ok := p.Patch("main")
	require.True(t, ok)
	require.Equal(t, 3, patch.Config.NumPositions)
	require.Equal(t, 3, patch.Config.NumCharacters)
}

func TestPartition_ExplicitPositionsKept(t *testing.T) {
	p, err := discover.Partition(
		[][]float64{{1, 2}},
		[]float64{1},
		sheaf.Config{NumCharacters: 2, NumPositions: 5},
		discover.SinglePatch,
	)
	require.NoError(t, err)

	patch, _ := p.Patch("main")
	require.Equal(t, 5, patch.Config.NumPositions)
}

func TestConditioning_Keys(t *testing.T) {
	require.Equal(t, "main", discover.SinglePatch([]float64{1}, 2))

	lead := discover.LeadTokenMod(3)
	require.Equal(t, "lead_2", lead([]float64{5, 9}, 0))
	require.Equal(t, "lead_none", lead(nil, 0))

	tgt := discover.TargetMod(2)
	require.Equal(t, "target_1", tgt(nil, 7))
	require.Equal(t, "target_0", tgt(nil, 4))

	// Negative values fold into the same residue buckets, not extra
	// negative-keyed patches.
	require.Equal(t, "lead_2", lead([]float64{-1}, 0))
	require.Equal(t, "target_1", tgt(nil, -3))
	require.Equal(t, "target_0", tgt(nil, -4))

	require.Panics(t, func() { discover.LeadTokenMod(0) })
	require.Panics(t, func() { discover.TargetMod(-1) })
}
