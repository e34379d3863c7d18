package configuration_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qnv/configuration"
)

func TestPConfigurationAssignLiftsPointwise(t *testing.T) {
	topo := twoNodeTopology(t, 1, 1)
	pc := configuration.NewInitial(topo.N)
	require.NoError(t, pc.Assign("x", []int64{7}))
	require.Equal(t, int64(7), pc.At(0).Mem()["x"])
}

func TestPConfigurationAssignLengthMismatch(t *testing.T) {
	topo := twoNodeTopology(t, 1, 1)
	pc := configuration.NewInitial(topo.N)
	err := pc.Assign("x", []int64{1, 2})
	require.ErrorIs(t, err, configuration.ErrLengthMismatch)
}

func TestPConfigurationCrSnapshotsLengthBeforeForking(t *testing.T) {
	topo := twoNodeTopology(t, 1, 1)
	pc := configuration.NewInitial(topo.N)

	// First cr forks 1 -> 2 DCs. The second lifted cr call runs over the
	// 2 DCs present before it began and forks each once; the siblings it
	// appends are not visited again, so the result is 4 (the "critical
	// iteration rule").
	require.NoError(t, pc.Cr("a", []int64{1}, []int64{2}, topo))
	require.Equal(t, 2, pc.Len())

	require.NoError(t, pc.Cr("b", []int64{1, 1}, []int64{2, 2}, topo))
	require.Equal(t, 4, pc.Len())
}

func TestPConfigurationTotalProbConserved(t *testing.T) {
	topo := twoNodeTopology(t, 1, 1)
	pc := configuration.NewInitial(topo.N)
	require.Equal(t, 1.0, pc.TotalProb())

	require.NoError(t, pc.Cr("a", []int64{1}, []int64{2}, topo))
	require.InDelta(t, 1.0, pc.TotalProb(), 1e-9)
}

func TestPConfigurationForgetKeepsMassWhenStatesDiffer(t *testing.T) {
	topo := twoNodeTopology(t, 1, 1)
	pc := configuration.NewInitial(topo.N)
	require.NoError(t, pc.Cr("a", []int64{1}, []int64{2}, topo))
	require.Equal(t, 2, pc.Len())

	before := pc.TotalProb()
	pc.Forget([]string{"a"})

	// Both DCs now have empty mem, but their ent still differs (the
	// failure DC, prob 0, has no entanglement; the success DC, prob 1,
	// has one unit on 1-2), so nothing merges — forget still must drop
	// the variable and must not lose probability mass.
	require.InDelta(t, before, pc.TotalProb(), 1e-9)
	for i := 0; i < pc.Len(); i++ {
		_, ok := pc.At(i).Get("a")
		require.False(t, ok)
	}
}

func TestPConfigurationForgetSingleWorldKeepsMass(t *testing.T) {
	topo := twoNodeTopology(t, 0, 1) // p=0: cr never creates an edge, no fork
	pc := configuration.NewInitial(topo.N)
	require.NoError(t, pc.Cr("a", []int64{1}, []int64{2}, topo))
	require.Equal(t, 1, pc.Len())

	pc.Forget([]string{"a"})
	require.Equal(t, 1, pc.Len())
	require.InDelta(t, 1.0, pc.TotalProb(), 1e-9)
}

func TestPConfigurationPartitionPreservesOrder(t *testing.T) {
	topo := twoNodeTopology(t, 1, 1)
	a := configuration.NewDConfiguration(topo.N)
	b := configuration.NewDConfiguration(topo.N)
	c := configuration.NewDConfiguration(topo.N)
	pc := configuration.New([]*configuration.DConfiguration{a, b, c})
	kept, dropped, err := pc.Partition([]int64{1, 0, 1})
	require.NoError(t, err)
	require.Len(t, kept, 2)
	require.Len(t, dropped, 1)
	require.Same(t, a, kept[0])
	require.Same(t, c, kept[1])
	require.Same(t, b, dropped[0])
}
