package topology_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qnv/topology"
)

func TestLoadBasicTopology(t *testing.T) {
	src := "3 2\n1 2 0.5\n2 3 0.8\n0.1 0.2 0.3\n"
	topo, err := topology.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, topo.N)
	require.Equal(t, 2, topo.M)

	p12, err := topo.P.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.5, p12)
	p21, err := topo.P.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, p12, p21)

	require.Equal(t, []int64{topology.Unbounded, topology.Unbounded, topology.Unbounded}, topo.S)
}

func TestLoadWithSaturationCaps(t *testing.T) {
	src := "2 1\n1 2 0.5\n0.1 0.2\n5 10\n"
	topo, err := topology.Load(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []int64{5, 10}, topo.S)
}

func TestLoadRejectsBadShape(t *testing.T) {
	_, err := topology.Load(strings.NewReader("0 0\n"))
	require.ErrorIs(t, err, topology.ErrBadShape)
}

func TestLoadRejectsOutOfRangeEdge(t *testing.T) {
	_, err := topology.Load(strings.NewReader("2 1\n1 5 0.5\n0.1 0.2\n"))
	require.ErrorIs(t, err, topology.ErrOutOfRange)
}

func TestLoadRejectsBadProbability(t *testing.T) {
	_, err := topology.Load(strings.NewReader("2 1\n1 2 1.5\n0.1 0.2\n"))
	require.ErrorIs(t, err, topology.ErrProbabilityRange)
}

func TestLoadRejectsMalformedInput(t *testing.T) {
	_, err := topology.Load(strings.NewReader("not-a-number 1\n"))
	require.ErrorIs(t, err, topology.ErrMalformed)
}

func TestStringRendersBanner(t *testing.T) {
	topo, err := topology.Load(strings.NewReader("2 1\n1 2 0.5\n0.1 0.2\n"))
	require.NoError(t, err)
	s := topo.String()
	require.Contains(t, s, "2\n")
	require.Contains(t, s, "1\n")
}

func TestReachableAndConnected(t *testing.T) {
	connectedSrc := "3 2\n1 2 0.5\n2 3 0.5\n0.1 0.2 0.3\n"
	topo, err := topology.Load(strings.NewReader(connectedSrc))
	require.NoError(t, err)

	visited, err := topo.Reachable(0)
	require.NoError(t, err)
	require.Equal(t, []bool{true, true, true}, visited)

	ok, err := topo.Connected()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestDisconnectedTopology(t *testing.T) {
	src := "3 0\n0.1 0.2 0.3\n"
	topo, err := topology.Load(strings.NewReader(src))
	require.NoError(t, err)

	ok, err := topo.Connected()
	require.NoError(t, err)
	require.False(t, ok)
}

func TestReachableRejectsOutOfRangeStart(t *testing.T) {
	topo, err := topology.Load(strings.NewReader("2 1\n1 2 0.5\n0.1 0.2\n"))
	require.NoError(t, err)
	_, err = topo.Reachable(9)
	require.ErrorIs(t, err, topology.ErrOutOfRange)
}
