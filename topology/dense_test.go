package topology_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qnv/topology"
)

func TestDenseSetAt(t *testing.T) {
	d, err := topology.NewDense(3)
	require.NoError(t, err)
	require.NoError(t, d.Set(1, 2, 0.75))

	v, err := d.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.75, v)

	v, err = d.At(2, 1)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestDenseOutOfRange(t *testing.T) {
	d, err := topology.NewDense(2)
	require.NoError(t, err)
	_, err = d.At(5, 0)
	require.ErrorIs(t, err, topology.ErrOutOfRange)
	require.ErrorIs(t, d.Set(-1, 0, 1), topology.ErrOutOfRange)
}

func TestNewDenseRejectsNonPositive(t *testing.T) {
	_, err := topology.NewDense(0)
	require.ErrorIs(t, err, topology.ErrBadShape)
}
