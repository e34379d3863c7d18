package configuration_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qnv/configuration"
)

func TestIntMatrixIncAndAt(t *testing.T) {
	m := configuration.NewIntMatrix(2)
	require.Equal(t, int64(1), m.Inc(0, 1, 1))
	require.Equal(t, int64(1), m.At(0, 1))
	require.Equal(t, int64(0), m.At(1, 0))
}

func TestIntMatrixCloneIsDeep(t *testing.T) {
	m := configuration.NewIntMatrix(2)
	m.Set(0, 0, 5)
	clone := m.Clone()
	clone.Set(0, 0, 99)
	require.Equal(t, int64(5), m.At(0, 0))
	require.Equal(t, int64(99), clone.At(0, 0))
}

func TestIntMatrixEqual(t *testing.T) {
	a := configuration.NewIntMatrix(2)
	a.Set(0, 1, 3)
	b := configuration.NewIntMatrix(2)
	b.Set(0, 1, 3)
	require.True(t, a.Equal(b))
	require.True(t, cmp.Equal(a, b))

	b.Set(1, 0, 1)
	require.False(t, a.Equal(b))
	require.False(t, cmp.Equal(a, b))
}

func TestIntMatrixIndexOutOfRangePanics(t *testing.T) {
	m := configuration.NewIntMatrix(2)
	require.Panics(t, func() { m.At(5, 0) })
}
