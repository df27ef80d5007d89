package mat

import (
	"testing"

	"github.com/23skdu/quiver"
	"github.com/stretchr/testify/require"
)

func TestShapeInspection(t *testing.T) {
	m := [][]float64{{1, 2, 3}, {4, 5, 6}}

	require.Equal(t, 2, Rows(m))
	require.Equal(t, 3, Cols(m))
	require.True(t, IsUniform(m))

	require.Equal(t, 0, Rows([][]float64{}))
	require.Equal(t, 0, Cols([][]float64{}))
	require.True(t, IsUniform([][]float64{}))
}

func TestIsUniformRagged(t *testing.T) {
	// Shape helpers tolerate ragged input so callers can probe first.
	ragged := [][]float64{{1, 2}, {3}}
	require.False(t, IsUniform(ragged))
	require.Equal(t, 2, Rows(ragged))
	require.Equal(t, 2, Cols(ragged))
}

func TestRow(t *testing.T) {
	m := [][]float64{{1, 2}, {3, 4}}

	r := Row(m, 1)
	require.Equal(t, []float64{3, 4}, r)

	// Copies, not aliases.
	r[0] = 99
	require.Equal(t, 3.0, m[1][0])

	err := quiver.Maybe(func() { _ = Row(m, 2) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
	err = quiver.Maybe(func() { _ = Row(m, -1) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
}

func TestColumn(t *testing.T) {
	m := [][]float64{{1, 2}, {3, 4}, {5, 6}}

	c := Column(m, 1)
	require.Equal(t, []float64{2, 4, 6}, c)

	c[0] = 99
	require.Equal(t, 2.0, m[0][1])

	err := quiver.Maybe(func() { _ = Column(m, 2) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)

	err = quiver.Maybe(func() { _ = Column([][]float64{{1, 2}, {3}}, 0) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
}
