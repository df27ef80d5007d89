package stats

import (
	"testing"

	"github.com/23skdu/quiver"
	"github.com/stretchr/testify/require"
)

func TestMean(t *testing.T) {
	m, ok := Mean([]float64{1, 2, 3, 4, 5})
	require.True(t, ok)
	require.Equal(t, 3.0, m)

	m, ok = Mean([]int{1, 2})
	require.True(t, ok)
	require.Equal(t, 1.5, m)

	_, ok = Mean([]float64{})
	require.False(t, ok)
}

func TestMedian(t *testing.T) {
	t.Run("Odd", func(t *testing.T) {
		m, ok := Median([]float64{5, 1, 3})
		require.True(t, ok)
		require.Equal(t, 3.0, m)
	})

	t.Run("Even", func(t *testing.T) {
		m, ok := Median([]float64{4, 1, 3, 2})
		require.True(t, ok)
		require.Equal(t, 2.5, m)
	})

	t.Run("Empty", func(t *testing.T) {
		_, ok := Median([]float64{})
		require.False(t, ok)
	})

	t.Run("InputUnsorted", func(t *testing.T) {
		v := []float64{5, 1, 3}
		_, _ = Median(v)
		require.Equal(t, []float64{5, 1, 3}, v)
	})
}

func TestVariance(t *testing.T) {
	v := []float64{1, 2, 3, 4, 5}

	t.Run("Population", func(t *testing.T) {
		va, ok := Variance(v, 0)
		require.True(t, ok)
		require.Equal(t, 2.0, va)
	})

	t.Run("Sample", func(t *testing.T) {
		va, ok := Variance(v, 1)
		require.True(t, ok)
		require.Equal(t, 2.5, va)
	})

	t.Run("AbsentWhenTooFew", func(t *testing.T) {
		_, ok := Variance([]float64{1}, 1)
		require.False(t, ok)
		_, ok = Variance([]float64{}, 0)
		require.False(t, ok)
		_, ok = Variance(v, 5)
		require.False(t, ok)
	})
}

func TestStd(t *testing.T) {
	s, ok := Std([]float64{2, 2, 2}, 0)
	require.True(t, ok)
	require.Zero(t, s)

	s, ok = Std([]float64{1, 2, 3, 4, 5}, 1)
	require.True(t, ok)
	require.InDelta(t, 1.5811388300841898, s, 1e-12)
}

func TestCorrelation(t *testing.T) {
	t.Run("Perfect", func(t *testing.T) {
		r, ok := Correlation([]float64{1, 2, 3}, []float64{2, 4, 6})
		require.True(t, ok)
		require.InDelta(t, 1.0, r, 1e-12)
	})

	t.Run("Inverse", func(t *testing.T) {
		r, ok := Correlation([]float64{1, 2, 3}, []float64{3, 2, 1})
		require.True(t, ok)
		require.InDelta(t, -1.0, r, 1e-12)
	})

	t.Run("ZeroVariance", func(t *testing.T) {
		_, ok := Correlation([]float64{1, 2, 3}, []float64{5, 5, 5})
		require.False(t, ok)
	})

	t.Run("TooFew", func(t *testing.T) {
		_, ok := Correlation([]float64{1}, []float64{2})
		require.False(t, ok)
	})

	t.Run("Mismatch", func(t *testing.T) {
		err := quiver.Maybe(func() { _, _ = Correlation([]float64{1, 2}, []float64{1}) })
		require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
	})
}

func TestCorrelationMatrix(t *testing.T) {
	m := [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 2, 1},
	}

	got := CorrelationMatrix(m)

	require.Len(t, got, 3)
	for i := range got {
		require.Equal(t, 1.0, got[i][i])
		for j := range got {
			require.InDelta(t, got[j][i], got[i][j], 1e-12)
		}
	}
	require.InDelta(t, 1.0, got[0][1], 1e-12)
	require.InDelta(t, -1.0, got[0][2], 1e-12)
}

func TestCorrelationMatrixZeroVariance(t *testing.T) {
	err := quiver.Maybe(func() {
		_ = CorrelationMatrix([][]float64{{1, 2}, {7, 7}})
	})
	require.ErrorIs(t, err, quiver.ErrZeroVector)
}

func TestCorrelationMatrixRagged(t *testing.T) {
	err := quiver.Maybe(func() {
		_ = CorrelationMatrix([][]float64{{1, 2}, {1}})
	})
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
}
