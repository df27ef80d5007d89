package vec

import (
	"testing"

	"github.com/23skdu/quiver"
	"github.com/stretchr/testify/require"
)

func TestAddScalar(t *testing.T) {
	require.Equal(t, []float64{11, 12, 13}, AddScalar([]float64{1, 2, 3}, 10))
	require.Equal(t, []int{0, 1, 2}, AddScalar([]int{-5, -4, -3}, 5))
}

func TestSubScalar(t *testing.T) {
	require.Equal(t, []float64{-9, -8, -7}, SubScalar([]float64{1, 2, 3}, 10))
}

func TestScale(t *testing.T) {
	require.Equal(t, []float64{2, 4, 6}, Scale([]float64{1, 2, 3}, 2))
	require.Equal(t, []float32{0.5, 1}, Scale([]float32{1, 2}, 0.5))
}

func TestDivScalar(t *testing.T) {
	require.Equal(t, []float64{0.5, 1, 1.5}, DivScalar([]float64{1, 2, 3}, 2))

	err := quiver.Maybe(func() { _ = DivScalar([]float64{1, 2}, 0) })
	require.ErrorIs(t, err, quiver.ErrDivisionByZero)
}

func TestScalarSub(t *testing.T) {
	// The scalar sits on the left: 10-v, not v-10.
	require.Equal(t, []float64{9, 8, 7}, ScalarSub(10, []float64{1, 2, 3}))
}

func TestBroadcastAsymmetry(t *testing.T) {
	v := []float64{1, 2, 3}
	require.Equal(t, []float64{9, 8, 7}, ScalarSub(10, v))
	require.Equal(t, []float64{-9, -8, -7}, SubScalar(v, 10))
}

func TestScalarDiv(t *testing.T) {
	t.Run("Quotient", func(t *testing.T) {
		require.Equal(t, []float64{12, 6, 4}, ScalarDiv(12, []float64{1, 2, 3}))
	})

	t.Run("ZeroElement", func(t *testing.T) {
		err := quiver.Maybe(func() { _ = ScalarDiv(1, []float64{1, 0}) })
		require.ErrorIs(t, err, quiver.ErrDivisionByZero)
	})
}

func TestBroadcast(t *testing.T) {
	got := Broadcast([]int{1, 2, 3}, 2, func(x, s int) int { return x * s })
	require.Equal(t, []int{2, 4, 6}, got)
}
