package mask

import (
	"testing"

	"github.com/23skdu/quiver"
	"github.com/stretchr/testify/require"
)

func TestComparisons(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	b := []float64{4, 2, 1, 4}

	require.Equal(t, []bool{false, true, false, true}, Equal(a, b))
	require.Equal(t, []bool{true, false, true, false}, NotEqual(a, b))
	require.Equal(t, []bool{false, false, true, false}, Greater(a, b))
	require.Equal(t, []bool{false, true, true, true}, GreaterEqual(a, b))
	require.Equal(t, []bool{true, false, false, false}, Less(a, b))
	require.Equal(t, []bool{true, true, false, true}, LessEqual(a, b))
}

func TestComparisonMismatch(t *testing.T) {
	a := []float64{1, 2}
	b := []float64{1}

	for name, fn := range map[string]func(){
		"Equal":        func() { _ = Equal(a, b) },
		"NotEqual":     func() { _ = NotEqual(a, b) },
		"Greater":      func() { _ = Greater(a, b) },
		"GreaterEqual": func() { _ = GreaterEqual(a, b) },
		"Less":         func() { _ = Less(a, b) },
		"LessEqual":    func() { _ = LessEqual(a, b) },
	} {
		t.Run(name, func(t *testing.T) {
			err := quiver.Maybe(fn)
			require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
		})
	}
}

func TestScalarComparisons(t *testing.T) {
	v := []float64{1, 2, 3}

	require.Equal(t, []bool{false, true, false}, EqualScalar(v, 2))
	require.Equal(t, []bool{true, false, true}, NotEqualScalar(v, 2))
	require.Equal(t, []bool{false, false, true}, GreaterScalar(v, 2))
	require.Equal(t, []bool{false, true, true}, GreaterEqualScalar(v, 2))
	require.Equal(t, []bool{true, false, false}, LessScalar(v, 2))
	require.Equal(t, []bool{true, true, false}, LessEqualScalar(v, 2))
}

func TestLogic(t *testing.T) {
	a := []bool{true, true, false, false}
	b := []bool{true, false, true, false}

	require.Equal(t, []bool{true, false, false, false}, And(a, b))
	require.Equal(t, []bool{true, true, true, false}, Or(a, b))
	require.Equal(t, []bool{false, true, true, false}, Xor(a, b))
	require.Equal(t, []bool{false, false, true, true}, Not(a))
}

func TestLogicMismatch(t *testing.T) {
	err := quiver.Maybe(func() { _ = And([]bool{true}, []bool{true, false}) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
}

func TestCount(t *testing.T) {
	require.Equal(t, 2, Count([]bool{true, false, true}))
	require.Zero(t, Count(nil))
}

func TestTrueIndices(t *testing.T) {
	require.Equal(t, []int{1, 3}, TrueIndices([]bool{false, true, false, true}))
	require.Empty(t, TrueIndices([]bool{false, false}))
}

func TestFilter(t *testing.T) {
	v := []string{"a", "b", "c", "d"}
	keep := []bool{true, false, true, false}

	require.Equal(t, []string{"a", "c"}, Filter(v, keep))

	err := quiver.Maybe(func() { _ = Filter(v, []bool{true}) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
}

func TestFilterPreservesOrder(t *testing.T) {
	v := []int{10, 20, 30, 40, 50}
	got := Filter(v, []bool{true, true, false, true, true})
	require.Equal(t, []int{10, 20, 40, 50}, got)
}

func TestWhere(t *testing.T) {
	cond := []bool{true, false, true}
	a := []float64{1, 1, 1}
	b := []float64{9, 9, 9}

	require.Equal(t, []float64{1, 9, 1}, Where(cond, a, b))

	err := quiver.Maybe(func() { _ = Where(cond, a, []float64{9}) })
	require.ErrorIs(t, err, quiver.ErrDimensionMismatch)
}

func TestComposedSelection(t *testing.T) {
	// Select values strictly inside (2, 8).
	v := []float64{1, 3, 5, 7, 9}

	inside := And(GreaterScalar(v, 2), LessScalar(v, 8))

	require.Equal(t, []float64{3, 5, 7}, Filter(v, inside))
	require.Equal(t, 3, Count(inside))
}
