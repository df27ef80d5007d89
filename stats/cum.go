package stats

import (
	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/internal/kernel"
)

// CumSum returns the running sum of v; element i holds the sum of v[:i+1].
// The empty vector yields an empty result.
func CumSum[T quiver.Number](v []T) []T {
	out := make([]T, len(v))
	if len(v) == 0 {
		return out
	}
	if x, ok := any(v).([]float64); ok {
		kernel.CumSumTo(any(out).([]float64), x)
		return out
	}
	var run T
	for i, x := range v {
		run += x
		out[i] = run
	}
	return out
}

// CumProd returns the running product of v; element i holds the product of
// v[:i+1]. The empty vector yields an empty result.
func CumProd[T quiver.Number](v []T) []T {
	out := make([]T, len(v))
	if len(v) == 0 {
		return out
	}
	if x, ok := any(v).([]float64); ok {
		kernel.CumProdTo(any(out).([]float64), x)
		return out
	}
	run := T(1)
	for i, x := range v {
		run *= x
		out[i] = run
	}
	return out
}
