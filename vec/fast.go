package vec

import (
	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/internal/kernel"
)

// fastCombine dispatches a float64 element-wise combination to the
// accelerated kernel. It reports false for every other element type.
func fastCombine[T quiver.Number](dst, a, b []T, op func(dst, a, b []float64)) bool {
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	op(d, any(a).([]float64), any(b).([]float64))
	return true
}

// fastAddConst dispatches a float64 scalar addition to the kernel.
func fastAddConst[T quiver.Number](dst, v []T, s T) bool {
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	kernel.AddConstTo(d, float64(s), any(v).([]float64))
	return true
}

// fastScale dispatches a float64 scalar multiplication to the kernel.
func fastScale[T quiver.Number](dst, v []T, s T) bool {
	d, ok := any(dst).([]float64)
	if !ok {
		return false
	}
	kernel.ScaleTo(d, float64(s), any(v).([]float64))
	return true
}
