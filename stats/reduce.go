package stats

import (
	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/internal/kernel"
)

// Sum returns the sum of all elements; 0 for the empty vector.
func Sum[T quiver.Number](v []T) T {
	if x, ok := any(v).([]float64); ok {
		return T(kernel.Sum(x))
	}
	var sum T
	for _, x := range v {
		sum += x
	}
	return sum
}

// Product returns the product of all elements. The empty vector yields 0,
// not the mathematical empty-product convention of 1.
func Product[T quiver.Number](v []T) T {
	if len(v) == 0 {
		return 0
	}
	prod := T(1)
	for _, x := range v {
		prod *= x
	}
	return prod
}

// Min returns the smallest element. The second result is false for the
// empty vector.
func Min[T quiver.Number](v []T) (T, bool) {
	if len(v) == 0 {
		var zero T
		return zero, false
	}
	min := v[0]
	for _, x := range v[1:] {
		if x < min {
			min = x
		}
	}
	return min, true
}

// Max returns the largest element. The second result is false for the
// empty vector.
func Max[T quiver.Number](v []T) (T, bool) {
	if len(v) == 0 {
		var zero T
		return zero, false
	}
	max := v[0]
	for _, x := range v[1:] {
		if x > max {
			max = x
		}
	}
	return max, true
}

// ArgMin returns the index of the smallest element, taking the first index
// on ties. The second result is false for the empty vector.
func ArgMin[T quiver.Number](v []T) (int, bool) {
	if len(v) == 0 {
		return 0, false
	}
	best := 0
	for i, x := range v {
		if x < v[best] {
			best = i
		}
	}
	return best, true
}

// ArgMax returns the index of the largest element, taking the first index
// on ties. The second result is false for the empty vector.
func ArgMax[T quiver.Number](v []T) (int, bool) {
	if len(v) == 0 {
		return 0, false
	}
	best := 0
	for i, x := range v {
		if x > v[best] {
			best = i
		}
	}
	return best, true
}
