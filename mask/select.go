package mask

import (
	"fmt"

	"github.com/23skdu/quiver"
)

// Filter returns the elements of v at the true positions of keep, in
// order. It panics with ErrDimensionMismatch when lengths differ.
func Filter[T any](v []T, keep []bool) []T {
	sameLen("filter", v, keep)
	out := make([]T, 0, len(v))
	for i, k := range keep {
		if k {
			out = append(out, v[i])
		}
	}
	return out
}

// Where returns the element-wise ternary: a[i] where cond[i] is true, b[i]
// otherwise. All three slices must have equal length.
func Where[T any](cond []bool, a, b []T) []T {
	if len(a) != len(cond) || len(b) != len(cond) {
		panic(fmt.Errorf("%w: mask: where: cond %d, a %d, b %d",
			quiver.ErrDimensionMismatch, len(cond), len(a), len(b)))
	}
	out := make([]T, len(cond))
	for i, c := range cond {
		if c {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}
