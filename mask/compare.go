package mask

import (
	"fmt"

	"github.com/23skdu/quiver"
)

// sameLen panics with ErrDimensionMismatch unless a and b have equal length.
func sameLen[A, B any](op string, a []A, b []B) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: mask: %s: len %d != len %d", quiver.ErrDimensionMismatch, op, len(a), len(b)))
	}
}

// Equal returns the element-wise mask a[i] == b[i] of two equal-length
// vectors.
func Equal[T quiver.Number](a, b []T) []bool {
	sameLen("equal", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] == b[i]
	}
	return out
}

// NotEqual returns the element-wise mask a[i] != b[i].
func NotEqual[T quiver.Number](a, b []T) []bool {
	sameLen("not equal", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] != b[i]
	}
	return out
}

// Greater returns the element-wise mask a[i] > b[i].
func Greater[T quiver.Number](a, b []T) []bool {
	sameLen("greater", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] > b[i]
	}
	return out
}

// GreaterEqual returns the element-wise mask a[i] >= b[i].
func GreaterEqual[T quiver.Number](a, b []T) []bool {
	sameLen("greater equal", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] >= b[i]
	}
	return out
}

// Less returns the element-wise mask a[i] < b[i].
func Less[T quiver.Number](a, b []T) []bool {
	sameLen("less", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] < b[i]
	}
	return out
}

// LessEqual returns the element-wise mask a[i] <= b[i].
func LessEqual[T quiver.Number](a, b []T) []bool {
	sameLen("less equal", a, b)
	out := make([]bool, len(a))
	for i := range a {
		out[i] = a[i] <= b[i]
	}
	return out
}

// EqualScalar returns the mask v[i] == s.
func EqualScalar[T quiver.Number](v []T, s T) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x == s
	}
	return out
}

// NotEqualScalar returns the mask v[i] != s.
func NotEqualScalar[T quiver.Number](v []T, s T) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x != s
	}
	return out
}

// GreaterScalar returns the mask v[i] > s.
func GreaterScalar[T quiver.Number](v []T, s T) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x > s
	}
	return out
}

// GreaterEqualScalar returns the mask v[i] >= s.
func GreaterEqualScalar[T quiver.Number](v []T, s T) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x >= s
	}
	return out
}

// LessScalar returns the mask v[i] < s.
func LessScalar[T quiver.Number](v []T, s T) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x < s
	}
	return out
}

// LessEqualScalar returns the mask v[i] <= s.
func LessEqualScalar[T quiver.Number](v []T, s T) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x <= s
	}
	return out
}
