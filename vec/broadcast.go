package vec

import (
	"fmt"

	"github.com/23skdu/quiver"
)

// AddScalar returns v with s added to every element.
func AddScalar[T quiver.Number](v []T, s T) []T {
	out := make([]T, len(v))
	if fastAddConst(out, v, s) {
		return out
	}
	for i, x := range v {
		out[i] = x + s
	}
	return out
}

// SubScalar returns v with s subtracted from every element (v[i]-s).
// ScalarSub is the mirrored form; the two are distinct operations.
func SubScalar[T quiver.Number](v []T, s T) []T {
	out := make([]T, len(v))
	if fastAddConst(out, v, -s) {
		return out
	}
	for i, x := range v {
		out[i] = x - s
	}
	return out
}

// Scale returns v with every element multiplied by s.
func Scale[T quiver.Number](v []T, s T) []T {
	out := make([]T, len(v))
	if fastScale(out, v, s) {
		return out
	}
	for i, x := range v {
		out[i] = x * s
	}
	return out
}

// DivScalar returns v with every element divided by s. It panics with
// ErrDivisionByZero when s is zero.
func DivScalar[T quiver.Float](v []T, s T) []T {
	if s == 0 {
		panic(fmt.Errorf("%w: vec: div scalar: zero divisor", quiver.ErrDivisionByZero))
	}
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = x / s
	}
	return out
}

// ScalarSub returns the vector s-v[i], applying the scalar on the left of
// each element-wise subtraction.
func ScalarSub[T quiver.Number](s T, v []T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = s - x
	}
	return out
}

// ScalarDiv returns the vector s/v[i]. It panics with ErrDivisionByZero if
// any element of v is zero; all divisors are checked before any output is
// produced.
func ScalarDiv[T quiver.Float](s T, v []T) []T {
	for i, d := range v {
		if d == 0 {
			panic(fmt.Errorf("%w: vec: scalar div: zero divisor at index %d", quiver.ErrDivisionByZero, i))
		}
	}
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = s / x
	}
	return out
}

// Broadcast returns op applied between every element of v and the scalar s,
// with the element on the left.
func Broadcast[T quiver.Number](v []T, s T, op func(T, T) T) []T {
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = op(x, s)
	}
	return out
}
