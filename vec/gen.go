package vec

import (
	"fmt"
	"math/rand"

	"github.com/23skdu/quiver"
)

// nonNegative panics with ErrDimensionMismatch when n is negative.
func nonNegative(op string, n int) {
	if n < 0 {
		panic(fmt.Errorf("%w: vec: %s: negative length %d", quiver.ErrDimensionMismatch, op, n))
	}
}

// Zeros returns a vector of n zeros.
func Zeros[T quiver.Number](n int) []T {
	nonNegative("zeros", n)
	return make([]T, n)
}

// Ones returns a vector of n ones.
func Ones[T quiver.Number](n int) []T {
	nonNegative("ones", n)
	return Full(n, T(1))
}

// Full returns a vector of n copies of value.
func Full[T quiver.Number](n int, value T) []T {
	nonNegative("full", n)
	out := make([]T, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Random returns a vector of n uniform samples from [0, 1).
func Random[T quiver.Float](n int) []T {
	nonNegative("random", n)
	out := make([]T, n)
	for i := range out {
		out[i] = T(rand.Float64())
	}
	return out
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields just start.
func Linspace[T quiver.Float](start, stop T, n int) []T {
	nonNegative("linspace", n)
	out := make([]T, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / T(n-1)
	for i := range out {
		out[i] = start + T(i)*step
	}
	// Pin the endpoint exactly.
	out[n-1] = stop
	return out
}

// Arange returns values from start up to but excluding stop, advancing by
// step. A zero step panics with ErrDivisionByZero.
func Arange[T quiver.Number](start, stop, step T) []T {
	if step == 0 {
		panic(fmt.Errorf("%w: vec: arange: zero step", quiver.ErrDivisionByZero))
	}
	var out []T
	if step > 0 {
		for x := start; x < stop; x += step {
			out = append(out, x)
		}
	} else {
		for x := start; x > stop; x += step {
			out = append(out, x)
		}
	}
	return out
}
