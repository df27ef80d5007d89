package vec

import (
	"fmt"

	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/internal/kernel"
)

// sameLen panics with ErrDimensionMismatch unless a and b have equal length.
func sameLen[T any](op string, a, b []T) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: vec: %s: len %d != len %d", quiver.ErrDimensionMismatch, op, len(a), len(b)))
	}
}

// Add returns the element-wise sum a[i]+b[i] of two equal-length vectors.
func Add[T quiver.Number](a, b []T) []T {
	sameLen("add", a, b)
	out := make([]T, len(a))
	if fastCombine(out, a, b, kernel.AddTo) {
		return out
	}
	for i := range a {
		out[i] = a[i] + b[i]
	}
	return out
}

// Sub returns the element-wise difference a[i]-b[i].
func Sub[T quiver.Number](a, b []T) []T {
	sameLen("sub", a, b)
	out := make([]T, len(a))
	if fastCombine(out, a, b, kernel.SubTo) {
		return out
	}
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

// Mul returns the element-wise (Hadamard) product a[i]*b[i]. This is not a
// dot product and not a matrix product.
func Mul[T quiver.Number](a, b []T) []T {
	sameLen("mul", a, b)
	out := make([]T, len(a))
	if fastCombine(out, a, b, kernel.MulTo) {
		return out
	}
	for i := range a {
		out[i] = a[i] * b[i]
	}
	return out
}

// Div returns the element-wise quotient a[i]/b[i]. It panics with
// ErrDivisionByZero if any element of b is zero; all divisors are checked
// before any output is produced.
func Div[T quiver.Float](a, b []T) []T {
	sameLen("div", a, b)
	for i, d := range b {
		if d == 0 {
			panic(fmt.Errorf("%w: vec: div: zero divisor at index %d", quiver.ErrDivisionByZero, i))
		}
	}
	out := make([]T, len(a))
	if fastCombine(out, a, b, kernel.DivTo) {
		return out
	}
	for i := range a {
		out[i] = a[i] / b[i]
	}
	return out
}

// Combine returns op applied element-wise across two equal-length vectors.
func Combine[T quiver.Number](a, b []T, op func(T, T) T) []T {
	sameLen("combine", a, b)
	out := make([]T, len(a))
	for i := range a {
		out[i] = op(a[i], b[i])
	}
	return out
}
