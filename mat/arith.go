package mat

import (
	"fmt"

	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/vec"
)

// Add returns the element-wise sum of two same-shape matrices.
func Add[T quiver.Number](a, b [][]T) [][]T {
	sameShape("add", a, b)
	out := make([][]T, len(a))
	for i := range a {
		out[i] = vec.Add(a[i], b[i])
	}
	return out
}

// Sub returns the element-wise difference of two same-shape matrices.
func Sub[T quiver.Number](a, b [][]T) [][]T {
	sameShape("sub", a, b)
	out := make([][]T, len(a))
	for i := range a {
		out[i] = vec.Sub(a[i], b[i])
	}
	return out
}

// Mul returns the element-wise (Hadamard) product of two same-shape
// matrices. MatMul is the true matrix product.
func Mul[T quiver.Number](a, b [][]T) [][]T {
	sameShape("mul", a, b)
	out := make([][]T, len(a))
	for i := range a {
		out[i] = vec.Mul(a[i], b[i])
	}
	return out
}

// Div returns the element-wise quotient of two same-shape matrices. It
// panics with ErrDivisionByZero if any element of b is zero; the whole
// divisor matrix is checked before any output is produced.
func Div[T quiver.Float](a, b [][]T) [][]T {
	sameShape("div", a, b)
	for i, row := range b {
		for j, d := range row {
			if d == 0 {
				panic(fmt.Errorf("%w: mat: div: zero divisor at [%d][%d]", quiver.ErrDivisionByZero, i, j))
			}
		}
	}
	out := make([][]T, len(a))
	for i := range a {
		out[i] = vec.Div(a[i], b[i])
	}
	return out
}

// Combine returns op applied element-wise across two same-shape matrices.
func Combine[T quiver.Number](a, b [][]T, op func(T, T) T) [][]T {
	sameShape("combine", a, b)
	out := make([][]T, len(a))
	for i := range a {
		out[i] = vec.Combine(a[i], b[i], op)
	}
	return out
}
