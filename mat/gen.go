package mat

import (
	"fmt"

	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/vec"
)

// dims panics with ErrDimensionMismatch when r or c is negative.
func dims(op string, r, c int) {
	if r < 0 || c < 0 {
		panic(fmt.Errorf("%w: mat: %s: negative shape %dx%d", quiver.ErrDimensionMismatch, op, r, c))
	}
}

// Zeros returns an r×c matrix of zeros.
func Zeros[T quiver.Number](r, c int) [][]T {
	dims("zeros", r, c)
	out := make([][]T, r)
	for i := range out {
		out[i] = make([]T, c)
	}
	return out
}

// Ones returns an r×c matrix of ones.
func Ones[T quiver.Number](r, c int) [][]T {
	dims("ones", r, c)
	return Full(r, c, T(1))
}

// Full returns an r×c matrix of copies of value.
func Full[T quiver.Number](r, c int, value T) [][]T {
	dims("full", r, c)
	out := make([][]T, r)
	for i := range out {
		out[i] = vec.Full(c, value)
	}
	return out
}

// Random returns an r×c matrix of uniform samples from [0, 1).
func Random[T quiver.Float](r, c int) [][]T {
	dims("random", r, c)
	out := make([][]T, r)
	for i := range out {
		out[i] = vec.Random[T](c)
	}
	return out
}
