package mat

import (
	"fmt"

	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/vec"
)

// Transpose returns m with rows and columns exchanged. The empty matrix
// transposes to the empty matrix.
func Transpose[T quiver.Number](m [][]T) [][]T {
	uniform("transpose", m)
	if len(m) == 0 || Cols(m) == 0 {
		return [][]T{}
	}
	out := make([][]T, Cols(m))
	for j := range out {
		col := make([]T, len(m))
		for i, row := range m {
			col[i] = row[j]
		}
		out[j] = col
	}
	return out
}

// MatMul returns the matrix product of a (r×n) and b (n×c). It panics with
// ErrDimensionMismatch when the inner dimensions disagree. This is the true
// matrix product; Mul is the element-wise one.
func MatMul[T quiver.Number](a, b [][]T) [][]T {
	uniform("matmul", a)
	uniform("matmul", b)
	if Cols(a) != len(b) {
		panic(fmt.Errorf("%w: mat: matmul: %dx%d by %dx%d",
			quiver.ErrDimensionMismatch, len(a), Cols(a), len(b), Cols(b)))
	}
	if len(a) == 0 {
		return [][]T{}
	}
	// Dot against transposed rows keeps the inner loop contiguous.
	bt := Transpose(b)
	out := make([][]T, len(a))
	for i := range a {
		row := make([]T, len(bt))
		for j := range bt {
			row[j] = vec.Dot(a[i], bt[j])
		}
		out[i] = row
	}
	return out
}

// Transform returns the matrix-vector product m·v. The vector length must
// equal the column count.
func Transform[T quiver.Number](m [][]T, v []T) []T {
	rowArg("transform", m, v)
	out := make([]T, len(m))
	for i, row := range m {
		out[i] = vec.Dot(row, v)
	}
	return out
}

// TransformedBy returns the same product as Transform with the vector
// argument first.
func TransformedBy[T quiver.Number](v []T, m [][]T) []T {
	return Transform(m, v)
}

// Identity returns the n×n identity matrix. It panics with ErrEmptyInput
// when n is 0 and ErrDimensionMismatch when n is negative.
func Identity[T quiver.Number](n int) [][]T {
	if n < 0 {
		panic(fmt.Errorf("%w: mat: identity: negative size %d", quiver.ErrDimensionMismatch, n))
	}
	if n == 0 {
		panic(fmt.Errorf("%w: mat: identity: size 0", quiver.ErrEmptyInput))
	}
	out := make([][]T, n)
	for i := range out {
		row := make([]T, n)
		row[i] = 1
		out[i] = row
	}
	return out
}

// Diag returns the square matrix with v on its diagonal. It panics with
// ErrEmptyInput when v is empty.
func Diag[T quiver.Number](v []T) [][]T {
	if len(v) == 0 {
		panic(fmt.Errorf("%w: mat: diag: empty diagonal", quiver.ErrEmptyInput))
	}
	out := make([][]T, len(v))
	for i, x := range v {
		row := make([]T, len(v))
		row[i] = x
		out[i] = row
	}
	return out
}
