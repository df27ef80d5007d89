package mat

import (
	"fmt"

	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/vec"
)

// AddRow returns m with v added element-wise to every row. The vector
// length must equal the column count.
func AddRow[T quiver.Number](m [][]T, v []T) [][]T {
	rowArg("add row", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Add(m[i], v)
	}
	return out
}

// SubRow returns m with v subtracted element-wise from every row.
func SubRow[T quiver.Number](m [][]T, v []T) [][]T {
	rowArg("sub row", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Sub(m[i], v)
	}
	return out
}

// MulRow returns m with every row multiplied element-wise by v.
func MulRow[T quiver.Number](m [][]T, v []T) [][]T {
	rowArg("mul row", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Mul(m[i], v)
	}
	return out
}

// DivRow returns m with every row divided element-wise by v. It panics
// with ErrDivisionByZero if any element of v is zero; the divisor is
// checked before any output is produced.
func DivRow[T quiver.Float](m [][]T, v []T) [][]T {
	rowArg("div row", m, v)
	for j, d := range v {
		if d == 0 {
			panic(fmt.Errorf("%w: mat: div row: zero divisor at index %d", quiver.ErrDivisionByZero, j))
		}
	}
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Div(m[i], v)
	}
	return out
}

// BroadcastRow returns op applied element-wise between every row of m and
// v, with the matrix element on the left.
func BroadcastRow[T quiver.Number](m [][]T, v []T, op func(T, T) T) [][]T {
	rowArg("broadcast row", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Combine(m[i], v, op)
	}
	return out
}

// AddCol returns m with v[i] added to every element of row i. The vector
// length must equal the row count.
func AddCol[T quiver.Number](m [][]T, v []T) [][]T {
	colArg("add col", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.AddScalar(m[i], v[i])
	}
	return out
}

// SubCol returns m with v[i] subtracted from every element of row i.
func SubCol[T quiver.Number](m [][]T, v []T) [][]T {
	colArg("sub col", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.SubScalar(m[i], v[i])
	}
	return out
}

// MulCol returns m with every element of row i multiplied by v[i].
func MulCol[T quiver.Number](m [][]T, v []T) [][]T {
	colArg("mul col", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Scale(m[i], v[i])
	}
	return out
}

// DivCol returns m with every element of row i divided by v[i]. It panics
// with ErrDivisionByZero if any element of v is zero; the divisor is
// checked before any output is produced.
func DivCol[T quiver.Float](m [][]T, v []T) [][]T {
	colArg("div col", m, v)
	for i, d := range v {
		if d == 0 {
			panic(fmt.Errorf("%w: mat: div col: zero divisor at index %d", quiver.ErrDivisionByZero, i))
		}
	}
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.DivScalar(m[i], v[i])
	}
	return out
}

// BroadcastCol returns op applied between every element of row i and v[i],
// with the matrix element on the left.
func BroadcastCol[T quiver.Number](m [][]T, v []T, op func(T, T) T) [][]T {
	colArg("broadcast col", m, v)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Broadcast(m[i], v[i], op)
	}
	return out
}

// AddScalar returns m with s added to every element.
func AddScalar[T quiver.Number](m [][]T, s T) [][]T {
	uniform("add scalar", m)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.AddScalar(m[i], s)
	}
	return out
}

// SubScalar returns m with s subtracted from every element (m[i][j]-s).
func SubScalar[T quiver.Number](m [][]T, s T) [][]T {
	uniform("sub scalar", m)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.SubScalar(m[i], s)
	}
	return out
}

// Scale returns m with every element multiplied by s.
func Scale[T quiver.Number](m [][]T, s T) [][]T {
	uniform("scale", m)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.Scale(m[i], s)
	}
	return out
}

// DivScalar returns m with every element divided by s. It panics with
// ErrDivisionByZero when s is zero.
func DivScalar[T quiver.Float](m [][]T, s T) [][]T {
	uniform("div scalar", m)
	if s == 0 {
		panic(fmt.Errorf("%w: mat: div scalar: zero divisor", quiver.ErrDivisionByZero))
	}
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.DivScalar(m[i], s)
	}
	return out
}

// ScalarSub returns the matrix s-m[i][j], applying the scalar on the left.
func ScalarSub[T quiver.Number](s T, m [][]T) [][]T {
	uniform("scalar sub", m)
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.ScalarSub(s, m[i])
	}
	return out
}

// ScalarDiv returns the matrix s/m[i][j]. It panics with ErrDivisionByZero
// if any element of m is zero; the whole matrix is checked first.
func ScalarDiv[T quiver.Float](s T, m [][]T) [][]T {
	uniform("scalar div", m)
	for i, row := range m {
		for j, d := range row {
			if d == 0 {
				panic(fmt.Errorf("%w: mat: scalar div: zero divisor at [%d][%d]", quiver.ErrDivisionByZero, i, j))
			}
		}
	}
	out := make([][]T, len(m))
	for i := range m {
		out[i] = vec.ScalarDiv(s, m[i])
	}
	return out
}
