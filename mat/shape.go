package mat

import (
	"fmt"

	"github.com/23skdu/quiver"
)

// Rows returns the number of rows of m.
func Rows[T quiver.Number](m [][]T) int { return len(m) }

// Cols returns the number of columns of m, 0 when m has no rows.
func Cols[T quiver.Number](m [][]T) int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// IsUniform reports whether every row of m has the same length. The empty
// matrix is uniform.
func IsUniform[T quiver.Number](m [][]T) bool {
	for _, row := range m {
		if len(row) != len(m[0]) {
			return false
		}
	}
	return true
}

// uniform panics with ErrDimensionMismatch when m is ragged.
func uniform[T quiver.Number](op string, m [][]T) {
	for i, row := range m {
		if len(row) != len(m[0]) {
			panic(fmt.Errorf("%w: mat: %s: ragged matrix: row %d has len %d, want %d",
				quiver.ErrDimensionMismatch, op, i, len(row), len(m[0])))
		}
	}
}

// sameShape panics with ErrDimensionMismatch unless a and b are uniform
// matrices of identical shape.
func sameShape[T quiver.Number](op string, a, b [][]T) {
	uniform(op, a)
	uniform(op, b)
	if len(a) != len(b) || Cols(a) != Cols(b) {
		panic(fmt.Errorf("%w: mat: %s: %dx%d vs %dx%d",
			quiver.ErrDimensionMismatch, op, len(a), Cols(a), len(b), Cols(b)))
	}
}

// rowArg panics unless m is uniform and v spans m's columns.
func rowArg[T quiver.Number](op string, m [][]T, v []T) {
	uniform(op, m)
	if len(m) > 0 && len(v) != Cols(m) {
		panic(fmt.Errorf("%w: mat: %s: vector len %d != %d columns",
			quiver.ErrDimensionMismatch, op, len(v), Cols(m)))
	}
}

// colArg panics unless m is uniform and v spans m's rows.
func colArg[T quiver.Number](op string, m [][]T, v []T) {
	uniform(op, m)
	if len(v) != len(m) {
		panic(fmt.Errorf("%w: mat: %s: vector len %d != %d rows",
			quiver.ErrDimensionMismatch, op, len(v), len(m)))
	}
}

// Row returns a copy of row i of m. It panics with ErrDimensionMismatch
// when i is out of range.
func Row[T quiver.Number](m [][]T, i int) []T {
	if i < 0 || i >= len(m) {
		panic(fmt.Errorf("%w: mat: row: index %d out of range for %d rows",
			quiver.ErrDimensionMismatch, i, len(m)))
	}
	out := make([]T, len(m[i]))
	copy(out, m[i])
	return out
}

// Column returns a copy of column j of m. It panics with
// ErrDimensionMismatch when m is ragged or j is out of range.
func Column[T quiver.Number](m [][]T, j int) []T {
	uniform("column", m)
	if j < 0 || j >= Cols(m) {
		panic(fmt.Errorf("%w: mat: column: index %d out of range for %d columns",
			quiver.ErrDimensionMismatch, j, Cols(m)))
	}
	out := make([]T, len(m))
	for i, row := range m {
		out[i] = row[j]
	}
	return out
}
