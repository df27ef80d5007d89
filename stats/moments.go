package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/23skdu/quiver"
)

// Mean returns the arithmetic mean as float64. The second result is false
// for the empty vector.
func Mean[T quiver.Number](v []T) (float64, bool) {
	if len(v) == 0 {
		return 0, false
	}
	return float64(Sum(v)) / float64(len(v)), true
}

// Median returns the middle value as float64, averaging the two middles
// for even lengths. The second result is false for the empty vector. The
// input is left unsorted.
func Median[T quiver.Number](v []T) (float64, bool) {
	if len(v) == 0 {
		return 0, false
	}
	sorted := make([]T, len(v))
	copy(sorted, v)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid]), true
	}
	return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, true
}

// Variance returns the variance with the given delta degrees of freedom:
// ddof 0 is the population variance, ddof 1 the sample variance. The
// second result is false when len(v) <= ddof or ddof is negative.
func Variance[T quiver.Number](v []T, ddof int) (float64, bool) {
	n := len(v)
	if ddof < 0 || n <= ddof {
		return 0, false
	}
	mean, _ := Mean(v)
	var ss float64
	for _, x := range v {
		d := float64(x) - mean
		ss += d * d
	}
	return ss / float64(n-ddof), true
}

// Std returns the standard deviation with the given delta degrees of
// freedom. The second result is false when len(v) <= ddof.
func Std[T quiver.Number](v []T, ddof int) (float64, bool) {
	va, ok := Variance(v, ddof)
	if !ok {
		return 0, false
	}
	return math.Sqrt(va), true
}

// Correlation returns the Pearson correlation of a and b. It panics with
// ErrDimensionMismatch when lengths differ. The result is absent for fewer
// than two points or zero variance in either input.
func Correlation[T quiver.Number](a, b []T) (float64, bool) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: stats: correlation: len %d != len %d",
			quiver.ErrDimensionMismatch, len(a), len(b)))
	}
	n := len(a)
	if n < 2 {
		return 0, false
	}
	ma, _ := Mean(a)
	mb, _ := Mean(b)
	var sab, saa, sbb float64
	for i := 0; i < n; i++ {
		da := float64(a[i]) - ma
		db := float64(b[i]) - mb
		sab += da * db
		saa += da * da
		sbb += db * db
	}
	if saa == 0 || sbb == 0 {
		return 0, false
	}
	return sab / math.Sqrt(saa*sbb), true
}

// CorrelationMatrix returns the Pearson correlation between every pair of
// rows of m, each row acting as one variable. It panics with
// ErrDimensionMismatch when m is ragged, ErrEmptyInput when rows hold
// fewer than two samples, and ErrZeroVector when a row has zero variance.
func CorrelationMatrix[T quiver.Number](m [][]T) [][]float64 {
	for i, row := range m {
		if len(row) != len(m[0]) {
			panic(fmt.Errorf("%w: stats: correlation matrix: ragged row %d",
				quiver.ErrDimensionMismatch, i))
		}
	}
	n := len(m)
	if n == 0 {
		return [][]float64{}
	}
	if len(m[0]) < 2 {
		panic(fmt.Errorf("%w: stats: correlation matrix: %d samples per row",
			quiver.ErrEmptyInput, len(m[0])))
	}
	for i, row := range m {
		if va, _ := Variance(row, 0); va == 0 {
			panic(fmt.Errorf("%w: stats: correlation matrix: row %d has zero variance",
				quiver.ErrZeroVector, i))
		}
	}
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, n)
		out[i][i] = 1
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r, _ := Correlation(m[i], m[j])
			out[i][j] = r
			out[j][i] = r
		}
	}
	return out
}
