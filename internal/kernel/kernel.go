package kernel

import (
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/floats"
)

// Dot computes the dot product of two equal-length float64 vectors.
func Dot(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return blas64.Dot(
		blas64.Vector{N: len(a), Inc: 1, Data: a},
		blas64.Vector{N: len(b), Inc: 1, Data: b},
	)
}

// Norm2 computes the Euclidean norm of v.
func Norm2(v []float64) float64 {
	if len(v) == 0 {
		return 0
	}
	return blas64.Nrm2(blas64.Vector{N: len(v), Inc: 1, Data: v})
}

// Distance computes the Euclidean distance between equal-length vectors.
func Distance(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
}

// AddTo stores a+b element-wise into dst.
func AddTo(dst, a, b []float64) { floats.AddTo(dst, a, b) }

// SubTo stores a-b element-wise into dst.
func SubTo(dst, a, b []float64) { floats.SubTo(dst, a, b) }

// MulTo stores a*b element-wise into dst.
func MulTo(dst, a, b []float64) { floats.MulTo(dst, a, b) }

// DivTo stores a/b element-wise into dst. Zero divisors must be rejected by
// the caller beforehand.
func DivTo(dst, a, b []float64) { floats.DivTo(dst, a, b) }

// ScaleTo stores s*v into dst.
func ScaleTo(dst []float64, s float64, v []float64) { floats.ScaleTo(dst, s, v) }

// AddConstTo stores v+c into dst.
func AddConstTo(dst []float64, c float64, v []float64) {
	copy(dst, v)
	floats.AddConst(c, dst)
}

// Sum returns the sum of all elements of v.
func Sum(v []float64) float64 { return floats.Sum(v) }

// CumSumTo stores the cumulative sum of v into dst.
func CumSumTo(dst, v []float64) { floats.CumSum(dst, v) }

// CumProdTo stores the cumulative product of v into dst.
func CumProdTo(dst, v []float64) { floats.CumProd(dst, v) }
