package kernel

import "github.com/viant/vec/search"

// Dot32 computes the dot product of two equal-length float32 vectors.
func Dot32(a, b []float32) float32 {
	var sum float32
	i := 0
	for ; i <= len(a)-4; i += 4 {
		sum += a[i] * b[i]
		sum += a[i+1] * b[i+1]
		sum += a[i+2] * b[i+2]
		sum += a[i+3] * b[i+3]
	}
	for ; i < len(a); i++ {
		sum += a[i] * b[i]
	}
	return sum
}

// Norm32 computes the Euclidean norm of v.
func Norm32(v []float32) float32 {
	if len(v) == 0 {
		return 0
	}
	return search.Float32s(v).Magnitude()
}

// Distance32 computes the Euclidean distance between equal-length vectors.
func Distance32(a, b []float32) float32 {
	if len(a) == 0 {
		return 0
	}
	return search.Float32s(a).EuclideanDistance(b)
}

// CosineSim32 computes the cosine similarity of a and b from their
// precomputed magnitudes. Magnitudes must be non-zero.
func CosineSim32(a, b []float32, ma, mb float32) float32 {
	return 1 - search.Float32s(a).CosineDistanceWithMagnitude(b, ma, mb)
}
