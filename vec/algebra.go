package vec

import (
	"fmt"
	"math"

	"github.com/23skdu/quiver"
	"github.com/23skdu/quiver/internal/kernel"
)

// Dot returns the dot product of two equal-length vectors.
func Dot[T quiver.Number](a, b []T) T {
	sameLen("dot", a, b)
	switch x := any(a).(type) {
	case []float64:
		return T(kernel.Dot(x, any(b).([]float64)))
	case []float32:
		return T(kernel.Dot32(x, any(b).([]float32)))
	}
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

// Magnitude returns the Euclidean length of v. The zero vector has
// magnitude 0; no error is possible.
func Magnitude[T quiver.Float](v []T) T {
	switch x := any(v).(type) {
	case []float64:
		return T(kernel.Norm2(x))
	case []float32:
		return T(kernel.Norm32(x))
	}
	var sum float64
	for _, x := range v {
		f := float64(x)
		sum += f * f
	}
	return T(math.Sqrt(sum))
}

// Normalized returns the unit vector in the direction of v. It panics with
// ErrZeroVector when v has magnitude 0.
func Normalized[T quiver.Float](v []T) []T {
	m := Magnitude(v)
	if m == 0 {
		panic(fmt.Errorf("%w: vec: normalize", quiver.ErrZeroVector))
	}
	out := make([]T, len(v))
	for i, x := range v {
		out[i] = x / m
	}
	return out
}

// CosineOfAngle returns the cosine of the angle between a and b, unclamped.
// It panics with ErrZeroVector when either vector has magnitude 0.
func CosineOfAngle[T quiver.Float](a, b []T) T {
	sameLen("cosine", a, b)
	ma, mb := Magnitude(a), Magnitude(b)
	if ma == 0 || mb == 0 {
		panic(fmt.Errorf("%w: vec: cosine: undefined for zero magnitude", quiver.ErrZeroVector))
	}
	if x, ok := any(a).([]float32); ok {
		return T(kernel.CosineSim32(x, any(b).([]float32), float32(ma), float32(mb)))
	}
	return Dot(a, b) / (ma * mb)
}

// Angle returns the angle between a and b in radians.
func Angle[T quiver.Float](a, b []T) T {
	c := float64(CosineOfAngle(a, b))
	// Keep rounding drift inside the acos domain.
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	return T(math.Acos(c))
}

// AngleInDegrees returns the angle between a and b in degrees.
func AngleInDegrees[T quiver.Float](a, b []T) T {
	return Angle(a, b) * (180 / math.Pi)
}

// Distance returns the Euclidean distance between two equal-length vectors.
func Distance[T quiver.Float](a, b []T) T {
	sameLen("distance", a, b)
	switch x := any(a).(type) {
	case []float64:
		return T(kernel.Distance(x, any(b).([]float64)))
	case []float32:
		return T(kernel.Distance32(x, any(b).([]float32)))
	}
	var sum float64
	for i := range a {
		d := float64(a[i] - b[i])
		sum += d * d
	}
	return T(math.Sqrt(sum))
}

// ScalarProjection returns the signed length of a's projection onto b. It
// panics with ErrZeroVector when b has magnitude 0.
func ScalarProjection[T quiver.Float](a, b []T) T {
	sameLen("scalar projection", a, b)
	m := Magnitude(b)
	if m == 0 {
		panic(fmt.Errorf("%w: vec: scalar projection onto zero vector", quiver.ErrZeroVector))
	}
	return Dot(a, b) / m
}

// Projection returns the vector projection of a onto b. It panics with
// ErrZeroVector when b has magnitude 0.
func Projection[T quiver.Float](a, b []T) []T {
	sameLen("projection", a, b)
	d := Dot(b, b)
	if d == 0 {
		panic(fmt.Errorf("%w: vec: projection onto zero vector", quiver.ErrZeroVector))
	}
	return Scale(b, Dot(a, b)/d)
}

// OrthogonalComponent returns the component of a perpendicular to b. Adding
// it to Projection(a, b) reconstructs a.
func OrthogonalComponent[T quiver.Float](a, b []T) []T {
	return Sub(a, Projection(a, b))
}
