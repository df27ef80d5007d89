package stats

import (
	"fmt"

	"github.com/23skdu/quiver"
)

// RollingMean returns the mean of every full window of the given width; the
// result has max(0, len(v)-window+1) elements. It panics with
// ErrDimensionMismatch when window < 1.
func RollingMean[T quiver.Number](v []T, window int) []float64 {
	if window < 1 {
		panic(fmt.Errorf("%w: stats: rolling mean: window %d", quiver.ErrDimensionMismatch, window))
	}
	if window > len(v) {
		return []float64{}
	}
	out := make([]float64, len(v)-window+1)
	var run float64
	for i, x := range v {
		run += float64(x)
		if i >= window {
			run -= float64(v[i-window])
		}
		if i >= window-1 {
			out[i-window+1] = run / float64(window)
		}
	}
	return out
}

// Histogram counts v into bins equal-width buckets spanning [min, max],
// returning the counts and the bins+1 edges. The final bin includes its
// right edge; a degenerate range widens by 0.5 on each side. The empty
// vector yields (nil, nil); bins < 1 panics with ErrDimensionMismatch.
func Histogram[T quiver.Number](v []T, bins int) ([]int, []float64) {
	if bins < 1 {
		panic(fmt.Errorf("%w: stats: histogram: %d bins", quiver.ErrDimensionMismatch, bins))
	}
	if len(v) == 0 {
		return nil, nil
	}
	lo, _ := Min(v)
	hi, _ := Max(v)
	low, high := float64(lo), float64(hi)
	if low == high {
		low -= 0.5
		high += 0.5
	}
	width := (high - low) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = low + float64(i)*width
	}
	edges[bins] = high
	counts := make([]int, bins)
	for _, x := range v {
		idx := int((float64(x) - low) / width)
		if idx >= bins {
			idx = bins - 1
		}
		if idx < 0 {
			idx = 0
		}
		counts[idx]++
	}
	return counts, edges
}

// GroupSums sums values by label, returning labels in first-appearance
// order with their totals. It panics with ErrDimensionMismatch when the
// inputs have different lengths.
func GroupSums[T quiver.Number](labels []string, values []T) ([]string, []float64) {
	if len(labels) != len(values) {
		panic(fmt.Errorf("%w: stats: group sums: %d labels for %d values",
			quiver.ErrDimensionMismatch, len(labels), len(values)))
	}
	var order []string
	sums := make(map[string]float64)
	for i, lab := range labels {
		if _, seen := sums[lab]; !seen {
			order = append(order, lab)
		}
		sums[lab] += float64(values[i])
	}
	out := make([]float64, len(order))
	for i, lab := range order {
		out[i] = sums[lab]
	}
	return order, out
}

// GroupMeans averages values by label, returning labels in first-appearance
// order with their means. It panics with ErrDimensionMismatch when the
// inputs have different lengths.
func GroupMeans[T quiver.Number](labels []string, values []T) ([]string, []float64) {
	if len(labels) != len(values) {
		panic(fmt.Errorf("%w: stats: group means: %d labels for %d values",
			quiver.ErrDimensionMismatch, len(labels), len(values)))
	}
	var order []string
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for i, lab := range labels {
		if _, seen := counts[lab]; !seen {
			order = append(order, lab)
		}
		sums[lab] += float64(values[i])
		counts[lab]++
	}
	out := make([]float64, len(order))
	for i, lab := range order {
		out[i] = sums[lab] / float64(counts[lab])
	}
	return order, out
}
