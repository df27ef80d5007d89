package stats

import (
	"math"

	"github.com/23skdu/quiver"
)

// DefaultOutlierThreshold is the number of standard deviations beyond which
// a value is flagged as an outlier.
const DefaultOutlierThreshold = 2.0

// OutlierMask flags elements farther than threshold standard deviations
// from the mean, using the population statistics (ddof 0) of v itself. The
// empty vector yields an empty mask; a single or constant vector flags
// nothing.
func OutlierMask[T quiver.Number](v []T, threshold float64) []bool {
	if len(v) == 0 {
		return []bool{}
	}
	mean, _ := Mean(v)
	std, _ := Std(v, 0)
	return OutlierMaskWith(v, threshold, mean, std)
}

// OutlierMaskWith flags elements farther than threshold standard deviations
// from an externally supplied mean and std. A zero std flags nothing.
func OutlierMaskWith[T quiver.Number](v []T, threshold, mean, std float64) []bool {
	out := make([]bool, len(v))
	if std == 0 {
		return out
	}
	for i, x := range v {
		out[i] = math.Abs(float64(x)-mean) > threshold*std
	}
	return out
}
