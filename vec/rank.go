package vec

import (
	"fmt"
	"sort"

	"github.com/23skdu/quiver"
)

// Ranked pairs a score with the index it came from.
type Ranked[T quiver.Number] struct {
	Index int
	Score T
}

// Labeled pairs a score with a caller-supplied label.
type Labeled[T quiver.Number] struct {
	Label string
	Score T
}

// TopIndices returns the k highest scores with their indices, in descending
// score order. Equal scores keep ascending index order. k larger than the
// input is clamped; k <= 0 yields an empty result.
func TopIndices[T quiver.Number](scores []T, k int) []Ranked[T] {
	if k <= 0 || len(scores) == 0 {
		return nil
	}
	ranked := make([]Ranked[T], len(scores))
	for i, s := range scores {
		ranked[i] = Ranked[T]{Index: i, Score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool { return ranked[a].Score > ranked[b].Score })
	if k > len(ranked) {
		k = len(ranked)
	}
	return ranked[:k:k]
}

// TopLabeled returns the labels of the k highest scores in descending score
// order. It panics with ErrDimensionMismatch when labels and scores have
// different lengths.
func TopLabeled[T quiver.Number](scores []T, k int, labels []string) []Labeled[T] {
	if len(labels) != len(scores) {
		panic(fmt.Errorf("%w: vec: top labeled: %d labels for %d scores", quiver.ErrDimensionMismatch, len(labels), len(scores)))
	}
	top := TopIndices(scores, k)
	out := make([]Labeled[T], len(top))
	for i, r := range top {
		out[i] = Labeled[T]{Label: labels[r.Index], Score: r.Score}
	}
	return out
}
