package vec

import (
	"fmt"
	"sort"

	"github.com/23skdu/quiver"
)

// DefaultDuplicateThreshold is the cosine similarity at or above which two
// vectors are reported as near-duplicates.
const DefaultDuplicateThreshold = 0.95

// Duplicate records a near-duplicate pair of database rows.
type Duplicate[T quiver.Float] struct {
	I, J       int
	Similarity T
}

// CosineSimilarities returns the cosine similarity between query and every
// row of database, in row order. It panics with ErrDimensionMismatch if any
// row length differs from the query and ErrZeroVector if the query or a row
// has magnitude 0. An empty database yields an empty result.
func CosineSimilarities[T quiver.Float](database [][]T, query []T) []T {
	out := make([]T, len(database))
	if len(database) == 0 {
		return out
	}
	mq := Magnitude(query)
	if mq == 0 {
		panic(fmt.Errorf("%w: vec: cosine similarities: zero query", quiver.ErrZeroVector))
	}
	for i, row := range database {
		sameLen("cosine similarities", row, query)
		mr := Magnitude(row)
		if mr == 0 {
			panic(fmt.Errorf("%w: vec: cosine similarities: zero row %d", quiver.ErrZeroVector, i))
		}
		out[i] = Dot(row, query) / (mr * mq)
	}
	return out
}

// FindDuplicates returns every unordered pair of database rows whose cosine
// similarity is at least threshold, sorted by descending similarity. Pairs
// of equal similarity keep generation order: ascending I, then J.
func FindDuplicates[T quiver.Float](database [][]T, threshold T) []Duplicate[T] {
	mags := make([]T, len(database))
	for i, row := range database {
		mags[i] = Magnitude(row)
	}
	var dups []Duplicate[T]
	for i := 0; i < len(database); i++ {
		for j := i + 1; j < len(database); j++ {
			sameLen("find duplicates", database[i], database[j])
			if mags[i] == 0 || mags[j] == 0 {
				panic(fmt.Errorf("%w: vec: find duplicates: zero row", quiver.ErrZeroVector))
			}
			sim := Dot(database[i], database[j]) / (mags[i] * mags[j])
			if sim >= threshold {
				dups = append(dups, Duplicate[T]{I: i, J: j, Similarity: sim})
			}
		}
	}
	sort.SliceStable(dups, func(a, b int) bool { return dups[a].Similarity > dups[b].Similarity })
	return dups
}

// ClusterCohesion returns the mean pairwise cosine similarity across items.
// Fewer than two items yield 0.
func ClusterCohesion[T quiver.Float](items [][]T) T {
	n := len(items)
	if n < 2 {
		return 0
	}
	mags := make([]T, n)
	for i, it := range items {
		mags[i] = Magnitude(it)
	}
	var total T
	var pairs int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sameLen("cluster cohesion", items[i], items[j])
			if mags[i] == 0 || mags[j] == 0 {
				panic(fmt.Errorf("%w: vec: cluster cohesion: zero item", quiver.ErrZeroVector))
			}
			total += Dot(items[i], items[j]) / (mags[i] * mags[j])
			pairs++
		}
	}
	return total / T(pairs)
}
