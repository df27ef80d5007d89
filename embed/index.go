package embed

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/23skdu/quiver/internal/kernel"
	"github.com/23skdu/quiver/vec"
)

var tracer = otel.Tracer("quiver-embed")

// Match is one search hit.
type Match struct {
	Label string
	Score float64
}

// DuplicatePair names two indexed entries whose vectors are
// near-duplicates.
type DuplicatePair struct {
	A          string
	B          string
	Similarity float64
}

// Index is a brute-force cosine similarity index over labeled vectors.
// Magnitudes are precomputed at insertion so each query costs one dot
// product per row.
type Index struct {
	mu      sync.RWMutex
	dim     int
	labels  []string
	vectors [][]float64
	mags    []float64
}

// NewIndex creates an index for vectors of the given dimension.
func NewIndex(dim int) (*Index, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("embed: index dimension must be positive, got %d", dim)
	}
	return &Index{dim: dim}, nil
}

// Add stores vector under label. Zero vectors are rejected because they
// have no cosine direction.
func (ix *Index) Add(label string, vector []float64) error {
	if len(vector) != ix.dim {
		return fmt.Errorf("embed: vector for %q has dimension %d, want %d", label, len(vector), ix.dim)
	}
	m := kernel.Norm2(vector)
	if m == 0 {
		return fmt.Errorf("embed: vector for %q has zero magnitude", label)
	}
	stored := make([]float64, ix.dim)
	copy(stored, vector)

	ix.mu.Lock()
	ix.labels = append(ix.labels, label)
	ix.vectors = append(ix.vectors, stored)
	ix.mags = append(ix.mags, m)
	indexSize.Set(float64(len(ix.labels)))
	ix.mu.Unlock()
	return nil
}

// AddBatch stores labeled vectors in order, stopping at the first error.
func (ix *Index) AddBatch(labels []string, vectors [][]float64) error {
	if len(labels) != len(vectors) {
		return fmt.Errorf("embed: %d labels for %d vectors", len(labels), len(vectors))
	}
	for i := range labels {
		if err := ix.Add(labels[i], vectors[i]); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of indexed vectors.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.labels)
}

// Dim returns the vector dimension.
func (ix *Index) Dim() int { return ix.dim }

// Labels returns the indexed labels in insertion order.
func (ix *Index) Labels() []string {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	out := make([]string, len(ix.labels))
	copy(out, ix.labels)
	return out
}

// VectorAt returns a copy of the vector at insertion position i.
func (ix *Index) VectorAt(i int) ([]float64, bool) {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	if i < 0 || i >= len(ix.vectors) {
		return nil, false
	}
	out := make([]float64, ix.dim)
	copy(out, ix.vectors[i])
	return out, true
}

// Search returns the k entries most cosine-similar to query, most similar
// first. Ties keep insertion order, and k is clamped to the index size.
func (ix *Index) Search(ctx context.Context, query []float64, k int) ([]Match, error) {
	_, span := tracer.Start(ctx, "Search")
	defer span.End()

	start := time.Now()
	defer func() {
		searchDuration.Observe(time.Since(start).Seconds())
	}()

	if len(query) != ix.dim {
		err := fmt.Errorf("embed: query has dimension %d, want %d", len(query), ix.dim)
		span.RecordError(err)
		return nil, err
	}
	mq := kernel.Norm2(query)
	if mq == 0 {
		err := fmt.Errorf("embed: query has zero magnitude")
		span.RecordError(err)
		return nil, err
	}

	ix.mu.RLock()
	defer ix.mu.RUnlock()
	span.SetAttributes(
		attribute.Int("index_size", len(ix.labels)),
		attribute.Int("k", k),
	)

	scores := scratch.Get(len(ix.vectors))
	defer scratch.Put(scores)
	for i, row := range ix.vectors {
		scores[i] = kernel.Dot(row, query) / (ix.mags[i] * mq)
	}
	top := vec.TopLabeled(scores, k, ix.labels)
	out := make([]Match, len(top))
	for i, hit := range top {
		out[i] = Match{Label: hit.Label, Score: hit.Score}
	}
	return out, nil
}

// SearchBatch runs Search for every query in parallel, preserving query
// order. Any failing query fails the whole batch.
func (ix *Index) SearchBatch(ctx context.Context, queries [][]float64, k int) ([][]Match, error) {
	ctx, span := tracer.Start(ctx, "SearchBatch")
	defer span.End()

	if len(queries) == 0 {
		return nil, nil
	}
	span.SetAttributes(
		attribute.Int("batch_size", len(queries)),
	)

	numWorkers := runtime.NumCPU()
	if numWorkers > 16 {
		numWorkers = 16 // Cap workers
	}
	if numWorkers > len(queries) {
		numWorkers = len(queries)
	}

	results := make([][]Match, len(queries))
	errs := make([]error, len(queries))
	var wg sync.WaitGroup
	chunkSize := (len(queries) + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		if start >= len(queries) {
			break
		}
		end := start + chunkSize
		if end > len(queries) {
			end = len(queries)
		}

		wg.Add(1)
		go func(s, eIdx int) {
			defer wg.Done()
			for i := s; i < eIdx; i++ {
				if err := ctx.Err(); err != nil {
					errs[i] = err
					return
				}
				results[i], errs[i] = ix.Search(ctx, queries[i], k)
			}
		}(start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
	}
	return results, nil
}

// Duplicates returns label pairs whose cosine similarity exceeds
// threshold, most similar first.
func (ix *Index) Duplicates(threshold float64) []DuplicatePair {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	dups := vec.FindDuplicates(ix.vectors, threshold)
	out := make([]DuplicatePair, len(dups))
	for i, d := range dups {
		out[i] = DuplicatePair{A: ix.labels[d.I], B: ix.labels[d.J], Similarity: d.Similarity}
	}
	return out
}

// Cohesion returns the mean pairwise cosine similarity across all indexed
// vectors, or 0 for fewer than two.
func (ix *Index) Cohesion() float64 {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return vec.ClusterCohesion(ix.vectors)
}
