package embed

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/semaphore"
)

// Embedder turns texts into embedding vectors through a dictionary, with
// optional caching and admission control.
type Embedder struct {
	dict        *Dictionary
	cache       VectorCache
	workers     int
	maxInFlight int64
	sem         *semaphore.Weighted
}

// Option configures an Embedder.
type Option func(*Embedder)

// WithCache installs a cache for computed embeddings.
func WithCache(c VectorCache) Option {
	return func(e *Embedder) { e.cache = c }
}

// WithWorkers fixes the number of workers used by EmbedBatch. Values
// below 1 keep the automatic choice.
func WithWorkers(n int) Option {
	return func(e *Embedder) { e.workers = n }
}

// WithMaxInFlight caps the total number of texts being embedded at once
// across concurrent EmbedBatch calls. Zero means no cap.
func WithMaxInFlight(n int) Option {
	return func(e *Embedder) { e.maxInFlight = int64(n) }
}

// NewEmbedder creates an embedder over dict.
func NewEmbedder(dict *Dictionary, opts ...Option) (*Embedder, error) {
	if dict == nil {
		return nil, fmt.Errorf("embed: nil dictionary")
	}
	e := &Embedder{dict: dict}
	for _, opt := range opts {
		opt(e)
	}
	if e.maxInFlight > 0 {
		e.sem = semaphore.NewWeighted(e.maxInFlight)
	}
	return e, nil
}

// Dim returns the embedding dimension.
func (e *Embedder) Dim() int { return e.dict.Dim() }

// Embed returns the embedding for text. The second result is false when
// no token of text is known to the dictionary.
func (e *Embedder) Embed(text string) ([]float64, bool) {
	if e.cache != nil {
		if v, ok := e.cache.Get(text); ok {
			return v, true
		}
	}
	v, ok := e.dict.Embed(text)
	if !ok {
		return nil, false
	}
	if e.cache != nil {
		e.cache.Put(text, v)
	}
	return v, true
}

// EmbedBatch embeds texts in parallel, preserving order. Texts with no
// known tokens produce nil rows. Cancelling the context abandons the
// remaining work and returns its error.
func (e *Embedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	ctx, span := tracer.Start(ctx, "EmbedBatch")
	defer span.End()

	if len(texts) == 0 {
		return nil, nil
	}
	span.SetAttributes(
		attribute.Int("batch_size", len(texts)),
	)

	// Admission Control
	if e.sem != nil {
		weight := int64(len(texts))
		if weight > e.maxInFlight {
			// Oversized batches take the whole semaphore.
			weight = e.maxInFlight
		}
		if err := e.sem.Acquire(ctx, weight); err != nil {
			span.RecordError(err)
			return nil, err
		}
		defer e.sem.Release(weight)
	}

	numWorkers := e.workers
	if numWorkers < 1 {
		numWorkers = runtime.NumCPU()
		if numWorkers > 16 {
			numWorkers = 16 // Cap workers
		}
	}
	if numWorkers > len(texts) {
		numWorkers = len(texts)
	}

	results := make([][]float64, len(texts))
	var wg sync.WaitGroup
	chunkSize := (len(texts) + numWorkers - 1) / numWorkers
	for w := 0; w < numWorkers; w++ {
		start := w * chunkSize
		if start >= len(texts) {
			break
		}
		end := start + chunkSize
		if end > len(texts) {
			end = len(texts)
		}

		wg.Add(1)
		go func(s, eIdx int) {
			defer wg.Done()
			for i := s; i < eIdx; i++ {
				if ctx.Err() != nil {
					return
				}
				if v, ok := e.Embed(texts[i]); ok {
					results[i] = v
				}
			}
		}(start, end)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		span.RecordError(err)
		return nil, err
	}
	return results, nil
}
