package embed

import "sync"

// VectorCache caches computed embeddings by text.
type VectorCache interface {
	// Get retrieves a vector from the cache.
	Get(key string) ([]float64, bool)
	// Put stores a vector in the cache.
	Put(key string, vec []float64)
	// Len returns the number of cached vectors.
	Len() int
}

// MapCache is a simple in-memory implementation of VectorCache.
type MapCache struct {
	data map[string][]float64
	mu   sync.RWMutex
}

func NewMapCache() *MapCache {
	return &MapCache{data: make(map[string][]float64)}
}

func (c *MapCache) Get(key string) ([]float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if v, ok := c.data[key]; ok {
		// Return a copy so callers cannot modify the cached value.
		dst := make([]float64, len(v))
		copy(dst, v)
		return dst, true
	}
	return nil, false
}

func (c *MapCache) Put(key string, vec []float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// Store a copy so later writes through vec cannot corrupt the cache.
	dst := make([]float64, len(vec))
	copy(dst, vec)
	c.data[key] = dst
}

func (c *MapCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.data)
}
