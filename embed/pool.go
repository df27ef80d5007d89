package embed

import "sync"

// scoreBuffers recycles per-query score slices between searches. Search
// overwrites every element, so reused buffers are not zeroed.
type scoreBuffers struct {
	pool sync.Pool
}

func (p *scoreBuffers) Get(n int) []float64 {
	if v := p.pool.Get(); v != nil {
		s := *(v.(*[]float64))
		if cap(s) >= n {
			return s[:n]
		}
	}
	return make([]float64, n)
}

func (p *scoreBuffers) Put(s []float64) {
	p.pool.Put(&s)
}

var scratch scoreBuffers
