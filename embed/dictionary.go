package embed

import (
	"fmt"

	"github.com/23skdu/quiver/internal/kernel"
	"github.com/23skdu/quiver/vec"
)

// Dictionary maps tokens to fixed-dimension embedding vectors. It is safe
// for concurrent reads once loading is finished.
type Dictionary struct {
	dim     int
	vectors map[string][]float64
}

// NewDictionary creates an empty dictionary for vectors of the given
// dimension.
func NewDictionary(dim int) (*Dictionary, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("embed: dictionary dimension must be positive, got %d", dim)
	}
	return &Dictionary{dim: dim, vectors: make(map[string][]float64)}, nil
}

// Dim returns the vector dimension.
func (d *Dictionary) Dim() int { return d.dim }

// Len returns the number of known tokens.
func (d *Dictionary) Len() int { return len(d.vectors) }

// Add stores a vector for token, replacing any previous one. The vector
// dimension must match the dictionary.
func (d *Dictionary) Add(token string, vector []float64) error {
	if len(vector) != d.dim {
		return fmt.Errorf("embed: vector for %q has dimension %d, want %d", token, len(vector), d.dim)
	}
	stored := make([]float64, d.dim)
	copy(stored, vector)
	d.vectors[token] = stored
	return nil
}

// Lookup returns a copy of the vector for token.
func (d *Dictionary) Lookup(token string) ([]float64, bool) {
	v, ok := d.vectors[token]
	if !ok {
		lookupMisses.Inc()
		return nil, false
	}
	lookupHits.Inc()
	out := make([]float64, len(v))
	copy(out, v)
	return out, true
}

// Tokens returns all known tokens in unspecified order.
func (d *Dictionary) Tokens() []string {
	out := make([]string, 0, len(d.vectors))
	for tok := range d.vectors {
		out = append(out, tok)
	}
	return out
}

// Vectors returns the vectors for the given tokens in token order.
// Unknown tokens are skipped.
func (d *Dictionary) Vectors(tokens []string) [][]float64 {
	out := make([][]float64, 0, len(tokens))
	for _, tok := range tokens {
		if v, ok := d.Lookup(tok); ok {
			out = append(out, v)
		}
	}
	return out
}

// Embed tokenizes text and mean-pools the vectors of its known tokens.
// The second result is false when no token of text is in the dictionary.
func (d *Dictionary) Embed(text string) ([]float64, bool) {
	rows := d.Vectors(Tokenize(text))
	if len(rows) == 0 {
		return nil, false
	}
	sum := make([]float64, d.dim)
	for _, row := range rows {
		kernel.AddTo(sum, sum, row)
	}
	return vec.DivScalar(sum, float64(len(rows))), true
}
