package embed

import (
	"fmt"
	"io"
	"os"

	"github.com/fxamacker/cbor/v2"
)

// compiledDictionary is the on-disk form of a Dictionary.
type compiledDictionary struct {
	Dim     int                  `cbor:"dim"`
	Vectors map[string][]float64 `cbor:"vectors"`
}

// MarshalBinary encodes the dictionary as CBOR.
func (d *Dictionary) MarshalBinary() ([]byte, error) {
	return cbor.Marshal(compiledDictionary{Dim: d.dim, Vectors: d.vectors})
}

// UnmarshalBinary decodes a CBOR dictionary produced by MarshalBinary.
func (d *Dictionary) UnmarshalBinary(data []byte) error {
	var c compiledDictionary
	if err := cbor.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("embed: decode dictionary: %w", err)
	}
	return d.fromCompiled(c)
}

func (d *Dictionary) fromCompiled(c compiledDictionary) error {
	if c.Dim <= 0 {
		return fmt.Errorf("embed: compiled dictionary has dimension %d", c.Dim)
	}
	for tok, v := range c.Vectors {
		if len(v) != c.Dim {
			return fmt.Errorf("embed: compiled vector for %q has dimension %d, want %d", tok, len(v), c.Dim)
		}
	}
	if c.Vectors == nil {
		c.Vectors = make(map[string][]float64)
	}
	d.dim = c.Dim
	d.vectors = c.Vectors
	return nil
}

// WriteCompiled streams the dictionary as CBOR to w.
func (d *Dictionary) WriteCompiled(w io.Writer) error {
	enc := cbor.NewEncoder(w)
	if err := enc.Encode(compiledDictionary{Dim: d.dim, Vectors: d.vectors}); err != nil {
		return fmt.Errorf("embed: encode dictionary: %w", err)
	}
	return nil
}

// ReadCompiled decodes a CBOR dictionary from r.
func ReadCompiled(r io.Reader) (*Dictionary, error) {
	var c compiledDictionary
	if err := cbor.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("embed: decode dictionary: %w", err)
	}
	d := &Dictionary{}
	if err := d.fromCompiled(c); err != nil {
		return nil, err
	}
	return d, nil
}

// SaveCompiled writes the dictionary to a file in the compiled CBOR form.
func (d *Dictionary) SaveCompiled(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("embed: create %s: %w", path, err)
	}
	if err := d.WriteCompiled(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// LoadCompiled reads a dictionary written by SaveCompiled.
func LoadCompiled(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embed: open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	return ReadCompiled(f)
}
