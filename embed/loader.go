package embed

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// ReadWordVectors parses word vectors in the plain-text format used by
// GloVe and word2vec exports: one token per line followed by its
// space-separated components. The first line fixes the dimension.
func ReadWordVectors(r io.Reader) (*Dictionary, error) {
	start := time.Now()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var dict *Dictionary
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return nil, fmt.Errorf("embed: line %d: token %q has no vector components", lineNo, fields[0])
		}
		vector := make([]float64, len(fields)-1)
		for i, f := range fields[1:] {
			x, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, fmt.Errorf("embed: line %d: component %d: %w", lineNo, i, err)
			}
			vector[i] = x
		}
		if dict == nil {
			d, err := NewDictionary(len(vector))
			if err != nil {
				return nil, err
			}
			dict = d
		}
		if err := dict.Add(fields[0], vector); err != nil {
			return nil, fmt.Errorf("embed: line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("embed: reading word vectors: %w", err)
	}
	if dict == nil {
		return nil, fmt.Errorf("embed: no word vectors found")
	}

	log.Debug().
		Int("tokens", dict.Len()).
		Int("dim", dict.Dim()).
		Dur("elapsed", time.Since(start)).
		Msg("Loaded word vectors")
	return dict, nil
}

// OpenWordVectors loads a word-vector file from disk.
func OpenWordVectors(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("embed: open word vectors: %w", err)
	}
	defer func() { _ = f.Close() }()
	return ReadWordVectors(f)
}
