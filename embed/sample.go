package embed

import (
	"math/rand"
	"strings"
)

var sampleWords = []string{
	"arrow", "bow", "quiver", "string", "nock", "fletch", "shaft",
	"draw", "loose", "aim", "target", "gold", "ring", "range",
	"archer", "stance", "anchor", "release", "flight", "wind",
	"feather", "point", "spine", "rest", "sight", "limb", "riser",
}

// SampleTexts generates n short pseudo-random sentences from a fixed
// vocabulary. The seed makes runs reproducible, which keeps benchmark
// corpora stable.
func SampleTexts(n int, seed int64) []string {
	r := rand.New(rand.NewSource(seed))
	out := make([]string, n)
	for i := range out {
		wordCount := 4 + r.Intn(8)
		words := make([]string, wordCount)
		for j := range words {
			words[j] = sampleWords[r.Intn(len(sampleWords))]
		}
		out[i] = strings.Join(words, " ")
	}
	return out
}

// SampleVocabulary returns the vocabulary SampleTexts draws from.
func SampleVocabulary() []string {
	out := make([]string, len(sampleWords))
	copy(out, sampleWords)
	return out
}
