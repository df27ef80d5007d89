package embed

import (
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldAccents strips combining marks so "café" and "cafe" tokenize alike.
var foldAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Tokenize splits text into lowercase word tokens. Accents are folded
// away, and punctuation and symbol runes separate tokens without being
// kept.
func Tokenize(text string) []string {
	start := time.Now()
	defer func() {
		tokenizationDuration.Observe(time.Since(start).Seconds())
	}()

	lowered := strings.ToLower(text)
	folded, _, _ := transform.String(foldAccents, lowered)

	return strings.FieldsFunc(folded, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r) || unicode.IsSymbol(r)
	})
}
