package embed

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	t.Run("LowercasesAndSplits", func(t *testing.T) {
		require.Equal(t, []string{"the", "arrow", "flies"}, Tokenize("The Arrow FLIES"))
	})

	t.Run("DropsPunctuation", func(t *testing.T) {
		require.Equal(t, []string{"draw", "aim", "loose"}, Tokenize("Draw, aim... loose!"))
	})

	t.Run("SplitsOnSymbols", func(t *testing.T) {
		require.Equal(t, []string{"gold", "ring"}, Tokenize("gold+ring"))
	})

	t.Run("FoldsAccents", func(t *testing.T) {
		require.Equal(t, []string{"cafe", "archere"}, Tokenize("Café archère"))
	})

	t.Run("KeepsDigits", func(t *testing.T) {
		require.Equal(t, []string{"ring9", "scores", "10"}, Tokenize("ring9 scores: 10"))
	})

	t.Run("EmptyInput", func(t *testing.T) {
		require.Empty(t, Tokenize(""))
		require.Empty(t, Tokenize(" \t\n"))
		require.Empty(t, Tokenize("!!! ??? ..."))
	})

	t.Run("CollapsesRepeatedSeparators", func(t *testing.T) {
		require.Equal(t, []string{"nock", "draw", "loose"}, Tokenize("nock -- draw --  loose"))
	})
}

// Benchmarks

func BenchmarkTokenize(b *testing.B) {
	texts := SampleTexts(64, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Tokenize(texts[i%len(texts)])
	}
}
