package corpus

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitter_ShortTextPassesThrough(t *testing.T) {
	s := NewSplitter(1000, 100)
	chunks := s.Split("short regulation text")
	require.Equal(t, []string{"short regulation text"}, chunks)
}

func TestSplitter_EmptyText(t *testing.T) {
	s := NewSplitter(1000, 100)
	require.Empty(t, s.Split(""))
	require.Empty(t, s.Split("   \n\n  "))
}

func TestSplitter_RespectsChunkSize(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 200; i++ {
		b.WriteString("The minimum safety area extends one rotor diameter beyond the TLOF perimeter. ")
	}

	s := NewSplitter(1000, 100)
	chunks := s.Split(b.String())
	require.Greater(t, len(chunks), 1)
	for i, c := range chunks {
		require.LessOrEqual(t, len(c), 1000, "chunk %d too large", i)
	}
}

func TestSplitter_PrefersParagraphBreaks(t *testing.T) {
	para1 := strings.Repeat("a", 600)
	para2 := strings.Repeat("b", 600)
	text := para1 + "\n\n" + para2

	s := NewSplitter(1000, 100)
	chunks := s.Split(text)
	require.Len(t, chunks, 2)
	require.Equal(t, para1, chunks[0])
	require.Equal(t, para2, chunks[1])
}

func TestSplitter_OverlapCarriesContext(t *testing.T) {
	var words []string
	for i := 0; i < 300; i++ {
		words = append(words, "regulation")
	}
	text := strings.Join(words, " ")

	s := NewSplitter(500, 100)
	chunks := s.Split(text)
	require.Greater(t, len(chunks), 1)

	// Adjacent chunks share trailing/leading words.
	tail := chunks[0][len(chunks[0])-50:]
	require.Contains(t, chunks[1], strings.TrimSpace(tail))
}

func TestSplitter_OversizedUnbreakableRun(t *testing.T) {
	text := strings.Repeat("x", 2500)

	s := NewSplitter(1000, 100)
	chunks := s.Split(text)
	require.Len(t, chunks, 3)
	require.Len(t, chunks[0], 1000)
	require.Len(t, chunks[2], 500)
}

func TestVectorLiteral(t *testing.T) {
	require.Equal(t, "[1,-0.5,0]", vectorLiteral([]float32{1, -0.5, 0}))
	require.Equal(t, "[]", vectorLiteral(nil))
}
