// Package corpus ingests regulation documents into a pgvector-backed
// store and answers questions over them with retrieval augmentation.
package corpus

import "strings"

// Splitter defaults matching the ingestion pipeline the corpus was
// originally built with. Changing them invalidates stored chunks.
const (
	DefaultChunkSize    = 1000
	DefaultChunkOverlap = 100
)

// Splitter breaks text into overlapping chunks, preferring to split on
// the largest separator that keeps pieces under ChunkSize.
type Splitter struct {
	ChunkSize    int
	ChunkOverlap int
	separators   []string
}

// NewSplitter creates a Splitter with the standard separators,
// paragraph first, then line, word, and finally character.
func NewSplitter(size, overlap int) *Splitter {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
	}
	return &Splitter{
		ChunkSize:    size,
		ChunkOverlap: overlap,
		separators:   []string{"\n\n", "\n", " ", ""},
	}
}

// Split returns the chunks of text. Whitespace-only chunks are
// dropped.
func (s *Splitter) Split(text string) []string {
	var out []string
	for _, piece := range s.split(text, s.separators) {
		if strings.TrimSpace(piece) != "" {
			out = append(out, piece)
		}
	}
	return out
}

func (s *Splitter) split(text string, separators []string) []string {
	if len(text) <= s.ChunkSize {
		if text == "" {
			return nil
		}
		return []string{text}
	}

	sep := separators[len(separators)-1]
	rest := separators
	for i, candidate := range separators {
		if candidate == "" || strings.Contains(text, candidate) {
			sep = candidate
			rest = separators[i+1:]
			break
		}
	}

	var parts []string
	if sep == "" {
		for i := 0; i < len(text); i += s.ChunkSize {
			end := i + s.ChunkSize
			if end > len(text) {
				end = len(text)
			}
			parts = append(parts, text[i:end])
		}
	} else {
		parts = strings.Split(text, sep)
	}

	// Merge small parts back up to ChunkSize, recursing into parts
	// that are still too large on their own.
	var out []string
	var pending []string
	pendingLen := 0
	fresh := false

	flush := func() {
		if !fresh {
			return
		}
		fresh = false
		out = append(out, strings.Join(pending, sep))
		// Carry overlap into the next chunk.
		var carry []string
		carryLen := 0
		for i := len(pending) - 1; i >= 0; i-- {
			pieceLen := len(pending[i]) + len(sep)
			if carryLen+pieceLen > s.ChunkOverlap {
				break
			}
			carry = append([]string{pending[i]}, carry...)
			carryLen += pieceLen
		}
		pending = carry
		pendingLen = carryLen
	}

	for _, part := range parts {
		if len(part) > s.ChunkSize {
			flush()
			pending = nil
			pendingLen = 0
			out = append(out, s.split(part, rest)...)
			continue
		}
		if pendingLen+len(part)+len(sep) > s.ChunkSize {
			flush()
		}
		pending = append(pending, part)
		pendingLen += len(part) + len(sep)
		fresh = true
	}
	flush()

	return out
}
