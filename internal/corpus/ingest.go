package corpus

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lyneport/tlofgen/internal/llm"
)

// embedBatchSize bounds how many chunks go to the embeddings API per
// call.
const embedBatchSize = 64

// Ingestor chunks documents, embeds them, and stores the results.
type Ingestor struct {
	Splitter *Splitter
	Embedder llm.Embedder
	Store    VectorStore

	// Logf reports progress. Defaults to a no-op.
	Logf func(format string, args ...any)
}

func (in *Ingestor) logf(format string, args ...any) {
	if in.Logf != nil {
		in.Logf(format, args...)
	}
}

// IngestFiles reads each text file, chunks it, and stores embedded
// chunks tagged with the regulator code (e.g. "faa"). It returns the
// number of chunks stored.
func (in *Ingestor) IngestFiles(ctx context.Context, paths []string, regulatorCode string) (int, error) {
	if len(paths) == 0 {
		return 0, fmt.Errorf("no documents to ingest")
	}

	splitter := in.Splitter
	if splitter == nil {
		splitter = NewSplitter(DefaultChunkSize, DefaultChunkOverlap)
	}

	var chunks []Chunk
	for _, path := range paths {
		blob, err := os.ReadFile(path)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", path, err)
		}
		pieces := splitter.Split(string(blob))
		in.logf("%s: %d chunks", path, len(pieces))
		for _, piece := range pieces {
			chunks = append(chunks, Chunk{
				Content: piece,
				Metadata: map[string]any{
					"source":         filepath.Base(path),
					"regulator_code": regulatorCode,
				},
			})
		}
	}
	if len(chunks) == 0 {
		return 0, fmt.Errorf("documents contained no text")
	}
	in.logf("prepared %d chunks for %s regulations", len(chunks), regulatorCode)

	ctx = llm.WithPurpose(ctx, "corpus-embed")
	for start := 0; start < len(chunks); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		texts := make([]string, len(batch))
		for i, c := range batch {
			texts[i] = c.Content
		}

		embeddings, err := in.Embedder.Embed(ctx, texts)
		if err != nil {
			return start, fmt.Errorf("embed chunks %d-%d: %w", start, end, err)
		}
		if err := in.Store.Add(ctx, batch, embeddings); err != nil {
			return start, err
		}
	}

	return len(chunks), nil
}
