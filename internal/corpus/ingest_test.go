package corpus

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lyneport/tlofgen/internal/llm"
)

// fakeEmbedder produces deterministic one-dimensional embeddings.
type fakeEmbedder struct {
	calls [][]string
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.calls = append(f.calls, texts)
	out := make([][]float32, len(texts))
	for i, t := range texts {
		out[i] = []float32{float32(len(t))}
	}
	return out, nil
}

func (f *fakeEmbedder) ModelID() string { return "fake-embedding" }

// memStore is an in-memory VectorStore.
type memStore struct {
	chunks     []Chunk
	embeddings [][]float32
	matches    []Match
}

func (m *memStore) Add(ctx context.Context, chunks []Chunk, embeddings [][]float32) error {
	m.chunks = append(m.chunks, chunks...)
	m.embeddings = append(m.embeddings, embeddings...)
	return nil
}

func (m *memStore) Search(ctx context.Context, embedding []float32, k int) ([]Match, error) {
	if k > len(m.matches) {
		k = len(m.matches)
	}
	return m.matches[:k], nil
}

func TestIngestor_IngestFiles(t *testing.T) {
	dir := t.TempDir()
	doc := filepath.Join(dir, "faa_part_157.txt")
	text := strings.Repeat("Landing areas shall remain clear of obstructions.\n\n", 50)
	require.NoError(t, os.WriteFile(doc, []byte(text), 0o644))

	embedder := &fakeEmbedder{}
	store := &memStore{}
	in := &Ingestor{Embedder: embedder, Store: store}

	n, err := in.IngestFiles(context.Background(), []string{doc}, "faa")
	require.NoError(t, err)
	require.Greater(t, n, 1)
	require.Len(t, store.chunks, n)
	require.Len(t, store.embeddings, n)

	for _, c := range store.chunks {
		require.Equal(t, "faa", c.Metadata["regulator_code"])
		require.Equal(t, "faa_part_157.txt", c.Metadata["source"])
	}
}

func TestIngestor_NoFiles(t *testing.T) {
	in := &Ingestor{Embedder: &fakeEmbedder{}, Store: &memStore{}}
	_, err := in.IngestFiles(context.Background(), nil, "faa")
	require.Error(t, err)
}

func TestIngestor_MissingFile(t *testing.T) {
	in := &Ingestor{Embedder: &fakeEmbedder{}, Store: &memStore{}}
	_, err := in.IngestFiles(context.Background(), []string{"/nope/missing.txt"}, "faa")
	require.Error(t, err)
}

func TestAnswerer_Ask(t *testing.T) {
	store := &memStore{matches: []Match{
		{Content: "The TLOF shall support the dynamic load of the design helicopter.", Similarity: 0.92},
		{Content: "Safety areas extend beyond the FATO perimeter.", Similarity: 0.81},
	}}
	provider := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage("The TLOF must bear the design helicopter's dynamic load."),
	})

	a := &Answerer{Embedder: &fakeEmbedder{}, Store: store, Provider: provider}
	answer, err := a.Ask(context.Background(), "What load must a TLOF support?")
	require.NoError(t, err)
	require.Contains(t, answer.Text, "dynamic load")
	require.Len(t, answer.Sources, 2)

	req := provider.Calls[0]
	require.Contains(t, req.Messages[0].Content, "Regulation excerpts:")
	require.Contains(t, req.Messages[0].Content, "dynamic load of the design helicopter")
	require.Contains(t, req.Messages[0].Content, "Question: What load must a TLOF support?")
}

func TestAnswerer_EmptyCorpus(t *testing.T) {
	a := &Answerer{
		Embedder: &fakeEmbedder{},
		Store:    &memStore{},
		Provider: llm.NewMockProvider(),
	}
	_, err := a.Ask(context.Background(), "anything?")
	require.ErrorContains(t, err, "ingest")
}

func TestAnswerer_EmptyQuestion(t *testing.T) {
	a := &Answerer{Embedder: &fakeEmbedder{}, Store: &memStore{}}
	_, err := a.Ask(context.Background(), "  ")
	require.Error(t, err)
}
