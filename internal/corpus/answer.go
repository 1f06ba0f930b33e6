package corpus

import (
	"context"
	"fmt"
	"strings"

	"github.com/lyneport/tlofgen/internal/llm"
)

// DefaultTopK is how many chunks back a retrieval-augmented answer.
const DefaultTopK = 5

const answerSystemPrompt = "You are an aviation regulation assistant. Answer the question using only the provided regulation excerpts. If the excerpts do not contain the answer, say so."

// Answer is a retrieval-augmented answer with its supporting chunks.
type Answer struct {
	Text    string
	Sources []Match
}

// Answerer answers questions over the embedded regulation corpus.
type Answerer struct {
	Embedder llm.Embedder
	Store    VectorStore
	Provider llm.Provider

	// TopK overrides DefaultTopK when positive.
	TopK int
}

// Ask embeds the question, retrieves the most similar chunks, and asks
// the model for an answer grounded in them.
func (a *Answerer) Ask(ctx context.Context, question string) (*Answer, error) {
	if strings.TrimSpace(question) == "" {
		return nil, fmt.Errorf("question is empty")
	}

	k := a.TopK
	if k <= 0 {
		k = DefaultTopK
	}

	embedCtx := llm.WithPurpose(ctx, "corpus-embed")
	vectors, err := a.Embedder.Embed(embedCtx, []string{question})
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}

	matches, err := a.Store.Search(ctx, vectors[0], k)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no regulation chunks found; ingest documents first")
	}

	var b strings.Builder
	b.WriteString("Regulation excerpts:\n\n")
	for i, m := range matches {
		fmt.Fprintf(&b, "[%d] %s\n\n", i+1, m.Content)
	}
	fmt.Fprintf(&b, "Question: %s", question)

	ctx = llm.WithPurpose(ctx, "regulation-answer")
	resp, err := a.Provider.Generate(ctx, llm.Request{
		System:    answerSystemPrompt,
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: b.String()}},
		MaxTokens: 1000,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answer: %w", err)
	}

	return &Answer{
		Text:    string(resp.Content),
		Sources: matches,
	}, nil
}
