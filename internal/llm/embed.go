package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// Embedder turns text into dense vectors for similarity search.
type Embedder interface {
	// Embed returns one vector per input text, in order.
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// ModelID returns the embedding model identifier.
	ModelID() string
}

// OpenAIEmbedder implements Embedder on the OpenAI embeddings API,
// via Azure when an endpoint is configured.
type OpenAIEmbedder struct {
	client *openai.Client
	model  string
}

// NewOpenAIEmbedder creates an embeddings client.
func NewOpenAIEmbedder(cfg EmbeddingConfig) (*OpenAIEmbedder, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("embedding API key is required")
	}

	model := cfg.Model
	if model == "" {
		model = "text-embedding-3-small"
	}

	client := openai.NewClientWithConfig(clientConfig(OpenAIConfig{
		APIKey:          cfg.APIKey,
		AzureEndpoint:   cfg.AzureEndpoint,
		AzureAPIVersion: cfg.AzureAPIVersion,
		AzureDeployment: model,
	}))

	return &OpenAIEmbedder{client: client, model: model}, nil
}

func (e *OpenAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	resp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.model),
	})
	if err != nil {
		return nil, mapOpenAIError(err)
	}
	if len(resp.Data) != len(texts) {
		return nil, &ErrInvalidResponse{
			Err: fmt.Errorf("expected %d embeddings, got %d", len(texts), len(resp.Data)),
		}
	}

	vectors := make([][]float32, len(texts))
	for _, d := range resp.Data {
		if d.Index < 0 || d.Index >= len(vectors) {
			return nil, &ErrInvalidResponse{
				Err: fmt.Errorf("embedding index %d out of range", d.Index),
			}
		}
		vectors[d.Index] = d.Embedding
	}
	return vectors, nil
}

func (e *OpenAIEmbedder) ModelID() string {
	return e.model
}
