package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which LLM provider to use.
	// Values: "openai", "anthropic", "gemini", "openrouter", "mock"
	Provider string

	OpenAI     OpenAIConfig
	Anthropic  AnthropicConfig
	Gemini     GeminiConfig
	OpenRouter OpenRouterConfig
	Embedding  EmbeddingConfig
	Retry      RetryConfig

	// FineTuned records whether the selected chat model is a
	// fine-tuned TLOF model. Prompt construction differs for
	// fine-tuned models, which need no schema in the system prompt.
	FineTuned bool

	// Timeout is the maximum duration for a single LLM request
	// (including retries). Default: 60s.
	Timeout time.Duration
}

// OpenAIConfig holds OpenAI and Azure OpenAI configuration.
// When AzureEndpoint is set the client targets an Azure OpenAI
// resource; otherwise it talks to the public API (or BaseURL).
type OpenAIConfig struct {
	APIKey          string
	Model           string // Default: "gpt-3.5-turbo"
	BaseURL         string // Optional. Override for OpenAI-compatible APIs.
	AzureEndpoint   string // e.g. "https://myresource.openai.azure.com"
	AzureAPIVersion string // Default: "2024-02-01"
	AzureDeployment string // Optional explicit deployment name.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// OpenRouterConfig holds OpenRouter-specific configuration.
type OpenRouterConfig struct {
	APIKey  string
	Model   string // Default: "openai/gpt-4o-mini"
	BaseURL string // Optional override.
}

// EmbeddingConfig holds configuration for the embeddings client used
// by the regulation corpus pipeline. The key falls back to the chat
// credentials when the embedding resource shares them.
type EmbeddingConfig struct {
	APIKey          string
	Model           string // Default: "text-embedding-3-small"
	AzureEndpoint   string
	AzureAPIVersion string // Default: "2024-02-01"
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

const defaultAzureAPIVersion = "2024-02-01"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model:           "gpt-3.5-turbo",
			AzureAPIVersion: defaultAzureAPIVersion,
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
		OpenRouter: OpenRouterConfig{
			Model: "openai/gpt-4o-mini",
		},
		Embedding: EmbeddingConfig{
			Model:           "text-embedding-3-small",
			AzureAPIVersion: defaultAzureAPIVersion,
		},
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 60 * time.Second,
	}
}

// ConfigFromEnv builds a Config from environment variables, falling
// back to defaults for unset values. The AZURE_* names match the ones
// the rest of the TLOF tooling already uses.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if p := os.Getenv("TLOFGEN_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
	}

	if k := os.Getenv("AZURE_OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	} else if k := os.Getenv("OPENAI_API_KEY"); k != "" {
		cfg.OpenAI.APIKey = k
	}
	if e := os.Getenv("AZURE_OPENAI_ENDPOINT"); e != "" {
		cfg.OpenAI.AzureEndpoint = e
	}
	if v := os.Getenv("AZURE_OPENAI_API_VERSION"); v != "" {
		cfg.OpenAI.AzureAPIVersion = v
	}
	if d := os.Getenv("AZURE_OPENAI_DEPLOYMENT"); d != "" {
		cfg.OpenAI.AzureDeployment = d
	}
	if u := os.Getenv("TLOFGEN_OPENAI_BASE_URL"); u != "" {
		cfg.OpenAI.BaseURL = u
	}

	// Fine-tuned model takes priority over the base model name.
	if m := os.Getenv("AZURE_OPENAI_FINETUNED_MODEL_NAME"); m != "" {
		cfg.OpenAI.Model = m
		cfg.FineTuned = true
	} else if m := os.Getenv("AZURE_OPENAI_MODEL_NAME"); m != "" {
		cfg.OpenAI.Model = m
	}

	if k := os.Getenv("ANTHROPIC_API_KEY"); k != "" {
		cfg.Anthropic.APIKey = k
	}
	if m := os.Getenv("TLOFGEN_ANTHROPIC_MODEL"); m != "" {
		cfg.Anthropic.Model = m
	}

	if k := os.Getenv("GEMINI_API_KEY"); k != "" {
		cfg.Gemini.APIKey = k
	}
	if m := os.Getenv("TLOFGEN_GEMINI_MODEL"); m != "" {
		cfg.Gemini.Model = m
	}

	if k := os.Getenv("OPENROUTER_API_KEY"); k != "" {
		cfg.OpenRouter.APIKey = k
	}
	if m := os.Getenv("TLOFGEN_OPENROUTER_MODEL"); m != "" {
		cfg.OpenRouter.Model = m
	}

	if k := os.Getenv("AZURE_EMBEDDING_API_KEY"); k != "" {
		cfg.Embedding.APIKey = k
	} else {
		cfg.Embedding.APIKey = cfg.OpenAI.APIKey
	}
	if e := os.Getenv("AZURE_EMBEDDING_ENDPOINT"); e != "" {
		cfg.Embedding.AzureEndpoint = e
	}
	if m := os.Getenv("AZURE_EMBEDDING_MODEL_NAME"); m != "" {
		cfg.Embedding.Model = m
	}

	return cfg
}

// Validate checks that the selected provider has its required
// credentials set. Called before any work starts so a missing key is
// fatal up front, not mid-batch.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("AZURE_OPENAI_API_KEY (or OPENAI_API_KEY) is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY is required for the gemini provider")
		}
	case "openrouter":
		if c.OpenRouter.APIKey == "" {
			return fmt.Errorf("OPENROUTER_API_KEY is required for the openrouter provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}

// ValidateEmbedding checks the embedding client credentials.
func (c Config) ValidateEmbedding() error {
	if c.Embedding.APIKey == "" {
		return fmt.Errorf("AZURE_EMBEDDING_API_KEY (or AZURE_OPENAI_API_KEY) is required for embeddings")
	}
	return nil
}
