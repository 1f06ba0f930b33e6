package llm

import (
	"context"
	"fmt"

	"github.com/lyneport/tlofgen/internal/store"
)

// NewProvider creates a Provider from configuration.
// It returns the provider wrapped with retry and logging middleware.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "openrouter":
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// Wrap with middleware: caller → retry → logging → base
	logged := WithLogging(base, eventRepo)
	retried := WithRetry(logged, cfg.Retry)

	return retried, nil
}

// NewProviderFromEnv builds the configured provider from environment
// variables. Convenience for commands that need nothing beyond the
// default config pipeline.
func NewProviderFromEnv(ctx context.Context, eventRepo store.EventRepo) (Provider, Config, error) {
	cfg := ConfigFromEnv()
	if err := cfg.Validate(); err != nil {
		return nil, cfg, err
	}
	p, err := NewProvider(ctx, cfg, eventRepo)
	if err != nil {
		return nil, cfg, err
	}
	return p, cfg, nil
}
