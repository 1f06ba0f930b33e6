package llm

import "strings"

// ModelCost holds per-million-token pricing for a model.
// Prices are in USD per 1 million tokens, sourced from models.dev.
type ModelCost struct {
	InputPerMTok  float64 // USD per 1M input tokens
	OutputPerMTok float64 // USD per 1M output tokens
}

// Cost calculates the total USD cost for the given token counts.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the pricing for a model ID, or nil if unknown.
// Fine-tuned deployments carry an "ft:" prefix on the base model name;
// those resolve to the fine-tuned rate for the base model.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	if base, ok := strings.CutPrefix(modelID, "ft:"); ok {
		base, _, _ = strings.Cut(base, ":")
		if c, ok := fineTunedCosts[base]; ok {
			return &c
		}
	}
	return nil
}

// modelCosts is the embedded pricing table extracted from models.dev.
// Last updated: 2026-02-15.
var modelCosts = map[string]ModelCost{
	// Anthropic
	"claude-3-5-haiku-latest":   {0.8, 4},
	"claude-3-5-sonnet-latest":  {3, 15},
	"claude-haiku-4-5":          {1, 5},
	"claude-sonnet-4-5":         {3, 15},
	"claude-opus-4-5":           {5, 25},

	// OpenAI / Azure OpenAI
	"gpt-3.5-turbo": {0.5, 1.5},
	"gpt-35-turbo":  {0.5, 1.5},
	"gpt-4":         {30, 60},
	"gpt-4-turbo":   {10, 30},
	"gpt-4.1":       {2, 8},
	"gpt-4.1-mini":  {0.4, 1.6},
	"gpt-4o":        {2.5, 10},
	"gpt-4o-mini":   {0.15, 0.6},

	// OpenAI embeddings
	"text-embedding-3-small": {0.02, 0},
	"text-embedding-3-large": {0.13, 0},
	"text-embedding-ada-002": {0.1, 0},

	// Google (Gemini)
	"gemini-1.5-flash":      {0.075, 0.3},
	"gemini-2.0-flash":      {0.1, 0.4},
	"gemini-2.5-flash":      {0.3, 2.5},
	"gemini-2.5-pro":        {1.25, 10},
	"gemini-flash-latest":   {0.3, 2.5},
}

// fineTunedCosts holds inference pricing for fine-tuned base models.
var fineTunedCosts = map[string]ModelCost{
	"gpt-3.5-turbo": {3, 6},
	"gpt-35-turbo":  {3, 6},
	"gpt-4o-mini":   {0.3, 1.2},
	"gpt-4o":        {3.75, 15},
}
