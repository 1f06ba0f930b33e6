// Package infer turns natural-language landing pad descriptions into
// validated TLOF configurations through a hosted language model.
package infer

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/lyneport/tlofgen/internal/llm"
	"github.com/lyneport/tlofgen/internal/tlof"
)

// Generation defaults. Low temperature keeps the JSON output stable.
const (
	DefaultTemperature = 0.3
	DefaultMaxTokens   = 2000
)

// systemPromptFineTuned is the minimal prompt for models already
// trained on TLOF pairs.
const systemPromptFineTuned = "You are a TLOF configuration generator. Generate valid JSON for TLOF specifications based on natural language descriptions."

// systemPromptBase spells out the full wire format for models that
// have not been fine-tuned on TLOF data.
const systemPromptBase = `You are a specialized TLOF (Touchdown and Lift-Off Area) configuration generator for aviation landing surfaces. Generate valid JSON configurations based on natural language descriptions.

REQUIRED JSON STRUCTURE:
{
  "TLOF": [
    {
      "position": [longitude, latitude],
      "dimensions": {
        "unit": "m",
        "aircraftCategory": false,
        "aircraft": "aircraft_type",
        "diameter": number,
        "isVisible": true,
        "layerName": "Generated_TLOF",
        "shapeType": "Rectangle|Circle|Polygon",
        "scaleCategory": false,
        "textureScaleU": 1,
        "textureScaleV": 1,
        "safetyNetScaleU": 1,
        "safetyNetScaleV": 1,
        "sides": number,
        "width": number,
        "length": number,
        "height": number,
        "rotation": number,
        "transparency": number,
        "baseHeight": number,
        "markingsCategory": boolean,
        "markingType": "solid|dashed",
        "markingColor": "white|yellow|blue|red|green|black|purple|orange|gray|brown",
        "markingThickness": number,
        "dashDistance": number,
        "dashLength": number,
        "landingMarkerCategory": boolean,
        "landingMarker": "H|V",
        "markerScale": number,
        "markerThickness": number,
        "markerRotation": number,
        "markerColor": "white|yellow|blue|red|green|black|purple|orange|gray|brown",
        "letterThickness": number,
        "tdpcCategory": boolean,
        "tdpcType": "circle|cross|square",
        "tdpcScale": number,
        "tdpcThickness": number,
        "tdpcRotation": number,
        "tdpcExtrusion": number,
        "tdpcColor": "white|yellow|blue|red|green|black|purple|orange|gray|brown",
        "lightCategory": boolean,
        "lightColor": "white|yellow|blue|red|green|black|purple|orange|gray|brown",
        "lightScale": number,
        "lightDistance": number,
        "lightRadius": number,
        "lightHeight": number,
        "safetyAreaCategory": boolean,
        "safetyAreaType": "offset|multiplier",
        "dValue": number,
        "multiplier": number,
        "offsetDistance": number,
        "safetyNetCategory": boolean,
        "curveAngle": number,
        "netHeight": number,
        "safetyNetTransparency": number,
        "safetyNetColor": "#FF0000"
      }
    }
  ]
}

EXAMPLE:
Input: "rectangular TLOF for helicopter, 30x40m, elevation 5m, blue H marker"
Output: {"TLOF":[{"position":[0,0],"dimensions":{"unit":"m","aircraftCategory":false,"aircraft":"helicopter","shapeType":"Rectangle","width":30,"length":40,"baseHeight":5,"landingMarkerCategory":true,"landingMarker":"H","markerColor":"blue"}}]}

Always respond with valid JSON only. Do not include explanations or markdown formatting.`

// Service generates TLOF configurations from descriptions.
type Service struct {
	Provider llm.Provider

	// FineTuned selects the short system prompt for models already
	// trained on TLOF pairs.
	FineTuned bool

	// Temperature and MaxTokens override the generation defaults
	// when non-zero.
	Temperature float64
	MaxTokens   int

	// Strict requests schema-enforced output from the provider.
	// Only useful with base models; fine-tuned models already emit
	// the wire format.
	Strict bool
}

// NewService creates a Service with the generation defaults.
func NewService(provider llm.Provider, fineTuned bool) *Service {
	return &Service{
		Provider:    provider,
		FineTuned:   fineTuned,
		Temperature: DefaultTemperature,
		MaxTokens:   DefaultMaxTokens,
	}
}

// Generate produces a validated configuration for one description.
// The raw completion text is returned alongside so callers can show
// or log what the model actually said.
func (s *Service) Generate(ctx context.Context, description string) (*tlof.Configuration, string, error) {
	if description == "" {
		return nil, "", fmt.Errorf("description is empty")
	}

	system := systemPromptBase
	if s.FineTuned {
		system = systemPromptFineTuned
	}

	temperature := s.Temperature
	if temperature == 0 {
		temperature = DefaultTemperature
	}
	maxTokens := s.MaxTokens
	if maxTokens == 0 {
		maxTokens = DefaultMaxTokens
	}

	req := llm.Request{
		System:      system,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: description}},
		MaxTokens:   maxTokens,
		Temperature: temperature,
	}
	if s.Strict && !s.FineTuned {
		req.Schema = ConfigurationSchema()
	}

	ctx = llm.WithPurpose(ctx, "pad-generation")
	resp, err := s.Provider.Generate(ctx, req)
	if err != nil {
		return nil, "", fmt.Errorf("generate configuration: %w", err)
	}

	text := string(resp.Content)
	cfg, err := tlof.Extract(text)
	if err != nil {
		return nil, text, err
	}
	return cfg, text, nil
}

// SaveConfiguration writes a configuration to path as indented JSON.
// An empty path picks a timestamped filename in the working directory.
func SaveConfiguration(cfg *tlof.Configuration, path string) (string, error) {
	if path == "" {
		path = fmt.Sprintf("tlof_config_%d.json", time.Now().Unix())
	}

	blob, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal configuration: %w", err)
	}
	if err := os.WriteFile(path, blob, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
