package infer

import (
	"github.com/lyneport/tlofgen/internal/llm"
	"github.com/lyneport/tlofgen/internal/tlof"
)

// enumOf renders a closed enum's values in JSON Schema form.
func enumOf[T ~string](values []T) map[string]any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return map[string]any{"enum": out}
}

// ConfigurationSchema is the structured-output schema for TLOF
// configurations. Base models can be pointed at it to force valid JSON
// at the transport level instead of relying on prompt discipline.
// Enum values come from the tlof types, so anything the schema admits
// also decodes.
func ConfigurationSchema() *llm.Schema {
	colors := enumOf(tlof.Colors)
	return &llm.Schema{
		Name:        "tlof-configuration",
		Description: "A TLOF landing surface configuration with one or more pads.",
		Definition: map[string]any{
			"type":     "object",
			"required": []any{"TLOF"},
			"properties": map[string]any{
				"TLOF": map[string]any{
					"type":     "array",
					"minItems": 1,
					"items": map[string]any{
						"type":     "object",
						"required": []any{"position", "dimensions"},
						"properties": map[string]any{
							"position": map[string]any{
								"type":     "array",
								"minItems": 2,
								"maxItems": 2,
								"items":    map[string]any{"type": "number"},
							},
							"dimensions": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"unit":           map[string]any{"type": "string"},
									"aircraft":       map[string]any{"type": "string"},
									"shapeType":      enumOf(tlof.Shapes),
									"sides":          map[string]any{"type": "integer"},
									"width":          map[string]any{"type": "number"},
									"length":         map[string]any{"type": "number"},
									"height":         map[string]any{"type": "number"},
									"rotation":       map[string]any{"type": "number"},
									"transparency":   map[string]any{"type": "number"},
									"baseHeight":     map[string]any{"type": "number"},
									"markingType":    enumOf(tlof.MarkingStyles),
									"markingColor":   colors,
									"landingMarker":  enumOf(tlof.MarkerGlyphs),
									"markerColor":    colors,
									"tdpcType":       enumOf(tlof.TDPCStyles),
									"tdpcColor":      colors,
									"lightColor":     colors,
									"safetyAreaType": enumOf(tlof.SafetyAreaModes),
								},
							},
						},
					},
				},
			},
		},
	}
}
