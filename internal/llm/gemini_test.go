package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"aircraft":  map[string]any{"type": "string"},
			"sides":     map[string]any{"type": "integer"},
			"shapeType": map[string]any{"enum": []any{"Rectangle", "Circle", "Polygon"}},
			"position": map[string]any{
				"type":     "array",
				"minItems": 2,
				"maxItems": 2,
				"items":    map[string]any{"type": "number"},
			},
		},
		"required": []any{"position", "shapeType"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["aircraft"].Type != "STRING" {
		t.Fatalf("expected STRING for aircraft, got %s", schema.Properties["aircraft"].Type)
	}
	if schema.Properties["sides"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for sides, got %s", schema.Properties["sides"].Type)
	}
	if schema.Properties["position"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for position, got %s", schema.Properties["position"].Type)
	}
	if schema.Properties["position"].Items.Type != "NUMBER" {
		t.Fatalf("expected NUMBER for position items, got %s", schema.Properties["position"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}

// Closed enums in the configuration schema carry no explicit type.
// genai refuses untyped members, so they must come out as strings.
func TestBuildGeminiSchema_BareEnumBecomesString(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"enum": []any{"solid", "dashed"},
	})
	if schema.Type != "STRING" {
		t.Fatalf("expected STRING for bare enum, got %s", schema.Type)
	}
	if len(schema.Enum) != 2 {
		t.Fatalf("expected 2 enum values, got %d", len(schema.Enum))
	}
}

func TestBuildGeminiSchema_PositionArityBounds(t *testing.T) {
	schema := buildGeminiSchema(map[string]any{
		"type":     "array",
		"minItems": 2,
		"maxItems": 2,
		"items":    map[string]any{"type": "number"},
	})
	if schema.MinItems == nil || *schema.MinItems != 2 {
		t.Fatalf("expected minItems 2, got %v", schema.MinItems)
	}
	if schema.MaxItems == nil || *schema.MaxItems != 2 {
		t.Fatalf("expected maxItems 2, got %v", schema.MaxItems)
	}
}
