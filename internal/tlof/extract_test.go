package tlof

import (
	"encoding/json"
	"errors"
	"testing"
)

const pureJSON = `{"TLOF":[{"position":[139.6917,35.6895],"dimensions":{"unit":"m","shapeType":"Circle","width":20,"length":20}}]}`

func TestExtract_PureJSON(t *testing.T) {
	cfg, err := Extract(pureJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.TLOF) != 1 {
		t.Fatalf("expected 1 pad, got %d", len(cfg.TLOF))
	}
	if cfg.TLOF[0].Dimensions.Shape != ShapeCircle {
		t.Fatalf("expected Circle, got %q", cfg.TLOF[0].Dimensions.Shape)
	}
}

func TestExtract_Idempotent(t *testing.T) {
	first, err := Extract(pureJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Extract(pureJSON)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	if string(a) != string(b) {
		t.Fatalf("extraction not idempotent:\n%s\n%s", a, b)
	}
}

func TestExtract_FencedJSON(t *testing.T) {
	text := "```json\n{\"TLOF\":[{\"position\":[0,0],\"dimensions\":{}}]}\n```"

	cfg, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := cfg.TLOF[0].Position; got != (Position{0, 0}) {
		t.Fatalf("expected position [0 0], got %v", got)
	}
}

func TestExtract_UntaggedFence(t *testing.T) {
	text := "Here is your configuration:\n```\n" + pureJSON + "\n```\nLet me know if you need changes."

	cfg, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.TLOF) != 1 {
		t.Fatalf("expected 1 pad, got %d", len(cfg.TLOF))
	}
}

func TestExtract_EmbeddedInProse(t *testing.T) {
	text := "Sure! The pad you asked for: " + pureJSON + " — generated as requested."

	cfg, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TLOF[0].Dimensions.Width != 20 {
		t.Fatalf("expected width 20, got %v", cfg.TLOF[0].Dimensions.Width)
	}
}

func TestExtract_NoJSON(t *testing.T) {
	_, err := Extract("I cannot help with that.")
	if !errors.Is(err, ErrNoConfiguration) {
		t.Fatalf("expected ErrNoConfiguration, got %v", err)
	}
}

func TestExtract_EmptyList(t *testing.T) {
	_, err := Extract(`{"TLOF": []}`)
	if !errors.Is(err, ErrNoConfiguration) {
		t.Fatalf("expected ErrNoConfiguration, got %v", err)
	}
}

func TestExtract_MissingDimensions(t *testing.T) {
	_, err := Extract(`{"TLOF":[{"position":[1,2]}]}`)
	if !errors.Is(err, ErrNoConfiguration) {
		t.Fatalf("expected ErrNoConfiguration, got %v", err)
	}
}

func TestExtract_BadPositionArity(t *testing.T) {
	for _, pos := range []string{"[1]", "[1,2,3]", `["a","b"]`} {
		_, err := Extract(`{"TLOF":[{"position":` + pos + `,"dimensions":{}}]}`)
		if err == nil {
			t.Fatalf("position %s: expected error", pos)
		}
	}
}

func TestExtract_UnknownEnumRejected(t *testing.T) {
	text := `{"TLOF":[{"position":[0,0],"dimensions":{"shapeType":"Hexagon"}}]}`
	_, err := Extract(text)
	if !errors.Is(err, ErrNoConfiguration) {
		t.Fatalf("expected ErrNoConfiguration for unknown shape value, got %v", err)
	}
}
