package tlof

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
)

// ErrNoConfiguration is returned by Extract when no structurally valid
// configuration can be recovered from the response text.
var ErrNoConfiguration = errors.New("no TLOF configuration found in response")

// Hosted models return JSON wrapped in prose or markdown fences often
// enough that a single json.Unmarshal is not good enough. The patterns
// mirror the fallbacks the inference notebook settled on: widest brace
// span first, then tagged and untagged code fences.
var extractPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)\{.*\}`),
	regexp.MustCompile("(?s)```json\\s*(\\{.*\\})\\s*```"),
	regexp.MustCompile("(?s)```\\s*(\\{.*\\})\\s*```"),
}

// Extract recovers a Configuration from a raw model completion. The
// text may be pure JSON, JSON inside a fenced code block, or JSON
// embedded in prose. Attempts run in a fixed order and the first
// candidate that parses and passes the structural check wins.
// On failure the error wraps ErrNoConfiguration; Extract never panics
// on malformed input.
func Extract(text string) (*Configuration, error) {
	if cfg, err := decodeCandidate([]byte(text)); err == nil {
		return cfg, nil
	}

	for _, pat := range extractPatterns {
		for _, m := range pat.FindAllStringSubmatch(text, -1) {
			candidate := m[len(m)-1]
			if cfg, err := decodeCandidate([]byte(candidate)); err == nil {
				return cfg, nil
			}
		}
	}

	return nil, ErrNoConfiguration
}

// decodeCandidate parses one candidate span and applies the structural
// acceptance check before the full typed decode.
func decodeCandidate(raw []byte) (*Configuration, error) {
	if err := checkStructure(raw); err != nil {
		return nil, err
	}

	var cfg Configuration
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// checkStructure verifies the minimal shape downstream consumers rely
// on: a non-empty TLOF list whose first pad has a two-coordinate
// position and a dimensions object. Later pads and individual
// dimension fields are not checked here.
func checkStructure(raw []byte) error {
	var doc struct {
		TLOF []struct {
			Position   json.RawMessage `json:"position"`
			Dimensions json.RawMessage `json:"dimensions"`
		} `json:"TLOF"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return err
	}
	if len(doc.TLOF) == 0 {
		return fmt.Errorf("%w: TLOF list missing or empty", ErrNoConfiguration)
	}

	first := doc.TLOF[0]
	if first.Position == nil {
		return fmt.Errorf("%w: first pad has no position", ErrNoConfiguration)
	}
	var pos []float64
	if err := json.Unmarshal(first.Position, &pos); err != nil || len(pos) != 2 {
		return fmt.Errorf("%w: position must be two numeric coordinates", ErrNoConfiguration)
	}

	if first.Dimensions == nil {
		return fmt.Errorf("%w: first pad has no dimensions", ErrNoConfiguration)
	}
	var dims map[string]json.RawMessage
	if err := json.Unmarshal(first.Dimensions, &dims); err != nil {
		return fmt.Errorf("%w: dimensions is not an object", ErrNoConfiguration)
	}

	return nil
}
