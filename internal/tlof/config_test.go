package tlof

import (
	"encoding/json"
	"testing"
)

func sampleDimensions() Dimensions {
	return Dimensions{
		Unit:          "m",
		Aircraft:      "helicopter",
		Diameter:      20,
		IsVisible:     true,
		LayerName:     "Generated_TLOF_helicopter",
		Shape:         ShapeRectangle,
		TextureScaleU: 1,
		TextureScaleV: 1,
		Sides:         4,
		Width:         20,
		Length:        28,
		Height:        2.5,
		Rotation:      45,
		Transparency:  0.8,
		BaseHeight:    10,
		Markings: Markings{
			Enabled:      true,
			Style:        MarkingSolid,
			Color:        ColorYellow,
			Thickness:    0.8,
			DashDistance: 1.5,
			DashLength:   1.0,
		},
		Marker: LandingMarker{
			Enabled:         true,
			Glyph:           GlyphH,
			Color:           ColorBlue,
			Scale:           7,
			Thickness:       0.4,
			Rotation:        90,
			LetterThickness: 0.2,
		},
	}
}

func TestDimensions_RoundTrip(t *testing.T) {
	orig := sampleDimensions()

	b, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got Dimensions
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if got.Shape != ShapeRectangle {
		t.Errorf("shape: got %q", got.Shape)
	}
	if got.Markings != orig.Markings {
		t.Errorf("markings: got %+v, want %+v", got.Markings, orig.Markings)
	}
	if got.Marker != orig.Marker {
		t.Errorf("marker: got %+v, want %+v", got.Marker, orig.Marker)
	}
	if got.Width != 20 || got.Length != 28 {
		t.Errorf("size: got %vx%v", got.Width, got.Length)
	}
}

func TestDimensions_DisabledFeaturesSerializeDefaults(t *testing.T) {
	// Feature params left zero; the wire form must still carry the
	// documented defaults so every key is present.
	d := sampleDimensions()
	d.Markings = Markings{}
	d.Lighting = Lighting{}
	d.SafetyNet = SafetyNet{}

	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(b, &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}

	checks := map[string]any{
		"markingsCategory":      false,
		"markingType":           "dashed",
		"markingColor":          "white",
		"markingThickness":      0.5,
		"lightCategory":         false,
		"lightColor":            "white",
		"lightScale":            float64(1),
		"safetyNetCategory":     false,
		"curveAngle":            float64(45),
		"netHeight":             float64(15),
		"safetyNetColor":        "#FF0000",
		"safetyNetScaleU":       float64(1),
		"safetyNetScaleV":       float64(1),
		"safetyNetTransparency": 0.5,
	}
	for key, want := range checks {
		got, ok := flat[key]
		if !ok {
			t.Errorf("key %q missing from wire form", key)
			continue
		}
		if got != want {
			t.Errorf("key %q: got %v, want %v", key, got, want)
		}
	}
}

func TestDimensions_AllWireKeysPresent(t *testing.T) {
	b, err := json.Marshal(Dimensions{})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var flat map[string]any
	if err := json.Unmarshal(b, &flat); err != nil {
		t.Fatalf("unmarshal flat: %v", err)
	}

	required := []string{
		"unit", "aircraftCategory", "aircraft", "diameter", "isVisible",
		"layerName", "shapeType", "scaleCategory", "textureScaleU",
		"textureScaleV", "safetyNetScaleU", "safetyNetScaleV", "sides",
		"width", "length", "height", "rotation", "transparency",
		"baseHeight", "markingsCategory", "markingType", "markingColor",
		"markingThickness", "dashDistance", "dashLength",
		"landingMarkerCategory", "landingMarker", "markerScale",
		"markerThickness", "markerRotation", "markerColor",
		"letterThickness", "tdpcCategory", "tdpcType", "tdpcScale",
		"tdpcThickness", "tdpcRotation", "tdpcExtrusion", "tdpcColor",
		"lightCategory", "lightColor", "lightScale", "lightDistance",
		"lightRadius", "lightHeight", "safetyAreaCategory",
		"safetyAreaType", "dValue", "multiplier", "offsetDistance",
		"safetyNetCategory", "curveAngle", "netHeight",
		"safetyNetTransparency", "safetyNetColor",
	}
	for _, key := range required {
		if _, ok := flat[key]; !ok {
			t.Errorf("key %q missing from wire form", key)
		}
	}
}

func TestPosition_RejectsWrongArity(t *testing.T) {
	var p Position
	if err := json.Unmarshal([]byte(`[1.0,2.0]`), &p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := json.Unmarshal([]byte(`[1.0]`), &p); err == nil {
		t.Fatal("expected error for 1 coordinate")
	}
	if err := json.Unmarshal([]byte(`[1.0,2.0,3.0]`), &p); err == nil {
		t.Fatal("expected error for 3 coordinates")
	}
}

func TestEnums_UnknownValues(t *testing.T) {
	cases := []struct {
		name string
		blob string
	}{
		{"shape", `{"shapeType":"Triangle"}`},
		{"color", `{"markingColor":"magenta"}`},
		{"glyph", `{"landingMarker":"X"}`},
		{"marking style", `{"markingType":"dotted"}`},
		{"tdpc style", `{"tdpcType":"star"}`},
		{"safety area mode", `{"safetyAreaType":"scaled"}`},
	}
	for _, tc := range cases {
		var d Dimensions
		if err := json.Unmarshal([]byte(tc.blob), &d); err == nil {
			t.Errorf("%s: expected unknown-value error for %s", tc.name, tc.blob)
		}
	}
}

func TestEnums_CanonicalValuesAccepted(t *testing.T) {
	blob := `{"shapeType":"Polygon","markingType":"solid","markingColor":"brown",` +
		`"landingMarker":"V","tdpcType":"cross","safetyAreaType":"multiplier"}`

	var d Dimensions
	if err := json.Unmarshal([]byte(blob), &d); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Shape != ShapePolygon || d.Marker.Glyph != GlyphV || d.TDPC.Style != TDPCCross {
		t.Fatalf("decoded values wrong: %+v", d)
	}
}
