package tlof

import (
	"encoding/json"
	"fmt"
)

// Configuration is a complete landing pad configuration document.
// The wire format is the flat JSON shape consumed by the scene builder:
// a top-level "TLOF" list of pads, each with a position and a flat
// dimensions object.
type Configuration struct {
	TLOF []Pad `json:"TLOF"`
}

// Pad is a single landing pad: where it is and what it looks like.
type Pad struct {
	Position   Position   `json:"position"`
	Dimensions Dimensions `json:"dimensions"`
}

// Position is a longitude/latitude pair. Decoding enforces exactly
// two numeric coordinates.
type Position [2]float64

func (p *Position) UnmarshalJSON(b []byte) error {
	var raw []float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("position: %w", err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("position: want 2 coordinates, got %d", len(raw))
	}
	p[0], p[1] = raw[0], raw[1]
	return nil
}

// Dimensions holds the geometry and feature blocks of one pad.
// It serializes to the flat dimensions object (all keys always
// present; disabled feature blocks carry their defaults).
type Dimensions struct {
	Unit             string
	Aircraft         string
	AircraftCategory bool
	Diameter         float64
	IsVisible        bool
	LayerName        string
	Shape            Shape
	ScaleCategory    bool
	TextureScaleU    float64
	TextureScaleV    float64
	Sides            int
	Width            float64
	Length           float64
	Height           float64
	Rotation         int
	Transparency     float64
	BaseHeight       float64

	Markings   Markings
	Marker     LandingMarker
	TDPC       TouchdownCircle
	Lighting   Lighting
	SafetyArea SafetyArea
	SafetyNet  SafetyNet
}

// dimensionsWire is the flat on-the-wire shape of Dimensions.
type dimensionsWire struct {
	Unit             string  `json:"unit"`
	AircraftCategory bool    `json:"aircraftCategory"`
	Aircraft         string  `json:"aircraft"`
	Diameter         float64 `json:"diameter"`
	IsVisible        bool    `json:"isVisible"`
	LayerName        string  `json:"layerName"`
	ShapeType        Shape   `json:"shapeType"`
	ScaleCategory    bool    `json:"scaleCategory"`
	TextureScaleU    float64 `json:"textureScaleU"`
	TextureScaleV    float64 `json:"textureScaleV"`
	SafetyNetScaleU  float64 `json:"safetyNetScaleU"`
	SafetyNetScaleV  float64 `json:"safetyNetScaleV"`
	Sides            int     `json:"sides"`
	Width            float64 `json:"width"`
	Length           float64 `json:"length"`
	Height           float64 `json:"height"`
	Rotation         int     `json:"rotation"`
	Transparency     float64 `json:"transparency"`
	BaseHeight       float64 `json:"baseHeight"`

	MarkingsCategory bool         `json:"markingsCategory"`
	MarkingType      MarkingStyle `json:"markingType"`
	MarkingColor     Color        `json:"markingColor"`
	MarkingThickness float64      `json:"markingThickness"`
	DashDistance     float64      `json:"dashDistance"`
	DashLength       float64      `json:"dashLength"`

	LandingMarkerCategory bool        `json:"landingMarkerCategory"`
	LandingMarker         MarkerGlyph `json:"landingMarker"`
	MarkerScale           int         `json:"markerScale"`
	MarkerThickness       float64     `json:"markerThickness"`
	MarkerRotation        int         `json:"markerRotation"`
	MarkerColor           Color       `json:"markerColor"`
	LetterThickness       float64     `json:"letterThickness"`

	TDPCCategory  bool      `json:"tdpcCategory"`
	TDPCType      TDPCStyle `json:"tdpcType"`
	TDPCScale     int       `json:"tdpcScale"`
	TDPCThickness float64   `json:"tdpcThickness"`
	TDPCRotation  int       `json:"tdpcRotation"`
	TDPCExtrusion float64   `json:"tdpcExtrusion"`
	TDPCColor     Color     `json:"tdpcColor"`

	LightCategory bool    `json:"lightCategory"`
	LightColor    Color   `json:"lightColor"`
	LightScale    int     `json:"lightScale"`
	LightDistance int     `json:"lightDistance"`
	LightRadius   float64 `json:"lightRadius"`
	LightHeight   float64 `json:"lightHeight"`

	SafetyAreaCategory bool           `json:"safetyAreaCategory"`
	SafetyAreaType     SafetyAreaMode `json:"safetyAreaType"`
	DValue             int            `json:"dValue"`
	Multiplier         float64        `json:"multiplier"`
	OffsetDistance     int            `json:"offsetDistance"`

	SafetyNetCategory     bool    `json:"safetyNetCategory"`
	CurveAngle            int     `json:"curveAngle"`
	NetHeight             int     `json:"netHeight"`
	SafetyNetTransparency float64 `json:"safetyNetTransparency"`
	SafetyNetColor        string  `json:"safetyNetColor"`
}

func (d Dimensions) MarshalJSON() ([]byte, error) {
	mk := d.Markings.wire()
	lm := d.Marker.wire()
	td := d.TDPC.wire()
	lt := d.Lighting.wire()
	sa := d.SafetyArea.wire()
	sn := d.SafetyNet.wire()

	w := dimensionsWire{
		Unit:             d.Unit,
		AircraftCategory: d.AircraftCategory,
		Aircraft:         d.Aircraft,
		Diameter:         d.Diameter,
		IsVisible:        d.IsVisible,
		LayerName:        d.LayerName,
		ShapeType:        d.Shape,
		ScaleCategory:    d.ScaleCategory,
		TextureScaleU:    d.TextureScaleU,
		TextureScaleV:    d.TextureScaleV,
		SafetyNetScaleU:  sn.ScaleU,
		SafetyNetScaleV:  sn.ScaleV,
		Sides:            d.Sides,
		Width:            d.Width,
		Length:           d.Length,
		Height:           d.Height,
		Rotation:         d.Rotation,
		Transparency:     d.Transparency,
		BaseHeight:       d.BaseHeight,

		MarkingsCategory: mk.Enabled,
		MarkingType:      mk.Style,
		MarkingColor:     mk.Color,
		MarkingThickness: mk.Thickness,
		DashDistance:     mk.DashDistance,
		DashLength:       mk.DashLength,

		LandingMarkerCategory: lm.Enabled,
		LandingMarker:         lm.Glyph,
		MarkerScale:           lm.Scale,
		MarkerThickness:       lm.Thickness,
		MarkerRotation:        lm.Rotation,
		MarkerColor:           lm.Color,
		LetterThickness:       lm.LetterThickness,

		TDPCCategory:  td.Enabled,
		TDPCType:      td.Style,
		TDPCScale:     td.Scale,
		TDPCThickness: td.Thickness,
		TDPCRotation:  td.Rotation,
		TDPCExtrusion: td.Extrusion,
		TDPCColor:     td.Color,

		LightCategory: lt.Enabled,
		LightColor:    lt.Color,
		LightScale:    lt.Scale,
		LightDistance: lt.Distance,
		LightRadius:   lt.Radius,
		LightHeight:   lt.Height,

		SafetyAreaCategory: sa.Enabled,
		SafetyAreaType:     sa.Mode,
		DValue:             sa.DValue,
		Multiplier:         sa.Multiplier,
		OffsetDistance:     sa.OffsetDistance,

		SafetyNetCategory:     sn.Enabled,
		CurveAngle:            sn.CurveAngle,
		NetHeight:             sn.NetHeight,
		SafetyNetTransparency: sn.Transparency,
		SafetyNetColor:        sn.Color,
	}
	return json.Marshal(w)
}

func (d *Dimensions) UnmarshalJSON(b []byte) error {
	var w dimensionsWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}

	*d = Dimensions{
		Unit:             w.Unit,
		Aircraft:         w.Aircraft,
		AircraftCategory: w.AircraftCategory,
		Diameter:         w.Diameter,
		IsVisible:        w.IsVisible,
		LayerName:        w.LayerName,
		Shape:            w.ShapeType,
		ScaleCategory:    w.ScaleCategory,
		TextureScaleU:    w.TextureScaleU,
		TextureScaleV:    w.TextureScaleV,
		Sides:            w.Sides,
		Width:            w.Width,
		Length:           w.Length,
		Height:           w.Height,
		Rotation:         w.Rotation,
		Transparency:     w.Transparency,
		BaseHeight:       w.BaseHeight,

		Markings: Markings{
			Enabled:      w.MarkingsCategory,
			Style:        w.MarkingType,
			Color:        w.MarkingColor,
			Thickness:    w.MarkingThickness,
			DashDistance: w.DashDistance,
			DashLength:   w.DashLength,
		},
		Marker: LandingMarker{
			Enabled:         w.LandingMarkerCategory,
			Glyph:           w.LandingMarker,
			Color:           w.MarkerColor,
			Scale:           w.MarkerScale,
			Thickness:       w.MarkerThickness,
			Rotation:        w.MarkerRotation,
			LetterThickness: w.LetterThickness,
		},
		TDPC: TouchdownCircle{
			Enabled:   w.TDPCCategory,
			Style:     w.TDPCType,
			Scale:     w.TDPCScale,
			Thickness: w.TDPCThickness,
			Rotation:  w.TDPCRotation,
			Extrusion: w.TDPCExtrusion,
			Color:     w.TDPCColor,
		},
		Lighting: Lighting{
			Enabled:  w.LightCategory,
			Color:    w.LightColor,
			Scale:    w.LightScale,
			Distance: w.LightDistance,
			Radius:   w.LightRadius,
			Height:   w.LightHeight,
		},
		SafetyArea: SafetyArea{
			Enabled:        w.SafetyAreaCategory,
			Mode:           w.SafetyAreaType,
			DValue:         w.DValue,
			Multiplier:     w.Multiplier,
			OffsetDistance: w.OffsetDistance,
		},
		SafetyNet: SafetyNet{
			Enabled:      w.SafetyNetCategory,
			CurveAngle:   w.CurveAngle,
			NetHeight:    w.NetHeight,
			Transparency: w.SafetyNetTransparency,
			Color:        w.SafetyNetColor,
			ScaleU:       w.SafetyNetScaleU,
			ScaleV:       w.SafetyNetScaleV,
		},
	}
	return nil
}
