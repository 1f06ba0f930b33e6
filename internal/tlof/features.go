package tlof

// Feature blocks are enabled/disabled variants. A disabled block still
// serializes its full parameter set so the wire shape stays uniform;
// the wire() methods substitute the documented defaults so callers
// never have to fill parameters they mean to ignore.

// Markings describes the pad perimeter markings.
type Markings struct {
	Enabled      bool
	Style        MarkingStyle
	Color        Color
	Thickness    float64
	DashDistance float64
	DashLength   float64
}

func disabledMarkings() Markings {
	return Markings{
		Style:        MarkingDashed,
		Color:        ColorWhite,
		Thickness:    0.5,
		DashDistance: 1.5,
		DashLength:   1.0,
	}
}

func (m Markings) wire() Markings {
	if m.Enabled {
		return m
	}
	return disabledMarkings()
}

// LandingMarker describes the painted center glyph.
type LandingMarker struct {
	Enabled         bool
	Glyph           MarkerGlyph
	Color           Color
	Scale           int
	Thickness       float64
	Rotation        int
	LetterThickness float64
}

func disabledLandingMarker() LandingMarker {
	return LandingMarker{
		Glyph:           GlyphH,
		Color:           ColorWhite,
		Scale:           5,
		Thickness:       0.5,
		Rotation:        0,
		LetterThickness: 0.25,
	}
}

func (l LandingMarker) wire() LandingMarker {
	if l.Enabled {
		return l
	}
	return disabledLandingMarker()
}

// TouchdownCircle describes the touchdown point marker (TDPC).
type TouchdownCircle struct {
	Enabled   bool
	Style     TDPCStyle
	Scale     int
	Thickness float64
	Rotation  int
	Extrusion float64
	Color     Color
}

func disabledTouchdownCircle() TouchdownCircle {
	return TouchdownCircle{
		Style:     TDPCCircle,
		Scale:     5,
		Thickness: 0.5,
		Rotation:  0,
		Extrusion: 0.05,
		Color:     ColorWhite,
	}
}

func (t TouchdownCircle) wire() TouchdownCircle {
	if t.Enabled {
		return t
	}
	return disabledTouchdownCircle()
}

// Lighting describes the perimeter lights.
type Lighting struct {
	Enabled  bool
	Color    Color
	Scale    int
	Distance int
	Radius   float64
	Height   float64
}

func disabledLighting() Lighting {
	return Lighting{
		Color:    ColorWhite,
		Scale:    1,
		Distance: 1,
		Radius:   0.5,
		Height:   0.15,
	}
}

func (l Lighting) wire() Lighting {
	if l.Enabled {
		return l
	}
	return disabledLighting()
}

// SafetyArea describes the cleared area surrounding the pad.
type SafetyArea struct {
	Enabled        bool
	Mode           SafetyAreaMode
	DValue         int
	Multiplier     float64
	OffsetDistance int
}

func disabledSafetyArea() SafetyArea {
	return SafetyArea{
		Mode:           SafetyAreaOffset,
		DValue:         10,
		Multiplier:     1.5,
		OffsetDistance: 3,
	}
}

func (s SafetyArea) wire() SafetyArea {
	if s.Enabled {
		return s
	}
	return disabledSafetyArea()
}

// SafetyNet describes the perimeter safety netting.
type SafetyNet struct {
	Enabled      bool
	CurveAngle   int
	NetHeight    int
	Transparency float64
	Color        string // hex color, e.g. "#FF0000"
	ScaleU       float64
	ScaleV       float64
}

func disabledSafetyNet() SafetyNet {
	return SafetyNet{
		CurveAngle:   45,
		NetHeight:    15,
		Transparency: 0.5,
		Color:        "#FF0000",
		ScaleU:       1,
		ScaleV:       1,
	}
}

func (s SafetyNet) wire() SafetyNet {
	if s.Enabled {
		return s
	}
	return disabledSafetyNet()
}
