package tlof

import "fmt"

// Shape is the outline of a landing pad surface.
type Shape string

const (
	ShapeRectangle Shape = "Rectangle"
	ShapeCircle    Shape = "Circle"
	ShapePolygon   Shape = "Polygon"
)

// Shapes lists every valid shape, in catalog order.
var Shapes = []Shape{ShapeRectangle, ShapeCircle, ShapePolygon}

func (s *Shape) UnmarshalText(b []byte) error {
	v := Shape(b)
	switch v {
	case ShapeRectangle, ShapeCircle, ShapePolygon:
		*s = v
		return nil
	}
	return fmt.Errorf("unknown shape %q", b)
}

func (s Shape) MarshalText() ([]byte, error) { return []byte(s), nil }

// Color is a named surface/marking color.
type Color string

const (
	ColorWhite  Color = "white"
	ColorYellow Color = "yellow"
	ColorBlue   Color = "blue"
	ColorRed    Color = "red"
	ColorGreen  Color = "green"
	ColorBlack  Color = "black"
	ColorPurple Color = "purple"
	ColorOrange Color = "orange"
	ColorGray   Color = "gray"
	ColorBrown  Color = "brown"
)

// Colors lists every valid color, in catalog order.
var Colors = []Color{
	ColorWhite, ColorYellow, ColorBlue, ColorRed, ColorGreen,
	ColorBlack, ColorPurple, ColorOrange, ColorGray, ColorBrown,
}

func (c *Color) UnmarshalText(b []byte) error {
	v := Color(b)
	for _, known := range Colors {
		if v == known {
			*c = v
			return nil
		}
	}
	return fmt.Errorf("unknown color %q", b)
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c), nil }

// MarkerGlyph is the letter painted at the pad center.
type MarkerGlyph string

const (
	GlyphH MarkerGlyph = "H"
	GlyphV MarkerGlyph = "V"
)

// MarkerGlyphs lists every valid glyph.
var MarkerGlyphs = []MarkerGlyph{GlyphH, GlyphV}

func (g *MarkerGlyph) UnmarshalText(b []byte) error {
	v := MarkerGlyph(b)
	switch v {
	case GlyphH, GlyphV:
		*g = v
		return nil
	}
	return fmt.Errorf("unknown landing marker %q", b)
}

func (g MarkerGlyph) MarshalText() ([]byte, error) { return []byte(g), nil }

// MarkingStyle is the perimeter marking line style.
type MarkingStyle string

const (
	MarkingSolid  MarkingStyle = "solid"
	MarkingDashed MarkingStyle = "dashed"
)

// MarkingStyles lists every valid marking style.
var MarkingStyles = []MarkingStyle{MarkingSolid, MarkingDashed}

func (m *MarkingStyle) UnmarshalText(b []byte) error {
	v := MarkingStyle(b)
	switch v {
	case MarkingSolid, MarkingDashed:
		*m = v
		return nil
	}
	return fmt.Errorf("unknown marking style %q", b)
}

func (m MarkingStyle) MarshalText() ([]byte, error) { return []byte(m), nil }

// TDPCStyle is the touchdown point marker style.
type TDPCStyle string

const (
	TDPCCircle TDPCStyle = "circle"
	TDPCCross  TDPCStyle = "cross"
	TDPCSquare TDPCStyle = "square"
)

// TDPCStyles lists every valid touchdown point marker style.
var TDPCStyles = []TDPCStyle{TDPCCircle, TDPCCross, TDPCSquare}

func (t *TDPCStyle) UnmarshalText(b []byte) error {
	v := TDPCStyle(b)
	switch v {
	case TDPCCircle, TDPCCross, TDPCSquare:
		*t = v
		return nil
	}
	return fmt.Errorf("unknown touchdown point style %q", b)
}

func (t TDPCStyle) MarshalText() ([]byte, error) { return []byte(t), nil }

// SafetyAreaMode selects how the safety area extent is derived from
// the pad dimensions.
type SafetyAreaMode string

const (
	SafetyAreaOffset     SafetyAreaMode = "offset"
	SafetyAreaMultiplier SafetyAreaMode = "multiplier"
)

// SafetyAreaModes lists every valid safety area mode.
var SafetyAreaModes = []SafetyAreaMode{SafetyAreaOffset, SafetyAreaMultiplier}

func (m *SafetyAreaMode) UnmarshalText(b []byte) error {
	v := SafetyAreaMode(b)
	switch v {
	case SafetyAreaOffset, SafetyAreaMultiplier:
		*m = v
		return nil
	}
	return fmt.Errorf("unknown safety area mode %q", b)
}

func (m SafetyAreaMode) MarshalText() ([]byte, error) { return []byte(m), nil }
