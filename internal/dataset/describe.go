package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lyneport/tlofgen/internal/tlof"
)

// Phrasing templates. Each call picks one variant per populated
// attribute so the dataset does not teach the model a single fixed
// sentence shape.

var openingTemplates = []string{
	"Create a %s TLOF for %s",
	"Generate a %s landing pad for %s",
	"Design a %s touchdown area for %s",
	"Build a %s TLOF suitable for %s",
	"I need a %s landing surface for %s",
}

var rectangleDimTemplates = []string{
	"with dimensions %dm x %dm",
	"measuring %dm by %dm",
	"sized %dm x %dm",
	"with %dm width and %dm length",
}

var circleDimTemplates = []string{
	"with %dm diameter",
	"with a diameter of %dm",
	"measuring %dm across",
}

var elevationTemplates = []string{
	"at %dm elevation",
	"elevated %dm above ground",
	"with base height of %dm",
	"%dm above sea level",
}

var rotationTemplates = []string{
	"rotated %d degrees",
	"with %d degree rotation",
	"oriented at %d degrees",
}

var transparencyTemplates = []string{
	"with %s transparency",
	"at %s opacity",
	"%s transparent",
}

var markerTemplates = []string{
	"Add a '%s' landing marker in %s",
	"Include a %s '%s' marker",
	"Place a %s '%s' symbol",
	"With a %s '%s' landing indicator",
}

var markingTemplates = []string{
	"with %s markings in %s",
	"featuring %s %s boundary lines",
	"including %s %s perimeter markings",
}

var lightingTemplates = []string{
	"with %s perimeter lighting",
	"including %s LED lights around the edge",
	"equipped with %s boundary lights",
}

// describe renders the natural language request for the params. Every
// value mentioned in the prose comes straight from p, so the pair
// stays consistent with the JSON rendered from the same params.
func (g *Generator) describe(p padParams) string {
	rng := g.rng
	pick := func(templates []string) string {
		return templates[rng.IntN(len(templates))]
	}

	aircraftName := strings.ReplaceAll(p.aircraft.Name, "_", " ")
	parts := []string{
		fmt.Sprintf(pick(openingTemplates), strings.ToLower(string(p.shape)), aircraftName),
	}

	switch p.shape {
	case tlof.ShapeRectangle:
		parts = append(parts, fmt.Sprintf(pick(rectangleDimTemplates), p.width, p.length))
	case tlof.ShapeCircle:
		parts = append(parts, fmt.Sprintf(pick(circleDimTemplates), p.width))
	default:
		parts = append(parts, fmt.Sprintf("with %d sides and %dm width", p.sides, p.width))
	}

	if p.elevation > 0 {
		parts = append(parts, fmt.Sprintf(pick(elevationTemplates), p.elevation))
	}
	if p.rotation > 0 {
		parts = append(parts, fmt.Sprintf(pick(rotationTemplates), p.rotation))
	}
	if p.transparency < 1.0 {
		parts = append(parts, fmt.Sprintf(pick(transparencyTemplates), formatFloat(p.transparency)))
	}

	parts = append(parts, fmt.Sprintf("Location coordinates: [%s, %s]",
		formatFloat(p.lng), formatFloat(p.lat)))

	if p.marker.Enabled {
		tpl := pick(markerTemplates)
		var desc string
		if strings.HasPrefix(tpl, "Add") {
			desc = fmt.Sprintf(tpl, p.marker.Glyph, p.marker.Color)
		} else {
			desc = fmt.Sprintf(tpl, p.marker.Color, p.marker.Glyph)
		}
		if p.marker.Scale != 5 {
			desc += fmt.Sprintf(" scaled to %d", p.marker.Scale)
		}
		if p.marker.Rotation > 0 {
			desc += fmt.Sprintf(" rotated %d degrees", p.marker.Rotation)
		}
		parts = append(parts, desc)
	}

	if p.markings.Enabled {
		parts = append(parts, fmt.Sprintf(pick(markingTemplates), p.markings.Style, p.markings.Color))
	}

	if p.lighting.Enabled {
		parts = append(parts, fmt.Sprintf(pick(lightingTemplates), p.lighting.Color))
	}

	if p.safetyArea.Enabled {
		parts = append(parts, "with safety area included")
	}
	if p.safetyNet.Enabled {
		parts = append(parts, "including safety netting")
	}

	return g.join(parts) + "."
}

// join glues description parts with varied connectors; the final part
// of a longer description reads "..., and <part>".
func (g *Generator) join(parts []string) string {
	connectors := []string{", ", ". "}

	var b strings.Builder
	b.WriteString(parts[0])
	for i, part := range parts[1:] {
		last := i == len(parts)-2
		if last && len(parts) > 2 {
			b.WriteString(", and ")
		} else {
			b.WriteString(connectors[g.rng.IntN(len(connectors))])
		}
		b.WriteString(part)
	}
	return b.String()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
