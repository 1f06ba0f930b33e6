package dataset

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/lyneport/tlofgen/internal/tlof"
)

// ChatMessage is one turn of a training conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Example is a single training pair: a natural language description and
// the canonical configuration JSON the model should produce for it.
type Example struct {
	Messages []ChatMessage `json:"messages"`
}

// Feature enablement probabilities. Tuned so the dataset reflects how
// often real pads carry each feature.
const (
	pMarkings   = 0.8
	pMarker     = 0.9
	pLighting   = 0.6
	pTDPC       = 0.3
	pSafetyArea = 0.4
	pSafetyNet  = 0.2
)

// Generator synthesizes internally consistent (description, JSON)
// training pairs. Not safe for concurrent use; each goroutine should
// own its own Generator.
type Generator struct {
	rng *rand.Rand
}

// New creates a Generator driven by the given source. Tests pass a
// seeded source for reproducibility.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// NewSeeded creates a Generator with a deterministic seed.
func NewSeeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed)))
}

// padParams is the single source of truth for one example. Both the
// prose description and the JSON are rendered from it, which is what
// keeps the pair semantically matched.
type padParams struct {
	aircraft Aircraft
	shape    tlof.Shape
	lng, lat float64
	width    int
	length   int
	height   float64
	sides    int

	rotation     int
	transparency float64
	elevation    int

	markings   tlof.Markings
	marker     tlof.LandingMarker
	tdpc       tlof.TouchdownCircle
	lighting   tlof.Lighting
	safetyArea tlof.SafetyArea
	safetyNet  tlof.SafetyNet
}

// Example produces one training pair.
func (g *Generator) Example() (Example, error) {
	p := g.sample()

	cfg := p.configuration()
	blob, err := json.Marshal(cfg)
	if err != nil {
		return Example{}, fmt.Errorf("marshal configuration: %w", err)
	}

	return Example{
		Messages: []ChatMessage{
			{Role: "user", Content: g.describe(p)},
			{Role: "assistant", Content: string(blob)},
		},
	}, nil
}

// Dataset generates count examples, shuffles them and splits off a
// validation subset. split must be in [0, 1).
func (g *Generator) Dataset(count int, split float64) (train, val []Example, err error) {
	if count <= 0 {
		return nil, nil, fmt.Errorf("example count must be positive, got %d", count)
	}
	if split < 0 || split >= 1 {
		return nil, nil, fmt.Errorf("validation split must be in [0, 1), got %v", split)
	}

	all := make([]Example, 0, count)
	for range count {
		ex, err := g.Example()
		if err != nil {
			return nil, nil, err
		}
		all = append(all, ex)
	}

	g.rng.Shuffle(len(all), func(i, j int) {
		all[i], all[j] = all[j], all[i]
	})

	cut := int(float64(count) * (1 - split))
	return all[:cut], all[cut:], nil
}

func (g *Generator) sample() padParams {
	rng := g.rng

	p := padParams{
		aircraft: aircraftCatalog[rng.IntN(len(aircraftCatalog))],
		shape:    tlof.Shapes[rng.IntN(len(tlof.Shapes))],
	}
	p.lng, p.lat = samplePosition(rng)

	// Footprint from the aircraft's typical size range. Rectangles
	// favor length over width; circles and polygons are equilateral.
	base := g.intBetween(p.aircraft.MinSize, p.aircraft.MaxSize)
	switch p.shape {
	case tlof.ShapeRectangle:
		p.width = base
		p.length = g.intBetween(base, base+base/2)
	default:
		p.width, p.length = base, base
	}

	hmin, hmax := p.aircraft.Weight.HeightRange()
	p.height = round(g.floatBetween(hmin, hmax), 2)

	p.sides = 4
	if p.shape == tlof.ShapePolygon {
		p.sides = g.intBetween(4, 8)
	}

	p.rotation = rng.IntN(360)
	p.transparency = round(g.floatBetween(0.3, 1.0), 1)
	// Ground level is the common case; elevated pads are the exception.
	if rng.IntN(4) != 0 {
		p.elevation = 0
	} else {
		p.elevation = g.intBetween(1, 50)
	}

	if rng.Float64() < pMarkings {
		style := tlof.MarkingStyles[rng.IntN(len(tlof.MarkingStyles))]
		dashDistance, dashLength := 1.5, 1.0
		if style == tlof.MarkingDashed {
			dashDistance = round(g.floatBetween(0.5, 5), 1)
			dashLength = round(g.floatBetween(0.5, 5), 1)
		}
		p.markings = tlof.Markings{
			Enabled:      true,
			Style:        style,
			Color:        g.color(),
			Thickness:    round(g.floatBetween(0.1, 1.5), 1),
			DashDistance: dashDistance,
			DashLength:   dashLength,
		}
	}

	if rng.Float64() < pMarker {
		p.marker = tlof.LandingMarker{
			Enabled:         true,
			Glyph:           tlof.MarkerGlyphs[rng.IntN(len(tlof.MarkerGlyphs))],
			Color:           g.color(),
			Scale:           g.intBetween(1, 20),
			Thickness:       round(g.floatBetween(0.1, 1.0), 2),
			Rotation:        rng.IntN(360),
			LetterThickness: round(g.floatBetween(0.05, 0.5), 2),
		}
	}

	if rng.Float64() < pTDPC {
		p.tdpc = tlof.TouchdownCircle{
			Enabled:   true,
			Style:     tlof.TDPCStyles[rng.IntN(len(tlof.TDPCStyles))],
			Scale:     g.intBetween(1, 50),
			Thickness: round(g.floatBetween(0.1, 2.0), 1),
			Rotation:  rng.IntN(360),
			Extrusion: round(g.floatBetween(0.01, 0.1), 3),
			Color:     g.color(),
		}
	}

	if rng.Float64() < pLighting {
		p.lighting = tlof.Lighting{
			Enabled:  true,
			Color:    g.color(),
			Scale:    g.intBetween(-20, 100),
			Distance: g.intBetween(1, 50),
			Radius:   round(g.floatBetween(0.1, 1.0), 1),
			Height:   round(g.floatBetween(0.1, 0.25), 2),
		}
	}

	if rng.Float64() < pSafetyArea {
		p.safetyArea = tlof.SafetyArea{
			Enabled:        true,
			Mode:           tlof.SafetyAreaModes[rng.IntN(len(tlof.SafetyAreaModes))],
			DValue:         g.intBetween(5, 20),
			Multiplier:     round(g.floatBetween(1.0, 3.0), 1),
			OffsetDistance: g.intBetween(1, 20),
		}
	}

	if rng.Float64() < pSafetyNet {
		p.safetyNet = tlof.SafetyNet{
			Enabled:      true,
			CurveAngle:   g.intBetween(30, 90),
			NetHeight:    g.intBetween(10, 30),
			Transparency: round(g.floatBetween(0.3, 0.8), 1),
			Color:        "#FF0000",
			ScaleU:       1,
			ScaleV:       1,
		}
	}

	return p
}

// configuration renders the canonical JSON document for the params.
func (p padParams) configuration() tlof.Configuration {
	return tlof.Configuration{
		TLOF: []tlof.Pad{{
			Position: tlof.Position{p.lng, p.lat},
			Dimensions: tlof.Dimensions{
				Unit:          "m",
				Aircraft:      p.aircraft.Name,
				Diameter:      float64(p.width),
				IsVisible:     true,
				LayerName:     "Generated_TLOF_" + p.aircraft.Name,
				Shape:         p.shape,
				TextureScaleU: 1,
				TextureScaleV: 1,
				Sides:         p.sides,
				Width:         float64(p.width),
				Length:        float64(p.length),
				Height:        p.height,
				Rotation:      p.rotation,
				Transparency:  p.transparency,
				BaseHeight:    float64(p.elevation),

				Markings:   p.markings,
				Marker:     p.marker,
				TDPC:       p.tdpc,
				Lighting:   p.lighting,
				SafetyArea: p.safetyArea,
				SafetyNet:  p.safetyNet,
			},
		}},
	}
}

func (g *Generator) color() tlof.Color {
	return tlof.Colors[g.rng.IntN(len(tlof.Colors))]
}

// intBetween returns a uniform integer in [lo, hi].
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rng.IntN(hi-lo+1)
}

// floatBetween returns a uniform float in [lo, hi).
func (g *Generator) floatBetween(lo, hi float64) float64 {
	return lo + g.rng.Float64()*(hi-lo)
}
