package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lyneport/tlofgen/internal/tlof"
)

func TestExample_ProducesValidConfiguration(t *testing.T) {
	g := NewSeeded(1)

	for i := 0; i < 200; i++ {
		ex, err := g.Example()
		require.NoError(t, err)
		require.Len(t, ex.Messages, 2)
		require.Equal(t, "user", ex.Messages[0].Role)
		require.Equal(t, "assistant", ex.Messages[1].Role)
		require.NotEmpty(t, ex.Messages[0].Content)

		var cfg tlof.Configuration
		require.NoError(t, json.Unmarshal([]byte(ex.Messages[1].Content), &cfg),
			"assistant content must parse as a configuration")
		require.Len(t, cfg.TLOF, 1, "exactly one pad per example")
	}
}

func TestExample_GeometryInvariants(t *testing.T) {
	g := NewSeeded(2)

	for i := 0; i < 300; i++ {
		ex, err := g.Example()
		require.NoError(t, err)

		var cfg tlof.Configuration
		require.NoError(t, json.Unmarshal([]byte(ex.Messages[1].Content), &cfg))
		d := cfg.TLOF[0].Dimensions

		switch d.Shape {
		case tlof.ShapeRectangle:
			require.GreaterOrEqual(t, d.Length, d.Width, "rectangle length >= width")
		default:
			require.Equal(t, d.Width, d.Length, "%s width == length", d.Shape)
		}

		var wc WeightClass
		for _, a := range aircraftCatalog {
			if a.Name == d.Aircraft {
				wc = a.Weight
			}
		}
		require.NotEmpty(t, wc, "aircraft %q not in catalog", d.Aircraft)

		hmin, hmax := wc.HeightRange()
		require.GreaterOrEqual(t, d.Height, hmin, "height below %s range", wc)
		require.LessOrEqual(t, d.Height, hmax, "height above %s range", wc)
	}
}

func TestExample_DescriptionMatchesJSON(t *testing.T) {
	g := NewSeeded(3)

	for i := 0; i < 100; i++ {
		ex, err := g.Example()
		require.NoError(t, err)

		var cfg tlof.Configuration
		require.NoError(t, json.Unmarshal([]byte(ex.Messages[1].Content), &cfg))
		d := cfg.TLOF[0].Dimensions
		desc := ex.Messages[0].Content

		require.Contains(t, desc, strings.ToLower(string(d.Shape)))
		require.Contains(t, desc, fmt.Sprintf("%dm", int(d.Width)))
		if d.Marker.Enabled {
			require.Contains(t, desc, fmt.Sprintf("'%s'", d.Marker.Glyph))
			require.Contains(t, desc, string(d.Marker.Color))
		}
		if d.Lighting.Enabled {
			require.Contains(t, desc, string(d.Lighting.Color))
		}
		if d.SafetyNet.Enabled {
			require.Contains(t, desc, "safety netting")
		}
	}
}

func TestDataset_Split(t *testing.T) {
	g := NewSeeded(4)

	train, val, err := g.Dataset(100, 0.2)
	require.NoError(t, err)
	require.Len(t, train, 80)
	require.Len(t, val, 20)

	_, _, err = g.Dataset(10, 1.0)
	require.Error(t, err, "split of 1.0 leaves no training data")
	_, _, err = g.Dataset(0, 0.2)
	require.Error(t, err)
}

func TestWriteAndCheck_RoundTrip(t *testing.T) {
	g := NewSeeded(5)

	train, _, err := g.Dataset(50, 0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "train.jsonl")
	require.NoError(t, WriteJSONL(path, train))

	report, err := CheckFile(path)
	require.NoError(t, err)
	require.Equal(t, 50, report.Total)
	require.Equal(t, 50, report.Valid)
	require.Empty(t, report.Issues)
	require.InDelta(t, 100.0, report.SuccessRate(), 0.001)
}

func TestCheckFile_FlagsBadLines(t *testing.T) {
	g := NewSeeded(6)
	ex, err := g.Example()
	require.NoError(t, err)
	good, err := json.Marshal(ex)
	require.NoError(t, err)

	lines := []string{
		string(good),
		`not json at all`,
		`{"messages":[{"role":"user","content":"hi"}]}`,
		`{"messages":[{"role":"assistant","content":"a"},{"role":"user","content":"b"}]}`,
		`{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":""}]}`,
		`{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"not json"}]}`,
		`{"messages":[{"role":"user","content":"hi"},{"role":"assistant","content":"{\"pads\":[]}"}]}`,
	}

	path := filepath.Join(t.TempDir(), "mixed.jsonl")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	report, err := CheckFile(path)
	require.NoError(t, err)
	require.Equal(t, 7, report.Total)
	require.Equal(t, 1, report.Valid)
	require.Len(t, report.Issues, 6)
}
