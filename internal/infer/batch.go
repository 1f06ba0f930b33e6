package infer

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// BatchItem records the outcome for one description in a batch run.
type BatchItem struct {
	Index      int    `json:"index"`
	Input      string `json:"input"`
	OutputFile string `json:"output_file,omitempty"`
	Success    bool   `json:"success"`
	Error      string `json:"error,omitempty"`
}

// BatchSummary reports a whole batch run.
type BatchSummary struct {
	RunID      string      `json:"run_id"`
	Total      int         `json:"total"`
	Successful int         `json:"successful"`
	Failed     int         `json:"failed"`
	Outputs    []BatchItem `json:"outputs"`
}

// ReadDescriptions loads one description per line from path, skipping
// blank lines.
func ReadDescriptions(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var inputs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return inputs, nil
}

// Batch generates configurations for each description sequentially and
// writes one config file per success plus a summary JSON to outDir.
// A failing item is recorded and does not abort the rest.
func (s *Service) Batch(ctx context.Context, inputs []string, outDir string) (*BatchSummary, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("no descriptions to process")
	}
	if outDir == "" {
		outDir = "batch_outputs"
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", outDir, err)
	}

	summary := &BatchSummary{
		RunID: uuid.NewString(),
		Total: len(inputs),
	}

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		item := BatchItem{Index: i + 1, Input: input}

		cfg, _, err := s.Generate(ctx, input)
		if err != nil {
			item.Error = err.Error()
			summary.Failed++
			summary.Outputs = append(summary.Outputs, item)
			continue
		}

		path := filepath.Join(outDir, fmt.Sprintf("tlof_config_%03d.json", i+1))
		if _, err := SaveConfiguration(cfg, path); err != nil {
			item.Error = err.Error()
			summary.Failed++
			summary.Outputs = append(summary.Outputs, item)
			continue
		}

		item.OutputFile = path
		item.Success = true
		summary.Successful++
		summary.Outputs = append(summary.Outputs, item)
	}

	blob, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return summary, fmt.Errorf("marshal batch summary: %w", err)
	}
	summaryPath := filepath.Join(outDir, "batch_summary.json")
	if err := os.WriteFile(summaryPath, blob, 0o644); err != nil {
		return summary, fmt.Errorf("write %s: %w", summaryPath, err)
	}

	return summary, nil
}
