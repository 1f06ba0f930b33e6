package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Report summarizes a validation pass over a JSONL training file.
type Report struct {
	Total  int
	Valid  int
	Issues []string
}

// SuccessRate returns the valid fraction as a percentage.
func (r *Report) SuccessRate() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Valid) / float64(r.Total) * 100
}

// CheckFile re-reads a written training file and verifies every line:
// parses as JSON, holds a two-turn user/assistant conversation with
// non-empty content, and the assistant turn itself parses as JSON
// carrying the TLOF key. A failing line contributes an issue to the
// report; it never aborts the pass. The file is not modified.
func CheckFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	report := &Report{}
	now := time.Now().Format(time.DateTime)
	flag := func(line int, msg string) {
		report.Issues = append(report.Issues, fmt.Sprintf("%s line %d: %s", now, line, msg))
	}

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for line := 1; sc.Scan(); line++ {
		report.Total++

		var ex Example
		if err := json.Unmarshal(sc.Bytes(), &ex); err != nil {
			flag(line, "invalid JSON record")
			continue
		}
		if len(ex.Messages) != 2 {
			flag(line, "invalid message structure")
			continue
		}
		if ex.Messages[0].Role != "user" || ex.Messages[1].Role != "assistant" {
			flag(line, "invalid roles")
			continue
		}
		if ex.Messages[0].Content == "" || ex.Messages[1].Content == "" {
			flag(line, "empty content")
			continue
		}

		var reply map[string]json.RawMessage
		if err := json.Unmarshal([]byte(ex.Messages[1].Content), &reply); err != nil {
			flag(line, "invalid JSON in assistant response")
			continue
		}
		if _, ok := reply["TLOF"]; !ok {
			flag(line, "missing TLOF key in response")
			continue
		}

		report.Valid++
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	return report, nil
}
