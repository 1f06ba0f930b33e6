package dataset

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSONL writes examples to path, one JSON record per line.
func WriteJSONL(path string, examples []Example) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, ex := range examples {
		blob, err := json.Marshal(ex)
		if err != nil {
			return fmt.Errorf("marshal example: %w", err)
		}
		if _, err := w.Write(blob); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		if err := w.WriteByte('\n'); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return f.Close()
}
