package adapter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// SaveHistory writes the recorded history as CSV to path, creating parent
// directories as needed. The file has a header line "objective,parameter"
// followed by one row per recorded call.
func (c *core) SaveHistory(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("adapter: create history directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("adapter: create history file: %w", err)
	}

	w := csv.NewWriter(f)
	werr := w.Write([]string{"objective", "parameter"})
	for _, r := range c.history {
		if werr != nil {
			break
		}
		werr = w.Write([]string{
			strconv.FormatFloat(r.Objective, 'g', -1, 64),
			strconv.FormatFloat(r.Parameter, 'g', -1, 64),
		})
	}
	w.Flush()
	if werr == nil {
		werr = w.Error()
	}

	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("adapter: write history: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("adapter: close history file: %w", cerr)
	}
	return nil
}
