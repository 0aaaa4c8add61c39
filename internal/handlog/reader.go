package handlog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadFile decodes one exported hand-history file.
func ReadFile(path string) (*File, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return &f, nil
}

// ListFiles returns the JSON files in a drop directory, sorted by name so
// batch runs are deterministic.
func ListFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, err
	}
	return matches, nil
}
