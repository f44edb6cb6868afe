// Package exportsource finds keymap exports on disk.
package exportsource

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

type Files struct{}

func New() Files {
	return Files{}
}

// ReadBytes returns the contents of the first candidate that exists.
// Candidates that are missing are skipped; any other error stops the search.
func (Files) ReadBytes(candidates []string) ([]byte, bool, error) {
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			continue
		case err != nil:
			return nil, false, fmt.Errorf("read %s: %w", path, err)
		}

		return data, true, nil
	}

	return nil, false, nil
}

// Save stores an export at path, creating parent directories. The file is
// replaced in one rename so a reader never sees half of it.
func Save(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".keymap-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename export: %w", err)
	}

	return nil
}
