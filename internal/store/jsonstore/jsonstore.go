// Package jsonstore persists todos as a single JSON file.
// Human-readable, portable. No locking for v1; fine for a local
// single-user CLI.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/avelko/todoclip/internal/model"
)

// Store reads and writes one data file.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load returns the stored todos. A missing file is an empty list, not
// an error.
func (s *Store) Load() ([]model.Todo, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.Todo{}, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	var items []model.Todo
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return items, nil
}

func (s *Store) Save(items []model.Todo) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
