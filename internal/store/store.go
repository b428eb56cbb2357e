package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/yamakei/pawdoro/internal/engine"
)

// Store persists the whole application document as a single JSON file.
// Single user, single process: every save is a full synchronous
// overwrite and there is nothing to lock.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads the persisted document. A missing file or unparseable
// content silently yields the default document so the application
// always starts; loaded documents are normalized before use.
func (s *Store) Load() *engine.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return engine.DefaultDocument()
	}

	doc := &engine.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return engine.DefaultDocument()
	}
	doc.Normalize()
	return doc
}

// Save overwrites the persisted document. Called after every mutation;
// there is no batching.
func (s *Store) Save(doc *engine.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	return nil
}

// DefaultPath returns ~/.config/pawdoro/pawdoro.json
func DefaultPath() (string, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(cfg, "pawdoro", "pawdoro.json"), nil
}
