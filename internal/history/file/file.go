// Package file implements the history Store as a single JSON array on disk.
//
// The whole log is re-read and re-written on every append. Corrupt or
// missing state degrades to an empty log; the caller decides what to do with
// write failures (the pipeline logs and continues).
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/subrinSheikh/Medical-Language-System/internal/history"
	"github.com/subrinSheikh/Medical-Language-System/internal/message"
)

// Store persists the log as a JSON array at a fixed path.
type Store struct {
	path string
	mu   sync.Mutex
}

// New creates a file store at path, ensuring its directory exists.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure history dir: %w", err)
		}
	}
	return &Store{path: path}, nil
}

// Name returns the backend identifier.
func (s *Store) Name() string { return "file" }

// Load reads the full log from disk. A missing file is an empty log; a
// corrupt file is logged and degrades to an empty log rather than failing
// the interaction that observed it.
func (s *Store) Load(context.Context) ([]message.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

func (s *Store) loadLocked() ([]message.Record, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []message.Record{}, nil
		}
		return nil, fmt.Errorf("reading history: %w", err)
	}

	var records []message.Record
	if err := json.Unmarshal(data, &records); err != nil {
		slog.Warn("history file is corrupt, starting with an empty log",
			"path", s.path, "error", err)
		return []message.Record{}, nil
	}
	return records, nil
}

// Append loads the current log, inserts the record at the head, truncates to
// the cap, and writes the whole log back.
func (s *Store) Append(_ context.Context, rec message.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.loadLocked()
	if err != nil {
		records = []message.Record{}
	}
	records = history.Push(records, rec)

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing history: %w", err)
	}
	return nil
}
