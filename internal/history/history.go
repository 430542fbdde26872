// Package history defines the append-only interaction log.
//
// The log is capped and newest-first: every append inserts at the head and
// silently drops entries past the cap. There is no concurrent-writer
// coordination — at most one writer per request is assumed, and lost updates
// under true concurrency are an accepted limitation.
package history

import (
	"context"

	"github.com/subrinSheikh/Medical-Language-System/internal/message"
)

// Cap is the maximum number of records retained in the log.
const Cap = 50

// Store persists the interaction log.
type Store interface {
	// Name returns the backend identifier (e.g. "file", "postgres").
	Name() string

	// Load returns the current log, newest first. Backends degrade
	// unreadable or corrupt state to an empty log where they can; a
	// returned error means the backend itself was unreachable.
	Load(ctx context.Context) ([]message.Record, error)

	// Append inserts the record at the head of the log and truncates it
	// to Cap entries.
	Append(ctx context.Context, rec message.Record) error
}

// Push inserts rec at the head of log and truncates to Cap entries. The
// shared policy for every backend.
func Push(log []message.Record, rec message.Record) []message.Record {
	out := make([]message.Record, 0, len(log)+1)
	out = append(out, rec)
	out = append(out, log...)
	if len(out) > Cap {
		out = out[:Cap]
	}
	return out
}

// Memory is an in-process Store used by tests and credential-free local runs.
type Memory struct {
	records []message.Record
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory { return &Memory{} }

// Name returns the backend identifier.
func (m *Memory) Name() string { return "memory" }

// Load returns a copy of the current log.
func (m *Memory) Load(context.Context) ([]message.Record, error) {
	out := make([]message.Record, len(m.records))
	copy(out, m.records)
	return out, nil
}

// Append inserts the record at the head and truncates to Cap.
func (m *Memory) Append(_ context.Context, rec message.Record) error {
	m.records = Push(m.records, rec)
	return nil
}
