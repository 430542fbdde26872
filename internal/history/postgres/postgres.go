// Package postgres implements the history Store on PostgreSQL for hosted
// deployments where a JSON file on local disk would not survive the host.
//
// Records are stored whole as JSONB; the newest-first cap is enforced on
// every append so the table never grows past the log cap.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	_ "github.com/lib/pq"

	"github.com/subrinSheikh/Medical-Language-System/internal/history"
	"github.com/subrinSheikh/Medical-Language-System/internal/message"
)

const schema = `
CREATE TABLE IF NOT EXISTS interactions (
    id         TEXT PRIMARY KEY,
    type       TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    record     JSONB NOT NULL
);
CREATE INDEX IF NOT EXISTS interactions_created_at_idx ON interactions (created_at DESC);
`

// Store persists the log in a single interactions table.
type Store struct {
	db *sql.DB
}

// New opens the database, verifies connectivity, and ensures the schema.
func New(ctx context.Context, dsn string) (*Store, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensuring schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Name returns the backend identifier.
func (s *Store) Name() string { return "postgres" }

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the newest records up to the cap. Rows whose JSON no longer
// decodes are skipped rather than failing the whole log.
func (s *Store) Load(ctx context.Context) ([]message.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT record FROM interactions ORDER BY created_at DESC, id DESC LIMIT $1`,
		history.Cap)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	records := make([]message.Record, 0, history.Cap)
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		var rec message.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			slog.Warn("skipping undecodable history row", "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Append inserts the record and drops rows past the cap, oldest first.
func (s *Store) Append(ctx context.Context, rec message.Record) error {
	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO interactions (id, type, created_at, record) VALUES ($1, $2, $3, $4)`,
		rec.ID, string(rec.Type), rec.Timestamp, raw); err != nil {
		return fmt.Errorf("inserting record: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM interactions
         WHERE id NOT IN (
             SELECT id FROM interactions ORDER BY created_at DESC, id DESC LIMIT $1
         )`, history.Cap)
	if err != nil {
		return fmt.Errorf("truncating history: %w", err)
	}
	return nil
}
