package database

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Store wraps the sqlite connection holding sequence presets and session
// history. All methods take a context and are safe for use from the single
// TUI goroutine; sqlite serializes writers underneath.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and ensures the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	s := &Store{db: db}
	if err := s.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sequences (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			circular INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS intervals (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence_id INTEGER NOT NULL,
			position INTEGER NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			duration_ms INTEGER NOT NULL,
			FOREIGN KEY(sequence_id) REFERENCES sequences(id) ON DELETE CASCADE
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			sequence_id INTEGER,
			sequence_name TEXT NOT NULL,
			started_at DATETIME NOT NULL,
			ended_at DATETIME,
			laps INTEGER NOT NULL DEFAULT 0,
			intervals_done INTEGER NOT NULL DEFAULT 0,
			outcome TEXT NOT NULL DEFAULT '',
			FOREIGN KEY(sequence_id) REFERENCES sequences(id) ON DELETE SET NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_intervals_sequence
			ON intervals(sequence_id, position);`,
	}
	for _, query := range queries {
		if _, err := s.db.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	return nil
}
