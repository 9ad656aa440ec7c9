package blob

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// dbFileName is the single database file holding every collection.
const dbFileName = "opsdeck.db"

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS collections (
    name       TEXT PRIMARY KEY,
    payload    BLOB NOT NULL,
    updated_at TEXT NOT NULL
);
`

// SQLite stores collection payloads in a single-file SQLite database,
// one row per collection.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (or creates) the database under dir and ensures the
// schema exists.
func NewSQLite(dir string) (*SQLite, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("blob: create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("blob: open database: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("blob: init schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Load reads the collection payload. A missing row means the collection
// has never been saved.
func (s *SQLite) Load(name string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRow(
		"SELECT payload FROM collections WHERE name = ?", name,
	).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("blob: load %s: %w", name, err)
	}
	return payload, true, nil
}

// Save replaces the collection payload.
func (s *SQLite) Save(name string, data []byte) error {
	_, err := s.db.Exec(
		`INSERT INTO collections (name, payload, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		name, data, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("blob: save %s: %w", name, err)
	}
	return nil
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}
