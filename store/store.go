// Package store persists holdings, transactions and daily snapshots in SQLite.
//
// It exposes plain row CRUD with equality and range filters on the few indexed
// fields (holding name, transaction date, snapshot date). All decimal-exact
// arithmetic lives in the domain layer; columns use SQLite numeric affinity.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// ErrNotFound is returned when a row lookup matches nothing.
var ErrNotFound = errors.New("store: not found")

// schemaVersion guards the bootstrap DDL below via PRAGMA user_version.
const schemaVersion = 1

const schema = `
CREATE TABLE IF NOT EXISTS holdings (
	id       TEXT PRIMARY KEY,
	name     TEXT NOT NULL UNIQUE,
	category TEXT NOT NULL DEFAULT '',
	quantity REAL NOT NULL DEFAULT 0,
	currency TEXT NOT NULL DEFAULT '',
	ticker   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS transactions (
	id         TEXT PRIMARY KEY,
	date       TEXT NOT NULL,
	type       TEXT NOT NULL,
	category   TEXT NOT NULL DEFAULT '',
	amount     REAL NOT NULL,
	memo       TEXT NOT NULL DEFAULT '',
	holding_id TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);

CREATE TABLE IF NOT EXISTS snapshots (
	id          TEXT PRIMARY KEY,
	date        TEXT NOT NULL UNIQUE,
	total_value REAL NOT NULL
);
`

// Store is a SQLite-backed row store for the three engine tables.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the SQLite database at path and bootstraps
// the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := bootstrap(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{db: db}, nil
}

func bootstrap(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	if _, err := db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)); err != nil {
		return fmt.Errorf("set user_version: %w", err)
	}
	return nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
