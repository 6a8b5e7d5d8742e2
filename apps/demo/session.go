// Copyright © 2025 Texedit contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/demo/session.go
// Summary: SQLite-backed session store. Remembers caret and scroll position
// per file across runs.

package demo

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

const sessionSchema = `
CREATE TABLE IF NOT EXISTS sessions (
    path      TEXT PRIMARY KEY,
    line      INTEGER NOT NULL,
    col       INTEGER NOT NULL,
    top_line  INTEGER NOT NULL,
    updated   INTEGER NOT NULL
);
`

// SessionStore persists per-file editing positions.
type SessionStore struct {
	db *sql.DB
}

// OpenSessionStore opens (creating if needed) the session database at dbPath.
func OpenSessionStore(dbPath string) (*SessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	dsn := dbPath +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := db.Exec(sessionSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &SessionStore{db: db}, nil
}

// Save stores the editing position for path.
func (s *SessionStore) Save(path string, line, col, topLine int) error {
	_, err := s.db.Exec(`
		INSERT INTO sessions (path, line, col, top_line, updated)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			line = excluded.line,
			col = excluded.col,
			top_line = excluded.top_line,
			updated = excluded.updated`,
		path, line, col, topLine, time.Now().UnixNano())
	return err
}

// Lookup returns the stored position for path, if any.
func (s *SessionStore) Lookup(path string) (line, col, topLine int, ok bool, err error) {
	row := s.db.QueryRow(
		"SELECT line, col, top_line FROM sessions WHERE path = ?", path)
	switch err = row.Scan(&line, &col, &topLine); err {
	case nil:
		return line, col, topLine, true, nil
	case sql.ErrNoRows:
		return 0, 0, 0, false, nil
	default:
		return 0, 0, 0, false, err
	}
}

// Close closes the database.
func (s *SessionStore) Close() error { return s.db.Close() }
