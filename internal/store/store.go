// Package store persists attempts and review schedule entries in SQLite.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite handle and provides access to the repositories.
type Store struct {
	db *sql.DB
}

// Open creates a Store connected to the SQLite database at dsn. It applies
// recommended pragmas and creates the schema if needed.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Attempts returns an AttemptRepo backed by this store.
func (s *Store) Attempts() AttemptRepo {
	return &attemptRepo{db: s.db}
}

// Schedules returns a ScheduleRepo backed by this store.
func (s *Store) Schedules() ScheduleRepo {
	return &scheduleRepo{db: s.db}
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// initSchema creates the tables. Attempts are append-only; the review
// schedule holds exactly one row per question, replaced on every answer.
// Timestamps are stored as Unix milliseconds, the same unit attempt
// latencies are recorded in.
func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS attempts (
			id TEXT PRIMARY KEY,
			question_id TEXT NOT NULL,
			answered_at INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			chosen_option INTEGER NOT NULL,
			elapsed_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_attempts_question_answered
			ON attempts (question_id, answered_at DESC)`,
		`CREATE TABLE IF NOT EXISTS review_schedule (
			question_id TEXT PRIMARY KEY,
			stage INTEGER NOT NULL,
			next_review_at INTEGER NOT NULL
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("exec schema statement: %w", err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. CHARTDRILL_DB environment variable
// 2. $XDG_DATA_HOME/chartdrill/chartdrill.db
// 3. ~/.local/share/chartdrill/chartdrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CHARTDRILL_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "chartdrill", "chartdrill.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
