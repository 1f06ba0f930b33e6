package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database holding LLM request events and
// fine-tuning run records.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates tables as needed.
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

// EventRepo returns an EventRepo backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// RunRepo returns a RunRepo backed by this store.
func (s *Store) RunRepo() RunRepo {
	return &runRepo{db: s.db}
}

// applyPragmas configures SQLite for optimal single-user performance.
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

func initSchema(db *sql.DB) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS llm_request_events (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp      TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
	provider       TEXT NOT NULL,
	model          TEXT NOT NULL,
	purpose        TEXT NOT NULL DEFAULT '',
	input_tokens   INTEGER NOT NULL DEFAULT 0,
	output_tokens  INTEGER NOT NULL DEFAULT 0,
	latency_ms     INTEGER NOT NULL DEFAULT 0,
	success        INTEGER NOT NULL DEFAULT 0,
	error_message  TEXT NOT NULL DEFAULT '',
	request_body   TEXT NOT NULL DEFAULT '',
	response_body  TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_llm_events_purpose ON llm_request_events(purpose);
CREATE INDEX IF NOT EXISTS idx_llm_events_model ON llm_request_events(model);

CREATE TABLE IF NOT EXISTS finetune_runs (
	job_id           TEXT PRIMARY KEY,
	base_model       TEXT NOT NULL,
	training_file    TEXT NOT NULL,
	validation_file  TEXT NOT NULL DEFAULT '',
	status           TEXT NOT NULL,
	fine_tuned_model TEXT NOT NULL DEFAULT '',
	created_at       TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now')),
	updated_at       TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ','now'))
);
`
	_, err := db.Exec(ddl)
	return err
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TLOFGEN_DB environment variable
// 2. $XDG_DATA_HOME/tlofgen/tlofgen.db
// 3. ~/.local/share/tlofgen/tlofgen.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TLOFGEN_DB"); p != "" {
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

	p := filepath.Join(dataHome, "tlofgen", "tlofgen.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
