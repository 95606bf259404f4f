package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter

	// mu serializes read-modify-write transactions on player rows.
	mu  sync.Mutex
	now func() time.Time
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and creates missing tables.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)

	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	seq, err := newSequenceCounter(db)
	if err != nil {
		drv.Close()
		return nil, err
	}

	return &Store{db: db, drv: drv, seq: seq, now: time.Now}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// ProgressRepo returns a progress.Store backed by this store.
func (s *Store) ProgressRepo() *ProgressRepo {
	return &ProgressRepo{s: s}
}

// EventRepo returns the progress event log backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{s: s}
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS player_progress (
		player_id TEXT PRIMARY KEY,
		network TEXT NOT NULL DEFAULT '',
		lives INTEGER NOT NULL,
		lifetime_score INTEGER NOT NULL DEFAULT 0,
		lifetime_questions INTEGER NOT NULL DEFAULT 0 CHECK (lifetime_questions BETWEEN 0 AND 20),
		highest_score INTEGER NOT NULL DEFAULT 0,
		games_completed INTEGER NOT NULL DEFAULT 0,
		average_score INTEGER NOT NULL DEFAULT 0,
		session_score INTEGER NOT NULL DEFAULT 0,
		session_questions INTEGER NOT NULL DEFAULT 0,
		finalized INTEGER NOT NULL DEFAULT 0,
		finalized_score INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL,
		updated_at INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS answered_questions (
		player_id TEXT NOT NULL REFERENCES player_progress(player_id) ON DELETE CASCADE,
		question_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (player_id, question_id)
	)`,
	`CREATE TABLE IF NOT EXISTS missed_questions (
		player_id TEXT NOT NULL REFERENCES player_progress(player_id) ON DELETE CASCADE,
		question_id TEXT NOT NULL,
		position INTEGER NOT NULL,
		PRIMARY KEY (player_id, question_id)
	)`,
	`CREATE TABLE IF NOT EXISTS progress_events (
		sequence INTEGER PRIMARY KEY,
		player_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		question_id TEXT NOT NULL DEFAULT '',
		amount INTEGER NOT NULL DEFAULT 0,
		created_at INTEGER NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS progress_events_player ON progress_events (player_id, sequence)`,
}

func migrate(ctx context.Context, drv *entsql.Driver) error {
	for _, stmt := range schema {
		if err := drv.Exec(ctx, stmt, []any{}, nil); err != nil {
			return err
		}
	}
	return nil
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

// DefaultDBPath resolves the database file path in priority order:
// 1. PHANTOM_DB environment variable
// 2. $XDG_DATA_HOME/phantomledger/phantom.db
// 3. ~/.local/share/phantomledger/phantom.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("PHANTOM_DB"); p != "" {
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

	p := filepath.Join(dataHome, "phantomledger", "phantom.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
