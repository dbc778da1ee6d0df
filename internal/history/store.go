// Copyright Teresa Parreira, 2026. All rights reserved.

// Package history keeps a SQLite ledger of updater runs. The ledger is
// best-effort observability for a job that otherwise only logs to the
// trigger's console: a failure to record a run must never fail the run.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/mteresaparreira/pubsync/pkg/types"
)

const defaultMaxEntries = 500

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	run_at       TIMESTAMP NOT NULL,
	profile      TEXT NOT NULL,
	publications INTEGER NOT NULL,
	fingerprint  TEXT NOT NULL,
	outcome      TEXT NOT NULL,
	detail       TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_run_at ON runs(run_at);
`

// Outcome classifies how a run ended.
type Outcome string

const (
	OutcomeUpdated   Outcome = "updated"
	OutcomeUnchanged Outcome = "unchanged"
	OutcomeError     Outcome = "error"
)

// Run is one ledger entry.
type Run struct {
	ID           int64
	RunAt        time.Time
	Profile      string
	Publications int
	Fingerprint  string
	Outcome      Outcome
	Detail       string
}

// Store manages the run ledger database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// Open opens or creates the ledger database at cfg.DBPath and creates the
// schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.DBPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating ledger directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = defaultMaxEntries
	}
	return &Store{db: db, maxEntries: maxEntries}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts a run entry and prunes rows beyond the configured bound,
// oldest first.
func (s *Store) Record(ctx context.Context, run Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_at, profile, publications, fingerprint, outcome, detail)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		run.RunAt.UTC(), run.Profile, run.Publications, run.Fingerprint, string(run.Outcome), run.Detail)
	if err != nil {
		return fmt.Errorf("recording run: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`DELETE FROM runs WHERE id NOT IN (SELECT id FROM runs ORDER BY id DESC LIMIT ?)`,
		s.maxEntries)
	if err != nil {
		return fmt.Errorf("pruning ledger: %w", err)
	}
	return nil
}

// List returns the most recent n runs, newest first.
func (s *Store) List(ctx context.Context, n int) ([]Run, error) {
	if n <= 0 {
		n = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, run_at, profile, publications, fingerprint, outcome, detail
		 FROM runs ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying ledger: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var outcome string
		if err := rows.Scan(&r.ID, &r.RunAt, &r.Profile, &r.Publications, &r.Fingerprint, &outcome, &r.Detail); err != nil {
			return nil, fmt.Errorf("scanning ledger row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}
