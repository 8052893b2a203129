// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package runledger persists the outcome of report-generation runs in a
// SQLite database. The ledger records run metadata only; conversation
// transcripts and project data never touch storage.
package runledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MuhammadDevX/ngen-consultor/pkg/types"
)

const dbFile = "runs.db"

// defaultListLimit bounds List when the caller passes no limit.
const defaultListLimit = 20

// createdAtLayout fixes the fractional width and offset so that the TEXT
// column sorts lexicographically in chronological order.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Ledger manages the run database.
type Ledger struct {
	db *sql.DB
}

// Open opens or creates the ledger database at dir/runs.db, creating the
// schema if it does not exist.
func Open(cfg types.LedgerConfig) (*Ledger, error) {
	if err := os.MkdirAll(cfg.LedgerDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}

	dbPath := filepath.Join(cfg.LedgerDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening ledger database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return l, nil
}

// Close releases the database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

func (l *Ledger) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			model TEXT NOT NULL,
			status TEXT NOT NULL,
			technical_path TEXT,
			financial_path TEXT,
			error TEXT,
			created_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_session ON runs(session_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_model ON runs(model)`,
	}

	for _, stmt := range statements {
		if _, err := l.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one run. A zero CreatedAt is stamped with the current time.
func (l *Ledger) Record(ctx context.Context, run types.Run) error {
	createdAt := run.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := l.db.ExecContext(ctx,
		`INSERT INTO runs (id, session_id, model, status, technical_path, financial_path, error, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.SessionID, run.Model, string(run.Status),
		run.TechnicalReport, run.FinancialReport, run.Err,
		createdAt.UTC().Format(createdAtLayout),
	)
	if err != nil {
		return fmt.Errorf("recording run %s: %w", run.ID, err)
	}
	return nil
}

// List returns the most recent runs, newest first. A non-positive limit uses
// the default (20).
func (l *Ledger) List(ctx context.Context, limit int) ([]types.Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := l.db.QueryContext(ctx,
		`SELECT id, session_id, model, status, technical_path, financial_path, error, created_at
		 FROM runs ORDER BY created_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		var run types.Run
		var status, createdAt string
		if err := rows.Scan(&run.ID, &run.SessionID, &run.Model, &status,
			&run.TechnicalReport, &run.FinancialReport, &run.Err, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		run.Status = types.RunStatus(status)
		if t, err := time.Parse(time.RFC3339Nano, createdAt); err == nil {
			run.CreatedAt = t
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
