package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/driftcheck/driftcheck/internal/store"
)

// Store implements the store.Store interface using SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a new SQLite store at the given path.
// Use ":memory:" for an in-memory database (useful for testing).
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return s, nil
}

func (s *Store) createSchema() error {
	schema := `
	-- Metadata about each drift-check run
	CREATE TABLE IF NOT EXISTS runs (
		run_id TEXT PRIMARY KEY,
		timestamp INTEGER NOT NULL,
		templates INTEGER NOT NULL,
		drifted INTEGER NOT NULL,
		failed INTEGER NOT NULL
	);

	-- Per-template outcomes within a run
	CREATE TABLE IF NOT EXISTS template_results (
		result_id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT NOT NULL,
		source TEXT NOT NULL,
		target TEXT NOT NULL,
		drifted INTEGER NOT NULL DEFAULT 0,
		hunks INTEGER NOT NULL DEFAULT 0,
		lines_removed INTEGER NOT NULL DEFAULT 0,
		lines_added INTEGER NOT NULL DEFAULT 0,
		error TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_results_run ON template_results(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp);
	`
	_, err := s.db.Exec(schema)
	return err
}

// CreateRun inserts a run record.
func (s *Store) CreateRun(ctx context.Context, run store.Run) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, timestamp, templates, drifted, failed) VALUES (?, ?, ?, ?, ?)`,
		run.RunID, run.Timestamp.Unix(), run.Templates, run.Drifted, run.Failed,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", run.RunID, err)
	}
	return nil
}

// GetRun fetches a single run by ID.
func (s *Store) GetRun(ctx context.Context, runID string) (store.Run, error) {
	var run store.Run
	var ts int64
	err := s.db.QueryRowContext(ctx,
		`SELECT run_id, timestamp, templates, drifted, failed FROM runs WHERE run_id = ?`,
		runID,
	).Scan(&run.RunID, &ts, &run.Templates, &run.Drifted, &run.Failed)
	if err != nil {
		return store.Run{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	run.Timestamp = time.Unix(ts, 0).UTC()
	return run, nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, timestamp, templates, drifted, failed FROM runs ORDER BY timestamp DESC, run_id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []store.Run
	for rows.Next() {
		var run store.Run
		var ts int64
		if err := rows.Scan(&run.RunID, &ts, &run.Templates, &run.Drifted, &run.Failed); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.Timestamp = time.Unix(ts, 0).UTC()
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// SaveResults inserts per-template records for a run.
func (s *Store) SaveResults(ctx context.Context, results []store.TemplateRecord) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO template_results (run_id, source, target, drifted, hunks, lines_removed, lines_added, error)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range results {
		if _, err := stmt.ExecContext(ctx,
			r.RunID, r.Source, r.Target, r.Drifted, r.Hunks, r.LinesRemoved, r.LinesAdded, r.Error,
		); err != nil {
			return fmt.Errorf("insert result for %s: %w", r.Source, err)
		}
	}

	return tx.Commit()
}

// GetResultsByRun returns the template records for one run in insertion order.
func (s *Store) GetResultsByRun(ctx context.Context, runID string) ([]store.TemplateRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, source, target, drifted, hunks, lines_removed, lines_added, error
		 FROM template_results WHERE run_id = ? ORDER BY result_id`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("get results for %s: %w", runID, err)
	}
	defer rows.Close()

	var results []store.TemplateRecord
	for rows.Next() {
		var r store.TemplateRecord
		if err := rows.Scan(&r.RunID, &r.Source, &r.Target, &r.Drifted, &r.Hunks, &r.LinesRemoved, &r.LinesAdded, &r.Error); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
