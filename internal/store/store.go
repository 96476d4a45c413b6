package store

import (
	"context"
	"time"
)

// Store defines the persistence layer interface for drift-check run history.
type Store interface {
	// Run management
	CreateRun(ctx context.Context, run Run) error
	GetRun(ctx context.Context, runID string) (Run, error)
	ListRuns(ctx context.Context, limit int) ([]Run, error)

	// Per-template results
	SaveResults(ctx context.Context, results []TemplateRecord) error
	GetResultsByRun(ctx context.Context, runID string) ([]TemplateRecord, error)

	// Utility
	Close() error
}

// Run represents a single drift-check execution across all configured
// templates.
type Run struct {
	RunID     string
	Timestamp time.Time
	Templates int
	Drifted   int
	Failed    int
}

// TemplateRecord stores the outcome for one template within a run. Error
// is empty when the comparison completed; Hunks, LinesRemoved and
// LinesAdded are zero for clean templates.
type TemplateRecord struct {
	RunID        string
	Source       string
	Target       string
	Drifted      bool
	Hunks        int
	LinesRemoved int
	LinesAdded   int
	Error        string
}
