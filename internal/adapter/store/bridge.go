package store

import (
	"context"
	"fmt"

	"github.com/driftcheck/driftcheck/internal/store"
	"github.com/driftcheck/driftcheck/internal/usecase/drift"
)

// Bridge adapts a store.Store to the drift.Recorder port and exposes
// history reads for the CLI.
type Bridge struct {
	store store.Store
}

// NewBridge wraps the given store.
func NewBridge(s store.Store) *Bridge {
	return &Bridge{store: s}
}

// RecordRun persists a run summary and its per-template results.
func (b *Bridge) RecordRun(ctx context.Context, summary drift.Summary) error {
	run := store.Run{
		RunID:     summary.RunID,
		Timestamp: summary.Timestamp,
		Templates: len(summary.Results),
		Drifted:   summary.Drifted,
		Failed:    summary.Failed,
	}
	if err := b.store.CreateRun(ctx, run); err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	records := make([]store.TemplateRecord, 0, len(summary.Results))
	for _, result := range summary.Results {
		record := store.TemplateRecord{
			RunID:        summary.RunID,
			Source:       result.Source,
			Target:       result.Target,
			Drifted:      result.Drifted,
			Hunks:        result.Hunks,
			LinesRemoved: result.LinesRemoved,
			LinesAdded:   result.LinesAdded,
		}
		if result.Err != nil {
			record.Error = result.Err.Error()
		}
		records = append(records, record)
	}
	if err := b.store.SaveResults(ctx, records); err != nil {
		return fmt.Errorf("record results: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (b *Bridge) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	return b.store.ListRuns(ctx, limit)
}

// Close releases the underlying store.
func (b *Bridge) Close() error {
	return b.store.Close()
}
