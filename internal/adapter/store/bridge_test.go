package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapter "github.com/driftcheck/driftcheck/internal/adapter/store"
	"github.com/driftcheck/driftcheck/internal/store"
	"github.com/driftcheck/driftcheck/internal/usecase/drift"
)

type fakeStore struct {
	runs    []store.Run
	results []store.TemplateRecord
	runErr  error
	closed  bool
}

func (f *fakeStore) CreateRun(ctx context.Context, run store.Run) error {
	if f.runErr != nil {
		return f.runErr
	}
	f.runs = append(f.runs, run)
	return nil
}

func (f *fakeStore) GetRun(ctx context.Context, runID string) (store.Run, error) {
	for _, run := range f.runs {
		if run.RunID == runID {
			return run, nil
		}
	}
	return store.Run{}, errors.New("not found")
}

func (f *fakeStore) ListRuns(ctx context.Context, limit int) ([]store.Run, error) {
	return f.runs, nil
}

func (f *fakeStore) SaveResults(ctx context.Context, results []store.TemplateRecord) error {
	f.results = append(f.results, results...)
	return nil
}

func (f *fakeStore) GetResultsByRun(ctx context.Context, runID string) ([]store.TemplateRecord, error) {
	return f.results, nil
}

func (f *fakeStore) Close() error {
	f.closed = true
	return nil
}

func TestRecordRunMapsSummary(t *testing.T) {
	fake := &fakeStore{}
	bridge := adapter.NewBridge(fake)

	summary := drift.Summary{
		RunID:     "run-1",
		Timestamp: time.Date(2025, 10, 21, 14, 30, 52, 0, time.UTC),
		Drifted:   1,
		Failed:    1,
		Results: []drift.TemplateResult{
			{Source: "a.tpl", Target: "a", Drifted: true, Hunks: 2, LinesRemoved: 1, LinesAdded: 4},
			{Source: "b.tpl", Target: "b", Err: errors.New("boom")},
		},
	}
	require.NoError(t, bridge.RecordRun(context.Background(), summary))

	require.Len(t, fake.runs, 1)
	assert.Equal(t, "run-1", fake.runs[0].RunID)
	assert.Equal(t, 2, fake.runs[0].Templates)
	assert.Equal(t, 1, fake.runs[0].Drifted)
	assert.Equal(t, 1, fake.runs[0].Failed)

	require.Len(t, fake.results, 2)
	assert.Equal(t, 4, fake.results[0].LinesAdded)
	assert.Equal(t, "boom", fake.results[1].Error)
	assert.Empty(t, fake.results[0].Error)
}

func TestRecordRunPropagatesStoreErrors(t *testing.T) {
	fake := &fakeStore{runErr: errors.New("disk full")}
	bridge := adapter.NewBridge(fake)

	err := bridge.RecordRun(context.Background(), drift.Summary{RunID: "run-1"})
	assert.ErrorContains(t, err, "disk full")
}

func TestBridgeClose(t *testing.T) {
	fake := &fakeStore{}
	bridge := adapter.NewBridge(fake)
	require.NoError(t, bridge.Close())
	assert.True(t, fake.closed)
}
