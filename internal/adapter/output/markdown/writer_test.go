package markdown_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driftcheck/driftcheck/internal/adapter/output/markdown"
	"github.com/driftcheck/driftcheck/internal/usecase/drift"
)

func fixedClock() string { return "20251021T143052Z" }

func TestWriteCreatesReport(t *testing.T) {
	dir := t.TempDir()
	w := markdown.NewWriter(fixedClock)

	path, err := w.Write(context.Background(), drift.ReportArtifact{
		OutputDir: filepath.Join(dir, "reports"),
		RunID:     "run-20251021T143052Z-a3f9c2",
		Timestamp: time.Date(2025, 10, 21, 14, 30, 52, 0, time.UTC),
		Results: []drift.TemplateResult{
			{
				Source:       "motd.tpl",
				Target:       "/etc/motd",
				Drifted:      true,
				Hunks:        2,
				LinesRemoved: 1,
				LinesAdded:   3,
			},
			{Source: "hosts.tpl", Target: "/etc/hosts"},
			{Source: "broken.tpl", Target: "/etc/broken", Err: errors.New("read /etc/broken: no such file")},
		},
	})
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(content)

	assert.Contains(t, report, "# Drift Report")
	assert.Contains(t, report, "- Run: run-20251021T143052Z-a3f9c2")
	assert.Contains(t, report, "## motd.tpl")
	assert.Contains(t, report, "- Status: Drifted")
	assert.Contains(t, report, "- Lines: -1 +3")
	assert.Contains(t, report, "- Status: Clean")
	assert.Contains(t, report, "- Status: Failed")
	assert.Contains(t, report, "- Error: read /etc/broken: no such file")
}

func TestWriteFilenameContainsRunAndTimestamp(t *testing.T) {
	dir := t.TempDir()
	w := markdown.NewWriter(fixedClock)

	path, err := w.Write(context.Background(), drift.ReportArtifact{
		OutputDir: dir,
		RunID:     "run-x",
		Timestamp: time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, "drift_run-x_20251021T143052Z.md", filepath.Base(path))
}
