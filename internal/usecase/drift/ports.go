package drift

import (
	"context"
	"time"

	"github.com/driftcheck/driftcheck/internal/diff"
)

// Renderer renders template text against a variable table. Rendering is
// opaque to this package; only success or failure matters here.
type Renderer interface {
	Render(templateText string, variables map[string]any) (string, error)
}

// Aligner computes a minimal line-level edit script between a base text
// and an updated text, split on line boundaries.
type Aligner interface {
	Align(base, updated string) diff.Diff
}

// Printer presents extracted hunks for one template comparison.
type Printer interface {
	Heading(source, target string)
	PrintHunks(hunks []diff.Hunk)
}

// Recorder persists a completed run to the history store.
type Recorder interface {
	RecordRun(ctx context.Context, summary Summary) error
}

// ReportArtifact encapsulates the drift report generation inputs.
type ReportArtifact struct {
	OutputDir string
	RunID     string
	Timestamp time.Time
	Results   []TemplateResult
}

// ReportWriter persists a run report and returns the written path.
type ReportWriter interface {
	Write(ctx context.Context, artifact ReportArtifact) (string, error)
}
