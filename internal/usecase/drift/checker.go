package drift

import (
	"context"
	"errors"
	"time"

	"github.com/driftcheck/driftcheck/internal/diff"
	"github.com/driftcheck/driftcheck/internal/domain"
	"github.com/driftcheck/driftcheck/internal/logging"
	"github.com/driftcheck/driftcheck/internal/store"
)

// Mode selects how much output a run produces.
type Mode int

const (
	// ModeDiff prints the hunk view for every drifting template.
	ModeDiff Mode = iota
	// ModeCheck classifies templates without printing hunks.
	ModeCheck
)

// RunRequest carries the per-invocation settings for a run.
type RunRequest struct {
	Mode      Mode
	Context   int    // unchanged lines kept around each change
	ReportDir string // when set, write a Markdown report of the run
}

// TemplateResult summarizes the comparison outcome for one template.
type TemplateResult struct {
	Source       string
	Target       string
	Drifted      bool
	Hunks        int
	LinesRemoved int
	LinesAdded   int
	Err          error
}

// Summary aggregates the outcome of a full run.
type Summary struct {
	RunID     string
	Timestamp time.Time
	Results   []TemplateResult
	Drifted   int
	Failed    int
}

// Checker compares every configured template against its target and
// presents, reports, and records the drift it finds. Comparison failures
// are reported and the run continues with the remaining templates.
type Checker struct {
	generator *Generator
	printer   Printer
	reports   ReportWriter
	recorder  Recorder
	logger    logging.Logger
	templates []domain.TemplateDescription
	variables map[string]any
	now       func() time.Time
}

// NewChecker constructs a Checker for the given templates and variables.
func NewChecker(
	generator *Generator,
	printer Printer,
	logger logging.Logger,
	templates []domain.TemplateDescription,
	variables map[string]any,
) *Checker {
	return &Checker{
		generator: generator,
		printer:   printer,
		logger:    logger,
		templates: templates,
		variables: variables,
		now:       time.Now,
	}
}

// WithRecorder sets an optional history store for completed runs.
func (c *Checker) WithRecorder(recorder Recorder) *Checker {
	c.recorder = recorder
	return c
}

// WithReportWriter sets an optional Markdown report writer.
func (c *Checker) WithReportWriter(writer ReportWriter) *Checker {
	c.reports = writer
	return c
}

// WithClock overrides the timestamp source, for deterministic tests.
func (c *Checker) WithClock(now func() time.Time) *Checker {
	c.now = now
	return c
}

// Run compares all templates. The returned error joins every comparison
// failure; a non-nil error does not mean the whole run was abandoned.
func (c *Checker) Run(ctx context.Context, req RunRequest) (Summary, error) {
	started := c.now()
	summary := Summary{
		RunID:     store.GenerateRunID(started),
		Timestamp: started,
	}

	var errs []error
	for _, tmpl := range c.templates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		result := TemplateResult{Source: tmpl.Source, Target: tmpl.Target.Target}

		d, err := c.generator.Generate(tmpl, c.variables)
		if err != nil {
			c.logger.Error(err, "compare template", "source", tmpl.Source)
			result.Err = err
			summary.Failed++
			summary.Results = append(summary.Results, result)
			errs = append(errs, err)
			continue
		}

		if diff.NonEmpty(d) {
			hunks := diff.ExtractHunks(d, req.Context)
			result.Drifted = true
			result.Hunks = len(hunks)
			result.LinesRemoved, result.LinesAdded = countChanges(d)
			summary.Drifted++

			if req.Mode == ModeDiff {
				c.printer.Heading(tmpl.Source, tmpl.Target.Target)
				c.printer.PrintHunks(hunks)
			}
		}

		c.logger.Debug("template compared",
			"source", tmpl.Source, "target", tmpl.Target.Target, "drifted", result.Drifted)
		summary.Results = append(summary.Results, result)
	}

	if req.ReportDir != "" && c.reports != nil {
		path, err := c.reports.Write(ctx, ReportArtifact{
			OutputDir: req.ReportDir,
			RunID:     summary.RunID,
			Timestamp: summary.Timestamp,
			Results:   summary.Results,
		})
		if err != nil {
			c.logger.Error(err, "write drift report")
			errs = append(errs, err)
		} else {
			c.logger.Info("drift report written", "path", path)
		}
	}

	if c.recorder != nil {
		// History is best effort; the comparisons already happened.
		if err := c.recorder.RecordRun(ctx, summary); err != nil {
			c.logger.Error(err, "record run history", "runID", summary.RunID)
		}
	}

	return summary, errors.Join(errs...)
}

func countChanges(d diff.Diff) (removed, added int) {
	for _, op := range d {
		switch op.Kind {
		case diff.LineRemoved:
			removed++
		case diff.LineAdded:
			added++
		}
	}
	return removed, added
}
