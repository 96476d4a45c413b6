package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/driftcheck/driftcheck/internal/usecase/drift"
)

type clock func() string

// Writer renders run summaries into Markdown drift reports.
type Writer struct {
	now clock
}

// NewWriter constructs a Markdown writer with a timestamp supplier.
func NewWriter(now clock) *Writer {
	return &Writer{now: now}
}

// Write persists a drift report to disk and returns its path.
func (w *Writer) Write(ctx context.Context, artifact drift.ReportArtifact) (string, error) {
	if err := os.MkdirAll(artifact.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	filename := fmt.Sprintf("drift_%s_%s.md", sanitise(artifact.RunID), w.now())
	path := filepath.Join(artifact.OutputDir, filename)

	content := buildContent(artifact)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return path, nil
}

func buildContent(artifact drift.ReportArtifact) string {
	var builder strings.Builder
	caser := cases.Title(language.English)

	builder.WriteString("# Drift Report\n\n")
	builder.WriteString(fmt.Sprintf("- Run: %s\n", artifact.RunID))
	builder.WriteString(fmt.Sprintf("- Time: %s\n", artifact.Timestamp.UTC().Format("2006-01-02 15:04:05 UTC")))
	builder.WriteString(fmt.Sprintf("- Templates: %d\n\n", len(artifact.Results)))

	for _, result := range artifact.Results {
		builder.WriteString(fmt.Sprintf("## %s\n\n", result.Source))
		builder.WriteString(fmt.Sprintf("- Target: %s\n", result.Target))
		builder.WriteString(fmt.Sprintf("- Status: %s\n", caser.String(status(result))))
		if result.Err != nil {
			builder.WriteString(fmt.Sprintf("- Error: %s\n", result.Err))
		}
		if result.Drifted {
			builder.WriteString(fmt.Sprintf("- Hunks: %d\n", result.Hunks))
			builder.WriteString(fmt.Sprintf("- Lines: -%d +%d\n", result.LinesRemoved, result.LinesAdded))
		}
		builder.WriteString("\n")
	}

	return builder.String()
}

func status(result drift.TemplateResult) string {
	switch {
	case result.Err != nil:
		return "failed"
	case result.Drifted:
		return "drifted"
	default:
		return "clean"
	}
}

func sanitise(value string) string {
	replacer := strings.NewReplacer("/", "-", " ", "-", ":", "-")
	return replacer.Replace(value)
}
