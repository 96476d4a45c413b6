package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/driftcheck/driftcheck/internal/store"
	"github.com/driftcheck/driftcheck/internal/usecase/drift"
)

// ErrVersionRequested indicates the user requested the CLI version and no
// further work should be done.
var ErrVersionRequested = errors.New("version requested")

// ErrDriftFound signals that at least one template drifted; the host
// process maps it to a non-zero exit code.
var ErrDriftFound = errors.New("drift detected")

// DriftChecker defines the dependency required to run the diff and check
// commands.
type DriftChecker interface {
	Run(ctx context.Context, req drift.RunRequest) (drift.Summary, error)
}

// HistoryLister reads recorded runs from the history store.
type HistoryLister interface {
	ListRuns(ctx context.Context, limit int) ([]store.Run, error)
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Checker          DriftChecker
	History          HistoryLister // nil when the history store is disabled
	Args             Arguments
	DefaultContext   int
	DefaultReportDir string
	Version          string
	OnNoColor        func() // invoked before any command when --no-color is set
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "driftcheck",
		Short: "Template drift inspection CLI",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(diffCommand(deps.Checker, deps.DefaultContext, deps.DefaultReportDir))
	root.AddCommand(checkCommand(deps.Checker, deps.DefaultContext))
	root.AddCommand(historyCommand(deps.History))

	var showVersion bool
	var noColor bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	root.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if noColor && deps.OnNoColor != nil {
			deps.OnNoColor()
		}
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func diffCommand(checker DriftChecker, defaultContext int, defaultReportDir string) *cobra.Command {
	var contextLines int
	var reportDir string

	cmd := &cobra.Command{
		Use:   "diff",
		Short: "Show the line-level drift between rendered templates and their targets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contextLines < 0 {
				return fmt.Errorf("--context must be non-negative, got %d", contextLines)
			}
			summary, err := checker.Run(cmd.Context(), drift.RunRequest{
				Mode:      drift.ModeDiff,
				Context:   contextLines,
				ReportDir: reportDir,
			})
			printSummary(cmd.OutOrStdout(), summary)
			return err
		},
	}

	cmd.Flags().IntVar(&contextLines, "context", defaultContext, "Unchanged lines kept around each change")
	cmd.Flags().StringVar(&reportDir, "report-dir", defaultReportDir, "Write a Markdown drift report to this directory")

	return cmd
}

func checkCommand(checker DriftChecker, defaultContext int) *cobra.Command {
	var contextLines int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify targets match their rendered templates; non-zero exit on drift",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contextLines < 0 {
				return fmt.Errorf("--context must be non-negative, got %d", contextLines)
			}
			summary, runErr := checker.Run(cmd.Context(), drift.RunRequest{
				Mode:    drift.ModeCheck,
				Context: contextLines,
			})

			// The checker continues past failed templates, so the status
			// lines are printed even when runErr is non-nil.
			out := cmd.OutOrStdout()
			for _, result := range summary.Results {
				switch {
				case result.Err != nil:
					fmt.Fprintf(out, "error  %s: %v\n", result.Source, result.Err)
				case result.Drifted:
					fmt.Fprintf(out, "drift  %s (%d hunks, -%d +%d)\n",
						result.Source, result.Hunks, result.LinesRemoved, result.LinesAdded)
				default:
					fmt.Fprintf(out, "ok     %s\n", result.Source)
				}
			}

			var driftErr error
			if summary.Drifted > 0 {
				driftErr = fmt.Errorf("%w in %d of %d template(s)", ErrDriftFound, summary.Drifted, len(summary.Results))
			}
			return errors.Join(runErr, driftErr)
		},
	}

	cmd.Flags().IntVar(&contextLines, "context", defaultContext, "Unchanged lines kept around each change")

	return cmd
}

func historyCommand(history HistoryLister) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent drift-check runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if history == nil {
				return fmt.Errorf("history store is disabled; enable it in driftcheck.yaml")
			}

			runs, err := history.ListRuns(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("list runs: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "no recorded runs")
				return nil
			}
			for _, run := range runs {
				fmt.Fprintf(out, "%s  %s  %d templates  %d drifted  %d failed\n",
					run.RunID,
					run.Timestamp.UTC().Format("2006-01-02 15:04:05"),
					run.Templates, run.Drifted, run.Failed)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list")

	return cmd
}

func printSummary(out io.Writer, summary drift.Summary) {
	fmt.Fprintf(out, "%d template(s): %d drifted, %d failed\n",
		len(summary.Results), summary.Drifted, summary.Failed)
}
