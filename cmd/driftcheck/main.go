package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/driftcheck/driftcheck/internal/adapter/align"
	"github.com/driftcheck/driftcheck/internal/adapter/cli"
	"github.com/driftcheck/driftcheck/internal/adapter/console"
	"github.com/driftcheck/driftcheck/internal/adapter/output/markdown"
	storeadapter "github.com/driftcheck/driftcheck/internal/adapter/store"
	"github.com/driftcheck/driftcheck/internal/adapter/store/sqlite"
	"github.com/driftcheck/driftcheck/internal/adapter/template"
	"github.com/driftcheck/driftcheck/internal/config"
	"github.com/driftcheck/driftcheck/internal/logging"
	"github.com/driftcheck/driftcheck/internal/usecase/drift"
	"github.com/driftcheck/driftcheck/internal/version"
)

func main() {
	if err := run(); err != nil {
		switch {
		case errors.Is(err, cli.ErrVersionRequested):
			return
		case errors.Is(err, cli.ErrDriftFound):
			os.Exit(1)
		default:
			log.Println(err)
			os.Exit(1)
		}
	}
}

func run() error {
	// Cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "driftcheck",
		EnvPrefix:   "DRIFTCHECK",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	logger, err := logging.NewFromConfig(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("logger setup failed: %w", err)
	}

	renderer := template.NewRenderer()
	aligner := align.New()
	printer := console.NewPrinter(os.Stdout, console.StylesFor(cfg.Output.Color))

	// Timestamp function for deterministic report file naming
	nowFunc := func() string {
		return time.Now().UTC().Format("20060102T150405Z")
	}
	reportWriter := markdown.NewWriter(nowFunc)

	generator := drift.NewGenerator(renderer, aligner)
	checker := drift.NewChecker(generator, printer, logger.WithName("drift"),
		cfg.Descriptions(), cfg.Variables).
		WithReportWriter(reportWriter)

	deps := cli.Dependencies{
		Checker:          checker,
		Args:             cli.Arguments{OutWriter: os.Stdout, ErrWriter: os.Stderr},
		DefaultContext:   cfg.Diff.Context,
		DefaultReportDir: cfg.Output.ReportDir,
		Version:          version.Version(),
		OnNoColor:        func() { printer.SetStyles(console.PlainStyles()) },
	}

	if cfg.Store.Enabled {
		storeDir := filepath.Dir(cfg.Store.Path)
		if err := os.MkdirAll(storeDir, 0o755); err != nil {
			logger.Error(err, "create store directory", "path", storeDir)
		} else {
			historyStore, err := sqlite.NewStore(cfg.Store.Path)
			if err != nil {
				logger.Error(err, "initialize history store", "path", cfg.Store.Path)
			} else {
				bridge := storeadapter.NewBridge(historyStore)
				defer bridge.Close()
				checker.WithRecorder(bridge)
				deps.History = bridge
			}
		}
	}

	root := cli.NewRootCommand(deps)
	return root.ExecuteContext(ctx)
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "driftcheck"))
	}
	return paths
}
