package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/conneroisu/curricula/internal/config"
	"github.com/conneroisu/curricula/internal/content"
	"github.com/conneroisu/curricula/internal/registry"
	"github.com/conneroisu/curricula/internal/watcher"
)

var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"p"},
	Short:   "Watch a content directory and rebuild the registry on change",
	Long: `Content-authoring preview mode: watch a content directory and rebuild
the registry whenever a module file changes.

Each rebuild produces a whole new registry which replaces the previous
one atomically; a rebuild that fails validation keeps the last good
registry in place and reports the findings, so readers never observe a
partially updated or broken corpus.

Examples:
  curricula preview --dir content`,
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Content.Dir == "" {
		return fmt.Errorf("preview requires a content directory (--dir or content.dir)")
	}

	logger := newLogger(cfg, "preview")
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store := registry.NewStore(nil)
	rebuild := func() {
		modules, err := content.LoadDir(cfg.Content.Dir)
		if err != nil {
			logger.Error(ctx, err, "cannot read content directory")
			return
		}

		reg, report, err := registry.Load(modules)
		if err != nil {
			summary := "no report"
			if report != nil {
				summary = report.Summary()
			}
			logger.Error(ctx, err, "rebuild failed, keeping last good registry",
				"report", summary)
			return
		}

		store.Swap(reg)
		logger.Info(ctx, "registry rebuilt",
			"phases", reg.PhaseCount(),
			"topics", reg.TopicCount(),
			"warnings", len(report.Warnings))
	}

	// Initial build before watching, so a clean corpus is served
	// immediately.
	rebuild()

	debounce := time.Duration(cfg.Preview.DebounceMillis) * time.Millisecond
	contentWatcher, err := watcher.NewContentWatcher(debounce)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer contentWatcher.Stop()

	contentWatcher.AddFilter(watcher.YAMLFilter)
	contentWatcher.AddFilter(watcher.NoHiddenFilter)
	contentWatcher.AddHandler(func(events []watcher.ChangeEvent) error {
		logger.Debug(ctx, "content changed", "files", len(events))
		rebuild()
		return nil
	})

	if err := contentWatcher.AddPath(cfg.Content.Dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", cfg.Content.Dir, err)
	}
	if err := contentWatcher.Start(ctx); err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}

	fmt.Printf("Watching %s for changes (ctrl-c to stop)\n", cfg.Content.Dir)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigCh:
	case <-ctx.Done():
	}

	return nil
}
