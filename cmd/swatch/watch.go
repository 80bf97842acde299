package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"swatch/internal/errors"
	"swatch/internal/log"
	"swatch/internal/watch"

	"github.com/spf13/cobra"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-export the theme configuration when overrides change",
		Long: `Watch monitors the configured override file and re-runs validation and
export on every change. Invalid overrides are reported and the previous
export is left in place.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Overrides == "" {
				return errors.NewConfigError("watch requires an overrides file", "overrides", errors.ConfigNotSet, nil)
			}
			if cfg.Export.Path == "" {
				return errors.NewConfigError("watch requires an export path", "export.path", errors.ConfigNotSet, nil)
			}

			exportOnce := func() {
				tokens, err := loadTokens()
				if err != nil {
					log.Error("reload overrides: %v", err)
					return
				}
				if err := tokens.Check(); err != nil {
					log.Error("%v", err)
					return
				}
				if err := writeExport(tokens, cfg.Export.Format, cfg.Export.Path, cmd); err != nil {
					log.Error("export: %v", err)
				}
			}
			exportOnce()

			debounce := time.Duration(cfg.WatchMode.Debounce) * time.Millisecond
			watcher, err := watch.New(cfg.Overrides, debounce)
			if err != nil {
				return err
			}
			if err := watcher.Start(); err != nil {
				return err
			}
			defer watcher.Stop()

			log.With("path", cfg.Overrides).Info("watching for override changes")

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

			for {
				select {
				case <-watcher.Changes():
					log.Info("overrides changed, re-exporting")
					exportOnce()
				case <-sigChan:
					log.Info("stopping watch mode")
					return nil
				}
			}
		},
	}
}
