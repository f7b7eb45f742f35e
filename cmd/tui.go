package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/desertthunder/favsongs/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive song list.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	if path := r.config.Log.File; path != "" {
		fileLogger, err := shared.NewFileLogger(path)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		shared.SetLogLevel(fileLogger, r.logger.GetLevel())
		r.SetLogger(fileLogger)
	}

	provider, logger := r.activate()

	opts := ui.OptionsFromConfig(r.config.UI)
	opts.Logger = logger
	opts.OnLoad = func() {
		provider.Initialize()
		logger.Info("favorite songs loaded", "rows", provider.RowCount(0))
	}

	if err := r.program(ui.NewModel(provider, opts)); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
