package main

import (
	"context"
	"os"

	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	runner := NewRunner(RunnerOpts{Logger: logger})

	if err := newApp(runner).Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}

// newApp builds the root command; running it without a subcommand opens the song list.
func newApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "favsongs",
		Usage:    "Browse a list of favorite songs",
		Version:  "0.1.0",
		Flags:    globalFlags(),
		Before:   r.Before,
		Action:   r.TUI,
		Commands: r.register(),
	}
}
