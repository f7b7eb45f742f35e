package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/desertthunder/favsongs/internal/formatter"
	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/desertthunder/favsongs/internal/songs"
	"github.com/urfave/cli/v3"
)

// SongsList prints every song in display order in the requested format.
func (r *Runner) SongsList(ctx context.Context, cmd *cli.Command) error {
	format := strings.ToLower(cmd.String("format"))

	provider, logger := r.activate()
	provider.Initialize()

	titles, err := songs.Titles(provider)
	if err != nil {
		return fmt.Errorf("failed to read songs: %w", err)
	}
	logger.Debug("songs read", "rows", len(titles), "format", format)

	list := formatter.NewSongList(r.config.UI.Title, titles)
	if format == formatter.FormatJSON {
		return r.writeJSON(list, cmd.Bool("pretty"))
	}

	data, err := formatter.Export(list, format)
	if err != nil {
		return err
	}
	if _, err := r.output.Write(data); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// SongsGet prints the title at a zero-based row index.
func (r *Runner) SongsGet(ctx context.Context, cmd *cli.Command) error {
	arg := cmd.StringArg("index")
	if arg == "" {
		return fmt.Errorf("%w: index", shared.ErrMissingArgument)
	}

	index, err := strconv.Atoi(arg)
	if err != nil {
		return fmt.Errorf("%w: index %q is not a number", shared.ErrInvalidArgument, arg)
	}

	provider, logger := r.activate()
	provider.Initialize()

	title, err := provider.Title(index)
	if err != nil {
		logger.Warn("lookup failed", "index", index, "error", err)
		return err
	}

	return r.writePlain("%s\n", title)
}

// SongsCount prints the number of sections and the number of rows in the requested section.
func (r *Runner) SongsCount(ctx context.Context, cmd *cli.Command) error {
	section := int(cmd.Int("section"))

	provider, _ := r.activate()
	provider.Initialize()

	if err := r.writePlain("sections: %d\n", provider.SectionCount()); err != nil {
		return err
	}
	return r.writePlain("rows: %d\n", provider.RowCount(section))
}
