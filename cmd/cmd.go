// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// globalFlags are available to every command.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file (default: $XDG_CONFIG_HOME/favsongs/config.toml)",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error); overrides the config file",
		},
	}
}

// songsCommand handles non-interactive song list output
func songsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "songs",
		Usage: "Print the favorite songs",
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "Print every song in display order",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (text, markdown, csv, json)",
						Value:   "text",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print JSON output",
						Value: true,
					},
				},
				Action: r.SongsList,
			},
			{
				Name:  "get",
				Usage: "Print the song at a zero-based row index",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "index",
					},
				},
				Action: r.SongsGet,
			},
			{
				Name:  "count",
				Usage: "Print the section count and the row count of a section",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "section",
						Usage: "Section to count rows for",
						Value: 0,
					},
				},
				Action: r.SongsCount,
			},
		},
	}
}

// setupCommand handles setup operations for configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write the example configuration file (to --config or the XDG config directory)",
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the command for the interactive song list.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive song list (default)",
		Action:  r.TUI,
	}
}
