package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/desertthunder/favsongs/internal/songs"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	logger     *log.Logger
	output     io.Writer
	program    func(tea.Model) error
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Logger     *log.Logger
	Output     io.Writer
	// Program runs a bubbletea model to completion. Defaults to a full-screen [tea.Program].
	Program func(tea.Model) error
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Program == nil {
		opts.Program = runProgram
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		logger:     opts.Logger,
		output:     opts.Output,
		program:    opts.Program,
	}
}

func runProgram(m tea.Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		tuiCommand, songsCommand, setupCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// Before resolves the configuration file and log level shared by every command.
func (r *Runner) Before(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")
	if path == "" {
		path = r.configPath
	}

	config, err := shared.ResolveConfig(path)
	if err != nil {
		return ctx, fmt.Errorf("failed to load config: %w", err)
	}
	r.config = config
	r.configPath = path

	level := config.Log.Level
	if flagLevel := cmd.String("log-level"); flagLevel != "" {
		level = flagLevel
	}
	ll, err := shared.ParseLogLevel(level)
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, ll)

	r.logger.Debug("configuration resolved", "path", path, "level", ll)
	return ctx, nil
}

// SetLogger replaces the logger used by the runner.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

// activate creates the provider for one screen activation and a logger tagged with its session id.
//
// The provider is returned uninitialized; callers run [songs.Provider.Initialize] when the screen becomes active.
func (r *Runner) activate() (*songs.Provider, *log.Logger) {
	return songs.NewProvider(), shared.WithLogger(r.logger, "session", shared.GenerateID())
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
