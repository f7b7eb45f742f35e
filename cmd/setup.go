package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/favsongs/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the example configuration file.
//
// The file goes to --config when given, otherwise to the XDG config directory.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = r.configPath
	}
	if path == "" {
		defaultPath, err := shared.DefaultConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		path = defaultPath
	}

	r.logger.Info("creating config file from template", "path", path)
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Info("config file created", "path", path)
	return r.writePlain("✓ Config written to %s\n", path)
}
