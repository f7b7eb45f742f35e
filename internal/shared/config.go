package shared

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG config home.
const AppName = "favsongs"

const configFile = "config.toml"

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	UI  UIConfig  `toml:"ui"`
	Log LogConfig `toml:"log"`
}

// UIConfig contains settings for the song list screen.
type UIConfig struct {
	Title      string       `toml:"title"`
	ShowHelp   bool         `toml:"show_help"`
	RowNumbers bool         `toml:"row_numbers"`
	Colors     ColorsConfig `toml:"colors"`
}

// ColorsConfig contains hex colors for the lipgloss palette.
type ColorsConfig struct {
	Title    string `toml:"title"`
	Selected string `toml:"selected"`
	Error    string `toml:"error"`
	Muted    string `toml:"muted"`
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	if _, err := ParseLogLevel(config.Log.Level); err != nil {
		return nil, err
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindConfig returns the path of an existing config file in the XDG config directories.
func FindConfig() (string, error) {
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, configFile))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMissingConfig, err)
	}
	return path, nil
}

// DefaultConfigPath returns where a new config file is written under the XDG config home.
func DefaultConfigPath() (string, error) {
	return xdg.ConfigFile(filepath.Join(AppName, configFile))
}

// ResolveConfig loads the config at path, or the XDG config file when path is empty.
//
// A missing file is not an error: defaults are returned instead.
func ResolveConfig(path string) (*Config, error) {
	if path == "" {
		found, err := FindConfig()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = found
	}

	if _, err := os.Stat(path); err != nil {
		return DefaultConfig(), nil
	}
	return LoadConfig(path)
}
