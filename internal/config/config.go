package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lak-git/VLSM-Calculator/internal/errors"
)

// DefaultOutput is the plan file written next to the working directory
// when the config and flags don't say otherwise.
const DefaultOutput = "output.txt"

// Config holds user preferences for the plan command.
type Config struct {
	Output     string `toml:"output"`      // plan file destination
	ShowWasted bool   `toml:"show_wasted"` // include the Wasted IPs column
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: DefaultOutput,
	}
}

// Path returns the location of the user config file:
// $XDG_CONFIG_HOME/vlsmcalc/config.toml, falling back to ~/.config.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "vlsmcalc", "config.toml")
}

// Load reads the user config file, returning defaults if it doesn't exist.
// A file that exists but doesn't parse is a ConfigError.
func Load() (*Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, errors.ConfigError("failed to parse "+path, err)
	}

	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}

	return cfg, nil
}
