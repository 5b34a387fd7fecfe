// Package config loads and saves the shell's ambient configuration: history
// size, color behavior, and the input line length limit. None of it affects
// command parsing or execution semantics; the line length limit only decides
// whether the REPL accepts a line at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gyonder/shellgo/internal/ui"
)

// Config is the shell's on-disk, user-editable configuration.
type Config struct {
	// Color selects when ANSI styling is used on diagnostic output.
	Color ui.ColorMode `yaml:"color"`
	// HistorySize bounds the number of lines readline persists to the
	// history file.
	HistorySize int `yaml:"history_size"`
	// LineLengthLimit bounds how many bytes a single input line may
	// contain before the REPL refuses it without tokenizing it.
	LineLengthLimit int `yaml:"line_length_limit"`
}

const (
	DefaultHistorySize     = 1000
	DefaultLineLengthLimit = 65536
)

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Color:           ui.ColorAuto,
		HistorySize:     DefaultHistorySize,
		LineLengthLimit: DefaultLineLengthLimit,
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".shellgo"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func HistoryPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history"), nil
}

// Load reads the config file if present, falling back to Default values for
// anything it doesn't set. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()

	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes cfg to ~/.shellgo/config.yaml, creating the directory if
// needed.
func Save(cfg *Config) error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	encoder.SetIndent(2)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
