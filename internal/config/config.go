// Package config provides configuration types and defaults for verso.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/verso/internal/log"
)

// Config holds all configuration options for verso.
type Config struct {
	// ShowLineNumbers enables the line-number gutter. Toggle at runtime
	// with :ln.
	ShowLineNumbers bool `mapstructure:"show_line_numbers"`

	// ShowStats adds line and word counts to the status bar. Toggle at
	// runtime with :stats.
	ShowStats bool `mapstructure:"show_stats"`

	// SwapSaveEvery is the number of insert-mode edits between automatic
	// swap file saves.
	SwapSaveEvery int `mapstructure:"swap_save_every"`

	// LogFile is where debug logging goes when enabled.
	LogFile string `mapstructure:"log_file"`
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		ShowLineNumbers: false,
		ShowStats:       false,
		SwapSaveEvery:   100,
		LogFile:         DefaultLogFilePath(),
	}
}

// Validate checks the configuration for errors.
func (c Config) Validate() error {
	if c.SwapSaveEvery < 1 {
		return fmt.Errorf("swap_save_every must be at least 1, got %d", c.SwapSaveEvery)
	}
	return nil
}

// DefaultLogFilePath returns the default path for the debug log.
// Returns ~/.config/verso/verso.log or a relative fallback if the home
// directory is unavailable.
func DefaultLogFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "verso.log"
	}
	return filepath.Join(home, ".config", "verso", "verso.log")
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Verso Configuration

# Show the line-number gutter (toggle at runtime with :ln)
show_line_numbers: false

# Show line and word counts in the status bar (toggle at runtime with :stats)
show_stats: false

# Number of insert-mode edits between automatic swap file saves.
# The swap file (.<name>.swp) bounds data loss on crash; it is removed
# on a successful :w and preferred over the real file on open.
swap_save_every: 100

# Debug log destination, used with --debug
# log_file: ~/.config/verso/verso.log
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
