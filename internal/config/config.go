package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the project-local configuration file drills looks for.
const FileName = "drills.toml"

// Config represents the complete configuration for drills
type Config struct {
	// LogLevel controls diagnostic output (error, warn, info, debug)
	LogLevel string `toml:"log_level"`

	// Store is the path to the contacts database used by the bot command
	Store string `toml:"store"`

	// KnownLevels lists log levels the analyzer recognizes in addition to
	// the built-in ERROR, WARNING, INFO and DEBUG
	KnownLevels []string `toml:"known_levels"`
}

// Load loads configuration from drills.toml, searching upward from the given
// directory. The file is optional: when none is found an empty config is
// returned so every command works out of the box.
func Load(startPath string) (*Config, error) {
	configPath, found, err := findConfigFile(startPath)
	if err != nil {
		return nil, err
	}
	if !found {
		return &Config{}, nil
	}

	configData, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if _, err := toml.Decode(string(configData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Store paths are relative to the config file, not the working directory
	if cfg.Store != "" {
		cfg.Store = normalizePath(cfg.Store, filepath.Dir(configPath))
	}

	return &cfg, nil
}

// findConfigFile searches for drills.toml starting from the given path
func findConfigFile(startPath string) (string, bool, error) {
	absPath, err := filepath.Abs(startPath)
	if err != nil {
		return "", false, fmt.Errorf("failed to get absolute path: %w", err)
	}

	// If startPath is a file, start from its directory
	info, err := os.Stat(absPath)
	if err == nil && !info.IsDir() {
		absPath = filepath.Dir(absPath)
	}

	// Search upward for drills.toml
	currentDir := absPath
	for {
		configPath := filepath.Join(currentDir, FileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, true, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return "", false, nil
}

// validate checks that configured values are usable
func (c *Config) validate() error {
	switch c.LogLevel {
	case "", "error", "warn", "info", "debug":
	default:
		return fmt.Errorf("invalid configuration: log_level must be one of error, warn, info, debug (got %q)", c.LogLevel)
	}
	return nil
}

// normalizePath converts relative paths to absolute paths based on config file location
func normalizePath(path, configDir string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(configDir, path)
}
