// Package config provides YAML-based configuration for the level loader,
// the level catalog and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Config contains all tilegrid configuration.
type Config struct {
	Levels  LevelsConfig  `yaml:"levels"`
	Catalog CatalogConfig `yaml:"catalog"`
	Log     LogConfig     `yaml:"log"`
}

// LevelsConfig controls where levels are read from and how they are validated.
type LevelsConfig struct {
	Dir      string `yaml:"dir"`
	Alphabet string `yaml:"alphabet"` // Registered alphabet name
	Workers  int    `yaml:"workers"`  // 0 = one per CPU
}

// CatalogConfig locates the SQLite level catalog.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// LogConfig sets the logger level ("debug", "info", "warn", "error").
type LogConfig struct {
	Level string `yaml:"level"`
}

// Validate checks that required fields are set and sensible.
func (c Config) Validate() error {
	if c.Levels.Dir == "" {
		return fmt.Errorf("config: levels.dir is empty")
	}
	if c.Levels.Alphabet == "" {
		return fmt.Errorf("config: levels.alphabet is empty")
	}
	if c.Levels.Workers < 0 {
		return fmt.Errorf("config: levels.workers must be >= 0, got %d", c.Levels.Workers)
	}
	if c.Catalog.Path == "" {
		return fmt.Errorf("config: catalog.path is empty")
	}
	if _, err := c.Log.ParseLevel(); err != nil {
		return err
	}
	return nil
}

// ParseLevel converts the configured level name to a log.Level.
// An empty name means info.
func (l LogConfig) ParseLevel() (log.Level, error) {
	if l.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(l.Level))
	if err != nil {
		return lvl, fmt.Errorf("config: %w", err)
	}
	return lvl, nil
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
