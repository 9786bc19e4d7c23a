package config

import (
	_ "embed"
)

//go:embed defaults/tilegrid.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Levels: LevelsConfig{
			Dir:      "levels",
			Alphabet: "digits",
			Workers:  0,
		},
		Catalog: CatalogConfig{
			Path: "~/.tilegrid/catalog.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
