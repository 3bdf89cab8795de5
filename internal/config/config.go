// Package config loads optional YAML settings for the server and CLI.
// Flags override file values; absent files fall back to defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr        string    `yaml:"addr"`
	PersistPath string    `yaml:"persistPath"`
	LogLevel    string    `yaml:"logLevel"`
	Solver      string    `yaml:"solver"` // dlx | backtrack
	Generator   Generator `yaml:"generator"`
}

type Generator struct {
	Variant    string `yaml:"variant"`
	Difficulty string `yaml:"difficulty"`
	Size       int    `yaml:"size"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Addr:        ":8080",
		PersistPath: "./data",
		LogLevel:    "info",
		Solver:      "dlx",
		Generator: Generator{
			Variant:    "classic",
			Difficulty: "medium",
			Size:       9,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults; a
// missing file is an error so typos do not silently run with defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
