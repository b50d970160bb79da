// Package config holds the pspkit configuration: where fixtures live, where
// collected process data is stored, and how chatty logging should be.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all pspkit configuration.
type Config struct {
	// FixturesDir is where static test input data lives.
	FixturesDir string `yaml:"fixtures_dir"`

	// DataDir is where collected process metrics are stored.
	DataDir string `yaml:"data_dir"`

	// Logging configuration.
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		FixturesDir: "fixtures",
		DataDir:     "data",
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if dir := os.Getenv("PSP_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}
	if dir := os.Getenv("PSP_FIXTURES_DIR"); dir != "" {
		c.FixturesDir = dir
	}
	if level := os.Getenv("PSP_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}
