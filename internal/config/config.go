package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents a tagcash.yaml configuration file. Every field is a
// default that the matching command-line flag overrides.
type Config struct {
	Tags   []string `yaml:"tags,omitempty"` // wanted tags, empty for all
	All    bool     `yaml:"all"`            // also print the merged "All Tags" view
	Format string   `yaml:"format"`         // table, plain or csv
}

// Load reads a tagcash.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Format: "table",
	}
}
