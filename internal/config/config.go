package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Sessions SessionsConfig `yaml:"sessions"`
	Import   ImportConfig   `yaml:"import"`
}

type SessionsConfig struct {
	// Columns lists the session column labels in session order. Empty means
	// use the built-in default set.
	Columns []string `yaml:"columns"`
}

type ImportConfig struct {
	OutputDir string `yaml:"output_dir"`
	StateDir  string `yaml:"state_dir"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides:
//
//	MYWEIGH_OUTPUT_DIR, MYWEIGH_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MYWEIGH_OUTPUT_DIR"); v != "" {
		cfg.Import.OutputDir = v
	}
	if v := os.Getenv("MYWEIGH_STATE_DIR"); v != "" {
		cfg.Import.StateDir = v
	}
}

func (c *Config) validate() error {
	if c.Import.OutputDir == "" {
		return fmt.Errorf("import.output_dir is required")
	}
	if c.Import.StateDir == "" {
		return fmt.Errorf("import.state_dir is required")
	}
	for i, col := range c.Sessions.Columns {
		if col == "" {
			return fmt.Errorf("sessions.columns[%d] is empty", i)
		}
	}
	return nil
}
