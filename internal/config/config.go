package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat trolleypm configuration.
type Config struct {
	Version string `json:"version"`
	// DataDir overrides where the database file lives. Empty means
	// the default ~/.trolleypm directory.
	DataDir string `json:"data_dir,omitempty"`
	// DefaultTechnician is pre-filled on log/damage commands when no
	// --technician flag is given.
	DefaultTechnician string `json:"default_technician,omitempty"`
}

// DefaultDataDir returns the default data directory (~/.trolleypm).
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".trolleypm"), nil
}

// Load reads config.json from the default data directory. A missing
// file is not an error: zero-value defaults apply.
func Load() (*Config, error) {
	dir, err := DefaultDataDir()
	if err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "config.json")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Save writes config.json to the default data directory.
func Save(cfg *Config) error {
	dir, err := DefaultDataDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveDataDir resolves the effective data directory for this config.
func (c *Config) ResolveDataDir() (string, error) {
	if c.DataDir != "" {
		return c.DataDir, nil
	}
	return DefaultDataDir()
}
