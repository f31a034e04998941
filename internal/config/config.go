// Package config loads application settings from a YAML file under the
// user's home directory, with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfigPath overrides the config file location.
	EnvConfigPath = "DETAILERPRO_CONFIG"
	// EnvDBPath overrides the database location.
	EnvDBPath = "DETAILERPRO_DB"
)

// Config is the top-level application configuration.
type Config struct {
	// DBPath is the SQLite database file. Empty means the default under
	// ~/.detailerpro/.
	DBPath string `yaml:"db_path"`

	// Calendar tunes the schedule views.
	Calendar CalendarConfig `yaml:"calendar"`
}

// CalendarConfig controls how many jobs a coarse calendar cell shows before
// collapsing the rest into a "+N more" marker.
type CalendarConfig struct {
	MonthCellCap int `yaml:"month_cell_cap"`
	YearCellCap  int `yaml:"year_cell_cap"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Calendar: CalendarConfig{
			MonthCellCap: 3,
			YearCellCap:  5,
		},
	}
}

// Normalize fills in missing or invalid values so partially filled configs
// still behave.
func (c *Config) Normalize() {
	if c.Calendar.MonthCellCap <= 0 {
		c.Calendar.MonthCellCap = 3
	}
	if c.Calendar.YearCellCap <= 0 {
		c.Calendar.YearCellCap = 5
	}
}

// DefaultPath is where the config file lives unless overridden by
// DETAILERPRO_CONFIG.
func DefaultPath() (string, error) {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".detailerpro", "config.yaml"), nil
}

// ResolveDBPath picks the database location: env override, then config,
// then the default next to the config file.
func (c *Config) ResolveDBPath() (string, error) {
	if env := os.Getenv(EnvDBPath); env != "" {
		return env, nil
	}
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".detailerpro", "shop.db"), nil
}

// Load loads configuration from the given YAML path. A missing file is the
// first run: a default config is written there and returned.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes the configuration to path, creating parent directories.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
