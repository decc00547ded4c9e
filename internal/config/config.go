// Package config handles resolving configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Config is the resolved application configuration. Values are read from a
// YAML file and merged over [Default].
type Config struct {
	// ListenAddress is the address the API server binds to.
	ListenAddress string `yaml:"listen_address"`
	// MetricsAddress is the address the Prometheus metrics server binds to.
	// Leave empty to disable the metrics listener.
	MetricsAddress string `yaml:"metrics_address"`
	// DBFilepath is the path to the SQLite database file.
	DBFilepath string `yaml:"db_filepath"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// DevMode enables verbose request logging and relaxes server hardening.
	DevMode bool `yaml:"dev_mode"`
}

// Default returns a version of the config with all default values populated.
func Default() *Config {
	return &Config{
		ListenAddress:  "localhost:5000",
		MetricsAddress: "",
		DBFilepath:     filepath.Join(xdg.DataHome, "syllabus", "db.sqlite"),
		LogLevel:       "info",
		DevMode:        false,
	}
}

// Load loads a YAML configuration file from a path, merges it with defaults,
// and validates it for completeness.
func Load(path string) (*Config, error) {
	bytes, err := os.ReadFile(path) //nolint:gosec // allow the config file to be loaded from anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Default()
	if err = yaml.Unmarshal(bytes, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ListenAddress == "" {
		return fmt.Errorf("listen_address must not be empty")
	}
	if c.DBFilepath == "" {
		return fmt.Errorf("db_filepath must not be empty")
	}
	if _, err := c.slogLevel(); err != nil {
		return err
	}
	return nil
}

// SlogLevel resolves the configured log level. Unknown levels resolve to
// info; [Load] rejects them up front.
func (c *Config) SlogLevel() slog.Level {
	lvl, err := c.slogLevel()
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c *Config) slogLevel() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
}
