package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v3"

	"kopadb/storage"
)

// Config is the kopadb configuration file.
type Config struct {
	Snapshot Snapshot `yaml:"snapshot"`
	Log      Log      `yaml:"log"`
	Shell    Shell    `yaml:"shell"`
	Lending  Lending  `yaml:"lending"`
	Web      Web      `yaml:"web"`
}

// Snapshot selects where the snapshot document lives. Path is used by the
// file and sqlite drivers, DSN by mysql.
type Snapshot struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
	Table  string `yaml:"table"`
}

// Log configures the logger. An empty File logs to stderr.
type Log struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

type Shell struct {
	Prompt             string `yaml:"prompt"`
	ImplicitPrimaryKey bool   `yaml:"implicit_primary_key"`
}

type Lending struct {
	Enabled bool `yaml:"enabled"`
}

// Web serves the lending API on Addr instead of running the shell.
type Web struct {
	Addr string `yaml:"addr"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Snapshot: Snapshot{
			Driver: storage.DriverFile,
			Path:   "data/kopadb.json",
			Table:  storage.DefaultSnapshotTable,
		},
		Log: Log{
			Level:      "info",
			Format:     "text",
			MaxSizeMB:  100,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
		Shell: Shell{
			Prompt:             "kopadb> ",
			ImplicitPrimaryKey: true,
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
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

// Target returns the store target for the configured driver.
func (c *Config) Target() string {
	if c.Snapshot.Driver == storage.DriverMySQL {
		return c.Snapshot.DSN
	}
	return c.Snapshot.Path
}

// Validate checks the snapshot and log settings.
func (c *Config) Validate() error {
	switch c.Snapshot.Driver {
	case storage.DriverFile, storage.DriverSQLite:
		if c.Snapshot.Path == "" {
			return errors.New("snapshot.path is required")
		}
	case storage.DriverMySQL:
		if c.Snapshot.DSN == "" {
			return errors.New("snapshot.dsn is required for mysql")
		}
		if _, err := mysql.ParseDSN(c.Snapshot.DSN); err != nil {
			return fmt.Errorf("snapshot.dsn: %w", err)
		}
	default:
		return fmt.Errorf("unknown snapshot driver %q", c.Snapshot.Driver)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}
