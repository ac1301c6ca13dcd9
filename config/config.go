// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "YELLOWHIGGS_"

// Config is the full settings tree.
type Config struct {
	Tables TablesConfig `yaml:"tables"`
	Log    LogConfig    `yaml:"log"`
	Query  QueryConfig  `yaml:"query"`
}

// TablesConfig selects the table tree and how it is parsed.
type TablesConfig struct {
	Root       string `yaml:"root"`
	XSFormat   string `yaml:"xs_format"`
	Duplicates string `yaml:"duplicates"`
}

// LogConfig configures the zap logger built by Logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// QueryConfig holds the default error source and representation.
type QueryConfig struct {
	Error     string `yaml:"error"`
	ErrorType string `yaml:"error_type"`
}

// Default returns the built-in settings: embedded tables, info logging to
// the console, full errors as absolute values.
func Default() *Config {
	return &Config{
		Tables: TablesConfig{XSFormat: "scale_pdf", Duplicates: "warn"},
		Log:    LogConfig{Level: "info", Format: "console"},
		Query:  QueryConfig{Error: "full", ErrorType: "value"},
	}
}

// Load reads path over Default, applies environment overrides and validates
// the result. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("config: parse %s: %w", path, err)
			}
		}
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes c as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides replaces every field whose variable is set and non-empty.
func (c *Config) applyEnvOverrides() {
	for _, o := range c.overrides() {
		if v, ok := os.LookupEnv(EnvPrefix + o.name); ok && v != "" {
			*o.field = v
		}
	}
}

type override struct {
	name  string
	field *string
}

func (c *Config) overrides() []override {
	return []override{
		{"TABLES_ROOT", &c.Tables.Root},
		{"TABLES_XS_FORMAT", &c.Tables.XSFormat},
		{"TABLES_DUPLICATES", &c.Tables.Duplicates},
		{"LOG_LEVEL", &c.Log.Level},
		{"LOG_FORMAT", &c.Log.Format},
		{"QUERY_ERROR", &c.Query.Error},
		{"QUERY_ERROR_TYPE", &c.Query.ErrorType},
	}
}

// Validate checks every enumerated field. Names are case-insensitive.
func (c *Config) Validate() error {
	if _, err := c.XSFormat(); err != nil {
		return err
	}
	if _, err := c.DuplicatePolicy(); err != nil {
		return err
	}
	if _, err := c.Source(); err != nil {
		return err
	}
	if _, err := c.Representation(); err != nil {
		return err
	}
	if _, err := c.level(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.format %q (use console or json)", ErrInvalid, c.Log.Format)
	}
	return nil
}
