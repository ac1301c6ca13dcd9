// SPDX-License-Identifier: MIT

package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/yellowhiggs/data"
	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/katalvlaran/yellowhiggs/lookup"
	"github.com/katalvlaran/yellowhiggs/table"
)

// XSFormat resolves tables.xs_format.
func (c *Config) XSFormat() (table.XSFormat, error) {
	f, err := table.ParseXSFormat(c.Tables.XSFormat)
	if err != nil {
		return 0, fmt.Errorf("%w: tables.xs_format: %w", ErrInvalid, err)
	}
	return f, nil
}

// DuplicatePolicy resolves tables.duplicates.
func (c *Config) DuplicatePolicy() (table.DuplicatePolicy, error) {
	p, err := table.ParseDuplicatePolicy(c.Tables.Duplicates)
	if err != nil {
		return 0, fmt.Errorf("%w: tables.duplicates: %w", ErrInvalid, err)
	}
	return p, nil
}

// Source resolves query.error.
func (c *Config) Source() (table.Source, error) {
	s, err := table.ParseSource(c.Query.Error)
	if err != nil {
		return 0, fmt.Errorf("%w: query.error: %w", ErrInvalid, err)
	}
	return s, nil
}

// Representation resolves query.error_type.
func (c *Config) Representation() (errband.Representation, error) {
	r, err := errband.ParseRepresentation(c.Query.ErrorType)
	if err != nil {
		return 0, fmt.Errorf("%w: query.error_type: %w", ErrInvalid, err)
	}
	return r, nil
}

func (c *Config) level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return 0, fmt.Errorf("%w: log.level %q (use debug, info, warn or error)", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

// TablesFS returns the tree named by tables.root, or the embedded data.
func (c *Config) TablesFS() fs.FS {
	if c.Tables.Root == "" {
		return data.FS
	}
	return os.DirFS(c.Tables.Root)
}

// TableOptions turns the tables section into table.Load options.
// It assumes Validate has passed.
func (c *Config) TableOptions(logger *zap.Logger) []table.Option {
	format, _ := c.XSFormat()
	dup, _ := c.DuplicatePolicy()
	opts := []table.Option{table.WithXSFormat(format), table.WithDuplicatePolicy(dup)}
	if logger != nil {
		opts = append(opts, table.WithLogger(logger))
	}
	return opts
}

// QueryOptions turns the query section into per-call defaults.
// It assumes Validate has passed.
func (c *Config) QueryOptions() []lookup.QueryOption {
	src, _ := c.Source()
	rep, _ := c.Representation()
	return []lookup.QueryOption{lookup.WithError(src), lookup.WithRepresentation(rep)}
}

// Logger builds a zap logger: production encoding for json, development
// encoding for console, at log.level. verbose forces debug.
func (c *Config) Logger(verbose bool) (*zap.Logger, error) {
	lvl, err := c.level()
	if err != nil {
		return nil, err
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	var zc zap.Config
	if strings.ToLower(c.Log.Format) == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("config: build logger: %w", err)
	}
	return logger, nil
}
