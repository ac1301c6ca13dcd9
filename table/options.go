// SPDX-License-Identifier: MIT
// Package: table
//
// options.go: functional options for Load.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs
//     (nil logger, unknown format or policy). Load itself never panics.
//   • Options apply in order; later ones override earlier ones.

package table

import "go.uber.org/zap"

// Option customises Load.
type Option func(*loadConfig)

// loadConfig is resolved once per Load call.
type loadConfig struct {
	logger     *zap.Logger
	format     XSFormat
	duplicates DuplicatePolicy
}

// newLoadConfig starts from defaults (no-op logger, FormatScalePDF,
// DuplicateWarn) and applies opts in order.
func newLoadConfig(opts ...Option) loadConfig {
	cfg := loadConfig{
		logger:     zap.NewNop(),
		format:     FormatScalePDF,
		duplicates: DuplicateWarn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithLogger routes load diagnostics (files read, duplicate channels) to l.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("table: WithLogger(nil)")
	}
	return func(c *loadConfig) { c.logger = l }
}

// WithXSFormat selects the cross-section column layout for every xs file.
// Panics on an unknown format.
func WithXSFormat(f XSFormat) Option {
	if !f.Valid() {
		panic("table: WithXSFormat(" + f.String() + ")")
	}
	return func(c *loadConfig) { c.format = f }
}

// WithDuplicatePolicy selects how a channel defined in two br files is handled.
// Panics on an unknown policy.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if !p.Valid() {
		panic("table: WithDuplicatePolicy(" + p.String() + ")")
	}
	return func(c *loadConfig) { c.duplicates = p }
}
