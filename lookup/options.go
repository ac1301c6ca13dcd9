// SPDX-License-Identifier: MIT

package lookup

import (
	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/katalvlaran/yellowhiggs/table"
)

// QueryOption customises a single XS, BR or XSBR call.
type QueryOption func(*queryConfig)

// queryConfig is resolved per call; zero allocations beyond the closure calls.
type queryConfig struct {
	source table.Source
	rep    errband.Representation
}

// newQueryConfig applies opts over the defaults (Full, Value).
func newQueryConfig(opts ...QueryOption) queryConfig {
	cfg := queryConfig{source: table.Full, rep: errband.Value}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithError selects which cross-section error source to report. BR has a
// single band and ignores it. Panics on an unknown source.
func WithError(src table.Source) QueryOption {
	if src < table.Full || src > table.PDF {
		panic("lookup: WithError(" + src.String() + ")")
	}
	return func(c *queryConfig) { c.source = src }
}

// WithRepresentation selects the projection of the returned band.
// Panics on an unknown representation.
func WithRepresentation(rep errband.Representation) QueryOption {
	if !rep.Valid() {
		panic("lookup: WithRepresentation(" + rep.String() + ")")
	}
	return func(c *queryConfig) { c.rep = rep }
}
