// SPDX-License-Identifier: MIT

package lookup

import (
	"fmt"
	"io/fs"

	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/katalvlaran/yellowhiggs/table"
)

// Store answers queries against one immutable set of tables.
type Store struct {
	xs *table.XSTable
	br *table.BRTable
}

// New loads the table tree under fsys (see table.Load) and wraps it.
func New(fsys fs.FS, opts ...table.Option) (*Store, error) {
	tabs, err := table.Load(fsys, opts...)
	if err != nil {
		return nil, err
	}
	return NewStore(tabs), nil
}

// NewStore wraps already loaded tables. Panics on nil tables.
func NewStore(tabs *table.Tables) *Store {
	if tabs == nil || tabs.XS == nil || tabs.BR == nil {
		panic("lookup: NewStore(nil tables)")
	}
	return &Store{xs: tabs.XS, br: tabs.BR}
}

// XS returns the production cross section [pb] for mode at (energy, mass) and
// its band for the selected error source and representation.
//
// Validation order: energy → mode → mass → error source.
func (s *Store) XS(energy, mass float64, mode string, opts ...QueryOption) (float64, errband.Pair, error) {
	cfg := newQueryConfig(opts...)
	band, err := s.xsBand(energy, mass, mode, cfg.source)
	if err != nil {
		return 0, errband.Pair{}, err
	}
	p, err := band.In(cfg.rep)
	if err != nil {
		return 0, errband.Pair{}, fmt.Errorf("XS: %w", err)
	}
	return band.Center, p, nil
}

// BR returns the branching ratio of channel at mass and its band in the
// selected representation. The channel name is matched case-sensitively.
func (s *Store) BR(mass float64, channel string, opts ...QueryOption) (float64, errband.Pair, error) {
	cfg := newQueryConfig(opts...)
	e, err := s.brEntry(mass, channel)
	if err != nil {
		return 0, errband.Pair{}, err
	}
	p, err := e.Error.In(cfg.rep)
	if err != nil {
		return 0, errband.Pair{}, fmt.Errorf("BR: %w", err)
	}
	return e.Value, p, nil
}

// XSBR returns σ×BR and its band.
//
// The central value is exactly xs·br. The band is the quadrature sum of the
// cross-section percent error (for the selected source) and the
// branching-ratio percent error, projected around the product.
func (s *Store) XSBR(energy, mass float64, mode, channel string, opts ...QueryOption) (float64, errband.Pair, error) {
	cfg := newQueryConfig(opts...)
	xsBand, err := s.xsBand(energy, mass, mode, cfg.source)
	if err != nil {
		return 0, errband.Pair{}, err
	}
	br, err := s.brEntry(mass, channel)
	if err != nil {
		return 0, errband.Pair{}, err
	}

	central := xsBand.Center * br.Value
	p, err := errband.Combine([]errband.Pair{xsBand.Percent(), br.Error.Percent()}, cfg.rep, central)
	if err != nil {
		return 0, errband.Pair{}, fmt.Errorf("XSBR: %w", err)
	}
	return central, p, nil
}

// xsBand validates (energy, mode, mass, source) and returns the band.
func (s *Store) xsBand(energy, mass float64, mode string, src table.Source) (errband.Band, error) {
	if !s.xs.HasEnergy(energy) {
		return errband.Band{}, &LookupError{
			Kind:  KindEnergy,
			Key:   formatNumber(energy),
			Valid: formatNumbers(s.xs.Energies()),
		}
	}
	if !s.xs.HasMode(energy, mode) {
		return errband.Band{}, &LookupError{
			Kind:    KindMode,
			Key:     mode,
			Context: fmt.Sprintf("energy %s TeV", formatNumber(energy)),
			Valid:   s.xs.Modes(energy),
		}
	}
	e, ok := s.xs.Lookup(energy, mode, mass)
	if !ok {
		return errband.Band{}, &LookupError{
			Kind:    KindMass,
			Key:     formatNumber(mass),
			Context: fmt.Sprintf("production mode %q at %s TeV", table.FoldMode(mode), formatNumber(energy)),
			Valid:   formatNumbers(s.xs.Masses(energy, mode)),
		}
	}
	band, ok := e.Error(src)
	if !ok {
		valid := make([]string, 0, 3)
		for _, have := range e.Sources() {
			valid = append(valid, have.String())
		}
		return errband.Band{}, &LookupError{
			Kind:    KindErrorSource,
			Key:     src.String(),
			Context: fmt.Sprintf("production mode %q at %s TeV", table.FoldMode(mode), formatNumber(energy)),
			Valid:   valid,
		}
	}
	return band, nil
}

// brEntry validates (channel, mass) and returns the entry.
func (s *Store) brEntry(mass float64, channel string) (table.BREntry, error) {
	if !s.br.HasChannel(channel) {
		return table.BREntry{}, &LookupError{
			Kind:  KindChannel,
			Key:   channel,
			Valid: s.br.Channels(),
		}
	}
	e, ok := s.br.Lookup(channel, mass)
	if !ok {
		return table.BREntry{}, &LookupError{
			Kind:    KindMass,
			Key:     formatNumber(mass),
			Context: fmt.Sprintf("channel %q", channel),
			Valid:   formatNumbers(s.br.Masses(channel)),
		}
	}
	return e, nil
}

// Energies lists tabulated energies [TeV] in ascending order.
func (s *Store) Energies() []float64 { return s.xs.Energies() }

// Modes maps every energy to its sorted, folded production modes.
// The map is a fresh copy on each call.
func (s *Store) Modes() map[float64][]string {
	out := make(map[float64][]string)
	for _, e := range s.xs.Energies() {
		out[e] = s.xs.Modes(e)
	}
	return out
}

// ModesAt lists the production modes tabulated at energy.
func (s *Store) ModesAt(energy float64) ([]string, error) {
	if !s.xs.HasEnergy(energy) {
		return nil, &LookupError{Kind: KindEnergy, Key: formatNumber(energy), Valid: formatNumbers(s.xs.Energies())}
	}
	return s.xs.Modes(energy), nil
}

// Masses lists the masses tabulated for mode at energy.
func (s *Store) Masses(energy float64, mode string) ([]float64, error) {
	modes, err := s.ModesAt(energy)
	if err != nil {
		return nil, err
	}
	if !s.xs.HasMode(energy, mode) {
		return nil, &LookupError{
			Kind:    KindMode,
			Key:     mode,
			Context: fmt.Sprintf("energy %s TeV", formatNumber(energy)),
			Valid:   modes,
		}
	}
	return s.xs.Masses(energy, mode), nil
}

// Channels lists the decay channels in lexical order.
func (s *Store) Channels() []string { return s.br.Channels() }

// ChannelMasses lists the masses tabulated for channel.
func (s *Store) ChannelMasses(channel string) ([]float64, error) {
	if !s.br.HasChannel(channel) {
		return nil, &LookupError{Kind: KindChannel, Key: channel, Valid: s.br.Channels()}
	}
	return s.br.Masses(channel), nil
}
