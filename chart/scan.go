// SPDX-License-Identifier: MIT

package chart

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/katalvlaran/yellowhiggs/lookup"
	"github.com/katalvlaran/yellowhiggs/table"
)

// Query selects the curve to scan. An empty Channel scans σ alone.
type Query struct {
	Energy  float64
	Mode    string
	Channel string
	Source  table.Source
}

// Label names the curve, e.g. "ggf 8 TeV" or "ggf→gamgam 8 TeV".
func (q Query) Label() string {
	mode := table.FoldMode(q.Mode)
	if q.Channel == "" {
		return fmt.Sprintf("%s %g TeV", mode, q.Energy)
	}
	return fmt.Sprintf("%s→%s %g TeV", mode, q.Channel, q.Energy)
}

// Point is one mass point of a scan; Band holds absolute bounds.
type Point struct {
	Mass  float64
	Value float64
	Band  errband.Pair
}

// Scan queries s at every tabulated mass of q.Mode in ascending order.
// For σ×BR, masses the channel does not tabulate are skipped; if none
// remain, Scan fails with ErrNoPoints.
func Scan(s *lookup.Store, q Query) ([]Point, error) {
	masses, err := s.Masses(q.Energy, q.Mode)
	if err != nil {
		return nil, err
	}
	if q.Channel != "" {
		if _, err := s.ChannelMasses(q.Channel); err != nil {
			return nil, err
		}
	}

	opts := []lookup.QueryOption{lookup.WithError(q.Source), lookup.WithRepresentation(errband.Value)}
	pts := make([]Point, 0, len(masses))
	for _, m := range masses {
		var (
			v    float64
			band errband.Pair
		)
		if q.Channel == "" {
			v, band, err = s.XS(q.Energy, m, q.Mode, opts...)
		} else {
			v, band, err = s.XSBR(q.Energy, m, q.Mode, q.Channel, opts...)
			if errors.Is(err, lookup.ErrUnknownMass) {
				continue
			}
		}
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{Mass: m, Value: v, Band: band})
	}
	if len(pts) == 0 {
		return nil, fmt.Errorf("Scan(%s): %w", q.Label(), ErrNoPoints)
	}
	return pts, nil
}
