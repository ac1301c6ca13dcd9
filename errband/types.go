// SPDX-License-Identifier: MIT

package errband

import (
	"fmt"
	"math"
	"strings"
)

// Representation selects how a band is projected.
//
//   - Value    absolute bounds (center·(1+h), center·(1−l)).
//   - Percent  relative magnitudes in percent (h, l).
//   - Factor   multiplicative factors (1+h, 1−l).
type Representation int

const (
	// Value projects a band into absolute upper and lower bounds.
	Value Representation = iota

	// Percent projects a band into its percent magnitudes.
	Percent

	// Factor projects a band into multiplicative factors around 1.
	Factor
)

// representationNames maps each Representation to its canonical lower-case name.
var representationNames = [...]string{
	Value:   "value",
	Percent: "percent",
	Factor:  "factor",
}

// String returns the canonical name ("value", "percent", "factor").
func (r Representation) String() string {
	if r < Value || r > Factor {
		return fmt.Sprintf("Representation(%d)", int(r))
	}
	return representationNames[r]
}

// Valid reports whether r is one of Value, Percent or Factor.
func (r Representation) Valid() bool {
	return r >= Value && r <= Factor
}

// ParseRepresentation resolves a case-insensitive name into a Representation.
// Unknown names wrap ErrBadRepresentation.
func ParseRepresentation(name string) (Representation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range representationNames {
		if n == key {
			return Representation(i), nil
		}
	}
	return Value, fmt.Errorf("%q (use one of %s): %w",
		name, strings.Join(representationNames[:], ", "), ErrBadRepresentation)
}

// Pair is one projection of a band: the upper side first, then the lower.
type Pair struct {
	High float64
	Low  float64
}

// Band is an asymmetric uncertainty around Center, stored as percent magnitudes.
//
// The zero Band is a valid band with no uncertainty around zero.
type Band struct {
	Center  float64 // central value the band is quoted around
	HighPct float64 // upper relative error in percent, ≥ 0
	LowPct  float64 // lower relative error in percent, ≥ 0
}

// NewBand builds a band around center from two percent errors.
// Signs are dropped: tables quote the lower error both as "-7.8" and "7.8".
func NewBand(center, highPct, lowPct float64) Band {
	return Band{
		Center:  center,
		HighPct: math.Abs(highPct),
		LowPct:  math.Abs(lowPct),
	}
}

// Percent returns (HighPct, LowPct).
func (b Band) Percent() Pair {
	return Pair{High: b.HighPct, Low: b.LowPct}
}

// Factor returns (1 + HighPct/100, 1 − LowPct/100).
func (b Band) Factor() Pair {
	return Pair{
		High: 1 + b.HighPct/100,
		Low:  1 - b.LowPct/100,
	}
}

// Value returns the absolute bounds Center·Factor().
func (b Band) Value() Pair {
	f := b.Factor()
	return Pair{
		High: b.Center * f.High,
		Low:  b.Center * f.Low,
	}
}

// In projects the band into rep.
// Returns ErrBadRepresentation for an unknown rep.
func (b Band) In(rep Representation) (Pair, error) {
	switch rep {
	case Value:
		return b.Value(), nil
	case Percent:
		return b.Percent(), nil
	case Factor:
		return b.Factor(), nil
	default:
		return Pair{}, fmt.Errorf("Band.In(%v): %w", rep, ErrBadRepresentation)
	}
}
