// SPDX-License-Identifier: MIT
// Package lookup: sentinel errors and LookupError.
//
// A LookupError is recoverable: the caller asked for a key that is not
// tabulated. The message always lists the valid alternatives.

package lookup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrUnknownEnergy indicates no cross sections are tabulated at the energy.
	ErrUnknownEnergy = errors.New("lookup: energy not tabulated")

	// ErrUnknownMode indicates the production mode is not tabulated at the energy.
	ErrUnknownMode = errors.New("lookup: production mode not tabulated")

	// ErrUnknownMass indicates the mass point is not tabulated for the mode or channel.
	ErrUnknownMass = errors.New("lookup: mass point not tabulated")

	// ErrUnknownChannel indicates the decay channel is not tabulated.
	ErrUnknownChannel = errors.New("lookup: decay channel not tabulated")

	// ErrUnknownErrorSource indicates the table format did not provide the requested error source.
	ErrUnknownErrorSource = errors.New("lookup: error source not available")
)

// Kind classifies a LookupError.
type Kind int

const (
	KindEnergy Kind = iota
	KindMode
	KindMass
	KindChannel
	KindErrorSource
)

var kindSentinels = [...]error{
	KindEnergy:      ErrUnknownEnergy,
	KindMode:        ErrUnknownMode,
	KindMass:        ErrUnknownMass,
	KindChannel:     ErrUnknownChannel,
	KindErrorSource: ErrUnknownErrorSource,
}

// LookupError reports a key that is not present in the loaded tables.
type LookupError struct {
	Kind    Kind
	Key     string   // the rejected key as the caller gave it
	Context string   // where it was looked up, e.g. `production mode "ggf" at 7 TeV`
	Valid   []string // every key that would have been accepted
}

// Error renders the rejected key, its context and the valid alternatives.
func (e *LookupError) Error() string {
	var b strings.Builder
	switch e.Kind {
	case KindEnergy:
		fmt.Fprintf(&b, "lookup: no cross sections recorded for energy %s TeV", e.Key)
	case KindMode:
		fmt.Fprintf(&b, "lookup: production mode %q not understood", e.Key)
	case KindMass:
		fmt.Fprintf(&b, "lookup: mass point %s GeV not recorded", e.Key)
	case KindChannel:
		fmt.Fprintf(&b, "lookup: channel %q not understood", e.Key)
	case KindErrorSource:
		fmt.Fprintf(&b, "lookup: error source %q not available", e.Key)
	default:
		fmt.Fprintf(&b, "lookup: key %q not found", e.Key)
	}
	if e.Context != "" {
		b.WriteString(" for ")
		b.WriteString(e.Context)
	}
	b.WriteString("; use one of ")
	if len(e.Valid) == 0 {
		b.WriteString("(none tabulated)")
	} else {
		b.WriteString(strings.Join(e.Valid, ", "))
	}
	return b.String()
}

// Unwrap returns the sentinel matching Kind.
func (e *LookupError) Unwrap() error {
	if e.Kind < KindEnergy || e.Kind > KindErrorSource {
		return nil
	}
	return kindSentinels[e.Kind]
}

// formatNumber renders energies and masses the way the tables write them.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// formatNumbers renders a list of energies or masses.
func formatNumbers(vs []float64) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = formatNumber(v)
	}
	return out
}
