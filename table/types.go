// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/yellowhiggs/errband"
)

// Source names one of the uncertainty components quoted for a cross section.
type Source int

const (
	// Full is the total theory error: read from the table, or the linear sum of Scale and PDF.
	Full Source = iota

	// Scale is the QCD renormalisation/factorisation scale error.
	Scale

	// PDF is the parton-distribution (PDF+αs) error.
	PDF

	numSources
)

var sourceNames = [...]string{Full: "full", Scale: "scale", PDF: "pdf"}

// String returns "full", "scale" or "pdf".
func (s Source) String() string {
	if s < Full || s >= numSources {
		return fmt.Sprintf("Source(%d)", int(s))
	}
	return sourceNames[s]
}

// Sources lists every Source in canonical order.
func Sources() []Source { return []Source{Full, Scale, PDF} }

// ParseSource resolves "full", "scale" or "pdf" (case-insensitive).
func ParseSource(name string) (Source, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range sourceNames {
		if n == key {
			return Source(i), nil
		}
	}
	return Full, fmt.Errorf("error source %q (use one of %s): %w",
		name, strings.Join(sourceNames[:], ", "), ErrBadFormat)
}

// XSFormat is the column layout of a cross-section file. One format is chosen
// per deployment; files are never sniffed.
type XSFormat int

const (
	// FormatScalePDF: mass value +scale -scale +pdf -pdf. Full = scale + pdf, per side.
	FormatScalePDF XSFormat = iota

	// FormatFull: mass value +full -full. Only the Full source is available.
	FormatFull

	// FormatFullScalePDF: mass value +full -full +scale -scale +pdf -pdf.
	FormatFullScalePDF
)

var formatNames = [...]string{
	FormatScalePDF:     "scale_pdf",
	FormatFull:         "full",
	FormatFullScalePDF: "full_scale_pdf",
}

// String returns the config name of the format.
func (f XSFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("XSFormat(%d)", int(f))
	}
	return formatNames[f]
}

// Valid reports whether f is a known format.
func (f XSFormat) Valid() bool { return f >= FormatScalePDF && f <= FormatFullScalePDF }

// Fields is the exact number of whitespace-separated fields per data line.
func (f XSFormat) Fields() int {
	switch f {
	case FormatFull:
		return 4
	case FormatFullScalePDF:
		return 8
	default:
		return 6
	}
}

// ParseXSFormat resolves a config name ("scale_pdf", "full", "full_scale_pdf").
func ParseXSFormat(name string) (XSFormat, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range formatNames {
		if n == key {
			return XSFormat(i), nil
		}
	}
	return FormatScalePDF, fmt.Errorf("xs format %q (use one of %s): %w",
		name, strings.Join(formatNames[:], ", "), ErrBadFormat)
}

// DuplicatePolicy decides what happens when two branching-ratio files define
// the same channel.
type DuplicatePolicy int

const (
	// DuplicateWarn keeps the channel from the file loaded last and logs a warning.
	DuplicateWarn DuplicatePolicy = iota

	// DuplicateReject fails the load with ErrDuplicate.
	DuplicateReject
)

var policyNames = [...]string{DuplicateWarn: "warn", DuplicateReject: "reject"}

// String returns "warn" or "reject".
func (p DuplicatePolicy) String() string {
	if !p.Valid() {
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
	return policyNames[p]
}

// Valid reports whether p is a known policy.
func (p DuplicatePolicy) Valid() bool { return p == DuplicateWarn || p == DuplicateReject }

// ParseDuplicatePolicy resolves "warn" or "reject".
func ParseDuplicatePolicy(name string) (DuplicatePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "warn":
		return DuplicateWarn, nil
	case "reject":
		return DuplicateReject, nil
	}
	return DuplicateWarn, fmt.Errorf("duplicate policy %q (use warn or reject): %w", name, ErrBadFormat)
}

// XSEntry is one tabulated (energy, mode, mass) cross section in pb.
type XSEntry struct {
	Mass  float64 // Higgs mass [GeV]
	Value float64 // central cross section [pb], ≥ 0

	bands [numSources]errband.Band
	has   [numSources]bool
}

// Error returns the band for src and whether the table format provided it.
func (e XSEntry) Error(src Source) (errband.Band, bool) {
	if src < Full || src >= numSources || !e.has[src] {
		return errband.Band{}, false
	}
	return e.bands[src], true
}

// Sources lists the error sources available on this entry, in canonical order.
func (e XSEntry) Sources() []Source {
	out := make([]Source, 0, numSources)
	for _, s := range Sources() {
		if e.has[s] {
			out = append(out, s)
		}
	}
	return out
}

// setBand records the band for src around the entry's central value.
func (e *XSEntry) setBand(src Source, highPct, lowPct float64) {
	e.bands[src] = errband.NewBand(e.Value, highPct, lowPct)
	e.has[src] = true
}

// BREntry is one tabulated (channel, mass) branching ratio.
type BREntry struct {
	Mass  float64      // Higgs mass [GeV]
	Value float64      // branching fraction in [0,1]
	Error errband.Band // (0,0) when the table has no +X/-X columns for the channel
}

// XSKey is the composite key of a cross-section entry. Mode is always folded.
type XSKey struct {
	Energy float64 // √s [TeV]
	Mode   string  // production mode, lower case
	Mass   float64 // Higgs mass [GeV]
}

// FoldMode normalises a production-mode name for storage and lookup.
func FoldMode(mode string) string {
	return strings.ToLower(strings.TrimSpace(mode))
}
