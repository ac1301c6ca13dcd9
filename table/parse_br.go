// SPDX-License-Identifier: MIT

package table

import (
	"io"
	"strings"

	"github.com/katalvlaran/yellowhiggs/errband"
)

// Sign prefixes that mark a column as the upper or lower error of a channel.
const (
	highPrefix = "+"
	lowPrefix  = "-"
)

// brColumns is the decoded header of a branching-ratio table. Column indexes
// count from 0 at the first column after the mass column.
type brColumns struct {
	width    int            // number of value columns
	channels []string       // real channels in header order
	index    map[string]int // channel -> column
	high     map[string]int // channel -> "+channel" column
	low      map[string]int // channel -> "-channel" column
}

// ParseBR reads one branching-ratio file into channel -> mass -> entry.
//
// The first non-blank, non-comment line is the header. Its first column labels
// the mass and is ignored; the rest name channels. A column "+X" ("-X") holds
// the upper (lower) percent error of channel X and is not a channel itself.
// Each following line is "mass v1 v2 …" aligned with the header.
//
// Errors: *ParseError (ErrParse) on a missing header, a repeated column, an
// error column without its channel, a row of the wrong width, a non-numeric
// field, a branching ratio outside [0,1] or a repeated mass.
//
// Complexity: O(lines·columns) time and space.
func ParseBR(r io.Reader) (map[string]map[float64]BREntry, error) {
	var (
		cols   *brColumns
		out    = make(map[string]map[float64]BREntry)
		masses = make(map[float64]bool)
		parsed bool
	)

	err := scanLines(r, func(n int, text string) error {
		fields := strings.Fields(text)
		if !parsed {
			parsed = true
			c, err := parseBRHeader(n, text, fields)
			if err != nil {
				return err
			}
			cols = c
			for _, ch := range cols.channels {
				out[ch] = make(map[float64]BREntry)
			}
			return nil
		}

		if len(fields) != cols.width+1 {
			return parseErrorf(n, text, ErrFieldCount, "got %d fields, want %d", len(fields), cols.width+1)
		}
		vals, err := parseFields(fields)
		if err != nil {
			return &ParseError{Line: n, Text: text, Err: err}
		}
		mass, row := vals[0], vals[1:]
		if mass <= 0 {
			return parseErrorf(n, text, ErrOutOfRange, "mass %g must be positive", mass)
		}
		if masses[mass] {
			return parseErrorf(n, text, ErrDuplicate, "mass %g already tabulated", mass)
		}
		masses[mass] = true

		for _, ch := range cols.channels {
			value := row[cols.index[ch]]
			if value < 0 || value > 1 {
				return parseErrorf(n, text, ErrOutOfRange, "branching ratio %g for %s outside [0,1]", value, ch)
			}
			var high, low float64
			if i, ok := cols.high[ch]; ok {
				high = row[i]
			}
			if i, ok := cols.low[ch]; ok {
				low = row[i]
			}
			out[ch][mass] = BREntry{Mass: mass, Value: value, Error: errband.NewBand(value, high, low)}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed {
		return nil, &ParseError{Err: ErrNoHeader}
	}
	return out, nil
}

// parseBRHeader splits header columns into channels and their error columns.
func parseBRHeader(n int, text string, fields []string) (*brColumns, error) {
	if len(fields) < 2 {
		return nil, parseErrorf(n, text, ErrFieldCount, "header needs a mass label and at least one channel")
	}
	cols := &brColumns{
		width: len(fields) - 1,
		index: make(map[string]int),
		high:  make(map[string]int),
		low:   make(map[string]int),
	}
	seen := make(map[string]bool, cols.width)
	for i, name := range fields[1:] {
		if seen[name] {
			return nil, parseErrorf(n, text, ErrDuplicate, "column %q repeated", name)
		}
		seen[name] = true

		switch {
		case len(name) > 1 && strings.HasPrefix(name, highPrefix):
			cols.high[name[1:]] = i
		case len(name) > 1 && strings.HasPrefix(name, lowPrefix):
			cols.low[name[1:]] = i
		default:
			cols.index[name] = i
			cols.channels = append(cols.channels, name)
		}
	}
	for _, m := range []map[string]int{cols.high, cols.low} {
		for ch := range m {
			if _, ok := cols.index[ch]; !ok {
				return nil, parseErrorf(n, text, ErrOrphanErrorColumn, "no column %q", ch)
			}
		}
	}
	return cols, nil
}
