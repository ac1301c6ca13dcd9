// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// ParseXS reads one cross-section file: the rows of a single production mode
// at a single energy, keyed by mass.
//
// Every data line must carry exactly format.Fields() numeric fields:
//
//	FormatScalePDF      mass value +scale -scale +pdf -pdf
//	FormatFull          mass value +full -full
//	FormatFullScalePDF  mass value +full -full +scale -scale +pdf -pdf
//
// Error fields are magnitudes (signs are dropped). For FormatScalePDF the Full
// band is the linear sum scale+pdf on each side.
//
// Errors: *ParseError (ErrParse) on a wrong field count, a non-numeric or
// non-finite field, a non-positive mass, a negative value or a repeated mass;
// ErrBadFormat for an unknown format.
//
// Complexity: O(lines) time and space.
func ParseXS(r io.Reader, format XSFormat) (map[float64]XSEntry, error) {
	if !format.Valid() {
		return nil, fmt.Errorf("ParseXS(%v): %w", format, ErrBadFormat)
	}
	want := format.Fields()
	rows := make(map[float64]XSEntry)

	err := scanLines(r, func(n int, text string) error {
		fields := strings.Fields(text)
		if len(fields) != want {
			return parseErrorf(n, text, ErrFieldCount, "got %d fields, want %d for %v", len(fields), want, format)
		}
		vals, err := parseFields(fields)
		if err != nil {
			return &ParseError{Line: n, Text: text, Err: err}
		}

		mass, value := vals[0], vals[1]
		if mass <= 0 {
			return parseErrorf(n, text, ErrOutOfRange, "mass %g must be positive", mass)
		}
		if value < 0 {
			return parseErrorf(n, text, ErrOutOfRange, "cross section %g must be non-negative", value)
		}
		if _, dup := rows[mass]; dup {
			return parseErrorf(n, text, ErrDuplicate, "mass %g already tabulated", mass)
		}
		rows[mass] = newXSEntry(format, mass, value, vals[2:])
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// newXSEntry fills the bands available in format from the error columns.
func newXSEntry(format XSFormat, mass, value float64, errs []float64) XSEntry {
	for i := range errs {
		errs[i] = math.Abs(errs[i])
	}
	e := XSEntry{Mass: mass, Value: value}
	switch format {
	case FormatFull:
		e.setBand(Full, errs[0], errs[1])
	case FormatFullScalePDF:
		e.setBand(Full, errs[0], errs[1])
		e.setBand(Scale, errs[2], errs[3])
		e.setBand(PDF, errs[4], errs[5])
	default:
		e.setBand(Scale, errs[0], errs[1])
		e.setBand(PDF, errs[2], errs[3])
		e.setBand(Full, errs[0]+errs[2], errs[1]+errs[3])
	}
	return e
}
