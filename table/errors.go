// SPDX-License-Identifier: MIT
// Package table: sentinel errors and the ParseError type.
//
// Error policy:
//   • Callers branch with errors.Is(err, ErrX).
//   • Every content problem surfaces as *ParseError, which matches ErrParse and
//     unwraps to its cause (strconv.ErrSyntax, ErrFieldCount, …).
//   • Layout and duplicate problems are wrapped with %w and file context.

package table

import (
	"errors"
	"fmt"
)

var (
	// ErrParse matches every *ParseError.
	ErrParse = errors.New("table: line not understood")

	// ErrLayout indicates the table tree does not follow xs/<energy>/<mode>.txt, br/*.txt.
	ErrLayout = errors.New("table: unexpected table layout")

	// ErrDuplicate indicates a key (energy, mode, channel or mass) defined twice.
	ErrDuplicate = errors.New("table: duplicate definition")

	// ErrBadFormat indicates an unknown XSFormat or DuplicatePolicy.
	ErrBadFormat = errors.New("table: unknown format")

	// ErrFieldCount indicates a row with the wrong number of fields.
	ErrFieldCount = errors.New("table: wrong number of fields")

	// ErrNonFinite indicates a NaN or ±Inf field.
	ErrNonFinite = errors.New("table: NaN or Inf field")

	// ErrOutOfRange indicates a value outside its physical domain
	// (negative cross section or mass, branching ratio outside [0,1]).
	ErrOutOfRange = errors.New("table: value out of range")

	// ErrOrphanErrorColumn indicates a "+X"/"-X" column with no "X" column.
	ErrOrphanErrorColumn = errors.New("table: error column without channel")

	// ErrNoHeader indicates a branching-ratio table with no header line.
	ErrNoHeader = errors.New("table: missing header")
)

// ParseError reports a malformed table line.
//
// Source is the file path inside the loaded fs.FS (empty when parsing a bare
// reader), Line the 1-based line number and Text the offending line as read.
type ParseError struct {
	Source string
	Line   int
	Text   string
	Err    error
}

// Error renders "table: <source>:<line>: line not understood: "<text>": <cause>".
func (e *ParseError) Error() string {
	where := fmt.Sprintf("line %d", e.Line)
	if e.Source != "" {
		where = fmt.Sprintf("%s:%d", e.Source, e.Line)
	}
	return fmt.Sprintf("table: %s: line not understood: %q: %v", where, e.Text, e.Err)
}

// Unwrap exposes the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

// Is makes every ParseError match ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// parseErrorf builds a *ParseError whose cause wraps sentinel with a message.
func parseErrorf(line int, text string, sentinel error, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Line: line,
		Text: text,
		Err:  fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel),
	}
}

// withSource stamps the file path on a *ParseError found anywhere in err.
func withSource(err error, source string) error {
	var pe *ParseError
	if errors.As(err, &pe) && pe.Source == "" {
		pe.Source = source
	}
	return err
}
