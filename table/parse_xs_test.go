// SPDX-License-Identifier: MIT
// Package table_test covers the cross-section parser.
package table_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/yellowhiggs/errband"
	"github.com/katalvlaran/yellowhiggs/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseXS_ScalePDF checks bands and the linear full = scale + pdf sum.
func TestParseXS_ScalePDF(t *testing.T) {
	in := `# comment
   
125 15.13 7.1 -7.8 7.6 -7.1
# trailing comment
`
	rows, err := table.ParseXS(strings.NewReader(in), table.FormatScalePDF)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	e := rows[125]
	assert.Equal(t, 125.0, e.Mass)
	assert.Equal(t, 15.13, e.Value)
	assert.Equal(t, []table.Source{table.Full, table.Scale, table.PDF}, e.Sources())

	scale, ok := e.Error(table.Scale)
	require.True(t, ok)
	assert.Equal(t, errband.Pair{High: 7.1, Low: 7.8}, scale.Percent())

	pdf, ok := e.Error(table.PDF)
	require.True(t, ok)
	assert.Equal(t, errband.Pair{High: 7.6, Low: 7.1}, pdf.Percent())

	full, ok := e.Error(table.Full)
	require.True(t, ok)
	assert.Equal(t, 7.1+7.6, full.HighPct, "full is a linear sum, not quadrature")
	assert.Equal(t, 7.8+7.1, full.LowPct)
	assert.Equal(t, 15.13, full.Center)
}

// TestParseXS_Full reads the legacy four-column format.
func TestParseXS_Full(t *testing.T) {
	rows, err := table.ParseXS(strings.NewReader("125 15.13 14.7 -14.9\n"), table.FormatFull)
	require.NoError(t, err)

	e := rows[125]
	assert.Equal(t, []table.Source{table.Full}, e.Sources())
	full, ok := e.Error(table.Full)
	require.True(t, ok)
	assert.Equal(t, errband.Pair{High: 14.7, Low: 14.9}, full.Percent())

	_, ok = e.Error(table.Scale)
	assert.False(t, ok, "legacy format carries no scale band")
}

// TestParseXS_FullScalePDF reads full directly instead of summing.
func TestParseXS_FullScalePDF(t *testing.T) {
	rows, err := table.ParseXS(strings.NewReader("125 15.13 14.0 -15.0 7.1 -7.8 7.6 -7.1\n"), table.FormatFullScalePDF)
	require.NoError(t, err)

	full, ok := rows[125].Error(table.Full)
	require.True(t, ok)
	assert.Equal(t, errband.Pair{High: 14.0, Low: 15.0}, full.Percent())
	scale, _ := rows[125].Error(table.Scale)
	assert.Equal(t, errband.Pair{High: 7.1, Low: 7.8}, scale.Percent())
}

// TestParseXS_Errors exercises each rejection with its cause.
func TestParseXS_Errors(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		format table.XSFormat
		cause  error
		line   int
	}{
		{"non-numeric", "125 15.13 7.1 -7.8 abc -7.1\n", table.FormatScalePDF, strconv.ErrSyntax, 1},
		{"too few", "# c\n125 15.13 7.1 -7.8\n", table.FormatScalePDF, table.ErrFieldCount, 2},
		{"too many", "125 15.13 7.1 -7.8 1 2\n", table.FormatFull, table.ErrFieldCount, 1},
		{"nan", "125 NaN 7.1 -7.8 7.6 -7.1\n", table.FormatScalePDF, table.ErrNonFinite, 1},
		{"negative xs", "125 -1 7.1 -7.8 7.6 -7.1\n", table.FormatScalePDF, table.ErrOutOfRange, 1},
		{"zero mass", "0 1 7.1 -7.8 7.6 -7.1\n", table.FormatScalePDF, table.ErrOutOfRange, 1},
		{"repeated mass", "125 1 1 1 1 1\n125.0 2 1 1 1 1\n", table.FormatScalePDF, table.ErrDuplicate, 2},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.ParseXS(strings.NewReader(tc.in), tc.format)
			require.Error(t, err)
			assert.ErrorIs(t, err, table.ErrParse)
			assert.ErrorIs(t, err, tc.cause)

			var pe *table.ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tc.line, pe.Line)
			assert.Contains(t, tc.in, pe.Text)
			assert.Contains(t, err.Error(), pe.Text)
		})
	}
}

// TestParseXS_NonNumericNamesLine pins the message of a conversion failure.
func TestParseXS_NonNumericNamesLine(t *testing.T) {
	_, err := table.ParseXS(strings.NewReader("125 15.13 7.1 -7.8 x7 -7.1\n"), table.FormatScalePDF)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"125 15.13 7.1 -7.8 x7 -7.1"`)
	assert.Contains(t, err.Error(), "line 1")
	assert.Contains(t, err.Error(), `parsing "x7"`)
}

// TestParseXS_BadFormat rejects an unknown format before reading.
func TestParseXS_BadFormat(t *testing.T) {
	_, err := table.ParseXS(strings.NewReader(""), table.XSFormat(9))
	assert.ErrorIs(t, err, table.ErrBadFormat)
}

// TestParseXS_Empty returns an empty map for a comment-only file.
func TestParseXS_Empty(t *testing.T) {
	rows, err := table.ParseXS(strings.NewReader("# nothing\n\n"), table.FormatScalePDF)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
