// SPDX-License-Identifier: MIT
// Package table_test covers discovery and merging in Load.
package table_test

import (
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/yellowhiggs/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestLoad_Fixture checks energies, folded modes, masses and merged channels.
func TestLoad_Fixture(t *testing.T) {
	tabs, err := table.Load(fixtureFS())
	require.NoError(t, err)

	if diff := cmp.Diff([]float64{7, 8}, tabs.XS.Energies()); diff != "" {
		t.Errorf("energies (-want +got):\n%s", diff)
	}
	assert.Equal(t, []string{"ggf", "vbf"}, tabs.XS.Modes(7))
	assert.Equal(t, []string{"ggf"}, tabs.XS.Modes(8))
	assert.Nil(t, tabs.XS.Modes(13))
	assert.Equal(t, []float64{120, 125}, tabs.XS.Masses(7, "GGF"))
	assert.Equal(t, 4, tabs.XS.Len())

	e, ok := tabs.XS.Lookup(7, "VbF", 125)
	require.True(t, ok)
	assert.Equal(t, 1.211, e.Value)

	_, ok = tabs.XS.Get(table.XSKey{Energy: 7, Mode: "VBF", Mass: 125})
	assert.False(t, ok, "Get expects a folded mode")

	assert.Equal(t, []string{"WW", "ZZ", "bb"}, tabs.BR.Channels())
	assert.Equal(t, []float64{120, 125}, tabs.BR.Masses("WW"))
	assert.True(t, tabs.BR.HasChannel("bb"))
	assert.False(t, tabs.BR.HasChannel("BB"))
	assert.Equal(t, 5, tabs.BR.Len())

	zz, ok := tabs.BR.Lookup("ZZ", 125)
	require.True(t, ok)
	assert.Equal(t, 0.0264, zz.Value)
	assert.Zero(t, zz.Error.HighPct)
	assert.Zero(t, zz.Error.LowPct)
}

// TestLoad_IndexesAreCopies verifies callers cannot mutate the table through listings.
func TestLoad_IndexesAreCopies(t *testing.T) {
	tabs, err := table.Load(fixtureFS())
	require.NoError(t, err)

	modes := tabs.XS.Modes(7)
	modes[0] = "mutated"
	assert.Equal(t, []string{"ggf", "vbf"}, tabs.XS.Modes(7))

	chans := tabs.BR.Channels()
	chans[0] = "mutated"
	assert.Equal(t, "WW", tabs.BR.Channels()[0])
}

// TestLoad_ParseErrorNamesFile stamps the file path on parser errors.
func TestLoad_ParseErrorNamesFile(t *testing.T) {
	fsys := fixtureFS()
	fsys["xs/8/tth.txt"] = file("125 0.1293 3.8 -9.3 oops -8.1\n")

	_, err := table.Load(fsys)
	require.ErrorIs(t, err, table.ErrParse)

	var pe *table.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "xs/8/tth.txt", pe.Source)
	assert.Equal(t, 1, pe.Line)
	assert.Contains(t, err.Error(), "xs/8/tth.txt:1")
}

// TestLoad_BRParseErrorNamesFile does the same for br files.
func TestLoad_BRParseErrorNamesFile(t *testing.T) {
	fsys := fixtureFS()
	fsys["br/zz_bad.txt"] = file("mH gg\n125 lots\n")

	_, err := table.Load(fsys)
	var pe *table.ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "br/zz_bad.txt", pe.Source)
	assert.Equal(t, 2, pe.Line)
}

// TestLoad_LayoutErrors covers missing directories and bad energy names.
func TestLoad_LayoutErrors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
		want error
	}{
		{"no xs", fstest.MapFS{"br/a.txt": file("mH bb\n125 0.5\n")}, table.ErrLayout},
		{"no br", fstest.MapFS{"xs/7/ggf.txt": file("125 1 1 1 1 1\n")}, table.ErrLayout},
		{"energy not a number", fstest.MapFS{
			"xs/seven/ggf.txt": file("125 1 1 1 1 1\n"),
			"br/a.txt":         file("mH bb\n125 0.5\n"),
		}, table.ErrLayout},
		{"negative energy", fstest.MapFS{
			"xs/-7/ggf.txt": file("125 1 1 1 1 1\n"),
			"br/a.txt":      file("mH bb\n125 0.5\n"),
		}, table.ErrLayout},
		{"same energy twice", fstest.MapFS{
			"xs/8/ggf.txt":   file("125 1 1 1 1 1\n"),
			"xs/8.0/vbf.txt": file("125 1 1 1 1 1\n"),
			"br/a.txt":       file("mH bb\n125 0.5\n"),
		}, table.ErrDuplicate},
		{"modes folding together", fstest.MapFS{
			"xs/8/ggf.txt": file("125 1 1 1 1 1\n"),
			"xs/8/GGF.txt": file("125 1 1 1 1 1\n"),
			"br/a.txt":     file("mH bb\n125 0.5\n"),
		}, table.ErrDuplicate},
		{"empty mode name", fstest.MapFS{
			"xs/8/.ggf.txt": file("125 1 1 1 1 1\n"),
			"br/a.txt":      file("mH bb\n125 0.5\n"),
		}, table.ErrLayout},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.Load(tc.fsys)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

// TestLoad_ModeNameStopsAtFirstDot keeps "ggf" from "ggf.nnlo.txt".
func TestLoad_ModeNameStopsAtFirstDot(t *testing.T) {
	fsys := fstest.MapFS{
		"xs/13.6/ggF.nnlo.txt": file("125 52.23 4.6 -6.7 3.2 -3.2\n"),
		"br/a.txt":             file("mH bb\n125 0.58\n"),
	}
	tabs, err := table.Load(fsys)
	require.NoError(t, err)
	assert.Equal(t, []float64{13.6}, tabs.XS.Energies())
	assert.Equal(t, []string{"ggf"}, tabs.XS.Modes(13.6))
}

// TestLoad_XSFormatOption parses every file with the configured layout.
func TestLoad_XSFormatOption(t *testing.T) {
	fsys := fstest.MapFS{
		"xs/7/ggf.txt": file("125 15.13 14.7 -14.9\n"),
		"br/a.txt":     file("mH bb\n125 0.58\n"),
	}
	_, err := table.Load(fsys)
	require.ErrorIs(t, err, table.ErrFieldCount, "default format wants six fields")

	tabs, err := table.Load(fsys, table.WithXSFormat(table.FormatFull))
	require.NoError(t, err)
	e, ok := tabs.XS.Lookup(7, "ggf", 125)
	require.True(t, ok)
	full, ok := e.Error(table.Full)
	require.True(t, ok)
	assert.Equal(t, 14.9, full.LowPct)
}

// duplicateFS defines "bb" in two br files.
func duplicateFS() fstest.MapFS {
	fsys := fixtureFS()
	fsys["br/zz_override.txt"] = file("mH bb +bb -bb\n130 0.494 3.6 -3.7\n")
	return fsys
}

// TestLoad_DuplicateWarn keeps the later file and logs a warning naming both files.
func TestLoad_DuplicateWarn(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	tabs, err := table.Load(duplicateFS(), table.WithLogger(zap.New(core)))
	require.NoError(t, err)

	assert.Equal(t, []float64{130}, tabs.BR.Masses("bb"), "later file replaces the whole channel")
	_, ok := tabs.BR.Lookup("bb", 125)
	assert.False(t, ok)

	entries := logs.FilterField(zap.String("channel", "bb")).All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "br/fermions.txt", fields["previous"])
	assert.Equal(t, "br/zz_override.txt", fields["file"])
}

// TestLoad_DuplicateReject fails the load instead.
func TestLoad_DuplicateReject(t *testing.T) {
	_, err := table.Load(duplicateFS(), table.WithDuplicatePolicy(table.DuplicateReject))
	require.ErrorIs(t, err, table.ErrDuplicate)
	assert.Contains(t, err.Error(), `"bb"`)
}

// TestLoad_OptionPanics verifies option constructors reject meaningless values.
func TestLoad_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { table.WithLogger(nil) })
	assert.Panics(t, func() { table.WithXSFormat(table.XSFormat(-1)) })
	assert.Panics(t, func() { table.WithDuplicatePolicy(table.DuplicatePolicy(5)) })
}
