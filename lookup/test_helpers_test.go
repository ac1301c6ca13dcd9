// SPDX-License-Identifier: MIT
// Package lookup_test contains shared fixtures.

package lookup_test

import (
	"testing"
	"testing/fstest"

	"github.com/katalvlaran/yellowhiggs/lookup"
	"github.com/stretchr/testify/require"
)

// fixtureFS holds round numbers so expectations can be checked by hand.
func fixtureFS() fstest.MapFS {
	f := func(s string) *fstest.MapFile { return &fstest.MapFile{Data: []byte(s)} }
	return fstest.MapFS{
		"xs/7/ggf.txt": f("120 10 3 3 4 4\n125 20 6 8 4 2\n"),
		"xs/7/VBF.txt": f("125 2 1 1 2 2\n"),
		"xs/7/wh.txt":  f("125 0.5 0 0 0 0\n"),
		"xs/8/ggf.txt": f("125 25 6 6 4 4\n"),
		"br/a.txt":     f("mH bb +bb -bb\n125 0.5 8 6\n130 0.4 1 1\n"),
		"br/b.txt":     f("mH WW\n125 0.25\n"),
	}
}

// mustStore builds a Store over fixtureFS or fails the test.
func mustStore(t testing.TB) *lookup.Store {
	t.Helper()
	s, err := lookup.New(fixtureFS())
	require.NoError(t, err)
	return s
}
