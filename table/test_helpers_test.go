// SPDX-License-Identifier: MIT
// Package table_test contains shared fixtures.
//
// Fixtures are small in-memory trees built with fstest.MapFS so every test
// states its own table content.

package table_test

import (
	"testing/fstest"
)

// file wraps text as a MapFS file.
func file(text string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(text)}
}

// fixtureFS is a minimal, valid tree: two energies, three modes, two br files.
func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"xs/7/ggF.txt": file(`# mass xs +scale -scale +pdf -pdf
120 16.65 7.2 -7.9 7.6 -7.1
125 15.13 7.1 -7.8 7.6 -7.1
`),
		"xs/7/VBF.txt": file(`125 1.211 0.2 -0.2 2.6 -2.1
`),
		"xs/8/ggf.txt": file(`125 19.27 7.2 -7.8 7.5 -6.9
`),
		"xs/8/README": file("not a table"),
		"br/bosons.txt": file(`mH WW +WW -WW ZZ
120 0.141 5.0 -4.9 0.0159
125 0.215 4.3 -4.2 0.0264
`),
		"br/fermions.txt": file(`mH bb +bb -bb
125 0.577 3.2 -3.3
`),
	}
}
