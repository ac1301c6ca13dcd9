// SPDX-License-Identifier: MIT

// Package data embeds the default Higgs cross-section and branching-ratio
// tables in the layout expected by table.Load:
//
//	xs/<energy>/<mode>.txt   mass  σ[pb]  +scale% -scale% +pdf% -pdf%
//	br/*.txt                 header "mH chan +chan -chan …", one row per mass
//
// Numbers follow the LHC Higgs Cross Section Working Group Yellow Reports at
// mH = 120, 125 and 130 GeV (125 GeV only at 14 TeV).
package data

import "embed"

// FS holds the xs and br table trees.
//
//go:embed xs br
var FS embed.FS
