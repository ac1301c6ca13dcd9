// SPDX-License-Identifier: MIT

// Package table parses Higgs cross-section and branching-ratio text tables
// into immutable, flat, composite-key lookup tables.
//
// 🚀 What lives here?
//
//	  • ParseXS  one production mode at one energy: rows of
//	    "mass value errors…" in one of three explicit XSFormats.
//	  • ParseBR  a header-driven branching-ratio table whose "+X"/"-X"
//	    columns carry the upper/lower percent error of channel X.
//	  • Load     walks an fs.FS laid out as
//
//	        xs/<energy>/<mode>.txt   energy in TeV, mode = file base name
//	        br/*.txt                 merged by channel
//
//	    and returns Tables{XS, BR}.
//
// ✨ Guarantees:
//   - A malformed line aborts the whole load with a *ParseError naming the
//     file, line number and line text; there is no partial table.
//   - XSTable is keyed by XSKey{Energy, Mode, Mass}; BRTable by (channel, mass).
//     Neither exposes a mutator, so both are safe for concurrent readers.
//   - Mode names are folded to lower case at load; channel names are kept
//     exactly as written in the header.
//
// ⚙️ Usage:
//
//	tabs, err := table.Load(os.DirFS("/opt/yellowhiggs"),
//	    table.WithXSFormat(table.FormatScalePDF),
//	    table.WithDuplicatePolicy(table.DuplicateReject),
//	    table.WithLogger(logger),
//	)
//	e, ok := tabs.XS.Lookup(8, "ggf", 125)
//
// Errors:
//
//	ErrParse        malformed table content (always a *ParseError).
//	ErrLayout       directory layout does not match xs/<energy>/, br/.
//	ErrDuplicate    the same mode, channel, energy or mass defined twice.
//	ErrBadFormat    unknown XSFormat or DuplicatePolicy name.
package table
