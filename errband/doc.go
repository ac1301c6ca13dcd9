// SPDX-License-Identifier: MIT

// Package errband models asymmetric uncertainty bands around a central value
// and combines several of them in quadrature.
//
// 🚀 What is an error band?
//
//	Every tabulated cross section or branching ratio carries an upper and a
//	lower relative uncertainty, quoted in percent. The same band can be read
//	three ways:
//	  • percent  (high%, low%), both non-negative magnitudes
//	  • factor   (1 + high%/100, 1 − low%/100)
//	  • value    (center·factor_high, center·factor_low)
//
// ✨ Key points:
//   - Band stores only the percent pair; Factor and Value are derived on
//     demand, so the three projections can never drift apart.
//   - Combine adds any number of percent pairs in quadrature, side by side,
//     and projects the total into the requested Representation.
//   - No state, no I/O, no allocation beyond the returned values.
//
// ⚙️ Usage:
//
//	b := errband.NewBand(15.32, 14.7, 14.7)
//	hi, _ := b.In(errband.Value)      // absolute upper/lower bounds
//
//	tot, err := errband.Combine(
//	    []errband.Pair{{High: 10, Low: 8}, {High: 5, Low: 6}},
//	    errband.Percent, 1.0)
//
// Combine never validates signs: callers hand it magnitudes (the table
// parsers take absolute values on load).
package errband
