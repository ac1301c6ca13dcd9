// Package yellowhiggs is a read-only lookup library for the reference Higgs
// production cross sections and branching ratios published by the LHC Higgs
// Cross Section Working Group ("Yellow Reports").
//
// 🚀 What does it answer?
//
//	Given a collision energy [TeV], a production mode, a Higgs mass [GeV] and
//	a decay channel, it returns the tabulated value together with its
//	asymmetric uncertainty band:
//		• σ       production cross section [pb]
//		• BR      branching ratio
//		• σ×BR    their product, uncertainties added in quadrature
//
// ✨ Key properties:
//
//   - Exact keys only: no interpolation between mass points, no extrapolation
//   - Three projections of every band: absolute value, percent, factor
//   - Tables load once and never change: any number of readers, no locks
//   - Every failed lookup names the bad key and lists the valid ones
//
// Everything is organized under these subpackages:
//
//	errband/          asymmetric bands, projections & quadrature Combine
//	table/            table file parsers, fs.FS discovery, composite-key tables
//	lookup/           Store with XS / BR / XSBR, discovery, process-wide default
//	data/             the embedded default tables
//	config/           YAML settings with YELLOWHIGGS_* overrides
//	chart/            mass-scan plots (PNG, SVG, PDF)
//	cmd/yellowhiggs/  command-line front end
//
// Quick example:
//
//	xs, band, err := lookup.XS(8, 125, "ggF")
//	// xs = 19.27 pb, band = [16.437, 22.103]
//
//	go get github.com/katalvlaran/yellowhiggs
package yellowhiggs
