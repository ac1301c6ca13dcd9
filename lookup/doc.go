// SPDX-License-Identifier: MIT

// Package lookup answers the three questions analysis code asks of the
// Yellow Report tables:
//
//	XS    production cross section σ [pb] at (energy, mass, mode)
//	BR    branching ratio at (mass, channel)
//	XSBR  σ×BR with both uncertainties added in quadrature
//
// Each returns the central value and an errband.Pair projected into the
// requested errband.Representation (absolute Value by default) for the
// requested table.Source (Full by default).
//
// 🔎 Matching rules:
//   - energies and masses match exactly as tabulated (no interpolation);
//   - production modes match case-insensitively ("VBF" == "vbf");
//   - decay channels match case-sensitively ("bb" != "BB").
//
// ⚠️ Errors:
//
//	Every failed lookup is a *LookupError naming the bad key and listing every
//	valid alternative. Branch with errors.Is against ErrUnknownEnergy,
//	ErrUnknownMode, ErrUnknownMass, ErrUnknownChannel or ErrUnknownErrorSource.
//
// ⚙️ Usage:
//
//	s, err := lookup.New(os.DirFS(dir))           // or lookup.Default()
//	v, band, err := s.XSBR(8, 125, "ggf", "gamgam",
//	    lookup.WithRepresentation(errband.Percent))
//
// A Store never changes after construction, so one Store may serve any number
// of goroutines without locking. The package-level functions use a default
// Store built once, on first use, from the embedded data.FS unless Init was
// called earlier with another tree.
package lookup
