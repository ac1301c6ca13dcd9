// SPDX-License-Identifier: MIT

// Package chart draws mass scans of tabulated cross sections, or of σ×BR,
// together with their uncertainty band.
//
// 🚀 Two steps:
//
//	pts, err := chart.Scan(store, chart.Query{Energy: 8, Mode: "ggf", Channel: "gamgam"})
//	img, err := chart.Render(pts, chart.WithFormat(chart.SVG))
//
// Scan walks every tabulated mass of the mode (and, for σ×BR, only the masses
// the channel also tabulates); nothing is interpolated. Render draws the
// central values as a line with markers and the upper and lower bounds as
// dashed lines, and returns the encoded image.
package chart
