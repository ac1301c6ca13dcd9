// SPDX-License-Identifier: MIT

package chart

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Format is the encoding of the rendered image: PNG, SVG or PDF.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
	PDF Format = "pdf"
)

// ParseFormat resolves "png", "svg" or "pdf", case-insensitively.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	switch f {
	case PNG, SVG, PDF:
		return f, nil
	}
	return "", fmt.Errorf("%q (use png, svg or pdf): %w", name, ErrBadImageFormat)
}

// Option customises Render.
type Option func(*renderConfig)

type renderConfig struct {
	format Format
	width  vg.Length
	height vg.Length
	title  string
	yLabel string
	label  string
}

func newRenderConfig(opts ...Option) renderConfig {
	cfg := renderConfig{
		format: PNG,
		width:  vg.Points(800),
		height: vg.Points(400),
		yLabel: "σ [pb]",
		label:  "central",
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFormat selects the output encoding. Panics on an unknown format.
func WithFormat(f Format) Option {
	if _, err := ParseFormat(string(f)); err != nil {
		panic("chart: WithFormat(" + string(f) + ")")
	}
	return func(c *renderConfig) { c.format = f }
}

// WithSize sets the canvas size in points. Panics on non-positive sizes.
func WithSize(width, height float64) Option {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("chart: WithSize(%g, %g)", width, height))
	}
	return func(c *renderConfig) { c.width, c.height = vg.Points(width), vg.Points(height) }
}

// WithTitle sets the plot title.
func WithTitle(title string) Option {
	return func(c *renderConfig) { c.title = title }
}

// WithQuery titles the plot and labels the axes after q.
func WithQuery(q Query) Option {
	return func(c *renderConfig) {
		c.title = q.Label()
		c.label = q.Label()
		if q.Channel != "" {
			c.yLabel = "σ×BR [pb]"
		}
	}
}

var (
	centralColor = color.RGBA{B: 255, A: 255}
	bandColor    = color.RGBA{R: 255, G: 165, A: 255}
)

// Render draws pts (ascending in mass) and returns the encoded image.
func Render(pts []Point, opts ...Option) ([]byte, error) {
	if len(pts) == 0 {
		return nil, ErrNoPoints
	}
	cfg := newRenderConfig(opts...)

	central := make(plotter.XYs, len(pts))
	high := make(plotter.XYs, len(pts))
	low := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		central[i] = plotter.XY{X: pt.Mass, Y: pt.Value}
		high[i] = plotter.XY{X: pt.Mass, Y: pt.Band.High}
		low[i] = plotter.XY{X: pt.Mass, Y: pt.Band.Low}
	}

	p := plot.New()
	p.Title.Text = cfg.title
	p.X.Label.Text = "m_H [GeV]"
	p.Y.Label.Text = cfg.yLabel
	p.Add(plotter.NewGrid())

	line, marks, err := plotter.NewLinePoints(central)
	if err != nil {
		return nil, fmt.Errorf("Render: central: %w", err)
	}
	line.Color = centralColor
	line.LineStyle.Width = vg.Points(1.5)
	marks.Color = centralColor
	p.Add(line, marks)
	p.Legend.Add(cfg.label, line, marks)

	for _, side := range []struct {
		name string
		xys  plotter.XYs
	}{{"upper", high}, {"lower", low}} {
		l, err := plotter.NewLine(side.xys)
		if err != nil {
			return nil, fmt.Errorf("Render: %s band: %w", side.name, err)
		}
		l.Color = bandColor
		l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(5)}
		p.Add(l)
		p.Legend.Add(side.name, l)
	}
	p.Legend.Top = true
	p.Legend.XOffs = -vg.Points(10)

	w, err := p.WriterTo(cfg.width, cfg.height, string(cfg.format))
	if err != nil {
		return nil, fmt.Errorf("Render: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("Render: encode %s: %w", cfg.format, err)
	}
	return buf.Bytes(), nil
}
