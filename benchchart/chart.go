// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchchart renders measurement and relative-performance
// series as charts.
//
// The computation packages hand benchchart plain ordered slices;
// everything about appearance (axes, reference lines, legend) travels
// in an explicit Config rather than in hidden package state. The X axis
// is always the data-size axis, drawn logarithmically in base 2.
package benchchart

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A Style selects how a series is drawn.
type Style int

const (
	Scatter Style = iota
	Line
)

// A Series is one ordered sequence of values, index-aligned with the
// sizes passed to Render.
type Series struct {
	Name   string // legend label; empty means no legend entry
	Values []float64
	Style  Style
	Color  color.Color      // nil means black
	Shape  draw.GlyphDrawer // glyph for Scatter; nil means plus
}

// A RefLine is a labeled vertical reference line at a fixed data-X
// position, spanning the fractional vertical extent [YMin, YMax] of the
// plot area. The zero extent means full height.
type RefLine struct {
	X          float64
	Label      string
	Color      color.Color
	YMin, YMax float64
}

// A Config describes one chart. The zero value plots with automatic
// axis ranges, no reference lines, and the default legend placement.
type Config struct {
	Title  string
	XLabel string
	YLabel string

	// Fixed Y range, applied when YFixed is true. Otherwise the range
	// follows the data.
	YFixed     bool
	YMin, YMax float64

	RefLines []RefLine

	// LegendLeft moves the legend to the left edge, vertically
	// centered, for charts whose interesting data crowds the right.
	LegendLeft bool
}

// Render builds a chart of the given series against sizes. Every series
// must have exactly one value per size. An empty sizes slice yields a
// chart with axes and reference lines but no points.
func Render(cfg Config, sizes []int, series ...Series) (*plot.Plot, error) {
	pl := plot.New()
	pl.Title.Text = cfg.Title
	pl.X.Label.Text = cfg.XLabel
	pl.Y.Label.Text = cfg.YLabel

	pl.X.Scale = plot.LogScale{}
	pl.X.Tick.Marker = Pow2Ticks{}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	pl.Add(grid)

	for _, s := range series {
		if len(s.Values) != len(sizes) {
			return nil, fmt.Errorf("series %q has %d values, expected %d", s.Name, len(s.Values), len(sizes))
		}
		xys := make(plotter.XYs, len(sizes))
		for i, sz := range sizes {
			xys[i].X = float64(sz)
			xys[i].Y = s.Values[i]
		}
		var th plot.Thumbnailer
		switch s.Style {
		case Line:
			ln, err := plotter.NewLine(xys)
			if err != nil {
				return nil, err
			}
			if s.Color != nil {
				ln.Color = s.Color
			}
			pl.Add(ln)
			th = ln
		default:
			sc, err := plotter.NewScatter(xys)
			if err != nil {
				return nil, err
			}
			sc.GlyphStyle.Shape = draw.PlusGlyph{}
			if s.Shape != nil {
				sc.GlyphStyle.Shape = s.Shape
			}
			if s.Color != nil {
				sc.GlyphStyle.Color = s.Color
			}
			pl.Add(sc)
			th = sc
		}
		if s.Name != "" {
			pl.Legend.Add(s.Name, th)
		}
	}

	for _, rl := range cfg.RefLines {
		v := newVLine(rl)
		pl.Add(v)
		if rl.Label != "" {
			pl.Legend.Add(rl.Label, v)
		}
	}

	if cfg.YFixed {
		pl.Y.Min, pl.Y.Max = cfg.YMin, cfg.YMax
	}

	// With no points at all the axes never get a finite range.
	if len(sizes) == 0 {
		if len(cfg.RefLines) == 0 {
			pl.X.Min, pl.X.Max = 1, 2
		}
		if !cfg.YFixed {
			pl.Y.Min, pl.Y.Max = 0, 1
		}
	}

	if cfg.LegendLeft {
		pl.Legend.Left = true
		pl.Legend.Top = false
	}

	return pl, nil
}

// Save writes the chart to path; the file extension selects the format
// (.svg, .png, .pdf, ...).
func Save(pl *plot.Plot, path string) error {
	return pl.Save(9*vg.Inch, 6*vg.Inch, path)
}
