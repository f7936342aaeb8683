// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// A vline draws a vertical rule at a fixed data-X position, covering a
// fractional span of the plot height. It marks fixed thresholds such as
// the data size at which a working set exceeds a cache level.
type vline struct {
	x          float64
	color      color.Color
	ymin, ymax float64 // fractional extent of the plot height
	width      vg.Length
}

func newVLine(rl RefLine) *vline {
	ymin, ymax := rl.YMin, rl.YMax
	if ymin == 0 && ymax == 0 {
		ymax = 1
	}
	c := rl.Color
	if c == nil {
		c = color.Black
	}
	return &vline{x: rl.X, color: c, ymin: ymin, ymax: ymax, width: vg.Points(1)}
}

// Plot implements plot.Plotter.
func (v *vline) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(v.x)
	if !c.ContainsX(x) {
		return
	}
	h := c.Max.Y - c.Min.Y
	y0 := c.Min.Y + vg.Length(v.ymin)*h
	y1 := c.Min.Y + vg.Length(v.ymax)*h
	c.StrokeLine2(draw.LineStyle{Color: v.color, Width: v.width}, x, y0, x, y1)
}

// DataRange implements plot.DataRanger so the X axis always covers the
// rule. The Y extent is fractional, so the rule claims no Y range.
func (v *vline) DataRange() (xmin, xmax, ymin, ymax float64) {
	return v.x, v.x, math.Inf(1), math.Inf(-1)
}

// Thumbnail implements plot.Thumbnailer for the legend.
func (v *vline) Thumbnail(c *draw.Canvas) {
	x := (c.Min.X + c.Max.X) / 2
	c.StrokeLine2(draw.LineStyle{Color: v.color, Width: v.width}, x, c.Min.Y, x, c.Max.Y)
}
