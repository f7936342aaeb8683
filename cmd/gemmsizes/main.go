// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gemmsizes turns the output of the layout-size GEMM benchmark into a
// speed-gain chart.
//
// Usage:
//
//	gemmsizes file.csv
//
// The input holds three comma-separated rows: data sizes, execution
// times with the usual layout, and execution times with the best
// layout. The chart is written to gemm-sizes-plot.svg in the current
// directory, with reference lines marking the sizes at which the
// working set exceeds each cache level.
package main

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/imrn99/layoutbench/benchchart"
	"github.com/imrn99/layoutbench/benchcsv"
	"github.com/imrn99/layoutbench/benchrel"
)

var (
	red   = color.NRGBA{0xff, 0, 0, 0xff}
	green = color.NRGBA{0, 0xff, 0, 0xff}
	blue  = color.NRGBA{0, 0, 0xff, 0xff}
)

func main() {
	if len(os.Args) != 2 {
		fail("usage: gemmsizes file.csv\n")
	}
	set, err := benchcsv.Load(os.Args[1])
	if err != nil {
		fail("%v\n", err)
	}
	gains, err := benchrel.ComputeSpeedGain(set)
	if err != nil {
		fail("%v\n", err)
	}

	cfg := benchchart.Config{
		Title:  "GEMM: Speed Gain = f(Data Size)",
		XLabel: "Square Matrix Dimension (# of rows/cols)",
		YLabel: "Gain (%)",
		YFixed: true,
		YMin:   -175,
		YMax:   10,
		// Square matrix dimensions at which two double-precision
		// operands no longer fit in the L1 / L2 / L3 caches of the
		// benchmarking machine.
		RefLines: []benchchart.RefLine{
			{X: 64 * math.Sqrt(6), Label: "Exceed L1 Total Size", Color: red, YMin: 0.05, YMax: 0.95},
			{X: 512 * math.Sqrt(3), Label: "Exceed L2 Total Size", Color: green, YMin: 0.05, YMax: 0.95},
			{X: 2048, Label: "Exceed L3 Total Size", Color: blue, YMin: 0.15, YMax: 0.95},
		},
		LegendLeft: true,
	}
	pl, err := benchchart.Render(cfg, set.Sizes,
		benchchart.Series{Values: gains, Color: red})
	if err != nil {
		fail("%v\n", err)
	}
	if err := benchchart.Save(pl, "gemm-sizes-plot.svg"); err != nil {
		fail("%v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
