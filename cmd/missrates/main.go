// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Missrates charts the cache miss-rates measured for the usual and the
// best data layout of the GEMM kernel.
//
// Usage:
//
//	missrates file.csv
//
// The input holds three comma-separated rows: data sizes, miss-rates
// with the usual layout, and miss-rates with the best layout. The chart
// is written to cache-miss-rates.svg in the current directory, and the
// relative miss-rate delta between the two layouts is printed as CSV on
// standard output.
package main

import (
	"encoding/csv"
	"fmt"
	"image/color"
	"os"
	"strconv"

	"gonum.org/v1/plot/vg/draw"

	"github.com/imrn99/layoutbench/benchchart"
	"github.com/imrn99/layoutbench/benchcsv"
	"github.com/imrn99/layoutbench/benchrel"
)

func main() {
	if len(os.Args) != 2 {
		fail("usage: missrates file.csv\n")
	}
	set, err := benchcsv.Load(os.Args[1])
	if err != nil {
		fail("%v\n", err)
	}
	deltas, err := benchrel.ComputeMissRateDelta(set)
	if err != nil {
		fail("%v\n", err)
	}

	cfg := benchchart.Config{
		Title:  "GEMM: L1 Cache Miss-Rate Evolution = f(Data Size)",
		XLabel: "Square Matrix Dimension (# of rows/cols)",
		YLabel: "Miss-Rate (%)",
	}
	pl, err := benchchart.Render(cfg, set.Sizes,
		benchchart.Series{
			Name:   "usual-layout",
			Values: set.Baseline,
			Color:  color.NRGBA{0xff, 0, 0, 0xff},
			Shape:  draw.PlusGlyph{},
		},
		benchchart.Series{
			Name:   "best-layout",
			Values: set.Optimized,
			Color:  color.NRGBA{0, 0, 0xff, 0xff},
			Shape:  draw.CrossGlyph{},
		})
	if err != nil {
		fail("%v\n", err)
	}
	if err := benchchart.Save(pl, "cache-miss-rates.svg"); err != nil {
		fail("%v\n", err)
	}

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"size", benchrel.MissRateDelta.String()})
	for i, d := range deltas {
		w.Write([]string{strconv.Itoa(set.Sizes[i]), strconv.FormatFloat(d, 'g', -1, 64)})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		fail("%v\n", err)
	}
}

func fail(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}
