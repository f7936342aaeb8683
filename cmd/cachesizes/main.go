// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Cachesizes is the quick-look variant of gemmsizes: it computes the
// same speed-gain series but plots it as a connected line with
// automatic axis ranges, for eyeballing a fresh benchmark run.
//
// Usage:
//
//	cachesizes file.csv
//
// The chart is written to cache-sizes.png in the current directory and
// the computed series is printed as CSV on standard output.
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/imrn99/layoutbench/benchchart"
	"github.com/imrn99/layoutbench/benchcsv"
	"github.com/imrn99/layoutbench/benchrel"
)

func main() {
	if len(os.Args) != 2 {
		fail("usage: cachesizes file.csv\n")
	}
	set, err := benchcsv.Load(os.Args[1])
	if err != nil {
		fail("%v\n", err)
	}
	gains, err := benchrel.ComputeSpeedGain(set)
	if err != nil {
		fail("%v\n", err)
	}

	pl, err := benchchart.Render(benchchart.Config{},
		set.Sizes, benchchart.Series{Values: gains, Style: benchchart.Line})
	if err != nil {
		fail("%v\n", err)
	}
	if err := benchchart.Save(pl, "cache-sizes.png"); err != nil {
		fail("%v\n", err)
	}

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"size", benchrel.SpeedGain.String()})
	for i, g := range gains {
		w.Write([]string{strconv.Itoa(set.Sizes[i]), strconv.FormatFloat(g, 'g', -1, 64)})
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
