// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the measurement files produced by the layout
// comparison benchmarks.
//
// A measurement file holds exactly three comma-separated rows: the data
// sizes, the measurements taken with the usual (naive) data layout, and
// the measurements taken with the best layout. The three rows must have
// the same number of values; values at the same position belong to the
// same run.
package benchcsv

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// A MeasurementSet holds the three aligned series parsed from one
// measurement file. The slices are index-aligned: Baseline[i] and
// Optimized[i] were measured at data size Sizes[i]. A MeasurementSet is
// not modified after Read returns it.
type MeasurementSet struct {
	Sizes     []int
	Baseline  []float64
	Optimized []float64
}

// Len returns the number of measurement points.
func (s *MeasurementSet) Len() int { return len(s.Sizes) }

// A SyntaxError reports malformed input: a missing row, an unparsable
// or empty value, or rows whose lengths disagree.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// Load reads and parses the measurement file at path.
func Load(path string) (*MeasurementSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, path)
}

// Read parses the three-row format from r. fileName is used in error
// messages; it is purely diagnostic.
func Read(r io.Reader, fileName string) (*MeasurementSet, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}

	sc := bufio.NewScanner(r)
	var rows [][]string
	line := 0
	for sc.Scan() {
		line++
		if len(rows) < 3 {
			rows = append(rows, splitRow(sc.Text()))
			continue
		}
		// Tolerate trailing blank lines, nothing else.
		if strings.TrimSpace(sc.Text()) != "" {
			return nil, &SyntaxError{fileName, line, "unexpected content after row 3"}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s:%d: %w", fileName, line, err)
	}
	if len(rows) < 3 {
		return nil, &SyntaxError{fileName, line, fmt.Sprintf("input has %d rows, expected 3", len(rows))}
	}

	n := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != n {
			return nil, &SyntaxError{fileName, i + 2, fmt.Sprintf("row %d has %d values, expected %d", i+2, len(row), n)}
		}
	}

	sizes, err := parseInts(rows[0], fileName, 1)
	if err != nil {
		return nil, err
	}
	baseline, err := parseFloats(rows[1], fileName, 2)
	if err != nil {
		return nil, err
	}
	optimized, err := parseFloats(rows[2], fileName, 3)
	if err != nil {
		return nil, err
	}

	return &MeasurementSet{Sizes: sizes, Baseline: baseline, Optimized: optimized}, nil
}

// splitRow splits a raw line into comma-separated values, dropping
// incidental whitespace around each value. A blank line has no values.
func splitRow(line string) []string {
	if strings.TrimSpace(line) == "" {
		return nil
	}
	vals := strings.Split(line, ",")
	for i, v := range vals {
		vals[i] = strings.TrimSpace(v)
	}
	return vals
}

func parseInts(vals []string, fileName string, line int) ([]int, error) {
	out := make([]int, len(vals))
	for i, v := range vals {
		if v == "" {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("row %d value %d is empty", line, i+1)}
		}
		x, err := strconv.Atoi(v)
		if err != nil {
			return nil, &SyntaxError{fileName, line, "parsing size " + strconv.Quote(v) + ": " + numErr(err)}
		}
		out[i] = x
	}
	return out, nil
}

func parseFloats(vals []string, fileName string, line int) ([]float64, error) {
	out := make([]float64, len(vals))
	for i, v := range vals {
		if v == "" {
			return nil, &SyntaxError{fileName, line, fmt.Sprintf("row %d value %d is empty", line, i+1)}
		}
		x, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, &SyntaxError{fileName, line, "parsing measurement " + strconv.Quote(v) + ": " + numErr(err)}
		}
		out[i] = x
	}
	return out, nil
}

// numErr strips the strconv noise from a NumError; the diagnostic
// already quotes the offending value.
func numErr(err error) string {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err.Error()
	}
	return err.Error()
}
