// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchrel derives relative-performance series from a pair of
// layout measurements.
//
// Given a benchcsv.MeasurementSet, it produces one float64 value per
// measurement point expressing how the usual layout compares to the
// best layout, under one of two metrics. The resulting series is
// index-aligned with the set's sizes, so any rendering backend can
// consume it directly.
package benchrel

import (
	"fmt"

	"github.com/imrn99/layoutbench/benchcsv"
)

// A Metric selects which relative-change formula Compute applies.
type Metric int

const (
	// MissRateDelta expresses how many percent worse the usual
	// layout's cache miss-rate is, relative to the best layout's.
	// Unbounded in both directions.
	MissRateDelta Metric = iota

	// SpeedGain expresses the timing difference as a bounded
	// percentage: zero when the layouts tie, approaching -100 as the
	// usual layout becomes arbitrarily slower.
	SpeedGain
)

func (m Metric) String() string {
	switch m {
	case MissRateDelta:
		return "miss-rate-delta"
	case SpeedGain:
		return "speed-gain"
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// A DivisionByZeroError reports a best-layout measurement of exactly
// zero, for which no relative change is defined.
type DivisionByZeroError struct {
	Index int // index into the measurement set
	Size  int // data size at that index
}

func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("optimized measurement at index %d (size %d) is zero", e.Index, e.Size)
}

// Compute derives the series selected by metric from set. The result
// has length set.Len() and is index-aligned with set.Sizes.
func Compute(set *benchcsv.MeasurementSet, metric Metric) ([]float64, error) {
	switch metric {
	case MissRateDelta:
		return ComputeMissRateDelta(set)
	case SpeedGain:
		return ComputeSpeedGain(set)
	}
	return nil, fmt.Errorf("unknown metric %v", metric)
}

// ComputeMissRateDelta returns 100 * (baseline-optimized) / optimized
// at each point. Positive values mean the usual layout misses more.
func ComputeMissRateDelta(set *benchcsv.MeasurementSet) ([]float64, error) {
	if err := checkNonzero(set); err != nil {
		return nil, err
	}
	out := make([]float64, set.Len())
	for i := range out {
		out[i] = 100 * (set.Baseline[i] - set.Optimized[i]) / set.Optimized[i]
	}
	return out, nil
}

// ComputeSpeedGain returns the bounded timing gain at each point. The
// fractional timing excess (baseline-optimized)/optimized is rescaled
// as
//
//	-10000 * excess / (100 + excess*100)
//
// which maps a tie to 0 and an arbitrarily slower usual layout toward a
// -100 floor instead of diverging. Chart consumers fix their display
// range around this exact shape, so the formula must not be replaced by
// an algebraically simplified variant.
func ComputeSpeedGain(set *benchcsv.MeasurementSet) ([]float64, error) {
	if err := checkNonzero(set); err != nil {
		return nil, err
	}
	out := make([]float64, set.Len())
	for i := range out {
		excess := (set.Baseline[i] - set.Optimized[i]) / set.Optimized[i]
		out[i] = -10000 * excess / (100 + excess*100)
	}
	return out, nil
}

// checkNonzero rejects the whole set if any optimized measurement is
// zero. No partial series is produced; non-finite measurements are left
// for the formulas to propagate.
func checkNonzero(set *benchcsv.MeasurementSet) error {
	for i, v := range set.Optimized {
		if v == 0 {
			return &DivisionByZeroError{Index: i, Size: set.Sizes[i]}
		}
	}
	return nil
}
