// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchchart

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Pow2Ticks places axis ticks at every power of two inside the axis
// range. Data sizes in the layout benchmarks grow by doubling, so on
// the logarithmic size axis these are the natural grid positions.
type Pow2Ticks struct{}

// Ticks implements plot.Ticker.
func (Pow2Ticks) Ticks(min, max float64) []plot.Tick {
	if min <= 0 || max < min {
		return nil
	}
	var ticks []plot.Tick
	exp := int(math.Ceil(math.Log2(min)))
	for v := math.Ldexp(1, exp); v <= max; v *= 2 {
		ticks = append(ticks, plot.Tick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', -1, 64),
		})
	}
	return ticks
}
