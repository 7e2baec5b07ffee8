// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"math"
	"strconv"

	"gonum.org/v1/plot"
)

// Multiple is a ticker placing ticks at every integer multiple of Base.
type Multiple struct {
	Base float64
}

// Values returns the multiples of the base inside [min, max]. Values within
// a small relative tolerance of the ends are included.
func (m Multiple) Values(min, max float64) []float64 {
	if m.Base <= 0 || math.IsNaN(m.Base) || math.IsInf(m.Base, 0) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	const eps = 1e-10
	i0 := math.Ceil(min/m.Base - eps)
	i1 := math.Floor(max/m.Base + eps)
	var vs []float64
	for i := i0; i <= i1; i++ {
		v := round(i * m.Base)
		if v == 0 {
			v = 0 // no negative zero
		}
		vs = append(vs, v)
	}
	return vs
}

// Ticks implements plot.Ticker. Every tick is labeled with its value.
func (m Multiple) Ticks(min, max float64) []plot.Tick {
	vs := m.Values(min, max)
	ts := make([]plot.Tick, len(vs))
	for i, v := range vs {
		ts[i] = plot.Tick{Value: v, Label: strconv.FormatFloat(v, 'g', -1, 64)}
	}
	return ts
}

// round drops the binary representation noise of a multiple, so that
// 3*0.1 is 0.3.
func round(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 15, 64), 64)
	if err != nil {
		return v
	}
	return r
}
