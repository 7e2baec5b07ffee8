// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
)

// RotationMode is how rotated tick labels are aligned.
type RotationMode int32

const (
	// Anchor aligns the unrotated text on its anchor point, then rotates
	// it around that point.
	Anchor RotationMode = iota

	// Default rotates the text first, then aligns its bounding box on
	// the anchor point.
	Default
)

// ParseRotationMode parses "anchor" and "default".
func ParseRotationMode(s string) (RotationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "anchor", "":
		return Anchor, nil
	case "default":
		return Default, nil
	}
	return 0, fmt.Errorf("figure: rotation mode %q: %w", s, ErrInvalid)
}

func (m RotationMode) String() string {
	if m == Default {
		return "default"
	}
	return "anchor"
}

// LabelLayout places the tick labels relative to their ticks.
type LabelLayout struct {

	// Custom selects XAlign and YAlign; otherwise labels are aligned
	// away from the frame side they are on.
	Custom bool

	XAlign text.XAlignment
	YAlign text.YAlignment

	// Rotation is the counterclockwise rotation in degrees.
	Rotation float64

	Mode RotationMode

	// PadX and PadY offset every label by a fraction of the axes width
	// and height.
	PadX, PadY float64
}

// TickSet is one set of ticks (major or minor) of an axis.
type TickSet struct {

	// Ticker computes the tick positions. For major ticks nil uses the
	// plot axis marker; for minor ticks nil means no ticks.
	Ticker plot.Ticker

	// Sides with tick marks.
	Sides Sides

	// LabelSides with tick labels. Minor ticks are never labeled.
	LabelSides Sides

	// Labels, if non-nil, are the label texts of the ticks by index, and
	// every tick of the ticker is a major tick. Otherwise ticks without
	// a label are minor and skipped.
	Labels []string

	Layout LabelLayout
}

// AxisTicks are the ticks of one axis.
type AxisTicks struct {
	Major, Minor TickSet
}

func defaultAxisTicks(sides, label Sides) AxisTicks {
	return AxisTicks{
		Major: TickSet{Sides: sides, LabelSides: label},
		Minor: TickSet{Sides: sides},
	}
}

// majorTicks returns the major ticks of the axis in [min, max] with labels.
func (ax *Axes) majorTicks(horizontal bool) []plot.Tick {
	ts := ax.Ticks(horizontal).Major
	pa := ax.PlotAxis(horizontal)
	tk := ts.Ticker
	if tk == nil {
		tk = pa.Tick.Marker
	}
	if tk == nil {
		return nil
	}
	lo, hi := math.Min(pa.Min, pa.Max), math.Max(pa.Min, pa.Max)
	var ticks []plot.Tick
	for i, t := range tk.Ticks(lo, hi) {
		if ts.Labels != nil {
			t.Label = ""
			if i < len(ts.Labels) {
				t.Label = ts.Labels[i]
			}
		} else if t.IsMinor() {
			continue
		}
		if !inRange(t.Value, lo, hi) {
			continue
		}
		ticks = append(ticks, t)
	}
	return ticks
}

// minorTicks returns the minor tick values of the axis in [min, max],
// except those at a major tick.
func (ax *Axes) minorTicks(horizontal bool, major []plot.Tick) []float64 {
	ts := ax.Ticks(horizontal).Minor
	if ts.Ticker == nil {
		return nil
	}
	pa := ax.PlotAxis(horizontal)
	lo, hi := math.Min(pa.Min, pa.Max), math.Max(pa.Min, pa.Max)
	eps := (hi - lo) * 1e-9
	var vs []float64
outer:
	for _, t := range ts.Ticker.Ticks(lo, hi) {
		if !inRange(t.Value, lo, hi) {
			continue
		}
		for _, m := range major {
			if math.Abs(m.Value-t.Value) <= eps {
				continue outer
			}
		}
		vs = append(vs, t.Value)
	}
	return vs
}

func inRange(v, lo, hi float64) bool {
	eps := (hi - lo) * 1e-9
	return v >= lo-eps && v <= hi+eps
}
