// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colorbar adds colorbars with custom tick labels to figures.
package colorbar

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"cogentcore.org/journalfig/figure"
	"cogentcore.org/journalfig/ticks"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
)

// ErrInvalid is returned for invalid colorbar options.
var ErrInvalid = errors.New("invalid colorbar")

// Aspect is the ratio of the length of a colorbar to its thickness.
const Aspect = 20

// Colors is the number of colors of a continuous colorbar.
const Colors = 256

// Orientation is the direction of the color gradient.
type Orientation int32

const (
	Vertical Orientation = iota
	Horizontal
)

// ParseOrientation parses "vertical" and "horizontal".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical":
		return Vertical, nil
	case "horizontal":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("colorbar: orientation %q, want vertical or horizontal: %w", s, ErrInvalid)
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// along returns the axis carrying the color gradient.
func (o Orientation) along() ticks.Axis {
	if o == Horizontal {
		return ticks.X
	}
	return ticks.Y
}

// TickStyle places Count ticks evenly from Start to End, in data units.
// A Count of zero or less gives no ticks.
type TickStyle struct {
	Count      int
	Start, End float64
}

// DefaultTickStyle returns 11 ticks from 0 to 1.
func DefaultTickStyle() TickStyle {
	return TickStyle{Count: 11, Start: 0, End: 1}
}

// Values returns the tick positions.
func (ts TickStyle) Values() []float64 {
	switch {
	case ts.Count <= 0:
		return nil
	case ts.Count == 1:
		return []float64{ts.Start}
	}
	vs := make([]float64, ts.Count)
	step := (ts.End - ts.Start) / float64(ts.Count-1)
	for i := range vs {
		vs[i] = ts.Start + float64(i)*step
	}
	vs[ts.Count-1] = ts.End
	return vs
}

// Style is the orientation and annotation of a colorbar.
type Style struct {
	Orientation Orientation

	XLabel, YLabel, Title string

	// Boundaries, if set, split the colorbar into discrete regions
	// between consecutive values, each filled with the color at its
	// midpoint. They must be increasing.
	Boundaries []float64
}

// DefaultStyle returns a vertical continuous colorbar without annotations.
func DefaultStyle() Style { return Style{} }

// Colorbar is a colorbar added to a figure.
type Colorbar struct {

	// Axes holds the color gradient.
	Axes *figure.Axes

	// Map is the colormap, normalized to the data range.
	Map palette.ColorMap

	// Ticks are the tick positions in data units.
	Ticks []float64

	// Labels are the tick label texts.
	Labels []string
}

// Add adds a colorbar showing cmap over [min, max] to the figure of host.
// The colorbar fills the height (vertical) or width (horizontal) of host
// with a thickness of 1/[Aspect] of its length, anchored at the left or
// bottom edge of host, and the frame of host is hidden.
// Ticks are labeled on the sides of ls along the gradient: W and E for
// vertical colorbars, N and S for horizontal ones.
func Add(host *figure.Axes, cmap palette.ColorMap, min, max float64, labels ticks.Labels, ls ticks.LabelStyle, ts TickStyle, cs Style) (*Colorbar, error) {
	if host == nil || host.Figure() == nil {
		return nil, fmt.Errorf("colorbar.Add: host axes without figure: %w", ErrInvalid)
	}
	if cmap == nil {
		return nil, fmt.Errorf("colorbar.Add: nil colormap: %w", ErrInvalid)
	}
	if !(min < max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil, fmt.Errorf("colorbar.Add: range [%v, %v]: %w", min, max, ErrInvalid)
	}
	if cs.Orientation != Vertical && cs.Orientation != Horizontal {
		return nil, fmt.Errorf("colorbar.Add: orientation %d: %w", cs.Orientation, ErrInvalid)
	}
	if len(cs.Boundaries) == 1 {
		return nil, fmt.Errorf("colorbar.Add: a single boundary: %w", ErrInvalid)
	}
	for i := 1; i < len(cs.Boundaries); i++ {
		if !(cs.Boundaries[i] > cs.Boundaries[i-1]) {
			return nil, fmt.Errorf("colorbar.Add: boundaries %v are not increasing: %w", cs.Boundaries, ErrInvalid)
		}
	}
	along := cs.Orientation.along()
	marks, err := markSides(ls.Sides, labels, along)
	if err != nil {
		return nil, fmt.Errorf("colorbar.Add: %w", err)
	}
	values := ts.Values()
	if _, err := ticks.FormatLabels(values, labels, ls.Format); err != nil {
		return nil, fmt.Errorf("colorbar.Add: %w", err)
	}
	if _, err := ls.Layout(); err != nil {
		return nil, fmt.Errorf("colorbar.Add: %w", err)
	}
	cmap.SetMin(min)
	cmap.SetMax(max)

	vertical := cs.Orientation == Vertical
	fig := host.Figure()
	ax := fig.AddAxes(figure.Rect{})
	ax.Locator = func(f *figure.Figure) figure.Rect {
		return locate(host.Rect(), f, vertical)
	}
	ax.Background = nil
	ax.Grid.Major, ax.Grid.Minor = false, false
	ax.XTicks, ax.YTicks = figure.AxisTicks{}, figure.AxisTicks{}

	lo, hi := min, max
	if n := len(cs.Boundaries); n > 0 {
		lo, hi = cs.Boundaries[0], cs.Boundaries[n-1]
		ax.Add(&bands{ColorMap: cmap, Boundaries: cs.Boundaries, Vertical: vertical})
	} else {
		ax.Add(&plotter.ColorBar{ColorMap: cmap, Vertical: vertical, Colors: Colors})
	}
	if vertical {
		ax.SetLimits(figure.Limits{X: figure.Range{Min: 0, Max: 1}, Y: figure.Range{Min: lo, Max: hi}})
	} else {
		ax.SetLimits(figure.Limits{X: figure.Range{Min: lo, Max: hi}, Y: figure.Range{Min: 0, Max: 1}})
	}

	if err := ticks.SetFixedTicks(ax, values, along, labels, ls, ticks.TickStyle{Sides: marks.String()}); err != nil {
		return nil, fmt.Errorf("colorbar.Add: %w", err)
	}

	ax.SetTitle(cs.Title)
	ax.SetXLabel(cs.XLabel)
	ax.SetYLabel(cs.YLabel)
	host.FrameOff = true

	return &Colorbar{
		Axes:   ax,
		Map:    cmap,
		Ticks:  values,
		Labels: ax.Ticks(along.Horizontal()).Major.Labels,
	}, nil
}

// markSides returns the sides with tick marks: those with labels, or
// the east (vertical) or south (horizontal) side without labels.
func markSides(labelSides string, labels ticks.Labels, along ticks.Axis) (figure.Sides, error) {
	s, err := figure.ParseSides(labelSides)
	if err != nil {
		return 0, err
	}
	if along == ticks.Y {
		s = s.Vertical()
	} else {
		s = s.Horizontal()
	}
	if s == figure.NoSides || labels.IsHidden() {
		if along == ticks.Y {
			return figure.East, nil
		}
		return figure.South, nil
	}
	return s, nil
}

// locate returns the rectangle of a colorbar for the host rectangle r.
func locate(r figure.Rect, f *figure.Figure, vertical bool) figure.Rect {
	fw, fh := float64(f.Width), float64(f.Height)
	if fw <= 0 || fh <= 0 {
		fw, fh = 1, 1
	}
	if vertical {
		return figure.Rect{X0: r.X0, Y0: r.Y0, Width: r.Height * fh / Aspect / fw, Height: r.Height}
	}
	return figure.Rect{X0: r.X0, Y0: r.Y0, Width: r.Width, Height: r.Width * fw / Aspect / fh}
}
