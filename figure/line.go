// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/journalfig/style"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Dash is a line dash pattern.
type Dash int32

const (
	Solid Dash = iota
	Dashed
	Dotted
	DashDot

	// NoLine draws nothing.
	NoLine
)

var dashNames = [...]string{"solid", "dashed", "dotted", "dashdot", "none"}

func (d Dash) String() string {
	if d < 0 || int(d) >= len(dashNames) {
		return fmt.Sprintf("Dash(%d)", int32(d))
	}
	return dashNames[d]
}

// ParseDash parses a dash name or its short form: "-", "--", ":", "-."
// or "" (none).
func ParseDash(s string) (Dash, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "-", "solid":
		return Solid, nil
	case "--", "dashed":
		return Dashed, nil
	case ":", "dotted":
		return Dotted, nil
	case "-.", "dashdot":
		return DashDot, nil
	case "", "none":
		return NoLine, nil
	}
	return 0, fmt.Errorf("figure: line style %q: %w", s, ErrInvalid)
}

// Pattern returns the dashes of d for a line of the given width.
// Patterns are in multiples of the line width, so thick lines get
// proportionally longer dashes.
func (d Dash) Pattern(width vg.Length) []vg.Length {
	var unit []float64
	switch d {
	case Dashed:
		unit = []float64{3.7, 1.6}
	case Dotted:
		unit = []float64{1, 1.65}
	case DashDot:
		unit = []float64{6.4, 1.6, 1, 1.6}
	default:
		return nil
	}
	w := max(width, vg.Points(1))
	ds := make([]vg.Length, len(unit))
	for i, u := range unit {
		ds[i] = vg.Length(u) * w
	}
	return ds
}

// LineStyle describes how a line is stroked.
type LineStyle struct {

	// Color of the line; nil selects the next color of the axes color cycle
	// where that applies, and black otherwise.
	Color color.Color

	// Width of the line; zero selects the default line width.
	Width vg.Length

	Dash Dash

	// Alpha is the opacity in 0..1. Zero is treated as fully opaque.
	Alpha float64
}

// Draw returns the equivalent draw.LineStyle.
func (ls LineStyle) Draw() draw.LineStyle {
	if ls.Dash == NoLine {
		return draw.LineStyle{}
	}
	var clr color.Color = color.Black
	if ls.Color != nil {
		clr = ls.Color
	}
	if ls.Alpha > 0 && ls.Alpha < 1 {
		clr = style.Alpha(clr, ls.Alpha)
	}
	return draw.LineStyle{
		Color:  clr,
		Width:  ls.Width,
		Dashes: ls.Dash.Pattern(ls.Width),
	}
}

// gridLine returns the grid line style of the parameters.
func gridLine(p *style.Params) LineStyle {
	d, err := ParseDash(p.Grid.Dash)
	if err != nil {
		d = Solid
	}
	if p.Grid.Color.IsNone() {
		d = NoLine
	}
	return LineStyle{
		Color: p.Grid.Color,
		Width: vg.Points(p.Grid.Width),
		Dash:  d,
		Alpha: p.Grid.Alpha,
	}
}
