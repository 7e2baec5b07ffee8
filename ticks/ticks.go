// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ticks places, labels and formats the ticks of figure axes.
package ticks

import (
	"errors"
	"fmt"
	"strings"

	"cogentcore.org/journalfig/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
)

// ErrInvalid is returned for invalid tick options.
var ErrInvalid = errors.New("invalid tick option")

// maxTicks bounds the number of ticks a periodicity may produce.
const maxTicks = 1000

// Axis selects the x or the y axis.
type Axis int32

const (
	X Axis = iota
	Y
)

// ParseAxis parses "x" and "y".
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x":
		return X, nil
	case "y":
		return Y, nil
	}
	return 0, fmt.Errorf("ticks: axis %q, want x or y: %w", s, ErrInvalid)
}

func (a Axis) String() string {
	if a == Y {
		return "y"
	}
	return "x"
}

// Horizontal returns whether a is the x axis.
func (a Axis) Horizontal() bool { return a == X }

// sides returns those of s that carry ticks of a.
func (a Axis) sides(s figure.Sides) figure.Sides {
	if a == X {
		return s.Horizontal()
	}
	return s.Vertical()
}

// labelKind is how tick label texts are produced.
type labelKind int32

const (
	auto labelKind = iota
	custom
	hidden
)

// Labels selects the texts of tick labels.
type Labels struct {
	kind  labelKind
	texts []string
}

// Auto labels ticks with their formatted values.
func Auto() Labels { return Labels{kind: auto} }

// Custom labels the i-th tick with the formatted i-th text.
func Custom(texts ...string) Labels { return Labels{kind: custom, texts: texts} }

// Hidden suppresses the labels.
func Hidden() Labels { return Labels{kind: hidden} }

// IsHidden returns whether the labels are suppressed.
func (l Labels) IsHidden() bool { return l.kind == hidden }

// Texts returns the custom texts, if any.
func (l Labels) Texts() []string { return l.texts }

// LabelStyle is the placement and format of tick labels.
type LabelStyle struct {

	// Sides with labels, as a compass string like "SW".
	Sides string

	// Format is applied to each tick value or custom text. See [Format].
	Format string

	// Align is a compass string: W aligns the left edge of the label on
	// its anchor and E the right edge, N the top and S the bottom.
	// Dimensions without a letter are centered.
	Align string

	// Rotation is the counterclockwise rotation in degrees.
	Rotation float64

	Mode figure.RotationMode

	// PadX and PadY move every label by a fraction of the axes width and height.
	PadX, PadY float64

	// Latexify escapes the formatted labels with [Latexify], for plain
	// label texts shown through a LaTeX text handler.
	Latexify bool
}

// DefaultLabelStyle returns the label style of major ticks.
func DefaultLabelStyle() LabelStyle {
	return LabelStyle{Sides: "SW", Format: "{0:.3f}"}
}

// DefaultColorbarLabelStyle returns the label style of colorbar ticks.
func DefaultColorbarLabelStyle() LabelStyle {
	ls := DefaultLabelStyle()
	ls.Sides = "NE"
	return ls
}

// Layout returns the label layout of the style.
func (ls LabelStyle) Layout() (figure.LabelLayout, error) {
	al, err := figure.ParseSides(ls.Align)
	if err != nil {
		return figure.LabelLayout{}, fmt.Errorf("ticks: label align: %w", err)
	}
	lay := figure.LabelLayout{
		Custom:   true,
		XAlign:   text.XCenter,
		YAlign:   text.YCenter,
		Rotation: ls.Rotation,
		Mode:     ls.Mode,
		PadX:     ls.PadX,
		PadY:     ls.PadY,
	}
	switch {
	case al.Has(figure.West):
		lay.XAlign = text.XLeft
	case al.Has(figure.East):
		lay.XAlign = text.XRight
	}
	switch {
	case al.Has(figure.North):
		lay.YAlign = text.YTop
	case al.Has(figure.South):
		lay.YAlign = text.YBottom
	}
	return lay, nil
}

// TickStyle selects the sides with tick marks.
type TickStyle struct {
	Sides string
}

// DefaultTickStyle returns tick marks on all sides.
func DefaultTickStyle() TickStyle { return TickStyle{Sides: "NSWE"} }

// FormatLabels returns the label texts of ticks at values.
func FormatLabels(values []float64, labels Labels, format string) ([]string, error) {
	out := make([]string, len(values))
	switch labels.kind {
	case hidden:
		return out, nil
	case custom:
		if len(labels.texts) < len(values) {
			return nil, fmt.Errorf("ticks: %d labels for %d ticks: %w", len(labels.texts), len(values), ErrInvalid)
		}
		for i := range values {
			s, err := Format(format, labels.texts[i])
			if err != nil {
				return nil, fmt.Errorf("ticks: label %d: %w", i, err)
			}
			out[i] = s
		}
		return out, nil
	}
	for i, v := range values {
		s, err := Format(format, v)
		if err != nil {
			return nil, fmt.Errorf("ticks: tick %v: %w", v, err)
		}
		out[i] = s
	}
	return out, nil
}

// SetFixedTicks places major ticks at values along the axis, labeled and
// laid out as given.
func SetFixedTicks(ax *figure.Axes, values []float64, along Axis, labels Labels, ls LabelStyle, ts TickStyle) error {
	labelSides, err := figure.ParseSides(ls.Sides)
	if err != nil {
		return fmt.Errorf("ticks: label sides: %w", err)
	}
	tickSides, err := figure.ParseSides(ts.Sides)
	if err != nil {
		return fmt.Errorf("ticks: tick sides: %w", err)
	}
	lay, err := ls.Layout()
	if err != nil {
		return err
	}
	texts, err := FormatLabels(values, labels, ls.Format)
	if err != nil {
		return err
	}
	if ls.Latexify && !labels.IsHidden() {
		for i, s := range texts {
			texts[i] = Latexify(s)
		}
	}
	if labels.IsHidden() {
		labelSides = figure.NoSides
	}
	ct := make(plot.ConstantTicks, len(values))
	for i, v := range values {
		ct[i] = plot.Tick{Value: v, Label: texts[i]}
	}
	tk := &ax.Ticks(along.Horizontal()).Major
	tk.Ticker = ct
	tk.Sides = along.sides(tickSides)
	tk.LabelSides = along.sides(labelSides)
	tk.Labels = texts
	tk.Layout = lay
	return nil
}

// limits returns the current limits of the axis.
func limits(ax *figure.Axes, along Axis) figure.Range {
	if along == X {
		return ax.XLim()
	}
	return ax.YLim()
}

// multiples returns the multiples of periodicity within the current
// limits of the axis.
func multiples(ax *figure.Axes, periodicity float64, along Axis) ([]float64, error) {
	if !(periodicity > 0) {
		return nil, fmt.Errorf("ticks: periodicity %v must be positive: %w", periodicity, ErrInvalid)
	}
	r := limits(ax, along)
	if r.Span()/periodicity > maxTicks {
		return nil, fmt.Errorf("ticks: periodicity %v gives over %d ticks in %v: %w", periodicity, maxTicks, r, ErrInvalid)
	}
	return Multiple{Base: periodicity}.Values(r.Min, r.Max), nil
}

// SetMajorTicks places major ticks at every multiple of periodicity
// within the current limits of the axis. The positions do not follow
// later changes of the limits.
func SetMajorTicks(ax *figure.Axes, periodicity float64, along Axis, labels Labels, ls LabelStyle, ts TickStyle) error {
	vs, err := multiples(ax, periodicity, along)
	if err != nil {
		return err
	}
	return SetFixedTicks(ax, vs, along, labels, ls, ts)
}

// SetMinorTicks places unlabeled minor ticks at every multiple of
// periodicity within the current limits of the axis.
func SetMinorTicks(ax *figure.Axes, periodicity float64, along Axis, ts TickStyle) error {
	sides, err := figure.ParseSides(ts.Sides)
	if err != nil {
		return fmt.Errorf("ticks: tick sides: %w", err)
	}
	vs, err := multiples(ax, periodicity, along)
	if err != nil {
		return err
	}
	ct := make(plot.ConstantTicks, len(vs))
	for i, v := range vs {
		ct[i] = plot.Tick{Value: v}
	}
	tk := &ax.Ticks(along.Horizontal()).Minor
	tk.Ticker = ct
	tk.Sides = along.sides(sides)
	return nil
}
