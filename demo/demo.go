// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package demo builds an example figure using every feature of journalfig:
// two stacked axes of sine and cosine lines, a detail inset, a colorbar
// with custom rotated labels, periodic major and minor ticks, and a grid
// ordered legend gathering the lines of both axes.
package demo

import (
	"fmt"
	"math"

	"cogentcore.org/journalfig/colorbar"
	"cogentcore.org/journalfig/colormap"
	"cogentcore.org/journalfig/figure"
	"cogentcore.org/journalfig/inset"
	"cogentcore.org/journalfig/legend"
	"cogentcore.org/journalfig/style"
	"cogentcore.org/journalfig/ticks"
	"gonum.org/v1/plot/vg"
)

// Options are the options of [Build].
type Options struct {

	// Style is the style sheet applied to Elements before building;
	// empty keeps the current style.
	Style string

	Elements []style.Element

	// Colormap names the colormap of the lines and colorbar.
	Colormap string

	// Lines is the number of lines of each main axes.
	Lines int

	// Width and Height are the size of the subplot area in Units.
	Width, Height float64
	Units         figure.Units
}

// DefaultOptions returns the options of the example figure.
func DefaultOptions() Options {
	return Options{
		Style:    "pretty_style_v1",
		Elements: []style.Element{style.Figure, style.Fonts, style.Grid, style.Ticks, style.Legend},
		Colormap: "viridis",
		Lines:    6,
		Width:    20,
		Height:   12,
		Units:    figure.Centimeters,
	}
}

var (
	mainLimits   = figure.Limits{X: figure.Range{Min: -0.5, Max: 49.5}, Y: figure.Range{Min: -1.1, Max: 1.1}}
	detailLimits = figure.Limits{X: figure.Range{Min: 21.5, Max: 27.5}, Y: figure.Range{Min: -0.35, Max: 0.35}}
	detailPos    = figure.Limits{X: figure.Range{Min: 14, Max: 29}, Y: figure.Range{Min: -2.3, Max: -0.6}}
)

// linspace returns n evenly spaced values from start to end inclusive.
func linspace(start, end float64, n int) []float64 {
	vs := make([]float64, n)
	for i := range vs {
		vs[i] = start + (end-start)*float64(i)/float64(n-1)
	}
	return vs
}

// majorTicks are the periodic major ticks of one axis.
type majorTicks struct {
	ax     *figure.Axes
	period float64
	along  ticks.Axis
	labels ticks.LabelStyle
	sides  string
}

func xLabels(sides, align string, rotation, pady float64) ticks.LabelStyle {
	return ticks.LabelStyle{Sides: sides, Format: "{0:.0f}", Align: align, Rotation: rotation, Mode: figure.Anchor, PadY: pady}
}

func yLabels() ticks.LabelStyle {
	return ticks.LabelStyle{Sides: "W", Format: "{0:.1f}", Align: "NE", Rotation: -45, Mode: figure.Anchor, PadX: -0.01, PadY: 0.01}
}

// Build returns the example figure.
func Build(opts Options) (*figure.Figure, error) {
	if opts.Style != "" {
		if err := style.Use(opts.Style, opts.Elements...); err != nil {
			return nil, fmt.Errorf("demo.Build: %w", err)
		}
	}
	if opts.Lines < 1 {
		return nil, fmt.Errorf("demo.Build: %d lines: %w", opts.Lines, figure.ErrInvalid)
	}
	lineMap, err := colormap.Named(opts.Colormap)
	if err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}
	barMap, err := colormap.Named(opts.Colormap)
	if err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}

	f := figure.New()
	axes := f.AddAxes(figure.Rect{X0: 0.10, Y0: 0.54, Width: 0.70, Height: 0.40})
	axes.ZOrder = 1
	axes.Grid.Major = true
	axes.SetLimits(mainLimits)

	axes2 := f.AddAxes(figure.Rect{X0: 0.10, Y0: 0.07, Width: 0.70, Height: 0.40})
	axes2.ZOrder = -1
	axes2.Grid.Major = true
	axes2.SetLimits(mainLimits)

	barHost := f.AddAxes(figure.Rect{X0: 0.85, Y0: 0.10, Width: 0.1, Height: 0.80})

	detail := f.AddAxes(figure.Rect{X0: 0.40, Y0: 0.40, Width: 0.20, Height: 0.20})
	detail.ZOrder = 2
	detail.Grid.Major, detail.Grid.Minor = true, true

	n := opts.Lines
	ts := linspace(0, 2*math.Pi, 50)
	for i := 0; i < n; i++ {
		clr, err := colormap.Sample(lineMap, i, n)
		if err != nil {
			return nil, fmt.Errorf("demo.Build: line color: %w", err)
		}
		amp := (float64(i) + 0.3) / float64(n)
		sin, cos := make([]float64, len(ts)), make([]float64, len(ts))
		for j, t := range ts {
			sin[j], cos[j] = amp*math.Sin(t), amp*math.Cos(t)
		}
		if _, err := axes.Plot(nil, sin, figure.LineStyle{Color: clr}, fmt.Sprintf("Line %d", i+1)); err != nil {
			return nil, err
		}
		if _, err := detail.Plot(nil, sin, figure.LineStyle{Color: clr}, ""); err != nil {
			return nil, err
		}
		if _, err := axes2.Plot(nil, cos, figure.LineStyle{Color: clr, Dash: figure.Dotted}, fmt.Sprintf("Line %d", i+1+n)); err != nil {
			return nil, err
		}
	}

	_, err = colorbar.Add(barHost, barMap, 0.3, 1.3,
		ticks.Custom("a", "b", "c", "d", `$\bf{e}$`, `$\frac{f}{g}$`),
		ticks.LabelStyle{Sides: "NE", Format: "{0!s}", Align: "W", Rotation: -45, Mode: figure.Anchor, PadX: 0.3},
		colorbar.TickStyle{Count: 6, Start: 0.4, End: 1.2},
		colorbar.Style{Orientation: colorbar.Vertical, XLabel: "X", YLabel: "Y", Title: "Title"},
	)
	if err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}

	_, err = inset.Detail(axes, detail, mainLimits, detailLimits, detailPos,
		[]inset.Connection{{Detail: inset.NW, DetailAxes: inset.NW}, {Detail: inset.NE, DetailAxes: inset.NE}},
		inset.LineSetting{Dash: figure.Dotted, Color: style.Color("black"), Width: vg.Points(1), Alpha: 1},
	)
	if err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}

	majors := []majorTicks{
		{axes, 5, ticks.X, xLabels("N", "SW", 45, 0.01), "NS"},
		{axes2, 5, ticks.X, xLabels("S", "NW", -45, -0.01), "NS"},
		{detail, 2, ticks.X, xLabels("S", "NW", -45, -0.01), "NS"},
		{axes, 0.4, ticks.Y, yLabels(), "WE"},
		{detail, 0.2, ticks.Y, yLabels(), "WE"},
		{axes2, 0.4, ticks.Y, yLabels(), "WE"},
	}
	for _, m := range majors {
		if err := ticks.SetMajorTicks(m.ax, m.period, m.along, ticks.Auto(), m.labels, ticks.TickStyle{Sides: m.sides}); err != nil {
			return nil, fmt.Errorf("demo.Build: %w", err)
		}
	}
	if err := ticks.SetMinorTicks(detail, 0.5, ticks.X, ticks.TickStyle{Sides: "NS"}); err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}
	if err := ticks.SetMinorTicks(detail, 0.05, ticks.Y, ticks.TickStyle{Sides: "WE"}); err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}

	i, e := legend.Index, legend.Empty
	order := legend.Grid(
		[]legend.Slot{i(0), i(2), e},
		[]legend.Slot{i(6), i(8), i(4)},
		[]legend.Slot{i(1), i(3), i(10)},
		[]legend.Slot{i(7), i(9), e},
	)
	if n != 6 {
		order = legend.Default()
	}
	_, err = legend.Pretty(axes, []*figure.Axes{axes, axes2}, legend.Anchored(0.66, 0.91), order, `$Legend \; \Omega$`)
	if err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}

	if err := f.SetSize(opts.Width, opts.Height, opts.Units); err != nil {
		return nil, fmt.Errorf("demo.Build: %w", err)
	}
	return f, nil
}
