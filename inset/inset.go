// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inset places detail (zoomed) axes inside a main axes and
// connects them to the region of interest they magnify.
package inset

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"

	"cogentcore.org/journalfig/figure"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrInvalid is returned for invalid inset geometry or options.
var ErrInvalid = errors.New("invalid inset")

// Corner is a corner of a rectangle.
type Corner int32

const (
	NE Corner = iota
	NW
	SE
	SW
)

// ParseCorner parses "NE", "NW", "SE" and "SW", in any case and order.
func ParseCorner(s string) (Corner, error) {
	sd, err := figure.ParseSides(s)
	if err == nil && len(s) == 2 {
		switch sd {
		case figure.North | figure.East:
			return NE, nil
		case figure.North | figure.West:
			return NW, nil
		case figure.South | figure.East:
			return SE, nil
		case figure.South | figure.West:
			return SW, nil
		}
	}
	return 0, fmt.Errorf("inset: corner %q: %w", s, ErrInvalid)
}

func (c Corner) String() string {
	switch c {
	case NE:
		return "NE"
	case NW:
		return "NW"
	case SE:
		return "SE"
	case SW:
		return "SW"
	}
	return "Corner(" + strconv.Itoa(int(c)) + ")"
}

// East returns whether c is on the east side.
func (c Corner) East() bool { return c == NE || c == SE }

// North returns whether c is on the north side.
func (c Corner) North() bool { return c == NE || c == NW }

// Of returns the corner of the rectangle spanned by l: east is X.Max,
// west X.Min, north Y.Max and south Y.Min.
func (c Corner) Of(l figure.Limits) plotter.XY {
	p := plotter.XY{X: l.X.Min, Y: l.Y.Min}
	if c.East() {
		p.X = l.X.Max
	}
	if c.North() {
		p.Y = l.Y.Max
	}
	return p
}

// Connection joins a corner of the region of interest to a corner of
// the detail axes.
type Connection struct {
	Detail     Corner
	DetailAxes Corner
}

// DefaultConnections returns the connections of the north east and the
// south west corners.
func DefaultConnections() []Connection {
	return []Connection{{NE, NE}, {SW, SW}}
}

// LineSetting is the style of the region of interest and connector
// lines. The detail axes spines use it too, but are always solid.
type LineSetting struct {
	Dash  figure.Dash
	Color color.Color
	Width vg.Length
	Alpha float64
}

// DefaultLineSetting returns solid black lines of 0.5 pt.
func DefaultLineSetting() LineSetting {
	return LineSetting{Dash: figure.Solid, Color: color.Black, Width: vg.Points(0.5), Alpha: 1}
}

func (ls LineSetting) lineStyle() figure.LineStyle {
	return figure.LineStyle{Color: ls.Color, Width: ls.Width, Dash: ls.Dash, Alpha: ls.Alpha}
}

// RelativePosition returns the figure-relative rectangle of the detail
// axes placed at detailPos, given in the data coordinates of a main axes
// at mainPos showing mainLimits.
func RelativePosition(mainPos figure.Rect, mainLimits, detailPos figure.Limits) (figure.Rect, error) {
	w, h := mainLimits.X.Span(), mainLimits.Y.Span()
	if w == 0 || h == 0 {
		return figure.Rect{}, fmt.Errorf("inset.RelativePosition: main limits %v have an empty span: %w", mainLimits, ErrInvalid)
	}
	x0 := (detailPos.X.Min - mainLimits.X.Min) / w
	y0 := (detailPos.Y.Min - mainLimits.Y.Min) / h
	dw := detailPos.X.Span() / w
	dh := detailPos.Y.Span() / h
	return figure.Rect{
		X0:     mainPos.X0 + x0*mainPos.Width,
		Y0:     mainPos.Y0 + y0*mainPos.Height,
		Width:  dw * mainPos.Width,
		Height: dh * mainPos.Height,
	}, nil
}

// Connector is a straight line between two points in data coordinates
// that is not clipped to the data area.
type Connector struct {
	From, To plotter.XY
	draw.LineStyle
}

// Plot implements plot.Plotter.
func (c *Connector) Plot(dc draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&dc)
	dc.StrokeLine2(c.LineStyle, trX(c.From.X), trY(c.From.Y), trX(c.To.X), trY(c.To.Y))
}

// Lines are the annotation lines drawn by [Detail] on the main axes.
type Lines struct {
	RectBottom, RectRight, RectTop, RectLeft *plotter.Line
	Connectors                               []*Connector
}

// Map returns the lines keyed rect_bottom, rect_right, rect_top,
// rect_left and connector_<i>.
func (l *Lines) Map() map[string]plot.Plotter {
	m := map[string]plot.Plotter{
		"rect_bottom": l.RectBottom,
		"rect_right":  l.RectRight,
		"rect_top":    l.RectTop,
		"rect_left":   l.RectLeft,
	}
	for i, c := range l.Connectors {
		m["connector_"+strconv.Itoa(i)] = c
	}
	return m
}

// Detail sets the limits of main, places detail at detailPos (in the data
// coordinates of main) showing detailLimits, outlines the region of
// interest detailLimits on main and connects its corners to those of the
// detail axes. Nil conns use [DefaultConnections].
func Detail(main, detail *figure.Axes, mainLimits, detailLimits, detailPos figure.Limits, conns []Connection, setting LineSetting) (*Lines, error) {
	if main == nil || detail == nil {
		return nil, fmt.Errorf("inset.Detail: nil axes: %w", ErrInvalid)
	}
	for _, l := range []figure.Limits{mainLimits, detailLimits, detailPos} {
		if !finite(l) {
			return nil, fmt.Errorf("inset.Detail: limits %v are not finite: %w", l, ErrInvalid)
		}
	}
	pos, err := RelativePosition(main.Rect(), mainLimits, detailPos)
	if err != nil {
		return nil, err
	}
	if conns == nil {
		conns = DefaultConnections()
	}

	ls := setting.lineStyle().Draw()
	side := func(x0, y0, x1, y1 float64) (*plotter.Line, error) {
		ln, err := plotter.NewLine(plotter.XYs{{X: x0, Y: y0}, {X: x1, Y: y1}})
		if err != nil {
			return nil, fmt.Errorf("inset.Detail: %w", err)
		}
		ln.LineStyle = ls
		return ln, nil
	}
	dl := detailLimits
	lines := &Lines{}
	for _, s := range []struct {
		ln             **plotter.Line
		x0, y0, x1, y1 float64
	}{
		{&lines.RectBottom, dl.X.Min, dl.Y.Min, dl.X.Max, dl.Y.Min},
		{&lines.RectRight, dl.X.Max, dl.Y.Min, dl.X.Max, dl.Y.Max},
		{&lines.RectTop, dl.X.Max, dl.Y.Max, dl.X.Min, dl.Y.Max},
		{&lines.RectLeft, dl.X.Min, dl.Y.Max, dl.X.Min, dl.Y.Min},
	} {
		if *s.ln, err = side(s.x0, s.y0, s.x1, s.y1); err != nil {
			return nil, err
		}
	}
	for _, c := range conns {
		cn := &Connector{From: c.Detail.Of(dl), To: c.DetailAxes.Of(detailPos), LineStyle: ls}
		lines.Connectors = append(lines.Connectors, cn)
	}

	main.SetLimits(mainLimits)
	main.Add(lines.RectBottom, lines.RectRight, lines.RectTop, lines.RectLeft)
	for _, cn := range lines.Connectors {
		main.Add(cn)
	}
	detail.Position = pos
	detail.Locator = nil
	detail.SetLimits(detailLimits)
	spine := setting.lineStyle()
	spine.Dash = figure.Solid
	detail.Spines.SetAll(func(s *figure.Spine) { s.Line = spine })
	return lines, nil
}

// finite reports whether every bound of l is a finite number.
func finite(l figure.Limits) bool {
	for _, v := range []float64{l.X.Min, l.X.Max, l.Y.Min, l.Y.Max} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
