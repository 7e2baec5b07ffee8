// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legend

import (
	"image/color"
	"log/slog"

	"cogentcore.org/journalfig/figure"
	"cogentcore.org/journalfig/style"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// candidates are the locations tried by Best, in order of preference.
var candidates = []Location{
	UpperRight, UpperLeft, LowerLeft, LowerRight, Right,
	CenterLeft, CenterRight, LowerCenter, UpperCenter, Center,
}

// Legend is a legend drawn on top of the figure. Entries are laid out
// column by column in Columns columns; entries without a thumbnail and
// label are empty placeholders.
type Legend struct {
	Title    string
	Entries  []figure.LegendEntry
	Columns  int
	Position Position
	Params   style.LegendParams
}

// Rows returns the number of rows of the layout.
func (l *Legend) Rows() int {
	cols := max(l.Columns, 1)
	return (len(l.Entries) + cols - 1) / cols
}

// layout are the measures of a legend.
type layout struct {
	sty, title text.Style
	thumb, gap vg.Length
	rowH       vg.Length
	titleH     vg.Length
	colW       []vg.Length
	size       vg.Point
}

func (l *Legend) measure(ax *figure.Axes) layout {
	p := ax.Params
	if p == nil {
		p = style.Current()
	}
	lp := l.Params
	lo := layout{
		sty:   p.TextStyle(lp.FontSize),
		title: p.TextStyle(lp.FontSize),
		thumb: vg.Points(lp.ThumbnailWidth),
	}
	lo.sty.XAlign, lo.sty.YAlign = text.XLeft, text.YCenter
	lo.gap = lo.sty.Rectangle(" ").Size().X
	lo.rowH = lo.sty.Rectangle("Mg").Size().Y
	for _, e := range l.Entries {
		lo.rowH = max(lo.rowH, lo.sty.Rectangle(e.Label).Size().Y)
	}
	rows, cols := l.Rows(), max(l.Columns, 1)
	lo.colW = make([]vg.Length, cols)
	for i, e := range l.Entries {
		c := i / max(rows, 1)
		w := lo.thumb
		if e.Label != "" {
			w += lo.gap + lo.sty.Rectangle(e.Label).Size().X
		}
		lo.colW[c] = max(lo.colW[c], w)
	}
	pad := vg.Points(lp.BorderPad)
	var w vg.Length
	for _, cw := range lo.colW {
		w += cw
	}
	w += vg.Points(lp.ColumnSpacing) * vg.Length(cols-1)
	h := lo.rowH*vg.Length(rows) + vg.Points(lp.RowSpacing)*vg.Length(max(rows-1, 0))
	if l.Title != "" {
		tr := lo.title.Rectangle(l.Title).Size()
		lo.titleH = tr.Y
		w = max(w, tr.X)
		h += lo.titleH
		if rows > 0 {
			h += vg.Points(lp.RowSpacing)
		}
	}
	lo.size = vg.Point{X: w + 2*pad, Y: h + 2*pad}
	return lo
}

// place returns the legend box of the given size at loc inside dc,
// inset by pad.
func place(dc draw.Canvas, loc Location, size vg.Point, pad vg.Length) vg.Rectangle {
	in := vg.Rectangle{
		Min: vg.Point{X: dc.Min.X + pad, Y: dc.Min.Y + pad},
		Max: vg.Point{X: dc.Max.X - pad, Y: dc.Max.Y - pad},
	}
	c := dc.Center()
	var x, y vg.Length
	switch loc {
	case UpperLeft, LowerLeft, CenterLeft:
		x = in.Min.X
	case UpperRight, LowerRight, Right, CenterRight:
		x = in.Max.X - size.X
	default:
		x = c.X - size.X/2
	}
	switch loc {
	case UpperRight, UpperLeft, UpperCenter:
		y = in.Max.Y - size.Y
	case LowerLeft, LowerRight, LowerCenter:
		y = in.Min.Y
	default:
		y = c.Y - size.Y/2
	}
	return vg.Rectangle{Min: vg.Point{X: x, Y: y}, Max: vg.Point{X: x + size.X, Y: y + size.Y}}
}

// covered returns the number of data points of ax inside r.
func covered(dc draw.Canvas, ax *figure.Axes, r vg.Rectangle) int {
	trX, trY := ax.Base.Transforms(&dc)
	n := 0
	for _, p := range ax.Plotters() {
		xy, ok := p.(plotter.XYer)
		if !ok {
			continue
		}
		for i := 0; i < xy.Len(); i++ {
			x, y := xy.XY(i)
			px, py := trX(x), trY(y)
			if px >= r.Min.X && px <= r.Max.X && py >= r.Min.Y && py <= r.Max.Y {
				n++
			}
		}
	}
	return n
}

// best returns the candidate location covering the fewest data points.
func best(dc draw.Canvas, ax *figure.Axes, size vg.Point, pad vg.Length) Location {
	loc, least := candidates[0], -1
	for _, c := range candidates {
		n := covered(dc, ax, place(dc, c, size, pad))
		if least < 0 || n < least {
			loc, least = c, n
		}
		if n == 0 {
			break
		}
	}
	slog.Debug("legend: best location", "location", loc, "points", least)
	return loc
}

// Box returns the rectangle of the legend of ax on the figure canvas fc.
func (l *Legend) Box(fc draw.Canvas, ax *figure.Axes) vg.Rectangle {
	return l.box(fc, ax, l.measure(ax))
}

func (l *Legend) box(fc draw.Canvas, ax *figure.Axes, lo layout) vg.Rectangle {
	if l.Position.anchored {
		cx, cy := fc.X(l.Position.x), fc.Y(l.Position.y)
		return vg.Rectangle{
			Min: vg.Point{X: cx - lo.size.X/2, Y: cy - lo.size.Y/2},
			Max: vg.Point{X: cx + lo.size.X/2, Y: cy + lo.size.Y/2},
		}
	}
	dc := ax.DataCanvas(fc)
	pad := vg.Points(l.Params.AxesPad)
	loc := l.Position.loc
	if loc == Best {
		loc = best(dc, ax, lo.size, pad)
	}
	return place(dc, loc, lo.size, pad)
}

// Draw implements figure.Artist.
func (l *Legend) Draw(fc draw.Canvas, ax *figure.Axes) {
	if len(l.Entries) == 0 && l.Title == "" {
		return
	}
	lo := l.measure(ax)
	r := l.box(fc, ax, lo)
	lp := l.Params
	if lp.FrameOn {
		if !lp.FaceColor.IsNone() {
			fc.SetColor(style.Alpha(lp.FaceColor, lp.FrameAlpha))
			fc.Fill(r.Path())
		}
		if !lp.EdgeColor.IsNone() {
			var edge color.Color = style.Alpha(lp.EdgeColor, lp.FrameAlpha)
			fc.SetLineStyle(draw.LineStyle{Color: edge, Width: vg.Points(0.8)})
			fc.Stroke(r.Path())
		}
	}

	pad := vg.Points(lp.BorderPad)
	top := r.Max.Y - pad
	if l.Title != "" {
		ts := lo.title
		ts.XAlign, ts.YAlign = text.XCenter, text.YTop
		fc.FillText(ts, vg.Point{X: (r.Min.X + r.Max.X) / 2, Y: top}, l.Title)
		top -= lo.titleH + vg.Points(lp.RowSpacing)
	}

	rows := max(l.Rows(), 1)
	x := r.Min.X + pad
	for i, e := range l.Entries {
		c, row := i/rows, i%rows
		if row == 0 && c > 0 {
			x += lo.colW[c-1] + vg.Points(lp.ColumnSpacing)
		}
		yc := top - vg.Length(row)*(lo.rowH+vg.Points(lp.RowSpacing)) - lo.rowH/2
		if e.Thumb != nil {
			e.Thumb.Thumbnail(&draw.Canvas{
				Canvas: fc.Canvas,
				Rectangle: vg.Rectangle{
					Min: vg.Point{X: x, Y: yc - lo.rowH/2},
					Max: vg.Point{X: x + lo.thumb, Y: yc + lo.rowH/2},
				},
			})
		}
		if e.Label != "" {
			fc.FillText(lo.sty, vg.Point{X: x + lo.thumb + lo.gap, Y: yc}, e.Label)
		}
	}
}
