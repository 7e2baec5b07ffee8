// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// frameSide is a side of the data area on the canvas.
type frameSide struct {
	side Sides

	// horizontal is true for the North and South sides, which carry the
	// ticks of the x axis.
	horizontal bool

	// pos is the y of a horizontal side and the x of a vertical one.
	pos vg.Length

	// out is +1 or -1, pointing away from the data area.
	out vg.Length
}

func frameSides(dc draw.Canvas) [4]frameSide {
	return [4]frameSide{
		{North, true, dc.Max.Y, 1},
		{South, true, dc.Min.Y, -1},
		{West, false, dc.Min.X, -1},
		{East, false, dc.Max.X, 1},
	}
}

// along returns the canvas coordinate of data value v along the side.
func (ax *Axes) along(dc draw.Canvas, fs frameSide, v float64) vg.Length {
	if fs.horizontal {
		return dc.X(ax.Base.X.Norm(v))
	}
	return dc.Y(ax.Base.Y.Norm(v))
}

// tickSpan returns how far tick marks of the given length extend into
// and out of the data area.
func (ax *Axes) tickSpan(length vg.Length) (in, out vg.Length) {
	switch ax.Params.Ticks.Direction {
	case "in":
		return length, 0
	case "inout":
		return length / 2, length / 2
	}
	return 0, length
}

func (ax *Axes) drawGrid(dc draw.Canvas) {
	if !ax.Grid.Major && !ax.Grid.Minor {
		return
	}
	ls := ax.Grid.Line.Draw()
	if ls.Width <= 0 {
		return
	}
	for _, horizontal := range []bool{true, false} {
		major := ax.majorTicks(horizontal)
		var vs []float64
		if ax.Grid.Major {
			for _, t := range major {
				vs = append(vs, t.Value)
			}
		}
		if ax.Grid.Minor {
			vs = append(vs, ax.minorTicks(horizontal, major)...)
		}
		fs := frameSide{horizontal: horizontal}
		for _, v := range vs {
			c := ax.along(dc, fs, v)
			if horizontal {
				dc.StrokeLine2(ls, c, dc.Min.Y, c, dc.Max.Y)
			} else {
				dc.StrokeLine2(ls, dc.Min.X, c, dc.Max.X, c)
			}
		}
	}
}

// drawFrame draws the spines, ticks, tick labels, axis labels and title.
func (ax *Axes) drawFrame(dc draw.Canvas) {
	tp := ax.Params.Ticks
	sides := frameSides(dc)
	for _, fs := range sides {
		sp := ax.Spines.Side(fs.side)
		if !sp.Visible {
			continue
		}
		ls := sp.Line.Draw()
		if fs.horizontal {
			dc.StrokeLine2(ls, dc.Min.X, fs.pos, dc.Max.X, fs.pos)
		} else {
			dc.StrokeLine2(ls, fs.pos, dc.Min.Y, fs.pos, dc.Max.Y)
		}
	}

	tickLine := func(width float64) draw.LineStyle {
		ls := LineStyle{Width: vg.Points(width)}
		if !tp.Color.IsNone() {
			ls.Color = tp.Color
		}
		return ls.Draw()
	}
	majorLine, minorLine := tickLine(tp.MajorWidth), tickLine(tp.MinorWidth)
	majorIn, majorOut := ax.tickSpan(vg.Points(tp.MajorLength))
	minorIn, minorOut := ax.tickSpan(vg.Points(tp.MinorLength))

	// ext is the distance from each side to the outer edge of its
	// tick marks and labels.
	var ext [4]vg.Length
	for _, horizontal := range []bool{true, false} {
		at := ax.Ticks(horizontal)
		major := ax.majorTicks(horizontal)
		minor := ax.minorTicks(horizontal, major)
		for i, fs := range sides {
			if fs.horizontal != horizontal {
				continue
			}
			if at.Minor.Sides.Has(fs.side) && len(minor) > 0 {
				for _, v := range minor {
					ax.drawMark(dc, fs, v, minorLine, minorIn, minorOut)
				}
				ext[i] = max(ext[i], minorOut)
			}
			if at.Major.Sides.Has(fs.side) && len(major) > 0 {
				for _, t := range major {
					ax.drawMark(dc, fs, t.Value, majorLine, majorIn, majorOut)
				}
				ext[i] = max(ext[i], majorOut)
			}
			if at.Major.LabelSides.Has(fs.side) {
				off := ext[i] + vg.Points(tp.LabelPad)
				ext[i] = max(ext[i], ax.drawTickLabels(dc, fs, major, at.Major.Layout, off))
			}
		}
	}
	ax.drawAxisLabels(dc, ext)
}

func (ax *Axes) drawMark(dc draw.Canvas, fs frameSide, v float64, ls draw.LineStyle, in, out vg.Length) {
	c := ax.along(dc, fs, v)
	p0, p1 := fs.pos-fs.out*in, fs.pos+fs.out*out
	if fs.horizontal {
		dc.StrokeLine2(ls, c, p0, c, p1)
	} else {
		dc.StrokeLine2(ls, p0, c, p1, c)
	}
}

// drawTickLabels draws the labels of ticks on one side, off away from the
// side, and returns the distance from the side to their outer edge.
func (ax *Axes) drawTickLabels(dc draw.Canvas, fs frameSide, ticks []plot.Tick, lay LabelLayout, off vg.Length) vg.Length {
	sty := ax.PlotAxis(fs.horizontal).Tick.Label
	sty.XAlign, sty.YAlign = sideAlign(fs.side)
	if lay.Custom {
		sty.XAlign, sty.YAlign = lay.XAlign, lay.YAlign
	}
	sty.Rotation = lay.Rotation * math.Pi / 180
	size := dc.Size()
	pad := vg.Point{X: vg.Length(lay.PadX) * size.X, Y: vg.Length(lay.PadY) * size.Y}

	extent := off
	for _, t := range ticks {
		if t.Label == "" {
			continue
		}
		c := ax.along(dc, fs, t.Value)
		var pt vg.Point
		if fs.horizontal {
			pt = vg.Point{X: c, Y: fs.pos + fs.out*off}
		} else {
			pt = vg.Point{X: fs.pos + fs.out*off, Y: c}
		}
		r := drawText(dc, sty, lay.Mode, pt.Add(pad), t.Label)
		extent = max(extent, outward(fs, r))
	}
	return extent
}

// sideAlign returns the alignment of labels pointing away from the side.
func sideAlign(s Sides) (text.XAlignment, text.YAlignment) {
	switch s {
	case North:
		return text.XCenter, text.YBottom
	case South:
		return text.XCenter, text.YTop
	case West:
		return text.XRight, text.YCenter
	}
	return text.XLeft, text.YCenter
}

// outward returns how far the rectangle reaches past the side.
func outward(fs frameSide, r vg.Rectangle) vg.Length {
	switch fs.side {
	case North:
		return r.Max.Y - fs.pos
	case South:
		return fs.pos - r.Min.Y
	case West:
		return fs.pos - r.Min.X
	}
	return r.Max.X - fs.pos
}

// drawText draws txt at pt and returns its bounding box. In the Default
// rotation mode the bounding box of the rotated text is aligned on pt.
func drawText(c draw.Canvas, sty text.Style, mode RotationMode, pt vg.Point, txt string) vg.Rectangle {
	if mode == Default && sty.Rotation != 0 {
		xa, ya := sty.XAlign, sty.YAlign
		sty.XAlign, sty.YAlign = text.XLeft, text.YBottom
		r := sty.Rectangle(txt)
		sz := r.Size()
		pt = pt.Add(vg.Point{
			X: vg.Length(xa)*sz.X - r.Min.X,
			Y: vg.Length(ya)*sz.Y - r.Min.Y,
		})
	}
	c.FillText(sty, pt, txt)
	return sty.Rectangle(txt).Add(pt)
}

// drawAxisLabels draws the axis labels and title outside of the extents
// of the tick labels.
func (ax *Axes) drawAxisLabels(dc draw.Canvas, ext [4]vg.Length) {
	const north, south, west = 0, 1, 2
	center := dc.Center()
	if l := ax.Base.X.Label; l.Text != "" {
		sty := l.TextStyle
		sty.XAlign, sty.YAlign = text.XCenter, text.YTop
		dc.FillText(sty, vg.Point{X: center.X, Y: dc.Min.Y - ext[south] - l.Padding}, l.Text)
	}
	if l := ax.Base.Y.Label; l.Text != "" {
		sty := l.TextStyle
		sty.XAlign, sty.YAlign = text.XCenter, text.YBottom
		sty.Rotation = math.Pi / 2
		dc.FillText(sty, vg.Point{X: dc.Min.X - ext[west] - l.Padding, Y: center.Y}, l.Text)
	}
	if t := ax.Base.Title; t.Text != "" {
		sty := t.TextStyle
		sty.XAlign, sty.YAlign = text.XCenter, text.YBottom
		dc.FillText(sty, vg.Point{X: center.X, Y: dc.Max.Y + ext[north] + t.Padding}, t.Text)
	}
}
