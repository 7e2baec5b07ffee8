// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/journalfig/style"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Artist is something drawn on top of all axes of a figure, such as a legend.
type Artist interface {
	Draw(fc draw.Canvas, ax *Axes)
}

// LegendEntry is a labeled plotter that can be shown in a legend.
type LegendEntry struct {
	Label string
	Thumb plot.Thumbnailer
}

// Spine is one side of the axes frame.
type Spine struct {
	Visible bool
	Line    LineStyle
}

// Spines are the four sides of the axes frame.
type Spines struct {
	North, South, West, East Spine
}

// Side returns the spine of the given single side, or nil.
func (sp *Spines) Side(s Sides) *Spine {
	switch s {
	case North:
		return &sp.North
	case South:
		return &sp.South
	case West:
		return &sp.West
	case East:
		return &sp.East
	}
	return nil
}

// SetAll applies f to every spine.
func (sp *Spines) SetAll(f func(s *Spine)) {
	f(&sp.North)
	f(&sp.South)
	f(&sp.West)
	f(&sp.East)
}

// GridStyle selects the grid lines drawn at tick positions.
type GridStyle struct {
	Major, Minor bool
	Line         LineStyle
}

// Axes is a data area of a figure with its frame, ticks and labels.
type Axes struct {

	// Base is the plot holding the axis ranges, scales, tick markers,
	// labels and text styles. Its X and Y Min and Max are kept equal to
	// the axes limits.
	Base *plot.Plot

	// Position is the figure-relative rectangle of the data area.
	Position Rect

	// Locator, if set, computes the position at draw time instead of Position.
	Locator func(f *Figure) Rect

	// ZOrder orders the drawing of axes; higher values draw on top.
	ZOrder int

	// FrameOff hides the background, grid, frame, ticks and labels.
	FrameOff bool

	// Background fills the data area, unless nil.
	Background color.Color

	Spines Spines

	XTicks, YTicks AxisTicks

	Grid GridStyle

	// Params are the style parameters the axes were created with.
	Params *style.Params

	fig      *Figure
	plotters []plot.Plotter
	entries  []LegendEntry
	legend   Artist

	// data is the union of the data ranges of the plotters.
	data       Limits
	xlim, ylim *Range
	cycle      int
}

func newAxes(f *Figure, pos Rect) *Axes {
	p := f.Params
	if p == nil {
		p = style.Current()
	}
	pl := plot.New()
	pl.TextHandler = p.TextHandler()
	pl.Title.TextStyle = p.TextStyle(p.Fonts.Size * 1.2)
	pl.Title.Padding = vg.Points(6)
	pl.X.Label.TextStyle = p.TextStyle(0)
	pl.Y.Label.TextStyle = p.TextStyle(0)
	pl.X.Label.Padding = vg.Points(4)
	pl.Y.Label.Padding = vg.Points(4)
	pl.X.Tick.Label = p.TextStyle(p.Ticks.LabelSize)
	pl.Y.Tick.Label = p.TextStyle(p.Ticks.LabelSize)
	pl.X.Tick.Marker = plot.DefaultTicks{}
	pl.Y.Tick.Marker = plot.DefaultTicks{}

	ax := &Axes{
		Base:     pl,
		Position: pos,
		Params:   p,
		fig:      f,
		data:     Limits{X: Range{math.Inf(1), math.Inf(-1)}, Y: Range{math.Inf(1), math.Inf(-1)}},
	}
	if !p.Figure.AxesBackground.IsNone() {
		ax.Background = p.Figure.AxesBackground
	}
	spine := Spine{Visible: true, Line: LineStyle{Width: vg.Points(p.Ticks.SpineWidth)}}
	if !p.Ticks.SpineColor.IsNone() {
		spine.Line.Color = p.Ticks.SpineColor
	}
	ax.Spines = Spines{North: spine, South: spine, West: spine, East: spine}

	sides, err := ParseSides(p.Ticks.Sides)
	if err != nil {
		sides = South | West
	}
	ax.XTicks = defaultAxisTicks(sides, South)
	ax.YTicks = defaultAxisTicks(sides, West)

	ax.Grid = GridStyle{Line: gridLine(p)}
	if p.Grid.Visible {
		switch p.Grid.Which {
		case "minor":
			ax.Grid.Minor = true
		case "both":
			ax.Grid.Major, ax.Grid.Minor = true, true
		default:
			ax.Grid.Major = true
		}
	}
	ax.syncLimits()
	return ax
}

// SetTitle sets the title drawn above the axes.
func (ax *Axes) SetTitle(s string) { ax.Base.Title.Text = s }

// SetXLabel sets the label of the x axis.
func (ax *Axes) SetXLabel(s string) { ax.Base.X.Label.Text = s }

// SetYLabel sets the label of the y axis.
func (ax *Axes) SetYLabel(s string) { ax.Base.Y.Label.Text = s }

// Figure returns the figure of the axes.
func (ax *Axes) Figure() *Figure { return ax.fig }

// Rect returns the current figure-relative position of the data area.
func (ax *Axes) Rect() Rect {
	if ax.Locator != nil && ax.fig != nil {
		return ax.Locator(ax.fig)
	}
	return ax.Position
}

// SetXLim fixes the x limits, overriding the data range.
func (ax *Axes) SetXLim(min, max float64) {
	ax.xlim = &Range{min, max}
	ax.syncLimits()
}

// SetYLim fixes the y limits, overriding the data range.
func (ax *Axes) SetYLim(min, max float64) {
	ax.ylim = &Range{min, max}
	ax.syncLimits()
}

// SetLimits sets both limits.
func (ax *Axes) SetLimits(l Limits) {
	ax.SetXLim(l.X.Min, l.X.Max)
	ax.SetYLim(l.Y.Min, l.Y.Max)
}

// XLim returns the x limits: the fixed ones if set, otherwise the data range.
func (ax *Axes) XLim() Range {
	if ax.xlim != nil {
		return ax.xlim.sanitize()
	}
	return ax.data.X.sanitize()
}

// YLim returns the y limits: the fixed ones if set, otherwise the data range.
func (ax *Axes) YLim() Range {
	if ax.ylim != nil {
		return ax.ylim.sanitize()
	}
	return ax.data.Y.sanitize()
}

// Limits returns both limits.
func (ax *Axes) Limits() Limits {
	return Limits{X: ax.XLim(), Y: ax.YLim()}
}

func (ax *Axes) syncLimits() {
	x, y := ax.XLim(), ax.YLim()
	ax.Base.X.Min, ax.Base.X.Max = x.Min, x.Max
	ax.Base.Y.Min, ax.Base.Y.Max = y.Min, y.Max
}

// Add adds plotters to the axes, drawn in order after any added before.
// Plotters implementing plot.DataRanger extend the data range.
func (ax *Axes) Add(ps ...plot.Plotter) {
	for _, p := range ps {
		if dr, ok := p.(plot.DataRanger); ok {
			xmin, xmax, ymin, ymax := dr.DataRange()
			ax.data.X.Min = math.Min(ax.data.X.Min, xmin)
			ax.data.X.Max = math.Max(ax.data.X.Max, xmax)
			ax.data.Y.Min = math.Min(ax.data.Y.Min, ymin)
			ax.data.Y.Max = math.Max(ax.data.Y.Max, ymax)
		}
	}
	ax.plotters = append(ax.plotters, ps...)
	ax.syncLimits()
}

// AddLabeled adds a plotter with a legend entry.
func (ax *Axes) AddLabeled(label string, p plot.Plotter, thumb plot.Thumbnailer) {
	ax.Add(p)
	ax.entries = append(ax.entries, LegendEntry{Label: label, Thumb: thumb})
}

// Plotters returns the plotters of the axes.
func (ax *Axes) Plotters() []plot.Plotter { return ax.plotters }

// LegendEntries returns the labeled plotters, in the order added.
func (ax *Axes) LegendEntries() []LegendEntry {
	return append([]LegendEntry(nil), ax.entries...)
}

// nextColor returns the next color of the line color cycle.
func (ax *Axes) nextColor() color.Color {
	cyc := ax.Params.Lines.Cycle
	if len(cyc) == 0 {
		return color.Black
	}
	c := cyc[ax.cycle%len(cyc)]
	ax.cycle++
	return c
}

// Plot adds a line through the points (xs[i], ys[i]). A nil xs uses the
// indexes 0, 1, ... as x values. A nil color takes the next color of the
// color cycle and a zero width the default line width. A non-empty
// label adds a legend entry.
func (ax *Axes) Plot(xs, ys []float64, ls LineStyle, label string) (*plotter.Line, error) {
	if xs != nil && len(xs) != len(ys) {
		return nil, fmt.Errorf("figure.Axes.Plot: %d x values for %d y values: %w", len(xs), len(ys), ErrInvalid)
	}
	xys := make(plotter.XYs, len(ys))
	for i, y := range ys {
		xys[i].Y = y
		if xs != nil {
			xys[i].X = xs[i]
		} else {
			xys[i].X = float64(i)
		}
	}
	ln, err := plotter.NewLine(xys)
	if err != nil {
		return nil, fmt.Errorf("figure.Axes.Plot: %w", err)
	}
	if ls.Color == nil {
		ls.Color = ax.nextColor()
	}
	if ls.Width == 0 {
		ls.Width = vg.Points(ax.Params.Lines.Width)
	}
	ln.LineStyle = ls.Draw()
	if label != "" {
		ax.AddLabeled(label, ln, ln)
	} else {
		ax.Add(ln)
	}
	return ln, nil
}

// SetLegend sets the legend of the axes, drawn after all axes of the figure.
// A nil artist removes the legend.
func (ax *Axes) SetLegend(a Artist) { ax.legend = a }

// Legend returns the legend of the axes, or nil.
func (ax *Axes) Legend() Artist { return ax.legend }

// Ticks returns the tick configuration of the x (horizontal) or y axis.
func (ax *Axes) Ticks(horizontal bool) *AxisTicks {
	if horizontal {
		return &ax.XTicks
	}
	return &ax.YTicks
}

// PlotAxis returns the plot axis of the x (horizontal) or y axis.
func (ax *Axes) PlotAxis(horizontal bool) *plot.Axis {
	if horizontal {
		return &ax.Base.X
	}
	return &ax.Base.Y
}

// DataToFigure maps a data point to figure-relative coordinates.
func (ax *Axes) DataToFigure(x, y float64) (fx, fy float64) {
	r := ax.Rect()
	return r.X0 + ax.Base.X.Norm(x)*r.Width, r.Y0 + ax.Base.Y.Norm(y)*r.Height
}

// DataCanvas returns the part of the figure canvas fc holding the data area.
func (ax *Axes) DataCanvas(fc draw.Canvas) draw.Canvas {
	r := ax.Rect()
	x1, y1 := r.Max()
	return draw.Canvas{
		Canvas: fc.Canvas,
		Rectangle: vg.Rectangle{
			Min: vg.Point{X: fc.X(r.X0), Y: fc.Y(r.Y0)},
			Max: vg.Point{X: fc.X(x1), Y: fc.Y(y1)},
		},
	}
}

// draw draws the axes on the figure canvas fc.
func (ax *Axes) draw(fc draw.Canvas) {
	ax.syncLimits()
	dc := ax.DataCanvas(fc)
	if !ax.FrameOff {
		if ax.Background != nil {
			dc.SetColor(ax.Background)
			dc.Fill(dc.Rectangle.Path())
		}
		ax.drawGrid(dc)
	}
	for _, p := range ax.plotters {
		p.Plot(dc, ax.Base)
	}
	if !ax.FrameOff {
		ax.drawFrame(dc)
	}
}
