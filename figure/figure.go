// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package figure provides figures holding several axes placed at
// figure-relative positions, drawn with gonum.org/v1/plot.
//
// Each [Axes] wraps a [plot.Plot] that maps data to the axes rectangle,
// and draws its own frame: spines, ticks on any side, tick labels with
// free alignment and rotation, axis labels, title and grid. A [Figure]
// has a physical size and resolution and is saved through the
// vg canvases of gonum/plot.
package figure

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"

	"cogentcore.org/journalfig/style"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// ErrInvalid is returned for invalid arguments.
var ErrInvalid = errors.New("invalid argument")

// SubplotParams are the figure-relative bounds of the subplot area.
type SubplotParams struct {
	Left, Right, Bottom, Top float64
}

// Figure is a drawing surface of a physical size holding axes.
type Figure struct {

	// Width and Height are the physical size of the figure.
	Width, Height vg.Length

	// DPI is the resolution of raster output.
	DPI float64

	// Background fills the whole figure, unless nil.
	Background color.Color

	// Subplot is the subplot area used by [Figure.SetSize].
	Subplot SubplotParams

	// Axes are drawn in order of their ZOrder, then in the order added.
	Axes []*Axes

	// Params are the style parameters new axes start from.
	Params *style.Params
}

// New returns a figure styled with the current style parameters.
func New() *Figure {
	p := style.Current()
	f := &Figure{
		Width:  vg.Length(p.Figure.Width) * vg.Inch,
		Height: vg.Length(p.Figure.Height) * vg.Inch,
		DPI:    p.Figure.DPI,
		Subplot: SubplotParams{
			Left:   p.Figure.Left,
			Right:  p.Figure.Right,
			Bottom: p.Figure.Bottom,
			Top:    p.Figure.Top,
		},
		Params: p,
	}
	if !p.Figure.Background.IsNone() {
		f.Background = p.Figure.Background
	}
	return f
}

// AddAxes adds axes whose data area is at the given figure-relative position.
func (f *Figure) AddAxes(pos Rect) *Axes {
	ax := newAxes(f, pos)
	f.Axes = append(f.Axes, ax)
	return ax
}

// SetSize sets the figure size so that the subplot area has the given
// physical width and height.
func (f *Figure) SetSize(width, height float64, units Units) error {
	if !units.Valid() {
		return fmt.Errorf("figure.SetSize: units %v: %w", units, ErrInvalid)
	}
	sw := f.Subplot.Right - f.Subplot.Left
	sh := f.Subplot.Top - f.Subplot.Bottom
	if sw <= 0 || sh <= 0 {
		return fmt.Errorf("figure.SetSize: empty subplot area %+v: %w", f.Subplot, ErrInvalid)
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("figure.SetSize: size %gx%g: %w", width, height, ErrInvalid)
	}
	f.Width = units.Length(width / sw)
	f.Height = units.Length(height / sh)
	return nil
}

// Size returns the figure size in the given units.
func (f *Figure) Size(units Units) (width, height float64) {
	u := float64(units.Length(1))
	return float64(f.Width) / u, float64(f.Height) / u
}

// sorted returns the axes in drawing order.
func (f *Figure) sorted() []*Axes {
	axs := slices.Clone(f.Axes)
	slices.SortStableFunc(axs, func(a, b *Axes) int {
		return a.ZOrder - b.ZOrder
	})
	return axs
}

// Draw draws the figure on c, which it fills.
func (f *Figure) Draw(c draw.Canvas) {
	if f.Background != nil {
		c.SetColor(f.Background)
		c.Fill(c.Rectangle.Path())
	}
	axs := f.sorted()
	for _, ax := range axs {
		ax.draw(c)
	}
	for _, ax := range axs {
		if ax.legend != nil {
			ax.legend.Draw(c, ax)
		}
	}
}

// dpi returns the raster resolution, defaulting to 100.
func (f *Figure) dpi() int {
	if f.DPI <= 0 {
		return 100
	}
	return int(f.DPI + 0.5)
}

// Image renders the figure to an image at the figure DPI.
func (f *Figure) Image() image.Image {
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.dpi()))
	f.Draw(draw.New(c))
	return c.Image()
}
