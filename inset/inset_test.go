// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inset

import (
	"image/color"
	"math"
	"testing"

	"cogentcore.org/journalfig/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var (
	mainLimits   = figure.Limits{X: figure.Range{Min: -0.5, Max: 49.5}, Y: figure.Range{Min: -1.1, Max: 1.1}}
	detailLimits = figure.Limits{X: figure.Range{Min: 21.5, Max: 27.5}, Y: figure.Range{Min: -0.35, Max: 0.35}}
	detailPos    = figure.Limits{X: figure.Range{Min: 14, Max: 29}, Y: figure.Range{Min: -2.3, Max: -0.6}}
)

func TestParseCorner(t *testing.T) {
	for s, want := range map[string]Corner{"NE": NE, "nw": NW, "ES": SE, "SW": SW} {
		c, err := ParseCorner(s)
		require.NoError(t, err, s)
		assert.Equal(t, want, c)
	}
	for _, s := range []string{"", "N", "NS", "NNE", "XY"} {
		_, err := ParseCorner(s)
		assert.ErrorIs(t, err, ErrInvalid, s)
	}
	assert.Equal(t, "SE", SE.String())
}

func TestCornerOf(t *testing.T) {
	assert.Equal(t, plotter.XY{X: 27.5, Y: 0.35}, NE.Of(detailLimits))
	assert.Equal(t, plotter.XY{X: 21.5, Y: 0.35}, NW.Of(detailLimits))
	assert.Equal(t, plotter.XY{X: 27.5, Y: -0.35}, SE.Of(detailLimits))
	assert.Equal(t, plotter.XY{X: 21.5, Y: -0.35}, SW.Of(detailLimits))
}

func TestRelativePosition(t *testing.T) {
	main := figure.Rect{X0: 0.1, Y0: 0.54, Width: 0.7, Height: 0.4}
	r, err := RelativePosition(main, mainLimits, detailPos)
	require.NoError(t, err)
	assert.InDelta(t, 0.1+14.5/50*0.7, r.X0, 1e-12)
	assert.InDelta(t, 0.54-1.2/2.2*0.4, r.Y0, 1e-12)
	assert.InDelta(t, 15.0/50*0.7, r.Width, 1e-12)
	assert.InDelta(t, 1.7/2.2*0.4, r.Height, 1e-12)

	// the whole main area maps onto the main rectangle
	r, err = RelativePosition(main, mainLimits, mainLimits)
	require.NoError(t, err)
	assert.InDelta(t, main.X0, r.X0, 1e-12)
	assert.InDelta(t, main.Y0, r.Y0, 1e-12)
	assert.InDelta(t, main.Width, r.Width, 1e-12)
	assert.InDelta(t, main.Height, r.Height, 1e-12)

	flat := mainLimits
	flat.Y = figure.Range{Min: 1, Max: 1}
	_, err = RelativePosition(main, flat, detailPos)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDetail(t *testing.T) {
	f := figure.New()
	main := f.AddAxes(figure.Rect{X0: 0.1, Y0: 0.54, Width: 0.7, Height: 0.4})
	detail := f.AddAxes(figure.Rect{X0: 0.4, Y0: 0.4, Width: 0.2, Height: 0.2})

	setting := LineSetting{Dash: figure.Dotted, Color: color.Black, Width: 1, Alpha: 1}
	conns := []Connection{{NW, NW}, {NE, NE}}
	lines, err := Detail(main, detail, mainLimits, detailLimits, detailPos, conns, setting)
	require.NoError(t, err)

	assert.Equal(t, mainLimits, main.Limits())
	assert.Equal(t, detailLimits, detail.Limits())
	want, err := RelativePosition(main.Rect(), mainLimits, detailPos)
	require.NoError(t, err)
	assert.Equal(t, want, detail.Rect())

	assert.Equal(t, plotter.XYs{{X: 21.5, Y: -0.35}, {X: 27.5, Y: -0.35}}, lines.RectBottom.XYs)
	assert.Equal(t, plotter.XYs{{X: 27.5, Y: -0.35}, {X: 27.5, Y: 0.35}}, lines.RectRight.XYs)
	assert.Equal(t, plotter.XYs{{X: 27.5, Y: 0.35}, {X: 21.5, Y: 0.35}}, lines.RectTop.XYs)
	assert.Equal(t, plotter.XYs{{X: 21.5, Y: 0.35}, {X: 21.5, Y: -0.35}}, lines.RectLeft.XYs)
	assert.NotEmpty(t, lines.RectTop.LineStyle.Dashes)

	require.Len(t, lines.Connectors, 2)
	assert.Equal(t, plotter.XY{X: 21.5, Y: 0.35}, lines.Connectors[0].From)
	assert.Equal(t, plotter.XY{X: 14, Y: -0.6}, lines.Connectors[0].To)
	assert.Equal(t, plotter.XY{X: 27.5, Y: 0.35}, lines.Connectors[1].From)
	assert.Equal(t, plotter.XY{X: 29, Y: -0.6}, lines.Connectors[1].To)

	m := lines.Map()
	assert.Len(t, m, 6)
	assert.Contains(t, m, "rect_left")
	assert.Contains(t, m, "connector_1")
	assert.Len(t, main.Plotters(), 6)

	sp := detail.Spines.South.Line
	assert.Equal(t, figure.Solid, sp.Dash)
	assert.Equal(t, vg.Length(1), sp.Width)
	assert.Equal(t, color.Black, sp.Color)

	img := f.Image()
	assert.Positive(t, img.Bounds().Dx())
}

func TestDetailDefaults(t *testing.T) {
	f := figure.New()
	main := f.AddAxes(figure.Rect{X0: 0.1, Y0: 0.1, Width: 0.8, Height: 0.8})
	detail := f.AddAxes(figure.Rect{})
	lines, err := Detail(main, detail, mainLimits, detailLimits, detailPos, nil, DefaultLineSetting())
	require.NoError(t, err)
	require.Len(t, lines.Connectors, 2)
	assert.Equal(t, NE.Of(detailLimits), lines.Connectors[0].From)
	assert.Equal(t, SW.Of(detailPos), lines.Connectors[1].To)
	assert.Equal(t, vg.Points(0.5), detail.Spines.West.Line.Width)

	lines, err = Detail(main, detail, mainLimits, detailLimits, detailPos, []Connection{}, DefaultLineSetting())
	require.NoError(t, err)
	assert.Empty(t, lines.Connectors)

	_, err = Detail(nil, detail, mainLimits, detailLimits, detailPos, nil, DefaultLineSetting())
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestDetailNotFinite(t *testing.T) {
	f := figure.New()
	main := f.AddAxes(figure.Rect{X0: 0.1, Y0: 0.1, Width: 0.8, Height: 0.8})
	detail := f.AddAxes(figure.Rect{})
	before := main.Limits()

	bad := detailLimits
	bad.X.Max = math.NaN()
	_, err := Detail(main, detail, mainLimits, bad, detailPos, nil, DefaultLineSetting())
	assert.ErrorIs(t, err, ErrInvalid)

	bad = detailPos
	bad.Y.Min = math.Inf(-1)
	_, err = Detail(main, detail, mainLimits, detailLimits, bad, nil, DefaultLineSetting())
	assert.ErrorIs(t, err, ErrInvalid)

	assert.Empty(t, main.Plotters())
	assert.Equal(t, before, main.Limits())
	assert.Equal(t, figure.Rect{}, detail.Position)
}
