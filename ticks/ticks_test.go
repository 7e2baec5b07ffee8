// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ticks

import (
	"testing"

	"cogentcore.org/journalfig/figure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/text"
)

func newAxes(t *testing.T) *figure.Axes {
	t.Helper()
	f := figure.New()
	ax := f.AddAxes(figure.Rect{X0: 0.1, Y0: 0.1, Width: 0.8, Height: 0.8})
	ax.SetXLim(-0.5, 49.5)
	ax.SetYLim(-1.1, 1.1)
	return ax
}

func TestParseAxis(t *testing.T) {
	a, err := ParseAxis("x")
	require.NoError(t, err)
	assert.Equal(t, X, a)
	a, err = ParseAxis("Y")
	require.NoError(t, err)
	assert.Equal(t, Y, a)
	_, err = ParseAxis("z")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLayout(t *testing.T) {
	lay, err := LabelStyle{Align: "SW", Rotation: 45, PadY: 0.01}.Layout()
	require.NoError(t, err)
	assert.True(t, lay.Custom)
	assert.Equal(t, text.XLeft, lay.XAlign)
	assert.Equal(t, text.YBottom, lay.YAlign)
	assert.Equal(t, 45.0, lay.Rotation)
	assert.Equal(t, 0.01, lay.PadY)

	lay, err = LabelStyle{Align: "NE"}.Layout()
	require.NoError(t, err)
	assert.Equal(t, text.XRight, lay.XAlign)
	assert.Equal(t, text.YTop, lay.YAlign)

	lay, err = DefaultLabelStyle().Layout()
	require.NoError(t, err)
	assert.Equal(t, text.XCenter, lay.XAlign)
	assert.Equal(t, text.YCenter, lay.YAlign)

	_, err = LabelStyle{Align: "Q"}.Layout()
	assert.ErrorIs(t, err, figure.ErrInvalid)
}

func TestSetMajorTicks(t *testing.T) {
	ax := newAxes(t)
	ls := DefaultLabelStyle()
	ls.Sides = "N"
	ls.Format = "{0:.0f}"
	require.NoError(t, SetMajorTicks(ax, 5, X, Auto(), ls, TickStyle{Sides: "NS"}))

	mt := ax.XTicks.Major
	assert.Equal(t, figure.North|figure.South, mt.Sides)
	assert.Equal(t, figure.North, mt.LabelSides)
	require.Len(t, mt.Labels, 10)
	assert.Equal(t, "0", mt.Labels[0])
	assert.Equal(t, "45", mt.Labels[9])
	ts := mt.Ticker.Ticks(-0.5, 49.5)
	require.Len(t, ts, 10)
	assert.Equal(t, 25.0, ts[5].Value)

	// limits are fixed at call time
	ax.SetXLim(0, 100)
	assert.Len(t, ax.XTicks.Major.Ticker.Ticks(0, 100), 10)

	// y sides are taken from the vertical letters only
	require.NoError(t, SetMajorTicks(ax, 0.4, Y, Auto(), LabelStyle{Sides: "NW", Format: "{0:.1f}"}, DefaultTickStyle()))
	yt := ax.YTicks.Major
	assert.Equal(t, figure.West|figure.East, yt.Sides)
	assert.Equal(t, figure.West, yt.LabelSides)
	assert.Equal(t, []string{"-0.8", "-0.4", "0.0", "0.4", "0.8"}, yt.Labels)
}

func TestSetMajorTicksDecimalPeriod(t *testing.T) {
	ax := newAxes(t)
	ax.SetYLim(0, 1)
	require.NoError(t, SetMajorTicks(ax, 0.1, Y, Auto(), LabelStyle{Sides: "W", Format: "{0!s}"}, DefaultTickStyle()))
	assert.Equal(t, []string{"0.0", "0.1", "0.2", "0.3", "0.4", "0.5", "0.6", "0.7", "0.8", "0.9", "1.0"}, ax.YTicks.Major.Labels)
}

func TestSetMajorTicksLabels(t *testing.T) {
	ax := newAxes(t)
	require.NoError(t, SetMajorTicks(ax, 0.5, Y, Custom("a", "b", "c", "d", "e"), LabelStyle{Sides: "W", Format: "<{0}>"}, DefaultTickStyle()))
	assert.Equal(t, []string{"<a>", "<b>", "<c>", "<d>", "<e>"}, ax.YTicks.Major.Labels)

	err := SetMajorTicks(ax, 0.5, Y, Custom("a", "b"), DefaultLabelStyle(), DefaultTickStyle())
	assert.ErrorIs(t, err, ErrInvalid)

	require.NoError(t, SetMajorTicks(ax, 0.5, Y, Hidden(), DefaultLabelStyle(), DefaultTickStyle()))
	assert.Equal(t, figure.NoSides, ax.YTicks.Major.LabelSides)
	assert.Equal(t, figure.West|figure.East, ax.YTicks.Major.Sides)
	assert.Equal(t, []string{"", "", "", "", ""}, ax.YTicks.Major.Labels)
}

func TestSetMajorTicksLatexify(t *testing.T) {
	ax := newAxes(t)
	ls := LabelStyle{Sides: "W", Format: "{0:.0%}", Latexify: true}
	require.NoError(t, SetMajorTicks(ax, 0.5, Y, Auto(), ls, DefaultTickStyle()))
	assert.Equal(t, []string{`$-100\%$`, `$-50\%$`, `$0\%$`, `$50\%$`, `$100\%$`}, ax.YTicks.Major.Labels)

	require.NoError(t, SetMajorTicks(ax, 0.5, Y, Hidden(), ls, DefaultTickStyle()))
	assert.Equal(t, []string{"", "", "", "", ""}, ax.YTicks.Major.Labels)
}

func TestSetMajorTicksErrors(t *testing.T) {
	ax := newAxes(t)
	assert.ErrorIs(t, SetMajorTicks(ax, 0, X, Auto(), DefaultLabelStyle(), DefaultTickStyle()), ErrInvalid)
	assert.ErrorIs(t, SetMajorTicks(ax, -1, X, Auto(), DefaultLabelStyle(), DefaultTickStyle()), ErrInvalid)
	assert.ErrorIs(t, SetMajorTicks(ax, 1e-6, X, Auto(), DefaultLabelStyle(), DefaultTickStyle()), ErrInvalid)
	assert.ErrorIs(t, SetMajorTicks(ax, 1, X, Auto(), LabelStyle{Sides: "X"}, DefaultTickStyle()), figure.ErrInvalid)
	assert.NoError(t, SetMajorTicks(ax, 1, X, Auto(), LabelStyle{Format: "{0:d}"}, DefaultTickStyle()))
	assert.ErrorIs(t, SetMajorTicks(ax, 1, X, Auto(), LabelStyle{Format: "{1}"}, DefaultTickStyle()), ErrFormat)
}

func TestSetMinorTicks(t *testing.T) {
	ax := newAxes(t)
	require.NoError(t, SetMajorTicks(ax, 5, X, Auto(), DefaultLabelStyle(), DefaultTickStyle()))
	require.NoError(t, SetMinorTicks(ax, 2.5, X, TickStyle{Sides: "S"}))
	mt := ax.XTicks.Minor
	assert.Equal(t, figure.South, mt.Sides)
	assert.Equal(t, figure.NoSides, mt.LabelSides)
	assert.Len(t, mt.Ticker.Ticks(-0.5, 49.5), 20)
	assert.Nil(t, mt.Labels)

	assert.ErrorIs(t, SetMinorTicks(ax, 0, X, DefaultTickStyle()), ErrInvalid)
	assert.ErrorIs(t, SetMinorTicks(ax, 1, Y, TickStyle{Sides: "up"}), figure.ErrInvalid)
}

func TestSetFixedTicks(t *testing.T) {
	ax := newAxes(t)
	require.NoError(t, SetFixedTicks(ax, []float64{0.4, 0.56}, Y, Auto(), DefaultColorbarLabelStyle(), DefaultTickStyle()))
	yt := ax.YTicks.Major
	assert.Equal(t, []string{"0.400", "0.560"}, yt.Labels)
	assert.Equal(t, figure.East, yt.LabelSides)
}
