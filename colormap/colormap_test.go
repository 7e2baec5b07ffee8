// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/palette"
)

func nrgba(t *testing.T, c color.Color) color.NRGBA {
	t.Helper()
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

func TestPalettes(t *testing.T) {
	assert.Len(t, IEEEBright.Colors(), 10)
	assert.Len(t, IEEEDark.Colors(), 10)
	assert.Equal(t, color.NRGBA{186, 12, 47, 255}, IEEEBright.Colors()[0])
	p := Palette(color.Black, color.White)
	assert.Len(t, p.Colors(), 2)
}

func TestListed(t *testing.T) {
	lm := Listed(color.Black, color.White)
	c, err := lm.At(0)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, nrgba(t, c))
	c, err = lm.At(1)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, nrgba(t, c))

	// interpolation is in L*a*b*, so the midpoint is a perceptual mid gray
	c, err = lm.At(0.5)
	require.NoError(t, err)
	mid := nrgba(t, c)
	for _, ch := range []uint8{mid.R, mid.G, mid.B} {
		assert.InDelta(t, 119, int(ch), 3)
	}

	_, err = lm.At(-0.1)
	assert.ErrorIs(t, err, palette.ErrUnderflow)
	_, err = lm.At(1.1)
	assert.ErrorIs(t, err, palette.ErrOverflow)
	_, err = lm.At(math.NaN())
	assert.ErrorIs(t, err, palette.ErrNaN)

	lm.SetMin(0.3)
	lm.SetMax(1.3)
	c, err = lm.At(1.3)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, nrgba(t, c))

	lm.SetAlpha(2)
	assert.Equal(t, 1.0, lm.Alpha())
	lm.SetAlpha(0.5)
	c, err = lm.At(0.3)
	require.NoError(t, err)
	assert.Equal(t, uint8(128), nrgba(t, c).A)

	assert.Len(t, lm.Palette(5).Colors(), 5)
	assert.Panics(t, func() { Listed(color.Black) })
}

func TestNamed(t *testing.T) {
	for _, n := range Names() {
		cm, err := Named(n)
		require.NoError(t, err, n)
		assert.Equal(t, 0.0, cm.Min())
		assert.Equal(t, 1.0, cm.Max())
		for _, v := range []float64{0, 0.5, 1} {
			_, err := cm.At(v)
			assert.NoError(t, err, "%s at %v", n, v)
		}
	}
	assert.Contains(t, Names(), "ieee_bright")
	assert.Contains(t, Names(), "kindlmann")
	for _, n := range []string{"blue_red", "blue_tan", "green_purple", "green_red", "purple_orange"} {
		assert.Contains(t, Names(), n)
	}

	_, err := Named("Blue_Red")
	assert.NoError(t, err)

	_, err = Named("viridus")
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Contains(t, err.Error(), `did you mean "viridis"`)

	_, err = Named("zzzz")
	assert.ErrorIs(t, err, ErrUnknown)
	assert.NotContains(t, err.Error(), "did you mean")
}

func TestSample(t *testing.T) {
	cm, err := Named("gray")
	require.NoError(t, err)
	cm.SetMin(0.3)
	cm.SetMax(1.3)
	first, err := Sample(cm, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 0, 255}, nrgba(t, first))
	last, err := Sample(cm, 5, 6)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{255, 255, 255, 255}, nrgba(t, last))
	one, err := Sample(cm, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, first, one)
}
