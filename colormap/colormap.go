// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colormap provides the color schemes and colormaps used by
// journal figures: the IEEE brand palettes, listed colormaps that
// interpolate between colors, and named lookup of the moreland maps.
package colormap

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"slices"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/moreland"
)

// ErrUnknown is returned by [Named] for unknown colormap names.
var ErrUnknown = errors.New("unknown colormap")

func rgb(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

// IEEEBright is the bright IEEE brand palette.
var IEEEBright = palette.Palette(colors{
	rgb(186, 12, 47),  // red
	rgb(255, 163, 0),  // orange
	rgb(255, 209, 0),  // yellow
	rgb(120, 190, 32), // light green
	rgb(0, 132, 61),   // dark green
	rgb(152, 29, 151), // purple
	rgb(0, 156, 166),  // cyan
	rgb(0, 98, 155),   // dark blue
	rgb(0, 181, 226),  // light blue
	rgb(255, 255, 255),
})

// IEEEDark is the dark IEEE brand palette.
var IEEEDark = palette.Palette(colors{
	rgb(134, 31, 65),  // red
	rgb(232, 119, 34), // orange
	rgb(255, 199, 44), // yellow
	rgb(101, 141, 27), // light green
	rgb(0, 99, 65),    // dark green
	rgb(119, 37, 131), // purple
	rgb(0, 115, 119),  // cyan
	rgb(0, 40, 85),    // dark blue
	rgb(117, 120, 123),
	rgb(0, 0, 0),
})

// viridis are ten evenly spaced samples of the viridis colormap.
var viridis = colors{
	rgb(0x44, 0x01, 0x54), rgb(0x48, 0x28, 0x78), rgb(0x3e, 0x49, 0x89),
	rgb(0x31, 0x68, 0x8e), rgb(0x26, 0x82, 0x8e), rgb(0x1f, 0x9e, 0x89),
	rgb(0x35, 0xb7, 0x79), rgb(0x6e, 0xce, 0x58), rgb(0xb5, 0xde, 0x2b),
	rgb(0xfd, 0xe7, 0x25),
}

// colors is a palette.Palette backed by a slice.
type colors []color.Color

func (c colors) Colors() []color.Color { return c }

// Palette returns a palette of the given colors.
func Palette(cs ...color.Color) palette.Palette {
	return colors(slices.Clone(cs))
}

// named are the colormap constructors available through [Named].
var named = map[string]func() palette.ColorMap{
	"ieee_bright":         func() palette.ColorMap { return Listed(IEEEBright.Colors()[:9]...) },
	"ieee_dark":           func() palette.ColorMap { return Listed(IEEEDark.Colors()[:9]...) },
	"viridis":             func() palette.ColorMap { return Listed(viridis...) },
	"gray":                func() palette.ColorMap { return Listed(color.Black, color.White) },
	"kindlmann":           moreland.Kindlmann,
	"extended_kindlmann":  moreland.ExtendedKindlmann,
	"black_body":          moreland.BlackBody,
	"extended_black_body": moreland.ExtendedBlackBody,
	"blue_red":            func() palette.ColorMap { return moreland.SmoothBlueRed() },
	"blue_tan":            func() palette.ColorMap { return moreland.SmoothBlueTan() },
	"green_purple":        func() palette.ColorMap { return moreland.SmoothGreenPurple() },
	"green_red":           func() palette.ColorMap { return moreland.SmoothGreenRed() },
	"purple_orange":       func() palette.ColorMap { return moreland.SmoothPurpleOrange() },
}

// Names returns the sorted names accepted by [Named].
func Names() []string {
	ns := make([]string, 0, len(named))
	for n := range named {
		ns = append(ns, n)
	}
	slices.Sort(ns)
	return ns
}

// Named returns a new instance of the colormap with the given name,
// normalized to the range [0, 1].
func Named(name string) (palette.ColorMap, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if f, ok := named[key]; ok {
		cm := f()
		cm.SetMin(0)
		cm.SetMax(1)
		return cm, nil
	}
	err := fmt.Errorf("colormap.Named: %q: %w", name, ErrUnknown)
	best, score := "", 0.5
	for _, n := range Names() {
		if s := strutil.Similarity(key, n, metrics.NewLevenshtein()); s > score {
			best, score = n, s
		}
	}
	if best != "" {
		err = fmt.Errorf("%w (did you mean %q?)", err, best)
	}
	return nil, err
}

// Sample returns the color at i/(n-1) of cm's range, which spreads
// n colors evenly over the whole colormap. A single color (n <= 1)
// is taken from the start of the range.
func Sample(cm palette.ColorMap, i, n int) (color.Color, error) {
	if n > 1 && i == n-1 {
		return cm.At(cm.Max())
	}
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	return cm.At(cm.Min() + t*(cm.Max()-cm.Min()))
}

// ListedMap is a colormap interpolating in CIE-L*a*b* space between
// evenly spaced colors.
type ListedMap struct {
	stops    []colorful.Color
	alpha    float64
	min, max float64
}

// Listed returns a colormap through the given colors, with the range [0, 1].
// It panics if fewer than two colors are given.
func Listed(cs ...color.Color) *ListedMap {
	if len(cs) < 2 {
		panic("colormap: Listed needs at least two colors")
	}
	lm := &ListedMap{alpha: 1, max: 1}
	for _, c := range cs {
		cf, _ := colorful.MakeColor(c)
		lm.stops = append(lm.stops, cf)
	}
	return lm
}

// At implements palette.ColorMap.
func (lm *ListedMap) At(v float64) (color.Color, error) {
	switch {
	case math.IsNaN(v):
		return nil, palette.ErrNaN
	case v < lm.min:
		return nil, palette.ErrUnderflow
	case v > lm.max:
		return nil, palette.ErrOverflow
	}
	t := 0.0
	if lm.max > lm.min {
		t = (v - lm.min) / (lm.max - lm.min)
	}
	pos := t * float64(len(lm.stops)-1)
	i := min(int(pos), len(lm.stops)-2)
	c := lm.stops[i].BlendLab(lm.stops[i+1], pos-float64(i)).Clamped()
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(lm.alpha*255 + 0.5)}, nil
}

// Max implements palette.ColorMap.
func (lm *ListedMap) Max() float64 { return lm.max }

// Min implements palette.ColorMap.
func (lm *ListedMap) Min() float64 { return lm.min }

// SetMax implements palette.ColorMap.
func (lm *ListedMap) SetMax(v float64) { lm.max = v }

// SetMin implements palette.ColorMap.
func (lm *ListedMap) SetMin(v float64) { lm.min = v }

// Alpha implements palette.ColorMap.
func (lm *ListedMap) Alpha() float64 { return lm.alpha }

// SetAlpha implements palette.ColorMap.
func (lm *ListedMap) SetAlpha(a float64) { lm.alpha = max(0, min(1, a)) }

// Palette implements palette.ColorMap.
func (lm *ListedMap) Palette(n int) palette.Palette {
	cs := make(colors, n)
	for i := range cs {
		c, err := Sample(lm, i, n)
		if err != nil {
			c = color.Transparent
		}
		cs[i] = c
	}
	return cs
}
