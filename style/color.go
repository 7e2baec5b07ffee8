// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color as written in style sheets: a hex string
// ("#rrggbb" or "#rgb") or one of the basic color names.
// Color implements [color.Color]; colors that fail to parse are black.
type Color string

// names are the basic color names accepted in style sheets.
var names = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"grey":    "#808080",
	"red":     "#ff0000",
	"green":   "#008000",
	"blue":    "#0000ff",
	"cyan":    "#00bfbf",
	"magenta": "#bf00bf",
	"yellow":  "#bfbf00",
	"orange":  "#ffa500",
	"purple":  "#800080",
}

// Parse returns the color value of c.
func (c Color) Parse() (colorful.Color, error) {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	if hex, ok := names[s]; ok {
		s = hex
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("style: invalid color %q: %w", string(c), err)
	}
	return cf, nil
}

// IsNone returns whether c is empty or "none", meaning nothing is drawn.
func (c Color) IsNone() bool {
	s := strings.ToLower(strings.TrimSpace(string(c)))
	return s == "" || s == "none"
}

// RGBA implements [color.Color].
func (c Color) RGBA() (r, g, b, a uint32) {
	cf, err := c.Parse()
	if err != nil {
		return 0, 0, 0, 0xffff
	}
	return cf.RGBA()
}

// WithAlpha returns c as a non-premultiplied color with the given opacity.
func (c Color) WithAlpha(alpha float64) color.Color {
	return Alpha(c, alpha)
}

// Alpha returns clr with its opacity multiplied by alpha (clamped to 0..1).
func Alpha(clr color.Color, alpha float64) color.Color {
	if clr == nil {
		return nil
	}
	alpha = max(0, min(1, alpha))
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	n.A = uint8(float64(n.A)*alpha + 0.5)
	return n
}

// Validate returns an error for the first color of p that does not parse.
func (p *Params) Validate() error {
	cs := map[string]Color{
		"figure.background":      p.Figure.Background,
		"figure.axes_background": p.Figure.AxesBackground,
		"fonts.color":            p.Fonts.Color,
		"grid.color":             p.Grid.Color,
		"ticks.color":            p.Ticks.Color,
		"ticks.spine_color":      p.Ticks.SpineColor,
		"legend.edge_color":      p.Legend.EdgeColor,
		"legend.face_color":      p.Legend.FaceColor,
	}
	for i, c := range p.Lines.Cycle {
		cs[fmt.Sprintf("lines.cycle[%d]", i)] = c
	}
	for key, c := range cs {
		if c.IsNone() {
			continue
		}
		if _, err := c.Parse(); err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
	}
	return nil
}
