// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colorbar

import (
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// bands is a discrete colorbar: the regions between consecutive
// boundaries are filled with the color at their midpoint.
type bands struct {
	ColorMap   palette.ColorMap
	Boundaries []float64
	Vertical   bool
}

// Plot implements plot.Plotter.
func (b *bands) Plot(c draw.Canvas, p *plot.Plot) {
	trX, trY := p.Transforms(&c)
	lo, hi := b.ColorMap.Min(), b.ColorMap.Max()
	for i := 1; i < len(b.Boundaries); i++ {
		b0, b1 := b.Boundaries[i-1], b.Boundaries[i]
		mid := math.Max(lo, math.Min(hi, (b0+b1)/2))
		col, err := b.ColorMap.At(mid)
		if err != nil {
			continue
		}
		var r vg.Rectangle
		if b.Vertical {
			r = vg.Rectangle{Min: vg.Point{X: trX(0), Y: trY(b0)}, Max: vg.Point{X: trX(1), Y: trY(b1)}}
		} else {
			r = vg.Rectangle{Min: vg.Point{X: trX(b0), Y: trY(0)}, Max: vg.Point{X: trX(b1), Y: trY(1)}}
		}
		c.SetColor(col)
		c.Fill(r.Path())
	}
}

// DataRange implements plot.DataRanger.
func (b *bands) DataRange() (xmin, xmax, ymin, ymax float64) {
	lo, hi := b.Boundaries[0], b.Boundaries[len(b.Boundaries)-1]
	if b.Vertical {
		return 0, 1, lo, hi
	}
	return lo, hi, 0, 1
}
