// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Grayscale returns a grayscale proof of the image, showing how a
// figure reads when printed without color.
func Grayscale(im image.Image) *image.Gray {
	b := im.Bounds()
	g := image.NewGray(b)
	draw.Draw(g, b, effect.Grayscale(im), b.Min, draw.Src)
	return g
}

// Thumbnail returns the image scaled down to fit in a box of the
// given size, keeping its aspect ratio. Images that already fit are
// returned as is.
func Thumbnail(im image.Image, width, height int) image.Image {
	b := im.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return im
	}
	return imaging.Fit(im, width, height, imaging.Lanczos)
}
