// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Formats are the output formats understood by [Figure.Save] and [Figure.WriteTo].
var Formats = []string{"png", "jpg", "jpeg", "tif", "tiff", "svg", "pdf", "eps"}

// canvas returns a canvas of the figure size for the format. Raster
// formats are rendered at the figure DPI.
func (f *Figure) canvas(format string) (vg.CanvasWriterTo, error) {
	format = strings.ToLower(format)
	raster := func() *vgimg.Canvas {
		return vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.dpi()))
	}
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: raster()}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster()}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster()}, nil
	}
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return nil, fmt.Errorf("figure: %w: %w", ErrInvalid, err)
	}
	return c, nil
}

// WriteTo draws the figure and writes it to w in the given format.
func (f *Figure) WriteTo(w io.Writer, format string) (int64, error) {
	c, err := f.canvas(format)
	if err != nil {
		return 0, err
	}
	f.Draw(draw.New(c))
	return c.WriteTo(w)
}

// Save draws the figure to the named file, in the format given by
// the file extension.
func (f *Figure) Save(filename string) (err error) {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	c, err := f.canvas(ext)
	if err != nil {
		return fmt.Errorf("figure.Save %q: %w", filename, err)
	}
	f.Draw(draw.New(c))
	fp, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := fp.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = c.WriteTo(fp)
	return err
}
