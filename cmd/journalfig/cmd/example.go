// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmd implements the commands of the journalfig tool.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/journalfig/base/iox/imagex"
	"cogentcore.org/journalfig/cmd/journalfig/config"
	"cogentcore.org/journalfig/colormap"
	"cogentcore.org/journalfig/demo"
	"cogentcore.org/journalfig/figure"
	"cogentcore.org/journalfig/style"
)

// Example builds the example figure and writes it to the configured output.
func Example(c *config.Config) error {
	opts, err := c.Options()
	if err != nil {
		return err
	}
	f, err := demo.Build(opts)
	if err != nil {
		return err
	}
	if c.DPI > 0 {
		f.DPI = c.DPI
	}
	if c.Gray || c.Thumb > 0 {
		err = saveProcessed(f, c)
	} else {
		err = f.Save(c.Output)
	}
	if err != nil {
		return err
	}
	slog.Info("wrote figure", "file", c.Output)
	return nil
}

// saveProcessed writes the raster figure after the grayscale and
// thumbnail steps.
func saveProcessed(f *figure.Figure, c *config.Config) error {
	if _, err := imagex.ExtToFormat(filepath.Ext(c.Output)); err != nil {
		return fmt.Errorf("grayscale and thumbnail output need a raster format: %w", err)
	}
	img := f.Image()
	if c.Gray {
		img = imagex.Grayscale(img)
	}
	if c.Thumb > 0 {
		img = imagex.Thumbnail(img, c.Thumb, c.Thumb)
	}
	return imagex.Save(img, c.Output)
}

// Styles lists the available style sheets of the configured element,
// or of all elements.
func Styles(c *config.Config, w io.Writer) error {
	els := style.Elements()
	if c.Element != "" {
		el, err := style.ParseElement(c.Element)
		if err != nil {
			return err
		}
		els = []style.Element{el}
	}
	for _, el := range els {
		fmt.Fprintf(w, "%s:\n", el)
		for _, n := range style.Names(el) {
			fmt.Fprintf(w, "  %s\n", n)
		}
	}
	return nil
}

// Colormaps lists the colormap names.
func Colormaps(w io.Writer) error {
	for _, n := range colormap.Names() {
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}
	return nil
}
