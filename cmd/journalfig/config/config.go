// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs for the journalfig tool.
package config

import (
	"fmt"

	"cogentcore.org/journalfig/demo"
	"cogentcore.org/journalfig/figure"
	"cogentcore.org/journalfig/style"
)

// Config is the main config struct for the journalfig tool.
type Config struct {

	// Output is the file the example figure is written to; its
	// extension selects the format.
	Output string

	// Style is the style sheet applied to the Apply elements.
	Style string

	// Apply are the names of the elements the style sheet is applied to.
	Apply []string

	Colormap string

	// Width, Height and Units are the size of the subplot area.
	Width, Height float64
	Units         string

	// DPI of raster output; 0 keeps the style value.
	DPI float64

	// Gray writes a grayscale proof of raster output.
	Gray bool

	// Thumb, if non-zero, fits raster output into a Thumb x Thumb square.
	Thumb int

	// Watch rebuilds the figure whenever a style sheet changes.
	Watch bool

	// Element limits the styles command to one element.
	Element string

	// Verbose, VeryVerbose and Quiet select the log level.
	Verbose, VeryVerbose, Quiet bool
}

// Default returns the configuration of the example command.
func Default() *Config {
	o := demo.DefaultOptions()
	c := &Config{
		Output:   "example_figure.png",
		Style:    o.Style,
		Colormap: o.Colormap,
		Width:    o.Width,
		Height:   o.Height,
		Units:    o.Units.String(),
	}
	for _, el := range o.Elements {
		c.Apply = append(c.Apply, el.String())
	}
	return c
}

// Options returns the demo options of the configuration.
func (c *Config) Options() (demo.Options, error) {
	o := demo.DefaultOptions()
	o.Style = c.Style
	o.Colormap = c.Colormap
	o.Width, o.Height = c.Width, c.Height
	u, err := figure.ParseUnits(c.Units)
	if err != nil {
		return o, fmt.Errorf("config: %w", err)
	}
	o.Units = u
	o.Elements = o.Elements[:0:0]
	for _, a := range c.Apply {
		el, err := style.ParseElement(a)
		if err != nil {
			return o, fmt.Errorf("config: %w", err)
		}
		o.Elements = append(o.Elements, el)
	}
	return o, nil
}
