// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package style selects publication styles for figures from style sheets.
//
// A style sheet sets the parameters of one figure [Element], such as the
// fonts or the ticks. Sheets are looked up by name, first in the
// user directories listed in [Paths], then among the sheets embedded in
// this package. [Use] applies sheets to the current parameters, which
// new figures and axes start from:
//
//	style.Use("pretty_style_v1", style.Figure, style.Fonts, style.Grid, style.Ticks, style.Legend)
package style

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
)

// Element is a part of a figure that style sheets apply to.
type Element int32

const (
	// Figure is the figure size, resolution and page layout.
	Figure Element = iota

	// Fonts is the typeface and size of text.
	Fonts

	// Grid is the grid lines.
	Grid

	// Ticks is the tick marks, tick labels and axes frame.
	Ticks

	// Legend is the legend box.
	Legend

	// Lines is the data lines.
	Lines

	elementN
)

var elementNames = [...]string{"figure", "fonts", "grid", "ticks", "legend", "lines"}

// Elements returns all elements.
func Elements() []Element {
	els := make([]Element, elementN)
	for i := range els {
		els[i] = Element(i)
	}
	return els
}

// String returns the lower-case name of the element, which is also
// the name of its style sheet directory.
func (e Element) String() string {
	if e < 0 || e >= elementN {
		return fmt.Sprintf("Element(%d)", int32(e))
	}
	return elementNames[e]
}

// ParseElement returns the element with the given name.
func ParseElement(s string) (Element, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range elementNames {
		if n == s {
			return Element(i), nil
		}
	}
	return 0, fmt.Errorf("style: unknown element %q: %w", s, ErrInvalid)
}

var (
	// ErrNotFound is returned when no style sheet exists for a name and element.
	ErrNotFound = errors.New("style sheet not found")

	// ErrInvalid is returned for invalid names and sheet contents.
	ErrInvalid = errors.New("invalid style")
)

var (
	mu      sync.RWMutex
	current = Default()
)

// Current returns a copy of the current parameters.
func Current() *Params {
	mu.RLock()
	defer mu.RUnlock()
	return clone(current)
}

// Set replaces the current parameters with a copy of p.
func Set(p *Params) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("style.Set: %w", err)
	}
	mu.Lock()
	current = clone(p)
	mu.Unlock()
	return nil
}

// Reset restores the default parameters.
func Reset() {
	mu.Lock()
	current = Default()
	mu.Unlock()
}

// Use applies the style sheet with the given name to each of the given
// elements of the current parameters, in order. With no elements, the
// sheet is applied to [Fonts]. Keys absent from a sheet keep their
// current value. If any sheet is missing or invalid, the current
// parameters are left unchanged.
func Use(name string, elements ...Element) error {
	if len(elements) == 0 {
		elements = []Element{Fonts}
	}
	mu.RLock()
	next := clone(current)
	mu.RUnlock()
	for _, el := range elements {
		if err := applySheet(next, name, el); err != nil {
			return fmt.Errorf("style.Use: %w", err)
		}
	}
	if err := next.Validate(); err != nil {
		return fmt.Errorf("style.Use %q: %w: %w", name, ErrInvalid, err)
	}
	mu.Lock()
	current = next
	mu.Unlock()
	slog.Debug("applied style sheet", "name", name, "elements", elements)
	return nil
}

// group returns a pointer to the parameter group of p for el.
func (p *Params) group(el Element) any {
	switch el {
	case Figure:
		return &p.Figure
	case Fonts:
		return &p.Fonts
	case Grid:
		return &p.Grid
	case Ticks:
		return &p.Ticks
	case Legend:
		return &p.Legend
	case Lines:
		return &p.Lines
	}
	return nil
}

// clone returns a deep copy of p.
func clone(p *Params) *Params {
	c := &Params{}
	if err := copier.CopyWithOption(c, p, copier.Option{DeepCopy: true}); err != nil {
		// copying between identical types only fails on programmer error
		panic(err)
	}
	return c
}
