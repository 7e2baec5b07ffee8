// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"math"
	"strings"
)

// Rect is a rectangle in figure-relative coordinates, where (0, 0) is the
// bottom left corner of the figure and (1, 1) the top right one.
type Rect struct {
	X0, Y0        float64
	Width, Height float64
}

// Max returns the top right corner of r.
func (r Rect) Max() (x1, y1 float64) {
	return r.X0 + r.Width, r.Y0 + r.Height
}

// Contains returns whether the point is inside r, edges included.
func (r Rect) Contains(x, y float64) bool {
	x1, y1 := r.Max()
	return x >= r.X0 && x <= x1 && y >= r.Y0 && y <= y1
}

// Range is a closed interval of data values.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 { return r.Max - r.Min }

// Contains returns whether v is inside r, for ranges of either direction.
func (r Range) Contains(v float64) bool {
	return v >= math.Min(r.Min, r.Max) && v <= math.Max(r.Min, r.Max)
}

// sanitize returns a usable axis range: infinite ends become the unit
// interval and empty ranges are widened by one on each side.
func (r Range) sanitize() Range {
	if math.IsInf(r.Min, 0) || math.IsInf(r.Max, 0) || math.IsNaN(r.Min) || math.IsNaN(r.Max) {
		return Range{0, 1}
	}
	if r.Min == r.Max {
		return Range{r.Min - 1, r.Max + 1}
	}
	return r
}

// Limits are the data limits of both axes.
type Limits struct {
	X, Y Range
}

// Sides is a set of frame sides, written as a compass string such as
// "NSWE" (all sides) or "SW" (bottom and left).
type Sides uint8

const (
	North Sides = 1 << iota
	South
	West
	East

	// NoSides is the empty set.
	NoSides Sides = 0

	// AllSides has every side.
	AllSides = North | South | West | East
)

var sideLetters = [...]struct {
	side   Sides
	letter byte
}{{North, 'N'}, {South, 'S'}, {West, 'W'}, {East, 'E'}}

// ParseSides parses a compass string. Letters are case insensitive and
// may repeat; anything other than N, S, W and E is an error.
func ParseSides(s string) (Sides, error) {
	var sd Sides
	for _, r := range strings.ToUpper(s) {
		found := false
		for _, sl := range sideLetters {
			if r == rune(sl.letter) {
				sd |= sl.side
				found = true
			}
		}
		if !found {
			return 0, fmt.Errorf("figure: invalid side %q in %q: %w", r, s, ErrInvalid)
		}
	}
	return sd, nil
}

// MustParseSides is like [ParseSides] but panics on error.
func MustParseSides(s string) Sides {
	sd, err := ParseSides(s)
	if err != nil {
		panic(err)
	}
	return sd
}

// Has returns whether every side of o is in s.
func (s Sides) Has(o Sides) bool { return s&o == o }

// Horizontal returns the North and South sides of s.
func (s Sides) Horizontal() Sides { return s & (North | South) }

// Vertical returns the West and East sides of s.
func (s Sides) Vertical() Sides { return s & (West | East) }

// String returns the compass string of s, in NSWE order.
func (s Sides) String() string {
	var b strings.Builder
	for _, sl := range sideLetters {
		if s.Has(sl.side) {
			b.WriteByte(sl.letter)
		}
	}
	return b.String()
}
