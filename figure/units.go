// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package figure

import (
	"fmt"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Units are physical length units for figure sizes.
type Units int32

const (
	Centimeters Units = iota
	Inches
	Millimeters
	Points
	unitsN
)

var unitNames = [...]string{"cm", "inch", "mm", "pt"}

// ParseUnits parses "cm", "inch" (or "in"), "mm" and "pt".
func ParseUnits(s string) (Units, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cm":
		return Centimeters, nil
	case "inch", "in", "inches":
		return Inches, nil
	case "mm":
		return Millimeters, nil
	case "pt":
		return Points, nil
	}
	return 0, fmt.Errorf("figure: units %q: accepted units are cm, inch, mm and pt: %w", s, ErrInvalid)
}

func (u Units) String() string {
	if u < 0 || u >= unitsN {
		return fmt.Sprintf("Units(%d)", int32(u))
	}
	return unitNames[u]
}

// Valid returns whether u is one of the defined units.
func (u Units) Valid() bool { return u >= 0 && u < unitsN }

// Length returns v of these units as a length.
func (u Units) Length(v float64) vg.Length {
	switch u {
	case Centimeters:
		return vg.Length(v) * vg.Centimeter
	case Inches:
		return vg.Length(v) * vg.Inch
	case Millimeters:
		return vg.Length(v) * vg.Millimeter
	}
	return vg.Points(v)
}
