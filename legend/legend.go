// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legend builds reordered, placed legends from the labeled
// plotters of one or more axes.
package legend

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"cogentcore.org/journalfig/figure"
	"cogentcore.org/journalfig/style"
)

// ErrInvalid is returned for invalid legend options.
var ErrInvalid = errors.New("invalid legend")

// Location is a legend location inside the axes.
type Location int32

const (
	Best Location = iota
	UpperRight
	UpperLeft
	LowerLeft
	LowerRight
	Right
	CenterLeft
	CenterRight
	LowerCenter
	UpperCenter
	Center
)

var locationNames = [...]string{
	Best:        "best",
	UpperRight:  "upper right",
	UpperLeft:   "upper left",
	LowerLeft:   "lower left",
	LowerRight:  "lower right",
	Right:       "right",
	CenterLeft:  "center left",
	CenterRight: "center right",
	LowerCenter: "lower center",
	UpperCenter: "upper center",
	Center:      "center",
}

// ParseLocation parses a location name such as "upper right".
func ParseLocation(s string) (Location, error) {
	s = strings.Join(strings.Fields(strings.ToLower(s)), " ")
	if i := slices.Index(locationNames[:], s); i >= 0 {
		return Location(i), nil
	}
	return 0, fmt.Errorf("legend: location %q: %w", s, ErrInvalid)
}

func (l Location) String() string {
	if l >= 0 && int(l) < len(locationNames) {
		return locationNames[l]
	}
	return "Location(" + strconv.Itoa(int(l)) + ")"
}

// Position places a legend at a location inside the axes, or with its
// center at a figure-relative point.
type Position struct {
	loc      Location
	anchored bool
	x, y     float64
}

// At places the legend at a location inside the axes.
func At(loc Location) Position { return Position{loc: loc} }

// Anchored centers the legend at the figure-relative point (x, y).
// Points outside of the figure are allowed.
func Anchored(x, y float64) Position { return Position{anchored: true, x: x, y: y} }

// Slot is a cell of a legend grid: an entry index or an empty cell.
type Slot struct {
	index int
	empty bool
}

// Index is the slot of the i-th collected entry.
func Index(i int) Slot { return Slot{index: i} }

// Empty is an invisible placeholder slot.
var Empty = Slot{empty: true}

type orderKind int32

const (
	defaultOrder orderKind = iota
	reverseOrder
	gridOrder
)

// Order arranges the collected entries of a legend.
type Order struct {
	kind orderKind
	rows [][]Slot
}

// Default keeps the entries in the order they were added, in one column.
func Default() Order { return Order{kind: defaultOrder} }

// Reverse reverses the entries, in one column.
func Reverse() Order { return Order{kind: reverseOrder} }

// Grid lays the entries out as the given rows of slots, each row holding
// one slot per column.
func Grid(rows ...[]Slot) Order { return Order{kind: gridOrder, rows: rows} }

// arrange returns the entries in column-major order and the number of columns.
func (o Order) arrange(es []figure.LegendEntry) ([]figure.LegendEntry, int, error) {
	switch o.kind {
	case defaultOrder:
		return es, 1, nil
	case reverseOrder:
		r := slices.Clone(es)
		slices.Reverse(r)
		return r, 1, nil
	}
	if len(o.rows) == 0 || len(o.rows[0]) == 0 {
		return nil, 0, fmt.Errorf("legend: empty order grid: %w", ErrInvalid)
	}
	cols := len(o.rows[0])
	for i, row := range o.rows {
		if len(row) != cols {
			return nil, 0, fmt.Errorf("legend: order grid row %d has %d slots, want %d: %w", i, len(row), cols, ErrInvalid)
		}
		for _, s := range row {
			if !s.empty && (s.index < 0 || s.index >= len(es)) {
				return nil, 0, fmt.Errorf("legend: order index %d out of %d entries: %w", s.index, len(es), ErrInvalid)
			}
		}
	}
	out := make([]figure.LegendEntry, 0, cols*len(o.rows))
	for c := 0; c < cols; c++ {
		for _, row := range o.rows {
			if row[c].empty {
				out = append(out, figure.LegendEntry{})
				continue
			}
			out = append(out, es[row[c].index])
		}
	}
	return out, cols, nil
}

// Pretty collects the legend entries of sources (ax when none are
// given), arranges them by order and sets the result as the legend of ax.
func Pretty(ax *figure.Axes, sources []*figure.Axes, pos Position, order Order, title string) (*Legend, error) {
	if ax == nil {
		return nil, fmt.Errorf("legend.Pretty: nil axes: %w", ErrInvalid)
	}
	if len(sources) == 0 {
		sources = []*figure.Axes{ax}
	}
	var es []figure.LegendEntry
	for i, s := range sources {
		if s == nil {
			return nil, fmt.Errorf("legend.Pretty: nil source axes %d: %w", i, ErrInvalid)
		}
		es = append(es, s.LegendEntries()...)
	}
	arranged, cols, err := order.arrange(es)
	if err != nil {
		return nil, err
	}
	if !pos.anchored && (pos.loc < Best || pos.loc > Center) {
		return nil, fmt.Errorf("legend.Pretty: location %v: %w", pos.loc, ErrInvalid)
	}
	p := ax.Params
	if p == nil {
		p = style.Current()
	}
	l := &Legend{
		Title:    title,
		Entries:  arranged,
		Columns:  cols,
		Position: pos,
		Params:   p.Legend,
	}
	ax.SetLegend(l)
	return l, nil
}
