// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

// Params contains the styling parameters for every element of a figure.
// Each group corresponds to one [Element] and is replaced as a unit
// by the style sheets of that element.
type Params struct {

	// Figure has the physical size and page layout of figures.
	Figure FigureParams `toml:"figure" yaml:"figure"`

	// Fonts has the text settings shared by all labels.
	Fonts FontParams `toml:"fonts" yaml:"fonts"`

	// Grid has the styling of grid lines.
	Grid GridParams `toml:"grid" yaml:"grid"`

	// Ticks has the styling of tick marks, tick labels and axes spines.
	Ticks TickParams `toml:"ticks" yaml:"ticks"`

	// Legend has the styling of legends.
	Legend LegendParams `toml:"legend" yaml:"legend"`

	// Lines has the default styling of data lines.
	Lines LineParams `toml:"lines" yaml:"lines"`
}

// FigureParams are the figure level parameters.
type FigureParams struct {

	// Width of new figures, in inches.
	Width float64 `toml:"width" yaml:"width"`

	// Height of new figures, in inches.
	Height float64 `toml:"height" yaml:"height"`

	// DPI is the resolution used for raster output.
	DPI float64 `toml:"dpi" yaml:"dpi"`

	// Background is the figure background color.
	Background Color `toml:"background" yaml:"background"`

	// AxesBackground is the background color of the data area of axes.
	AxesBackground Color `toml:"axes_background" yaml:"axes_background"`

	// Left, Right, Bottom and Top are the figure-relative bounds of the
	// subplot area, used when sizing a figure in physical units.
	Left   float64 `toml:"left" yaml:"left"`
	Right  float64 `toml:"right" yaml:"right"`
	Bottom float64 `toml:"bottom" yaml:"bottom"`
	Top    float64 `toml:"top" yaml:"top"`
}

// FontParams are the text parameters.
type FontParams struct {

	// Family is the generic font family: serif, sans-serif or monospace.
	Family string `toml:"family" yaml:"family"`

	// Typeface is the name of the typeface, e.g. "Latin Modern" or "Liberation".
	Typeface string `toml:"typeface" yaml:"typeface"`

	// Size is the default font size in points.
	Size float64 `toml:"size" yaml:"size"`

	// LaTeX selects the LaTeX text handler, so that labels may contain
	// math expressions between dollar signs.
	LaTeX bool `toml:"latex" yaml:"latex"`

	// Color is the text color.
	Color Color `toml:"color" yaml:"color"`
}

// GridParams are the grid line parameters.
type GridParams struct {

	// Visible turns the grid on for new axes.
	Visible bool `toml:"visible" yaml:"visible"`

	// Which selects the ticks the grid follows: major, minor or both.
	Which string `toml:"which" yaml:"which"`

	Color Color   `toml:"color" yaml:"color"`
	Width float64 `toml:"width" yaml:"width"`
	Dash  string  `toml:"dash" yaml:"dash"`
	Alpha float64 `toml:"alpha" yaml:"alpha"`
}

// TickParams are the tick and frame parameters.
type TickParams struct {

	// Direction of tick marks relative to the frame: in, out or inout.
	Direction string `toml:"direction" yaml:"direction"`

	// MajorLength and MinorLength are tick lengths in points.
	MajorLength float64 `toml:"major_length" yaml:"major_length"`
	MinorLength float64 `toml:"minor_length" yaml:"minor_length"`

	// MajorWidth and MinorWidth are tick line widths in points.
	MajorWidth float64 `toml:"major_width" yaml:"major_width"`
	MinorWidth float64 `toml:"minor_width" yaml:"minor_width"`

	Color Color `toml:"color" yaml:"color"`

	// Sides are the frame sides that get tick marks on new axes, as a
	// compass string such as "SW" or "NSWE".
	Sides string `toml:"sides" yaml:"sides"`

	// LabelSize is the tick label font size in points.
	LabelSize float64 `toml:"label_size" yaml:"label_size"`

	// LabelPad is the distance between tick marks and labels in points.
	LabelPad float64 `toml:"label_pad" yaml:"label_pad"`

	// SpineWidth and SpineColor style the axes frame.
	SpineWidth float64 `toml:"spine_width" yaml:"spine_width"`
	SpineColor Color   `toml:"spine_color" yaml:"spine_color"`
}

// LegendParams are the legend parameters.
type LegendParams struct {
	FrameOn    bool    `toml:"frame_on" yaml:"frame_on"`
	EdgeColor  Color   `toml:"edge_color" yaml:"edge_color"`
	FaceColor  Color   `toml:"face_color" yaml:"face_color"`
	FrameAlpha float64 `toml:"frame_alpha" yaml:"frame_alpha"`
	FontSize   float64 `toml:"font_size" yaml:"font_size"`

	// BorderPad is the padding inside the legend frame, in points.
	BorderPad float64 `toml:"border_pad" yaml:"border_pad"`

	// AxesPad is the distance between the legend and the axes frame, in points.
	AxesPad float64 `toml:"axes_pad" yaml:"axes_pad"`

	// ThumbnailWidth is the width of the line samples, in points.
	ThumbnailWidth float64 `toml:"thumbnail_width" yaml:"thumbnail_width"`

	// ColumnSpacing and RowSpacing separate entries, in points.
	ColumnSpacing float64 `toml:"column_spacing" yaml:"column_spacing"`
	RowSpacing    float64 `toml:"row_spacing" yaml:"row_spacing"`
}

// LineParams are the data line parameters.
type LineParams struct {

	// Width is the default line width in points.
	Width float64 `toml:"width" yaml:"width"`

	// Cycle is the list of colors assigned to lines without an explicit color.
	Cycle []Color `toml:"cycle" yaml:"cycle"`
}

// Default returns the parameters used before any style sheet is applied.
func Default() *Params {
	return &Params{
		Figure: FigureParams{
			Width:          6.4,
			Height:         4.8,
			DPI:            100,
			Background:     "#ffffff",
			AxesBackground: "#ffffff",
			Left:           0.125,
			Right:          0.9,
			Bottom:         0.11,
			Top:            0.88,
		},
		Fonts: FontParams{
			Family:   "sans-serif",
			Typeface: "Liberation",
			Size:     10,
			Color:    "#000000",
		},
		Grid: GridParams{
			Which: "major",
			Color: "#b0b0b0",
			Width: 0.8,
			Dash:  "-",
			Alpha: 1,
		},
		Ticks: TickParams{
			Direction:   "out",
			MajorLength: 3.5,
			MinorLength: 2,
			MajorWidth:  0.8,
			MinorWidth:  0.6,
			Color:       "#000000",
			Sides:       "SW",
			LabelSize:   10,
			LabelPad:    3.5,
			SpineWidth:  0.8,
			SpineColor:  "#000000",
		},
		Legend: LegendParams{
			FrameOn:        true,
			EdgeColor:      "#cccccc",
			FaceColor:      "#ffffff",
			FrameAlpha:     0.8,
			FontSize:       10,
			BorderPad:      4,
			AxesPad:        5,
			ThumbnailWidth: 20,
			ColumnSpacing:  20,
			RowSpacing:     5,
		},
		Lines: LineParams{
			Width: 1.5,
			Cycle: []Color{
				"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
				"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
			},
		},
	}
}
