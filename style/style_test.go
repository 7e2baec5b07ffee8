// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withPaths runs the test with only the given user style directories.
func withPaths(t *testing.T, paths ...string) {
	old := Paths
	Paths = paths
	t.Cleanup(func() {
		Paths = old
		Reset()
	})
}

func TestUseFonts(t *testing.T) {
	withPaths(t)
	require.NoError(t, Use("pretty_style_v1"))
	p := Current()
	assert.Equal(t, "serif", p.Fonts.Family)
	assert.Equal(t, "Latin Modern", p.Fonts.Typeface)
	assert.True(t, p.Fonts.LaTeX)
	// only fonts are applied by default
	assert.Equal(t, Default().Ticks, p.Ticks)
}

func TestUseAllElements(t *testing.T) {
	withPaths(t)
	require.NoError(t, Use("pretty_style_v1", Figure, Fonts, Grid, Ticks, Legend))
	p := Current()
	assert.Equal(t, "in", p.Ticks.Direction)
	assert.Equal(t, "NSWE", p.Ticks.Sides)
	assert.Equal(t, 300.0, p.Figure.DPI)
	assert.Equal(t, 8.0, p.Legend.FontSize)
	// lines were not requested
	assert.Equal(t, Default().Lines, p.Lines)
}

func TestUseKeepsAbsentKeys(t *testing.T) {
	withPaths(t)
	require.NoError(t, Use("ieee_column", Ticks))
	p := Current()
	assert.Equal(t, "in", p.Ticks.Direction)
	// ieee_column does not set the colors
	assert.Equal(t, Default().Ticks.Color, p.Ticks.Color)
}

func TestUseMissing(t *testing.T) {
	withPaths(t)
	err := Use("prety_style_v1", Fonts)
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), `did you mean "pretty_style_v1"`)

	// a failed Use leaves the parameters unchanged
	err = Use("pretty_style_v1", Fonts, Grid, Legend, Lines, Figure, Ticks, Element(42))
	require.Error(t, err)
	assert.Equal(t, Default(), Current())
}

func TestUseInvalidName(t *testing.T) {
	withPaths(t)
	assert.ErrorIs(t, Use("../fonts/pretty_style_v1"), ErrInvalid)
	assert.ErrorIs(t, Use(""), ErrInvalid)
}

func TestUserSheets(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "fonts"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fonts", "thesis.yaml"),
		[]byte("family: monospace\nsize: 11\n"), 0640))
	// user sheets shadow embedded ones
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fonts", "pretty_style_v1.toml"),
		[]byte("size = 20\n"), 0640))
	withPaths(t, dir)

	assert.Contains(t, Names(Fonts), "thesis")
	assert.Contains(t, Names(Fonts), "pretty_style_v1")

	require.NoError(t, Use("thesis"))
	assert.Equal(t, "monospace", Current().Fonts.Family)
	assert.Equal(t, 11.0, Current().Fonts.Size)

	require.NoError(t, Use("pretty_style_v1"))
	assert.Equal(t, 20.0, Current().Fonts.Size)
	assert.Equal(t, "monospace", Current().Fonts.Family)
}

func TestRequires(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "grid"), 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid", "future.toml"),
		[]byte("requires = \">= 2.0\"\nvisible = true\n"), 0640))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "grid", "badcolor.toml"),
		[]byte("color = \"#12\"\n"), 0640))
	withPaths(t, dir)

	assert.ErrorIs(t, Use("future", Grid), ErrInvalid)
	assert.False(t, Current().Grid.Visible)
	assert.ErrorIs(t, Use("badcolor", Grid), ErrInvalid)
}

func TestCurrentIsCopy(t *testing.T) {
	withPaths(t)
	p := Current()
	p.Lines.Cycle[0] = "#000000"
	p.Fonts.Size = 99
	assert.Equal(t, Default(), Current())
}

func TestParseElement(t *testing.T) {
	for _, el := range Elements() {
		got, err := ParseElement(el.String())
		require.NoError(t, err)
		assert.Equal(t, el, got)
	}
	_, err := ParseElement("axes")
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestColor(t *testing.T) {
	r, g, b, a := Color("#ff0000").RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
	_, err := Color("black").Parse()
	assert.NoError(t, err)
	_, err = Color("nope").Parse()
	assert.Error(t, err)
	assert.True(t, Color("none").IsNone())
	assert.True(t, Color("").IsNone())
}

func TestTextStyle(t *testing.T) {
	p := Default()
	ts := p.TextStyle(0)
	assert.Equal(t, "Sans", string(ts.Font.Variant))
	assert.InDelta(t, 10.0, ts.Font.Size.Points(), 1e-9)
	p.Fonts.Family = "serif"
	p.Fonts.Typeface = string(LatinModern)
	ts = p.TextStyle(7)
	assert.Equal(t, LatinModern, ts.Font.Typeface)
	assert.InDelta(t, 7.0, ts.Font.Size.Points(), 1e-9)
	assert.Positive(t, float64(ts.Width("Journal")))
}

func TestMathTextFallback(t *testing.T) {
	p := Default()
	p.Fonts.LaTeX = true
	ts := p.TextStyle(0)
	_, ok := ts.Handler.(mathText)
	require.True(t, ok)
	assert.NotPanics(t, func() {
		assert.Positive(t, float64(ts.Width(`$\frac{a$`)))
	})
	assert.Positive(t, float64(ts.Width("$x^2$")))
}
