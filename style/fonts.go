// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package style

import (
	"image/color"
	"log/slog"
	"strings"
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10italic"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10bolditalic"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10bold"
	"github.com/go-fonts/latin-modern/lmsans10oblique"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// LatinModern is the typeface name of the Latin Modern fonts,
// the default serif typeface of publication styles.
const LatinModern font.Typeface = "Latin Modern"

var (
	fontsOnce sync.Once
	fontCache *font.Cache
)

// FontCache returns the font cache holding the Liberation and
// Latin Modern collections used for all figure text.
func FontCache() *font.Cache {
	fontsOnce.Do(func() {
		coll := liberation.Collection()
		coll = append(coll, latinModern()...)
		fontCache = font.NewCache(coll)
	})
	return fontCache
}

// latinModern returns the Latin Modern faces, skipping any that fail to parse.
func latinModern() font.Collection {
	type face struct {
		variant font.Variant
		style   xfont.Style
		weight  xfont.Weight
		data    []byte
	}
	faces := []face{
		{"Serif", xfont.StyleNormal, xfont.WeightNormal, lmroman10regular.TTF},
		{"Serif", xfont.StyleNormal, xfont.WeightBold, lmroman10bold.TTF},
		{"Serif", xfont.StyleItalic, xfont.WeightNormal, lmroman10italic.TTF},
		{"Serif", xfont.StyleItalic, xfont.WeightBold, lmroman10bolditalic.TTF},
		{"Sans", xfont.StyleNormal, xfont.WeightNormal, lmsans10regular.TTF},
		{"Sans", xfont.StyleNormal, xfont.WeightBold, lmsans10bold.TTF},
		{"Sans", xfont.StyleItalic, xfont.WeightNormal, lmsans10oblique.TTF},
		{"Mono", xfont.StyleNormal, xfont.WeightNormal, lmmono10regular.TTF},
		{"Mono", xfont.StyleItalic, xfont.WeightNormal, lmmono10italic.TTF},
	}
	var coll font.Collection
	for _, f := range faces {
		otf, err := opentype.Parse(f.data)
		if err != nil {
			slog.Error("parsing Latin Modern font", "variant", f.variant, "err", err)
			continue
		}
		coll = append(coll, font.Face{
			Font: font.Font{
				Typeface: LatinModern,
				Variant:  f.variant,
				Style:    f.style,
				Weight:   f.weight,
			},
			Face: otf,
		})
	}
	return coll
}

// Variant returns the font variant for the generic family.
func (fp *FontParams) Variant() font.Variant {
	switch strings.ToLower(fp.Family) {
	case "sans-serif", "sans":
		return "Sans"
	case "monospace", "mono":
		return "Mono"
	}
	return "Serif"
}

// Font returns the font of the parameters at the given size in points.
// A size of zero uses the default size.
func (fp *FontParams) Font(size float64) font.Font {
	if size <= 0 {
		size = fp.Size
	}
	tf := font.Typeface(fp.Typeface)
	if tf == "" {
		tf = "Liberation"
	}
	return font.Font{
		Typeface: tf,
		Variant:  fp.Variant(),
		Size:     vg.Points(size),
	}
}

// TextHandler returns the text handler selected by the font parameters.
func (p *Params) TextHandler() text.Handler {
	if p.Fonts.LaTeX {
		return mathText{
			Latex: text.Latex{Fonts: FontCache(), DPI: p.Figure.DPI},
			plain: text.Plain{Fonts: FontCache()},
		}
	}
	return text.Plain{Fonts: FontCache()}
}

// mathText renders LaTeX math, falling back to plain text for
// expressions the math parser rejects.
type mathText struct {
	text.Latex
	plain text.Plain
}

var unmath = strings.NewReplacer("$", "", `\`, "")

func (h mathText) Box(txt string, fnt font.Font) (w, ht, d vg.Length) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("rendering math as plain text", "text", txt, "err", r)
			w, ht, d = h.plain.Box(unmath.Replace(txt), fnt)
		}
	}()
	return h.Latex.Box(txt, fnt)
}

func (h mathText) Draw(c vg.Canvas, txt string, sty text.Style, pt vg.Point) {
	defer func() {
		if r := recover(); r != nil {
			h.plain.Draw(c, unmath.Replace(txt), sty, pt)
		}
	}()
	h.Latex.Draw(c, txt, sty, pt)
}

// TextStyle returns a text style for the given font size in points
// (zero for the default size), centered on its anchor point.
func (p *Params) TextStyle(size float64) text.Style {
	var clr color.Color = color.Black
	if !p.Fonts.Color.IsNone() {
		clr = p.Fonts.Color
	}
	return text.Style{
		Color:   clr,
		Font:    p.Fonts.Font(size),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: p.TextHandler(),
	}
}
