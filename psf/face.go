// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package psf

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Face returns a font.Face that draws with f.
//
// All glyphs share one alpha atlas, one cell per glyph stacked vertically,
// built when Face is called. Runes without a glyph draw the '?' glyph and
// report ok == false; when the font has no '?' either they draw nothing.
func (f *Font) Face() font.Face {
	atlas := image.NewAlpha(image.Rect(0, 0, f.width, f.height*len(f.glyphs)))
	for i, g := range f.glyphs {
		for y := 0; y < f.height; y++ {
			for x := 0; x < f.width; x++ {
				if f.Set(g, x, y) {
					atlas.Pix[(i*f.height+y)*atlas.Stride+x] = 0xff
				}
			}
		}
	}
	return &face{font: f, atlas: atlas}
}

type face struct {
	font  *Font
	atlas *image.Alpha
}

var _ font.Face = (*face)(nil)

func (fc *face) Close() error { return nil }

// index returns the atlas cell for r and whether r has its own glyph.
// The cell is -1 when neither r nor '?' has one.
func (fc *face) index(r rune) (int, bool) {
	if i, ok := fc.font.Index(r); ok {
		return i, true
	}
	if i, ok := fc.font.Index('?'); ok {
		return i, false
	}
	return -1, false
}

func (fc *face) Glyph(dot fixed.Point26_6, r rune) (
	dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {

	i, ok := fc.index(r)
	advance = fixed.I(fc.font.width)
	if i < 0 {
		return image.Rectangle{}, fc.atlas, image.Point{}, advance, false
	}
	x, y := dot.X.Floor(), dot.Y.Floor()
	dr = image.Rect(x, y-fc.font.baseline, x+fc.font.width, y-fc.font.baseline+fc.font.height)
	return dr, fc.atlas, image.Pt(0, i*fc.font.height), advance, ok
}

func (fc *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	_, ok = fc.index(r)
	bounds = fixed.R(0, -fc.font.baseline, fc.font.width, fc.font.height-fc.font.baseline)
	return bounds, fixed.I(fc.font.width), ok
}

func (fc *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	_, ok = fc.index(r)
	return fixed.I(fc.font.width), ok
}

func (fc *face) Kern(r0, r1 rune) fixed.Int26_6 { return 0 }

func (fc *face) Metrics() font.Metrics {
	return font.Metrics{
		Height:    fixed.I(fc.font.height),
		Ascent:    fixed.I(fc.font.baseline),
		Descent:   fixed.I(fc.font.height - fc.font.baseline),
		CapHeight: fixed.I(fc.font.baseline),
	}
}
