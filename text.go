// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"image"
	"strings"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/foxos/fox/psf"
)

// DrawChar draws one glyph with its top-left corner at (x, y). Set bits are
// plotted in col; clear bits leave the buffer untouched. A nil font selects
// the canvas font (see WithFont) or the built-in one. Runes the font lacks
// are drawn with its '?' glyph.
func (c *Canvas) DrawChar(x, y int, r rune, col Color, f *psf.Font) {
	f = c.font(f)
	g, _ := f.Glyph(r)
	if g == nil {
		return
	}
	c.drawGlyph(x, y, g, col, f)
}

// DrawGlyph draws glyph number index of the font, bypassing any unicode
// mapping. Out-of-range indices draw nothing.
func (c *Canvas) DrawGlyph(x, y, index int, col Color, f *psf.Font) {
	f = c.font(f)
	g := f.GlyphAt(index)
	if g == nil {
		return
	}
	c.drawGlyph(x, y, g, col, f)
}

func (c *Canvas) drawGlyph(x, y int, g []byte, col Color, f *psf.Font) {
	for row := 0; row < f.Height(); row++ {
		for px := 0; px < f.Width(); px++ {
			if f.Set(g, px, row) {
				c.SetPixel(x+px, y+row, col)
			}
		}
	}
}

// DrawString draws s starting at (x, y), advancing one cell per rune. A
// newline moves back to x and down one cell.
func (c *Canvas) DrawString(x, y int, s string, col Color, f *psf.Font) {
	f = c.font(f)
	cx := x
	for _, r := range s {
		if r == '\n' {
			cx = x
			y += f.Height()
			continue
		}
		c.DrawChar(cx, y, r, col, f)
		cx += f.Width()
	}
}

// MeasureString returns the size in pixels DrawString covers for s.
// A nil font measures with the built-in one.
func MeasureString(s string, f *psf.Font) (width, height int) {
	if s == "" {
		return 0, 0
	}
	if f == nil {
		f = psf.Default()
	}
	lines := strings.Split(s, "\n")
	cols := 0
	for _, line := range lines {
		cols = max(cols, utf8.RuneCountInString(line))
	}
	return cols * f.Width(), len(lines) * f.Height()
}

// DrawText draws s with any font.Face. (x, y) is the top-left corner of the
// first line box; lines are separated by the face's line height.
//
// Example:
//
//	c.DrawText(basicfont.Face7x13, 10, 10, "hello", fox.White)
func (c *Canvas) DrawText(face font.Face, x, y int, s string, col Color) {
	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	lineHeight := m.Height.Ceil()

	d := &font.Drawer{
		Dst:  c,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(x, y+ascent+i*lineHeight)
		d.DrawString(line)
	}
}
