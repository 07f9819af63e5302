// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package psf

import (
	"sync"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
)

// Size of the built-in font cell.
const (
	DefaultWidth    = 8
	DefaultHeight   = 16
	defaultBaseline = 14
)

var (
	defaultOnce sync.Once
	defaultFont *Font
)

// Default returns the built-in 8x16 font.
//
// It holds 256 glyphs in code page 437 order, rasterised once from
// basicfont.Face7x13, with a unicode table covering every code point the
// code page maps. Code points basicfont lacks are blank.
func Default() *Font {
	defaultOnce.Do(func() {
		defaultFont = buildDefault()
	})
	return defaultFont
}

func buildDefault() *Font {
	src := basicfont.Face7x13
	rowBytes := (DefaultWidth + 7) / 8
	glyphs := make([][]byte, 256)

	for i := range glyphs {
		g := make([]byte, rowBytes*DefaultHeight)
		glyphs[i] = g

		r := charmap.CodePage437.DecodeByte(byte(i))
		if !covers(src, r) {
			continue
		}
		dr, mask, maskp, _, ok := src.Glyph(fixed.P(0, defaultBaseline), r)
		if !ok {
			continue
		}
		for y := dr.Min.Y; y < dr.Max.Y; y++ {
			for x := dr.Min.X; x < dr.Max.X; x++ {
				if x < 0 || x >= DefaultWidth || y < 0 || y >= DefaultHeight {
					continue
				}
				_, _, _, a := mask.At(maskp.X+x-dr.Min.X, maskp.Y+y-dr.Min.Y).RGBA()
				if a >= 0x8000 {
					g[y*rowBytes+x/8] |= 0x80 >> uint(x%8)
				}
			}
		}
	}

	f, err := New(DefaultWidth, DefaultHeight, glyphs)
	if err != nil {
		panic("psf: building default font: " + err.Error())
	}
	f.baseline = defaultBaseline
	for i := range glyphs {
		f.Map(charmap.CodePage437.DecodeByte(byte(i)), i)
	}
	return f
}

// covers reports whether src has its own glyph for r. basicfont substitutes
// U+FFFD for missing runes, which would fill the control slots with boxes.
func covers(src *basicfont.Face, r rune) bool {
	for _, rng := range src.Ranges {
		if rng.Low <= r && r < rng.High {
			return true
		}
	}
	return false
}
