// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package psf loads PC Screen Font bitmap fonts.
//
// Both on-disk versions are supported: PSF1 (8 pixels wide, 256 or 512
// glyphs) and PSF2 (any size). Glyph rows are stored most significant bit
// first, padded to whole bytes. Fonts without a unicode table are assumed to
// be in code page 437 order, which is what console fonts use.
//
// A Font can be blitted directly by fox.Canvas.DrawChar, or used through the
// golang.org/x/image/font.Face returned by Font.Face.
package psf

import (
	"golang.org/x/text/encoding/charmap"
)

// Font is a fixed-cell bitmap font.
type Font struct {
	// Version is 1 or 2 for parsed fonts, 0 for fonts built in memory.
	Version int

	width    int
	height   int
	rowBytes int
	baseline int

	glyphs  [][]byte
	unicode map[rune]int
}

// New builds a font from raw glyph bitmaps. Every glyph must hold
// height rows of ceil(width/8) bytes.
func New(width, height int, glyphs [][]byte) (*Font, error) {
	if width <= 0 {
		return nil, &HeaderError{Field: "width", Value: uint32(width)}
	}
	if height <= 0 {
		return nil, &HeaderError{Field: "height", Value: uint32(height)}
	}
	rowBytes := (width + 7) / 8
	for _, g := range glyphs {
		if len(g) != rowBytes*height {
			return nil, &HeaderError{Field: "charsize", Value: uint32(len(g))}
		}
	}
	return &Font{
		width:    width,
		height:   height,
		rowBytes: rowBytes,
		baseline: height - height/8,
		glyphs:   glyphs,
		unicode:  make(map[rune]int),
	}, nil
}

// Width returns the glyph cell width in pixels.
func (f *Font) Width() int { return f.width }

// Height returns the glyph cell height in pixels.
func (f *Font) Height() int { return f.height }

// RowBytes returns the number of bytes in one glyph row.
func (f *Font) RowBytes() int { return f.rowBytes }

// Baseline returns the row, counted from the top of the cell, that text sits on.
func (f *Font) Baseline() int { return f.baseline }

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int { return len(f.glyphs) }

// HasUnicodeTable reports whether the font maps code points itself.
func (f *Font) HasUnicodeTable() bool { return len(f.unicode) > 0 }

// GlyphAt returns the bitmap of glyph i, or nil when i is out of range.
func (f *Font) GlyphAt(i int) []byte {
	if i < 0 || i >= len(f.glyphs) {
		return nil
	}
	return f.glyphs[i]
}

// Map records that rune r is drawn with glyph i. The first mapping of a rune
// wins, as in the on-disk tables.
func (f *Font) Map(r rune, i int) {
	if i < 0 || i >= len(f.glyphs) {
		return
	}
	if _, ok := f.unicode[r]; !ok {
		f.unicode[r] = i
	}
}

// Index returns the glyph index for r.
//
// The unicode table is consulted first. Fonts without one are indexed by the
// code page 437 encoding of r.
func (f *Font) Index(r rune) (int, bool) {
	if i, ok := f.unicode[r]; ok {
		return i, true
	}
	if f.HasUnicodeTable() {
		return 0, false
	}
	b, ok := charmap.CodePage437.EncodeRune(r)
	if !ok || int(b) >= len(f.glyphs) {
		return 0, false
	}
	return int(b), true
}

// Glyph returns the bitmap used to draw r. When the font has no glyph for r
// the '?' glyph is returned with ok set to false; if that is missing too the
// result is nil.
func (f *Font) Glyph(r rune) (bitmap []byte, ok bool) {
	if i, found := f.Index(r); found {
		return f.glyphs[i], true
	}
	if i, found := f.Index('?'); found {
		return f.glyphs[i], false
	}
	return nil, false
}

// Set reports whether pixel (x, y) of a glyph bitmap is set.
func (f *Font) Set(bitmap []byte, x, y int) bool {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return false
	}
	b := bitmap[y*f.rowBytes+x/8]
	return b&(0x80>>uint(x%8)) != 0
}
