// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package psf

import (
	"encoding/binary"
	"fmt"
	"os"
	"unicode/utf8"
)

// PSF1 layout.
const (
	psf1Magic0 = 0x36
	psf1Magic1 = 0x04

	psf1Mode512    = 0x01
	psf1ModeHasTab = 0x02
	psf1ModeSeq    = 0x04

	psf1HeaderSize = 4
	psf1Separator  = 0xffff
	psf1StartSeq   = 0xfffe
)

// PSF2 layout.
const (
	psf2Magic           = 0x864ab572
	psf2HeaderSize      = 32
	psf2HasUnicodeTable = 0x01

	psf2Separator = 0xff
	psf2StartSeq  = 0xfe

	// maxGlyphBytes bounds glyph data so a corrupt header cannot request
	// gigabytes.
	maxGlyphBytes = 64 << 20
)

// Load reads and parses a font file.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("psf: read font: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes a PSF1 or PSF2 font.
func Parse(data []byte) (*Font, error) {
	switch {
	case len(data) >= 2 && data[0] == psf1Magic0 && data[1] == psf1Magic1:
		return parsePSF1(data)
	case len(data) >= 4 && binary.LittleEndian.Uint32(data) == psf2Magic:
		return parsePSF2(data)
	case len(data) < 4:
		return nil, ErrTruncated
	default:
		return nil, ErrInvalidMagic
	}
}

func parsePSF1(data []byte) (*Font, error) {
	if len(data) < psf1HeaderSize {
		return nil, ErrTruncated
	}
	mode := data[2]
	charsize := int(data[3])
	if charsize == 0 {
		return nil, &HeaderError{Field: "charsize", Value: 0}
	}

	count := 256
	if mode&psf1Mode512 != 0 {
		count = 512
	}

	end := psf1HeaderSize + count*charsize
	if len(data) < end {
		return nil, ErrTruncated
	}

	f, err := New(8, charsize, splitGlyphs(data[psf1HeaderSize:end], count, charsize))
	if err != nil {
		return nil, err
	}
	f.Version = 1

	if mode&(psf1ModeHasTab|psf1ModeSeq) != 0 {
		if err := f.readPSF1Table(data[end:]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// readPSF1Table reads one entry per glyph: little-endian code points, an
// optional run of 0xFFFE-prefixed sequences, then 0xFFFF.
func (f *Font) readPSF1Table(table []byte) error {
	pos := 0
	for glyph := 0; glyph < len(f.glyphs); glyph++ {
		inSeq := false
		for {
			if pos+2 > len(table) {
				return ErrTruncated
			}
			v := binary.LittleEndian.Uint16(table[pos:])
			pos += 2
			if v == psf1Separator {
				break
			}
			if v == psf1StartSeq {
				inSeq = true
				continue
			}
			if !inSeq {
				f.Map(rune(v), glyph)
			}
		}
	}
	return nil
}

func parsePSF2(data []byte) (*Font, error) {
	if len(data) < psf2HeaderSize {
		return nil, ErrTruncated
	}
	le := binary.LittleEndian
	var (
		version    = le.Uint32(data[4:])
		headerSize = le.Uint32(data[8:])
		flags      = le.Uint32(data[12:])
		length     = le.Uint32(data[16:])
		charsize   = le.Uint32(data[20:])
		height     = le.Uint32(data[24:])
		width      = le.Uint32(data[28:])
	)

	switch {
	case version != 0:
		return nil, &HeaderError{Field: "version", Value: version}
	case headerSize < psf2HeaderSize:
		return nil, &HeaderError{Field: "headersize", Value: headerSize}
	case length == 0:
		return nil, &HeaderError{Field: "length", Value: length}
	case width == 0 || width > 256:
		return nil, &HeaderError{Field: "width", Value: width}
	case height == 0 || height > 256:
		return nil, &HeaderError{Field: "height", Value: height}
	case charsize != height*((width+7)/8):
		return nil, &HeaderError{Field: "charsize", Value: charsize}
	}

	total := uint64(length) * uint64(charsize)
	if total > maxGlyphBytes {
		return nil, &HeaderError{Field: "length", Value: length}
	}
	start := uint64(headerSize)
	end := start + total
	if uint64(len(data)) < end {
		return nil, ErrTruncated
	}

	f, err := New(int(width), int(height), splitGlyphs(data[start:end], int(length), int(charsize)))
	if err != nil {
		return nil, err
	}
	f.Version = 2

	if flags&psf2HasUnicodeTable != 0 {
		if err := f.readPSF2Table(data[end:]); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// readPSF2Table reads one entry per glyph: UTF-8 code points, an optional
// run of 0xFE-prefixed sequences, then 0xFF.
func (f *Font) readPSF2Table(table []byte) error {
	pos := 0
	for glyph := 0; glyph < len(f.glyphs); glyph++ {
		inSeq := false
		for {
			if pos >= len(table) {
				return ErrTruncated
			}
			switch table[pos] {
			case psf2Separator:
				pos++
			case psf2StartSeq:
				inSeq = true
				pos++
				continue
			default:
				r, size := utf8.DecodeRune(table[pos:])
				pos += size
				if !inSeq && r != utf8.RuneError {
					f.Map(r, glyph)
				}
				continue
			}
			break
		}
	}
	return nil
}

// splitGlyphs copies count glyphs of charsize bytes out of data.
func splitGlyphs(data []byte, count, charsize int) [][]byte {
	buf := make([]byte, count*charsize)
	copy(buf, data)
	glyphs := make([][]byte, count)
	for i := range glyphs {
		glyphs[i] = buf[i*charsize : (i+1)*charsize : (i+1)*charsize]
	}
	return glyphs
}
