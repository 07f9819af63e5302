// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"image/color"
)

// Color is a raw 32-bit framebuffer word, 0x00RRGGBB.
//
// Drawing operations store the word unchanged; the top byte is carried
// through but never interpreted. The channel accessors and the color.Color
// implementation exist only for interop with image and font code.
type Color uint32

// RGB packs 8-bit channels into a Color.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// RGBA implements color.Color. Framebuffer words are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R())
	g = uint32(c.G())
	b = uint32(c.B())
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// FromColor converts a standard color.Color to a framebuffer word.
// Alpha is dropped without blending.
func FromColor(c color.Color) Color {
	if fc, ok := c.(Color); ok {
		return fc
	}
	r, g, b, _ := c.RGBA()
	return RGB(uint8(r>>8), uint8(g>>8), uint8(b>>8))
}

// ColorModel converts arbitrary colors to Color.
var ColorModel = color.ModelFunc(func(c color.Color) color.Color {
	return FromColor(c)
})

// Hex creates a color from a hex string.
// Supports formats: "RGB" and "RRGGBB", with or without a leading '#'.
// Anything else yields Black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b uint32

	switch len(hex) {
	case 3: // RGB
		if !parseHex(hex[0:1], &r) || !parseHex(hex[1:2], &g) || !parseHex(hex[2:3], &b) {
			return Black
		}
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		if !parseHex(hex[0:2], &r) || !parseHex(hex[2:4], &g) || !parseHex(hex[4:6], &b) {
			return Black
		}
	default:
		return Black
	}

	return RGB(uint8(r), uint8(g), uint8(b))
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Common colors
const (
	Black   Color = 0x000000
	White   Color = 0xffffff
	Red     Color = 0xff0000
	Green   Color = 0x00ff00
	Blue    Color = 0x0000ff
	Yellow  Color = 0xffff00
	Cyan    Color = 0x00ffff
	Magenta Color = 0xff00ff
)
