// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package linuxfb presents frames on a Linux framebuffer device (/dev/fbN).
//
// The device is memory-mapped; ReadFrame and WriteFrame convert between the
// canvas's 0x00RRGGBB words and the channel layout the driver reports. Only
// 32 bits per pixel is supported.
//
// Importing the package registers the "linuxfb" backend:
//
//	import _ "github.com/foxos/fox/framebuffer/linuxfb"
package linuxfb

import (
	"errors"
	"path/filepath"
)

// DefaultPath is the device node opened when Options.Path is empty.
const DefaultPath = "/dev/fb0"

// nodePattern matches the framebuffer device nodes.
const nodePattern = "/dev/fb[0-9]*"

// available reports whether any framebuffer node matches pattern. The
// backend counts as available when one does; a node that still fails to
// open (wrong Options.Path, permissions, format) is reported by Open and
// the registry moves on to the next backend.
func available(pattern string) bool {
	matches, err := filepath.Glob(pattern)
	return err == nil && len(matches) > 0
}

// ErrUnsupportedFormat is returned for pixel formats other than 32bpp
// true colour.
var ErrUnsupportedFormat = errors.New("linuxfb: unsupported pixel format")

// bitfield mirrors struct fb_bitfield.
type bitfield struct {
	Offset   uint32 // beginning of bitfield
	Length   uint32 // length of bitfield
	MSBRight uint32 // != 0 : most significant bit is right
}

// layout describes where each channel sits in a device word.
type layout struct {
	red, green, blue bitfield
}

// xrgb8888 is the layout most drivers report.
var xrgb8888 = layout{
	red:   bitfield{Offset: 16, Length: 8},
	green: bitfield{Offset: 8, Length: 8},
	blue:  bitfield{Offset: 0, Length: 8},
}

// validate rejects layouts encode and decode cannot handle.
func (l layout) validate() error {
	for _, f := range []bitfield{l.red, l.green, l.blue} {
		if f.Length == 0 || f.Length > 8 || f.Offset+f.Length > 32 || f.MSBRight != 0 {
			return ErrUnsupportedFormat
		}
	}
	return nil
}

// encode converts a 0x00RRGGBB word into a device word.
func (l layout) encode(w uint32) uint32 {
	return put(l.red, uint8(w>>16)) | put(l.green, uint8(w>>8)) | put(l.blue, uint8(w))
}

// decode converts a device word into a 0x00RRGGBB word.
func (l layout) decode(d uint32) uint32 {
	return uint32(get(l.red, d))<<16 | uint32(get(l.green, d))<<8 | uint32(get(l.blue, d))
}

func put(f bitfield, v uint8) uint32 {
	return uint32(v>>(8-f.Length)) << f.Offset
}

func get(f bitfield, d uint32) uint8 {
	v := (d >> f.Offset) & (1<<f.Length - 1)
	// Replicate the high bits so that full-scale values stay full-scale.
	v <<= 8 - f.Length
	for shift := f.Length; shift < 8; shift += f.Length {
		v |= v >> shift
	}
	return uint8(v)
}
