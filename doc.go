// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package fox draws into a framebuffer.
//
// # Overview
//
// fox is a small 2D rasterizer for OS userland programs. It draws pixels,
// lines, rectangles, circles and bitmap-font text into a shadow buffer and
// copies that buffer to and from a framebuffer device.
//
// # Quick Start
//
//	import (
//	    "github.com/foxos/fox"
//	    _ "github.com/foxos/fox/framebuffer/linuxfb"
//	)
//
//	// Copy the screen in, draw, copy it back out
//	fox.StartFrame(false)
//	fox.DrawCircle(100, 100, 40, fox.Red)
//	fox.DrawString(10, 10, "hello", fox.White, nil)
//	fox.EndFrame()
//
//	// Release the shadow buffer
//	fox.FreeFramebuffer()
//
// The package-level functions draw on a default Canvas that opens the best
// registered framebuffer device on first use. Programs that manage several
// screens create their own canvases with NewCanvas.
//
// # Frame Lifecycle
//
// StartFrame allocates the shadow buffer on first use, then either copies
// the visible screen into it or clears it to black. Drawing only touches the
// shadow buffer. EndFrame presents it. Free releases it; the next StartFrame
// allocates again. Drawing without a buffer does nothing.
//
// # Devices
//
// Devices live in the framebuffer package and its backends, which register
// themselves when imported:
//   - framebuffer/linuxfb: Linux fbdev (/dev/fb0)
//   - framebuffer/termfb: terminal half-block cells
//   - framebuffer/sixelfb: DEC sixel images
//   - framebuffer.Memory: in-process screen, always available
//
// # Coordinate System
//
// Origin (0,0) is the top-left pixel, X increases right and Y increases
// down. Coordinates are integers; pixels outside the buffer are skipped.
//
// # Fonts
//
// Text uses fixed-cell bitmap fonts from the psf package. A nil font selects
// the canvas font (WithFont) or the built-in psf.Default. DrawText accepts
// any golang.org/x/image/font.Face instead.
package fox

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
