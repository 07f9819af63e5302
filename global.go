// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"sync"

	"github.com/foxos/fox/psf"
)

// The process-global canvas. Programs that draw to a single screen use the
// package-level functions below instead of managing a Canvas.
var (
	defaultMu     sync.Mutex
	defaultCanvas *Canvas
)

// Default returns the process-global canvas. On first use it is created
// without a device and opens the best available registered backend on the
// first StartFrame.
func Default() *Canvas {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultCanvas == nil {
		defaultCanvas = NewCanvas(nil)
	}
	return defaultCanvas
}

// SetDefault replaces the process-global canvas and returns the previous one.
// Passing nil makes the next Default call create a fresh canvas.
func SetDefault(c *Canvas) *Canvas {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	prev := defaultCanvas
	defaultCanvas = c
	return prev
}

// StartFrame begins a frame on the global canvas. See Canvas.StartFrame.
func StartFrame(empty bool) error { return Default().StartFrame(empty) }

// EndFrame presents the global canvas. See Canvas.EndFrame.
func EndFrame() error { return Default().EndFrame() }

// FreeFramebuffer releases the global canvas buffer. See Canvas.Free.
func FreeFramebuffer() { Default().Free() }

// SetBackground fills the global canvas.
func SetBackground(col Color) { Default().SetBackground(col) }

// SetPixel sets one pixel of the global canvas.
func SetPixel(x, y int, col Color) { Default().SetPixel(x, y, col) }

// DrawRect fills a rectangle on the global canvas.
func DrawRect(x, y, width, height int, col Color) {
	Default().DrawRect(x, y, width, height, col)
}

// DrawRectOutline outlines a rectangle on the global canvas.
func DrawRectOutline(x, y, width, height int, col Color) {
	Default().DrawRectOutline(x, y, width, height, col)
}

// DrawCircle fills a disk on the global canvas.
func DrawCircle(cx, cy, r int, col Color) { Default().DrawCircle(cx, cy, r, col) }

// DrawCircleOutline outlines a circle on the global canvas.
func DrawCircleOutline(cx, cy, r int, col Color) { Default().DrawCircleOutline(cx, cy, r, col) }

// DrawLine draws a line on the global canvas.
func DrawLine(x1, y1, x2, y2 int, col Color) { Default().DrawLine(x1, y1, x2, y2, col) }

// DrawChar draws one glyph on the global canvas.
func DrawChar(x, y int, r rune, col Color, f *psf.Font) { Default().DrawChar(x, y, r, col, f) }

// DrawString draws text on the global canvas.
func DrawString(x, y int, s string, col Color, f *psf.Font) { Default().DrawString(x, y, s, col, f) }
