// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package framebuffer

import (
	"image"
)

// Default geometry of a Memory device created without a size.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Memory is an in-process screen.
//
// It is the always-available fallback backend and the fixture tests use to
// observe what a canvas presented.
//
// Example:
//
//	dev := framebuffer.NewMemory(320, 200)
//	c := fox.NewCanvas(dev)
//	_ = c.StartFrame(true)
//	c.DrawLine(0, 0, 319, 199, fox.White)
//	_ = c.EndFrame()
//	img := dev.Snapshot()
type Memory struct {
	width  int
	height int
	screen []uint32

	// frames counts successful WriteFrame calls
	frames int

	closed bool
}

// NewMemory creates an in-memory screen. Non-positive sizes select
// DefaultWidth and DefaultHeight.
func NewMemory(width, height int) *Memory {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &Memory{
		width:  width,
		height: height,
		screen: make([]uint32, width*height),
	}
}

// Info implements Device.
func (m *Memory) Info() (Info, error) {
	if m.closed {
		return Info{}, ErrClosed
	}
	return Info{
		Width:      m.width,
		Height:     m.height,
		Pitch:      m.width * 4,
		BufferSize: m.width * m.height * 4,
	}, nil
}

// ReadFrame implements Device.
func (m *Memory) ReadFrame(dst []uint32) error {
	info, err := m.Info()
	if err != nil {
		return err
	}
	if err := CheckFrame(info, dst); err != nil {
		return err
	}
	copy(dst, m.screen)
	return nil
}

// WriteFrame implements Device.
func (m *Memory) WriteFrame(src []uint32) error {
	info, err := m.Info()
	if err != nil {
		return err
	}
	if err := CheckFrame(info, src); err != nil {
		return err
	}
	copy(m.screen, src)
	m.frames++
	return nil
}

// Close implements Device. Close is idempotent.
func (m *Memory) Close() error {
	m.closed = true
	return nil
}

// Frames returns how many frames have been presented.
func (m *Memory) Frames() int {
	return m.frames
}

// SetPixel writes directly to the screen, bypassing any canvas.
// Out-of-range coordinates are ignored.
func (m *Memory) SetPixel(x, y int, word uint32) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.screen[y*m.width+x] = word
}

// Pixel returns the screen word at (x, y), or 0 out of range.
func (m *Memory) Pixel(x, y int) uint32 {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return 0
	}
	return m.screen[y*m.width+x]
}

// Snapshot returns the screen contents as an opaque RGBA image.
// The returned image is a copy.
func (m *Memory) Snapshot() *image.RGBA {
	return WordsToRGBA(m.screen, m.width, m.height)
}

// WordsToRGBA converts a row-major 0x00RRGGBB frame into an opaque RGBA image.
func WordsToRGBA(words []uint32, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, w := range words[:width*height] {
		o := i * 4
		img.Pix[o+0] = uint8(w >> 16)
		img.Pix[o+1] = uint8(w >> 8)
		img.Pix[o+2] = uint8(w)
		img.Pix[o+3] = 0xff
	}
	return img
}
