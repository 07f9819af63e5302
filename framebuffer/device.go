// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package framebuffer

import (
	"errors"
	"fmt"
	"io"
)

// Info describes the geometry of a device.
type Info struct {
	// Width and Height are the visible resolution in pixels.
	Width  int
	Height int

	// Pitch is the length of a device scanline in bytes.
	Pitch int

	// BufferSize is the size of the device buffer in bytes.
	BufferSize int
}

// Pixels returns the number of words a frame buffer for this geometry holds.
func (i Info) Pixels() int {
	return i.Width * i.Height
}

// Device is a screen that frames are read from and presented to.
type Device interface {
	// Info returns the current screen geometry.
	Info() (Info, error)

	// ReadFrame copies the visible screen into dst.
	// len(dst) must equal Info().Pixels().
	ReadFrame(dst []uint32) error

	// WriteFrame presents src on the screen.
	// len(src) must equal Info().Pixels().
	WriteFrame(src []uint32) error

	// Close releases the device. Close is idempotent.
	Close() error
}

// Options configures device creation. Backends ignore fields they do not use.
type Options struct {
	// Width and Height size devices that have no intrinsic resolution
	// (memory, sixel). Zero selects the backend default.
	Width  int
	Height int

	// Path is the device node for hardware backends (linuxfb).
	Path string

	// Output receives encoded frames (sixel). Nil selects stdout.
	Output io.Writer

	// Scale is an integer upscaling factor for encoded frames (sixel).
	Scale int
}

// Errors.
var (
	// ErrClosed is returned by operations on a closed device.
	ErrClosed = errors.New("framebuffer: device closed")
)

// FrameSizeError is returned when a frame buffer does not match the device
// geometry.
type FrameSizeError struct {
	Got  int
	Want int
}

func (e *FrameSizeError) Error() string {
	return fmt.Sprintf("framebuffer: frame has %d pixels, device needs %d", e.Got, e.Want)
}

// CheckFrame validates a frame buffer length against a device geometry.
// Backends call it at the top of ReadFrame and WriteFrame.
func CheckFrame(info Info, buf []uint32) error {
	if len(buf) != info.Pixels() {
		return &FrameSizeError{Got: len(buf), Want: info.Pixels()}
	}
	return nil
}
