// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sixelfb presents frames as DEC sixel images.
//
// Every WriteFrame homes the cursor and writes the whole frame as one sixel
// image, so a sixel-capable terminal shows the canvas in place. Importing the
// package registers the "sixel" backend.
package sixelfb

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
	sixel "github.com/mattn/go-sixel"
	"golang.org/x/term"

	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/internal/logging"
)

// cursorHome moves the cursor to the top left corner.
const cursorHome = "\x1b[H"

// Device encodes frames to a writer.
type Device struct {
	out    io.Writer
	width  int
	height int
	scale  int

	last   []uint32
	closed bool
}

var _ framebuffer.Device = (*Device)(nil)

// New returns a sixel device of the given size writing to w.
// Zero sizes select framebuffer.DefaultWidth and framebuffer.DefaultHeight,
// a nil writer selects stdout and a scale below 1 means 1.
func New(w io.Writer, width, height, scale int) *Device {
	if w == nil {
		w = os.Stdout
	}
	if width <= 0 {
		width = framebuffer.DefaultWidth
	}
	if height <= 0 {
		height = framebuffer.DefaultHeight
	}
	if scale < 1 {
		scale = 1
	}
	return &Device{
		out:    w,
		width:  width,
		height: height,
		scale:  scale,
		last:   make([]uint32, width*height),
	}
}

// Info implements framebuffer.Device.
func (d *Device) Info() (framebuffer.Info, error) {
	if d.closed {
		return framebuffer.Info{}, framebuffer.ErrClosed
	}
	return framebuffer.Info{
		Width:      d.width,
		Height:     d.height,
		Pitch:      d.width * 4,
		BufferSize: d.width * d.height * 4,
	}, nil
}

// ReadFrame implements framebuffer.Device. Sixel output cannot be read back,
// so this returns the last presented frame.
func (d *Device) ReadFrame(dst []uint32) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	if err := framebuffer.CheckFrame(info, dst); err != nil {
		return err
	}
	copy(dst, d.last)
	return nil
}

// WriteFrame implements framebuffer.Device.
func (d *Device) WriteFrame(src []uint32) error {
	info, err := d.Info()
	if err != nil {
		return err
	}
	if err := framebuffer.CheckFrame(info, src); err != nil {
		return err
	}

	var img image.Image = framebuffer.WordsToRGBA(src, d.width, d.height)
	if d.scale > 1 {
		img = imaging.Resize(img, d.width*d.scale, d.height*d.scale, imaging.NearestNeighbor)
	}

	bw := bufio.NewWriter(d.out)
	if _, err := bw.WriteString(cursorHome); err != nil {
		return fmt.Errorf("sixelfb: %w", err)
	}
	enc := sixel.NewEncoder(bw)
	enc.Dither = false
	if err := enc.Encode(img); err != nil {
		return fmt.Errorf("sixelfb: encode: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sixelfb: %w", err)
	}

	copy(d.last, src)
	return nil
}

// Close implements framebuffer.Device. The writer is not closed.
func (d *Device) Close() error {
	d.closed = true
	return nil
}

func init() {
	framebuffer.Register("sixel", 40, func(opts framebuffer.Options) (framebuffer.Device, error) {
		logging.Logger().Debug("sixelfb: opening", "width", opts.Width, "height", opts.Height, "scale", opts.Scale)
		return New(opts.Output, opts.Width, opts.Height, opts.Scale), nil
	}, func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}
