// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package termfb presents frames in a terminal.
//
// Every character cell shows two vertically stacked pixels: an upper half
// block whose foreground is the top pixel and whose background is the
// bottom pixel. A terminal of C columns and R rows is a C x 2R screen.
//
// Importing the package registers the "terminal" backend, available when
// stdout is a terminal.
package termfb

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/internal/logging"
)

// halfBlock is U+2580 UPPER HALF BLOCK.
const halfBlock = '▀'

// Device draws frames on a tcell screen.
type Device struct {
	screen tcell.Screen
	cols   int
	rows   int

	// last is the most recently presented frame, returned by ReadFrame
	last []uint32

	closed bool
}

var _ framebuffer.Device = (*Device)(nil)

// Open takes over the controlling terminal.
func Open() (*Device, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("termfb: %w", err)
	}
	return New(s)
}

// New wraps an uninitialised tcell screen. The screen geometry is fixed when
// New is called; later resizes crop the picture.
func New(s tcell.Screen) (*Device, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("termfb: init screen: %w", err)
	}
	s.HideCursor()
	s.Clear()

	cols, rows := s.Size()
	logging.Logger().Debug("termfb: screen ready", "cols", cols, "rows", rows)

	return &Device{
		screen: s,
		cols:   cols,
		rows:   rows,
		last:   make([]uint32, cols*rows*2),
	}, nil
}

// Info implements framebuffer.Device.
func (d *Device) Info() (framebuffer.Info, error) {
	if d.closed {
		return framebuffer.Info{}, framebuffer.ErrClosed
	}
	return framebuffer.Info{
		Width:      d.cols,
		Height:     d.rows * 2,
		Pitch:      d.cols * 4,
		BufferSize: d.cols * d.rows * 2 * 4,
	}, nil
}

// ReadFrame implements framebuffer.Device. A terminal cannot be read back,
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

	for row := 0; row < d.rows; row++ {
		top := src[(2*row)*d.cols:]
		bottom := src[(2*row+1)*d.cols:]
		for col := 0; col < d.cols; col++ {
			d.screen.SetContent(col, row, halfBlock, nil, cellStyle(top[col], bottom[col]))
		}
	}
	d.screen.Show()

	copy(d.last, src)
	return nil
}

// WaitKey blocks until a key is pressed or the screen is finalised.
func (d *Device) WaitKey() {
	if d.closed {
		return
	}
	for {
		switch d.screen.PollEvent().(type) {
		case *tcell.EventKey, nil:
			return
		}
	}
}

// Close restores the terminal. Close is idempotent.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true
	d.screen.Fini()
	return nil
}

// cellStyle returns the style of a cell showing top over bottom.
func cellStyle(top, bottom uint32) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewHexColor(int32(top & 0xffffff))).
		Background(tcell.NewHexColor(int32(bottom & 0xffffff)))
}

func init() {
	framebuffer.Register("terminal", 50, func(framebuffer.Options) (framebuffer.Device, error) {
		return Open()
	}, func() bool {
		return term.IsTerminal(int(os.Stdout.Fd()))
	})
}
