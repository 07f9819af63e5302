// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build linux

package linuxfb

import (
	"encoding/binary"
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/internal/logging"
)

// <linux/fb.h> ioctls
//
// 0x46 is 'F'
const (
	fbioGetVScreenInfo = 0x4600
	fbioGetFScreenInfo = 0x4602
)

// varScreenInfo mirrors struct fb_var_screeninfo.
type varScreenInfo struct {
	XRes, YRes               uint32
	XResVirtual, YResVirtual uint32
	XOffset, YOffset         uint32
	BitsPerPixel             uint32
	Grayscale                uint32

	Red, Green, Blue, Transp bitfield

	NonStd     uint32
	Activate   uint32
	Height     uint32
	Width      uint32
	AccelFlags uint32

	PixClock    uint32
	LeftMargin  uint32
	RightMargin uint32
	UpperMargin uint32
	LowerMargin uint32
	HSyncLen    uint32
	VSyncLen    uint32
	Sync        uint32
	VMode       uint32
	Rotate      uint32
	Colorspace  uint32
	_           [4]uint32
}

// fixScreenInfo mirrors struct fb_fix_screeninfo.
type fixScreenInfo struct {
	ID           [16]byte
	SMemStart    uintptr
	SMemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MmioStart    uintptr
	MmioLen      uint32
	Accel        uint32
	Capabilities uint16
	_            [2]uint16
}

// Device is a memory-mapped Linux framebuffer.
type Device struct {
	f      *os.File
	mem    []byte
	info   framebuffer.Info
	layout layout

	// visible area offset inside the virtual screen
	xoff, yoff int

	closed bool
}

var _ framebuffer.Device = (*Device)(nil)

// Open opens and maps the framebuffer device at path.
func Open(path string) (*Device, error) {
	if path == "" {
		path = DefaultPath
	}
	f, err := os.OpenFile(path, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, fmt.Errorf("linuxfb: %w", err)
	}

	d, err := newDevice(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("linuxfb: %s: %w", path, err)
	}

	logging.Logger().Debug("linuxfb: mapped framebuffer",
		"path", path, "width", d.info.Width, "height", d.info.Height, "pitch", d.info.Pitch)
	return d, nil
}

func newDevice(f *os.File) (*Device, error) {
	var vi varScreenInfo
	if err := ioctl(f, fbioGetVScreenInfo, unsafe.Pointer(&vi)); err != nil {
		return nil, fmt.Errorf("FBIOGET_VSCREENINFO: %w", err)
	}
	var fi fixScreenInfo
	if err := ioctl(f, fbioGetFScreenInfo, unsafe.Pointer(&fi)); err != nil {
		return nil, fmt.Errorf("FBIOGET_FSCREENINFO: %w", err)
	}

	if vi.BitsPerPixel != 32 {
		return nil, fmt.Errorf("%d bits per pixel: %w", vi.BitsPerPixel, ErrUnsupportedFormat)
	}
	l := layout{red: vi.Red, green: vi.Green, blue: vi.Blue}
	if err := l.validate(); err != nil {
		return nil, err
	}

	info := framebuffer.Info{
		Width:      int(vi.XRes),
		Height:     int(vi.YRes),
		Pitch:      int(fi.LineLength),
		BufferSize: int(fi.SMemLen),
	}
	xoff, yoff := int(vi.XOffset), int(vi.YOffset)
	need := (yoff+info.Height-1)*info.Pitch + (xoff+info.Width)*4
	if info.Width <= 0 || info.Height <= 0 || need > info.BufferSize {
		return nil, fmt.Errorf("geometry %dx%d+%d+%d does not fit %d bytes: %w",
			info.Width, info.Height, xoff, yoff, info.BufferSize, ErrUnsupportedFormat)
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, info.BufferSize, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("mmap: %w", err)
	}

	return &Device{
		f:      f,
		mem:    mem,
		info:   info,
		layout: l,
		xoff:   xoff,
		yoff:   yoff,
	}, nil
}

func ioctl(f *os.File, req uintptr, arg unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), req, uintptr(arg))
	if errno != 0 {
		return errno
	}
	return nil
}

// Info implements framebuffer.Device.
func (d *Device) Info() (framebuffer.Info, error) {
	if d.closed {
		return framebuffer.Info{}, framebuffer.ErrClosed
	}
	return d.info, nil
}

// ReadFrame implements framebuffer.Device.
func (d *Device) ReadFrame(dst []uint32) error {
	if d.closed {
		return framebuffer.ErrClosed
	}
	if err := framebuffer.CheckFrame(d.info, dst); err != nil {
		return err
	}
	w := d.info.Width
	for y := 0; y < d.info.Height; y++ {
		row := d.mem[(y+d.yoff)*d.info.Pitch+d.xoff*4:]
		out := dst[y*w : (y+1)*w]
		for x := range out {
			out[x] = d.layout.decode(binary.NativeEndian.Uint32(row[x*4:]))
		}
	}
	return nil
}

// WriteFrame implements framebuffer.Device.
func (d *Device) WriteFrame(src []uint32) error {
	if d.closed {
		return framebuffer.ErrClosed
	}
	if err := framebuffer.CheckFrame(d.info, src); err != nil {
		return err
	}
	w := d.info.Width
	for y := 0; y < d.info.Height; y++ {
		row := d.mem[(y+d.yoff)*d.info.Pitch+d.xoff*4:]
		in := src[y*w : (y+1)*w]
		for x, word := range in {
			binary.NativeEndian.PutUint32(row[x*4:], d.layout.encode(word))
		}
	}
	return nil
}

// Close unmaps and closes the device. Close is idempotent.
func (d *Device) Close() error {
	if d.closed {
		return nil
	}
	d.closed = true

	err := unix.Munmap(d.mem)
	d.mem = nil
	if cerr := d.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func init() {
	framebuffer.Register("linuxfb", 100, func(opts framebuffer.Options) (framebuffer.Device, error) {
		return Open(opts.Path)
	}, func() bool {
		return available(nodePattern)
	})
}
