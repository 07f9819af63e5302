// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/psf"
)

// Canvas is a shadow buffer bound to a framebuffer device.
//
// Drawing happens in the shadow buffer; StartFrame and EndFrame copy it in
// from and out to the device. The buffer is allocated lazily on the first
// StartFrame and released by Free. While no buffer is allocated the canvas
// is 0x0 and drawing does nothing.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	dev     framebuffer.Device
	ownsDev bool
	opts    canvasOptions

	width  int
	height int
	pix    []uint32 // row-major, stride = width
}

// NewCanvas creates a canvas for dev. No buffer is allocated until
// StartFrame. A nil dev makes the canvas open a device from the framebuffer
// registry on first use (see WithBackend).
func NewCanvas(dev framebuffer.Device, opts ...CanvasOption) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{dev: dev, opts: o}
}

// Device returns the device the canvas presents to, or nil if none has been
// opened yet.
func (c *Canvas) Device() framebuffer.Device {
	return c.dev
}

// device returns the canvas device, opening one from the registry if needed.
func (c *Canvas) device() (framebuffer.Device, error) {
	if c.dev != nil {
		return c.dev, nil
	}

	var (
		dev framebuffer.Device
		err error
	)
	if c.opts.backend != "" {
		dev, err = framebuffer.OpenByName(c.opts.backend, c.opts.deviceOpts)
	} else {
		dev, err = framebuffer.Open(c.opts.deviceOpts)
	}
	if err != nil {
		return nil, fmt.Errorf("fox: open framebuffer: %w", err)
	}
	c.dev = dev
	c.ownsDev = true
	return dev, nil
}

// allocate queries the device geometry and allocates the shadow buffer if
// none is allocated.
func (c *Canvas) allocate() error {
	if c.pix != nil {
		return nil
	}
	dev, err := c.device()
	if err != nil {
		return err
	}
	info, err := dev.Info()
	if err != nil {
		return fmt.Errorf("fox: framebuffer info: %w", err)
	}
	if info.Width <= 0 || info.Height <= 0 {
		return fmt.Errorf("fox: framebuffer reports %dx%d", info.Width, info.Height)
	}

	c.width = info.Width
	c.height = info.Height
	c.pix = make([]uint32, info.Pixels())

	Logger().Debug("fox: shadow buffer allocated",
		"width", info.Width, "height", info.Height, "device_bytes", info.BufferSize)
	return nil
}

// StartFrame begins a frame. It allocates the shadow buffer on first use,
// then either copies the visible screen into it (empty == false) or clears
// it to 0.
func (c *Canvas) StartFrame(empty bool) error {
	if err := c.allocate(); err != nil {
		return err
	}

	if empty {
		c.SetBackground(0)
		return nil
	}
	if err := c.dev.ReadFrame(c.pix); err != nil {
		return fmt.Errorf("fox: copy from framebuffer: %w", err)
	}
	Logger().Debug("fox: frame copied in", "pixels", len(c.pix))
	return nil
}

// EndFrame presents the shadow buffer. It does nothing when no buffer is
// allocated.
func (c *Canvas) EndFrame() error {
	if c.pix == nil {
		return nil
	}
	if err := c.dev.WriteFrame(c.pix); err != nil {
		return fmt.Errorf("fox: copy to framebuffer: %w", err)
	}
	Logger().Debug("fox: frame copied out", "pixels", len(c.pix))
	return nil
}

// Free releases the shadow buffer. The next StartFrame queries the device
// geometry again. Free does nothing when no buffer is allocated.
func (c *Canvas) Free() {
	if c.pix == nil {
		return
	}
	c.pix = nil
	c.width = 0
	c.height = 0
	Logger().Debug("fox: shadow buffer freed")
}

// Close frees the buffer and closes the device if the canvas opened it
// itself. Devices passed to NewCanvas are left open.
func (c *Canvas) Close() error {
	c.Free()
	if !c.ownsDev || c.dev == nil {
		return nil
	}
	err := c.dev.Close()
	c.dev = nil
	c.ownsDev = false
	if err != nil {
		Logger().Warn("fox: closing framebuffer failed", "err", err)
		return fmt.Errorf("fox: close framebuffer: %w", err)
	}
	return nil
}

// Allocated reports whether the shadow buffer exists.
func (c *Canvas) Allocated() bool {
	return c.pix != nil
}

// Width returns the width of the shadow buffer, 0 when unallocated.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height of the shadow buffer, 0 when unallocated.
func (c *Canvas) Height() int {
	return c.height
}

// Pix returns the shadow buffer (row-major, stride Width). It is nil when
// unallocated.
func (c *Canvas) Pix() []uint32 {
	return c.pix
}

// font returns f, or the canvas font, or the built-in font.
func (c *Canvas) font(f *psf.Font) *psf.Font {
	if f != nil {
		return f
	}
	if c.opts.font != nil {
		return c.opts.font
	}
	return psf.Default()
}

// SetBackground fills every pixel with col.
func (c *Canvas) SetBackground(col Color) {
	w := uint32(col)
	for i := range c.pix {
		c.pix[i] = w
	}
}

// SetPixel sets one pixel. Coordinates outside the buffer are ignored.
func (c *Canvas) SetPixel(x, y int, col Color) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	c.pix[y*c.width+x] = uint32(col)
}

// setPixelUnsafe sets one pixel without a bounds check.
// Callers clip first.
func (c *Canvas) setPixelUnsafe(x, y int, col Color) {
	c.pix[y*c.width+x] = uint32(col)
}

// Pixel returns the pixel at (x, y), or 0 outside the buffer.
func (c *Canvas) Pixel(x, y int) Color {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return 0
	}
	return Color(c.pix[y*c.width+x])
}

// At implements the image.Image interface.
func (c *Canvas) At(x, y int) color.Color {
	return c.Pixel(x, y)
}

// Bounds implements the image.Image interface.
func (c *Canvas) Bounds() image.Rectangle {
	return image.Rect(0, 0, c.width, c.height)
}

// ColorModel implements the image.Image interface.
func (c *Canvas) ColorModel() color.Model {
	return ColorModel
}

// Set implements the draw.Image interface.
func (c *Canvas) Set(x, y int, col color.Color) {
	c.SetPixel(x, y, FromColor(col))
}

// Snapshot returns the shadow buffer as an opaque RGBA image.
func (c *Canvas) Snapshot() *image.RGBA {
	return framebuffer.WordsToRGBA(c.pix, c.width, c.height)
}

// SavePNG saves the shadow buffer to a PNG file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, c.Snapshot())
}
