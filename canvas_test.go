// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/foxos/fox/framebuffer"
)

// Verify at compile time that Canvas implements draw.Image.
var _ draw.Image = (*Canvas)(nil)

// stubDevice is a framebuffer.Device whose calls can be made to fail.
type stubDevice struct {
	info     framebuffer.Info
	infoErr  error
	readErr  error
	writeErr error
	closeErr error
	closed   int
}

func (d *stubDevice) Info() (framebuffer.Info, error) { return d.info, d.infoErr }
func (d *stubDevice) ReadFrame([]uint32) error        { return d.readErr }
func (d *stubDevice) WriteFrame([]uint32) error       { return d.writeErr }
func (d *stubDevice) Close() error                    { d.closed++; return d.closeErr }

// newTestCanvas returns a started, cleared canvas over a memory screen.
func newTestCanvas(t *testing.T, w, h int) (*Canvas, *framebuffer.Memory) {
	t.Helper()
	mem := framebuffer.NewMemory(w, h)
	c := NewCanvas(mem)
	if err := c.StartFrame(true); err != nil {
		t.Fatalf("StartFrame() error = %v", err)
	}
	return c, mem
}

// countSet returns the number of pixels equal to col.
func countSet(c *Canvas, col Color) int {
	n := 0
	for _, w := range c.Pix() {
		if Color(w) == col {
			n++
		}
	}
	return n
}

func TestCanvasLazyAllocation(t *testing.T) {
	mem := framebuffer.NewMemory(8, 6)
	c := NewCanvas(mem)

	if c.Allocated() || c.Width() != 0 || c.Height() != 0 {
		t.Fatalf("new canvas is allocated: %dx%d", c.Width(), c.Height())
	}

	// Drawing and presenting without a buffer are no-ops.
	c.SetPixel(0, 0, White)
	c.DrawRect(0, 0, 8, 6, White)
	c.DrawCircle(3, 3, 2, White)
	c.DrawString(0, 0, "hi", White, nil)
	if err := c.EndFrame(); err != nil {
		t.Errorf("EndFrame() without buffer = %v, want nil", err)
	}
	if mem.Frames() != 0 {
		t.Errorf("EndFrame() without buffer presented %d frames", mem.Frames())
	}

	if err := c.StartFrame(true); err != nil {
		t.Fatalf("StartFrame() error = %v", err)
	}
	if !c.Allocated() || c.Width() != 8 || c.Height() != 6 || len(c.Pix()) != 48 {
		t.Errorf("after StartFrame: allocated=%v %dx%d len=%d",
			c.Allocated(), c.Width(), c.Height(), len(c.Pix()))
	}
}

func TestCanvasStartFrameEmptyClears(t *testing.T) {
	mem := framebuffer.NewMemory(4, 4)
	mem.SetPixel(1, 1, 0xff00ff)
	c := NewCanvas(mem)

	if err := c.StartFrame(true); err != nil {
		t.Fatal(err)
	}
	if got := c.Pixel(1, 1); got != 0 {
		t.Errorf("Pixel(1,1) = %#x after empty StartFrame, want 0", uint32(got))
	}

	c.SetPixel(2, 2, Red)
	if err := c.EndFrame(); err != nil {
		t.Fatal(err)
	}
	if mem.Pixel(1, 1) != 0 || mem.Pixel(2, 2) != uint32(Red) {
		t.Errorf("screen = (1,1)=%#x (2,2)=%#x, want 0 and red", mem.Pixel(1, 1), mem.Pixel(2, 2))
	}
	if mem.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", mem.Frames())
	}
}

func TestCanvasStartFrameCopiesScreen(t *testing.T) {
	mem := framebuffer.NewMemory(4, 4)
	c := NewCanvas(mem)
	if err := c.StartFrame(true); err != nil {
		t.Fatal(err)
	}

	// Something else draws on the screen between frames.
	mem.SetPixel(2, 3, 0x123456)

	if err := c.StartFrame(false); err != nil {
		t.Fatal(err)
	}
	if got := c.Pixel(2, 3); got != 0x123456 {
		t.Errorf("Pixel(2,3) = %#x, want 0x123456", uint32(got))
	}
}

func TestCanvasFree(t *testing.T) {
	mem := framebuffer.NewMemory(4, 4)
	c := NewCanvas(mem)
	c.Free() // no buffer yet

	if err := c.StartFrame(true); err != nil {
		t.Fatal(err)
	}
	c.Free()
	if c.Allocated() || c.Pix() != nil || c.Width() != 0 {
		t.Error("Free() left the buffer allocated")
	}
	c.SetPixel(0, 0, White) // must not panic
	if err := c.EndFrame(); err != nil || mem.Frames() != 0 {
		t.Errorf("EndFrame() after Free = %v with %d frames, want no-op", err, mem.Frames())
	}

	if err := c.StartFrame(false); err != nil {
		t.Fatalf("StartFrame() after Free = %v", err)
	}
	if !c.Allocated() {
		t.Error("StartFrame() after Free did not reallocate")
	}
}

func TestCanvasDeviceErrors(t *testing.T) {
	boom := errors.New("boom")
	geom := framebuffer.Info{Width: 2, Height: 2}

	tests := []struct {
		name  string
		dev   *stubDevice
		empty bool
		end   bool
	}{
		{"info", &stubDevice{infoErr: boom}, true, false},
		{"read", &stubDevice{info: geom, readErr: boom}, false, false},
		{"write", &stubDevice{info: geom, writeErr: boom}, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCanvas(tt.dev)
			err := c.StartFrame(tt.empty)
			if tt.end {
				if err != nil {
					t.Fatalf("StartFrame() = %v", err)
				}
				err = c.EndFrame()
			}
			if !errors.Is(err, boom) {
				t.Errorf("error = %v, want wrapped boom", err)
			}
		})
	}

	c := NewCanvas(&stubDevice{})
	if err := c.StartFrame(true); err == nil {
		t.Error("StartFrame() on a 0x0 device succeeded")
	}

	mem := framebuffer.NewMemory(2, 2)
	_ = mem.Close()
	if err := NewCanvas(mem).StartFrame(true); !errors.Is(err, framebuffer.ErrClosed) {
		t.Errorf("StartFrame() on closed device = %v, want ErrClosed", err)
	}
}

func TestCanvasOpensBackend(t *testing.T) {
	c := NewCanvas(nil,
		WithBackend("memory"),
		WithDeviceOptions(framebuffer.Options{Width: 5, Height: 3}),
	)
	if c.Device() != nil {
		t.Fatal("device opened before StartFrame")
	}
	if err := c.StartFrame(true); err != nil {
		t.Fatalf("StartFrame() error = %v", err)
	}
	if c.Width() != 5 || c.Height() != 3 {
		t.Errorf("canvas = %dx%d, want 5x3", c.Width(), c.Height())
	}

	dev := c.Device()
	if err := c.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if _, err := dev.Info(); !errors.Is(err, framebuffer.ErrClosed) {
		t.Errorf("owned device still open after Close: %v", err)
	}

	var notFound *framebuffer.DeviceNotFoundError
	bad := NewCanvas(nil, WithBackend("no-such-backend"))
	if err := bad.StartFrame(true); !errors.As(err, &notFound) {
		t.Errorf("StartFrame() = %v, want DeviceNotFoundError", err)
	}
}

func TestCanvasCloseKeepsCallerDevice(t *testing.T) {
	dev := &stubDevice{info: framebuffer.Info{Width: 1, Height: 1}}
	c := NewCanvas(dev)
	_ = c.StartFrame(true)
	if err := c.Close(); err != nil {
		t.Fatal(err)
	}
	if dev.closed != 0 {
		t.Error("Close() closed a device the canvas did not open")
	}
}

func TestCanvasPixelBounds(t *testing.T) {
	c, _ := newTestCanvas(t, 10, 10)
	c.SetBackground(Blue)

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10}, {-100, -100}, {100, 100},
	}
	for _, p := range oob {
		c.SetPixel(p.x, p.y, Red)
		if got := c.Pixel(p.x, p.y); got != 0 {
			t.Errorf("Pixel(%d,%d) = %#x, want 0 out of range", p.x, p.y, uint32(got))
		}
	}
	if n := countSet(c, Blue); n != 100 {
		t.Errorf("out-of-bounds writes modified the buffer: %d blue pixels, want 100", n)
	}
}

func TestCanvasImageInterop(t *testing.T) {
	c, _ := newTestCanvas(t, 3, 2)

	if c.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Errorf("Bounds() = %v", c.Bounds())
	}
	c.Set(1, 1, color.NRGBA{R: 0xff, G: 0x80, A: 0xff})
	if got := c.Pixel(1, 1); got != 0xff8000 {
		t.Errorf("Set() stored %#x, want 0xff8000", uint32(got))
	}
	if got := c.ColorModel().Convert(color.White); got != White {
		t.Errorf("ColorModel() converted white to %v", got)
	}

	// image/draw goes through At and Set.
	draw.Draw(c, image.Rect(0, 0, 1, 2), image.NewUniform(color.RGBA{G: 0xff, A: 0xff}), image.Point{}, draw.Src)
	if c.Pixel(0, 0) != Green || c.Pixel(0, 1) != Green || c.Pixel(2, 0) != Black {
		t.Errorf("draw.Draw result = %v", c.Pix())
	}

	snap := c.Snapshot()
	if got := snap.RGBAAt(1, 1); got != (color.RGBA{R: 0xff, G: 0x80, B: 0, A: 0xff}) {
		t.Errorf("Snapshot().RGBAAt(1,1) = %v", got)
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c, _ := newTestCanvas(t, 4, 4)
	c.SetPixel(3, 0, Yellow)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if FromColor(img.At(3, 0)) != Yellow {
		t.Errorf("decoded pixel = %v, want yellow", img.At(3, 0))
	}

	if err := c.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}
