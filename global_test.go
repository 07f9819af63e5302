// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"testing"

	"github.com/foxos/fox/framebuffer"
)

// useDefault installs c as the global canvas for the duration of the test.
func useDefault(t *testing.T, c *Canvas) {
	t.Helper()
	prev := SetDefault(c)
	t.Cleanup(func() { SetDefault(prev) })
}

func TestGlobalFrameLifecycle(t *testing.T) {
	mem := framebuffer.NewMemory(32, 24)
	useDefault(t, NewCanvas(mem))

	if err := StartFrame(true); err != nil {
		t.Fatalf("StartFrame() error = %v", err)
	}
	SetBackground(Blue)
	SetPixel(0, 0, Red)
	DrawRect(2, 2, 3, 3, Green)
	DrawRectOutline(10, 2, 4, 4, White)
	DrawCircle(20, 12, 3, Yellow)
	DrawCircleOutline(20, 12, 6, Cyan)
	DrawLine(0, 23, 31, 23, Magenta)
	DrawChar(0, 8, 'A', White, nil)
	DrawString(8, 8, "B", White, nil)

	if err := EndFrame(); err != nil {
		t.Fatalf("EndFrame() error = %v", err)
	}

	checks := []struct {
		x, y int
		want Color
	}{
		{0, 0, Red},
		{3, 3, Green},
		{10, 2, White},
		{20, 12, Yellow},
		{26, 12, Cyan},
		{15, 23, Magenta},
		{31, 0, Blue},
	}
	for _, c := range checks {
		if got := Color(mem.Pixel(c.x, c.y)); got != c.want {
			t.Errorf("screen (%d,%d) = %#06x, want %#06x", c.x, c.y, uint32(got), uint32(c.want))
		}
	}

	FreeFramebuffer()
	if Default().Allocated() {
		t.Error("FreeFramebuffer() left the buffer allocated")
	}
	if err := EndFrame(); err != nil {
		t.Errorf("EndFrame() after free = %v, want nil", err)
	}
	if mem.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", mem.Frames())
	}
}

func TestDefaultCreatesCanvas(t *testing.T) {
	useDefault(t, nil)

	c := Default()
	if c == nil {
		t.Fatal("Default() returned nil")
	}
	if Default() != c {
		t.Error("Default() should return the same canvas until replaced")
	}
	if c.Device() != nil {
		t.Error("default canvas should open its device lazily")
	}

	// With only the built-in backend registered, the default canvas lands on
	// the memory screen.
	if err := StartFrame(true); err != nil {
		t.Fatalf("StartFrame() error = %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	if c.Width() != framebuffer.DefaultWidth || c.Height() != framebuffer.DefaultHeight {
		t.Errorf("default canvas = %dx%d", c.Width(), c.Height())
	}
}
