// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package linuxfb

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLayoutXRGB(t *testing.T) {
	for _, w := range []uint32{0, 0xffffff, 0x123456, 0xff0000, 0x00ff00, 0x0000ff} {
		if got := xrgb8888.encode(w); got != w {
			t.Errorf("encode(%#06x) = %#06x, want identity", w, got)
		}
		if got := xrgb8888.decode(w); got != w {
			t.Errorf("decode(%#06x) = %#06x, want identity", w, got)
		}
	}
	// Padding bits on the device side are dropped.
	if got := xrgb8888.decode(0xff123456); got != 0x123456 {
		t.Errorf("decode(0xff123456) = %#x, want 0x123456", got)
	}
}

func TestLayoutBGR(t *testing.T) {
	bgr := layout{
		red:   bitfield{Offset: 0, Length: 8},
		green: bitfield{Offset: 8, Length: 8},
		blue:  bitfield{Offset: 16, Length: 8},
	}
	if got := bgr.encode(0x112233); got != 0x332211 {
		t.Errorf("encode = %#06x, want 0x332211", got)
	}
	if got := bgr.decode(0x332211); got != 0x112233 {
		t.Errorf("decode = %#06x, want 0x112233", got)
	}
}

func TestLayoutNarrowChannels(t *testing.T) {
	rgb565 := layout{
		red:   bitfield{Offset: 11, Length: 5},
		green: bitfield{Offset: 5, Length: 6},
		blue:  bitfield{Offset: 0, Length: 5},
	}
	if got := rgb565.encode(0xffffff); got != 0xffff {
		t.Errorf("encode(white) = %#x, want 0xffff", got)
	}
	if got := rgb565.decode(0xffff); got != 0xffffff {
		t.Errorf("decode(0xffff) = %#06x, want white", got)
	}
	if got := rgb565.decode(0); got != 0 {
		t.Errorf("decode(0) = %#06x, want black", got)
	}
}

func TestLayoutValidate(t *testing.T) {
	if err := xrgb8888.validate(); err != nil {
		t.Errorf("xrgb8888.validate() = %v", err)
	}
	bad := []layout{
		{red: bitfield{Offset: 16, Length: 10}, green: xrgb8888.green, blue: xrgb8888.blue},
		{red: xrgb8888.red, green: bitfield{Offset: 8}, blue: xrgb8888.blue},
		{red: xrgb8888.red, green: xrgb8888.green, blue: bitfield{Offset: 30, Length: 8}},
		{red: bitfield{Offset: 16, Length: 8, MSBRight: 1}, green: xrgb8888.green, blue: xrgb8888.blue},
	}
	for i, l := range bad {
		if err := l.validate(); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("layout %d: validate() = %v, want ErrUnsupportedFormat", i, err)
		}
	}
}

func TestAvailable(t *testing.T) {
	dir := t.TempDir()
	pattern := filepath.Join(dir, "fb[0-9]*")

	if available(pattern) {
		t.Error("available() with no nodes = true")
	}

	// Only a secondary node exists; the default one is absent.
	if err := os.WriteFile(filepath.Join(dir, "fb1"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if !available(pattern) {
		t.Error("available() with fb1 present = false")
	}
}
