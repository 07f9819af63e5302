// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package framebuffer abstracts the screen a fox canvas is presented on.
//
// A Device stands in for the three operating-system calls a userland
// graphics library needs: querying the screen geometry, copying the visible
// screen into a caller buffer, and copying a caller buffer onto the screen.
// Buffers are row-major slices of 32-bit 0x00RRGGBB words whose stride is
// Info.Width; devices convert to their own pitch and channel layout.
//
// # Devices
//
//   - Memory: in-process screen, always available (this package)
//   - linuxfb: Linux fbdev via ioctl and mmap (framebuffer/linuxfb)
//   - terminal: half-block cells in a terminal (framebuffer/termfb)
//   - sixel: DEC sixel images on a terminal (framebuffer/sixelfb)
//
// # Registry
//
// Backends register themselves from init, so a program selects them with a
// blank import:
//
//	import _ "github.com/foxos/fox/framebuffer/linuxfb"
//
//	dev, err := framebuffer.Open(framebuffer.Options{})
//	// or a specific backend:
//	dev, err := framebuffer.OpenByName("memory", framebuffer.Options{Width: 320, Height: 200})
//
// Devices are NOT thread-safe. Each device should be used from a single
// goroutine, or external synchronization must be used.
package framebuffer
