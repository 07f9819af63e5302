// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"github.com/foxos/fox/framebuffer"
	"github.com/foxos/fox/psf"
)

// CanvasOption configures a Canvas during creation.
// Use functional options to customize Canvas behavior.
//
// Example:
//
//	// Memory screen, built-in font
//	c := fox.NewCanvas(framebuffer.NewMemory(320, 200))
//
//	// Device picked from the registry on first StartFrame
//	c := fox.NewCanvas(nil, fox.WithBackend("linuxfb"), fox.WithFont(font))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	font       *psf.Font
	backend    string
	deviceOpts framebuffer.Options
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		font:    nil, // psf.Default() is used when nil
		backend: "", // best available backend
	}
}

// WithFont sets the font DrawChar and DrawString use when they are passed a
// nil font.
func WithFont(f *psf.Font) CanvasOption {
	return func(o *canvasOptions) {
		o.font = f
	}
}

// WithBackend names the registry backend a canvas without a device opens on
// first use. The empty name selects the best available backend.
func WithBackend(name string) CanvasOption {
	return func(o *canvasOptions) {
		o.backend = name
	}
}

// WithDeviceOptions sets the options passed to the backend a canvas without
// a device opens.
func WithDeviceOptions(opts framebuffer.Options) CanvasOption {
	return func(o *canvasOptions) {
		o.deviceOpts = opts
	}
}
