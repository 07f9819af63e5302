// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package chardev sends command bytes to character devices.
//
// Two devices are known: the PS/2 keyboard and the font renderer. Keyboard
// commands open, write and close the device on every call. The font renderer
// is opened once on first use and stays open until Close (the shutdown hook).
package chardev

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/foxos/fox/internal/logging"
)

// Device names.
const (
	KeyboardDevice     = "dev:ps2_keyboard"
	FontRendererDevice = "dev:font_renderer"
)

// DefaultRoot is the directory "dev:" names resolve under.
const DefaultRoot = "/dev"

const devPrefix = "dev:"

// Opener opens a device node for writing.
type Opener func(path string) (io.WriteCloser, error)

// OpenError is returned when a device cannot be opened.
type OpenError struct {
	Name string
	Err  error
}

func (e *OpenError) Error() string {
	return fmt.Sprintf("chardev: open %s: %v", e.Name, e.Err)
}

func (e *OpenError) Unwrap() error { return e.Err }

// Option configures a Commander.
type Option func(*Commander)

// WithDeviceRoot sets the directory "dev:" names resolve under.
func WithDeviceRoot(dir string) Option {
	return func(c *Commander) {
		c.root = dir
	}
}

// WithOpener replaces the function used to open devices.
func WithOpener(open Opener) Option {
	return func(c *Commander) {
		if open != nil {
			c.open = open
		}
	}
}

// Commander writes commands to the keyboard and font renderer devices.
// It is safe for concurrent use.
type Commander struct {
	root string
	open Opener

	mu           sync.Mutex
	fontRenderer io.WriteCloser
}

// New returns a Commander.
func New(opts ...Option) *Commander {
	c := &Commander{
		root: DefaultRoot,
		open: openFile,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Path returns the file system path a device name resolves to.
// Names without the "dev:" prefix are returned unchanged.
func (c *Commander) Path(name string) string {
	if rest, ok := strings.CutPrefix(name, devPrefix); ok {
		return filepath.Join(c.root, rest)
	}
	return name
}

// SendKeyboard writes cmd to the keyboard device.
func (c *Commander) SendKeyboard(cmd []byte) error {
	w, err := c.openDevice(KeyboardDevice)
	if err != nil {
		return err
	}
	werr := write(w, cmd)
	cerr := w.Close()
	if werr != nil {
		return fmt.Errorf("chardev: write %s: %w", KeyboardDevice, werr)
	}
	if cerr != nil {
		return fmt.Errorf("chardev: close %s: %w", KeyboardDevice, cerr)
	}
	return nil
}

// SendFontRenderer writes cmd to the font renderer device, opening it on
// first use.
func (c *Commander) SendFontRenderer(cmd []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fontRenderer == nil {
		w, err := c.openDevice(FontRendererDevice)
		if err != nil {
			return err
		}
		c.fontRenderer = w
	}
	if err := write(c.fontRenderer, cmd); err != nil {
		return fmt.Errorf("chardev: write %s: %w", FontRendererDevice, err)
	}
	return nil
}

// Close closes the font renderer device if it was opened.
// Close is idempotent; a later SendFontRenderer opens the device again.
func (c *Commander) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.fontRenderer == nil {
		return nil
	}
	err := c.fontRenderer.Close()
	c.fontRenderer = nil
	logging.Logger().Debug("chardev: font renderer closed")
	if err != nil {
		return fmt.Errorf("chardev: close %s: %w", FontRendererDevice, err)
	}
	return nil
}

func (c *Commander) openDevice(name string) (io.WriteCloser, error) {
	path := c.Path(name)
	w, err := c.open(path)
	if err != nil {
		return nil, &OpenError{Name: name, Err: err}
	}
	logging.Logger().Debug("chardev: device opened", "name", name, "path", path)
	return w, nil
}

// write writes all of cmd in a single call.
func write(w io.Writer, cmd []byte) error {
	n, err := w.Write(cmd)
	if err != nil {
		return err
	}
	if n != len(cmd) {
		return io.ErrShortWrite
	}
	return nil
}

func openFile(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_WRONLY, 0)
}

var defaultCommander = New()

// SendKeyboard writes cmd to the keyboard device of the default Commander.
func SendKeyboard(cmd []byte) error {
	return defaultCommander.SendKeyboard(cmd)
}

// SendFontRenderer writes cmd to the font renderer device of the default
// Commander.
func SendFontRenderer(cmd []byte) error {
	return defaultCommander.SendFontRenderer(cmd)
}

// Shutdown closes the default Commander's font renderer device. Programs
// call it before exiting.
func Shutdown() error {
	return defaultCommander.Close()
}
