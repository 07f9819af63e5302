// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package framebuffer

import (
	"errors"
	"sort"
	"sync"

	"github.com/foxos/fox/internal/logging"
)

// Factory opens a device with the given options.
// Implementations should validate options and return descriptive errors.
type Factory func(opts Options) (Device, error)

// Backend describes a registered device backend.
type Backend struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Built-in priorities:
	//   - 100: hardware framebuffers (linuxfb)
	//   - 50: terminal cells
	//   - 40: terminal images (sixel)
	//   - 10: in-memory screen
	Priority int

	// Factory opens devices.
	Factory Factory

	// Available reports whether the backend can work on this system.
	Available func() bool
}

// defaultRegistry is the registry behind the package-level functions.
var defaultRegistry = NewRegistry()

// Registry manages registered device backends.
//
// Example registration:
//
//	func init() {
//	    framebuffer.Register("linuxfb", 100, open, available)
//	}
type Registry struct {
	mu       sync.RWMutex
	backends map[string]*Backend
}

// NewRegistry creates a new empty registry.
// Most code should use the package-level Register and Open.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]*Backend),
	}
}

// Register adds a backend to the default registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func Register(name string, priority int, factory Factory, available func() bool) {
	defaultRegistry.Register(name, priority, factory, available)
}

// Unregister removes a backend from the default registry.
func Unregister(name string) {
	defaultRegistry.Unregister(name)
}

// List returns all registered backend names sorted by priority (highest first).
func List() []string {
	return defaultRegistry.List()
}

// Available returns names of all available backends sorted by priority.
func Available() []string {
	return defaultRegistry.Available()
}

// Get returns information about a specific backend.
func Get(name string) (*Backend, bool) {
	return defaultRegistry.Get(name)
}

// Open opens a device on the best available backend.
func Open(opts Options) (Device, error) {
	return defaultRegistry.Open(opts)
}

// OpenByName opens a device on a specific backend.
func OpenByName(name string, opts Options) (Device, error) {
	return defaultRegistry.OpenByName(name, opts)
}

// Register adds a backend to this registry.
func (r *Registry) Register(name string, priority int, factory Factory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if available == nil {
		available = func() bool { return true }
	}

	r.backends[name] = &Backend{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.backends, name)
}

// List returns all registered backend names sorted by priority.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns a copy of the named backend entry.
func (r *Registry) Get(name string) (*Backend, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.backends[name]
	if !ok {
		return nil, false
	}
	bc := *b
	return &bc, true
}

// Open tries each available backend in priority order and returns the first
// device that opens.
func (r *Registry) Open(opts Options) (Device, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoDeviceAvailable
	}

	var lastErr error
	for _, name := range available {
		dev, err := r.OpenByName(name, opts)
		if err == nil {
			logging.Logger().Info("framebuffer: device opened", "backend", name)
			return dev, nil
		}
		logging.Logger().Warn("framebuffer: backend failed, trying next", "backend", name, "err", err)
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoDeviceAvailable
}

// OpenByName opens a device on a specific backend.
func (r *Registry) OpenByName(name string, opts Options) (Device, error) {
	r.mu.RLock()
	b, ok := r.backends[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &DeviceNotFoundError{Name: name}
	}
	if !b.Available() {
		return nil, &DeviceUnavailableError{Name: name}
	}

	return b.Factory(opts)
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. Must be called with lock held.
func (r *Registry) sortedNames(onlyAvailable bool) []string {
	if len(r.backends) == 0 {
		return nil
	}

	entries := make([]*Backend, 0, len(r.backends))
	for _, b := range r.backends {
		if onlyAvailable && !b.Available() {
			continue
		}
		entries = append(entries, b)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].Name < entries[j].Name
	})

	names := make([]string, len(entries))
	for i, b := range entries {
		names[i] = b.Name
	}
	return names
}

// Errors.
var (
	// ErrNoDeviceAvailable is returned when no backends are registered
	// or available on the current system.
	ErrNoDeviceAvailable = errors.New("framebuffer: no device available")
)

// DeviceNotFoundError indicates a named backend is not registered.
type DeviceNotFoundError struct {
	Name string
}

func (e *DeviceNotFoundError) Error() string {
	return "framebuffer: backend not found: " + e.Name
}

// DeviceUnavailableError indicates a backend exists but is not available.
type DeviceUnavailableError struct {
	Name string
}

func (e *DeviceUnavailableError) Error() string {
	return "framebuffer: backend unavailable: " + e.Name
}

func init() {
	Register("memory", 10, func(opts Options) (Device, error) {
		return NewMemory(opts.Width, opts.Height), nil
	}, nil)
}
