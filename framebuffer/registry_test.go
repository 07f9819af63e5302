// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package framebuffer

import (
	"errors"
	"testing"
)

func memoryFactory(opts Options) (Device, error) {
	return NewMemory(opts.Width, opts.Height), nil
}

// TestRegistryRegister tests backend registration.
func TestRegistryRegister(t *testing.T) {
	r := NewRegistry()
	r.Register("test", 50, memoryFactory, nil)

	b, ok := r.Get("test")
	if !ok {
		t.Fatal("registered backend not found")
	}
	if b.Name != "test" {
		t.Errorf("Name = %s, want test", b.Name)
	}
	if b.Priority != 50 {
		t.Errorf("Priority = %d, want 50", b.Priority)
	}
	if !b.Available() {
		t.Error("backend should be available (nil Available func)")
	}
}

// TestRegistryUnregister tests backend removal.
func TestRegistryUnregister(t *testing.T) {
	r := NewRegistry()
	r.Register("temp", 10, memoryFactory, nil)
	r.Unregister("temp")

	if _, ok := r.Get("temp"); ok {
		t.Error("backend should not exist after unregister")
	}
}

// TestRegistryOrdering tests priority ordering and availability filtering.
func TestRegistryOrdering(t *testing.T) {
	r := NewRegistry()
	r.Register("low", 10, memoryFactory, nil)
	r.Register("high", 100, memoryFactory, nil)
	r.Register("mid", 50, memoryFactory, func() bool { return false })
	r.Register("also-low", 10, memoryFactory, nil)

	list := r.List()
	want := []string{"high", "mid", "also-low", "low"}
	if len(list) != len(want) {
		t.Fatalf("List() = %v, want %v", list, want)
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List()[%d] = %s, want %s", i, list[i], want[i])
		}
	}

	avail := r.Available()
	if len(avail) != 3 || avail[0] != "high" {
		t.Errorf("Available() = %v, want [high also-low low]", avail)
	}
}

// TestRegistryOpenFallsThrough tests that a failing factory hands over to the
// next backend.
func TestRegistryOpenFallsThrough(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("no hardware")
	r.Register("broken", 100, func(Options) (Device, error) { return nil, boom }, nil)
	r.Register("memory", 10, memoryFactory, nil)

	dev, err := r.Open(Options{Width: 8, Height: 4})
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	info, _ := dev.Info()
	if info.Width != 8 || info.Height != 4 {
		t.Errorf("opened %dx%d, want 8x4", info.Width, info.Height)
	}
}

func TestRegistryOpenErrors(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Open(Options{}); !errors.Is(err, ErrNoDeviceAvailable) {
		t.Errorf("Open() on empty registry = %v, want ErrNoDeviceAvailable", err)
	}

	boom := errors.New("no hardware")
	r.Register("broken", 100, func(Options) (Device, error) { return nil, boom }, nil)
	if _, err := r.Open(Options{}); !errors.Is(err, boom) {
		t.Errorf("Open() = %v, want last factory error", err)
	}

	var notFound *DeviceNotFoundError
	if _, err := r.OpenByName("missing", Options{}); !errors.As(err, &notFound) {
		t.Errorf("OpenByName(missing) = %v, want DeviceNotFoundError", err)
	} else if notFound.Name != "missing" {
		t.Errorf("DeviceNotFoundError.Name = %s, want missing", notFound.Name)
	}

	r.Register("off", 1, memoryFactory, func() bool { return false })
	var unavailable *DeviceUnavailableError
	if _, err := r.OpenByName("off", Options{}); !errors.As(err, &unavailable) {
		t.Errorf("OpenByName(off) = %v, want DeviceUnavailableError", err)
	}
}

// TestRegistryGetReturnsCopy verifies callers cannot mutate the registry.
func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	r.Register("x", 5, memoryFactory, nil)

	b, _ := r.Get("x")
	b.Priority = 999

	again, _ := r.Get("x")
	if again.Priority != 5 {
		t.Errorf("Priority = %d after mutating copy, want 5", again.Priority)
	}
}

// TestDefaultRegistryHasMemory verifies the built-in backend.
func TestDefaultRegistryHasMemory(t *testing.T) {
	if _, ok := Get("memory"); !ok {
		t.Fatal("memory backend not registered")
	}
	dev, err := OpenByName("memory", Options{})
	if err != nil {
		t.Fatalf("OpenByName(memory) error = %v", err)
	}
	defer dev.Close()

	info, _ := dev.Info()
	if info.Width != DefaultWidth || info.Height != DefaultHeight {
		t.Errorf("default memory size = %dx%d, want %dx%d",
			info.Width, info.Height, DefaultWidth, DefaultHeight)
	}
}
