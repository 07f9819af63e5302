// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package psf

import (
	"errors"
	"fmt"
)

// Sentinel errors for psf package.
var (
	// ErrInvalidMagic is returned when data starts with neither PSF1 nor PSF2 magic.
	ErrInvalidMagic = errors.New("psf: invalid magic")

	// ErrTruncated is returned when data ends before the header, glyphs or
	// unicode table are complete.
	ErrTruncated = errors.New("psf: truncated font data")
)

// HeaderError is returned when a header field holds an unusable value.
type HeaderError struct {
	Field string
	Value uint32
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("psf: invalid header field %s=%d", e.Field, e.Value)
}
