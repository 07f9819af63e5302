// Copyright 2026 The fox Authors
// SPDX-License-Identifier: BSD-3-Clause

package fox

import (
	"log/slog"

	"github.com/foxos/fox/internal/logging"
)

// SetLogger configures the logger for fox and all its sub-packages.
// By default, fox produces no log output. Call SetLogger to enable logging.
//
// SetLogger is safe for concurrent use: it stores the new logger atomically.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by fox:
//   - [slog.LevelDebug]: buffer allocation and release, frame copies
//   - [slog.LevelInfo]: device selection
//   - [slog.LevelWarn]: backend fallbacks, device close errors
//
// Example:
//
//	fox.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	logging.Set(l)
}

// Logger returns the current logger used by fox.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return logging.Logger()
}
