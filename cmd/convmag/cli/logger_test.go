// Copyright 2026 The Convmag Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"context"
	"log/slog"
	"testing"
)

func TestNewCommandLoggerLevel(t *testing.T) {
	ctx := context.Background()

	info := NewCommandLogger(slog.LevelInfo)
	if info.Enabled(ctx, slog.LevelDebug) {
		t.Error("info logger should not emit debug records")
	}
	if !info.Enabled(ctx, slog.LevelInfo) {
		t.Error("info logger should emit info records")
	}

	debug := NewCommandLogger(slog.LevelDebug)
	if !debug.Enabled(ctx, slog.LevelDebug) {
		t.Error("debug logger should emit debug records")
	}
}
