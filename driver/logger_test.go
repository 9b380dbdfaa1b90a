// SPDX-License-Identifier: Unlicense OR MIT

package driver

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	Logger().Debug("pipeline run", "draws", 3)
	if out := buf.String(); !strings.Contains(out, "pipeline run") || !strings.Contains(out, "draws=3") {
		t.Errorf("unexpected log output %q", out)
	}
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) did not restore the silent logger")
	}
}
