package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewWritesTo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelInfo, true)

	log.Info("hello", "k", "v")

	out := buf.String()
	if !strings.Contains(out, "hello") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "k=v") {
		t.Errorf("expected attribute in output, got %q", out)
	}
}

func TestNewLevelFilters(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn, true)

	log.Info("dropped")
	log.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("info line should be filtered, got %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Errorf("warn line should pass, got %q", out)
	}
}

func TestComponentAddsPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := Component(New(&buf, slog.LevelInfo, true), CompEngine)

	log.Info("started")

	if !strings.Contains(buf.String(), CompEngine) {
		t.Errorf("expected component name in output, got %q", buf.String())
	}
}

func TestRenderUnknownComponent(t *testing.T) {
	out := Render("dashboard")
	if !strings.Contains(out, "dashboard") {
		t.Errorf("render should keep the name, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must report disabled at every level.
	log := Discard()
	log.Info("into the void")
	if log.Enabled(context.Background(), slog.LevelError) {
		t.Error("discard logger should be disabled")
	}
}
