package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scenario != DefaultScenario {
		t.Errorf("expected scenario %s, got %s", DefaultScenario, cfg.Scenario)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected log level %s, got %s", DefaultLogLevel, cfg.LogLevel)
	}
	if !cfg.Plot {
		t.Error("plot should default to true")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	data := []byte("scenario: parking\nlog_level: debug\nno_color: true\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Scenario != "parking" {
		t.Errorf("expected scenario parking, got %s", cfg.Scenario)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if !cfg.NoColor {
		t.Error("expected no_color true")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("scenario: parking\n"), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("CARSIM_SCENARIO", "commute")
	t.Setenv("CARSIM_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Scenario != "commute" {
		t.Errorf("env should override file, got %s", cfg.Scenario)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("env should override default, got %s", cfg.LogLevel)
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", 0, true},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.LogLevel = tt.in
		got, err := cfg.Level()
		if tt.wantErr {
			if err == nil {
				t.Errorf("level %q: expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("level %q: unexpected error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("level %q: expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestLoadRejectsBadLevel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	if err := os.WriteFile(path, []byte("log_level: loud\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error for unknown log level")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Scenario = "commute"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Scenario != "commute" {
		t.Errorf("expected scenario commute, got %s", loaded.Scenario)
	}
}
