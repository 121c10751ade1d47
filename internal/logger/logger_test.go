package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("log directory was not created: %s", dir)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}

	Debug("hidden")
	Warn("day saved with conflicts", "date", "2026-10-16", "count", 1)

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "day saved with conflicts") {
		t.Errorf("warning missing from log file: %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Error("debug message logged outside debug mode")
	}
}

func TestInit_DebugMode(t *testing.T) {
	dir := t.TempDir()

	if err := Init(Config{Debug: true, Dir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { Logger = nil })

	Debug("rebuilding day", "date", "2026-10-16")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "rebuilding day") {
		t.Errorf("debug message missing: %q", data)
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	Logger = nil

	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}
