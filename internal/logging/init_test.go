package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNormalizeRejectsUnknownValues(t *testing.T) {
	bad := "xml"
	if _, err := (Config{Format: &bad}).Normalize(); err == nil {
		t.Fatalf("expected format error")
	}
	if _, err := (Config{Sink: &bad}).Normalize(); err == nil {
		t.Fatalf("expected sink error")
	}
	file := string(SinkFile)
	if _, err := (Config{Sink: &file}).Normalize(); err == nil {
		t.Fatalf("expected missing file error")
	}
}

func TestNormalizeTrimsAndClamps(t *testing.T) {
	level := "  DEBUG "
	empty := "   "
	neg := -4
	cfg, err := (Config{Level: &level, File: &empty, MaxSizeMB: &neg}).Normalize()
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if cfg.Level == nil || *cfg.Level != "debug" {
		t.Fatalf("level = %v", cfg.Level)
	}
	if cfg.File != nil {
		t.Fatalf("blank file should be dropped")
	}
	if *cfg.MaxSizeMB != 0 {
		t.Fatalf("max size = %d", *cfg.MaxSizeMB)
	}
}

func TestWithEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvLogSink, "stderr")
	t.Setenv(EnvLogMaxBackups, "nope")
	cfg := DefaultConfig().WithEnv()
	if *cfg.Level != "warn" || *cfg.Sink != "stderr" {
		t.Fatalf("env not applied: level=%s sink=%s", *cfg.Level, *cfg.Sink)
	}
	if *cfg.MaxBackups != 3 {
		t.Fatalf("invalid int env should be ignored, got %d", *cfg.MaxBackups)
	}
}

func TestInitFileSink(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "rectlab.log")
	closeFn, err := Init(Config{File: &path}, InitOptions{Version: "test"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	slog.Info("loaded", "rects", 3)
	if err := closeFn(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "msg=loaded") || !strings.Contains(out, "rects=3") || !strings.Contains(out, "app=rectlab") {
		t.Fatalf("unexpected log output: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"other":   slog.LevelInfo,
	} {
		v := in
		if got := parseLevel(&v).Level(); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if parseLevel(nil).Level() != slog.LevelInfo {
		t.Fatalf("nil level should default to info")
	}
}
