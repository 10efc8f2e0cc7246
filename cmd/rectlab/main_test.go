package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("RECTLAB_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("RECTLAB_LOG_SINK", "none")
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), append([]string{"rectlab"}, args...))
	return out.String(), err
}

func TestInspect(t *testing.T) {
	p := filepath.Join(t.TempDir(), "rects.txt")
	if err := os.WriteFile(p, []byte("100 20 80 31\n0 0 10 10\n5 5 15 15\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, err := run(t, "inspect", p)
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{
		"#1 Rect([80,20],[100,31]) bounds=(80,100,20,31) area=220",
		"largest: #1 Rect([80,20],[100,31]) area=220",
		"intersections: 1",
		"#2 x #3: Rect([5,5],[10,10]) area=25",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspectErrors(t *testing.T) {
	if _, err := run(t, "inspect"); err == nil {
		t.Fatalf("expected missing argument error")
	}
	if _, err := run(t, "inspect", filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Fatalf("expected load error")
	}
}

func TestSemi(t *testing.T) {
	out, err := run(t, "semi", "--tare", "36000", "--cargo", "10000", "--load", "3500", "--unload", "2200")
	if err != nil {
		t.Fatalf("semi: %v", err)
	}
	for _, want := range []string{"cargo: 11300", "gross: 47300", "remaining capacity: 32700", "legal: true"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBadConfigFails(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("logging:\n  sink: carrier-pigeon\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(context.Background(), []string{"rectlab", "--config", p, "semi", "--tare", "1"})
	if err == nil || !strings.Contains(err.Error(), "unknown sink") {
		t.Fatalf("err = %v", err)
	}
}
