package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		if parseLevel(lvl) == nil {
			t.Errorf("parseLevel(%q) = nil", lvl)
		}
	}
	if parseLevel("verbose") != nil {
		t.Error("parseLevel(verbose) should be nil")
	}
}

func TestNewWithOptionsWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "market.log")

	l, err := NewWithOptions(Options{Level: "debug", OutputPath: path})
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	l.With(String("session_id", "abc")).Info("favorite toggled", Int("listing_id", 3), Bool("favorite", true))
	_ = l.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	out := string(data)
	for _, want := range []string{"favorite toggled", "session_id", "abc", "listing_id"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()
	l.Info("discarded")
	l.With(String("k", "v")).Debugf("discarded %d", 1)
}
