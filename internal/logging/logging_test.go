package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"debug", LevelDebug, true},
		{" DEBUG ", LevelDebug, true},
		{"", LevelInfo, true},
		{"info", LevelInfo, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"loud", LevelInfo, false},
	}
	for _, tt := range tests {
		got, ok := LookupLevel(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("LookupLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ParseLevel(tt.in) != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, ParseLevel(tt.in), tt.want)
		}
	}
}

func TestLevelString(t *testing.T) {
	if LevelWarn.String() != "warn" {
		t.Errorf("LevelWarn.String() = %q", LevelWarn.String())
	}
}

func TestNewLoggerFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)
	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info record written at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=value") {
		t.Errorf("warn record missing: %q", out)
	}
	if strings.Contains(out, "\x1b[") {
		t.Errorf("color codes written to a non-terminal: %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "keycalc.log")
	logger, closer, err := OpenFile(path, LevelDebug)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	logger.Debug("started", "component", "app")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "started") || !strings.Contains(string(data), "component=app") {
		t.Errorf("log file = %q", data)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing")
}
