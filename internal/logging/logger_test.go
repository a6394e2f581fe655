package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func decodeLines(t *testing.T, data string) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("invalid JSON log line %q: %v", line, err)
		}
		out = append(out, entry)
	}
	return out
}

func TestNewLogger(t *testing.T) {
	t.Run("creates log file in directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "logs")

		logger, err := NewLogger(dir, LevelDebug, DefaultRotationConfig())
		if err != nil {
			t.Fatalf("NewLogger failed: %v", err)
		}
		defer logger.Close()

		if _, err := os.Stat(filepath.Join(dir, FileName)); err != nil {
			t.Errorf("log file was not created: %v", err)
		}
	})

	t.Run("requires a directory", func(t *testing.T) {
		if _, err := NewLogger("", LevelInfo, DefaultRotationConfig()); err == nil {
			t.Error("NewLogger with empty dir should fail")
		}
	})
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level string
		want  int
	}{
		{LevelDebug, 4},
		{LevelInfo, 3},
		{"warn", 2},
		{LevelError, 1},
		{"bogus", 3},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriterLogger(&buf, tt.level)

			logger.Debug("debug message")
			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			if got := len(decodeLines(t, buf.String())); got != tt.want {
				t.Errorf("level %s wrote %d lines, want %d", tt.level, got, tt.want)
			}
		})
	}
}

func TestChildLoggers(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, LevelInfo)

	logger.WithMatch("m-1").WithRound(4).With("side", "A", 42, "skipped").Info("round completed", "penalty", 10)

	entries := decodeLines(t, buf.String())
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	e := entries[0]
	if e["match_id"] != "m-1" {
		t.Errorf("match_id = %v, want m-1", e["match_id"])
	}
	if e["round"] != float64(4) {
		t.Errorf("round = %v, want 4", e["round"])
	}
	if e["side"] != "A" {
		t.Errorf("side = %v, want A", e["side"])
	}
	if e["penalty"] != float64(10) {
		t.Errorf("penalty = %v, want 10", e["penalty"])
	}
	if _, ok := e["42"]; ok {
		t.Error("non-string keys should be skipped")
	}
}

func TestChildDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewWriterLogger(&buf, LevelInfo)
	_ = parent.WithMatch("child-only")

	parent.Info("plain")

	if strings.Contains(buf.String(), "child-only") {
		t.Error("parent logger picked up child attributes")
	}
}

func TestCloseAndNop(t *testing.T) {
	dir := t.TempDir()
	logger, err := NewLogger(dir, LevelInfo, DefaultRotationConfig())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}
	logger.Info("before close")
	if err := logger.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	nop := NopLogger()
	nop.Error("dropped")
	if err := nop.Close(); err != nil {
		t.Errorf("NopLogger Close() error = %v", err)
	}
}
