package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/dialastocktaker/stocktaker-tui/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"chatty", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.name); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestNewDisabledWritesNothing(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	logger, closer, err := New(config.DefaultConfig())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer closer.Close()
	logger.Info("dropped")

	if _, err := os.Stat(filepath.Join(home, ".dialastocktaker", "logs")); !os.IsNotExist(err) {
		t.Errorf("expected no log directory when logging is disabled, stat err = %v", err)
	}
}

func TestNewWritesJSONToLogDir(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.LogDir = dir

	logger, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Info("screen changed", "to", "login")
	logger.Debug("below level")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, "stocktaker-tui-*.log"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one log file, got %v (err %v)", matches, err)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	var record map[string]interface{}
	if err := json.Unmarshal(firstLine(data), &record); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, data)
	}
	if record["msg"] != "screen changed" || record["to"] != "login" {
		t.Errorf("unexpected record: %v", record)
	}
	if n := countLines(data); n != 1 {
		t.Errorf("expected debug record to be filtered at info level, got %d lines", n)
	}
}

func TestNewDebugDefaultsToGlobalDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg := config.DefaultConfig()
	cfg.Debug = true

	logger, closer, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	logger.Debug("kept at debug")
	closer.Close()

	matches, _ := filepath.Glob(filepath.Join(home, ".dialastocktaker", "logs", "*.log"))
	if len(matches) != 1 {
		t.Fatalf("expected a log file under the global dir, got %v", matches)
	}
}

func firstLine(data []byte) []byte {
	for i, b := range data {
		if b == '\n' {
			return data[:i]
		}
	}
	return data
}

func countLines(data []byte) int {
	n := 0
	for _, b := range data {
		if b == '\n' {
			n++
		}
	}
	return n
}
