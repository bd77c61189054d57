package logging

import (
	"context"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"  Info ", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewStructuredLogger(t *testing.T) {
	logger := NewStructuredLogger("podbox", "test", "debug")
	if logger == nil {
		t.Fatal("expected logger, got nil")
	}
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug level logger should enable debug records")
	}

	logger = NewStructuredLogger("podbox", "test", "error")
	if logger.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("error level logger should not enable info records")
	}
}

func TestNewLogLogger(t *testing.T) {
	if NewLogLogger(slog.LevelInfo, false) == nil {
		t.Fatal("expected logger, got nil")
	}
}
