package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"
)

func TestLogger_Log(t *testing.T) {
	tests := []struct {
		name    string
		emit    func(l *Logger)
		want    bool // should log
		level   string
		message string
	}{
		{
			name:    "info message",
			emit:    func(l *Logger) { l.Info("test message", Fields{"key": "value"}) },
			want:    true,
			level:   "info",
			message: "test message",
		},
		{
			name: "debug below threshold",
			emit: func(l *Logger) { l.Debug("debug message", nil) },
			want: false, // won't log (below INFO)
		},
		{
			name:    "error with err",
			emit:    func(l *Logger) { l.Error("error occurred", nil, errors.New("test error")) },
			want:    true,
			level:   "error",
			message: "error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(LevelInfo, &buf)

			tt.emit(logger)

			logged := buf.Len() > 0
			if logged != tt.want {
				t.Fatalf("logged = %v, want %v", logged, tt.want)
			}
			if !tt.want {
				return
			}

			var entry map[string]interface{}
			if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if entry["level"] != tt.level {
				t.Errorf("level = %v, want %v", entry["level"], tt.level)
			}
			if entry["message"] != tt.message {
				t.Errorf("message = %v, want %v", entry["message"], tt.message)
			}
		})
	}
}

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelDebug, &buf)

	logger.Error("fetch failed", Fields{"url": "https://example.com", "attempt": 3}, errors.New("timeout"))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}

	if entry["url"] != "https://example.com" {
		t.Errorf("url = %v, want https://example.com", entry["url"])
	}
	if entry["attempt"] != float64(3) {
		t.Errorf("attempt = %v, want 3", entry["attempt"])
	}
	if entry["error"] != "timeout" {
		t.Errorf("error = %v, want timeout", entry["error"])
	}
	if _, ok := entry["time"]; !ok {
		t.Error("entry missing time field")
	}
}

func TestLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		emit      func(l *Logger)
		shouldLog bool
	}{
		{"debug logs at debug", LevelDebug, func(l *Logger) { l.Debug("test", nil) }, true},
		{"info logs at debug", LevelDebug, func(l *Logger) { l.Info("test", nil) }, true},
		{"debug doesn't log at info", LevelInfo, func(l *Logger) { l.Debug("test", nil) }, false},
		{"info doesn't log at warn", LevelWarn, func(l *Logger) { l.Info("test", nil) }, false},
		{"error always logs", LevelError, func(l *Logger) { l.Error("test", nil, nil) }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(tt.minLevel, &buf)

			tt.emit(logger)

			logged := buf.Len() > 0
			if logged != tt.shouldLog {
				t.Errorf("logged = %v, want %v", logged, tt.shouldLog)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{" warn ", LevelWarn},
		{"ERROR", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New(LevelDebug, &buf))
	defer SetDefault(New(LevelInfo, os.Stdout))

	// Package-level functions route through the default logger.
	Debug("test debug", nil)
	Info("test info", Fields{"key": "value"})
	Warn("test warning", nil)
	Error("test error", Fields{"component": "test"}, errors.New("test"))

	if buf.Len() == 0 {
		t.Error("default logger produced no output")
	}
}
