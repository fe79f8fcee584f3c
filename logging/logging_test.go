/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf)
	logger.SetLevel("warn")

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warnf("warn %d", 1)
	logger.Errorf("error %s", "two")

	out := buf.String()
	if strings.Contains(out, "debug message") || strings.Contains(out, "info message") {
		t.Errorf("messages below WARN should be filtered, got:\n%s", out)
	}
	if !strings.Contains(out, "[WARN]") || !strings.Contains(out, "warn 1") {
		t.Errorf("expected WARN line, got:\n%s", out)
	}
	if !strings.Contains(out, "[ERROR]") || !strings.Contains(out, "error two") {
		t.Errorf("expected ERROR line, got:\n%s", out)
	}
}

func TestNewWritesToFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "yuque-mcp.log")

	logger, err := New(logPath)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("failed to read log: %v", err)
	}
	if !strings.Contains(string(data), "[INFO]") || !strings.Contains(string(data), "hello file") {
		t.Errorf("unexpected log content: %s", data)
	}
}

func TestNilLoggerIsNoop(t *testing.T) {
	var logger *Logger
	logger.Infof("ignored %d", 1)
	logger.SetLevel("debug")
	if err := logger.Sync(); err != nil {
		t.Errorf("Sync() on nil logger = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("Close() on nil logger = %v", err)
	}
}

func TestValidLevel(t *testing.T) {
	for _, level := range []string{"debug", "INFO", "Warn", "error", "fatal"} {
		if !ValidLevel(level) {
			t.Errorf("ValidLevel(%q) = false, want true", level)
		}
	}
	if ValidLevel("verbose") {
		t.Error("ValidLevel(verbose) = true, want false")
	}
}
