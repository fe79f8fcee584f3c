/******************************************************************************
 * Copyright (c) 2025-2026 Tenebris Technologies Inc.                         *
 * Please see the LICENSE file for details                                    *
 ******************************************************************************/

// Package logging provides a small leveled logger. Output goes to a file or
// to stderr; stdout is reserved for the stdio protocol stream.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/PivotLLM/yuque-mcp/global"
)

var levels = map[string]int{
	global.LogLevelDebug: 0,
	global.LogLevelInfo:  1,
	global.LogLevelWarn:  2,
	global.LogLevelError: 3,
	global.LogLevelFatal: 4,
}

// Logger provides structured logging with the required format.
// A nil *Logger discards everything.
type Logger struct {
	logger  *log.Logger
	level   string
	logFile *os.File
}

// New creates a new logger instance that writes to the specified file.
// An empty path logs to stderr.
func New(logPath string) (*Logger, error) {
	if logPath == "" {
		return NewWithWriter(os.Stderr), nil
	}

	logPath = global.ExpandHomePath(logPath)

	// Ensure log directory exists
	dir := filepath.Dir(logPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	// Open log file (append mode)
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", logPath, err)
	}

	return &Logger{
		logger:  log.New(logFile, "", 0), // No default prefix/flags since we format ourselves
		level:   global.LogLevelInfo,
		logFile: logFile,
	}, nil
}

// NewWithWriter creates a logger that writes to w.
func NewWithWriter(w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, "", 0),
		level:  global.LogLevelInfo,
	}
}

// ValidLevel reports whether level is a known level name (case-insensitive).
func ValidLevel(level string) bool {
	_, ok := levels[strings.ToUpper(level)]
	return ok
}

// Sync flushes any buffered log data to disk
func (l *Logger) Sync() error {
	if l != nil && l.logFile != nil {
		return l.logFile.Sync()
	}
	return nil
}

// Close closes the log file
func (l *Logger) Close() error {
	if l != nil && l.logFile != nil {
		_ = l.logFile.Sync()
		return l.logFile.Close()
	}
	return nil
}

// SetLevel sets the minimum log level
func (l *Logger) SetLevel(level string) {
	if l == nil || level == "" {
		return
	}
	l.level = strings.ToUpper(level)
}

// shouldLog determines if a message should be logged based on the current level
func (l *Logger) shouldLog(level string) bool {
	currentLevel, exists := levels[l.level]
	if !exists {
		currentLevel = levels[global.LogLevelInfo]
	}

	messageLevel, exists := levels[level]
	if !exists {
		messageLevel = levels[global.LogLevelInfo]
	}

	return messageLevel >= currentLevel
}

// formatMessage formats a log message with the required format
func (l *Logger) formatMessage(level, message string) string {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	pid := os.Getpid()
	return fmt.Sprintf("%s [%s] [%d] %s", timestamp, level, pid, message)
}

// log performs the actual logging
func (l *Logger) log(level, message string) {
	if l == nil {
		return
	}
	if l.shouldLog(level) {
		l.logger.Println(l.formatMessage(level, message))
	}
}

// Debug logs a debug message
func (l *Logger) Debug(message string) {
	l.log(global.LogLevelDebug, message)
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.Debug(fmt.Sprintf(format, args...))
}

// Info logs an info message
func (l *Logger) Info(message string) {
	l.log(global.LogLevelInfo, message)
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message
func (l *Logger) Warn(message string) {
	l.log(global.LogLevelWarn, message)
}

// Warnf logs a formatted warning message
func (l *Logger) Warnf(format string, args ...interface{}) {
	l.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message
func (l *Logger) Error(message string) {
	l.log(global.LogLevelError, message)
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

// Fatal logs a fatal message and exits
func (l *Logger) Fatal(message string) {
	l.log(global.LogLevelFatal, message)
	_ = l.Close()
	os.Exit(1)
}

// Fatalf logs a formatted fatal message and exits
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.Fatal(fmt.Sprintf(format, args...))
}
