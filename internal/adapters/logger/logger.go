// Package logger implements a logging adapter using log/slog.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/rcstring/internal/core/ports"
)

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
	mu     sync.RWMutex
}

// New creates a new Logger writing text records to stderr at info level.
func New() ports.Logger {
	level := new(slog.LevelVar)
	return &Logger{
		logger: newSlog(os.Stderr, level),
		level:  level,
	}
}

func newSlog(w io.Writer, level *slog.LevelVar) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// SetOutput updates the logger's output destination.
// The current level carries over to the new handler.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = newSlog(w, l.level)
}

// SetLevel changes the minimum level that is written.
func (l *Logger) SetLevel(level slog.Level) {
	l.level.Set(level)
}

// Debug logs a debug message with optional key/value pairs.
func (l *Logger) Debug(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg, args...)
}

// Info logs an informational message with optional key/value pairs.
func (l *Logger) Info(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg, args...)
}

// Warn logs a warning message with optional key/value pairs.
func (l *Logger) Warn(msg string, args ...any) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg, args...)
}

// Error logs an error message.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Error("operation failed", "error", err)
}
