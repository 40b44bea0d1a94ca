package ports

import (
	"io"
	"log/slog"
)

// Logger defines the interface for logging.
//
//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(err error)
	// SetLevel changes the minimum level that is written.
	SetLevel(level slog.Level)
	// SetOutput redirects log output.
	SetOutput(w io.Writer)
}
