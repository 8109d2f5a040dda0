package testutil

import (
	"io"
	"log/slog"

	"github.com/dtroode/auth-service/internal/logger"
)

// MakeNoopLogger returns a logger that discards all output.
func MakeNoopLogger() *logger.Logger {
	return &logger.Logger{Logger: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))}
}
