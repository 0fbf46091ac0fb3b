// Package logging provides the structured logger used by the HTTP server.
package logging

import (
	"io"
	"log/slog"
)

// New creates a JSON structured logger.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Error logs an error with structured context.
func Error(logger *slog.Logger, message string, err error, attrs ...slog.Attr) {
	if logger == nil {
		return
	}
	args := make([]any, 0, len(attrs)+1)
	args = append(args, slog.String("error", err.Error()))
	for _, attr := range attrs {
		args = append(args, attr)
	}
	logger.Error(message, args...)
}

// HTTPRequest logs one served request.
func HTTPRequest(logger *slog.Logger, method, path string, status int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("http_request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", status),
		slog.Float64("duration_ms", durationMs),
	)
}
