// Package logging sets up slog output for the tray app.
//
// A Windows GUI binary has no console, so every record also goes to a daily
// log file under the user cache directory.
package logging

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// MultiHandler fans each record out to several handlers.
type MultiHandler struct {
	handlers []slog.Handler
}

// NewMultiHandler creates a MultiHandler over handlers.
func NewMultiHandler(handlers ...slog.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Enabled reports whether any handler accepts level.
func (h *MultiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

// Handle passes the record to every enabled handler. A failing handler
// does not stop the others; their errors are joined.
//
//nolint:gocritic // slog.Handler requires a value record
func (h *MultiHandler) Handle(ctx context.Context, record slog.Record) error {
	var errs []error
	for _, handler := range h.handlers {
		if !handler.Enabled(ctx, record.Level) {
			continue
		}
		if err := handler.Handle(ctx, record.Clone()); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// WithAttrs implements slog.Handler.
func (h *MultiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &MultiHandler{handlers: handlers}
}

// WithGroup implements slog.Handler.
func (h *MultiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &MultiHandler{handlers: handlers}
}

// Setup builds a logger writing text records to stderr and to
// dir/<prefix>-YYYY-MM-DD.log. The returned closer closes the log file.
// If the file cannot be opened the logger still writes to stderr and the
// error is returned alongside it.
func Setup(stderr io.Writer, dir, prefix string, level slog.Level, now time.Time) (*slog.Logger, io.Closer, error) {
	opts := &slog.HandlerOptions{
		AddSource: true,
		Level:     level,
	}
	console := slog.NewTextHandler(stderr, opts)

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return slog.New(console), nopCloser{}, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, fmt.Sprintf("%s-%s.log", prefix, now.Format("2006-01-02")))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return slog.New(console), nopCloser{}, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(NewMultiHandler(console, slog.NewTextHandler(f, opts)))
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
