package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey string

const eventIDKey ctxKey = "eventID"

// InitLogger installs the default slog logger writing to stdout.
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w.
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	handler = handler.WithAttrs(cfg.BaseAttributes())
	slog.SetDefault(slog.New(handler))
}

// GenerateEventID creates a new UUID for correlating one host notification.
func GenerateEventID() string {
	return uuid.NewString()
}

// WithEventID returns a new context containing the event ID.
func WithEventID(ctx context.Context, eventID string) context.Context {
	return context.WithValue(ctx, eventIDKey, eventID)
}

// EventIDFromContext extracts the event ID from the context, if present.
func EventIDFromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(eventIDKey)
	if v == nil {
		return "", false
	}
	if id, ok := v.(string); ok {
		return id, true
	}
	return "", false
}

// GetEventID returns the event ID or an empty string.
func GetEventID(ctx context.Context) string {
	id, _ := EventIDFromContext(ctx)
	return id
}

// FromContext returns a logger that includes the event_id attribute when present.
func FromContext(ctx context.Context) *slog.Logger {
	if id, ok := EventIDFromContext(ctx); ok {
		return slog.Default().With(AttrKeyEventID, id)
	}
	return slog.Default()
}

func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }
func Info(msg string, args ...any)  { slog.Default().Info(msg, args...) }
func Warn(msg string, args ...any)  { slog.Default().Warn(msg, args...) }
func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
