package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/studydeck-backend/internal/config"
)

// NewLogger creates the process logger on os.Stderr and installs it as the
// slog default.
//
// Format "json" is for production; "text" adds source locations for development.
// Level is one of debug, info, warn, error (case-insensitive) and defaults to info.
// Every record carries app and version attributes.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   strings.EqualFold(cfg.Format, "text"),
		ReplaceAttr: durationAsMillis,
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With(
		slog.String("app", "studydeck"),
		slog.String("version", Version),
	)
}

// durationAsMillis renders durations as fractional milliseconds so log
// pipelines can aggregate request latencies numerically.
func durationAsMillis(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() == slog.KindDuration {
		ms := float64(a.Value.Duration()) / float64(time.Millisecond)
		return slog.Float64(a.Key+"_ms", ms)
	}
	return a
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
