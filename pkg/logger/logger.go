// Package logger builds the process-wide slog logger and the HTTP access logger.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/fx"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Module = fx.Module("logger",
	fx.Provide(
		NewLogger,
		NewHTTPLogger,
	),
)

// NewLogger creates the application logger.
//
// LOG_LEVEL selects the level (debug, info, warn/warning, error; case-insensitive,
// anything else falls back to info). GO_ENV=production switches to JSON output.
// When LOG_FILE is set, records are also written to a rotating file.
func NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(os.Getenv("LOG_LEVEL"))}

	var out io.Writer = os.Stdout
	if path := strings.TrimSpace(os.Getenv("LOG_FILE")); path != "" {
		out = io.MultiWriter(os.Stdout, rotatingFile(path))
	}

	var handler slog.Handler
	if os.Getenv("GO_ENV") == "production" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	return slog.New(handler)
}

func parseLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// rotatingFile returns a lumberjack writer sized from LOG_MAX_SIZE_MB,
// LOG_MAX_BACKUPS and LOG_MAX_AGE_DAYS.
func rotatingFile(path string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("LOG_MAX_SIZE_MB", 50),
		MaxBackups: envInt("LOG_MAX_BACKUPS", 5),
		MaxAge:     envInt("LOG_MAX_AGE_DAYS", 14),
		Compress:   true,
	}
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

// Scope returns the attribute used to tag records with the emitting component.
func Scope(name string) slog.Attr {
	return slog.String("scope", name)
}

// Error returns the attribute used for errors.
func Error(err error) slog.Attr {
	return slog.Any("error", err)
}

// HTTPLogger writes one access line per request, in a combined-log-like format.
type HTTPLogger struct {
	out io.Writer
}

// NewHTTPLogger writes to HTTP_LOG_FILE when set and discards otherwise.
func NewHTTPLogger() *HTTPLogger {
	path := strings.TrimSpace(os.Getenv("HTTP_LOG_FILE"))
	if path == "" {
		return &HTTPLogger{out: io.Discard}
	}
	return &HTTPLogger{out: rotatingFile(path)}
}

// NewHTTPLoggerTo writes access lines to w.
func NewHTTPLoggerTo(w io.Writer) *HTTPLogger {
	return &HTTPLogger{out: w}
}

// LogRequest appends an access line.
func (l *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if l == nil || l.out == nil {
		return
	}
	_, _ = fmt.Fprintf(l.out, "%s [%s] %q %d %s %q %s\n",
		ip,
		time.Now().UTC().Format(time.RFC3339),
		method+" "+uri,
		status,
		latency.Round(time.Microsecond),
		userAgent,
		requestID,
	)
}
