package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log is the process-wide logger. Init replaces it; the zero value writes JSON to stdout.
var Log = &Logger{Logger: zerolog.New(os.Stdout).With().Timestamp().Logger()}

// Logger wraps zerolog.Logger with application-specific methods
type Logger struct {
	zerolog.Logger
}

// Init configures the global logger. format is "json" (default) or "console".
func Init(level, format string) *Logger {
	Log = New(os.Stdout, level, format)
	return Log
}

// New creates a Logger writing to w.
func New(w io.Writer, level, format string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	if format == "text" || format == "console" {
		// Human-readable output for development
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return &Logger{Logger: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

// WithRequestID returns a new logger with the request ID attached
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With().Str("request_id", requestID).Logger()}
}

// WithComponent returns a new logger with the component name attached
func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{Logger: l.With().Str("component", component).Logger()}
}

// HTTPRequest logs an HTTP request
func (l *Logger) HTTPRequest(method, path string, statusCode int, duration time.Duration, clientIP string) {
	ev := l.Info()
	if statusCode >= 500 {
		ev = l.Error()
	} else if statusCode >= 400 {
		ev = l.Warn()
	}
	ev.Str("method", method).
		Str("path", path).
		Int("status", statusCode).
		Dur("duration", duration).
		Str("client_ip", clientIP).
		Msg("HTTP request")
}
