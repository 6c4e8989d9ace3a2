package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// New initializes a new slog logger and sets it as the default.
// It reads the LOG_FORMAT environment variable to determine the output format.
// Defaults to "text" for development, can be set to "json" for production.
// LOG_LEVEL picks the minimum level and LOG_FILE adds a rotated log file.
func New() *slog.Logger {
	var out io.Writer = os.Stdout
	if path := os.Getenv("LOG_FILE"); path != "" {
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	logger := slog.New(newHandler(out, os.Getenv("LOG_FORMAT"), parseLevel(os.Getenv("LOG_LEVEL"))))
	slog.SetDefault(logger)
	return logger
}

func newHandler(w io.Writer, format string, level slog.Level) slog.Handler {
	switch format {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{
			Level:     level,
			AddSource: true, // Adds source file and line number
		})
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
