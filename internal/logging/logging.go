package logging

import (
	"io"
	"log/slog"
	"strings"
)

// Setup creates a *slog.Logger writing to w, installs it as the default,
// and returns it. Accepted levels: "debug", "info", "warn", "error"
// (case-insensitive); anything else means warn, keeping the CLI quiet
// unless asked otherwise.
func Setup(level string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelWarn
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}
