package app

import (
	"log/slog"
	"os"
	"strings"

	"github.com/propertypasalo/backend/internal/config"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// NewLogger builds the process-wide slog.Logger from LogConfig and
// installs it via slog.SetDefault. Format "json" is the production
// default; "text" adds source locations for local development. Output
// always goes to stderr.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	textMode := strings.EqualFold(cfg.Format, "text")

	level, ok := logLevels[strings.ToLower(strings.TrimSpace(cfg.Level))]
	if !ok {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level, AddSource: textMode}

	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, opts)
	if textMode {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
