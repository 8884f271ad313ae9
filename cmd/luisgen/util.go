package main

import (
	"io"
	"log/slog"

	"luisgen/internal/config"
)

// stdIOPath stands for standard input in place of an export path.
const stdIOPath = "-"

// configLogger installs a JSON logger at the given level as the default.
// Unknown levels fall back to info.
func configLogger(level string, writer io.Writer) *slog.Logger {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: lvl,
	}))
	slog.SetDefault(logger)

	return logger
}
