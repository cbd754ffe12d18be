package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/purvazinjarde/purvazinjardephotography/cmd/website/internal/configuration"
)

func setupLogger(config *configuration.Config, version string) {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(config.LogLevel),
	})

	logger := slog.New(handler).With(
		slog.String("app", appName),
		slog.String("version", version),
	)

	slog.SetDefault(logger)
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
