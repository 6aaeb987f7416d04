package devif

import (
	"log/slog"
	"os"
)

// SetLoggerHandler sets a custom logger for the devif library
func SetLoggerHandler(h slog.Handler) {
	if h == nil {
		return // Keep default
	}
	slog.SetDefault(slog.New(h))
}

func SetLoggerLevel(level slog.Level) {
	slog.SetLogLoggerLevel(level)
}

func SetDebugLevel(addSource bool) {
	// Create text handler that writes to stderr
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: addSource,
	})

	// Set as default logger
	slog.SetDefault(slog.New(h))
}
