// Package cli consolidates the bootstrap steps shared by the
// entrypoint: .env loading, logging setup and config validation.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"finboard/internal/config"
	applog "finboard/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as the file is optional.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it, exiting
// the process on failure. It runs before the logger exists, so errors
// go to stderr.
func LoadAndValidateConfig() *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return cfg
}

// SetupLogger initializes structured logging per the config. The
// terminal UI owns stdout, so records go to the configured log file, or
// nowhere when no file is set. The returned closer flushes the file on
// shutdown.
func SetupLogger(cfg *config.Config) (*applog.Logger, func() error) {
	var (
		w      io.Writer = io.Discard
		closer           = func() error { return nil }
	)
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "open log file %s: %v; logging disabled\n", cfg.LogFile, err)
		} else {
			w = f
			closer = f.Close
		}
	}

	level := parseLevel(cfg.LogLevel)
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
		Handler:   slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
	})
	applog.SetDefault(logger)
	return logger, closer
}

func parseLevel(s string) slog.Level {
	switch s {
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
