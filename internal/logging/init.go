// Package logging installs the process-wide slog logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

type InitOptions struct {
	App     string
	Version string
}

// Init builds a logger from cfg, installs it as the slog default and returns
// a function that closes the underlying sink.
func Init(cfg Config, opts InitOptions) (func() error, error) {
	if opts.App == "" {
		opts.App = "lineclip"
	}

	normalized, err := cfg.WithEnv().Normalize()
	if err != nil {
		return nil, err
	}

	logger, closeFn, err := New(normalized, opts)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logger)
	return closeFn, nil
}

// New builds a logger without installing it
func New(cfg Config, opts InitOptions) (*slog.Logger, func() error, error) {
	writer, closeFn, err := resolveWriter(cfg)
	if err != nil {
		return nil, nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	var handler slog.Handler
	switch cfg.Format {
	case FormatJSON:
		handler = slog.NewJSONHandler(writer, handlerOpts)
	default:
		handler = slog.NewTextHandler(writer, handlerOpts)
	}

	logger := slog.New(handler).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
	)
	return logger, closeFn, nil
}

func parseLevel(value string) slog.Leveler {
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

func resolveWriter(cfg Config) (io.Writer, func() error, error) {
	switch cfg.Sink {
	case SinkNone:
		return io.Discard, func() error { return nil }, nil
	case SinkFile:
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		lj := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}
		return lj, lj.Close, nil
	default:
		return os.Stderr, func() error { return nil }, nil
	}
}
