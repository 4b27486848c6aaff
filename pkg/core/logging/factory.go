// ============================================================================
// mcli - Minimal interactive command shell
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating structured session loggers
// License:     MIT
// ============================================================================

package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json" or "text" (default: text)
	Format string

	// Output destination. Nil discards all entries so nothing interleaves
	// with the interactive prompt.
	Output io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "text",
	}
}

// NewLogger creates a logger tagged with the service name and a fresh
// session id.
func NewLogger(cfg LoggerConfig) *logrus.Entry {
	logger := logrus.New()
	logger.SetLevel(parseLevel(cfg.Level))

	if cfg.Output != nil {
		logger.SetOutput(cfg.Output)
	} else {
		logger.SetOutput(io.Discard)
	}

	if cfg.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableColors: true,
			FullTimestamp: true,
		})
	}

	return logger.WithFields(logrus.Fields{
		"service": cfg.ServiceName,
		"session": uuid.NewString(),
	})
}

// NewNopLogger creates a logger that discards everything
func NewNopLogger() *logrus.Entry {
	return NewLogger(LoggerConfig{Level: "error"})
}

// OpenLogFile opens path for appending log entries, creating parent
// directories as needed.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return f, nil
}

// WithLevel returns a copy of entry logging at level. The copy shares the
// output, formatter and fields of entry, the session id included.
func WithLevel(entry *logrus.Entry, level Level) *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(entry.Logger.Out)
	logger.SetFormatter(entry.Logger.Formatter)
	logger.SetLevel(level.toLogrus())
	return logger.WithFields(entry.Data)
}
