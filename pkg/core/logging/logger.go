// ============================================================================
// mcli - Minimal interactive command shell
// ============================================================================
//
// Package:     logging
// Description: Level names and parsing for the logger factory
// License:     MIT
// ============================================================================

package logging

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// Level names a logrus severity as accepted in configuration
type Level string

const (
	LevelTrace Level = "trace"
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// parseLevel converts a string level to a logrus level, defaulting to info
func parseLevel(level string) logrus.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

func (l Level) toLogrus() logrus.Level {
	return parseLevel(string(l))
}
