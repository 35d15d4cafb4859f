package logging

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config describes where and how the service logger writes.
type Config struct {
	// Level is the minimum level written: trace, debug, info, warn or error.
	Level string

	// Format is json, console (alias pretty) or auto. Auto picks console when
	// writing to a terminal and json otherwise.
	Format string

	// Output is stderr, stdout, discard or a file path. Empty means stderr.
	Output string

	// TimeFormat applies to console output only (kitchen, rfc3339, unix or a
	// Go layout). Empty means kitchen.
	TimeFormat string

	// NoColor disables ANSI colors in console output.
	NoColor bool

	// Caller adds file:line to every entry.
	Caller bool
}

// parseLevel maps a level name to a zerolog level, defaulting to info.
func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return zerolog.InfoLevel
	case "warning":
		return zerolog.WarnLevel
	case "off", "none":
		return zerolog.Disabled
	}
	l, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.InfoLevel
	}
	return l
}

// parseTimeFormat maps a console time format name to a layout.
func parseTimeFormat(format string) string {
	switch strings.ToLower(format) {
	case "", "kitchen":
		return time.Kitchen
	case "rfc3339":
		return time.RFC3339
	case "rfc3339nano":
		return time.RFC3339Nano
	case "unix":
		return zerolog.TimeFormatUnix
	}
	if strings.Contains(format, "2006") || strings.Contains(format, "15:04") {
		return format
	}
	return time.Kitchen
}
