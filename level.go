package logfox

import (
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slog"
)

// Level is the severity of a message.
// Lower values are more important; a [State] passes a message when its level is at most the configured minimum.
type Level int8

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelDebug
	LevelTrace
)

var levelTags = [...]string{
	LevelError: "ERRR",
	LevelWarn:  "WARN",
	LevelInfo:  "INFO",
	LevelDebug: "DBUG",
	LevelTrace: "TRCE",
}

// String returns the fixed-width, four character tag used in stdout lines.
func (l Level) String() string {
	if l < LevelError || l > LevelTrace {
		return "!BAD"
	}
	return levelTags[l]
}

// ParseLevel reads a level tag ("DBUG") or name ("debug", "warning").
// Matching is case-insensitive.
func ParseLevel(s string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "ERRR", "ERROR":
		return LevelError, nil
	case "WARN", "WARNING":
		return LevelWarn, nil
	case "INFO":
		return LevelInfo, nil
	case "DBUG", "DEBUG":
		return LevelDebug, nil
	case "TRCE", "TRACE":
		return LevelTrace, nil
	}
	return LevelTrace, errors.Errorf("logfox: unknown level %q", s)
}

// SLOG LEVELS

// SlogLevel maps a Level onto the [slog.Level] scale.
// Trace sits one band below [slog.LevelDebug].
func (l Level) SlogLevel() slog.Level {
	switch l {
	case LevelError:
		return slog.LevelError
	case LevelWarn:
		return slog.LevelWarn
	case LevelInfo:
		return slog.LevelInfo
	case LevelDebug:
		return slog.LevelDebug
	}
	return slog.LevelDebug - 4
}

// FromSlog maps a [slog.Level] to a Level, rounding down to the nearest band.
func FromSlog(level slog.Level) Level {
	switch {
	case level >= slog.LevelError:
		return LevelError
	case level >= slog.LevelWarn:
		return LevelWarn
	case level >= slog.LevelInfo:
		return LevelInfo
	case level >= slog.LevelDebug:
		return LevelDebug
	}
	return LevelTrace
}
