package tell

import (
	"os"
	"strings"
)

// Level controls which leveled log calls produce output.
// Status verbs (Success, Fail, Event, Wait, Ready) ignore the level entirely.
type Level int

// Levels in increasing severity. A call is emitted only when its level is
// at or above the logger's configured threshold.
const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

// String returns the lowercase name of the level.
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "info"
	}
}

// ParseLevel converts a level name to a Level. Names are matched
// case-insensitively. Unknown or empty names fall back to LevelInfo so a bad
// LOG_LEVEL never breaks the host program.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	case "fatal":
		return LevelFatal
	default:
		return LevelInfo
	}
}

// levelFromEnv reads the initial threshold from LOG_LEVEL.
func levelFromEnv() Level {
	return ParseLevel(os.Getenv("LOG_LEVEL"))
}
