package tell

import "os"

// ColorMode is the process-wide color tri-state.
type ColorMode int

const (
	// ColorAuto re-evaluates NO_COLOR, FORCE_COLOR, and TTY-ness per call.
	ColorAuto ColorMode = iota
	// ColorOn forces color output regardless of the sink.
	ColorOn
	// ColorOff forces plain output regardless of the sink.
	ColorOff
)

// Config holds all mutable logger configuration. It is an explicit value,
// not ambient state, so tests can substitute one wholesale.
type Config struct {
	Level          Level
	Color          ColorMode
	LiveUpdates    bool
	ShowTracebacks bool
	Symbols        bool
	IndentWidth    int
}

// DefaultConfig returns the documented defaults: level from LOG_LEVEL
// (info when unset), automatic color detection, live updates on, tracebacks
// on, unicode symbols, two-space indentation.
func DefaultConfig() Config {
	return Config{
		Level:          levelFromEnv(),
		Color:          ColorAuto,
		LiveUpdates:    true,
		ShowTracebacks: true,
		Symbols:        true,
		IndentWidth:    2,
	}
}

// forceColorFromEnv reports the env-level color override for auto mode.
// NO_COLOR wins over FORCE_COLOR, matching the informal convention.
func forceColorFromEnv() (enabled, overridden bool) {
	if os.Getenv("NO_COLOR") != "" {
		return false, true
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true, true
	}
	return false, false
}
