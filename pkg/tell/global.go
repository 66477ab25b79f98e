package tell

import "time"

// Top-level functions narrate through the package default logger, so small
// programs can `tell.Info(...)` without constructing anything.

// Trace logs a message at trace level via the default logger.
func Trace(msg string) { Default().Trace(msg) }

// Debug logs a message at debug level via the default logger.
func Debug(msg string) { Default().Debug(msg) }

// Info logs a message at info level via the default logger.
func Info(msg string) { Default().Info(msg) }

// Warn logs a message at warn level via the default logger.
func Warn(msg string) { Default().Warn(msg) }

// WarnOnce logs a warning once per unique message via the default logger.
func WarnOnce(msg string) { Default().WarnOnce(msg) }

// Error logs a message at error level via the default logger.
func Error(msg string) { Default().Error(msg) }

// ErrorErr logs an error value via the default logger.
func ErrorErr(err error) { Default().ErrorErr(err) }

// Fatal logs a message at fatal level via the default logger and exits.
func Fatal(msg string) { Default().Fatal(msg) }

// Success reports a positive outcome via the default logger.
func Success(msg string) { Default().Success(msg) }

// Fail reports a negative outcome via the default logger.
func Fail(msg string) { Default().Fail(msg) }

// Event reports a notable occurrence via the default logger.
func Event(msg string) { Default().Event(msg) }

// Wait reports a pending operation via the default logger.
func Wait(msg string) { Default().Wait(msg) }

// Ready reports availability via the default logger.
func Ready(msg string) { Default().Ready(msg) }

// Step prints a bullet at the current depth via the default logger.
func Step(msg string) { Default().Step(msg) }

// Task opens a task scope on the default logger.
func Task(title string) *TaskScope { return Default().Task(title) }

// Section opens a section scope on the default logger.
func Section(title string) *SectionScope { return Default().Section(title) }

// RunTask runs fn in a task scope on the default logger.
func RunTask(title string, fn func() error) error { return Default().RunTask(title, fn) }

// RunSection runs fn in a section scope on the default logger.
func RunSection(title string, fn func()) { Default().RunSection(title, fn) }

// NewProgress creates a progress handle on the default logger.
func NewProgress(total int, title string) *Progress { return Default().Progress(total, title) }

// Time starts a stopwatch on the default logger.
func Time(label string) { Default().Time(label) }

// TimeEnd stops a stopwatch on the default logger.
func TimeEnd(label string) time.Duration { return Default().TimeEnd(label) }

// TimeEndAt stops a stopwatch on the default logger, reporting at the given
// level.
func TimeEndAt(label string, level Level) time.Duration { return Default().TimeEndAt(label, level) }

// WithPrefix derives a prefixed view of the default logger.
func WithPrefix(prefix string) *Logger { return Default().WithPrefix(prefix) }
