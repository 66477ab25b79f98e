package tell

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/tell/pkg/format"
)

// core holds the state shared by a base logger and every view derived from it
// through WithPrefix and Tag: one sink, one config, one block stack, one
// warn-once set, one timer table.
type core struct {
	mu       sync.Mutex
	out      io.Writer
	cfg      Config
	stack    []block
	warnOnce map[string]struct{}
	timers   map[string]time.Time
	painter  *linePainter // live progress line currently on screen, if any
	exit     func(int)
}

// Logger narrates program execution to a terminal: leveled messages, status
// verbs, nested task/section scopes, and live progress. Derived views from
// WithPrefix and Tag share everything except their prefix text, so nesting
// and dedup behave identically through any view.
//
// A Logger is safe for concurrent use; a mutex serializes writes to the sink
// so concurrent lines never tear.
type Logger struct {
	core   *core
	prefix string
	tags   []string
}

// New creates a Logger writing to w with the default configuration.
func New(w io.Writer) *Logger {
	return NewWithConfig(w, DefaultConfig())
}

// NewWithConfig creates a Logger writing to w with an explicit configuration.
func NewWithConfig(w io.Writer, cfg Config) *Logger {
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 2
	}
	return &Logger{
		core: &core{
			out:      w,
			cfg:      cfg,
			warnOnce: make(map[string]struct{}),
			timers:   make(map[string]time.Time),
			exit:     os.Exit,
		},
	}
}

// std is the package-level default logger, writing to stdout.
var (
	stdMu sync.Mutex
	std   = New(os.Stdout)
)

// Default returns the package-level default logger.
func Default() *Logger {
	stdMu.Lock()
	defer stdMu.Unlock()
	return std
}

// SetDefault replaces the package-level default logger. Useful for tests and
// for programs that narrate to stderr.
func SetDefault(l *Logger) {
	stdMu.Lock()
	defer stdMu.Unlock()
	if l != nil {
		std = l
	}
}

// ----- configuration -----

// SetLevel sets the minimum level for leveled calls.
func (l *Logger) SetLevel(level Level) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Level = level
}

// Level returns the current level threshold.
func (l *Logger) Level() Level {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg.Level
}

// EnableColor forces color on or off. Use SetColorMode(ColorAuto) to return
// to automatic detection.
func (l *Logger) EnableColor(enabled bool) {
	if enabled {
		l.SetColorMode(ColorOn)
	} else {
		l.SetColorMode(ColorOff)
	}
}

// SetColorMode sets the color tri-state and mirrors it into pkg/format so
// formatter output stays consistent with logger output.
func (l *Logger) SetColorMode(mode ColorMode) {
	c := l.core
	c.mu.Lock()
	c.cfg.Color = mode
	c.mu.Unlock()

	switch mode {
	case ColorOn:
		format.SetColorEnabled(true)
	case ColorOff:
		format.SetColorEnabled(false)
	default:
		format.ResetColor()
	}
}

// EnableLiveUpdates permits or forbids in-place progress repaint. Repaint
// additionally requires an interactive sink.
func (l *Logger) EnableLiveUpdates(enabled bool) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.LiveUpdates = enabled
}

// SetShowTracebacks toggles stack traces beneath error and failed-task lines.
func (l *Logger) SetShowTracebacks(enabled bool) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.ShowTracebacks = enabled
}

// SetSymbols selects the unicode symbol set (true) or the ASCII fallback
// (false).
func (l *Logger) SetSymbols(enabled bool) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg.Symbols = enabled
}

// SetOutput redirects the logger to a new sink.
func (l *Logger) SetOutput(w io.Writer) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.out = w
}

// Config returns a copy of the current configuration.
func (l *Logger) Config() Config {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// SetConfig replaces the whole configuration.
func (l *Logger) SetConfig(cfg Config) {
	if cfg.IndentWidth <= 0 {
		cfg.IndentWidth = 2
	}
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

// ----- leveled logging -----

// Trace logs a message at trace level.
func (l *Logger) Trace(msg string) {
	if l.enabled(LevelTrace) {
		l.emit(verbTrace, msg, -1, 0)
	}
}

// Debug logs a message at debug level. Debug shares the trace style so the
// two are visually distinct from info.
func (l *Logger) Debug(msg string) {
	if l.enabled(LevelDebug) {
		l.emit(verbDebug, msg, -1, 0)
	}
}

// Info logs a message at info level.
func (l *Logger) Info(msg string) {
	if l.enabled(LevelInfo) {
		l.emit(verbInfo, msg, -1, 0)
	}
}

// Warn logs a message at warn level.
func (l *Logger) Warn(msg string) {
	if l.enabled(LevelWarn) {
		l.emit(verbWarn, msg, -1, 0)
	}
}

// WarnOnce logs a warning the first time a given message is seen and drops
// every repeat. The dedup set lives on the base logger, so derived views
// share it.
func (l *Logger) WarnOnce(msg string) {
	c := l.core
	c.mu.Lock()
	if _, seen := c.warnOnce[msg]; seen {
		c.mu.Unlock()
		return
	}
	c.warnOnce[msg] = struct{}{}
	c.mu.Unlock()
	l.Warn(msg)
}

// Error logs a plain message at error level.
func (l *Logger) Error(msg string) {
	if l.enabled(LevelError) {
		l.emit(verbError, msg, -1, 0)
	}
}

// ErrorErr logs an error value at error level and, when tracebacks are
// enabled, a stack trace indented beneath it. A nil error logs nothing.
func (l *Logger) ErrorErr(err error) {
	if err == nil || !l.enabled(LevelError) {
		return
	}
	l.emit(verbError, err.Error(), -1, 0)
	l.emitStack()
}

// ErrorTrace logs a plain message at error level followed by a stack trace,
// subject to the show-tracebacks toggle.
func (l *Logger) ErrorTrace(msg string) {
	if !l.enabled(LevelError) {
		return
	}
	l.emit(verbError, msg, -1, 0)
	l.emitStack()
}

// Fatal logs a message at fatal level, flushes the sink, and exits with
// code 1.
func (l *Logger) Fatal(msg string) {
	l.FatalCode(msg, 1)
}

// FatalErr logs an error value like ErrorErr, flushes, and exits with code 1.
func (l *Logger) FatalErr(err error) {
	if err != nil {
		l.emit(verbFatal, err.Error(), -1, 0)
		l.emitStack()
	}
	l.terminate(1)
}

// FatalCode logs a message at fatal level, flushes, and exits with the given
// code. This is the only call with a process-level side effect.
func (l *Logger) FatalCode(msg string, code int) {
	l.emit(verbFatal, msg, -1, 0)
	l.terminate(code)
}

// ----- status verbs -----
// Status verbs are outcome reports, not diagnostics: they are always
// emitted, regardless of the level threshold.

// Success reports a positive outcome.
func (l *Logger) Success(msg string) { l.emit(verbSuccess, msg, -1, 0) }

// Fail reports a negative outcome.
func (l *Logger) Fail(msg string) { l.emit(verbFail, msg, -1, 0) }

// Event reports a notable occurrence.
func (l *Logger) Event(msg string) { l.emit(verbEvent, msg, -1, 0) }

// Wait reports that something has started and the result is pending.
func (l *Logger) Wait(msg string) { l.emit(verbWait, msg, -1, 0) }

// Ready reports that something is up and usable.
func (l *Logger) Ready(msg string) { l.emit(verbReady, msg, -1, 0) }

// ----- derived views -----

// WithPrefix returns a view of this logger that prepends "[prefix …]" to
// every line. The parent is not modified.
func (l *Logger) WithPrefix(prefix string) *Logger {
	return &Logger{core: l.core, prefix: prefix, tags: l.tags}
}

// Tag returns a view with additional tag strings appended to the prefix
// block. Views compose by chaining.
func (l *Logger) Tag(tags ...string) *Logger {
	merged := make([]string, 0, len(l.tags)+len(tags))
	merged = append(merged, l.tags...)
	merged = append(merged, tags...)
	return &Logger{core: l.core, prefix: l.prefix, tags: merged}
}

// prefixText renders the "[prefix tag1 tag2] " block, or "" for the base
// view.
func (l *Logger) prefixText() string {
	var parts []string
	if l.prefix != "" {
		parts = append(parts, l.prefix)
	}
	parts = append(parts, l.tags...)
	if len(parts) == 0 {
		return ""
	}
	return "[" + strings.Join(parts, " ") + "] "
}

// ----- timers -----

// Time starts a stopwatch under the given label.
func (l *Logger) Time(label string) {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timers[label] = time.Now()
}

// TimeEnd stops the labeled stopwatch, reports the elapsed time at trace
// level, and returns it. Ending a timer that was never started warns and
// returns zero rather than failing.
func (l *Logger) TimeEnd(label string) time.Duration {
	return l.TimeEndAt(label, LevelTrace)
}

// TimeEndAt is TimeEnd with the report emitted at the given level instead of
// trace. The report is still subject to the level threshold.
func (l *Logger) TimeEndAt(label string, level Level) time.Duration {
	c := l.core
	c.mu.Lock()
	start, ok := c.timers[label]
	delete(c.timers, label)
	c.mu.Unlock()

	if !ok {
		l.Warn(fmt.Sprintf("Timer %q does not exist", label))
		return 0
	}
	elapsed := time.Since(start)
	if l.enabled(level) {
		l.emit(verbForLevel(level), fmt.Sprintf("%s: %s", label, format.DurationMS(durationMS(elapsed))), -1, 0)
	}
	return elapsed
}

// verbForLevel maps a level to the verb that styles its lines.
func verbForLevel(level Level) verb {
	switch level {
	case LevelTrace:
		return verbTrace
	case LevelDebug:
		return verbDebug
	case LevelWarn:
		return verbWarn
	case LevelError:
		return verbError
	case LevelFatal:
		return verbFatal
	default:
		return verbInfo
	}
}

// ----- emission -----

// enabled reports whether a level passes the current threshold. Filtered
// calls cost exactly this comparison.
func (l *Logger) enabled(level Level) bool {
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	return level >= c.cfg.Level
}

// emit writes a single line. depth < 0 means the current stack depth; extra
// adds indentation units on top. Rendering faults are swallowed here: the
// logger must never be the reason a host program crashes.
func (l *Logger) emit(v verb, msg string, depth, extra int) {
	defer func() { _ = recover() }()
	c := l.core
	c.mu.Lock()
	defer c.mu.Unlock()
	l.emitLocked(v, msg, depth, extra)
}

// emitLocked composes and writes one committed line. Callers hold core.mu.
func (l *Logger) emitLocked(v verb, msg string, depth, extra int) {
	c := l.core
	if c.out == nil {
		return
	}
	if c.painter != nil {
		// A live progress line owns the row; move it out of the way.
		c.painter.clear()
	}
	fmt.Fprintln(c.out, l.composeLocked(v, msg, depth, extra))
}

// composeLocked builds the line "<symbol> <indent><prefix><message>".
func (l *Logger) composeLocked(v verb, msg string, depth, extra int) string {
	c := l.core
	if depth < 0 {
		depth = len(c.stack)
	}
	indent := strings.Repeat(" ", (depth+extra)*c.cfg.IndentWidth)
	sym := symbolFor(v, c.cfg)

	if colorActive(c.cfg.Color, c.out) {
		var b strings.Builder
		b.WriteString(verbStyles[v].Render(sym))
		b.WriteString(" ")
		b.WriteString(indent)
		if p := l.prefixText(); p != "" {
			b.WriteString(mutedStyle.Render(p))
		}
		b.WriteString(renderMarkup(msg))
		return b.String()
	}
	return sym + " " + indent + l.prefixText() + Strip(msg)
}

// emitStack prints the current goroutine's stack as dim, extra-indented
// lines. Gated by the show-tracebacks toggle.
func (l *Logger) emitStack() {
	c := l.core
	c.mu.Lock()
	show := c.cfg.ShowTracebacks
	c.mu.Unlock()
	if !show {
		return
	}
	stack := strings.TrimSpace(string(debug.Stack()))
	for _, line := range strings.Split(stack, "\n") {
		l.emit(verbStep, line, -1, 1)
	}
}

// terminate flushes the sink and exits the process. The exit function is a
// field so tests can intercept it.
func (l *Logger) terminate(code int) {
	c := l.core
	c.mu.Lock()
	if f, ok := c.out.(*os.File); ok {
		_ = f.Sync()
	}
	exit := c.exit
	c.mu.Unlock()
	exit(code)
}

// durationMS converts a duration to fractional milliseconds for pkg/format.
func durationMS(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
