package tell

import (
	"fmt"
	"runtime/debug"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/tell/pkg/format"
)

// blockKind distinguishes the two narration scopes.
type blockKind int

const (
	blockTask blockKind = iota
	blockSection
)

// block is one active narration scope on the stack. The stack's size is the
// current indentation depth at all times.
type block struct {
	kind  blockKind
	title string
	start time.Time
	depth int
}

// TaskScope is the guard for an open task block. End must run on every exit
// path; pair Task with a deferred End so early returns and panics still
// close the scope.
type TaskScope struct {
	logger *Logger
	title  string
	start  time.Time
	depth  int

	mu    sync.Mutex
	ended bool
}

// Task opens a task scope: prints the start line (wait symbol), pushes a
// block, and starts the clock.
//
//	scope := log.Task("Build assets")
//	defer func() { scope.End(err) }()
func (l *Logger) Task(title string) *TaskScope {
	c := l.core
	c.mu.Lock()
	depth := len(c.stack)
	start := time.Now()
	l.emitLocked(verbWait, title, depth, 0)
	c.stack = append(c.stack, block{kind: blockTask, title: title, start: start, depth: depth})
	c.mu.Unlock()

	return &TaskScope{logger: l, title: title, start: start, depth: depth}
}

// End closes the task scope and prints the closing line at the scope's own
// indent: success with duration when err is nil, fail otherwise. A failed
// task additionally gets the error and a stack trace indented beneath, when
// tracebacks are enabled. End is idempotent; calling it twice prints one
// closing line.
func (s *TaskScope) End(err error) {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	s.mu.Unlock()

	l := s.logger
	c := l.core
	msg := fmt.Sprintf("%s (%s)", s.title, format.DurationMS(durationMS(time.Since(s.start))))

	c.mu.Lock()
	// Truncating rather than popping restores the parent's indentation even
	// when inner scopes were abandoned during an abrupt unwind.
	if len(c.stack) > s.depth {
		c.stack = c.stack[:s.depth]
	}
	show := c.cfg.ShowTracebacks
	if err != nil {
		l.emitLocked(verbFail, msg, s.depth, 0)
		if show {
			l.emitLocked(verbStep, err.Error(), s.depth, 1)
			stack := strings.TrimSpace(string(debug.Stack()))
			for _, line := range strings.Split(stack, "\n") {
				l.emitLocked(verbStep, line, s.depth, 1)
			}
		}
	} else {
		l.emitLocked(verbSuccess, msg, s.depth, 0)
	}
	c.mu.Unlock()
}

// RunTask wraps fn in a task scope. The closing line is guaranteed on every
// exit path: fn's error closes the task as failed, and a panic closes it as
// failed before propagating.
func (l *Logger) RunTask(title string, fn func() error) error {
	scope := l.Task(title)
	defer func() {
		if r := recover(); r != nil {
			scope.End(fmt.Errorf("panic: %v", r))
			panic(r)
		}
	}()
	err := fn()
	scope.End(err)
	return err
}

// SectionScope is the guard for an open section block. Sections are pure
// indentation scopes: one header line on entry, no closing line.
type SectionScope struct {
	logger *Logger
	depth  int

	mu    sync.Mutex
	ended bool
}

// Section opens a section scope: prints the header line and pushes a block.
func (l *Logger) Section(title string) *SectionScope {
	c := l.core
	c.mu.Lock()
	depth := len(c.stack)
	l.emitLocked(verbSection, title, depth, 0)
	c.stack = append(c.stack, block{kind: blockSection, title: title, depth: depth})
	c.mu.Unlock()

	return &SectionScope{logger: l, depth: depth}
}

// End closes the section scope, restoring the parent's indentation. End is
// idempotent and prints nothing.
func (s *SectionScope) End() {
	if s == nil {
		return
	}
	s.mu.Lock()
	if s.ended {
		s.mu.Unlock()
		return
	}
	s.ended = true
	s.mu.Unlock()

	c := s.logger.core
	c.mu.Lock()
	if len(c.stack) > s.depth {
		c.stack = c.stack[:s.depth]
	}
	c.mu.Unlock()
}

// RunSection wraps fn in a section scope. The deferred End restores
// indentation even when fn panics.
func (l *Logger) RunSection(title string, fn func()) {
	scope := l.Section(title)
	defer scope.End()
	fn()
}

// Step prints a bullet at the current depth. Steps are legal with no active
// block; they land at depth zero.
func (l *Logger) Step(msg string) {
	l.emit(verbStep, msg, -1, 0)
}
