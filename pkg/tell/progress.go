package tell

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/rileyhilliard/tell/pkg/format"
)

// linePainter rewrites a single terminal row in place using carriage
// returns. It tracks the painted width so the next paint or committed line
// can blank the row completely, leaving no leftover control sequences in
// scrollback.
type linePainter struct {
	w    io.Writer
	last int
}

func (p *linePainter) paint(line string) {
	p.clear()
	fmt.Fprint(p.w, line)
	p.last = len([]rune(stripAnsi(line)))
}

// installPainter registers the live painter for a new handle, blanking any
// row a previous handle still owns so overlapping handles never strand a
// painted line. Callers hold core.mu.
func (c *core) installPainter(pt *linePainter) {
	if c.painter != nil {
		c.painter.clear()
	}
	c.painter = pt
}

func (p *linePainter) clear() {
	if p.last == 0 {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", strings.Repeat(" ", p.last))
	p.last = 0
}

// Progress reports incremental work. In interactive live mode ticks repaint
// one terminal row in place; everywhere else ticks are silent and only Done
// commits a line, so a CI log sees exactly one line per handle no matter how
// many ticks happened.
type Progress struct {
	logger  *Logger
	painter *linePainter // nil when live repaint is not permitted

	mu       sync.Mutex
	total    int
	current  int
	title    string
	start    time.Time
	depth    int
	finished bool
}

// Progress creates a progress handle anchored at the block depth active
// right now. A total of zero or less means indeterminate: the summary line
// reports the raw count instead of a fraction.
func (l *Logger) Progress(total int, title string) *Progress {
	c := l.core
	c.mu.Lock()
	depth := len(c.stack)
	var pt *linePainter
	if liveActive(c.cfg, c.out) {
		pt = &linePainter{w: c.out}
		c.installPainter(pt)
	}
	c.mu.Unlock()

	return &Progress{
		logger:  l,
		painter: pt,
		total:   total,
		title:   title,
		start:   time.Now(),
		depth:   depth,
	}
}

// Tick advances the count by one.
func (p *Progress) Tick() {
	p.Add(1)
}

// Add advances the count by n, clamped at the total when one is set. Ticks
// beyond the total are accepted and ignored for display.
func (p *Progress) Add(n int) {
	p.advance(func(cur int) int { return cur + n })
}

// Set assigns the count absolutely, with the same clamp and repaint rules as
// Add.
func (p *Progress) Set(n int) {
	p.advance(func(int) int { return n })
}

func (p *Progress) advance(next func(int) int) {
	p.mu.Lock()
	if p.finished {
		p.mu.Unlock()
		return
	}
	p.current = next(p.current)
	if p.current < 0 {
		p.current = 0
	}
	if p.total > 0 && p.current > p.total {
		p.current = p.total
	}
	p.mu.Unlock()

	p.repaint()
}

// Done finishes the handle and commits the single summary line:
// "✓ Sync (3/3, 1.2s)". After Done the handle is inert; further calls are
// no-ops and never produce a second line.
func (p *Progress) Done(success bool) {
	p.mu.Lock()
	if p.finished {
		p.mu.Unlock()
		return
	}
	p.finished = true
	msg := p.summaryLocked()
	depth := p.depth
	p.mu.Unlock()

	v := verbSuccess
	if !success {
		v = verbFail
	}

	l := p.logger
	c := l.core
	c.mu.Lock()
	if p.painter != nil {
		p.painter.clear()
		if c.painter == p.painter {
			c.painter = nil
		}
	}
	l.emitLocked(v, msg, depth, 0)
	c.mu.Unlock()
}

// repaint redraws the live row. It re-checks live mode so disabling live
// updates mid-flight stops repaints; the final state still comes out of
// Done.
func (p *Progress) repaint() {
	if p.painter == nil {
		return
	}
	l := p.logger
	c := l.core

	p.mu.Lock()
	label := p.liveLabelLocked()
	depth := p.depth
	p.mu.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.painter != p.painter || !liveActive(c.cfg, c.out) {
		return
	}
	p.painter.paint(l.composeLocked(verbWait, label, depth, 0))
}

// liveLabelLocked renders the in-flight label: "Uploading 2/3…".
func (p *Progress) liveLabelLocked() string {
	switch {
	case p.title != "" && p.total > 0:
		return fmt.Sprintf("%s %d/%d…", p.title, p.current, p.total)
	case p.title != "":
		return fmt.Sprintf("%s %d…", p.title, p.current)
	case p.total > 0:
		return fmt.Sprintf("%d/%d…", p.current, p.total)
	default:
		return fmt.Sprintf("%d…", p.current)
	}
}

// summaryLocked renders the committed summary, omitting the fraction when no
// total was set.
func (p *Progress) summaryLocked() string {
	dur := format.DurationMS(durationMS(time.Since(p.start)))
	switch {
	case p.title != "" && p.total > 0:
		return fmt.Sprintf("%s (%d/%d, %s)", p.title, p.current, p.total, dur)
	case p.title != "":
		return fmt.Sprintf("%s (%d, %s)", p.title, p.current, dur)
	case p.total > 0:
		return fmt.Sprintf("%d/%d (%s)", p.current, p.total, dur)
	default:
		return fmt.Sprintf("%d (%s)", p.current, dur)
	}
}
