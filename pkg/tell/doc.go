// Package tell is a terminal narration logger: hierarchical task, section,
// and step output, status-verb methods, and a live-updating progress
// indicator, all degrading to plain committed lines when the sink is not a
// terminal.
//
// # Line Format
//
// Every committed line is "<symbol> <indent><message>", one physical line
// per event:
//
//	○ Build assets
//	•   Transpiling
//	•   Bundling
//	✓ Build assets (312ms)
//
// In interactive mode symbols are colored per a fixed table (info blue,
// warn yellow, error red, success green, …) and the only cursor control ever
// used is the in-place repaint of a live progress row; the committed line a
// progress handle leaves behind contains no control sequences.
//
// # Scopes
//
// Task and Section return guards whose End must run on every exit path;
// RunTask and RunSection wrap a function and guarantee it, including across
// panics:
//
//	err := log.RunTask("Sync files", func() error {
//	    log.Step("Uploading")
//	    return upload()
//	})
//
// Each open scope adds one unit of indentation; closing it restores the
// parent's indentation exactly.
//
// # Progress
//
//	p := log.Progress(3, "Uploading")
//	for range files {
//	    p.Tick()
//	}
//	p.Done(true)
//
// Ticks repaint a single row in place when the sink is an interactive
// terminal and live updates are enabled; otherwise they are silent and
// Done commits the one summary line.
//
// # Markup
//
// Messages may carry inline [green]…[/] spans, typically produced by
// pkg/format. The logger renders them as color when color is active and
// strips them otherwise; malformed spans degrade to plain text rather than
// erroring.
//
// # Configuration
//
// All mutable state lives in an explicit Config value: level threshold,
// color tri-state (auto re-detects the terminal per call), live updates,
// traceback display, and the unicode-vs-ASCII symbol set. Color changes are
// mirrored into pkg/format so formatter output matches logger output.
package tell
