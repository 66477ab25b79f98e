package tell

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// isTerminal reports whether the writer is attached to a TTY. Non-file
// writers (buffers, pipes wrapped in custom types) are never terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// colorActive resolves the color tri-state against the environment and the
// sink. Auto mode is re-evaluated on every call so redirection mid-run is
// picked up.
func colorActive(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorOn:
		return true
	case ColorOff:
		return false
	}
	return detectColor(w)
}

// detectColor implements auto mode: NO_COLOR disables, FORCE_COLOR enables,
// otherwise color requires a TTY whose termenv profile supports styling.
func detectColor(w io.Writer) bool {
	if enabled, overridden := forceColorFromEnv(); overridden {
		return enabled
	}
	if !isTerminal(w) {
		return false
	}
	return termenv.NewOutput(w).ColorProfile() != termenv.Ascii
}

// liveActive reports whether in-place repaint is permitted: the sink must be
// interactive and live updates enabled. Everything else gets committed,
// static lines only.
func liveActive(cfg Config, w io.Writer) bool {
	return cfg.LiveUpdates && isTerminal(w)
}
