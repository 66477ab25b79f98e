package tell

// verb identifies the kind of line being written. Each verb carries a fixed
// symbol and color; the fixed table is the whole theming surface of the
// logger.
type verb int

const (
	verbTrace verb = iota
	verbDebug
	verbInfo
	verbWarn
	verbError
	verbFatal
	verbSuccess
	verbFail
	verbEvent
	verbWait
	verbReady
	verbStep
	verbSection
)

// Unicode symbols for status indicators.
var unicodeSymbols = map[verb]string{
	verbTrace:   "»", // Verbose diagnostics
	verbDebug:   "»", // Debug shares the trace glyph on purpose
	verbInfo:    "ℹ",
	verbWarn:    "⚠",
	verbError:   "⨯",
	verbFatal:   "⨯",
	verbSuccess: "✓",
	verbFail:    "⨯",
	verbEvent:   "ℹ",
	verbWait:    "○", // Task started, result pending
	verbReady:   "▶",
	verbStep:    "•",
	verbSection: "▸",
}

// ASCII fallback used when SetSymbols(false) is in effect, for terminals and
// CI logs that cannot render the unicode set.
var asciiSymbols = map[verb]string{
	verbTrace:   ">>",
	verbDebug:   ">>",
	verbInfo:    "i",
	verbWarn:    "!",
	verbError:   "x",
	verbFatal:   "x",
	verbSuccess: "ok",
	verbFail:    "x",
	verbEvent:   "i",
	verbWait:    "-",
	verbReady:   ">",
	verbStep:    "*",
	verbSection: "#",
}

// symbolFor returns the display symbol for a verb, honoring the configured
// symbol set.
func symbolFor(v verb, cfg Config) string {
	if !cfg.Symbols {
		return asciiSymbols[v]
	}
	return unicodeSymbols[v]
}
