// Package format provides terminal-oriented string formatters: durations,
// numbers, percentages, byte sizes, and currency amounts.
//
// Formatters that color by sign emit inline markup spans ([green]…[/],
// [red]…[/], [grey50]…[/]) rather than raw ANSI codes. The narration logger
// in pkg/tell renders or strips those spans according to its own color state;
// this package only decides whether to emit them at all.
//
// Color emission is a package-wide tri-state mirrored from the logger:
// SetColorEnabled forces it on or off, ResetColor returns to automatic
// detection (NO_COLOR, FORCE_COLOR, then TTY-ness of stdout).
package format

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/term"
)

// siSuffixes for Compact, largest first.
var siSuffixes = []struct {
	threshold float64
	suffix    string
}{
	{1e18, "E"},
	{1e15, "P"},
	{1e12, "T"},
	{1e9, "G"},
	{1e6, "M"},
	{1e3, "K"},
}

var (
	colorMu      sync.Mutex
	colorForced  bool
	colorEnabled bool
)

// SetColorEnabled overrides automatic color detection.
func SetColorEnabled(enabled bool) {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorForced = true
	colorEnabled = enabled
}

// ResetColor returns to automatic color detection.
func ResetColor() {
	colorMu.Lock()
	defer colorMu.Unlock()
	colorForced = false
}

// ColorEnabled reports whether formatters currently emit markup spans.
func ColorEnabled() bool {
	colorMu.Lock()
	defer colorMu.Unlock()
	if colorForced {
		return colorEnabled
	}
	return detectColor()
}

func detectColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// applyStyle wraps text in a markup span when color is enabled.
func applyStyle(text, style string) string {
	if !ColorEnabled() {
		return text
	}
	return "[" + style + "]" + text + "[/]"
}

// styleBySign colors text green for positive values, red for negative,
// grey for zero.
func styleBySign(value float64, text string) string {
	switch {
	case value > 0:
		return applyStyle(text, "green")
	case value < 0:
		return applyStyle(text, "red")
	default:
		return applyStyle(text, "grey50")
	}
}

// ColorBySign wraps text in a sign-colored markup span.
func ColorBySign(value float64, text string) string {
	return styleBySign(value, text)
}

// ApplySign prefixes body with the sign of value. Positive values get a "+"
// only when signed is true; zero gets nothing.
func ApplySign(value float64, body string, signed bool) string {
	if value < 0 {
		return "-" + body
	}
	if value > 0 && signed {
		return "+" + body
	}
	return body
}

// Number formats a signed, sign-colored number with fixed decimals.
func Number(value float64, decimals int, signed bool) string {
	body := NumberPlain(math.Abs(value), decimals)
	return styleBySign(value, ApplySign(value, body, signed))
}

// NumberPlain formats a number with fixed decimals and no styling.
func NumberPlain(value float64, decimals int) string {
	return strconv.FormatFloat(value, 'f', decimals, 64)
}

// WithCommas formats a number with thousands separators, sign-colored.
// A negative decimals count keeps the value's natural representation.
func WithCommas(value float64, decimals int) string {
	var text string
	if decimals < 0 {
		text = addCommas(strconv.FormatFloat(value, 'f', -1, 64))
	} else {
		text = addCommas(strconv.FormatFloat(value, 'f', decimals, 64))
	}
	return styleBySign(value, text)
}

// addCommas inserts thousands separators into a plain decimal string.
func addCommas(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if dot := strings.IndexByte(s, '.'); dot >= 0 {
		intPart, fracPart = s[:dot], s[dot:]
	}
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

// Compact formats large values with SI suffixes: 1532000 -> "1.5M".
func Compact(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || value == 0 {
		return applyStyle("0", "grey50")
	}
	abs := math.Abs(value)
	for _, si := range siSuffixes {
		if abs >= si.threshold {
			text := fmt.Sprintf("%.1f%s", value/si.threshold, si.suffix)
			return styleBySign(value, text)
		}
	}
	return styleBySign(value, fmt.Sprintf("%.0f", value))
}

// Bytes formats a byte count using IEC units: 1536 -> "1.5 KiB".
func Bytes(n int64) string {
	if n < 1024 {
		return styleBySign(float64(n), fmt.Sprintf("%d B", n))
	}
	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	v := float64(n)
	for _, unit := range units {
		v /= 1024.0
		if math.Abs(v) < 1024.0 {
			return styleBySign(float64(n), fmt.Sprintf("%.1f %s", v, unit))
		}
	}
	return styleBySign(float64(n), fmt.Sprintf("%.1f ZiB", v))
}

// DurationMS renders a millisecond count for narration lines:
// below one second "245ms", below ten seconds "1.24s", then "12.3s".
func DurationMS(ms float64) string {
	switch {
	case ms >= 10_000:
		return fmt.Sprintf("%.1fs", ms/1000)
	case ms >= 1000:
		return fmt.Sprintf("%.2fs", ms/1000)
	default:
		return fmt.Sprintf("%.0fms", ms)
	}
}

// percentageDecimals picks display precision from the value's magnitude.
func percentageDecimals(value float64) int {
	abs := math.Abs(value)
	switch {
	case abs < 0.1:
		return 2
	case abs >= 100:
		return 0
	default:
		return 1
	}
}

// Percentage formats a percentage with magnitude-dependent decimals,
// sign-colored: 12.345 -> "+12.3%".
func Percentage(value float64, signed bool) string {
	d := percentageDecimals(value)
	body := fmt.Sprintf("%.*f%%", d, math.Abs(value))
	return styleBySign(value, ApplySign(value, body, signed))
}

// PercentageChange formats the relative change from old to current.
// A change from zero is reported as ±100%.
func PercentageChange(old, current float64, signed bool) string {
	if old == 0 {
		if current == 0 {
			return Percentage(0, signed)
		}
		if current > 0 {
			return Percentage(100, signed)
		}
		return Percentage(-100, signed)
	}
	return Percentage((current-old)/math.Abs(old)*100, signed)
}

// PercentageDiff formats the symmetric difference between a and b as a
// percentage of their mean magnitude.
func PercentageDiff(a, b float64, signed bool) string {
	if a == 0 && b == 0 {
		return Percentage(0, signed)
	}
	avg := (math.Abs(a) + math.Abs(b)) / 2
	if avg == 0 {
		return Percentage(0, signed)
	}
	return Percentage(math.Abs(a-b)/avg*100, signed)
}

// Bps formats basis points: 25 -> "25 bps".
func Bps(basisPoints int) string {
	return fmt.Sprintf("%d bps", basisPoints)
}

// Sign returns "+" for positive values, "" otherwise.
func Sign(value float64) string {
	if value > 0 {
		return "+"
	}
	return ""
}
