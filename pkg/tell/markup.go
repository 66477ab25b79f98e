package tell

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Inline markup: [green]text[/] spans, produced by pkg/format and by callers.
// The engine recognizes a fixed tag table; anything else in brackets (prefix
// chunks, user text) passes through untouched. Malformed or unbalanced spans
// degrade to plain text instead of erroring, so markup can never break a log
// line.

// tagStyle describes the rendering attributes of one markup tag.
type tagStyle struct {
	color lipgloss.Color
	bold  bool
	faint bool
}

// markupTags is the fixed tag table. Unknown tags are not markup.
var markupTags = map[string]tagStyle{
	"green":   {color: "2"},
	"red":     {color: "1"},
	"yellow":  {color: "3"},
	"blue":    {color: "4"},
	"magenta": {color: "5"},
	"cyan":    {color: "6"},
	"white":   {color: "7"},
	"grey50":  {color: "8"},
	"dim":     {faint: true},
	"bold":    {bold: true},
}

// segment is a run of text with the markup tags active over it.
type segment struct {
	text string
	tags []string
}

// parseMarkup splits a string into styled segments. Open tags without a
// matching [/] are auto-closed at the end of the string; stray [/] tokens are
// dropped. Both are caller mistakes the engine absorbs.
func parseMarkup(s string) []segment {
	var segs []segment
	var stack []string
	var buf strings.Builder

	flush := func() {
		if buf.Len() == 0 {
			return
		}
		tags := make([]string, len(stack))
		copy(tags, stack)
		segs = append(segs, segment{text: buf.String(), tags: tags})
		buf.Reset()
	}

	for i := 0; i < len(s); {
		if s[i] != '[' {
			buf.WriteByte(s[i])
			i++
			continue
		}
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			// No closing bracket anywhere: the rest is literal text.
			buf.WriteString(s[i:])
			break
		}
		token := s[i+1 : i+end]
		switch {
		case token == "/":
			flush()
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		case isMarkupTag(token):
			flush()
			stack = append(stack, token)
		default:
			// Not a recognized tag: literal bracket text.
			buf.WriteString(s[i : i+end+1])
		}
		i += end + 1
	}
	flush()
	return segs
}

func isMarkupTag(token string) bool {
	_, ok := markupTags[token]
	return ok
}

// Strip returns text with all markup tags and ANSI escape sequences removed.
// It is safe on arbitrary input and is the width-accounting form of a line.
func Strip(s string) string {
	s = stripAnsi(s)
	var b strings.Builder
	for _, seg := range parseMarkup(s) {
		b.WriteString(seg.text)
	}
	return b.String()
}

// renderMarkup converts markup spans to ANSI color sequences. Nested tags
// combine; the innermost color wins.
func renderMarkup(s string) string {
	var b strings.Builder
	for _, seg := range parseMarkup(s) {
		if len(seg.tags) == 0 {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(styleForTags(seg.tags).Render(seg.text))
	}
	return b.String()
}

// styleForTags merges a tag stack into one lipgloss style.
func styleForTags(tags []string) lipgloss.Style {
	style := lipgloss.NewStyle()
	for _, tag := range tags {
		ts, ok := markupTags[tag]
		if !ok {
			continue
		}
		if ts.color != "" {
			style = style.Foreground(ts.color)
		}
		if ts.bold {
			style = style.Bold(true)
		}
		if ts.faint {
			style = style.Faint(true)
		}
	}
	return style
}

// stripAnsi removes ANSI escape codes from a string.
func stripAnsi(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\x1b' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
