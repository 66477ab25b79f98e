package tell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
)

// pinANSIProfile forces real escape-sequence rendering for the duration of a
// test, regardless of the environment go test runs in.
func pinANSIProfile(t *testing.T) {
	t.Helper()
	orig := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.ANSI)
	t.Cleanup(func() { lipgloss.SetColorProfile(orig) })
}

func TestStripRemovesTags(t *testing.T) {
	assert.Equal(t, "done in 1.2s", Strip("done in [green]1.2s[/]"))
	assert.Equal(t, "a b c", Strip("[bold]a[/] [dim]b[/] [red]c[/]"))
}

func TestStripIsFixedPoint(t *testing.T) {
	inputs := []string{
		"plain text",
		"[green]ok[/]",
		"[bold][red]nested[/][/]",
		"unclosed [cyan]tag",
		"stray close[/]",
		"\x1b[32mansi\x1b[0m text",
	}
	for _, in := range inputs {
		once := Strip(in)
		assert.Equal(t, once, Strip(once), "Strip should be idempotent for %q", in)
	}
}

func TestStripUnclosedTagAutoCloses(t *testing.T) {
	assert.Equal(t, "starting sync", Strip("[yellow]starting sync"))
}

func TestStripStrayCloseDropped(t *testing.T) {
	assert.Equal(t, "done", Strip("done[/]"))
}

func TestStripUnknownBracketTextIsLiteral(t *testing.T) {
	// Prefix chunks and user text in brackets are not markup.
	assert.Equal(t, "[worker] cache warmed", Strip("[worker] cache warmed"))
	assert.Equal(t, "matrix[3]", Strip("matrix[3]"))
}

func TestStripUnterminatedBracket(t *testing.T) {
	assert.Equal(t, "value [incomplete", Strip("value [incomplete"))
}

func TestStripRemovesAnsi(t *testing.T) {
	assert.Equal(t, "colored", Strip("\x1b[1;32mcolored\x1b[0m"))
}

func TestStripRenderFixedPoint(t *testing.T) {
	pinANSIProfile(t)

	inputs := []string{
		"plain text",
		"done in [green]1.2s[/]",
		"[bold][red]nested[/][/]",
		"unclosed [cyan]tag",
		"stray close[/]",
		"[worker] literal bracket",
		"[dim]a[/] mid [yellow]b",
	}
	for _, in := range inputs {
		assert.Equal(t, Strip(in), Strip(renderMarkup(in)),
			"Strip(render(x)) must equal Strip(x) for %q", in)
	}
}

func TestRenderMarkupEmitsAnsi(t *testing.T) {
	pinANSIProfile(t)

	rendered := renderMarkup("[green]ok[/]")

	assert.Contains(t, rendered, "\x1b[")
	assert.NotContains(t, rendered, "[green]")
	assert.Equal(t, "ok", Strip(rendered))
}

func TestColorOnEmissionHasNoRawTags(t *testing.T) {
	pinANSIProfile(t)

	var buf bytes.Buffer
	cfg := Config{Level: LevelInfo, Color: ColorOn, Symbols: true, IndentWidth: 2}
	log := NewWithConfig(&buf, cfg)

	log.Info("done in [green]1.2s[/]")

	out := strings.TrimRight(buf.String(), "\n")
	assert.Contains(t, out, "\x1b[")
	assert.NotContains(t, out, "[green]")
	assert.NotContains(t, out, "[/]")
	assert.Equal(t, "ℹ done in 1.2s", Strip(out))
}

func TestRenderMarkupPlainText(t *testing.T) {
	// Text without tags passes through byte for byte.
	assert.Equal(t, "no markup here", renderMarkup("no markup here"))
}

func TestParseMarkupSegments(t *testing.T) {
	segs := parseMarkup("a [green]b[/] c")

	assert.Len(t, segs, 3)
	assert.Equal(t, "a ", segs[0].text)
	assert.Empty(t, segs[0].tags)
	assert.Equal(t, "b", segs[1].text)
	assert.Equal(t, []string{"green"}, segs[1].tags)
	assert.Equal(t, " c", segs[2].text)
}

func TestParseMarkupNestedTags(t *testing.T) {
	segs := parseMarkup("[bold]x[red]y[/]z[/]")

	assert.Len(t, segs, 3)
	assert.Equal(t, []string{"bold"}, segs[0].tags)
	assert.Equal(t, []string{"bold", "red"}, segs[1].tags)
	assert.Equal(t, []string{"bold"}, segs[2].tags)
}

func TestStripAnsiMultipleSequences(t *testing.T) {
	in := "\x1b[31ma\x1b[0m\x1b[1mb\x1b[0m"
	assert.Equal(t, "ab", stripAnsi(in))
	assert.False(t, strings.ContainsRune(stripAnsi(in), '\x1b'))
}
