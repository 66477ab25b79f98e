package tell

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlobalFunctionsUseDefault(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	var buf bytes.Buffer
	cfg := Config{Level: LevelInfo, Color: ColorOff, Symbols: true, IndentWidth: 2}
	SetDefault(NewWithConfig(&buf, cfg))

	Info("hello")
	Success("done")
	task := Task("work")
	Step("part")
	task.End(nil)

	got := lines(&buf)
	require.Len(t, got, 5)
	assert.Equal(t, "ℹ hello", got[0])
	assert.Equal(t, "✓ done", got[1])
	assert.Equal(t, "○ work", got[2])
	assert.Equal(t, "•   part", got[3])
}

func TestGlobalProgress(t *testing.T) {
	orig := Default()
	t.Cleanup(func() { SetDefault(orig) })

	var buf bytes.Buffer
	cfg := Config{Level: LevelInfo, Color: ColorOff, Symbols: true, IndentWidth: 2}
	SetDefault(NewWithConfig(&buf, cfg))

	p := NewProgress(2, "Copy")
	p.Tick()
	p.Tick()
	p.Done(true)

	got := lines(&buf)
	require.Len(t, got, 1)
	assert.Contains(t, got[0], "Copy (2/2, ")
}
