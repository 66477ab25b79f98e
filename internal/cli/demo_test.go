package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/tell/pkg/tell"
)

func TestRunDemoNarration(t *testing.T) {
	orig := demoDelay
	demoDelay = 0
	t.Cleanup(func() { demoDelay = orig })

	var buf bytes.Buffer
	cfg := tell.DefaultConfig()
	cfg.Color = tell.ColorOff
	cfg.ShowTracebacks = false
	log := tell.NewWithConfig(&buf, cfg)

	runDemo(log)

	out := buf.String()
	assert.Contains(t, out, "ℹ Starting demo")
	assert.Contains(t, out, "○ Build assets")
	assert.Contains(t, out, "•   Transpiling modules")
	assert.Contains(t, out, "✓ Build assets (")
	assert.Contains(t, out, "✓   Uploading (3/3, ")
	assert.Contains(t, out, "▸ Formatting helpers")
	assert.Contains(t, out, "✓ Demo finished")

	// The deprecation warning is deduplicated.
	assert.Equal(t, 1, strings.Count(out, "Flag --fast is deprecated"))
}
