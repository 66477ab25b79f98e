package tell

import "github.com/charmbracelet/lipgloss"

// Color palette using ANSI color codes for terminal compatibility.
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "4" // Blue
	ColorTrace   lipgloss.Color = "5" // Magenta
	ColorWait    lipgloss.Color = "7" // White
	ColorMuted   lipgloss.Color = "8" // Gray (bright black)
)

// verbStyles maps each verb to its fixed symbol style:
// info blue, warn yellow, error/fail red, success/ready green, wait white,
// trace magenta, step/section dim.
var verbStyles = map[verb]lipgloss.Style{
	verbTrace:   lipgloss.NewStyle().Foreground(ColorTrace),
	verbDebug:   lipgloss.NewStyle().Foreground(ColorTrace),
	verbInfo:    lipgloss.NewStyle().Foreground(ColorInfo).Bold(true),
	verbWarn:    lipgloss.NewStyle().Foreground(ColorWarning).Bold(true),
	verbError:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	verbFatal:   lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	verbSuccess: lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	verbFail:    lipgloss.NewStyle().Foreground(ColorError).Bold(true),
	verbEvent:   lipgloss.NewStyle().Foreground(ColorInfo).Bold(true),
	verbWait:    lipgloss.NewStyle().Foreground(ColorWait),
	verbReady:   lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	verbStep:    lipgloss.NewStyle().Faint(true),
	verbSection: lipgloss.NewStyle().Faint(true),
}

// mutedStyle is used for prefixes, timings, and traceback lines.
var mutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
