package tell

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the animation frames for Bubble Tea embedding, kept
// consistent with the wait symbol family used on committed lines.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// ProgressModel is a Bubble Tea model for embedding a narration progress
// line in a TUI program. The facade itself never starts a TUI; this exists
// for hosts that already run one and want the same symbols, colors, and
// duration formatting as committed logger output.
type ProgressModel struct {
	spinner  spinner.Model
	Title    string
	Total    int
	Current  int
	Finished bool
	Failed   bool
	Start    time.Time
}

// NewProgressModel creates a progress model with the given title and total.
// A total of zero or less means indeterminate.
func NewProgressModel(title string, total int) ProgressModel {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorWait)

	return ProgressModel{
		spinner: sp,
		Title:   title,
		Total:   total,
		Start:   time.Now(),
	}
}

// Init returns the initial command for the spinner animation.
func (m ProgressModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles spinner animation messages.
func (m ProgressModel) Update(msg tea.Msg) (ProgressModel, tea.Cmd) {
	if m.Finished {
		return m, nil
	}
	if tickMsg, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(tickMsg)
		return m, cmd
	}
	return m, nil
}

// View renders the progress line in its current state.
func (m ProgressModel) View() string {
	if m.Finished {
		return m.viewFinal()
	}
	return m.spinner.View() + " " + m.label()
}

// Tick advances the count by one, clamped at the total.
func (m *ProgressModel) Tick() {
	if m.Finished {
		return
	}
	m.Current++
	if m.Total > 0 && m.Current > m.Total {
		m.Current = m.Total
	}
}

// Done finishes the model; the next View renders the summary line.
func (m *ProgressModel) Done(success bool) {
	if m.Finished {
		return
	}
	m.Finished = true
	m.Failed = !success
}

func (m ProgressModel) label() string {
	if m.Total > 0 {
		return fmt.Sprintf("%s %d/%d…", m.Title, m.Current, m.Total)
	}
	return fmt.Sprintf("%s %d…", m.Title, m.Current)
}

func (m ProgressModel) viewFinal() string {
	sym, color := unicodeSymbols[verbSuccess], ColorSuccess
	if m.Failed {
		sym, color = unicodeSymbols[verbFail], ColorError
	}
	symbolStyle := lipgloss.NewStyle().Foreground(color)

	var counts string
	if m.Total > 0 {
		counts = fmt.Sprintf(" %d/%d", m.Current, m.Total)
	}
	return symbolStyle.Render(sym) + " " + m.Title + counts
}
