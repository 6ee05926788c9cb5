package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vito/progrock"
)

const (
	statusCompiling = "compiling"
	statusCompiled  = "compiled"
	statusFailed    = "failed"
	statusSkipped   = "skipped"
)

// ModuleProgress is the display state of one code module on the progress view.
type ModuleProgress struct {
	ID     string
	Name   string
	Status string
}

type styles struct {
	compiled lipgloss.Style
	failed   lipgloss.Style
	skipped  lipgloss.Style
}

// Model renders one line per code module as compilation progresses. It
// consumes vertex updates from a TapeSource and quits when the tape ends.
type Model struct {
	tape    TapeSource
	modules []ModuleProgress
	width   int
	height  int
	spinner spinner.Model
	styles  styles
}

// NewModel creates a progress model reading from the given tape source.
func NewModel(tape TapeSource) *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("yellow"))

	return &Model{
		tape:    tape,
		spinner: s,
		styles: styles{
			compiled: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			failed:   lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
			skipped:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		},
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		WaitForTape(m.tape),
		m.spinner.Tick,
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgTapeUpdate:
		for _, v := range msg.Update.Vertexes {
			m.updateOrAddModule(v)
		}
		return m, WaitForTape(m.tape)
	case MsgTapeEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateOrAddModule(v *progrock.Vertex) {
	for i, existing := range m.modules {
		if existing.ID == v.Id {
			m.modules[i].Status = statusFor(v, existing.Status)
			return
		}
	}
	m.modules = append(m.modules, ModuleProgress{
		ID:     v.Id,
		Name:   v.Name,
		Status: statusFor(v, statusCompiling),
	})
}

func statusFor(v *progrock.Vertex, current string) string {
	if v.Cached {
		return statusSkipped
	}
	if v.Completed == nil {
		return current
	}
	if v.Error != nil {
		return statusFailed
	}
	return statusCompiled
}

// View shows the most recent modules when the list outgrows the window.
func (m *Model) View() string {
	var s strings.Builder

	start := 0
	if m.height > 0 && len(m.modules) > m.height {
		start = len(m.modules) - m.height
	}

	for i := start; i < len(m.modules); i++ {
		mod := m.modules[i]
		var icon string
		switch mod.Status {
		case statusCompiling:
			icon = m.spinner.View()
		case statusCompiled:
			icon = m.styles.compiled.Render("✓")
		case statusFailed:
			icon = m.styles.failed.Render("✗")
		default:
			icon = m.styles.skipped.Render("•")
		}

		fmt.Fprintf(&s, "%s %s\n", icon, mod.Name)
	}

	return s.String()
}
