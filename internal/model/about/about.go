// Package about renders the bundled game manual in a scrollable viewport.
package about

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/vinser/snaked/internal/embeddata"
	"github.com/vinser/snaked/internal/render"
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	viewport viewport.Model
}

// CloseAboutMsg signals that the about screen should close.
type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

func New(width, height int) Model {
	vp := viewport.New(width, height-4)
	vp.SetContent(renderAbout(width))
	return Model{
		width:    width,
		height:   height,
		viewport: vp,
	}
}

// renderAbout renders the embedded markdown manual; on any failure it falls
// back to the raw text.
func renderAbout(width int) string {
	raw, err := embeddata.ReadAboutMD()
	if err != nil {
		return "about.md is missing from the build"
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return string(raw)
	}
	out, err := r.Render(string(raw))
	if err != nil {
		return string(raw)
	}
	return out
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "i":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

const footer = "↑ ↓ — scroll, esc — back"

func (m Model) View() string {
	return render.Page("About", m.viewport.View(), footer, m.width, m.height, m.termWidth, m.termHeight)
}
