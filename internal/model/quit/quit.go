package quit

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snaked/internal/render"
)

const quitPeriod = 2 * time.Second

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	quitUntil time.Time
}

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// TimedoutMsg signals that the farewell screen has run its course.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(width, height int) Model {
	return Model{
		width:     width,
		height:    height,
		quitUntil: time.Now().Add(quitPeriod),
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if time.Now().After(m.quitUntil) {
		return m, timedoutCmd()
	}
	return m, tick()
}

func (m Model) View() string {
	return render.Page("Bye!", "Thanks for playing.", "", m.width, m.height, m.termWidth, m.termHeight)
}
