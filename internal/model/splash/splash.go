// Package splash shows the opening animation: a snake crawls across the
// screen eating a trail of dots, then the game starts.
package splash

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snaked/internal/style"
)

const banner = `
 ▄████  ██▄  █  ▄▄▄▄  ██ ▄█▀ █████ ████▄
 ██     █ ██ █ ██  ██ ██▄█   ██    ██  ██
 ▀███▄  █  ███ ██▀▀██ ██▀█▄  ███   ██  ██
 ▄  ▀██ █   ██ ██  ██ ██ ▀█▄ ██    ██  ██
 ▀███▀  █   ▀█ ██  ██ ██  ▀█ █████ ████▀
`

const (
	// The crawling snake, head last toward the direction of travel.
	snakeTail = "o"
	snakeBody = "OOOO"
	snakeHead = "@"

	moveTickDuration = 80 * time.Millisecond
	loops            = 2
)

type Model struct {
	width  int
	height int

	pos   int
	laps  int
	dots  []bool
	sb    *strings.Builder
}

type MoveMsg struct{}

func moveCmd() tea.Cmd {
	return tea.Tick(moveTickDuration, func(t time.Time) tea.Msg {
		return MoveMsg{}
	})
}

// MakeSettingsMsg asks the app to open the settings screen.
type MakeSettingsMsg struct{}

func makeSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return MakeSettingsMsg{}
	}
}

// AboutMsg asks the app to open the about screen.
type AboutMsg struct{}

func aboutCmd() tea.Cmd {
	return func() tea.Msg {
		return AboutMsg{}
	}
}

// TimedoutMsg signals that the animation finished or was skipped.
type TimedoutMsg struct{}

func timedoutCmd() tea.Cmd {
	return func() tea.Msg {
		return TimedoutMsg{}
	}
}

func New(width, height int) Model {
	dots := make([]bool, width)
	for i := range dots {
		dots[i] = true
	}
	return Model{
		width:  width,
		height: height,
		pos:    -len(snakeTail) - len(snakeBody) - len(snakeHead),
		dots:   dots,
		sb:     &strings.Builder{},
	}
}

func (m *Model) SetSize(width, height int) {
	// The animation runs on its own fixed canvas; the terminal size is
	// handled by centering in View via lipgloss.
}

func (m Model) Init() tea.Cmd {
	return moveCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case MoveMsg:
		m.pos++
		mouth := m.pos + len(snakeTail) + len(snakeBody)
		if mouth >= 0 && mouth < len(m.dots) {
			m.dots[mouth] = false
		}
		if m.pos > m.width {
			m.laps++
			if m.laps >= loops {
				return m, timedoutCmd()
			}
			m.pos = -len(snakeTail) - len(snakeBody) - len(snakeHead)
			for i := range m.dots {
				m.dots[i] = true
			}
		}
		return m, moveCmd()
	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			return m, makeSettingsCmd()
		case "i":
			return m, aboutCmd()
		case "enter", "esc", " ", "space":
			return m, timedoutCmd()
		}
	}
	return m, nil
}

func (m Model) View() string {
	m.sb.Reset()

	m.sb.WriteString(style.SplashSnake.Render(banner))
	m.sb.WriteString("\n\n")

	// The dot line with the snake crawling over it.
	sprite := snakeTail + snakeBody + snakeHead
	for x := 0; x < m.width; x++ {
		i := x - m.pos
		switch {
		case i >= 0 && i < len(sprite):
			m.sb.WriteString(style.SplashSnake.Render(string(sprite[i])))
		case x%4 == 0 && m.dots[x]:
			m.sb.WriteString(style.SplashFood.Render("·"))
		default:
			m.sb.WriteRune(' ')
		}
	}
	m.sb.WriteString("\n\n")
	m.sb.WriteString(style.Footer.Render("s — settings, i — about, m — mute, space — play, q — quit"))
	m.sb.WriteString("\n")

	return lipgloss.NewStyle().Padding(1, 2).Render(m.sb.String())
}
