// Package motd scrolls gameplay tips across a one-line ticker while the
// game is paused.
package motd

import (
	"encoding/json"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snaked/internal/embeddata"
)

type Model struct {
	msgs       []string
	style      lipgloss.Style
	frameWidth int
	repeats    int
	interval   time.Duration

	current   string
	offset    int
	doneCount int
	lastShown time.Time
	rng       *rand.Rand
}

type TickMsg struct{}

func Tick() tea.Cmd {
	return tea.Tick(time.Millisecond*200, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}

type tipsFile struct {
	Tips []string `json:"tips"`
}

func New(frameWidth, repeats int, interval time.Duration) Model {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var msgs []string
	if raw, err := embeddata.ReadMOTD(); err == nil {
		var tf tipsFile
		if json.Unmarshal(raw, &tf) == nil {
			msgs = tf.Tips
		}
	}
	if len(msgs) == 0 {
		msgs = []string{"Keep crawling!"} // Fallback
	}

	return Model{
		msgs:       msgs,
		style:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		frameWidth: frameWidth,
		repeats:    repeats,
		interval:   interval,
		current:    msgs[rng.Intn(len(msgs))],
		lastShown:  time.Now(),
		rng:        rng,
	}
}

func (m Model) Init() tea.Cmd {
	return Tick()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg.(type) {
	case TickMsg:
		if m.doneCount >= m.repeats {
			if time.Since(m.lastShown) >= m.interval {
				m.current = m.msgs[m.rng.Intn(len(m.msgs))]
				m.lastShown = time.Now()
				m.doneCount = 0
				m.offset = 0
			}
		} else {
			m.offset++
			fullLength := len(m.current) + m.frameWidth
			if m.offset >= fullLength {
				m.offset = 0
				m.doneCount++
			}
		}
		return m, Tick()
	}
	return m, nil
}

func (m Model) View() string {
	if m.frameWidth <= 0 {
		return ""
	}

	spaces := strings.Repeat(" ", m.frameWidth)
	repeatText := spaces + m.current + spaces

	start := m.offset
	end := start + m.frameWidth
	if end > len(repeatText) {
		end = len(repeatText)
	}
	if start > len(repeatText) {
		start = len(repeatText)
	}

	return m.style.Render(repeatText[start:end])
}

func (m *Model) SetWidth(width int) {
	m.frameWidth = width
}
