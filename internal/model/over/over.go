package over

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snaked/internal/render"
	"github.com/vinser/snaked/internal/state"
	"github.com/vinser/snaked/internal/style"
)

type status int

const (
	statusIdle status = iota
	statusEntering
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	status     status
	mode       string
	score      int
	highScores []state.HighScore
	textInput  textinput.Model
}

// PlayAgainMsg is sent when the user chooses to play again.
type PlayAgainMsg struct{}

func playAgainCmd() tea.Cmd {
	return func() tea.Msg {
		return PlayAgainMsg{}
	}
}

// QuitGameMsg is sent when the user chooses to quit from the game over screen.
type QuitGameMsg struct{}

func quitGameCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitGameMsg{}
	}
}

// SaveHighScoreMsg carries the nickname entered for a new high score.
type SaveHighScoreMsg struct {
	Nick string
}

func saveHighScoreCmd(nick string) tea.Cmd {
	return func() tea.Msg {
		return SaveHighScoreMsg{Nick: nick}
	}
}

func New(mode string, score int, highScores []state.HighScore, madeTable bool, width, height int) Model {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}

	ti := textinput.New()
	ti.Prompt = "Nickname: "
	ti.Placeholder = "Enter Your Nickname"
	ti.CharLimit = 26
	ti.Width = 30

	leftAlign := lipgloss.NewStyle().Align(lipgloss.Left)
	ti.PromptStyle = leftAlign
	ti.TextStyle = leftAlign
	ti.PlaceholderStyle = leftAlign

	status := statusIdle
	if madeTable {
		status = statusEntering
		ti.Focus()
	}

	return Model{
		width:      width,
		height:     height,
		status:     status,
		mode:       mode,
		score:      score,
		highScores: highScores,
		textInput:  ti,
	}
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
}

// SetHighScores refreshes the displayed table after the score was recorded.
func (m *Model) SetHighScores(highScores []state.HighScore) {
	m.highScores = highScores
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.status == statusEntering {
		switch msg := msg.(type) {
		case tea.KeyMsg:
			switch msg.Type {
			case tea.KeyEnter:
				nick := m.textInput.Value()
				m.status = statusIdle
				return m, saveHighScoreCmd(nick)
			case tea.KeyEsc:
				// Cancel entering, save with default name
				m.status = statusIdle
				return m, saveHighScoreCmd("")
			}
		}
		m.textInput, cmd = m.textInput.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "a":
			return m, playAgainCmd()
		case "q":
			return m, quitGameCmd()
		}
	}
	return m, nil
}

const footer = "a — play again, q — quit"

func (m Model) View() string {
	return render.Page("Game Over!", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	if m.status == statusEntering {
		var input []string
		input = append(input, style.HighScore.Render(fmt.Sprintf("New %s high score: %d !!!", m.mode, m.score)))
		input = append(input, "")
		input = append(input, m.textInput.View())
		input = append(input, "")
		input = append(input, "(press Enter to save, Esc to skip)")
		return lipgloss.JoinVertical(lipgloss.Left, input...)
	}

	var content []string
	content = append(content, fmt.Sprintf("Your %s score: %d", m.mode, m.score))
	content = append(content, "")

	if len(m.highScores) > 0 {
		content = append(content, "High Scores:")
		listFormat := fmt.Sprintf("%%d. %%%dd — %%s", scoreDigits(m.highScores))
		for i, hs := range m.highScores {
			content = append(content, fmt.Sprintf(listFormat, i+1, hs.Score, hs.Nick))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, content...)
}

func scoreDigits(hs []state.HighScore) int {
	digits := 1
	for _, h := range hs {
		if len(strconv.Itoa(h.Score)) > digits {
			digits = len(strconv.Itoa(h.Score))
		}
	}
	return digits
}
