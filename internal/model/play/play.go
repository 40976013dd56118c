package play

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snaked/internal/daylight"
	"github.com/vinser/snaked/internal/dweller"
	"github.com/vinser/snaked/internal/game"
	"github.com/vinser/snaked/internal/grid"
	"github.com/vinser/snaked/internal/model/motd"
	"github.com/vinser/snaked/internal/score"
	"github.com/vinser/snaked/internal/sound"
	"github.com/vinser/snaked/internal/state"
	"github.com/vinser/snaked/internal/style"
)

type Model struct {
	state *state.State
	game  *game.Game
	score *score.Score
	board style.Board

	pendingKey string // newest direction key since the last tick
	paused     bool
	sb         *strings.Builder
	termWidth  int
	termHeight int
	motd       motd.Model
}

// TickMsg advances the game by one turn. The next tick is scheduled at the
// snake's current speed, so the pace tightens as the snake eats: the
// bubbletea equivalent of a blocking read with timeout = speed.
type TickMsg time.Time

func tick(speedMs int) tea.Cmd {
	return tea.Tick(time.Duration(speedMs)*time.Millisecond, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// GameOverMsg is sent when the snake collides with a wall or itself.
type GameOverMsg struct {
	Score int
}

func gameOverCmd(score int) tea.Cmd {
	return func() tea.Msg {
		return GameOverMsg{Score: score}
	}
}

// WindowSizeMsg is sent when the terminal is resized.
type WindowSizeMsg struct {
	Width  int
	Height int
}

// New returns a play model with a fresh game configured from the current
// mode and night settings.
func New(st *state.State, sc *score.Score) Model {
	rows, cols, speed := state.ModePreset(st.GameMode)
	size := grid.Size{Rows: rows, Cols: cols}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	return Model{
		state: st,
		game:  game.New(size, speed, rng),
		score: sc,
		board: style.NewBoard(boardIntensity(st)),
		sb:    &strings.Builder{},
		motd:  motd.New(cols, 1, 1*time.Minute),
	}
}

// boardIntensity maps the night option to an ambient light level.
func boardIntensity(st *state.State) float64 {
	switch st.NightOption {
	case state.NightAlways:
		return 0.0
	case state.NightReal:
		return daylight.Intensity(time.Now(), st.Location.Lat, st.Location.Lon)
	}
	return 1.0
}

func (m Model) Init() tea.Cmd {
	return tick(m.game.Snake().Speed())
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	// The MOTD ticker only runs while paused.
	if _, ok := msg.(motd.TickMsg); ok && m.paused {
		newMotd, motdCmd := m.motd.Update(msg)
		m.motd = newMotd
		return m, motdCmd
	}

	switch msg := msg.(type) {
	case WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "p":
			m.paused = !m.paused
			if m.paused {
				return m, m.motd.Init()
			}
			return m, tick(m.game.Snake().Speed())
		default:
			if m.paused {
				return m, nil
			}
			if dweller.DirectionFor(key) != dweller.No {
				// Buffered until the next tick: the game consumes at
				// most one direction event per turn.
				m.pendingKey = key
				m.state.SoundManager.PlayWithVolume(sound.STEP, -2)
			}
		}
		return m, nil

	case TickMsg:
		if m.paused {
			return m, nil
		}
		if m.pendingKey != "" {
			m.game.Input(m.pendingKey)
			m.pendingKey = ""
		}
		if !m.game.Update() {
			return m, gameOverCmd(m.game.Snake().Score())
		}
		if m.game.Snake().JustAte() {
			m.state.SoundManager.Play(sound.EAT)
		}
		m.score.Set(m.game.Snake().Score())
		return m, tick(m.game.Snake().Speed())
	}

	return m, nil
}

// Score returns the score tracker.
func (m Model) Score() *score.Score {
	return m.score
}

var styleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10")) // bright green

func (m *Model) renderHeader(width int) {
	var header string
	if m.paused {
		header = "PAUSED"
	} else {
		high := ""
		if m.score.GetHigh() > 0 {
			high = fmt.Sprintf("  High: %d by %s", m.score.GetHigh(), m.score.GetHighNick())
		}
		header = fmt.Sprintf("Mode: %s  Score: %d%s  Speed: %dms",
			m.state.GameMode, m.score.Get(), high, m.game.Snake().Speed())
	}
	m.sb.WriteString(style.TopPattern.Render(strings.Repeat("/", width+2)))
	m.sb.WriteString("\n")
	m.sb.WriteString(styleHeader.Render(header))
	m.sb.WriteString("\n")
}

// renderBoard draws the play area with a one-character border, the snake
// with distinct head/body/tail glyphs, and the food.
func (m *Model) renderBoard() {
	size := m.game.Size()
	snake := m.game.Snake()
	food := m.game.Food()

	cells := make(map[dweller.Position]string, snake.Len()+1)
	body := snake.Body()
	for i, seg := range body {
		switch i {
		case 0:
			cells[seg] = m.board.Head.Render(style.GlyphHead)
		case len(body) - 1:
			cells[seg] = m.board.Tail.Render(style.GlyphTail)
		default:
			cells[seg] = m.board.Body.Render(style.GlyphBody)
		}
	}
	cells[food.Pos()] = m.board.Food.Render(style.GlyphFood)

	border := style.Footer
	m.sb.WriteString(border.Render("┌" + strings.Repeat("─", size.Cols) + "┐"))
	m.sb.WriteString("\n")
	for y := 0; y < size.Rows; y++ {
		m.sb.WriteString(border.Render("│"))
		for x := 0; x < size.Cols; x++ {
			if glyph, ok := cells[dweller.Position{X: x, Y: y}]; ok {
				m.sb.WriteString(glyph)
			} else {
				m.sb.WriteString(style.GlyphEmpty)
			}
		}
		m.sb.WriteString(border.Render("│"))
		m.sb.WriteString("\n")
	}
	m.sb.WriteString(border.Render("└" + strings.Repeat("─", size.Cols) + "┘"))
	m.sb.WriteString("\n")
}

func (m *Model) renderFooter(width int) {
	var controls string
	if m.paused {
		m.sb.WriteString(m.motd.View())
		m.sb.WriteString("\n")
		controls = "p — resume, q — quit"
	} else {
		controls = "← ↑ ↓ → — move, p — pause, m — mute, q — quit"
	}
	m.sb.WriteString(style.Footer.Render(controls))
	if pad := width + 2 - len([]rune(controls)); pad > 0 {
		m.sb.WriteString(style.Footer.Render(strings.Repeat("/", pad)))
	}
}

// View returns the complete screen output with game entities and stats.
func (m *Model) View() string {
	m.sb.Reset()

	width := m.game.Size().Cols
	m.renderHeader(width)
	m.renderBoard()
	m.renderFooter(width)

	if m.termWidth > 0 && m.termHeight > 0 {
		return lipgloss.Place(m.termWidth, m.termHeight, lipgloss.Center, lipgloss.Center, m.sb.String())
	}
	return m.sb.String()
}
