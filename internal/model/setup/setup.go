package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/snaked/internal/render"
	"github.com/vinser/snaked/internal/state"
	"github.com/vinser/snaked/internal/style"
)

const (
	selectedMode = iota
	selectedNight
	selectedMute
	selectedReset
	settingsCount
)

var (
	modes  = []string{state.ModeChill, state.ModeClassic, state.ModeFrantic}
	nights = []string{state.NightNever, state.NightAlways, state.NightReal}
)

type Model struct {
	width      int
	height     int
	termWidth  int
	termHeight int

	mode  string
	night string
	mute  bool
	reset bool

	selectedSetting int
}

// SaveSettingsMsg carries the chosen settings back to the app.
type SaveSettingsMsg struct {
	Mode  string
	Night string
	Mute  bool
	Reset bool
}

func saveSettingsCmd(m Model) tea.Cmd {
	return func() tea.Msg {
		return SaveSettingsMsg{
			Mode:  m.mode,
			Night: m.night,
			Mute:  m.mute,
			Reset: m.reset,
		}
	}
}

// DiscardSettingsMsg signals that the user backed out without saving.
type DiscardSettingsMsg struct{}

func discardSettingsCmd() tea.Cmd {
	return func() tea.Msg {
		return DiscardSettingsMsg{}
	}
}

func New(mode, night string, mute bool, width, height int) Model {
	return Model{
		width:  width,
		height: height,
		mode:   mode,
		night:  night,
		mute:   mute,
	}
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
		case "up", "k":
			m.selectedSetting = (m.selectedSetting + settingsCount - 1) % settingsCount
		case "down", "j":
			m.selectedSetting = (m.selectedSetting + 1) % settingsCount
		case "left", "h":
			m.cycle(-1)
		case "right", "l", " ", "space":
			m.cycle(1)
		case "enter":
			return m, saveSettingsCmd(m)
		case "esc":
			return m, discardSettingsCmd()
		}
	}
	return m, nil
}

// cycle moves the selected setting by delta through its options.
func (m *Model) cycle(delta int) {
	switch m.selectedSetting {
	case selectedMode:
		m.mode = cycleOption(modes, m.mode, delta)
	case selectedNight:
		m.night = cycleOption(nights, m.night, delta)
	case selectedMute:
		m.mute = !m.mute
	case selectedReset:
		m.reset = !m.reset
	}
}

func cycleOption(options []string, current string, delta int) string {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	return options[(idx+delta+len(options))%len(options)]
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

const footer = "↑ ↓ — select, ← → — change, enter — save, esc — discard"

func (m Model) View() string {
	return render.Page("Settings", m.renderContent(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func (m Model) renderContent() string {
	rows, cols, speed := state.ModePreset(m.mode)
	lines := []string{
		fmt.Sprintf("Mode:  %s  (%d×%d board, %dms start tick)", m.mode, cols, rows, speed),
		fmt.Sprintf("Night: %s", m.night),
		fmt.Sprintf("Mute:  %s", onOff(m.mute)),
		fmt.Sprintf("Reset: %s  (wipes saved scores and settings)", onOff(m.reset)),
	}

	var b strings.Builder
	for i, line := range lines {
		if i == m.selectedSetting {
			b.WriteString(style.SetupItemSelected.Render("> " + line))
		} else {
			b.WriteString(style.SetupItem.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return lipgloss.JoinVertical(lipgloss.Left, b.String())
}
