// Package app wires the screen models together: a status state machine that
// routes messages to the splash, settings, about, play, game-over and quit
// screens.
package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/snaked/internal/flags"
	"github.com/vinser/snaked/internal/model/about"
	"github.com/vinser/snaked/internal/model/over"
	"github.com/vinser/snaked/internal/model/play"
	"github.com/vinser/snaked/internal/model/quit"
	"github.com/vinser/snaked/internal/model/setup"
	"github.com/vinser/snaked/internal/model/splash"
	"github.com/vinser/snaked/internal/score"
	"github.com/vinser/snaked/internal/sound"
	"github.com/vinser/snaked/internal/state"
)

type status uint

const (
	statusStartSplash status = iota
	statusDoSettings
	statusAbout
	statusGameplay
	statusGameOver
	statusQuitting
)

type Model struct {
	version string
	status  status
	state   *state.State
	score   *score.Score
	// models
	splash splash.Model
	setup  setup.Model
	about  about.Model
	play   play.Model
	over   over.Model
	quit   quit.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func New(version string) Model {
	st := getState()
	st.SoundManager.PlayLoop(sound.INTRO)

	sc := score.NewScore()
	top, nick := st.TopScore()
	sc.SetHigh(top)
	sc.SetHighNick(nick)

	width, height := getWidthHeight(st)
	return Model{
		version: version,
		status:  statusStartSplash,
		state:   st,
		score:   sc,
		splash:  splash.New(width, height),
	}
}

func getState() *state.State {
	st := state.Load()
	fl, ok := flags.Parse()
	if !ok {
		return st
	}
	if fl.Reset {
		sm := st.SoundManager
		st = state.New()
		st.SoundManager = sm
	}
	if fl.Mute {
		st.SetMute(true)
	}
	if fl.Mode != "" {
		st.GameMode = fl.Mode
	}
	if fl.Night != "" {
		st.NightOption = fl.Night
	}
	return st
}

// getWidthHeight returns the page canvas size derived from the current
// mode's board, with room for chrome rows.
func getWidthHeight(st *state.State) (int, int) {
	rows, cols, _ := state.ModePreset(st.GameMode)
	return cols + 2, rows + 6
}

func (m Model) Init() tea.Cmd {
	return m.splash.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		// The game-over screen may be collecting a nickname, so plain
		// letters pass through to it.
		if m.status == statusGameOver && key != "ctrl+c" {
			break
		}
		switch key {
		case "ctrl+c", "q": // quit from any screen
			m.status = statusQuitting
			m.state.SoundManager.StopAll()
			m.state.SoundManager.Play(sound.QUIT)
			width, height := getWidthHeight(m.state)
			m.quit = quit.New(width, height)
			m.quit.SetSize(m.termWidth, m.termHeight)
			return m, m.quit.Init()
		case "m": // mute/unmute
			m.state.SetMute(!m.state.Mute)
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		switch m.status {
		case statusStartSplash:
			m.splash.SetSize(msg.Width, msg.Height)
		case statusDoSettings:
			m.setup.SetSize(msg.Width, msg.Height)
		case statusAbout:
			m.about.SetSize(msg.Width, msg.Height)
		case statusGameplay:
			m.play, cmd = m.play.Update(play.WindowSizeMsg{Width: msg.Width, Height: msg.Height})
			cmds = append(cmds, cmd)
		case statusGameOver:
			m.over.SetSize(msg.Width, msg.Height)
		case statusQuitting:
			m.quit.SetSize(msg.Width, msg.Height)
		}
		cmds = append(cmds, tea.ClearScreen)
		return m, tea.Batch(cmds...)
	}

	switch m.status {
	case statusStartSplash:
		switch msg := msg.(type) {
		case splash.MakeSettingsMsg:
			m.status = statusDoSettings
			width, height := getWidthHeight(m.state)
			m.setup = setup.New(m.state.GameMode, m.state.NightOption, m.state.Mute, width, height)
			m.setup.SetSize(m.termWidth, m.termHeight)
		case splash.AboutMsg:
			m.status = statusAbout
			width, height := getWidthHeight(m.state)
			m.about = about.New(width, height)
			m.about.SetSize(m.termWidth, m.termHeight)
		case splash.TimedoutMsg:
			m.state.SoundManager.StopListed(sound.INTRO)
			m.startGameplay()
			cmds = append(cmds, m.play.Init())
		default:
			m.splash, cmd = m.splash.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusDoSettings:
		switch msg := msg.(type) {
		case setup.SaveSettingsMsg:
			if msg.Reset {
				sm := m.state.SoundManager
				m.state = state.New()
				m.state.SoundManager = sm
			}
			m.state.GameMode = msg.Mode
			m.state.NightOption = msg.Night
			m.state.SetMute(msg.Mute)
			top, nick := m.state.TopScore()
			m.score.SetHigh(top)
			m.score.SetHighNick(nick)
			m.state.SoundManager.StopListed(sound.INTRO)
			m.startGameplay()
			cmds = append(cmds, m.play.Init())
		case setup.DiscardSettingsMsg:
			m.state.SoundManager.StopListed(sound.INTRO)
			m.startGameplay()
			cmds = append(cmds, m.play.Init())
		default:
			m.setup, cmd = m.setup.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusStartSplash
			width, height := getWidthHeight(m.state)
			m.splash = splash.New(width, height)
			m.splash.SetSize(m.termWidth, m.termHeight)
			cmds = append(cmds, m.splash.Init())
		default:
			m.about, cmd = m.about.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusGameplay:
		switch msg := msg.(type) {
		case play.GameOverMsg:
			m.status = statusGameOver
			madeTable := m.state.IsHighScore(msg.Score)
			if madeTable {
				m.state.SoundManager.PlayWithVolume(sound.HIGH_SCORE, 1)
			} else {
				m.state.SoundManager.Play(sound.GAME_OVER)
			}
			width, height := getWidthHeight(m.state)
			m.over = over.New(m.state.GameMode, msg.Score, m.state.HighTable(), madeTable, width, height)
			m.over.SetSize(m.termWidth, m.termHeight)
			cmds = append(cmds, m.over.Init())
		default:
			m.play, cmd = m.play.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusGameOver:
		switch msg := msg.(type) {
		case over.SaveHighScoreMsg:
			m.state.RecordScore(msg.Nick, m.score.Get())
			if err := m.state.Save(); err != nil {
				log.Fatal(err)
			}
			top, nick := m.state.TopScore()
			m.score.SetHigh(top)
			m.score.SetHighNick(nick)
			m.over.SetHighScores(m.state.HighTable())
		case over.PlayAgainMsg:
			m.startGameplay()
			cmds = append(cmds, m.play.Init())
		case over.QuitGameMsg:
			m.status = statusQuitting
			m.state.SoundManager.StopAll()
			m.state.SoundManager.Play(sound.QUIT)
			width, height := getWidthHeight(m.state)
			m.quit = quit.New(width, height)
			m.quit.SetSize(m.termWidth, m.termHeight)
			cmds = append(cmds, m.quit.Init())
		default:
			m.over, cmd = m.over.Update(msg)
			cmds = append(cmds, cmd)
		}
	case statusQuitting:
		switch msg.(type) {
		case quit.TimedoutMsg:
			return m, tea.Quit
		default:
			m.quit, cmd = m.quit.Update(msg)
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// startGameplay builds a fresh play model for the current settings.
func (m *Model) startGameplay() {
	m.score.Reset()
	m.play = play.New(m.state, m.score)
	if m.termWidth > 0 && m.termHeight > 0 {
		m.play, _ = m.play.Update(play.WindowSizeMsg{Width: m.termWidth, Height: m.termHeight})
	}
	m.status = statusGameplay
}

func (m Model) View() string {
	switch m.status {
	case statusStartSplash:
		return m.splash.View()
	case statusDoSettings:
		return m.setup.View()
	case statusAbout:
		return m.about.View()
	case statusGameplay:
		return m.play.View()
	case statusGameOver:
		return m.over.View()
	case statusQuitting:
		return m.quit.View()
	}
	return ""
}
