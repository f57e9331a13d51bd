package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/timefighter/internal/config"
	"github.com/vovakirdan/timefighter/internal/core"
	"github.com/vovakirdan/timefighter/internal/game"
	"github.com/vovakirdan/timefighter/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

// Options configures a Model.
type Options struct {
	Game         config.GameConfig
	Runtime      core.RuntimeConfig
	Store        *storage.Store // nil disables score recording
	Logger       *log.Logger
	Player       string // recorded with each score
	AllowSuspend bool   // ctrl+z suspends the process (local terminals only)
}

// Model is the Bubble Tea model for the game screen.
//
// It owns the game session. On every lifecycle boundary (terminal resize,
// suspend/resume, quit) the session is saved, dropped and, when play
// continues, replaced by a new session restored from the snapshot. An idle
// game is replaced by a freshly reset one.
type Model struct {
	opts     Options
	session  *game.Session
	saved    *game.Snapshot // held while suspended
	screen   *core.Screen
	input    core.InputFrame
	keys     KeyMap
	help     help.Model
	lastTick time.Time
	quitting bool
}

// NewModel creates a new Bubble Tea model with a fresh game.
func NewModel(opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.Suspend.SetEnabled(opts.AllowSuspend)

	return Model{
		opts:    opts,
		session: game.NewSession(opts.Game, opts.Runtime, nil, opts.Logger),
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-helpHeight, 0)),
		input:   core.NewInputFrame(),
		keys:    keys,
		help:    help.New(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.ResumeMsg:
		return m.handleResume()

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		if m.session != nil {
			m.session.Save()
			m.session = nil
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Suspend):
		m.saved = m.saveSession()
		m.session = nil
		return m, tea.Suspend
	}

	m.input.Set(m.keys.Action(msg))
	return m, nil
}

// handleResize rebuilds the session for the new terminal size, carrying the
// round over through a snapshot.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	changed := msg.Width != m.opts.Runtime.ScreenW || msg.Height != m.opts.Runtime.ScreenH

	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	if changed && m.session != nil {
		saved := m.saveSession()
		m.session = game.NewSession(m.opts.Game, m.opts.Runtime, saved, m.opts.Logger)
	}
	return m, nil
}

// saveSession stops the current session and returns the round to carry over.
// An idle game has nothing in progress and yields nil, so the next session
// starts from a reset instead of a running countdown.
func (m Model) saveSession() *game.Snapshot {
	if m.session == nil {
		return nil
	}
	idle := m.session.State().Phase == game.PhaseIdle
	snap := m.session.Save()
	if idle {
		return nil
	}
	return &snap
}

// handleResume restores the round saved on suspend.
func (m Model) handleResume() (tea.Model, tea.Cmd) {
	if m.session == nil {
		m.session = game.NewSession(m.opts.Game, m.opts.Runtime, m.saved, m.opts.Logger)
		m.saved = nil
	}
	m.lastTick = time.Time{}
	return m, nil
}

// handleTick advances the game by the real time since the previous frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.session == nil {
		return m, tickCmd(m.opts.Runtime)
	}

	var dt time.Duration
	if !m.lastTick.IsZero() {
		dt = max(now.Sub(m.lastTick), 0)
	}
	m.lastTick = now

	result := m.session.Step(m.input, dt)
	m.input.Clear()

	if result.GameOver {
		m.recordScore(result.FinalScore)
	}

	return m, tickCmd(m.opts.Runtime)
}

// recordScore saves a finished round. Best-effort: the game continues
// without storage.
func (m Model) recordScore(score int) {
	if m.opts.Store == nil || score <= 0 {
		return
	}
	if _, err := m.opts.Store.SaveScore(game.ID, m.opts.Player, score); err != nil {
		m.opts.Logger.Warn("could not save score", "score", score, "error", err)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.session == nil {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Session returns the running game session, or nil while suspended.
func (m Model) Session() *game.Session {
	return m.session
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	opts.AllowSuspend = true
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())

	_, err := p.Run()
	return err
}
