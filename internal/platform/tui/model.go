package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// GameModel is the Bubble Tea model for running one game.
//
// Keys are applied to the game immediately and clock ticks arrive as
// TickMsg, so the game is only ever touched from Update. After every change
// the clock is synced with State().Running: started when the game wants
// time to pass and stopped when it does not.
type GameModel struct {
	env        *env
	game       registry.Game
	screen     *core.Screen
	keys       GameKeyMap
	help       help.Model
	theme      Theme
	clock      *gameClock
	state      core.GameState
	quitting   bool
	backToMenu bool
	standalone bool // esc quits instead of returning to a menu
}

// NewGameModel creates a model for game. The game must report achievements
// to e.toasts.
func NewGameModel(e *env, game registry.Game, chaos bool) GameModel {
	w, h := e.opts.Runtime.ScreenW, e.opts.Runtime.ScreenH
	if w <= 0 || h <= 0 {
		def := core.DefaultConfig()
		w, h = def.ScreenW, def.ScreenH
	}

	m := GameModel{
		env:    e,
		game:   game,
		screen: core.NewScreen(w, h),
		keys:   keyMapFor(game.ID()),
		help:   help.New(),
		theme:  ThemeFor(chaos),
		clock:  newGameClock(e.opts.Context, e.opts.Clock),
		state:  game.State(),
	}
	m.resize(w, h)
	return m
}

// Init starts the game clock if the game is already running.
func (m GameModel) Init() tea.Cmd {
	m.env.logger.Debug("game started", "game", m.game.ID())
	return m.sync(nil)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if !m.clock.current(msg) {
			return m, nil
		}
		m.game.Tick()
		return m, m.sync(m.clock.next())

	case toastRefreshMsg:
		return m, m.env.sched.fired(m.env.toasts)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		m.clock.stop()
		return m, tea.Quit
	case core.ActionBack:
		m.clock.stop()
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	m.game.Apply(action)
	return m, m.sync(nil)
}

// sync refreshes the cached state and starts or stops the clock to match
// it. next is the pending wait for the running clock, kept only when the
// clock keeps running.
func (m *GameModel) sync(next tea.Cmd) tea.Cmd {
	prev := m.state
	m.state = m.game.State()

	if m.state.GameOver && !prev.GameOver {
		m.env.logger.Debug("game over", "game", m.game.ID(), "score", m.state.Score)
	}

	var cmd tea.Cmd
	switch {
	case m.state.Running && !m.clock.running():
		cmd = m.clock.start(m.game.TickInterval())
	case !m.state.Running && m.clock.running():
		m.clock.stop()
	default:
		cmd = next
	}

	return tea.Batch(cmd, m.env.sched.schedule(m.env.toasts))
}

// resize fits the game screen to the terminal, keeping one line for help.
func (m *GameModel) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.screen.Resize(w, core.Max(h-1, 1))
	m.help.Width = w
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	drawToasts(m.screen, m.env.toasts.Active(), m.theme)

	return RenderScreen(m.screen, m.theme.Palette) + "\n" + m.theme.Help.Render(m.help.View(m.keys))
}

// State returns the game state as of the last update.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Close stops the game clock.
func (m GameModel) Close() {
	m.clock.stop()
}
