package tui

import (
	"context"
	"fmt"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/chaos-arcade/internal/achievement"
	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// Options configure a shell session.
type Options struct {
	Context    context.Context    // Ends game clocks when done (nil = background)
	Runtime    core.RuntimeConfig // Initial screen size, frame rate override and seed
	ConfigPath string             // Custom game config ("" = default search order)
	Clock      clock.Clock        // Time source for game clocks and toasts (nil = wall clock)
	Logger     *log.Logger        // nil = log.Default()
	Chaos      bool               // Start with the chaos theme
}

// env is the state shared by every screen of one session: the toast queue
// games report achievements to, and its refresh scheduler.
type env struct {
	opts   Options
	logger *log.Logger
	toasts *achievement.Queue
	sched  *toastScheduler
}

func newEnv(opts Options) *env {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	qopts := []achievement.Option{
		achievement.WithHook(func(t achievement.Toast) {
			logger.Debug("achievement", "id", t.ID, "message", t.Message)
		}),
	}
	if opts.Clock != nil {
		qopts = append(qopts, achievement.WithClock(opts.Clock))
	}

	return &env{
		opts:   opts,
		logger: logger,
		toasts: achievement.NewQueue(qopts...),
		sched:  &toastScheduler{},
	}
}

// createGame instantiates a registered game wired to the session's toasts.
func (e *env) createGame(id string) (registry.Game, error) {
	return registry.Create(id, registry.Options{
		ConfigPath: e.opts.ConfigPath,
		Seed:       e.opts.Runtime.Seed,
		Notifier:   e.toasts,
		FrameRate:  e.opts.Runtime.TickRate,
	})
}

// SessionModel manages the full arcade session flow: menu -> game -> menu.
// It is the top-level model for both the local menu and SSH sessions.
type SessionModel struct {
	env      *env
	menu     MenuModel
	game     *GameModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(opts Options) SessionModel {
	e := newEnv(opts)
	return SessionModel{
		env:    e,
		menu:   NewMenuModel(e, opts.Chaos),
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	selected := m.menu.Selected()
	if selected == nil {
		return m, cmd
	}

	game, err := m.env.createGame(selected.GameID)
	if err != nil {
		m.env.logger.Error("could not start game", "game", selected.GameID, "error", err)
		m.env.toasts.Notify(fmt.Sprintf("Could not start %s.", selected.Title))
		m.menu.ClearSelection()
		return m, tea.Batch(cmd, m.env.sched.schedule(m.env.toasts))
	}

	gm := NewGameModel(m.env, game, m.menu.Chaos())
	gm.resize(m.width, m.height)
	m.game = &gm
	return m, tea.Batch(cmd, m.game.Init())
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game.Close()
		m.game = nil
		m.menu = NewMenuModel(m.env, m.menu.Chaos())
		m.menu.resize(m.width, m.height)
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Close stops any running game clock.
func (m SessionModel) Close() {
	if m.game != nil {
		m.game.Close()
	}
}

// RunMenu runs the interactive menu until the user quits.
func RunMenu(opts Options) error {
	p := tea.NewProgram(NewSessionModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	if s, ok := final.(SessionModel); ok {
		s.Close()
	}
	if err != nil {
		return fmt.Errorf("tui: run menu: %w", err)
	}
	return nil
}

// Play runs a single game until the user quits.
func Play(gameID string, opts Options) error {
	e := newEnv(opts)
	game, err := e.createGame(gameID)
	if err != nil {
		return err
	}

	model := NewGameModel(e, game, opts.Chaos)
	model.standalone = true
	model.resize(opts.Runtime.ScreenW, opts.Runtime.ScreenH)
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: play %s: %w", gameID, err)
	}
	return nil
}
