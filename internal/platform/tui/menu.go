package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chaos-arcade/internal/core"
	"github.com/vovakirdan/chaos-arcade/internal/registry"
)

// Chaos mode toast messages.
const (
	MsgChaosOn  = "Chaos mode unlocked. Nothing will ever be the same."
	MsgChaosOff = "Chaos mode off. Boring, but safe."
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	env      *env
	items    []MenuItem
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	konami   konami
	chaos    bool
	theme    Theme
	quitting bool
	selected *MenuItem // Set when user selects a game
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(e *env, chaos bool) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{GameID: g.ID, Title: g.Title})
	}

	m := MenuModel{
		env:   e,
		items: items,
		keys:  DefaultMenuKeyMap(),
		help:  help.New(),
		chaos: chaos,
		theme: ThemeFor(chaos),
	}
	m.resize(e.opts.Runtime.ScreenW, e.opts.Runtime.ScreenH)
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return m.env.sched.schedule(m.env.toasts)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case toastRefreshMsg:
		return m, m.env.sched.fired(m.env.toasts)
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.konami.Feed(msg.String()) {
		return m, m.toggleChaos()
	}

	switch m.keys.MapKey(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}

	case MenuActionChaos:
		return m, m.toggleChaos()
	}

	return m, nil
}

func (m *MenuModel) toggleChaos() tea.Cmd {
	m.chaos = !m.chaos
	m.theme = ThemeFor(m.chaos)

	msg := MsgChaosOff
	if m.chaos {
		msg = MsgChaosOn
	}
	m.env.logger.Info("chaos mode toggled", "enabled", m.chaos)
	m.env.toasts.Notify(msg)
	return m.env.sched.schedule(m.env.toasts)
}

func (m *MenuModel) resize(w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	m.width = w
	m.height = h
	m.help.Width = w
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.theme.MenuTitle.Render("C H A O S   A R C A D E"))
	b.WriteString("\n\n")
	b.WriteString(m.theme.MenuDescription.Render("Select a game"))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(m.theme.MenuItemActive.Render(fmt.Sprintf("> %s <", item.Title)))
		} else {
			b.WriteString(m.theme.MenuItemNormal.Render(fmt.Sprintf("  %s  ", item.Title)))
		}
		b.WriteString("\n")
	}

	if len(m.items) == 0 {
		b.WriteString(m.theme.MenuDescription.Render("No games available."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.theme.Help.Render(m.help.View(m.keys)))

	body := lipgloss.NewStyle().Align(lipgloss.Center).Render(b.String())
	toasts := renderToasts(m.env.toasts.Active(), m.theme)

	if m.width <= 0 || m.height <= 0 {
		if toasts == "" {
			return body
		}
		return lipgloss.JoinVertical(lipgloss.Right, toasts, body)
	}

	if toasts == "" {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	top := lipgloss.PlaceHorizontal(m.width, lipgloss.Right, toasts)
	rest := core.Max(m.height-lipgloss.Height(top), 0)
	return lipgloss.JoinVertical(lipgloss.Left, top,
		lipgloss.Place(m.width, rest, lipgloss.Center, lipgloss.Center, body))
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// ClearSelection forgets the last selection.
func (m *MenuModel) ClearSelection() {
	m.selected = nil
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Chaos reports whether chaos mode is on.
func (m MenuModel) Chaos() bool {
	return m.chaos
}
