package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/chaos-arcade/internal/achievement"
	"github.com/vovakirdan/chaos-arcade/internal/core"
)

// toastRefresh is how often the view is redrawn while toasts are visible,
// so they disappear on time even when the game clock is stopped.
const toastRefresh = 250 * time.Millisecond

const toastMaxWidth = 40

type toastRefreshMsg struct{}

func refreshToasts() tea.Cmd {
	return tea.Tick(toastRefresh, func(time.Time) tea.Msg {
		return toastRefreshMsg{}
	})
}

// toastScheduler keeps at most one refresh pending.
type toastScheduler struct {
	pending bool
}

// schedule returns a refresh command if toasts are queued and none is pending.
func (s *toastScheduler) schedule(q *achievement.Queue) tea.Cmd {
	if s.pending || q.Len() == 0 {
		return nil
	}
	s.pending = true
	return refreshToasts()
}

// fired handles a delivered refresh and reschedules while toasts remain.
func (s *toastScheduler) fired(q *achievement.Queue) tea.Cmd {
	s.pending = false
	q.Active()
	return s.schedule(q)
}

// drawToasts overlays the live toasts in the top-right corner of dst,
// newest at the top.
func drawToasts(dst *core.Screen, toasts []achievement.Toast, theme Theme) {
	y := 1
	for i := len(toasts) - 1; i >= 0; i-- {
		msg := truncate(toasts[i].Message, core.Min(toastMaxWidth, dst.Width()-4))
		w := len([]rune(msg)) + 4
		box := core.NewRect(dst.Width()-w-1, y, w, 3)
		if box.Bottom() > dst.Height() {
			return
		}
		dst.DrawRect(box, ' ', core.ColorDefault)
		dst.DrawBox(box, theme.ToastBorder)
		dst.DrawTextColor(box.X+2, box.Y+1, msg, theme.ToastText)
		y += 3
	}
}

// renderToasts renders toasts as styled boxes stacked vertically.
func renderToasts(toasts []achievement.Toast, theme Theme) string {
	if len(toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(toasts))
	for i := len(toasts) - 1; i >= 0; i-- {
		boxes = append(boxes, theme.ToastBox.Render(truncate(toasts[i].Message, toastMaxWidth)))
	}
	return lipgloss.JoinVertical(lipgloss.Right, boxes...)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	if n == 1 {
		return "…"
	}
	return strings.TrimSpace(string(r[:n-1])) + "…"
}
