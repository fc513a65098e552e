// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/chaos-arcade/internal/loop"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// clock run that produced it; ticks from a stopped run are dropped.
type TickMsg struct {
	Gen uint64
}

// gameClock drives a game's Tick through Bubble Tea. The loop goroutine
// only forwards messages; the game is ticked inside Update.
type gameClock struct {
	ctx    context.Context
	clk    clock.Clock
	handle *loop.Handle
	ticks  chan TickMsg
	gen    uint64
}

// newGameClock creates a stopped clock. Loops it starts end on their own
// when ctx is done.
func newGameClock(ctx context.Context, clk clock.Clock) *gameClock {
	if ctx == nil {
		ctx = context.Background()
	}
	if clk == nil {
		clk = clock.New()
	}
	return &gameClock{ctx: ctx, clk: clk}
}

// start replaces any running loop with a new one and returns the command
// that waits for its first tick.
func (c *gameClock) start(interval time.Duration) tea.Cmd {
	c.stop()

	c.gen++
	gen := c.gen
	ticks := make(chan TickMsg, 1)
	c.ticks = ticks

	c.handle = loop.Start(c.ctx, c.clk, interval, func(ctx context.Context) bool {
		select {
		case ticks <- TickMsg{Gen: gen}:
			return true
		case <-ctx.Done():
			return false
		}
	})
	return waitForTick(ticks)
}

// stop ends the loop and releases any pending waitForTick.
func (c *gameClock) stop() {
	if c.handle == nil {
		return
	}
	c.handle.Stop()
	close(c.ticks)
	c.handle = nil
	c.ticks = nil
}

func (c *gameClock) running() bool {
	return c.handle.Running()
}

// current reports whether msg came from the active run.
func (c *gameClock) current(msg TickMsg) bool {
	return c.handle != nil && msg.Gen == c.gen
}

// next waits for the following tick of the active run.
func (c *gameClock) next() tea.Cmd {
	if c.ticks == nil {
		return nil
	}
	return waitForTick(c.ticks)
}

func waitForTick(ticks <-chan TickMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ticks
		if !ok {
			return nil
		}
		return msg
	}
}
