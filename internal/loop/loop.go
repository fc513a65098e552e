// Package loop runs fixed-interval simulation clocks as owned handles.
// Every clock is started by Start and ended by Handle.Stop; nothing is
// scheduled on ambient timers.
package loop

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// Func is called once per interval. Returning false ends the loop.
// ctx is cancelled when the handle is stopped, so implementations that
// block (for example on a channel send) must select on ctx.Done().
type Func func(ctx context.Context) bool

// Handle owns a running loop.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start begins calling fn every interval on a new goroutine, using clk as the
// time source. The loop ends when fn returns false, ctx is cancelled, or
// Stop is called.
func Start(ctx context.Context, clk clock.Clock, interval time.Duration, fn Func) *Handle {
	if clk == nil {
		clk = clock.New()
	}
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	ticker := clk.Ticker(interval)
	go func() {
		defer close(h.done)
		defer ticker.Stop()
		defer cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				// A stop that raced with the tick wins.
				if ctx.Err() != nil {
					return
				}
				if !fn(ctx) {
					return
				}
			}
		}
	}()

	return h
}

// Stop cancels the loop and waits until its goroutine has exited.
// After Stop returns, fn will not be called again. Safe to call repeatedly
// and on a nil handle. Must not be called from inside fn; return false instead.
func (h *Handle) Stop() {
	if h == nil {
		return
	}
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed once the loop goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Running reports whether the loop goroutine is still alive.
func (h *Handle) Running() bool {
	if h == nil {
		return false
	}
	select {
	case <-h.done:
		return false
	default:
		return true
	}
}
