// Package achievement collects achievement messages raised by games and
// exposes them as short-lived toasts for the shell to display.
package achievement

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

// DefaultTTL is how long a toast stays visible.
const DefaultTTL = 3500 * time.Millisecond

// DefaultLimit caps the number of toasts kept at once; the oldest is
// dropped first.
const DefaultLimit = 5

// Toast is a single visible achievement message.
type Toast struct {
	ID        uint64
	Message   string
	ExpiresAt time.Time
}

// Queue is an expiring toast list. It satisfies core.Notifier so it can be
// handed to games directly. Notify never blocks on the reader.
type Queue struct {
	mu     sync.Mutex
	clk    clock.Clock
	ttl    time.Duration
	limit  int
	nextID uint64
	toasts []Toast
	onPush func(Toast)
}

// Option configures a Queue.
type Option func(*Queue)

// WithClock sets the time source (tests use clock.NewMock()).
func WithClock(clk clock.Clock) Option {
	return func(q *Queue) { q.clk = clk }
}

// WithTTL sets how long each toast lives.
func WithTTL(ttl time.Duration) Option {
	return func(q *Queue) { q.ttl = ttl }
}

// WithLimit caps the number of live toasts.
func WithLimit(n int) Option {
	return func(q *Queue) { q.limit = n }
}

// WithHook registers a callback invoked for every new toast, after it is
// queued. Used for logging.
func WithHook(fn func(Toast)) Option {
	return func(q *Queue) { q.onPush = fn }
}

// NewQueue creates an empty toast queue.
func NewQueue(opts ...Option) *Queue {
	q := &Queue{
		clk:   clock.New(),
		ttl:   DefaultTTL,
		limit: DefaultLimit,
	}
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Notify queues msg as a new toast.
func (q *Queue) Notify(msg string) {
	q.mu.Lock()
	q.nextID++
	t := Toast{
		ID:        q.nextID,
		Message:   msg,
		ExpiresAt: q.clk.Now().Add(q.ttl),
	}
	q.toasts = append(q.toasts, t)
	if q.limit > 0 && len(q.toasts) > q.limit {
		q.toasts = append(q.toasts[:0], q.toasts[len(q.toasts)-q.limit:]...)
	}
	hook := q.onPush
	q.mu.Unlock()

	if hook != nil {
		hook(t)
	}
}

// Active drops expired toasts and returns a copy of the live ones, oldest first.
func (q *Queue) Active() []Toast {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := q.clk.Now()
	live := q.toasts[:0]
	for _, t := range q.toasts {
		if now.Before(t.ExpiresAt) {
			live = append(live, t)
		}
	}
	q.toasts = live

	out := make([]Toast, len(live))
	copy(out, live)
	return out
}

// Len returns the number of queued toasts, including expired ones not yet pruned.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.toasts)
}

// Clear removes every toast.
func (q *Queue) Clear() {
	q.mu.Lock()
	q.toasts = q.toasts[:0]
	q.mu.Unlock()
}
