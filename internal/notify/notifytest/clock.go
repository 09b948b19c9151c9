// Package notifytest provides a manually driven clock for notification tests.
package notifytest

import (
	"sync"
	"time"

	"github.com/idilsaglam/reviews/internal/notify"
)

// Clock records scheduled callbacks and runs them only when told to.
type Clock struct {
	mu     sync.Mutex
	timers []*Timer
}

// Timer is a scheduled callback on a Clock.
type Timer struct {
	clock   *Clock
	Delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (c *Clock) AfterFunc(d time.Duration, f func()) notify.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &Timer{clock: c, Delay: d, fn: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *Timer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Fire runs the callback even if the timer was stopped, simulating a timer
// that raced with its cancellation.
func (t *Timer) Fire() {
	t.clock.mu.Lock()
	t.fired = true
	fn := t.fn
	t.clock.mu.Unlock()
	fn()
}

// Stopped reports whether Stop was called.
func (t *Timer) Stopped() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	return t.stopped
}

// Timers returns every timer scheduled so far, in order.
func (c *Clock) Timers() []*Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Timer, len(c.timers))
	copy(out, c.timers)
	return out
}

// Last returns the most recently scheduled timer, or nil.
func (c *Clock) Last() *Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.timers) == 0 {
		return nil
	}
	return c.timers[len(c.timers)-1]
}

// FireAll fires every timer that has neither fired nor been stopped.
func (c *Clock) FireAll() {
	for _, t := range c.Timers() {
		t.clock.mu.Lock()
		pending := !t.stopped && !t.fired
		t.clock.mu.Unlock()
		if pending {
			t.Fire()
		}
	}
}
