// Package notify holds the transient notification queue shown to the user.
package notify

import (
	"slices"
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is immutable once pushed. A zero Timeout means it stays until dismissed.
type Notification struct {
	ID      uint64
	Title   string
	Message string
	Kind    Kind
	Timeout time.Duration
}

// Timeouts are the per-kind defaults used by Push.
type Timeouts struct {
	Info    time.Duration
	Success time.Duration
	Error   time.Duration
}

// DefaultTimeouts keeps errors on screen longer than everything else.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Info:    4 * time.Second,
		Success: 4 * time.Second,
		Error:   6 * time.Second,
	}
}

func (t Timeouts) For(kind Kind) time.Duration {
	switch kind {
	case KindSuccess:
		return t.Success
	case KindError:
		return t.Error
	default:
		return t.Info
	}
}

type entry struct {
	Notification
	timer Timer
}

// Center owns the notification queue and the expiry timer of each entry.
type Center struct {
	mu       sync.Mutex
	clock    Clock
	timeouts Timeouts
	lastID   uint64
	entries  []entry
	onExpire func(id uint64)
}

// Option configures a Center.
type Option func(*Center)

func WithClock(c Clock) Option { return func(n *Center) { n.clock = c } }

func WithTimeouts(t Timeouts) Option { return func(n *Center) { n.timeouts = t } }

func NewCenter(opts ...Option) *Center {
	c := &Center{clock: realClock{}, timeouts: DefaultTimeouts()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnExpire registers a hook called after a timer removed a notification.
// It runs on the timer's goroutine, outside the center's lock.
func (c *Center) OnExpire(fn func(id uint64)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onExpire = fn
}

// Push appends a notification with the default timeout for its kind.
func (c *Center) Push(title, message string, kind Kind) uint64 {
	return c.PushTimeout(title, message, kind, c.timeouts.For(kind))
}

// PushTimeout appends a notification and, for a positive timeout, schedules
// its dismissal. It returns the notification id.
func (c *Center) PushTimeout(title, message string, kind Kind, timeout time.Duration) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastID++
	id := c.lastID
	if timeout < 0 {
		timeout = 0
	}
	e := entry{Notification: Notification{ID: id, Title: title, Message: message, Kind: kind, Timeout: timeout}}
	if timeout > 0 {
		e.timer = c.clock.AfterFunc(timeout, func() { c.expire(id) })
	}
	c.entries = append(c.entries, e)
	return id
}

// Dismiss removes the notification and cancels its timer. Unknown or already
// removed ids are ignored; the result reports whether anything was removed.
func (c *Center) Dismiss(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remove(id)
}

// DismissLatest removes the most recently pushed notification still shown.
func (c *Center) DismissLatest() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.entries) == 0 {
		return false
	}
	return c.remove(c.entries[len(c.entries)-1].ID)
}

// Snapshot returns the visible notifications in push order.
func (c *Center) Snapshot() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Notification
	}
	return out
}

func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *Center) expire(id uint64) {
	c.mu.Lock()
	removed := c.remove(id)
	hook := c.onExpire
	c.mu.Unlock()
	if removed && hook != nil {
		hook(id)
	}
}

func (c *Center) remove(id uint64) bool {
	i := slices.IndexFunc(c.entries, func(e entry) bool { return e.ID == id })
	if i < 0 {
		return false
	}
	if t := c.entries[i].timer; t != nil {
		t.Stop()
	}
	c.entries = slices.Delete(c.entries, i, i+1)
	return true
}
