package notify

import "time"

// Timer is a handle to a scheduled callback.
type Timer interface {
	Stop() bool
}

// Clock schedules deferred callbacks. The callback may run on another goroutine.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
