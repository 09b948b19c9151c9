package notify_test

import (
	"testing"
	"time"

	"github.com/idilsaglam/reviews/internal/notify"
	"github.com/idilsaglam/reviews/internal/notify/notifytest"
)

func newCenter() (*notify.Center, *notifytest.Clock) {
	clock := &notifytest.Clock{}
	return notify.NewCenter(notify.WithClock(clock)), clock
}

func TestPushDefaultTimeouts(t *testing.T) {
	c, clock := newCenter()
	c.Push("Info", "hello", notify.KindInfo)
	c.Push("Done", "saved", notify.KindSuccess)
	c.Push("Error", "broken", notify.KindError)

	want := []time.Duration{4 * time.Second, 4 * time.Second, 6 * time.Second}
	timers := clock.Timers()
	if len(timers) != len(want) {
		t.Fatalf("scheduled %d timers, want %d", len(timers), len(want))
	}
	for i, d := range want {
		if timers[i].Delay != d {
			t.Errorf("timer %d delay = %v, want %v", i, timers[i].Delay, d)
		}
	}
	notes := c.Snapshot()
	if notes[2].Timeout != 6*time.Second || notes[2].Kind != notify.KindError {
		t.Fatalf("unexpected error notification: %+v", notes[2])
	}
}

func TestIDsAreMonotonic(t *testing.T) {
	c, _ := newCenter()
	a := c.Push("a", "", notify.KindInfo)
	c.Dismiss(a)
	b := c.Push("b", "", notify.KindInfo)
	if b <= a {
		t.Fatalf("id %d reused or went backwards after %d", b, a)
	}
}

func TestZeroTimeoutPersists(t *testing.T) {
	c, clock := newCenter()
	c.PushTimeout("Sticky", "stays", notify.KindInfo, 0)
	if len(clock.Timers()) != 0 {
		t.Fatal("zero timeout should not schedule a timer")
	}
	if c.Len() != 1 {
		t.Fatalf("len = %d, want 1", c.Len())
	}
}

func TestTimerExpiryRemovesAndNotifies(t *testing.T) {
	c, clock := newCenter()
	var expired []uint64
	c.OnExpire(func(id uint64) { expired = append(expired, id) })

	first := c.Push("one", "", notify.KindInfo)
	second := c.Push("two", "", notify.KindInfo)
	clock.Timers()[0].Fire()

	notes := c.Snapshot()
	if len(notes) != 1 || notes[0].ID != second {
		t.Fatalf("after expiry: %+v", notes)
	}
	if len(expired) != 1 || expired[0] != first {
		t.Fatalf("expire hook calls = %v", expired)
	}
}

func TestDismissIsIdempotent(t *testing.T) {
	c, clock := newCenter()
	keep := c.Push("keep", "", notify.KindInfo)
	drop := c.Push("drop", "", notify.KindError)
	last := c.Push("last", "", notify.KindSuccess)

	if !c.Dismiss(drop) {
		t.Fatal("first dismiss should remove the notification")
	}
	if !clock.Timers()[1].Stopped() {
		t.Fatal("dismiss should cancel the pending timer")
	}
	if c.Dismiss(drop) {
		t.Fatal("second dismiss should be a no-op")
	}
	// A timer racing with its own cancellation must not remove anything else.
	clock.Timers()[1].Fire()

	notes := c.Snapshot()
	if len(notes) != 2 || notes[0].ID != keep || notes[1].ID != last {
		t.Fatalf("unexpected notifications after dismissals: %+v", notes)
	}
}

func TestDismissAfterExpiry(t *testing.T) {
	c, clock := newCenter()
	id := c.Push("gone", "", notify.KindInfo)
	other := c.Push("other", "", notify.KindInfo)
	clock.Timers()[0].Fire()
	if c.Dismiss(id) {
		t.Fatal("dismiss after expiry should be a no-op")
	}
	if c.Len() != 1 || c.Snapshot()[0].ID != other {
		t.Fatal("dismiss after expiry removed another notification")
	}
}

func TestDismissLatest(t *testing.T) {
	c, _ := newCenter()
	first := c.Push("first", "", notify.KindInfo)
	c.Push("second", "", notify.KindInfo)
	if !c.DismissLatest() {
		t.Fatal("expected a notification to be dismissed")
	}
	if notes := c.Snapshot(); len(notes) != 1 || notes[0].ID != first {
		t.Fatalf("unexpected notifications: %+v", notes)
	}
	c.DismissLatest()
	if c.DismissLatest() {
		t.Fatal("empty center should report nothing dismissed")
	}
}

func TestRealClockExpires(t *testing.T) {
	c := notify.NewCenter()
	done := make(chan uint64, 1)
	c.OnExpire(func(id uint64) { done <- id })
	id := c.PushTimeout("quick", "", notify.KindInfo, 10*time.Millisecond)
	select {
	case got := <-done:
		if got != id {
			t.Fatalf("expired id = %d, want %d", got, id)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("notification did not expire")
	}
	if c.Len() != 0 {
		t.Fatal("expired notification still listed")
	}
}
