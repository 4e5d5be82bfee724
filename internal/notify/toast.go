// Package notify shows short-lived messages that dismiss themselves.
package notify

import (
	"sync"
	"time"
)

// DefaultTTL is how long a toast stays visible
const DefaultTTL = 1200 * time.Millisecond

// Toast displays one message at a time. Showing a new message replaces the
// current one and restarts the dismissal timer.
type Toast struct {
	ttl  time.Duration
	show func(msg string)
	hide func()

	mu      sync.Mutex
	timer   *time.Timer
	seq     uint64
	message string
}

// NewToast creates a toast that calls show on display and hide after ttl.
// A non-positive ttl uses DefaultTTL. show runs inside Show; hide runs on the
// timer goroutine with no lock held.
func NewToast(ttl time.Duration, show func(msg string), hide func()) *Toast {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Toast{ttl: ttl, show: show, hide: hide}
}

// Show displays msg and schedules its dismissal
func (t *Toast) Show(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.seq++
	seq := t.seq
	t.message = msg
	t.show(msg)

	t.timer = time.AfterFunc(t.ttl, func() {
		t.mu.Lock()
		// a newer Show owns the display
		if t.seq != seq {
			t.mu.Unlock()
			return
		}
		t.message = ""
		t.timer = nil
		t.mu.Unlock()

		// hide may wait on a UI loop that is itself calling Show
		t.hide()
	})
}

// Message returns the visible message, empty when hidden
func (t *Toast) Message() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.message
}

// Stop cancels a pending dismissal without hiding
func (t *Toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.seq++
}
