// Package notify implements transient toast feedback: one active toast
// at a time, auto-dismissed after a fixed interval, or dismissed early
// by the user.
package notify

import (
	"sync"
	"time"
)

// DismissAfter is how long a toast stays up before it clears itself.
const DismissAfter = 3 * time.Second

// Kind classifies a toast.
type Kind string

const (
	KindInfo    Kind = "info"
	KindSuccess Kind = "success"
	KindWarning Kind = "warning"
	KindError   Kind = "error"
)

// Toast is one transient message.
type Toast struct {
	Kind Kind
	Text string
}

// Toaster holds at most one active toast. Show replaces the active
// toast and restarts the dismiss clock: the previous toast's scheduled
// dismissal is cancelled first so it cannot clear the new message.
//
// The optional OnChange callback fires with the new state (nil when the
// toast clears) so a view can re-render. It is called without the
// internal lock held.
type Toaster struct {
	OnChange func(*Toast)

	mu      sync.Mutex
	current *Toast
	timer   *time.Timer
}

// Show displays a toast and schedules its auto-dismiss.
func (t *Toaster) Show(kind Kind, text string) {
	toast := &Toast{Kind: kind, Text: text}

	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.current = toast
	t.timer = time.AfterFunc(DismissAfter, func() { t.dismissIf(toast) })
	t.mu.Unlock()

	t.changed(toast)
}

// Success is shorthand for Show(KindSuccess, text).
func (t *Toaster) Success(text string) { t.Show(KindSuccess, text) }

// Error is shorthand for Show(KindError, text).
func (t *Toaster) Error(text string) { t.Show(KindError, text) }

// Dismiss clears the active toast immediately (the user hit close).
// No-op when nothing is showing.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	if t.current == nil {
		t.mu.Unlock()
		return
	}
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.current = nil
	t.mu.Unlock()

	t.changed(nil)
}

// Current returns the active toast, or nil.
func (t *Toaster) Current() *Toast {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.current
}

// dismissIf clears the toast only if it is still the one the timer was
// armed for. A Stop that races the firing timer makes this a no-op
// instead of wiping a newer toast.
func (t *Toaster) dismissIf(toast *Toast) {
	t.mu.Lock()
	if t.current != toast {
		t.mu.Unlock()
		return
	}
	t.current = nil
	t.timer = nil
	t.mu.Unlock()

	t.changed(nil)
}

func (t *Toaster) changed(toast *Toast) {
	if t.OnChange != nil {
		t.OnChange(toast)
	}
}
