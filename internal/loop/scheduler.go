package loop

import (
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It is safe to call more than once and
	// reports whether the call prevented the callback from running.
	Stop() bool
}

// Scheduler runs a callback once after a delay.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Dispatcher hands a callback over to the UI goroutine (fyne.Do in the app).
type Dispatcher func(func())

// timeScheduler is backed by time.AfterFunc and marshals fires through a Dispatcher.
type timeScheduler struct {
	dispatch Dispatcher
}

// NewScheduler creates a scheduler whose callbacks run through dispatch.
// A nil dispatch runs callbacks on the timer goroutine.
func NewScheduler(dispatch Dispatcher) Scheduler {
	if dispatch == nil {
		dispatch = func(f func()) { f() }
	}
	return &timeScheduler{dispatch: dispatch}
}

// AfterFunc arms a one-shot timer
func (s *timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &dispatchedTimer{}
	t.timer = time.AfterFunc(d, func() {
		s.dispatch(func() {
			// Stop may have raced with the dispatch hop.
			if t.cancelled() {
				return
			}
			f()
		})
	})
	return t
}

type dispatchedTimer struct {
	mu      sync.Mutex
	stopped bool
	timer   *time.Timer
}

func (t *dispatchedTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	return t.timer.Stop()
}

func (t *dispatchedTimer) cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}
