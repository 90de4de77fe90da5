package loop

import (
	"sort"
	"time"
)

// Manual is a deterministic Scheduler driven by Advance. Tests use it in place
// of the wall clock; callbacks run synchronously inside Advance.
type Manual struct {
	now     time.Duration
	seq     int
	pending []*manualTimer
}

// NewManual creates a manual scheduler at time zero.
func NewManual() *Manual {
	return &Manual{}
}

type manualTimer struct {
	m    *Manual
	at   time.Duration
	seq  int
	fn   func()
	done bool
}

// AfterFunc registers f to run once Advance moves past d.
func (m *Manual) AfterFunc(d time.Duration, f func()) Timer {
	m.seq++
	t := &manualTimer{m: m, at: m.now + d, seq: m.seq, fn: f}
	m.pending = append(m.pending, t)
	return t
}

// Stop cancels a pending timer.
func (t *manualTimer) Stop() bool {
	if t.done {
		return false
	}
	t.done = true
	t.m.remove(t)
	return true
}

func (m *Manual) remove(t *manualTimer) {
	for i, p := range m.pending {
		if p == t {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward and fires every timer that came due, in
// deadline order.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.at
		next.done = true
		m.remove(next)
		next.fn()
	}
	m.now = target
}

func (m *Manual) nextDue(target time.Duration) *manualTimer {
	if len(m.pending) == 0 {
		return nil
	}
	sort.SliceStable(m.pending, func(i, j int) bool {
		if m.pending[i].at == m.pending[j].at {
			return m.pending[i].seq < m.pending[j].seq
		}
		return m.pending[i].at < m.pending[j].at
	})
	if m.pending[0].at > target {
		return nil
	}
	return m.pending[0]
}

// Pending returns the number of armed timers.
func (m *Manual) Pending() int {
	return len(m.pending)
}

// Now returns the manual clock's elapsed time since creation.
func (m *Manual) Now() time.Duration {
	return m.now
}
