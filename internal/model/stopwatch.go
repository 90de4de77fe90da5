package model

import (
	"time"

	"github.com/google/uuid"
)

// Stopwatch measures elapsed wall time across start/stop cycles.
// It is not safe for concurrent use; the UI goroutine owns it.
type Stopwatch struct {
	now           func() time.Time
	recordedStart time.Time     // zero while stopped
	elapsed       time.Duration // frozen reading while paused
	status        TimerStatus
	runID         string
	onUpdate      func(TimerStatus) // callback for UI updates
}

// NewStopwatch creates a stopped stopwatch. A nil clock uses time.Now.
func NewStopwatch(now func() time.Time) *Stopwatch {
	if now == nil {
		now = time.Now
	}
	return &Stopwatch{
		now:    now,
		status: TimerStatusStopped,
	}
}

// SetUpdateCallback sets the function called after every Start, Stop and Reset
func (s *Stopwatch) SetUpdateCallback(callback func(TimerStatus)) {
	s.onUpdate = callback
}

// Start begins or resumes timing. Accumulated elapsed time is preserved.
func (s *Stopwatch) Start() {
	if s.status == TimerStatusRunning {
		return
	}

	now := s.now()
	if s.elapsed == 0 {
		s.recordedStart = now
		s.runID = newRunID()
	} else {
		s.recordedStart = now.Add(-s.elapsed)
	}
	s.status = TimerStatusRunning
	s.notifyUpdate()
}

// Stop pauses timing and keeps the reading for a later resume.
func (s *Stopwatch) Stop() {
	if s.status != TimerStatusRunning {
		return
	}

	s.elapsed = s.now().Sub(s.recordedStart)
	s.status = TimerStatusPaused
	s.notifyUpdate()
}

// Reset returns to zero and stopped. It always notifies so the display
// refreshes even when already at zero.
func (s *Stopwatch) Reset() {
	s.elapsed = 0
	s.recordedStart = time.Time{}
	s.status = TimerStatusStopped
	s.notifyUpdate()
}

// Toggle starts a stopped or paused stopwatch and pauses a running one
func (s *Stopwatch) Toggle() {
	if s.status == TimerStatusRunning {
		s.Stop()
		return
	}
	s.Start()
}

// Elapsed returns the current reading
func (s *Stopwatch) Elapsed() time.Duration {
	if s.status == TimerStatusRunning {
		return s.now().Sub(s.recordedStart)
	}
	return s.elapsed
}

// Status returns the current lifecycle state
func (s *Stopwatch) Status() TimerStatus {
	return s.status
}

// Text returns the current reading formatted for display
func (s *Stopwatch) Text() string {
	return FormatTime(s.Elapsed())
}

// RunID identifies the current start-to-reset run, or "" when none has started
func (s *Stopwatch) RunID() string {
	if s.status == TimerStatusStopped {
		return ""
	}
	return s.runID
}

func (s *Stopwatch) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate(s.status)
	}
}

func newRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
