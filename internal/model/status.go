package model

// TimerStatus represents the lifecycle state of the stopwatch
type TimerStatus string

const (
	// TimerStatusStopped means the stopwatch is at zero and idle
	TimerStatusStopped TimerStatus = "stopped"

	// TimerStatusRunning means elapsed time is advancing
	TimerStatusRunning TimerStatus = "running"

	// TimerStatusPaused means the stopwatch was stopped with time on the clock
	TimerStatusPaused TimerStatus = "paused"
)

// String returns the string representation of TimerStatus
func (ts TimerStatus) String() string {
	return string(ts)
}

// IsRunning returns true while elapsed time is advancing
func (ts TimerStatus) IsRunning() bool {
	return ts == TimerStatusRunning
}

// HasElapsed returns true if the stopwatch holds a non-zero reading, either
// advancing or frozen
func (ts TimerStatus) HasElapsed() bool {
	return ts == TimerStatusRunning || ts == TimerStatusPaused
}
