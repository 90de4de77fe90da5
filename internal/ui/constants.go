package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconClose = "×"
)

// Layout sizing
const (
	// Space the time display gives up to padding, the exit button, the
	// status dot and the hint line
	DisplayInsetWidth  float32 = 40
	DisplayInsetHeight float32 = 60

	StatusDotSize    float32 = 10
	CornerRadius     float32 = 12
	AccentStroke     float32 = 2
	HintTextSize     float32 = 11
	ExitButtonSize   float32 = 24
	SettingsMinWidth float32 = 320
)

// Delays
const (
	// Retry interval while the window has no size yet
	FitRetryDelay = 50 * time.Millisecond

	// Drag debug lines are throttled to this interval
	DragLogInterval = 250 * time.Millisecond
)
