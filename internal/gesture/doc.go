package gesture

// Package gesture classifies a single-pointer press/release cycle as a click,
// a drag that moves the window, or a long press. The long-press timeout runs
// on a loop.Scheduler so the state machine can be driven deterministically.
