package ui

// Package ui contains the Fyne-based stopwatch widget. It turns pointer and
// keyboard input into stopwatch actions and window moves, keeps the time
// display sized to the window, and renders status, hints and settings. All UI
// strings are localized via Localization.
