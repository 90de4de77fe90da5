package model

// Package model defines the stopwatch domain: the timer state machine, its
// status enum, and elapsed-time formatting. Nothing here depends on the UI.
