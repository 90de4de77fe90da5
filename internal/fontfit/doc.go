package fontfit

// Package fontfit sizes a single line of text to fill a share of a box. The
// search is independent of any rendering surface: text metrics come from a
// Measurer, either the UI toolkit's or the headless OpenType one here.
