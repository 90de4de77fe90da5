package platform

// Package platform contains the host windowing glue the toolkit does not
// provide: default window geometry from the screen size, and native window
// moves, stacking and pointer queries (X11 via xgb on Linux).
