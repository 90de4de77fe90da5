package platform

import (
	"errors"
	"math"
)

// ErrUnsupported is returned where no native window integration exists for
// the current platform or session. Callers degrade: moves are dropped and
// close falls back to the toolkit.
var ErrUnsupported = errors.New("platform: native window control unsupported")

// Window sizing
const (
	MinWindowWidth  = 200
	MinWindowHeight = 60

	// Default size floor; 200 * 9/16 rounded up
	DefaultMinHeight = 112

	// Share of the screen area the default window covers
	ScreenAreaDivisor = 7

	// Gap between the default window and the top-right screen corner
	ScreenMargin = 20
)

// Screen used when the real one cannot be queried
const (
	FallbackScreenWidth  = 1920
	FallbackScreenHeight = 1080
)

// WindowState is the window's geometry in screen pixels. It is owned by the
// window manager and updated as the window moves and resizes. It is not
// persisted; every launch recomputes it from the screen.
type WindowState struct {
	X, Y          int
	Width, Height int
}

// Translate moves the tracked position by a relative delta
func (s *WindowState) Translate(dx, dy int) {
	s.X += dx
	s.Y += dy
}

// Resize records a new size, clamped to the window minimum
func (s *WindowState) Resize(width, height int) {
	s.Width = max(width, MinWindowWidth)
	s.Height = max(height, MinWindowHeight)
}

// DefaultGeometry sizes the window to a 16:9 rectangle covering 1/7 of the
// screen and places it in the top-right corner
func DefaultGeometry(screenWidth, screenHeight int) WindowState {
	if screenWidth <= 0 || screenHeight <= 0 {
		screenWidth, screenHeight = FallbackScreenWidth, FallbackScreenHeight
	}

	// Area = 16k * 9k = 144k²
	targetArea := float64(screenWidth) * float64(screenHeight) / ScreenAreaDivisor
	k := math.Sqrt(targetArea / 144)

	width := max(int(math.Round(16*k)), MinWindowWidth)
	height := max(int(math.Round(9*k)), DefaultMinHeight)

	return WindowState{
		X:      screenWidth - width - ScreenMargin,
		Y:      ScreenMargin,
		Width:  width,
		Height: height,
	}
}

// NativeWindow controls a toolkit window through the OS windowing system
type NativeWindow interface {
	// MoveBy repositions the window by a relative delta, keeping its size
	MoveBy(dx, dy int) error
	// MoveTo places the window's top-left corner at x, y
	MoveTo(x, y int) error
	// Position returns the window's top-left corner
	Position() (x, y int, err error)
	// Pointer returns the pointer position in screen pixels
	Pointer() (x, y int, err error)
	// SetAlwaysOnTop asks the window manager to keep the window above others
	SetAlwaysOnTop(on bool) error
	// Close releases the connection to the windowing system
	Close() error
}
