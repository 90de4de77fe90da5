package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver"

	"github.com/ytget/precision-stopwatch/internal/gesture"
	"github.com/ytget/precision-stopwatch/internal/platform"
)

// NativeOpener connects to the platform window behind a handle
type NativeOpener func(handle uintptr) (platform.NativeWindow, error)

// WindowManager provides the host primitives the widget needs: relative
// moves, close, resize notification and always-on-top. Without a native host
// moves are dropped and close goes straight to the toolkit window.
type WindowManager struct {
	window fyne.Window
	state  *platform.WindowState
	native platform.NativeWindow
	open   NativeOpener
	logger *slog.Logger

	lastSize  fyne.Size
	onResized []func(fyne.Size)
	closed    bool
}

// NewWindowManager creates a manager for window. state is the geometry the
// window was created with and is kept current as the window moves.
func NewWindowManager(window fyne.Window, state *platform.WindowState, logger *slog.Logger) *WindowManager {
	if state == nil {
		state = &platform.WindowState{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WindowManager{
		window: window,
		state:  state,
		open:   platform.OpenNative,
		logger: logger,
	}
}

// SetNativeOpener replaces how the native host is opened
func (m *WindowManager) SetNativeOpener(open NativeOpener) {
	m.open = open
}

// AttachNative connects to the platform window once it exists, places it at
// the stored position and applies always-on-top. It must be called after the
// window is shown.
func (m *WindowManager) AttachNative(alwaysOnTop bool) {
	if m.native != nil || m.open == nil {
		return
	}

	var handle uintptr
	if nw, ok := m.window.(driver.NativeWindow); ok {
		nw.RunNative(func(ctx any) {
			switch c := ctx.(type) {
			case driver.X11WindowContext:
				handle = c.WindowHandle
			case *driver.X11WindowContext:
				handle = c.WindowHandle
			}
		})
	}

	native, err := m.open(handle)
	if err != nil {
		m.logger.Info("native window host unavailable, moves disabled", "error", err)
		return
	}
	m.native = native

	if err := native.MoveTo(m.state.X, m.state.Y); err != nil {
		m.logger.Warn("failed to place window", "x", m.state.X, "y", m.state.Y, "error", err)
	}
	// The window manager may adjust the request; track where it really is.
	if x, y, err := native.Position(); err == nil {
		m.state.X, m.state.Y = x, y
	}
	m.SetAlwaysOnTop(alwaysOnTop)
}

// HasNative reports whether a native host is attached
func (m *WindowManager) HasNative() bool {
	return m.native != nil
}

// State returns the tracked geometry
func (m *WindowManager) State() platform.WindowState {
	return *m.state
}

// MoveBy shifts the window by a relative offset in screen pixels
func (m *WindowManager) MoveBy(dx, dy int) {
	if m.native == nil || (dx == 0 && dy == 0) {
		return
	}
	if err := m.native.MoveBy(dx, dy); err != nil {
		m.logger.Debug("window move failed", "dx", dx, "dy", dy, "error", err)
		return
	}
	m.state.Translate(dx, dy)
}

// SetAlwaysOnTop keeps the window above others when on is set
func (m *WindowManager) SetAlwaysOnTop(on bool) {
	if m.native == nil {
		return
	}
	if err := m.native.SetAlwaysOnTop(on); err != nil {
		m.logger.Warn("failed to set always-on-top", "on", on, "error", err)
	}
}

// Close releases the native connection and closes the window. Safe to call
// more than once.
func (m *WindowManager) Close() {
	if m.closed {
		return
	}
	m.closed = true

	if m.native != nil {
		if err := m.native.Close(); err != nil {
			m.logger.Debug("native host close failed", "error", err)
		}
		m.native = nil
	}
	m.window.Close()
}

// OnResized registers a callback for completed size changes
func (m *WindowManager) OnResized(cb func(fyne.Size)) {
	m.onResized = append(m.onResized, cb)
}

// notifyResized is called by the root layout with the content size
func (m *WindowManager) notifyResized(size fyne.Size) {
	if size == m.lastSize {
		return
	}
	m.lastSize = size

	scale := m.scale()
	m.state.Resize(int(size.Width*scale), int(size.Height*scale))
	for _, cb := range m.onResized {
		cb(size)
	}
}

// ToScreen converts a canvas position to screen pixels. With a native host
// the live pointer position is used, which stays correct while the window
// moves under it.
func (m *WindowManager) ToScreen(pos fyne.Position) gesture.Point {
	if m.native != nil {
		if x, y, err := m.native.Pointer(); err == nil {
			return gesture.Point{X: float32(x), Y: float32(y)}
		}
	}
	scale := m.scale()
	return gesture.Point{
		X: float32(m.state.X) + pos.X*scale,
		Y: float32(m.state.Y) + pos.Y*scale,
	}
}

// ToCanvas converts a screen point back to canvas coordinates
func (m *WindowManager) ToCanvas(p gesture.Point) fyne.Position {
	scale := m.scale()
	return fyne.NewPos(
		(p.X-float32(m.state.X))/scale,
		(p.Y-float32(m.state.Y))/scale,
	)
}

func (m *WindowManager) scale() float32 {
	if c := m.window.Canvas(); c != nil {
		if s := c.Scale(); s > 0 {
			return s
		}
	}
	return 1
}
