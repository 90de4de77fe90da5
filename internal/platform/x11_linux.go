//go:build linux && !android

package platform

import (
	"fmt"
	"os"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/xproto"
)

// EWMH atoms
const (
	atomWMState      = "_NET_WM_STATE"
	atomWMStateAbove = "_NET_WM_STATE_ABOVE"
)

// _NET_WM_STATE client message actions
const (
	wmStateRemove = 0
	wmStateAdd    = 1
	// Source indication: normal application
	wmSourceApplication = 1
)

// X11Window drives a toolkit window through the X server
type X11Window struct {
	conn   *xgb.Conn
	window xproto.Window
	root   xproto.Window
}

// OpenNative connects to the X server for the given X11 window handle
func OpenNative(handle uintptr) (NativeWindow, error) {
	if handle == 0 || os.Getenv("DISPLAY") == "" {
		return nil, ErrUnsupported
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("connect to X server: %w", err)
	}

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return &X11Window{
		conn:   conn,
		window: xproto.Window(handle),
		root:   screen.Root,
	}, nil
}

// ScreenSize returns the default X screen size in pixels
func ScreenSize() (int, int, error) {
	if os.Getenv("DISPLAY") == "" {
		return 0, 0, ErrUnsupported
	}

	conn, err := xgb.NewConn()
	if err != nil {
		return 0, 0, fmt.Errorf("connect to X server: %w", err)
	}
	defer conn.Close()

	screen := xproto.Setup(conn).DefaultScreen(conn)
	return int(screen.WidthInPixels), int(screen.HeightInPixels), nil
}

// MoveBy repositions the window relative to where the server has it now
func (w *X11Window) MoveBy(dx, dy int) error {
	if dx == 0 && dy == 0 {
		return nil
	}
	x, y, err := w.Position()
	if err != nil {
		return err
	}
	return w.MoveTo(x+dx, y+dy)
}

// MoveTo places the window at an absolute root position
func (w *X11Window) MoveTo(x, y int) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY)
	values := []uint32{uint32(int32(x)), uint32(int32(y))}
	if err := xproto.ConfigureWindowChecked(w.conn, w.window, mask, values).Check(); err != nil {
		return fmt.Errorf("configure window: %w", err)
	}
	return nil
}

// Position returns the window origin in root coordinates
func (w *X11Window) Position() (int, int, error) {
	reply, err := xproto.TranslateCoordinates(w.conn, w.window, w.root, 0, 0).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("translate coordinates: %w", err)
	}
	return int(reply.DstX), int(reply.DstY), nil
}

// Pointer returns the pointer position in root coordinates
func (w *X11Window) Pointer() (int, int, error) {
	reply, err := xproto.QueryPointer(w.conn, w.root).Reply()
	if err != nil {
		return 0, 0, fmt.Errorf("query pointer: %w", err)
	}
	return int(reply.RootX), int(reply.RootY), nil
}

// SetAlwaysOnTop toggles _NET_WM_STATE_ABOVE through the window manager
func (w *X11Window) SetAlwaysOnTop(on bool) error {
	state, err := w.atom(atomWMState)
	if err != nil {
		return err
	}
	above, err := w.atom(atomWMStateAbove)
	if err != nil {
		return err
	}

	action := uint32(wmStateRemove)
	if on {
		action = wmStateAdd
	}

	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: w.window,
		Type:   state,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			action, uint32(above), 0, wmSourceApplication, 0,
		}),
	}
	mask := uint32(xproto.EventMaskSubstructureRedirect | xproto.EventMaskSubstructureNotify)
	if err := xproto.SendEventChecked(w.conn, false, w.root, mask, string(ev.Bytes())).Check(); err != nil {
		return fmt.Errorf("send %s: %w", atomWMState, err)
	}
	return nil
}

// Close disconnects from the X server
func (w *X11Window) Close() error {
	w.conn.Close()
	return nil
}

func (w *X11Window) atom(name string) (xproto.Atom, error) {
	reply, err := xproto.InternAtom(w.conn, false, uint16(len(name)), name).Reply()
	if err != nil {
		return 0, fmt.Errorf("intern atom %s: %w", name, err)
	}
	return reply.Atom, nil
}
