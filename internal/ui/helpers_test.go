package ui

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/ytget/precision-stopwatch/internal/config"
	"github.com/ytget/precision-stopwatch/internal/fontfit"
	"github.com/ytget/precision-stopwatch/internal/loop"
	"github.com/ytget/precision-stopwatch/internal/platform"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

// fakeNative records host calls. Pointer is unavailable so positions come
// from the tracked window origin.
type fakeNative struct {
	x, y   int
	moves  [][2]int
	above  []bool
	closed int
}

func (f *fakeNative) MoveBy(dx, dy int) error {
	f.moves = append(f.moves, [2]int{dx, dy})
	f.x += dx
	f.y += dy
	return nil
}

func (f *fakeNative) MoveTo(x, y int) error {
	f.x, f.y = x, y
	return nil
}

func (f *fakeNative) Position() (int, int, error) { return f.x, f.y, nil }

func (f *fakeNative) Pointer() (int, int, error) { return 0, 0, platform.ErrUnsupported }

func (f *fakeNative) SetAlwaysOnTop(on bool) error {
	f.above = append(f.above, on)
	return nil
}

func (f *fakeNative) Close() error {
	f.closed++
	return nil
}

// monoMeasurer: glyphs are 0.6em wide, lines 1.2em tall
var monoMeasurer = fontfit.MeasurerFunc(func(text string, _ fontfit.Attrs, size float32) (float32, float32) {
	return float32(len([]rune(text))) * 0.6 * size, 1.2 * size
})

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// recordingHandler hands every record to the test, at all levels
type recordingHandler struct {
	records chan slog.Record
}

func newRecordingHandler() *recordingHandler {
	return &recordingHandler{records: make(chan slog.Record, 16)}
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.records <- r.Clone()
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }

func (h *recordingHandler) WithGroup(string) slog.Handler { return h }

type harness struct {
	ui     *RootUI
	app    fyne.App
	window fyne.Window
	native *fakeNative
	sched  *loop.Manual
	clock  *fakeClock
	beeps  int
}

func defaultTestOptions() config.Options {
	return config.Options{
		LongPressDelay:   500 * time.Millisecond,
		DragThreshold:    5,
		ThemeMode:        config.ThemeDark,
		Language:         "en",
		AlwaysOnTop:      true,
		ShowInstructions: true,
	}
}

func newHarness(t *testing.T, opts config.Options) *harness {
	t.Helper()

	a := test.NewApp()
	a.Settings().SetTheme(NewStopwatchTheme(config.ThemeDark))
	w := test.NewWindow(nil)
	w.Resize(fyne.NewSize(400, 200))

	h := &harness{
		app:    a,
		window: w,
		native: &fakeNative{},
		sched:  loop.NewManual(),
		clock:  &fakeClock{t: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)},
	}

	state := &platform.WindowState{X: 100, Y: 50, Width: 400, Height: 200}
	wm := NewWindowManager(w, state, discardLogger())
	wm.SetNativeOpener(func(uintptr) (platform.NativeWindow, error) {
		return h.native, nil
	})

	h.ui = newRootUI(w, a, wm, h.sched, opts, discardLogger(), h.clock.Now, monoMeasurer)
	h.ui.beep = func() { h.beeps++ }
	wm.AttachNative(opts.AlwaysOnTop)
	return h
}

func mouseEvent(x, y float32, button desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     button,
	}
}

func (h *harness) press(x, y float32) {
	h.ui.pad.MouseDown(mouseEvent(x, y, desktop.MouseButtonPrimary))
}

func (h *harness) move(x, y float32) {
	h.ui.pad.MouseMoved(mouseEvent(x, y, 0))
}

func (h *harness) release(x, y float32) {
	h.ui.pad.MouseUp(mouseEvent(x, y, desktop.MouseButtonPrimary))
}

func (h *harness) typeKey(name fyne.KeyName) {
	h.window.Canvas().OnTypedKey()(&fyne.KeyEvent{Name: name})
}
