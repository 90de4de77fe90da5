package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/precision-stopwatch/internal/gesture"
	"github.com/ytget/precision-stopwatch/internal/model"
)

func TestClickTogglesStopwatch(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.press(50, 50)
	h.release(50, 50)
	assert.Equal(t, model.TimerStatusRunning, h.ui.Stopwatch().Status())
	assert.True(t, h.ui.frames.Running())

	h.clock.Advance(1230 * time.Millisecond)
	h.press(50, 50)
	h.release(50, 50)
	assert.Equal(t, model.TimerStatusPaused, h.ui.Stopwatch().Status())
	assert.False(t, h.ui.frames.Running())
	assert.Equal(t, "01.23", h.ui.display.text.Text)
}

func TestDragMovesWindowWithoutClick(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.press(50, 50)
	h.move(60, 50)
	h.release(60, 50)

	require.Len(t, h.native.moves, 1)
	assert.Equal(t, [2]int{10, 0}, h.native.moves[0])
	assert.Equal(t, 110, h.ui.windows.State().X)
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status(), "a drag is never a click")
	assert.Empty(t, h.sched.Pending())
}

func TestLongPressResetsWithoutClick(t *testing.T) {
	opts := defaultTestOptions()
	opts.BeepOnReset = true
	h := newHarness(t, opts)

	h.typeKey(fyne.KeySpace)
	h.clock.Advance(3 * time.Second)

	h.press(50, 50)
	h.sched.Advance(500 * time.Millisecond)

	assert.Equal(t, gesture.StateLongPressing, h.ui.classifier.State())
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status())
	assert.Equal(t, "00.00", h.ui.display.text.Text)
	assert.Equal(t, theme.Color(ColorNameLongPress), h.ui.display.text.Color)
	assert.Equal(t, 1, h.beeps)

	h.release(50, 50)
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status(), "release after a long press is not a click")
	assert.Equal(t, theme.Color(theme.ColorNameForeground), h.ui.display.text.Color)
}

func TestLongPressWithoutBeep(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.press(50, 50)
	h.sched.Advance(time.Second)
	h.release(50, 50)

	assert.Zero(t, h.beeps)
}

func TestLeaveCancelsGesture(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.press(50, 50)
	h.ui.pad.MouseOut()
	h.release(50, 50)
	h.sched.Advance(time.Second)

	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status())
	assert.Equal(t, gesture.StateIdle, h.ui.classifier.State())
}

func TestRepeatedDownKeepsListenersBalanced(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.press(50, 50)
	h.press(52, 52)
	assert.Equal(t, 1, h.ui.pad.attached)
	assert.Equal(t, 1, h.sched.Pending())

	h.release(52, 52)
	assert.Zero(t, h.ui.pad.attached)
	assert.False(t, h.ui.pad.tracking)
	assert.Equal(t, model.TimerStatusRunning, h.ui.Stopwatch().Status())
}

func TestMovesIgnoredWithoutPress(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.move(10, 10)
	h.move(90, 90)
	h.release(90, 90)

	assert.Empty(t, h.native.moves)
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status())
}

func TestSecondaryButtonIsNotAGesture(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.ui.pad.MouseDown(mouseEvent(50, 50, desktop.MouseButtonSecondary))
	assert.Equal(t, gesture.StateIdle, h.ui.classifier.State())
}

func TestPressOnExitButtonIsIgnored(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.ui.pad.MouseIn(mouseEvent(50, 50, 0))
	require.True(t, h.ui.exit.Visible())

	pos := h.ui.exit.Position()
	h.press(pos.X+ExitButtonSize/2, pos.Y+ExitButtonSize/2)
	assert.Equal(t, gesture.StateIdle, h.ui.classifier.State())

	h.ui.exit.Tapped(&fyne.PointEvent{})
	assert.Equal(t, 1, h.native.closed)
}

func TestHoverShowsExitButton(t *testing.T) {
	h := newHarness(t, defaultTestOptions())
	assert.False(t, h.ui.exit.Visible())

	h.ui.pad.MouseIn(mouseEvent(10, 10, 0))
	assert.True(t, h.ui.exit.Visible())

	h.ui.pad.MouseOut()
	assert.False(t, h.ui.exit.Visible())
}

func TestKeyboardShortcuts(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.typeKey(fyne.KeySpace)
	assert.Equal(t, model.TimerStatusRunning, h.ui.Stopwatch().Status())

	h.clock.Advance(65230 * time.Millisecond)
	h.typeKey(fyne.KeySpace)
	assert.Equal(t, model.TimerStatusPaused, h.ui.Stopwatch().Status())
	assert.Equal(t, "1:05.23", h.ui.display.text.Text)

	h.typeKey(fyne.KeyR)
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status())
	assert.Equal(t, "00.00", h.ui.display.text.Text)

	h.typeKey(fyne.KeyEscape)
	assert.Equal(t, 1, h.native.closed)
}

func TestStatusChromeFollowsTimer(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	cases := []struct {
		key    fyne.KeyName
		status model.TimerStatus
		color  fyne.ThemeColorName
		hint   string
	}{
		{fyne.KeySpace, model.TimerStatusRunning, ColorNameRunning, KeyHintRunning},
		{fyne.KeySpace, model.TimerStatusPaused, ColorNamePaused, KeyHintPaused},
		{fyne.KeyR, model.TimerStatusStopped, ColorNameStopped, KeyHintStopped},
	}

	for _, tc := range cases {
		h.clock.Advance(time.Second)
		h.typeKey(tc.key)
		assert.Equal(t, tc.status, h.ui.Stopwatch().Status())
		assert.Equal(t, theme.Color(tc.color), h.ui.dot.FillColor, tc.status.String())
		assert.Equal(t, theme.Color(tc.color), h.ui.panel.StrokeColor, tc.status.String())
		assert.Equal(t, h.ui.localization.GetText(tc.hint), h.ui.hint.Text)
	}
}

func TestInstructionsCanBeHidden(t *testing.T) {
	opts := defaultTestOptions()
	opts.ShowInstructions = false
	h := newHarness(t, opts)

	assert.False(t, h.ui.hint.Visible())

	opts.ShowInstructions = true
	h.ui.ApplyOptions(opts)
	assert.True(t, h.ui.hint.Visible())
}

func TestApplyOptionsRebuildsClassifier(t *testing.T) {
	h := newHarness(t, defaultTestOptions())
	h.typeKey(fyne.KeySpace)

	opts := defaultTestOptions()
	opts.LongPressDelay = time.Second
	opts.AlwaysOnTop = false
	opts.Language = "ru"
	h.ui.ApplyOptions(opts)

	h.press(50, 50)
	h.sched.Advance(500 * time.Millisecond)
	assert.Equal(t, model.TimerStatusRunning, h.ui.Stopwatch().Status(), "old delay no longer applies")

	h.sched.Advance(500 * time.Millisecond)
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status())
	h.release(50, 50)

	assert.Equal(t, []bool{true, false}, h.native.above)
	assert.Equal(t, "ru", h.ui.localization.GetCurrentLanguage())
	assert.Equal(t, "Точный секундомер", h.window.Title())
}

func TestApplyOptionsCancelsGestureInFlight(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.press(50, 50)
	h.ui.ApplyOptions(defaultTestOptions())
	h.sched.Advance(time.Second)
	h.release(50, 50)

	assert.Zero(t, h.ui.pad.attached)
	assert.Equal(t, model.TimerStatusStopped, h.ui.Stopwatch().Status())
}

func TestWindowResizeRefitsDisplay(t *testing.T) {
	h := newHarness(t, defaultTestOptions())
	h.ui.windows.notifyResized(fyne.NewSize(400, 200))
	small := h.ui.display.text.TextSize

	h.ui.windows.notifyResized(fyne.NewSize(800, 400))

	assert.Equal(t, fyne.NewSize(800, 400), h.ui.display.box)
	assert.Greater(t, h.ui.display.text.TextSize, small)
}

func TestSettingsDialogFollowsLanguage(t *testing.T) {
	h := newHarness(t, defaultTestOptions())

	h.ui.onShowSettings()
	require.NotNil(t, h.ui.settingsDialog)
	assert.Equal(t, "Always on top", h.ui.settingsDialog.alwaysOnTopCheck.Text)

	opts := defaultTestOptions()
	opts.Language = "ru"
	h.ui.ApplyOptions(opts)
	h.ui.onShowSettings()

	assert.Equal(t, "Поверх всех окон", h.ui.settingsDialog.alwaysOnTopCheck.Text)
}
