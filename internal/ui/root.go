package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"golang.org/x/time/rate"

	"github.com/ytget/precision-stopwatch/internal/config"
	"github.com/ytget/precision-stopwatch/internal/fontfit"
	"github.com/ytget/precision-stopwatch/internal/gesture"
	"github.com/ytget/precision-stopwatch/internal/loop"
	"github.com/ytget/precision-stopwatch/internal/model"
)

// RootUI represents the stopwatch widget: the time display, the gesture
// surface over it and the chrome around it
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	opts         config.Options
	localization *Localization
	logger       *slog.Logger
	sched        loop.Scheduler

	stopwatch  *model.Stopwatch
	classifier *gesture.Classifier
	windows    *WindowManager
	frames     *frameLoop
	copier     *copier
	beep       func()

	// Widgets
	display *timeDisplay
	pad     *gesturePad
	exit    *exitButton
	dot     *canvas.Circle
	panel   *canvas.Rectangle
	hint    *canvas.Text

	settingsDialog *SettingsDialog

	dragLog   rate.Sometimes
	lastRunID string
}

// NewRootUI creates the widget and sets it as the window content. opts is the
// resolved configuration for this run.
func NewRootUI(window fyne.Window, app fyne.App, windows *WindowManager, sched loop.Scheduler, opts config.Options, logger *slog.Logger) *RootUI {
	return newRootUI(window, app, windows, sched, opts, logger, time.Now, liveMeasurer())
}

func newRootUI(window fyne.Window, app fyne.App, windows *WindowManager, sched loop.Scheduler, opts config.Options, logger *slog.Logger, clock func() time.Time, measurer fontfit.Measurer) *RootUI {
	if logger == nil {
		logger = slog.Default()
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     config.NewSettings(app),
		opts:         opts.Normalize(),
		localization: NewLocalization(),
		logger:       logger,
		sched:        sched,
		stopwatch:    model.NewStopwatch(clock),
		windows:      windows,
		dragLog:      rate.Sometimes{Interval: DragLogInterval},
	}
	ui.localization.SetLanguage(ui.opts.Language)
	ui.copier = newCopier(app.Clipboard, logger)
	ui.beep = newBeeper(logger).Beep
	ui.frames = newFrameLoop(ui.onFrame)
	ui.display = newTimeDisplay(measurer, sched, logger)

	ui.stopwatch.SetUpdateCallback(ui.onStatusChange)

	ui.setupUI()
	ui.classifier = ui.newClassifier()
	ui.pad.SetSink(ui.classifier)

	window.SetTitle(ui.localization.GetText(KeyAppTitle))
	window.Canvas().SetOnTypedKey(ui.onTypedKey)

	logger.Debug("stopwatch UI initialized",
		"long_press", ui.opts.LongPressDelay,
		"drag_threshold", ui.opts.DragThreshold,
		"language", ui.localization.GetCurrentLanguage())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.panel = canvas.NewRectangle(theme.Color(ColorNamePanel))
	ui.panel.CornerRadius = CornerRadius
	ui.panel.StrokeWidth = AccentStroke

	ui.dot = canvas.NewCircle(theme.Color(ColorNameStopped))

	ui.hint = canvas.NewText("", theme.Color(theme.ColorNamePlaceHolder))
	ui.hint.TextSize = HintTextSize
	ui.hint.Alignment = fyne.TextAlignCenter

	ui.exit = newExitButton(ui.windows.Close)
	ui.exit.Hide()

	ui.pad = newGesturePad(ui.windows.ToScreen)
	ui.pad.onHover = ui.onHover
	ui.pad.onSecondary = ui.onShowSettings
	ui.pad.onDetach = func() { ui.setLongPressCue(false) }

	ui.windows.OnResized(func(size fyne.Size) {
		ui.display.Layout(fyne.NewPos(0, 0), size)
	})

	layout := &stopwatchLayout{
		panel:  ui.panel,
		dot:    ui.dot,
		hint:   ui.hint,
		pad:    ui.pad,
		exit:   ui.exit,
		onSize: ui.windows.notifyResized,
	}
	// Stacking order: the pad covers the digits, the exit button covers the pad.
	content := container.New(layout, ui.panel, ui.display.text, ui.dot, ui.hint, ui.pad, ui.exit)

	ui.window.SetContent(content)
	ui.refreshStatus()
}

// newClassifier builds a classifier for the current options
func (ui *RootUI) newClassifier() *gesture.Classifier {
	return gesture.NewClassifier(ui.sched, ui.onGesture,
		gesture.WithLongPressDelay(ui.opts.LongPressDelay),
		gesture.WithDragThreshold(ui.opts.DragThreshold),
		gesture.WithExclusion(ui.overExit),
		gesture.WithListeners(ui.pad),
	)
}

// overExit reports whether a screen point lies on the exit button
func (ui *RootUI) overExit(p gesture.Point) bool {
	return ui.exit.Contains(ui.windows.ToCanvas(p))
}

// onGesture applies a classified gesture
func (ui *RootUI) onGesture(e gesture.Event) {
	switch e.Type {
	case gesture.EventClick:
		ui.stopwatch.Toggle()
	case gesture.EventDrag:
		ui.windows.MoveBy(e.DX, e.DY)
		ui.dragLog.Do(func() {
			st := ui.windows.State()
			ui.logger.Debug("window dragged", "dx", e.DX, "dy", e.DY, "x", st.X, "y", st.Y)
		})
	case gesture.EventLongPress:
		ui.setLongPressCue(true)
		ui.stopwatch.Reset()
		if ui.opts.BeepOnReset {
			ui.beep()
		}
	}
}

// onTypedKey handles keyboard shortcuts
func (ui *RootUI) onTypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace:
		ui.stopwatch.Toggle()
	case fyne.KeyR:
		ui.stopwatch.Reset()
	case fyne.KeyEscape:
		ui.windows.Close()
	case fyne.KeyC:
		ui.copier.Copy(ui.stopwatch.Text())
		ui.logger.Debug("reading copied", "text", ui.stopwatch.Text())
	case fyne.KeyS:
		ui.onShowSettings()
	}
}

// onStatusChange is called by the stopwatch after every Start, Stop and Reset
func (ui *RootUI) onStatusChange(status model.TimerStatus) {
	runID := ui.stopwatch.RunID()
	if runID == "" {
		runID = ui.lastRunID
	}
	ui.lastRunID = runID

	ui.logger.Info("stopwatch "+status.String(),
		"run_id", runID,
		"elapsed", model.HumanDuration(ui.stopwatch.Elapsed()))

	if status.IsRunning() {
		ui.frames.Start()
	} else {
		ui.frames.Stop()
	}
	ui.refreshStatus()
}

// onFrame refreshes the reading while running
func (ui *RootUI) onFrame() {
	ui.display.SetText(ui.stopwatch.Text())
}

// onHover shows the exit button while the pointer is over the widget
func (ui *RootUI) onHover(in bool) {
	if in {
		ui.exit.Show()
		return
	}
	ui.exit.Hide()
}

// setLongPressCue tints the digits while a long press is held
func (ui *RootUI) setLongPressCue(on bool) {
	if on {
		ui.display.SetColor(ColorNameLongPress)
		return
	}
	ui.display.SetColor(theme.ColorNameForeground)
}

// refreshStatus updates the reading, status colours and hint line
func (ui *RootUI) refreshStatus() {
	status := ui.stopwatch.Status()
	ui.display.SetText(ui.stopwatch.Text())

	accent := theme.Color(statusColorName(status))
	ui.dot.FillColor = accent
	ui.dot.Refresh()
	ui.panel.FillColor = theme.Color(ColorNamePanel)
	ui.panel.StrokeColor = accent
	ui.panel.Refresh()

	ui.hint.Text = ui.localization.GetText(hintKey(status))
	ui.hint.Color = theme.Color(theme.ColorNamePlaceHolder)
	if ui.opts.ShowInstructions {
		ui.hint.Show()
	} else {
		ui.hint.Hide()
	}
	ui.hint.Refresh()
}

func hintKey(status model.TimerStatus) string {
	switch status {
	case model.TimerStatusRunning:
		return KeyHintRunning
	case model.TimerStatusPaused:
		return KeyHintPaused
	default:
		return KeyHintStopped
	}
}

// onShowSettings opens the settings dialog
func (ui *RootUI) onShowSettings() {
	if ui.settingsDialog == nil {
		ui.settingsDialog = NewSettingsDialog(ui.settings, ui.window, ui.localization, ui.ApplyOptions)
	}
	ui.settingsDialog.Show()
}

// ApplyOptions switches to new options at runtime
func (ui *RootUI) ApplyOptions(opts config.Options) {
	ui.opts = opts.Normalize()

	// A gesture in flight belongs to the old configuration.
	ui.classifier.Cancel()
	ui.classifier = ui.newClassifier()
	ui.pad.SetSink(ui.classifier)

	ui.localization.SetLanguage(ui.opts.Language)
	// Rebuilt on next open with the new labels.
	ui.settingsDialog = nil
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.app.Settings().SetTheme(NewStopwatchTheme(ui.opts.ThemeMode))
	ui.windows.SetAlwaysOnTop(ui.opts.AlwaysOnTop)

	ui.setLongPressCue(false)
	ui.refreshStatus()
	ui.logger.Info("settings applied",
		"long_press", ui.opts.LongPressDelay,
		"drag_threshold", ui.opts.DragThreshold,
		"theme", ui.opts.ThemeMode,
		"language", ui.localization.GetCurrentLanguage())
}

// Stopwatch returns the timer behind the widget
func (ui *RootUI) Stopwatch() *model.Stopwatch {
	return ui.stopwatch
}
