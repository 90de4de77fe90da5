package ui

import (
	"errors"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/precision-stopwatch/internal/fontfit"
	"github.com/ytget/precision-stopwatch/internal/loop"
	"github.com/ytget/precision-stopwatch/internal/model"
)

// displayAttrs is the style the digits are drawn and measured with
var displayAttrs = fontfit.Attrs{Bold: true, Monospace: true}

// liveMeasurer measures text with the toolkit's own text shaper
func liveMeasurer() fontfit.Measurer {
	return fontfit.MeasurerFunc(func(text string, attrs fontfit.Attrs, size float32) (float32, float32) {
		s := fyne.MeasureText(text, size, fyne.TextStyle{Bold: attrs.Bold, Monospace: attrs.Monospace})
		return s.Width, s.Height
	})
}

// timeDisplay renders the reading as large as the window allows
type timeDisplay struct {
	text   *canvas.Text
	fitter *fontfit.Fitter
	sched  loop.Scheduler
	logger *slog.Logger

	pos   fyne.Position
	box   fyne.Size
	retry loop.Timer
}

func newTimeDisplay(m fontfit.Measurer, sched loop.Scheduler, logger *slog.Logger) *timeDisplay {
	text := canvas.NewText(model.FormatTime(0), theme.Color(theme.ColorNameForeground))
	text.TextStyle = fyne.TextStyle{Bold: displayAttrs.Bold, Monospace: displayAttrs.Monospace}
	text.Alignment = fyne.TextAlignCenter
	text.TextSize = fontfit.DefaultOptions().MinSize

	return &timeDisplay{
		text:   text,
		fitter: fontfit.New(m, displayAttrs, fontfit.DefaultOptions()),
		sched:  sched,
		logger: logger,
	}
}

// SetText shows a new reading. The fitter cache makes same-length updates cheap.
func (d *timeDisplay) SetText(s string) {
	if d.text.Text == s {
		return
	}
	d.text.Text = s
	d.refit()
	d.text.Refresh()
}

// SetColor changes the digit colour
func (d *timeDisplay) SetColor(c fyne.ThemeColorName) {
	d.text.Color = theme.Color(c)
	d.text.Refresh()
}

// Layout places the display in the given area and refits
func (d *timeDisplay) Layout(pos fyne.Position, size fyne.Size) {
	d.pos = pos
	if size != d.box {
		d.box = size
		d.fitter.Invalidate()
	}
	d.refit()
}

// DisplayFitBox returns the area the digits may use in a width x height
// window once padding and chrome are removed. An unsized window is passed
// through so the fitter can report it; a window too small for the insets
// still gets a minimum-size font.
func DisplayFitBox(width, height float32) (float32, float32) {
	if width <= 0 || height <= 0 {
		return width, height
	}
	return max(width-DisplayInsetWidth, 1), max(height-DisplayInsetHeight, 1)
}

func (d *timeDisplay) refit() {
	w, h := DisplayFitBox(d.box.Width, d.box.Height)
	size, err := d.fitter.Fit(d.text.Text, w, h)
	if errors.Is(err, fontfit.ErrNotLaidOut) {
		d.scheduleRetry()
		return
	}
	d.cancelRetry()

	if size != d.text.TextSize {
		d.logger.Debug("display font fitted", "size", size, "width", w, "height", h, "probes", d.fitter.LastSearchProbes())
		d.text.TextSize = size
	}
	d.place()
}

// place centres the text vertically in its area
func (d *timeDisplay) place() {
	ts := d.text.MinSize()
	d.text.Resize(fyne.NewSize(d.box.Width, ts.Height))
	d.text.Move(fyne.NewPos(d.pos.X, d.pos.Y+(d.box.Height-ts.Height)/2))
}

func (d *timeDisplay) scheduleRetry() {
	if d.retry != nil {
		return
	}
	d.retry = d.sched.AfterFunc(FitRetryDelay, func() {
		d.retry = nil
		d.refit()
		d.text.Refresh()
	})
}

func (d *timeDisplay) cancelRetry() {
	if d.retry != nil {
		d.retry.Stop()
		d.retry = nil
	}
}
