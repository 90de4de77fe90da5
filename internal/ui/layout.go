package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/precision-stopwatch/internal/platform"
)

// Chrome offsets from the window edge
const (
	chromeMargin float32 = 6
	hintMargin   float32 = 4
)

// exitButton is a tap-only close control. It is deliberately not hoverable so
// hover stays with the gesture pad underneath it.
type exitButton struct {
	widget.BaseWidget
	onTapped func()
}

func newExitButton(onTapped func()) *exitButton {
	b := &exitButton{onTapped: onTapped}
	b.ExtendBaseWidget(b)
	return b
}

// Tapped closes the window
func (b *exitButton) Tapped(*fyne.PointEvent) {
	if b.onTapped != nil {
		b.onTapped()
	}
}

// Contains reports whether a canvas position is over the visible button
func (b *exitButton) Contains(pos fyne.Position) bool {
	if !b.Visible() {
		return false
	}
	p, s := b.Position(), b.Size()
	return pos.X >= p.X && pos.X <= p.X+s.Width && pos.Y >= p.Y && pos.Y <= p.Y+s.Height
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (b *exitButton) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewCircle(theme.Color(ColorNameLongPress))
	label := canvas.NewText(IconClose, color.White)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true}
	label.TextSize = ExitButtonSize * 0.7
	return &exitButtonRenderer{bg: bg, label: label}
}

type exitButtonRenderer struct {
	bg    *canvas.Circle
	label *canvas.Text
}

func (r *exitButtonRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)
	ls := r.label.MinSize()
	r.label.Resize(fyne.NewSize(size.Width, ls.Height))
	r.label.Move(fyne.NewPos(0, (size.Height-ls.Height)/2))
}

func (r *exitButtonRenderer) MinSize() fyne.Size {
	return fyne.NewSize(ExitButtonSize, ExitButtonSize)
}

func (r *exitButtonRenderer) Refresh() {
	r.bg.FillColor = theme.Color(ColorNameLongPress)
	r.bg.Refresh()
	r.label.Refresh()
}

func (r *exitButtonRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.bg, r.label}
}

func (r *exitButtonRenderer) Destroy() {}

// stopwatchLayout arranges the panel and chrome, and reports every size
// change to the window manager. The digits follow through OnResized.
type stopwatchLayout struct {
	panel *canvas.Rectangle
	dot   *canvas.Circle
	hint  *canvas.Text
	pad   *gesturePad
	exit  *exitButton

	onSize func(fyne.Size)
}

// Layout positions all objects for the given content size
func (l *stopwatchLayout) Layout(_ []fyne.CanvasObject, size fyne.Size) {
	l.panel.Move(fyne.NewPos(0, 0))
	l.panel.Resize(size)
	l.pad.Move(fyne.NewPos(0, 0))
	l.pad.Resize(size)

	l.dot.Move(fyne.NewPos(chromeMargin+2, chromeMargin+2))
	l.dot.Resize(fyne.NewSize(StatusDotSize, StatusDotSize))

	l.exit.Move(fyne.NewPos(size.Width-ExitButtonSize-chromeMargin, chromeMargin))
	l.exit.Resize(fyne.NewSize(ExitButtonSize, ExitButtonSize))

	hs := l.hint.MinSize()
	l.hint.Move(fyne.NewPos(0, size.Height-hs.Height-hintMargin))
	l.hint.Resize(fyne.NewSize(size.Width, hs.Height))

	if l.onSize != nil {
		l.onSize(size)
	}
}

// MinSize is the smallest usable widget
func (l *stopwatchLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(platform.MinWindowWidth, platform.MinWindowHeight)
}
