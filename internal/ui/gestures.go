package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/precision-stopwatch/internal/gesture"
)

// pointerSink receives pointer input in screen pixels
type pointerSink interface {
	Down(gesture.Point)
	Move(gesture.Point)
	Up(gesture.Point)
	Leave()
}

// gesturePad is the transparent surface that covers the widget and feeds
// pointer input to the gesture classifier. Moves are only forwarded while a
// press cycle holds the pad's listeners.
type gesturePad struct {
	widget.BaseWidget

	sink     pointerSink
	toScreen func(fyne.Position) gesture.Point

	// tracking is set between Attach and detach
	tracking bool
	attached int

	onHover     func(bool)
	onSecondary func()
	onDetach    func()
}

var (
	_ desktop.Mouseable      = (*gesturePad)(nil)
	_ desktop.Hoverable      = (*gesturePad)(nil)
	_ fyne.Draggable         = (*gesturePad)(nil)
	_ fyne.SecondaryTappable = (*gesturePad)(nil)
	_ gesture.Listeners      = (*gesturePad)(nil)
)

func newGesturePad(toScreen func(fyne.Position) gesture.Point) *gesturePad {
	p := &gesturePad{toScreen: toScreen}
	p.ExtendBaseWidget(p)
	return p
}

// SetSink connects the pad to a classifier
func (p *gesturePad) SetSink(sink pointerSink) {
	p.sink = sink
}

// Attach starts forwarding moves and releases for one press cycle
func (p *gesturePad) Attach() func() {
	p.tracking = true
	p.attached++
	return func() {
		p.tracking = false
		p.attached--
		if p.onDetach != nil {
			p.onDetach()
		}
	}
}

// MouseDown starts a gesture for the primary button
func (p *gesturePad) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || p.sink == nil {
		return
	}
	p.sink.Down(p.toScreen(e.Position))
}

// MouseUp ends the gesture for the primary button
func (p *gesturePad) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary || !p.tracking {
		return
	}
	p.sink.Up(p.toScreen(e.Position))
}

// MouseIn shows the hover affordances
func (p *gesturePad) MouseIn(*desktop.MouseEvent) {
	if p.onHover != nil {
		p.onHover(true)
	}
}

// MouseMoved forwards pointer samples while tracking
func (p *gesturePad) MouseMoved(e *desktop.MouseEvent) {
	if !p.tracking {
		return
	}
	p.sink.Move(p.toScreen(e.Position))
}

// MouseOut ends any active gesture without a click
func (p *gesturePad) MouseOut() {
	if p.onHover != nil {
		p.onHover(false)
	}
	if p.tracking {
		p.sink.Leave()
	}
}

// Dragged forwards moves the driver routes to the pressed object
func (p *gesturePad) Dragged(e *fyne.DragEvent) {
	if !p.tracking {
		return
	}
	p.sink.Move(p.toScreen(e.Position))
}

// DragEnd is a release after the driver started a drag
func (p *gesturePad) DragEnd() {
	if !p.tracking {
		return
	}
	p.sink.Up(gesture.Point{})
}

// TappedSecondary opens the context action
func (p *gesturePad) TappedSecondary(*fyne.PointEvent) {
	if p.onSecondary != nil {
		p.onSecondary()
	}
}

// CreateRenderer is a private method to Fyne which links this widget to its renderer
func (p *gesturePad) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(color.Transparent)
	return widget.NewSimpleRenderer(bg)
}
