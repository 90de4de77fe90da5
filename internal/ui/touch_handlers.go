package ui

import "fyne.io/fyne/v2/driver/mobile"

var _ mobile.Touchable = (*gesturePad)(nil)

// TouchDown starts a gesture from a touch
func (p *gesturePad) TouchDown(e *mobile.TouchEvent) {
	if p.sink == nil {
		return
	}
	p.sink.Down(p.toScreen(e.Position))
}

// TouchUp ends the gesture
func (p *gesturePad) TouchUp(e *mobile.TouchEvent) {
	if !p.tracking {
		return
	}
	p.sink.Up(p.toScreen(e.Position))
}

// TouchCancel ends the gesture without a click
func (p *gesturePad) TouchCancel(*mobile.TouchEvent) {
	if !p.tracking {
		return
	}
	p.sink.Leave()
}
