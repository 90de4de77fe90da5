package ui

import (
	"time"

	"fyne.io/fyne/v2"
)

// frameLoop calls tick once per rendered frame while started
type frameLoop struct {
	anim    *fyne.Animation
	running bool
}

func newFrameLoop(tick func()) *frameLoop {
	anim := fyne.NewAnimation(time.Second, func(float32) { tick() })
	anim.RepeatCount = fyne.AnimationRepeatForever
	anim.Curve = fyne.AnimationLinear
	return &frameLoop{anim: anim}
}

// Start begins ticking. A second Start does nothing.
func (l *frameLoop) Start() {
	if l.running {
		return
	}
	l.running = true
	l.anim.Start()
}

// Stop ends ticking. A second Stop does nothing.
func (l *frameLoop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.anim.Stop()
}

// Running reports whether the loop is started
func (l *frameLoop) Running() bool {
	return l.running
}
