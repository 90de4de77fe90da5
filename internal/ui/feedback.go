package ui

import (
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"github.com/gen2brain/beeep"
	"golang.design/x/clipboard"
)

// copier writes text to the system clipboard. The native clipboard is set up
// on first use; if it cannot start, the toolkit clipboard is used instead.
type copier struct {
	once     sync.Once
	native   bool
	fallback func() fyne.Clipboard
	logger   *slog.Logger
}

func newCopier(fallback func() fyne.Clipboard, logger *slog.Logger) *copier {
	return &copier{fallback: fallback, logger: logger}
}

// Copy places text on the clipboard
func (c *copier) Copy(text string) {
	c.once.Do(func() {
		if err := clipboard.Init(); err != nil {
			c.logger.Debug("native clipboard unavailable, using toolkit clipboard", "error", err)
			return
		}
		c.native = true
	})

	if c.native {
		clipboard.Write(clipboard.FmtText, []byte(text))
		return
	}
	if c.fallback != nil {
		if cb := c.fallback(); cb != nil {
			cb.SetContent(text)
		}
	}
}

// beeper plays a short tone off the UI goroutine
type beeper struct {
	beep   func(freq float64, duration int) error
	logger *slog.Logger
}

func newBeeper(logger *slog.Logger) *beeper {
	return &beeper{beep: beeep.Beep, logger: logger}
}

// Beep plays the default tone
func (b *beeper) Beep() {
	go func() {
		if err := b.beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
			b.logger.Debug("beep failed", "error", err)
		}
	}()
}
