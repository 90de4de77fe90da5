package ui

import (
	"log/slog"
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
)

type memClipboard struct {
	content string
}

func (c *memClipboard) Content() string { return c.content }

func (c *memClipboard) SetContent(s string) { c.content = s }

func TestCopierFallsBackToToolkitClipboard(t *testing.T) {
	test.NewApp()
	cb := &memClipboard{}
	c := newCopier(func() fyne.Clipboard { return cb }, discardLogger())

	// Mark initialization as done without a native clipboard.
	c.once.Do(func() {})

	c.Copy("1:05.23")
	assert.Equal(t, "1:05.23", cb.content)
}

func TestBeeperReportsErrors(t *testing.T) {
	rec := newRecordingHandler()
	b := &beeper{
		beep:   func(float64, int) error { return assert.AnError },
		logger: slog.New(rec),
	}

	b.Beep()

	select {
	case r := <-rec.records:
		assert.Equal(t, "beep failed", r.Message)
		assert.Equal(t, slog.LevelDebug, r.Level)
	case <-time.After(time.Second):
		t.Fatal("beep error was not logged")
	}
}
