package model

import (
	"fmt"
	"time"

	"github.com/hako/durafmt"
)

const centisecond = 10 * time.Millisecond

// FormatTime renders an elapsed duration as SS.ss below one minute and
// M:SS.ss from one minute on, rounded half-up to the nearest hundredth. The
// format follows the unrounded value, so 59.996s renders as 60.00.
func FormatTime(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	centis := int64((d + centisecond/2) / centisecond)
	if d < time.Minute {
		return fmt.Sprintf("%02d.%02d", centis/100, centis%100)
	}

	minutes := centis / 6000
	rest := centis % 6000
	return fmt.Sprintf("%d:%02d.%02d", minutes, rest/100, rest%100)
}

// HumanDuration renders d in words with its two most significant units,
// e.g. "1 minute 5 seconds". Used in logs.
func HumanDuration(d time.Duration) string {
	if d < time.Second {
		return FormatTime(d) + " seconds"
	}
	return durafmt.Parse(d.Truncate(time.Second)).LimitFirstN(2).String()
}
