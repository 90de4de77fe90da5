package config

import "time"

// Options is the resolved configuration for one run: persisted settings with
// any command-line overrides applied on top. Overrides are never written back.
type Options struct {
	LongPressDelay   time.Duration
	DragThreshold    float64
	ThemeMode        ThemeMode
	Language         string
	AlwaysOnTop      bool
	BeepOnReset      bool
	ShowInstructions bool
}

// Options snapshots the persisted settings
func (s *Settings) Options() Options {
	return Options{
		LongPressDelay:   s.GetLongPressDelay(),
		DragThreshold:    s.GetDragThreshold(),
		ThemeMode:        s.GetThemeMode(),
		Language:         s.GetLanguage(),
		AlwaysOnTop:      s.GetAlwaysOnTop(),
		BeepOnReset:      s.GetBeepOnReset(),
		ShowInstructions: s.GetShowInstructions(),
	}
}

// Normalize clamps values that may have come from flags
func (o Options) Normalize() Options {
	ms := clampInt(int(o.LongPressDelay.Milliseconds()), MinLongPressMillis, MaxLongPressMillis)
	o.LongPressDelay = time.Duration(ms) * time.Millisecond
	o.DragThreshold = clampFloat(o.DragThreshold, MinDragThreshold, MaxDragThreshold)

	switch o.ThemeMode {
	case ThemeAuto, ThemeDark, ThemeLight:
	default:
		o.ThemeMode = DefaultThemeMode
	}
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	return o
}
