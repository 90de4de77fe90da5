package config

import (
	"time"

	"fyne.io/fyne/v2"
)

// ThemeMode selects the colour scheme
type ThemeMode string

const (
	ThemeAuto  ThemeMode = "auto"
	ThemeDark  ThemeMode = "dark"
	ThemeLight ThemeMode = "light"
)

// Settings keys for Fyne preferences
const (
	KeyLongPressMillis  = "long_press_ms"
	KeyDragThreshold    = "drag_threshold"
	KeyThemeMode        = "theme_mode"
	KeyLanguage         = "app_language"
	KeyAlwaysOnTop      = "always_on_top"
	KeyBeepOnReset      = "beep_on_reset"
	KeyShowInstructions = "show_instructions"
)

// Default values
const (
	DefaultLongPressMillis  = 500
	DefaultDragThreshold    = 5.0
	DefaultThemeMode        = ThemeAuto
	DefaultLanguage         = "system"
	DefaultAlwaysOnTop      = true
	DefaultBeepOnReset      = false
	DefaultShowInstructions = true
)

// Accepted ranges
const (
	MinLongPressMillis = 200
	MaxLongPressMillis = 3000
	MinDragThreshold   = 1.0
	MaxDragThreshold   = 50.0
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetLongPressDelay returns how long a press must be held to reset
func (s *Settings) GetLongPressDelay() time.Duration {
	ms := s.app.Preferences().IntWithFallback(KeyLongPressMillis, DefaultLongPressMillis)
	return time.Duration(clampInt(ms, MinLongPressMillis, MaxLongPressMillis)) * time.Millisecond
}

// SetLongPressDelay sets the long-press delay, clamped to the accepted range
func (s *Settings) SetLongPressDelay(d time.Duration) {
	ms := clampInt(int(d.Milliseconds()), MinLongPressMillis, MaxLongPressMillis)
	s.app.Preferences().SetInt(KeyLongPressMillis, ms)
}

// GetDragThreshold returns the distance in pixels that turns a press into a drag
func (s *Settings) GetDragThreshold() float64 {
	px := s.app.Preferences().FloatWithFallback(KeyDragThreshold, DefaultDragThreshold)
	return clampFloat(px, MinDragThreshold, MaxDragThreshold)
}

// SetDragThreshold sets the drag threshold, clamped to the accepted range
func (s *Settings) SetDragThreshold(px float64) {
	s.app.Preferences().SetFloat(KeyDragThreshold, clampFloat(px, MinDragThreshold, MaxDragThreshold))
}

// GetThemeMode returns the configured colour scheme
func (s *Settings) GetThemeMode() ThemeMode {
	mode := ThemeMode(s.app.Preferences().String(KeyThemeMode))
	switch mode {
	case ThemeAuto, ThemeDark, ThemeLight:
		return mode
	default:
		return DefaultThemeMode
	}
}

// SetThemeMode sets the colour scheme
func (s *Settings) SetThemeMode(mode ThemeMode) {
	s.app.Preferences().SetString(KeyThemeMode, string(mode))
}

// GetThemeModeOptions returns the available colour schemes
func (s *Settings) GetThemeModeOptions() []ThemeMode {
	return []ThemeMode{ThemeAuto, ThemeDark, ThemeLight}
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}

// GetAlwaysOnTop returns whether the window should stay above others
func (s *Settings) GetAlwaysOnTop() bool {
	return s.app.Preferences().BoolWithFallback(KeyAlwaysOnTop, DefaultAlwaysOnTop)
}

// SetAlwaysOnTop sets whether the window should stay above others
func (s *Settings) SetAlwaysOnTop(on bool) {
	s.app.Preferences().SetBool(KeyAlwaysOnTop, on)
}

// GetBeepOnReset returns whether a long-press reset beeps
func (s *Settings) GetBeepOnReset() bool {
	return s.app.Preferences().BoolWithFallback(KeyBeepOnReset, DefaultBeepOnReset)
}

// SetBeepOnReset sets whether a long-press reset beeps
func (s *Settings) SetBeepOnReset(beep bool) {
	s.app.Preferences().SetBool(KeyBeepOnReset, beep)
}

// GetShowInstructions returns whether the hint line is shown
func (s *Settings) GetShowInstructions() bool {
	return s.app.Preferences().BoolWithFallback(KeyShowInstructions, DefaultShowInstructions)
}

// SetShowInstructions sets whether the hint line is shown
func (s *Settings) SetShowInstructions(show bool) {
	s.app.Preferences().SetBool(KeyShowInstructions, show)
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
