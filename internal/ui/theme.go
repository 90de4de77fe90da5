package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
	dark "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"

	"github.com/ytget/precision-stopwatch/internal/config"
	"github.com/ytget/precision-stopwatch/internal/model"
)

// Stopwatch colour names
const (
	ColorNameRunning   fyne.ThemeColorName = "stopwatchRunning"
	ColorNamePaused    fyne.ThemeColorName = "stopwatchPaused"
	ColorNameStopped   fyne.ThemeColorName = "stopwatchStopped"
	ColorNameLongPress fyne.ThemeColorName = "stopwatchLongPress"
	ColorNamePanel     fyne.ThemeColorName = "stopwatchPanel"
)

// Digits render with Go Mono so live and headless measurement agree
var (
	monoFont     = fyne.NewStaticResource("GoMono.ttf", gomono.TTF)
	monoBoldFont = fyne.NewStaticResource("GoMono-Bold.ttf", gomonobold.TTF)
)

// StopwatchTheme is a compact theme with status colours and a fixed or
// detected light/dark variant
type StopwatchTheme struct {
	variant fyne.ThemeVariant
	forced  bool
}

// NewStopwatchTheme creates the theme for the given mode. Auto asks the OS
// once; if that fails the toolkit's own variant is used.
func NewStopwatchTheme(mode config.ThemeMode) fyne.Theme {
	switch mode {
	case config.ThemeDark:
		return &StopwatchTheme{variant: theme.VariantDark, forced: true}
	case config.ThemeLight:
		return &StopwatchTheme{variant: theme.VariantLight, forced: true}
	}

	isDark, err := dark.IsDarkMode()
	if err != nil {
		return &StopwatchTheme{}
	}
	if isDark {
		return &StopwatchTheme{variant: theme.VariantDark, forced: true}
	}
	return &StopwatchTheme{variant: theme.VariantLight, forced: true}
}

// Color returns theme colors
func (t *StopwatchTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if t.forced {
		variant = t.variant
	}

	switch name {
	case ColorNameRunning:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255} // Green
	case ColorNamePaused:
		return color.RGBA{R: 255, G: 193, B: 7, A: 255} // Amber
	case ColorNameStopped:
		return color.RGBA{R: 158, G: 158, B: 158, A: 255} // Grey
	case ColorNameLongPress:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255} // Red
	case ColorNamePanel:
		if variant == theme.VariantDark {
			return color.RGBA{R: 28, G: 28, B: 30, A: 235}
		}
		return color.RGBA{R: 245, G: 245, B: 245, A: 235}
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 18, G: 18, B: 18, A: 255}
		}
		return color.RGBA{R: 250, G: 250, B: 250, A: 255}
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return color.RGBA{R: 33, G: 33, B: 33, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns Go Mono for monospace text and the default fonts otherwise
func (t *StopwatchTheme) Font(style fyne.TextStyle) fyne.Resource {
	if style.Monospace {
		if style.Bold {
			return monoBoldFont
		}
		return monoFont
	}
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StopwatchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *StopwatchTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameText:
		return 13
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}

// statusColorName maps a timer status to its indicator colour
func statusColorName(status model.TimerStatus) fyne.ThemeColorName {
	switch status {
	case model.TimerStatusRunning:
		return ColorNameRunning
	case model.TimerStatusPaused:
		return ColorNamePaused
	default:
		return ColorNameStopped
	}
}
