package ui

import (
	"errors"
	"slices"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/precision-stopwatch/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog
	onSaved      func(config.Options)

	// UI components
	longPressEntry      *widget.Entry
	dragThresholdEntry  *widget.Entry
	themeSelect         *widget.Select
	languageSelect      *widget.Select
	alwaysOnTopCheck    *widget.Check
	beepOnResetCheck    *widget.Check
	showInstructionsChk *widget.Check

	// language label -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved receives the
// options as persisted after a save.
func NewSettingsDialog(settings *config.Settings, window fyne.Window, localization *Localization, onSaved func(config.Options)) *SettingsDialog {
	sd := &SettingsDialog{
		settings:     settings,
		window:       window,
		localization: localization,
		onSaved:      onSaved,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	text := sd.localization.GetText

	sd.longPressEntry = widget.NewEntry()
	sd.longPressEntry.SetPlaceHolder(strconv.Itoa(config.MinLongPressMillis) + "-" + strconv.Itoa(config.MaxLongPressMillis))
	sd.longPressEntry.Validator = numberValidator(text(KeyInvalidNumber))

	sd.dragThresholdEntry = widget.NewEntry()
	sd.dragThresholdEntry.SetPlaceHolder(formatFloat(config.MinDragThreshold) + "-" + formatFloat(config.MaxDragThreshold))
	sd.dragThresholdEntry.Validator = numberValidator(text(KeyInvalidNumber))

	themeOptions := []string{}
	for _, mode := range sd.settings.GetThemeModeOptions() {
		themeOptions = append(themeOptions, string(mode))
	}
	sd.themeSelect = widget.NewSelect(themeOptions, nil)

	// System default first, then by label
	sd.languageCodes = make(map[string]string)
	languageOptions := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		if code != config.DefaultLanguage {
			languageOptions = append(languageOptions, label)
		}
	}
	slices.Sort(languageOptions)
	systemLabel := sd.settings.GetLanguageOptions()[config.DefaultLanguage]
	languageOptions = append([]string{systemLabel}, languageOptions...)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	sd.alwaysOnTopCheck = widget.NewCheck(text(KeyAlwaysOnTop), nil)
	sd.beepOnResetCheck = widget.NewCheck(text(KeyBeepOnReset), nil)
	sd.showInstructionsChk = widget.NewCheck(text(KeyShowInstructions), nil)

	form := widget.NewForm(
		widget.NewFormItem(text(KeyLongPressDelay), sd.longPressEntry),
		widget.NewFormItem(text(KeyDragThreshold), sd.dragThresholdEntry),
		widget.NewFormItem(text(KeyTheme), sd.themeSelect),
		widget.NewFormItem(text(KeyLanguage), sd.languageSelect),
	)
	content := container.NewVScroll(container.NewVBox(
		form,
		widget.NewSeparator(),
		sd.alwaysOnTopCheck,
		sd.beepOnResetCheck,
		sd.showInstructionsChk,
	))

	sd.dialog = dialog.NewCustomConfirm(
		text(KeySettings),
		text(KeySave),
		text(KeyCancel),
		content,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsMinWidth, SettingsMinWidth))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.longPressEntry.SetText(strconv.FormatInt(sd.settings.GetLongPressDelay().Milliseconds(), 10))
	sd.dragThresholdEntry.SetText(formatFloat(sd.settings.GetDragThreshold()))
	sd.themeSelect.SetSelected(string(sd.settings.GetThemeMode()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.alwaysOnTopCheck.SetChecked(sd.settings.GetAlwaysOnTop())
	sd.beepOnResetCheck.SetChecked(sd.settings.GetBeepOnReset())
	sd.showInstructionsChk.SetChecked(sd.settings.GetShowInstructions())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Values out of range are clamped by Settings; unparsable ones are skipped
	if ms, err := strconv.Atoi(strings.TrimSpace(sd.longPressEntry.Text)); err == nil {
		sd.settings.SetLongPressDelay(time.Duration(ms) * time.Millisecond)
	}
	if px, err := strconv.ParseFloat(strings.TrimSpace(sd.dragThresholdEntry.Text), 64); err == nil {
		sd.settings.SetDragThreshold(px)
	}

	if sd.themeSelect.Selected != "" {
		sd.settings.SetThemeMode(config.ThemeMode(sd.themeSelect.Selected))
	}
	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetAlwaysOnTop(sd.alwaysOnTopCheck.Checked)
	sd.settings.SetBeepOnReset(sd.beepOnResetCheck.Checked)
	sd.settings.SetShowInstructions(sd.showInstructionsChk.Checked)

	if sd.onSaved != nil {
		sd.onSaved(sd.settings.Options())
	}
}

func numberValidator(message string) fyne.StringValidator {
	return func(s string) error {
		if _, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return errors.New(message)
		}
		return nil
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
