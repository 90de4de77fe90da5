package ui

import (
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyHintStopped      = "hint_stopped"
	KeyHintRunning      = "hint_running"
	KeyHintPaused       = "hint_paused"
	KeyExit             = "exit"
	KeySettings         = "settings"
	KeyLongPressDelay   = "long_press_delay"
	KeyDragThreshold    = "drag_threshold"
	KeyTheme            = "theme"
	KeyLanguage         = "language"
	KeyAlwaysOnTop      = "always_on_top"
	KeyBeepOnReset      = "beep_on_reset"
	KeyShowInstructions = "show_instructions"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyInvalidNumber    = "invalid_number"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" follows the OS locale and
// falls back to English when it is not translated.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = systemLanguage()
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
		return
	}
	l.currentLanguage = "en"
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

func systemLanguage() string {
	locale := string(lang.SystemLocale())
	if i := strings.IndexAny(locale, "-_"); i > 0 {
		locale = locale[:i]
	}
	return strings.ToLower(locale)
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Precision Stopwatch",
		KeyHintStopped:      "Click to start • Long press to reset • Esc to exit",
		KeyHintRunning:      "Click to stop • Long press to reset • Esc to exit",
		KeyHintPaused:       "Click to resume • Long press to reset • Esc to exit",
		KeyExit:             "Exit",
		KeySettings:         "Settings",
		KeyLongPressDelay:   "Long press delay (ms)",
		KeyDragThreshold:    "Drag threshold (px)",
		KeyTheme:            "Theme",
		KeyLanguage:         "Language",
		KeyAlwaysOnTop:      "Always on top",
		KeyBeepOnReset:      "Beep on reset",
		KeyShowInstructions: "Show hints",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyInvalidNumber:    "Enter a number",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Точный секундомер",
		KeyHintStopped:      "Клик — старт • Удержание — сброс • Esc — выход",
		KeyHintRunning:      "Клик — стоп • Удержание — сброс • Esc — выход",
		KeyHintPaused:       "Клик — продолжить • Удержание — сброс • Esc — выход",
		KeyExit:             "Выход",
		KeySettings:         "Настройки",
		KeyLongPressDelay:   "Задержка удержания (мс)",
		KeyDragThreshold:    "Порог перетаскивания (px)",
		KeyTheme:            "Тема",
		KeyLanguage:         "Язык",
		KeyAlwaysOnTop:      "Поверх всех окон",
		KeyBeepOnReset:      "Сигнал при сбросе",
		KeyShowInstructions: "Показывать подсказки",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyInvalidNumber:    "Введите число",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Cronômetro de Precisão",
		KeyHintStopped:      "Clique para iniciar • Segure para zerar • Esc para sair",
		KeyHintRunning:      "Clique para parar • Segure para zerar • Esc para sair",
		KeyHintPaused:       "Clique para continuar • Segure para zerar • Esc para sair",
		KeyExit:             "Sair",
		KeySettings:         "Configurações",
		KeyLongPressDelay:   "Atraso do toque longo (ms)",
		KeyDragThreshold:    "Limite de arraste (px)",
		KeyTheme:            "Tema",
		KeyLanguage:         "Idioma",
		KeyAlwaysOnTop:      "Sempre no topo",
		KeyBeepOnReset:      "Bipe ao zerar",
		KeyShowInstructions: "Mostrar dicas",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyInvalidNumber:    "Digite um número",
	}
}
