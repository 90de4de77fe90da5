package main

import (
	"bytes"
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli"

	"github.com/ytget/precision-stopwatch/internal/config"
)

func newFlagContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("long-press", config.DefaultLongPressMillis, "")
	set.Float64("drag-threshold", config.DefaultDragThreshold, "")
	set.String("theme", string(config.DefaultThemeMode), "")
	set.String("lang", config.DefaultLanguage, "")
	set.Bool("no-top", false, "")
	set.Bool("beep", false, "")
	set.Bool("no-instructions", false, "")
	require.NoError(t, set.Parse(args))
	return cli.NewContext(nil, set, nil)
}

func persistedOptions() config.Options {
	return config.Options{
		LongPressDelay:   700 * time.Millisecond,
		DragThreshold:    8,
		ThemeMode:        config.ThemeLight,
		Language:         "pt",
		AlwaysOnTop:      true,
		ShowInstructions: true,
	}
}

func TestApplyFlagsKeepsSettingsWhenUnset(t *testing.T) {
	opts := applyFlags(newFlagContext(t), persistedOptions())
	assert.Equal(t, persistedOptions(), opts)
}

func TestApplyFlagsOverrides(t *testing.T) {
	c := newFlagContext(t,
		"--long-press", "1200",
		"--drag-threshold", "3",
		"--theme", "dark",
		"--lang", "ru",
		"--no-top",
		"--beep",
		"--no-instructions",
	)

	opts := applyFlags(c, persistedOptions())
	assert.Equal(t, 1200*time.Millisecond, opts.LongPressDelay)
	assert.Equal(t, 3.0, opts.DragThreshold)
	assert.Equal(t, config.ThemeDark, opts.ThemeMode)
	assert.Equal(t, "ru", opts.Language)
	assert.False(t, opts.AlwaysOnTop)
	assert.True(t, opts.BeepOnReset)
	assert.False(t, opts.ShowInstructions)
}

func TestApplyFlagsNormalizes(t *testing.T) {
	c := newFlagContext(t, "--long-press", "5", "--drag-threshold", "500", "--theme", "sepia")

	opts := applyFlags(c, persistedOptions())
	assert.Equal(t, config.MinLongPressMillis*time.Millisecond, opts.LongPressDelay)
	assert.Equal(t, config.MaxDragThreshold, opts.DragThreshold)
	assert.Equal(t, config.DefaultThemeMode, opts.ThemeMode)
}

func TestFitCommand(t *testing.T) {
	var out bytes.Buffer
	cliApp := newCLIApp()
	cliApp.Writer = &out

	err := cliApp.Run([]string{"precision-stopwatch", "fit", "--text", "1:05.23", "--width", "726", "--height", "408"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"1:05.23" in 726x408:`)
}

func TestFitCommandRejectsEmptyBox(t *testing.T) {
	cliApp := newCLIApp()
	cliApp.Writer = &bytes.Buffer{}

	err := cliApp.Run([]string{"precision-stopwatch", "fit", "--width", "0"})
	assert.Error(t, err)
}
