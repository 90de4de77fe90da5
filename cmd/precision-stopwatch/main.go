package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/urfave/cli"

	"github.com/ytget/precision-stopwatch/internal/config"
	"github.com/ytget/precision-stopwatch/internal/fontfit"
	"github.com/ytget/precision-stopwatch/internal/loop"
	"github.com/ytget/precision-stopwatch/internal/platform"
	"github.com/ytget/precision-stopwatch/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.precision-stopwatch"
	AppName = "Precision Stopwatch"
)

func main() {
	err := newCLIApp().Run(os.Args)
	if err != nil {
		slog.Error("Error running stopwatch", "error", err)
		os.Exit(1)
	}
}

func newCLIApp() *cli.App {
	cliApp := cli.NewApp()
	cliApp.Name = "precision-stopwatch"
	cliApp.Description = "A frameless, always-on-top desktop stopwatch"
	cliApp.Usage = "precision-stopwatch [options]"
	cliApp.Version = version
	cliApp.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
		cli.IntFlag{
			Name:  "long-press",
			Usage: "Milliseconds a press must be held to reset",
			Value: config.DefaultLongPressMillis,
		},
		cli.Float64Flag{
			Name:  "drag-threshold",
			Usage: "Pixels a press must travel to move the window",
			Value: config.DefaultDragThreshold,
		},
		cli.StringFlag{
			Name:  "theme",
			Usage: "Colour scheme: auto, dark or light",
			Value: string(config.DefaultThemeMode),
		},
		cli.StringFlag{
			Name:  "lang",
			Usage: "Interface language: system, en, ru or pt",
			Value: config.DefaultLanguage,
		},
		cli.BoolFlag{
			Name:  "no-top",
			Usage: "Do not keep the window above other windows",
		},
		cli.BoolFlag{
			Name:  "beep",
			Usage: "Beep when a long press resets the stopwatch",
		},
		cli.BoolFlag{
			Name:  "no-instructions",
			Usage: "Hide the hint line",
		},
	}
	cliApp.Commands = []cli.Command{
		{
			Name:  "fit",
			Usage: "Print the display font size for a window size, measured with the bundled fonts",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "text",
					Usage: "Reading to fit",
					Value: "00.00",
				},
				cli.Float64Flag{
					Name:  "width",
					Usage: "Window width in pixels",
					Value: float64(platform.DefaultGeometry(0, 0).Width),
				},
				cli.Float64Flag{
					Name:  "height",
					Usage: "Window height in pixels",
					Value: float64(platform.DefaultGeometry(0, 0).Height),
				},
				cli.BoolFlag{
					Name:  "regular",
					Usage: "Measure the regular weight instead of bold",
				},
			},
			Action: runFit,
		},
	}
	cliApp.Action = runStopwatch
	return cliApp
}

func newLogger(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(handler)
}

// applyFlags overrides persisted options with flags given on the command
// line. Overrides last for this run only.
func applyFlags(c *cli.Context, opts config.Options) config.Options {
	if c.IsSet("long-press") {
		opts.LongPressDelay = time.Duration(c.Int("long-press")) * time.Millisecond
	}
	if c.IsSet("drag-threshold") {
		opts.DragThreshold = c.Float64("drag-threshold")
	}
	if c.IsSet("theme") {
		opts.ThemeMode = config.ThemeMode(c.String("theme"))
	}
	if c.IsSet("lang") {
		opts.Language = c.String("lang")
	}
	if c.Bool("no-top") {
		opts.AlwaysOnTop = false
	}
	if c.Bool("beep") {
		opts.BeepOnReset = true
	}
	if c.Bool("no-instructions") {
		opts.ShowInstructions = false
	}
	return opts.Normalize()
}

func runStopwatch(c *cli.Context) error {
	logger := newLogger(c.Bool("debug"))
	slog.SetDefault(logger)
	logger.Info("Precision Stopwatch starting", "version", version)

	a := app.NewWithID(AppID)
	settings := config.NewSettings(a)
	opts := applyFlags(c, settings.Options())
	a.Settings().SetTheme(ui.NewStopwatchTheme(opts.ThemeMode))

	screenW, screenH, err := platform.ScreenSize()
	if err != nil {
		logger.Debug("screen size unavailable, using fallback", "error", err)
	}
	geometry := platform.DefaultGeometry(screenW, screenH)

	window := newWindow(a)
	window.SetPadded(false)
	window.Resize(fyne.NewSize(float32(geometry.Width), float32(geometry.Height)))

	windows := ui.NewWindowManager(window, &geometry, logger)
	ui.NewRootUI(window, a, windows, loop.NewScheduler(fyne.Do), opts, logger)

	a.Lifecycle().SetOnStarted(func() {
		windows.AttachNative(opts.AlwaysOnTop)
	})

	window.ShowAndRun()
	logger.Info("Precision Stopwatch stopped")
	return nil
}

// newWindow creates a borderless window where the driver supports one
func newWindow(a fyne.App) fyne.Window {
	if drv, ok := a.(desktop.App); ok {
		return drv.NewSplashWindow()
	}
	return a.NewWindow(AppName)
}

func runFit(c *cli.Context) error {
	width, height := float32(c.Float64("width")), float32(c.Float64("height"))
	if width <= 0 || height <= 0 {
		return errors.New("fit requires a positive --width and --height")
	}

	m, err := fontfit.NewOpenTypeMeasurer()
	if err != nil {
		return fmt.Errorf("load fonts: %w", err)
	}

	text := c.String("text")
	attrs := fontfit.Attrs{Monospace: true, Bold: !c.Bool("regular")}
	f := fontfit.New(m, attrs, fontfit.DefaultOptions())

	boxW, boxH := ui.DisplayFitBox(width, height)
	size, err := f.Fit(text, boxW, boxH)
	if err != nil {
		return err
	}

	textW, textH := m.Measure(text, attrs, size)
	fmt.Fprintf(c.App.Writer, "%q in %gx%g: %gpx (%gx%g, %d probes)\n",
		text, width, height, size, textW, textH, f.LastSearchProbes())
	return nil
}
