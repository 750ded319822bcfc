package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/internal/lines"
	"github.com/alexxxkny/lineclip/internal/logging"
	"github.com/alexxxkny/lineclip/internal/scene"
	"github.com/alexxxkny/lineclip/pkg/viewer"
	"github.com/alexxxkny/lineclip/pkg/watcher"
	"github.com/alexxxkny/lineclip/version"
)

type App struct {
	window     fyne.Window
	cfg        *config.Config
	configPath string
	view       *viewer.SelectionView
	info       *InfoPanel
}

type InfoPanel struct {
	countLabel     *widget.Label
	selectionLabel *widget.Label
	statsLabel     *widget.Label
	clickLabel     *widget.Label
}

func main() {
	configPath := ""
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	closeLog, err := logging.Init(cfg.Log.WithEnv(), logging.InitOptions{App: "lineclip-gui", Version: version.GetVersion()})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	sc, err := scene.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	a := app.New()
	w := a.NewWindow(cfg.Window.Title)

	appInstance := &App{
		window:     w,
		cfg:        cfg,
		configPath: configPath,
		view:       viewer.NewSelectionView(sc, cfg.Colors.Background.Value()),
	}
	appInstance.setupMainUI()

	if configPath != "" {
		fw, err := appInstance.watchConfig()
		if err != nil {
			slog.Warn("config reload disabled", "err", err)
		} else {
			defer fw.Close()
		}
	}

	w.Resize(fyne.NewSize(float32(cfg.Window.Width)+260, float32(cfg.Window.Height)))
	w.ShowAndRun()
}

func (a *App) setupMainUI() {
	a.info = &InfoPanel{
		countLabel:     widget.NewLabel(""),
		selectionLabel: widget.NewLabel("Selection: none"),
		statsLabel:     widget.NewLabel(""),
		clickLabel:     widget.NewLabel(""),
	}
	a.info.statsLabel.TextStyle = fyne.TextStyle{Bold: true}

	manager := a.view.Scene().Lines()

	countSlider := widget.NewSlider(0, float64(manager.Max()))
	countSlider.Step = 1
	countSlider.SetValue(float64(manager.Count()))
	countSlider.OnChanged = func(value float64) {
		if err := manager.SetCount(int(value)); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.view.Refresh()
	}

	regenerateButton := widget.NewButton("New Lines", func() {
		manager.Regenerate(manager.Seed() + 1)
		a.view.Refresh()
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		a.view.Scene().ClearSelection()
		a.view.Refresh()
	})

	axesCheck := widget.NewCheck("Show Axes", func(bool) {
		a.view.Scene().ToggleAxes()
		a.view.Refresh()
	})
	axesCheck.Checked = true

	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Drag with the left button to select\n" +
			"• Green lines are inside\n" +
			"• Red parts are visible in the selection",
	)
	instructions.Wrapping = fyne.TextWrapWord

	a.view.SetOnFrame(a.updateInfo)

	infoPanel := container.NewVBox(
		widget.NewLabel("Lines:"),
		a.info.countLabel,
		countSlider,
		regenerateButton,
		widget.NewSeparator(),
		widget.NewLabel("Selection:"),
		a.info.selectionLabel,
		a.info.statsLabel,
		a.info.clickLabel,
		clearButton,
		widget.NewSeparator(),
		axesCheck,
		widget.NewSeparator(),
		instructions,
	)

	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(260, 0))

	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.view,     // center
	)

	a.window.SetContent(content)
}

func (a *App) updateInfo(stats lines.Stats) {
	if a.info == nil {
		return
	}
	sc := a.view.Scene()
	a.info.countLabel.SetText(fmt.Sprintf("%d of %d", sc.Lines().Count(), sc.Lines().Max()))

	sel, ok := sc.Selection()
	if !ok {
		a.info.selectionLabel.SetText("Selection: none")
		a.info.statsLabel.SetText("")
		a.info.clickLabel.SetText("")
		return
	}

	a.info.selectionLabel.SetText(fmt.Sprintf("L %.0f  R %.0f\nT %.0f  B %.0f", sel.Left(), sel.Right(), sel.Top(), sel.Bottom()))
	a.info.statsLabel.SetText(stats.String())
	if sc.IsClick() {
		a.info.clickLabel.SetText("Click (below minimum diagonal)")
	} else {
		a.info.clickLabel.SetText("")
	}
}

// watchConfig reloads colors and tolerances when the config file changes
func (a *App) watchConfig() (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		return nil, err
	}
	if err := fw.Watch(a.configPath); err != nil {
		fw.Close()
		return nil, err
	}
	fw.Start()

	go func() {
		for path := range fw.Changes() {
			cfg, err := config.Load(path)
			if err != nil {
				slog.Warn("config reload failed", "path", path, "err", err)
				continue
			}
			fyne.Do(func() {
				a.cfg = cfg
				a.view.Scene().ApplyConfig(cfg)
				a.view.SetBackground(cfg.Colors.Background.Value())
			})
			slog.Info("config reloaded", "path", path)
		}
	}()

	return fw, nil
}
