package app

import (
	"fmt"
	"log/slog"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/internal/scene"
	"github.com/alexxxkny/lineclip/pkg/watcher"
)

type App struct {
	Scene       *scene.Scene
	Interaction InteractionState
	Config      ConfigState
	UI          UIState
}

// Options configure Run
type Options struct {
	ConfigPath string
	Config     *config.Config
}

// Run opens the window and drives the frame loop until it is closed
func Run(opts Options) error {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	sc, err := scene.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create scene: %w", err)
	}

	app := &App{
		Scene:  sc,
		Config: ConfigState{cfg: cfg, path: opts.ConfigPath},
		UI:     UIState{showHelp: true},
	}

	if opts.ConfigPath != "" {
		if err := app.setupConfigWatcher(); err != nil {
			slog.Warn("config reload disabled", "err", err)
		} else {
			defer app.Config.fileWatcher.Close()
		}
	}

	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	// Escape clears the selection instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	slog.Info("window opened",
		"width", cfg.Window.Width,
		"height", cfg.Window.Height,
		"lines", sc.Lines().Count())

	for !rl.WindowShouldClose() {
		ctrlPressed := rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl)
		if ctrlPressed && rl.IsKeyPressed(rl.KeyC) {
			break
		}

		app.applyPendingReload()
		app.handleKeys()

		width, height := rl.GetScreenWidth(), rl.GetScreenHeight()
		events := app.pollEvents()

		rl.BeginDrawing()
		rl.ClearBackground(toRaylib(app.Config.cfg.Colors.Background.Value()))

		renderer := newRayRenderer(width, height)
		app.Scene.Frame(events, width, height, renderer)
		app.drawUI()

		rl.EndDrawing()
	}

	return nil
}

func (app *App) setupConfigWatcher() error {
	fw, err := watcher.NewFileWatcher(200 * time.Millisecond)
	if err != nil {
		return err
	}
	if err := fw.Watch(app.Config.path); err != nil {
		fw.Close()
		return err
	}
	fw.Start()
	app.Config.fileWatcher = fw
	return nil
}

// applyPendingReload swaps in a changed config file between frames
func (app *App) applyPendingReload() {
	if app.Config.fileWatcher == nil {
		return
	}

	select {
	case path, ok := <-app.Config.fileWatcher.Changes():
		if !ok {
			app.Config.fileWatcher = nil
			return
		}
		cfg, err := config.Load(path)
		if err != nil {
			slog.Warn("config reload failed", "path", path, "err", err)
			app.Config.lastError = err.Error()
			return
		}
		app.Config.cfg = cfg
		app.Config.lastError = ""
		app.Scene.ApplyConfig(cfg)
		app.UI.message = "Configuration reloaded"
		slog.Info("config reloaded", "path", path)
	default:
	}
}
