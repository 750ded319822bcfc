package app

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexxxkny/lineclip/internal/scene"
)

var mouseButtons = []struct {
	rl     rl.MouseButton
	button scene.Button
}{
	{rl.MouseLeftButton, scene.ButtonLeft},
	{rl.MouseRightButton, scene.ButtonRight},
	{rl.MouseMiddleButton, scene.ButtonMiddle},
}

// pollEvents turns this frame's raylib input state into scene events.
// The cursor position comes first so presses and releases apply at the
// current position.
func (app *App) pollEvents() []scene.Event {
	var events []scene.Event

	pos := rl.GetMousePosition()
	if !app.Interaction.hasMousePos || pos != app.Interaction.lastMousePos {
		events = append(events, scene.Move(pos.X, pos.Y))
		app.Interaction.lastMousePos = pos
		app.Interaction.hasMousePos = true
	}

	for _, mb := range mouseButtons {
		if rl.IsMouseButtonPressed(mb.rl) {
			events = append(events, scene.Press(mb.button))
		}
		if rl.IsMouseButtonReleased(mb.rl) {
			events = append(events, scene.Release(mb.button))
		}
	}

	return events
}

// handleKeys processes keyboard shortcuts and the mouse wheel
func (app *App) handleKeys() {
	manager := app.Scene.Lines()

	delta := 0
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		delta++
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		delta--
	}
	if wheel := rl.GetMouseWheelMove(); wheel > 0 {
		delta++
	} else if wheel < 0 {
		delta--
	}
	if delta != 0 {
		if err := manager.SetCount(manager.Count() + delta); err != nil {
			slog.Debug("line count rejected", "err", err)
			app.UI.message = err.Error()
		} else {
			app.UI.message = ""
		}
	}

	if rl.IsKeyPressed(rl.KeyR) {
		manager.Regenerate(manager.Seed() + 1)
		slog.Info("segments regenerated", "seed", manager.Seed())
	}
	if rl.IsKeyPressed(rl.KeyA) {
		app.Scene.ToggleAxes()
	}
	if rl.IsKeyPressed(rl.KeyH) {
		app.UI.showHelp = !app.UI.showHelp
	}
	if rl.IsKeyPressed(rl.KeyEscape) {
		app.Scene.ClearSelection()
	}
}
