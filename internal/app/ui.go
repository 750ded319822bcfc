package app

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexxxkny/lineclip/version"
)

var helpLines = []string{
	"Drag with the left button to select",
	"+ / - or wheel: number of lines",
	"R: new lines   A: axes   Esc: clear",
	"H: toggle help",
}

// drawUI draws the status panel in the top-left corner
func (app *App) drawUI() {
	x := int32(10)
	y := int32(10)
	lineHeight := int32(20)
	fontSize := int32(16)
	textColor := toRaylib(app.Config.cfg.Colors.Text.Value())

	manager := app.Scene.Lines()
	lines := []string{
		fmt.Sprintf("Lines: %d / %d", manager.Count(), manager.Max()),
		fmt.Sprintf("Cursor: %s", app.Scene.Cursor()),
	}

	if sel, ok := app.Scene.Selection(); ok {
		lines = append(lines,
			fmt.Sprintf("Selection: L %.0f  R %.0f  T %.0f  B %.0f", sel.Left(), sel.Right(), sel.Top(), sel.Bottom()),
			app.Scene.Stats().String(),
		)
		if app.Scene.IsClick() {
			lines = append(lines, "Selection is smaller than the minimum diagonal")
		}
	} else {
		lines = append(lines, "Selection: none")
	}

	if app.UI.showHelp {
		lines = append(lines, "")
		lines = append(lines, helpLines...)
	}

	// Semi-transparent background
	panelHeight := int32(len(lines))*lineHeight + 10
	rl.DrawRectangle(x-5, y-5, 380, panelHeight, rl.NewColor(255, 255, 255, 200))

	for _, line := range lines {
		rl.DrawText(line, x, y, fontSize, textColor)
		y += lineHeight
	}

	// Status messages along the bottom edge
	screenHeight := int32(rl.GetScreenHeight())
	status := app.UI.message
	if app.Config.lastError != "" {
		status = "Config error: " + app.Config.lastError
	}
	if status != "" {
		rl.DrawText(status, x, screenHeight-30, fontSize, rl.Maroon)
	}

	versionText := "lineclip " + version.GetVersion()
	width := rl.MeasureText(versionText, 12)
	rl.DrawText(versionText, int32(rl.GetScreenWidth())-width-10, screenHeight-20, 12, rl.Gray)
}
