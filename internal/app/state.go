package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/pkg/watcher"
)

// InteractionState holds mouse state carried between frames
type InteractionState struct {
	lastMousePos rl.Vector2
	hasMousePos  bool
}

// ConfigState holds the active configuration and its reload source
type ConfigState struct {
	cfg         *config.Config
	path        string
	fileWatcher *watcher.FileWatcher // nil when no config file is used
	lastError   string               // last reload failure, shown in the HUD
}

// UIState holds HUD settings
type UIState struct {
	showHelp bool
	message  string // transient status line (count limits, reloads)
}
