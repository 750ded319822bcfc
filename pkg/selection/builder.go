package selection

import (
	"log/slog"

	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// Action is the mouse button transition accompanying a cursor update
type Action int

const (
	// NoAction is a plain cursor move
	NoAction Action = iota
	Press
	Release
)

func (a Action) String() string {
	switch a {
	case Press:
		return "press"
	case Release:
		return "release"
	default:
		return "none"
	}
}

// State is the logical state of a Builder
type State int

const (
	Idle State = iota
	Dragging
	Built
)

func (s State) String() string {
	switch s {
	case Dragging:
		return "dragging"
	case Built:
		return "built"
	default:
		return "idle"
	}
}

// Builder accumulates a drag gesture into a start and end point.
//
// A press records the start point and restarts tracking; while the button is
// held every update moves the end point, including the press itself, so a
// click without movement yields start == end. A release stops tracking and
// keeps both points until the next press.
type Builder struct {
	start    geometry.Point
	end      geometry.Point
	hasStart bool
	hasEnd   bool
	pressed  bool
}

// NewBuilder creates an idle builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Update applies one cursor event
func (b *Builder) Update(cursor geometry.Point, action Action) {
	switch action {
	case Press:
		slog.Debug("selection pressed", "cursor", cursor)
		b.start = cursor
		b.hasStart = true
		b.hasEnd = false
		b.pressed = true
	case Release:
		slog.Debug("selection released", "cursor", cursor)
		b.pressed = false
	}

	if b.pressed {
		b.end = cursor
		b.hasEnd = true
	}
}

// Build returns the current selection, or false when no drag has happened yet
func (b *Builder) Build() (Rectangle, bool) {
	if !b.hasStart || !b.hasEnd {
		return Rectangle{}, false
	}
	return NewRectangle(b.start, b.end), true
}

// State reports the logical builder state
func (b *Builder) State() State {
	switch {
	case !b.hasStart:
		return Idle
	case b.pressed:
		return Dragging
	default:
		return Built
	}
}

// Pressed reports whether the button is currently held
func (b *Builder) Pressed() bool {
	return b.pressed
}

// Diagonal returns the length of the current drag, or 0 when there is none
func (b *Builder) Diagonal() float32 {
	if !b.hasStart || !b.hasEnd {
		return 0
	}
	return b.start.Distance(b.end)
}

// Reset discards any selection and returns to Idle
func (b *Builder) Reset() {
	*b = Builder{}
}
