package scene

import (
	"fmt"

	"github.com/alexxxkny/lineclip/pkg/selection"
)

type EventKind int

const (
	CursorMoved EventKind = iota
	MouseButton
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is one interaction event. Cursor positions are window pixels with a
// top-left origin.
type Event struct {
	Kind   EventKind
	X, Y   float32
	Button Button
	Action selection.Action
}

// Move creates a CursorMoved event
func Move(x, y float32) Event {
	return Event{Kind: CursorMoved, X: x, Y: y}
}

// Press creates a MouseButton press event
func Press(b Button) Event {
	return Event{Kind: MouseButton, Button: b, Action: selection.Press}
}

// Release creates a MouseButton release event
func Release(b Button) Event {
	return Event{Kind: MouseButton, Button: b, Action: selection.Release}
}

func (e Event) String() string {
	if e.Kind == CursorMoved {
		return fmt.Sprintf("move(%.1f, %.1f)", e.X, e.Y)
	}
	return fmt.Sprintf("button(%d, %v)", e.Button, e.Action)
}
