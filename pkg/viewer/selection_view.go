// Package viewer provides a fyne widget that hosts the line clipping scene.
package viewer

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/alexxxkny/lineclip/internal/lines"
	"github.com/alexxxkny/lineclip/internal/scene"
	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
)

var (
	_ desktop.Mouseable = (*SelectionView)(nil)
	_ desktop.Hoverable = (*SelectionView)(nil)
	_ fyne.Draggable    = (*SelectionView)(nil)
)

// SelectionView turns fyne mouse input into scene events and draws each
// frame with canvas lines. Events are queued and applied on the next refresh.
type SelectionView struct {
	widget.BaseWidget
	scene      *scene.Scene
	background color.RGBA
	pending    []scene.Event
	lines      []fyne.CanvasObject
	width      float32
	height     float32
	onFrame    func(stats lines.Stats)
}

// NewSelectionView creates a view for sc
func NewSelectionView(sc *scene.Scene, background color.RGBA) *SelectionView {
	v := &SelectionView{
		scene:      sc,
		background: background,
	}
	v.ExtendBaseWidget(v)
	return v
}

// SetOnFrame sets the callback run after every drawn frame
func (v *SelectionView) SetOnFrame(callback func(stats lines.Stats)) {
	v.onFrame = callback
}

// Scene returns the hosted scene
func (v *SelectionView) Scene() *scene.Scene {
	return v.scene
}

// SetBackground changes the clear color
func (v *SelectionView) SetBackground(c color.RGBA) {
	v.background = c
	v.Refresh()
}

// CreateRenderer creates the renderer for the widget
func (v *SelectionView) CreateRenderer() fyne.WidgetRenderer {
	bg := canvas.NewRectangle(v.background)
	return &selectionViewRenderer{view: v, background: bg}
}

func (v *SelectionView) push(e scene.Event) {
	v.pending = append(v.pending, e)
	v.Refresh()
}

func (v *SelectionView) MouseIn(event *desktop.MouseEvent) {
	v.push(scene.Move(event.Position.X, event.Position.Y))
}

func (v *SelectionView) MouseMoved(event *desktop.MouseEvent) {
	v.push(scene.Move(event.Position.X, event.Position.Y))
}

func (v *SelectionView) MouseOut() {}

func (v *SelectionView) MouseDown(event *desktop.MouseEvent) {
	v.pending = append(v.pending, scene.Move(event.Position.X, event.Position.Y))
	if b, ok := toButton(event.Button); ok {
		v.push(scene.Press(b))
	}
}

func (v *SelectionView) MouseUp(event *desktop.MouseEvent) {
	v.pending = append(v.pending, scene.Move(event.Position.X, event.Position.Y))
	if b, ok := toButton(event.Button); ok {
		v.push(scene.Release(b))
	}
}

// Dragged keeps the cursor current while a button is held
func (v *SelectionView) Dragged(event *fyne.DragEvent) {
	v.push(scene.Move(event.Position.X, event.Position.Y))
}

func (v *SelectionView) DragEnd() {}

func toButton(b desktop.MouseButton) (scene.Button, bool) {
	switch b {
	case desktop.MouseButtonPrimary:
		return scene.ButtonLeft, true
	case desktop.MouseButtonSecondary:
		return scene.ButtonRight, true
	case desktop.MouseButtonTertiary:
		return scene.ButtonMiddle, true
	default:
		return 0, false
	}
}

// frame runs one scene frame for the current size and rebuilds the line objects
func (v *SelectionView) frame() lines.Stats {
	events := v.pending
	v.pending = nil

	collector := &lineCollector{cc: coords.NewConverter(int(v.width), int(v.height))}
	stats := v.scene.Frame(events, int(v.width), int(v.height), collector)
	v.lines = collector.objects

	if v.onFrame != nil {
		v.onFrame(stats)
	}
	return stats
}

// lineCollector converts centered segments to canvas lines
type lineCollector struct {
	cc      coords.Converter
	objects []fyne.CanvasObject
}

func (c *lineCollector) DrawSegment(p0, p1 geometry.Point, col color.RGBA) {
	a := c.cc.CenteredToTopLeft(p0)
	b := c.cc.CenteredToTopLeft(p1)

	line := canvas.NewLine(col)
	line.StrokeWidth = 1.5
	line.Position1 = fyne.NewPos(a.X, a.Y)
	line.Position2 = fyne.NewPos(b.X, b.Y)
	c.objects = append(c.objects, line)
}

// selectionViewRenderer implements fyne.WidgetRenderer
type selectionViewRenderer struct {
	view       *SelectionView
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *selectionViewRenderer) Layout(size fyne.Size) {
	r.view.width = size.Width
	r.view.height = size.Height
	r.background.Resize(size)
	r.rebuild()
}

func (r *selectionViewRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

func (r *selectionViewRenderer) Refresh() {
	r.background.FillColor = r.view.background
	r.rebuild()
	canvas.Refresh(r.view)
}

func (r *selectionViewRenderer) rebuild() {
	r.view.frame()
	r.objects = append([]fyne.CanvasObject{r.background}, r.view.lines...)
}

func (r *selectionViewRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *selectionViewRenderer) Destroy() {}
