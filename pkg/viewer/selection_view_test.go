package viewer

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"

	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/internal/lines"
	"github.com/alexxxkny/lineclip/internal/scene"
	"github.com/alexxxkny/lineclip/pkg/geometry"
)

func newView(t *testing.T) (*SelectionView, *lines.Stats) {
	t.Helper()
	cfg := config.Default()
	cfg.Window.Width = 800
	cfg.Window.Height = 600
	cfg.Lines.Count = 0

	sc, err := scene.New(cfg)
	if err != nil {
		t.Fatalf("scene.New failed: %v", err)
	}
	if err := sc.Lines().Add(geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(5, 5))); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	v := NewSelectionView(sc, color.RGBA{255, 255, 255, 255})
	last := &lines.Stats{}
	v.SetOnFrame(func(stats lines.Stats) { *last = stats })
	test.WidgetRenderer(v)
	v.Resize(fyne.NewSize(800, 600))
	return v, last
}

func mouse(x, y float32, b desktop.MouseButton) *desktop.MouseEvent {
	return &desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(x, y)},
		Button:     b,
	}
}

func TestSelectionViewDrag(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v, last := newView(t)

	v.MouseDown(mouse(300, 200, desktop.MouseButtonPrimary))
	v.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(500, 400)}})
	v.MouseUp(mouse(500, 400, desktop.MouseButtonPrimary))

	sel, ok := v.Scene().Selection()
	if !ok {
		t.Fatal("expected a selection after the drag")
	}
	if sel.Left() != -100 || sel.Right() != 100 || sel.Top() != 100 || sel.Bottom() != -100 {
		t.Errorf("unexpected selection L%v R%v T%v B%v", sel.Left(), sel.Right(), sel.Top(), sel.Bottom())
	}
	if last.Inside != 1 || last.Total() != 1 {
		t.Errorf("expected one inside segment, got %v", *last)
	}
}

func TestSelectionViewIgnoresSecondaryButton(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v, _ := newView(t)

	v.MouseDown(mouse(300, 200, desktop.MouseButtonSecondary))
	v.MouseMoved(mouse(500, 400, 0))
	v.MouseUp(mouse(500, 400, desktop.MouseButtonSecondary))

	if _, ok := v.Scene().Selection(); ok {
		t.Error("secondary button must not start a selection")
	}
}

func TestSelectionViewObjects(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	v, _ := newView(t)
	r := test.WidgetRenderer(v)

	objects := r.Objects()
	if len(objects) == 0 {
		t.Fatal("expected background and line objects")
	}
	if _, ok := objects[0].(*canvas.Rectangle); !ok {
		t.Errorf("expected background rectangle first, got %T", objects[0])
	}

	// Two axes plus one segment, no selection outline yet
	lineCount := 0
	for _, o := range objects {
		if _, ok := o.(*canvas.Line); ok {
			lineCount++
		}
	}
	if lineCount != 3 {
		t.Errorf("expected 3 lines, got %d", lineCount)
	}
}

func TestToButton(t *testing.T) {
	tests := []struct {
		in   desktop.MouseButton
		want scene.Button
		ok   bool
	}{
		{desktop.MouseButtonPrimary, scene.ButtonLeft, true},
		{desktop.MouseButtonSecondary, scene.ButtonRight, true},
		{desktop.MouseButtonTertiary, scene.ButtonMiddle, true},
		{desktop.MouseButton(64), 0, false},
	}
	for _, tt := range tests {
		got, ok := toButton(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("toButton(%v) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
