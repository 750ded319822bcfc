package lines

import (
	"errors"
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexxxkny/lineclip/pkg/clip"
	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/render"
	"github.com/alexxxkny/lineclip/pkg/selection"
)

var palette = Palette{
	Default: color.RGBA{1, 1, 1, 255},
	Inside:  color.RGBA{2, 2, 2, 255},
	Outside: color.RGBA{3, 3, 3, 255},
	Partial: color.RGBA{4, 4, 4, 255},
}

var area = coords.Bounds{Left: -400, Right: 400, Bottom: -300, Top: 300}

func newManager() *Manager {
	return NewManager(area, 100, 7, clip.New(clip.DefaultEpsilon), palette)
}

func seg(x0, y0, x1, y1 float32) geometry.Line {
	return geometry.NewLine(geometry.NewPoint(x0, y0), geometry.NewPoint(x1, y1))
}

func TestSetCount(t *testing.T) {
	m := newManager()

	if err := m.SetCount(20); err != nil {
		t.Fatalf("SetCount(20) failed: %v", err)
	}
	if m.Count() != 20 {
		t.Fatalf("expected 20 segments, got %d", m.Count())
	}
	for _, l := range m.Segments() {
		if !area.Contains(l.Start) || !area.Contains(l.End) {
			t.Errorf("segment %v generated outside %+v", l, area)
		}
	}

	before := m.Segments()
	if err := m.SetCount(5); err != nil {
		t.Fatalf("SetCount(5) failed: %v", err)
	}
	if diff := cmp.Diff(before[:5], m.Segments()); diff != "" {
		t.Errorf("shrinking should keep the first segments (-want +got):\n%s", diff)
	}
}

func TestSetCountRejects(t *testing.T) {
	m := newManager()
	_ = m.SetCount(3)

	if err := m.SetCount(-1); !errors.Is(err, ErrNegativeCount) {
		t.Errorf("expected ErrNegativeCount, got %v", err)
	}
	if err := m.SetCount(101); !errors.Is(err, ErrTooManyLines) {
		t.Errorf("expected ErrTooManyLines, got %v", err)
	}
	if m.Count() != 3 {
		t.Errorf("rejected updates must not change the population, got %d", m.Count())
	}
}

func TestDeterministicGeneration(t *testing.T) {
	a := newManager()
	b := newManager()
	_ = a.SetCount(10)
	_ = b.SetCount(10)
	if diff := cmp.Diff(a.Segments(), b.Segments()); diff != "" {
		t.Errorf("same seed should generate the same segments (-a +b):\n%s", diff)
	}

	b.Regenerate(99)
	if cmp.Equal(a.Segments(), b.Segments()) {
		t.Error("Regenerate with a new seed should change the segments")
	}
	if b.Seed() != 99 || b.Count() != 10 {
		t.Errorf("unexpected state after Regenerate: seed %d, count %d", b.Seed(), b.Count())
	}
}

func TestDrawWithoutSelection(t *testing.T) {
	m := newManager()
	_ = m.SetCount(4)

	var rec render.Recorder
	stats := m.Draw(&rec, nil)

	if stats.Total() != 0 {
		t.Errorf("expected no classification without a selection, got %v", stats)
	}
	if got := len(rec.WithColor(palette.Default)); got != 4 {
		t.Errorf("expected 4 default-colored segments, got %d", got)
	}
}

func TestDrawClassifies(t *testing.T) {
	m := newManager()
	for _, l := range []geometry.Line{
		seg(0, 0, 5, 5),       // inside
		seg(-20, 20, -11, 11), // outside
		seg(-20, 0, 20, 0),    // partly inside
	} {
		if err := m.Add(l); err != nil {
			t.Fatalf("Add failed: %v", err)
		}
	}

	sel := selection.NewRectangle(geometry.NewPoint(-10, 10), geometry.NewPoint(10, -10))
	var rec render.Recorder
	stats := m.Draw(&rec, &sel)

	if stats != (Stats{Inside: 1, Outside: 1, Partly: 1}) {
		t.Errorf("unexpected stats: %v", stats)
	}
	if got := rec.WithColor(palette.Inside); len(got) != 1 || got[0] != seg(0, 0, 5, 5) {
		t.Errorf("inside segments: %v", got)
	}
	if got := rec.WithColor(palette.Outside); len(got) != 2 {
		t.Errorf("expected outside color for the outside segment and the partial background, got %v", got)
	}
	partial := rec.WithColor(palette.Partial)
	if len(partial) != 1 || !partial[0].Start.ApproxEqual(geometry.NewPoint(-10, 0), 1e-3) || !partial[0].End.ApproxEqual(geometry.NewPoint(10, 0), 1e-3) {
		t.Errorf("partial segments: %v", partial)
	}
}

func TestAddRespectsMax(t *testing.T) {
	m := NewManager(area, 1, 1, clip.New(2), palette)
	if err := m.Add(seg(0, 0, 1, 1)); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if err := m.Add(seg(0, 0, 1, 1)); !errors.Is(err, ErrTooManyLines) {
		t.Errorf("expected ErrTooManyLines, got %v", err)
	}
}
