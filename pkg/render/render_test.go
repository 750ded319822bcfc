package render

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/alexxxkny/lineclip/pkg/geometry"
)

var (
	black = color.RGBA{0, 0, 0, 255}
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

func TestRecorder(t *testing.T) {
	var r Recorder
	r.DrawSegment(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1), red)
	r.DrawSegment(geometry.NewPoint(2, 2), geometry.NewPoint(3, 3), black)
	r.DrawSegment(geometry.NewPoint(4, 4), geometry.NewPoint(5, 5), red)

	want := []geometry.Line{
		geometry.NewLine(geometry.NewPoint(0, 0), geometry.NewPoint(1, 1)),
		geometry.NewLine(geometry.NewPoint(4, 4), geometry.NewPoint(5, 5)),
	}
	if diff := cmp.Diff(want, r.WithColor(red)); diff != "" {
		t.Errorf("WithColor mismatch (-want +got):\n%s", diff)
	}

	r.Reset()
	if len(r.Segments) != 0 {
		t.Errorf("expected empty recorder after Reset, got %d segments", len(r.Segments))
	}
}

func TestRasterHorizontalLine(t *testing.T) {
	r := NewRaster(20, 10, white)
	// centered (-5, 0)..(5, 0) is window row 5, columns 5..15
	r.DrawSegment(geometry.NewPoint(-5, 0), geometry.NewPoint(5, 0), red)

	img := r.Image()
	for x := 5; x <= 15; x++ {
		if got := img.RGBAAt(x, 5); got != red {
			t.Errorf("pixel (%d, 5): expected red, got %v", x, got)
		}
	}
	if got := img.RGBAAt(4, 5); got != white {
		t.Errorf("pixel (4, 5) should be untouched, got %v", got)
	}
	if got := img.RGBAAt(10, 4); got != white {
		t.Errorf("pixel (10, 4) should be untouched, got %v", got)
	}
}

func TestRasterVerticalLineFlipsY(t *testing.T) {
	r := NewRaster(10, 10, white)
	// centered y=+5 is the top row of the window
	r.DrawSegment(geometry.NewPoint(0, 5), geometry.NewPoint(0, 2), black)

	img := r.Image()
	for y := 0; y <= 3; y++ {
		if got := img.RGBAAt(5, y); got != black {
			t.Errorf("pixel (5, %d): expected black, got %v", y, got)
		}
	}
	if got := img.RGBAAt(5, 4); got != white {
		t.Errorf("pixel (5, 4) should be untouched, got %v", got)
	}
}

func TestCanvasDrawsSegment(t *testing.T) {
	c, err := NewCanvas(40, 40, white)
	if err != nil {
		t.Fatalf("NewCanvas failed: %v", err)
	}
	c.SetLineWidth(3)
	c.DrawSegment(geometry.NewPoint(-10, 0), geometry.NewPoint(10, 0), red)

	r, g, b, _ := c.dc.Image().At(20, 20).RGBA()
	if r>>8 < 200 || g>>8 > 60 || b>>8 > 60 {
		t.Errorf("expected a red pixel at the canvas center, got (%d, %d, %d)", r>>8, g>>8, b>>8)
	}
}
