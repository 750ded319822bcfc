package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// rayRenderer draws centered-space segments into the current raylib frame
type rayRenderer struct {
	cc        coords.Converter
	thickness float32
}

func newRayRenderer(width, height int) rayRenderer {
	return rayRenderer{cc: coords.NewConverter(width, height), thickness: 1.5}
}

func (r rayRenderer) DrawSegment(p0, p1 geometry.Point, col color.RGBA) {
	a := r.cc.CenteredToTopLeft(p0)
	b := r.cc.CenteredToTopLeft(p1)
	rl.DrawLineEx(rl.Vector2{X: a.X, Y: a.Y}, rl.Vector2{X: b.X, Y: b.Y}, r.thickness, toRaylib(col))
}

func toRaylib(c color.RGBA) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, c.A)
}
