package render

import (
	"image"
	"image/color"
	"math"

	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// Raster draws aliased one-pixel lines straight into an RGBA image
type Raster struct {
	img *image.RGBA
	cc  coords.Converter
}

// NewRaster creates a width x height image filled with the background color
func NewRaster(width, height int, background color.RGBA) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = background.R
		img.Pix[i+1] = background.G
		img.Pix[i+2] = background.B
		img.Pix[i+3] = background.A
	}
	return &Raster{img: img, cc: coords.NewConverter(width, height)}
}

// Image returns the backing image
func (r *Raster) Image() *image.RGBA {
	return r.img
}

// DrawSegment converts both points to window pixels and rasterizes the line
func (r *Raster) DrawSegment(p0, p1 geometry.Point, col color.RGBA) {
	a := r.cc.CenteredToTopLeft(p0)
	b := r.cc.CenteredToTopLeft(p1)
	drawLine(r.img, round(a.X), round(a.Y), round(b.X), round(b.Y), col)
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

// drawLine draws a line on an image using Bresenham's algorithm
func drawLine(img *image.RGBA, x1, y1, x2, y2 int, col color.RGBA) {
	bounds := img.Bounds()

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		// Pixels on the right/bottom edge (x == width) are dropped
		if x1 >= 0 && x1 < bounds.Max.X && y1 >= 0 && y1 < bounds.Max.Y {
			img.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
