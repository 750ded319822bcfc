// Package coords maps points between the pixel spaces a window reports and the
// centered spaces the selection and clipping code work in.
//
// Three spaces are involved:
//
//   - top-left pixel: origin at the top-left corner, y grows downward, [0,w]x[0,h]
//   - centered pixel: origin at the viewport center, y grows upward, [-w/2,w/2]x[-h/2,h/2]
//   - centered normalized: centered pixel scaled by the half extent, [-1,1]x[-1,1]
//
// Every conversion clamps its input to the bounds of the source space first,
// so out-of-range input saturates instead of failing.
package coords

import "github.com/alexxxkny/lineclip/pkg/geometry"

// Bounds is an axis-aligned interval pair used for clamping
type Bounds struct {
	Left, Right float32
	Bottom, Top float32
}

// Clamp saturates p to the bounds
func (b Bounds) Clamp(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: clamp(p.X, b.Left, b.Right),
		Y: clamp(p.Y, b.Bottom, b.Top),
	}
}

// Contains reports whether p lies within the bounds (inclusive)
func (b Bounds) Contains(p geometry.Point) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Bottom && p.Y <= b.Top
}

// Converter converts points for a fixed viewport size
type Converter struct {
	width  float32
	height float32

	pixel      Bounds
	centered   Bounds
	normalized Bounds
}

// NewConverter creates a converter for a viewport of the given pixel size
func NewConverter(width, height int) Converter {
	w := float32(width)
	h := float32(height)
	return Converter{
		width:      w,
		height:     h,
		pixel:      Bounds{Left: 0, Right: w, Bottom: 0, Top: h},
		centered:   Bounds{Left: -w / 2, Right: w / 2, Bottom: -h / 2, Top: h / 2},
		normalized: Bounds{Left: -1, Right: 1, Bottom: -1, Top: 1},
	}
}

// Width returns the viewport width in pixels
func (c Converter) Width() float32 { return c.width }

// Height returns the viewport height in pixels
func (c Converter) Height() float32 { return c.height }

// PixelBounds returns the top-left pixel space bounds
func (c Converter) PixelBounds() Bounds { return c.pixel }

// CenteredBounds returns the centered pixel space bounds
func (c Converter) CenteredBounds() Bounds { return c.centered }

// PixelToCentered shifts a pixel point by the half extent without flipping y
func (c Converter) PixelToCentered(p geometry.Point) geometry.Point {
	p = c.pixel.Clamp(p)
	return geometry.Point{X: p.X - c.width/2, Y: p.Y - c.height/2}
}

// CenteredToPixel is the inverse of PixelToCentered
func (c Converter) CenteredToPixel(p geometry.Point) geometry.Point {
	p = c.centered.Clamp(p)
	return geometry.Point{X: p.X + c.width/2, Y: p.Y + c.height/2}
}

// CenteredToNormalized scales a centered pixel point into [-1,1]
func (c Converter) CenteredToNormalized(p geometry.Point) geometry.Point {
	p = c.centered.Clamp(p)
	return geometry.Point{X: safeDiv(p.X, c.width/2), Y: safeDiv(p.Y, c.height/2)}
}

// NormalizedToCentered scales a normalized point back into centered pixels
func (c Converter) NormalizedToCentered(p geometry.Point) geometry.Point {
	p = c.normalized.Clamp(p)
	return geometry.Point{X: p.X * c.width / 2, Y: p.Y * c.height / 2}
}

// TopLeftToCentered converts a window pixel (y down) into centered pixels (y up)
func (c Converter) TopLeftToCentered(p geometry.Point) geometry.Point {
	p = c.pixel.Clamp(p)
	return geometry.Point{X: p.X - c.width/2, Y: -(p.Y - c.height/2)}
}

// CenteredToTopLeft converts centered pixels (y up) into window pixels (y down)
func (c Converter) CenteredToTopLeft(p geometry.Point) geometry.Point {
	p = c.centered.Clamp(p)
	return geometry.Point{X: p.X + c.width/2, Y: c.height/2 - p.Y}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// zero-sized viewports (minimised windows) map everything to the origin
func safeDiv(v, d float32) float32 {
	if d == 0 {
		return 0
	}
	return v / d
}
