// Package selection turns mouse drags into axis-aligned selection rectangles.
package selection

import (
	"image/color"

	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/render"
)

// Corner indexes the corners of a Rectangle, clockwise from the top-left
type Corner int

const (
	TopLeft Corner = iota
	TopRight
	BottomRight
	BottomLeft
)

// Rectangle is an immutable selection built from two opposite corners.
// Coordinates are y-up, so Bottom <= Top and Left <= Right always hold.
type Rectangle struct {
	corners [4]geometry.Point

	left, right float32
	top, bottom float32
}

// NewRectangle normalizes two arbitrary opposite corners into a rectangle
func NewRectangle(p, q geometry.Point) Rectangle {
	lo := p.Min(q)
	hi := p.Max(q)

	return Rectangle{
		corners: [4]geometry.Point{
			TopLeft:     {X: lo.X, Y: hi.Y},
			TopRight:    {X: hi.X, Y: hi.Y},
			BottomRight: {X: hi.X, Y: lo.Y},
			BottomLeft:  {X: lo.X, Y: lo.Y},
		},
		left:   lo.X,
		right:  hi.X,
		top:    hi.Y,
		bottom: lo.Y,
	}
}

func (r Rectangle) Left() float32   { return r.left }
func (r Rectangle) Right() float32  { return r.right }
func (r Rectangle) Top() float32    { return r.top }
func (r Rectangle) Bottom() float32 { return r.bottom }

// Corner returns a single corner
func (r Rectangle) Corner(c Corner) geometry.Point {
	return r.corners[c]
}

// Corners returns all four corners, clockwise from the top-left
func (r Rectangle) Corners() [4]geometry.Point {
	return r.corners
}

// Width returns Right - Left
func (r Rectangle) Width() float32 {
	return r.right - r.left
}

// Height returns Top - Bottom
func (r Rectangle) Height() float32 {
	return r.top - r.bottom
}

// IsDegenerate reports whether the rectangle has zero area
func (r Rectangle) IsDegenerate() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Contains reports whether p lies within the borders (inclusive)
func (r Rectangle) Contains(p geometry.Point) bool {
	return p.X >= r.left && p.X <= r.right && p.Y >= r.bottom && p.Y <= r.top
}

// Edges returns the outline as four segments, corner[i] -> corner[i+1 mod 4]
func (r Rectangle) Edges() [4]geometry.Line {
	var edges [4]geometry.Line
	for i := range r.corners {
		edges[i] = geometry.NewLine(r.corners[i], r.corners[(i+1)%len(r.corners)])
	}
	return edges
}

// Draw renders the outline
func (r Rectangle) Draw(dst render.Renderer, col color.RGBA) {
	for _, edge := range r.Edges() {
		dst.DrawSegment(edge.Start, edge.End, col)
	}
}
