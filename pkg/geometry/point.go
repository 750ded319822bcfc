package geometry

import (
	"fmt"
	"math"
)

// Point represents a 2D coordinate in whichever space the caller works in
type Point struct {
	X, Y float32
}

// NewPoint creates a new 2D point
func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Mul multiplies both components by a scalar
func (p Point) Mul(scalar float32) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

// Length returns the distance of the point from the origin
func (p Point) Length() float32 {
	return float32(math.Hypot(float64(p.X), float64(p.Y)))
}

// Distance returns the distance between two points
func (p Point) Distance(other Point) float32 {
	return p.Sub(other).Length()
}

// Min returns a point with the minimum components of two points
func (p Point) Min(other Point) Point {
	return Point{X: min(p.X, other.X), Y: min(p.Y, other.Y)}
}

// Max returns a point with the maximum components of two points
func (p Point) Max(other Point) Point {
	return Point{X: max(p.X, other.X), Y: max(p.Y, other.Y)}
}

// ApproxEqual reports whether both components differ by less than eps
func (p Point) ApproxEqual(other Point, eps float32) bool {
	return abs32(p.X-other.X) < eps && abs32(p.Y-other.Y) < eps
}

func (p Point) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
