package geometry

import "fmt"

// Line is an ordered pair of points. Direction only matters for parametrization.
type Line struct {
	Start Point
	End   Point
}

// NewLine creates a new line segment
func NewLine(start, end Point) Line {
	return Line{Start: start, End: end}
}

// Delta returns End - Start
func (l Line) Delta() Point {
	return l.End.Sub(l.Start)
}

// At returns the point Start + t*(End-Start)
func (l Line) At(t float32) Point {
	return l.Start.Add(l.Delta().Mul(t))
}

// Length returns the segment length
func (l Line) Length() float32 {
	return l.Start.Distance(l.End)
}

// Reversed returns the same segment walked from End to Start
func (l Line) Reversed() Line {
	return Line{Start: l.End, End: l.Start}
}

// IsDegenerate reports whether both endpoints coincide
func (l Line) IsDegenerate() bool {
	return l.Start == l.End
}

func (l Line) String() string {
	return fmt.Sprintf("%s -> %s", l.Start, l.End)
}
