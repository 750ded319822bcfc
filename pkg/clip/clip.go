// Package clip classifies line segments against a rectangle selection.
//
// Classification first tries the Cohen-Sutherland trivial accept/reject on the
// endpoint outcodes. Segments that survive are intersected with each border
// line in the fixed order left, right, top, bottom; an intersection counts only
// when it lies on the rectangle's boundary.
package clip

import (
	"fmt"

	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/selection"
)

// DefaultEpsilon is the boundary tolerance for centered pixel coordinates
const DefaultEpsilon float32 = 2

// Relation is how a segment relates to a selection
type Relation int

const (
	Outside Relation = iota
	Inside
	PartlyInside
)

func (r Relation) String() string {
	switch r {
	case Inside:
		return "inside"
	case PartlyInside:
		return "partly inside"
	default:
		return "outside"
	}
}

// Outcome is the result of classifying one segment.
// Visible is only meaningful when Relation is PartlyInside.
type Outcome struct {
	Relation Relation
	Visible  geometry.Line
}

func (o Outcome) String() string {
	if o.Relation == PartlyInside {
		return fmt.Sprintf("%s [%s]", o.Relation, o.Visible)
	}
	return o.Relation.String()
}

// Clipper classifies segments with a fixed boundary tolerance
type Clipper struct {
	// Epsilon is how far a computed intersection may sit from its border line.
	// It has to match the scale of the coordinate space.
	Epsilon float32
}

// New creates a Clipper with the given tolerance
func New(epsilon float32) Clipper {
	return Clipper{Epsilon: epsilon}
}

// Classify uses DefaultEpsilon
func Classify(r selection.Rectangle, l geometry.Line) Outcome {
	return New(DefaultEpsilon).Classify(r, l)
}

// Classify determines whether l is inside, outside or partly inside r
func (c Clipper) Classify(r selection.Rectangle, l geometry.Line) Outcome {
	startCode := ComputeOutcode(l.Start, r)
	endCode := ComputeOutcode(l.End, r)

	if startCode|endCode == 0 {
		return Outcome{Relation: Inside}
	}
	if startCode&endCode != 0 {
		return Outcome{Relation: Outside}
	}

	hits := c.boundaryHits(r, l)
	switch len(hits) {
	case 0:
		return Outcome{Relation: Outside}
	case 1:
		// Keep l's direction so the visible part walks the same way.
		if startCode == 0 {
			return Outcome{Relation: PartlyInside, Visible: geometry.NewLine(l.Start, hits[0])}
		}
		if endCode == 0 {
			return Outcome{Relation: PartlyInside, Visible: geometry.NewLine(hits[0], l.End)}
		}
		// Only a corner graze plus one border; nothing measurable is inside.
		return Outcome{Relation: Outside}
	default:
		return Outcome{Relation: PartlyInside, Visible: geometry.NewLine(hits[0], hits[1])}
	}
}

// boundaryHits intersects l with the border lines in the order left, right,
// top, bottom and keeps the points lying on the rectangle's boundary.
func (c Clipper) boundaryHits(r selection.Rectangle, l geometry.Line) []geometry.Point {
	d := l.Delta()
	hits := make([]geometry.Point, 0, 2)

	verticals := [...]float32{r.Left(), r.Right()}
	for _, x := range verticals {
		if d.X == 0 {
			break
		}
		t := (x - l.Start.X) / d.X
		if t < 0 || t > 1 {
			continue
		}
		p := l.At(t)
		if abs(p.X-x) < c.Epsilon && r.Bottom() < p.Y && p.Y < r.Top() {
			hits = append(hits, p)
		}
	}

	horizontals := [...]float32{r.Top(), r.Bottom()}
	for _, y := range horizontals {
		if d.Y == 0 {
			break
		}
		t := (y - l.Start.Y) / d.Y
		if t < 0 || t > 1 {
			continue
		}
		p := l.At(t)
		if abs(p.Y-y) < c.Epsilon && r.Left() < p.X && p.X < r.Right() {
			hits = append(hits, p)
		}
	}

	return hits
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
