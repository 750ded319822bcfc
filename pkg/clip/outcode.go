package clip

import (
	"strings"

	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/selection"
)

// Outcode classifies a point against the four half-planes of a rectangle
type Outcode uint8

const (
	Above Outcode = 1 << iota
	Below
	RightOf
	LeftOf
)

// ComputeOutcode returns the region code of p. Points on a border count as inside.
func ComputeOutcode(p geometry.Point, r selection.Rectangle) Outcode {
	var c Outcode
	if p.X < r.Left() {
		c |= LeftOf
	} else if p.X > r.Right() {
		c |= RightOf
	}
	if p.Y < r.Bottom() {
		c |= Below
	} else if p.Y > r.Top() {
		c |= Above
	}
	return c
}

func (c Outcode) String() string {
	if c == 0 {
		return "inside"
	}
	var parts []string
	if c&LeftOf != 0 {
		parts = append(parts, "left")
	}
	if c&RightOf != 0 {
		parts = append(parts, "right")
	}
	if c&Below != 0 {
		parts = append(parts, "below")
	}
	if c&Above != 0 {
		parts = append(parts, "above")
	}
	return strings.Join(parts, "|")
}
