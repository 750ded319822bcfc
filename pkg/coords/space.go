package coords

import (
	"fmt"
	"strings"

	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// Space names one of the coordinate spaces a Converter understands
type Space int

const (
	TopLeft Space = iota
	Pixel
	Centered
	Normalized
)

var spaceNames = map[Space]string{
	TopLeft:    "topleft",
	Pixel:      "pixel",
	Centered:   "centered",
	Normalized: "normalized",
}

func (s Space) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// ParseSpace parses a space name as printed by Space.String
func ParseSpace(name string) (Space, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for s, n := range spaceNames {
		if n == name {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown coordinate space %q (want topleft, pixel, centered or normalized)", name)
}

// Convert maps p from one space to another, routing through centered pixels
func (c Converter) Convert(p geometry.Point, from, to Space) (geometry.Point, error) {
	var centered geometry.Point
	switch from {
	case TopLeft:
		centered = c.TopLeftToCentered(p)
	case Pixel:
		centered = c.PixelToCentered(p)
	case Centered:
		centered = c.centered.Clamp(p)
	case Normalized:
		centered = c.NormalizedToCentered(p)
	default:
		return geometry.Point{}, fmt.Errorf("unsupported source space %v", from)
	}

	switch to {
	case TopLeft:
		return c.CenteredToTopLeft(centered), nil
	case Pixel:
		return c.CenteredToPixel(centered), nil
	case Centered:
		return centered, nil
	case Normalized:
		return c.CenteredToNormalized(centered), nil
	default:
		return geometry.Point{}, fmt.Errorf("unsupported target space %v", to)
	}
}
