package config

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Color is an opaque RGB color written as "#rrggbb" in config files
type Color struct {
	value color.RGBA
}

// RGB creates an opaque color
func RGB(r, g, b uint8) Color {
	return Color{value: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// ParseColor parses "#rrggbb" or "#rgb"
func ParseColor(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// Value returns the color for drawing
func (c Color) Value() color.RGBA {
	return c.value
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.value.R, c.value.G, c.value.B)
}

func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (interface{}, error) {
	return c.String(), nil
}
