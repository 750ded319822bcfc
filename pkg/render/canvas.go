package render

import (
	"fmt"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// Canvas renders anti-aliased lines and text through a gg drawing context
type Canvas struct {
	dc        *gg.Context
	cc        coords.Converter
	lineWidth float64
}

// NewCanvas creates a canvas of the given pixel size, cleared to background
func NewCanvas(width, height int, background color.RGBA) (*Canvas, error) {
	dc := gg.NewContext(width, height)
	dc.SetColor(background)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	return &Canvas{
		dc:        dc,
		cc:        coords.NewConverter(width, height),
		lineWidth: 1.5,
	}, nil
}

// SetLineWidth changes the stroke width of subsequent segments
func (c *Canvas) SetLineWidth(w float64) {
	c.lineWidth = w
}

// DrawSegment strokes a segment given in centered coordinates
func (c *Canvas) DrawSegment(p0, p1 geometry.Point, col color.RGBA) {
	a := c.cc.CenteredToTopLeft(p0)
	b := c.cc.CenteredToTopLeft(p1)

	c.dc.SetLineWidth(c.lineWidth)
	c.dc.SetColor(col)
	c.dc.DrawLine(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
	c.dc.Stroke()
}

// DrawLabel writes text lines starting at the top-left window pixel (x, y)
func (c *Canvas) DrawLabel(lines []string, x, y float64, col color.RGBA) {
	c.dc.SetColor(col)
	_, lineHeight := c.dc.MeasureString("M")
	for i, line := range lines {
		c.dc.DrawString(line, x, y+float64(i+1)*lineHeight*1.4)
	}
}

// SavePNG writes the canvas to a PNG file
func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
