// Package render defines the drawing surface the selection and line code draw
// through, plus headless implementations of it.
package render

import (
	"image/color"

	"github.com/alexxxkny/lineclip/pkg/geometry"
)

// Renderer draws a line segment given in centered coordinates
type Renderer interface {
	DrawSegment(p0, p1 geometry.Point, col color.RGBA)
}

// Segment is a single recorded draw call
type Segment struct {
	Line  geometry.Line
	Color color.RGBA
}

// Recorder is a Renderer that remembers every call, in order
type Recorder struct {
	Segments []Segment
}

// DrawSegment records the call
func (r *Recorder) DrawSegment(p0, p1 geometry.Point, col color.RGBA) {
	r.Segments = append(r.Segments, Segment{Line: geometry.NewLine(p0, p1), Color: col})
}

// Reset forgets all recorded calls
func (r *Recorder) Reset() {
	r.Segments = r.Segments[:0]
}

// WithColor returns the recorded segments drawn in col
func (r *Recorder) WithColor(col color.RGBA) []geometry.Line {
	var lines []geometry.Line
	for _, s := range r.Segments {
		if s.Color == col {
			lines = append(lines, s.Line)
		}
	}
	return lines
}
