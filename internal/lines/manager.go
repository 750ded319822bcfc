// Package lines owns the population of candidate segments and draws them
// against the current selection.
package lines

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/alexxxkny/lineclip/pkg/clip"
	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/render"
	"github.com/alexxxkny/lineclip/pkg/selection"
)

var (
	ErrNegativeCount = errors.New("line count must not be negative")
	ErrTooManyLines  = errors.New("line count exceeds maximum")
)

// Palette picks a draw color per classification outcome
type Palette struct {
	Default color.RGBA
	Inside  color.RGBA
	Outside color.RGBA
	Partial color.RGBA
}

// Stats counts the outcomes of the last Draw
type Stats struct {
	Inside  int
	Outside int
	Partly  int
}

func (s Stats) Total() int {
	return s.Inside + s.Outside + s.Partly
}

func (s Stats) String() string {
	return fmt.Sprintf("inside %d, outside %d, partly inside %d", s.Inside, s.Outside, s.Partly)
}

// Manager holds the candidate segments. The population only changes through
// SetCount, Regenerate and Add.
type Manager struct {
	segments []geometry.Line
	max      int
	seed     int64
	rnd      *rand.Rand
	area     coords.Bounds
	clipper  clip.Clipper
	palette  Palette
}

// NewManager creates an empty manager generating segments inside area
func NewManager(area coords.Bounds, maxCount int, seed int64, clipper clip.Clipper, palette Palette) *Manager {
	return &Manager{
		max:     maxCount,
		seed:    seed,
		rnd:     rand.New(rand.NewSource(seed)),
		area:    area,
		clipper: clipper,
		palette: palette,
	}
}

// Count returns the number of managed segments
func (m *Manager) Count() int {
	return len(m.segments)
}

// Max returns the largest accepted count
func (m *Manager) Max() int {
	return m.max
}

// Segments returns a copy of the managed segments
func (m *Manager) Segments() []geometry.Line {
	out := make([]geometry.Line, len(m.segments))
	copy(out, m.segments)
	return out
}

// SetCount grows the population with random segments or truncates it
func (m *Manager) SetCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeCount, n)
	}
	if n > m.max {
		return fmt.Errorf("%w: %d > %d", ErrTooManyLines, n, m.max)
	}
	if n == len(m.segments) {
		return nil
	}

	slog.Debug("line count changed", "from", len(m.segments), "to", n)
	if n < len(m.segments) {
		m.segments = m.segments[:n]
		return nil
	}
	for len(m.segments) < n {
		m.segments = append(m.segments, m.randomSegment())
	}
	return nil
}

// Add appends a specific segment, subject to the same maximum as SetCount
func (m *Manager) Add(l geometry.Line) error {
	if len(m.segments) >= m.max {
		return fmt.Errorf("%w: %d", ErrTooManyLines, m.max)
	}
	m.segments = append(m.segments, l)
	return nil
}

// Regenerate replaces every segment with a fresh random one
func (m *Manager) Regenerate(seed int64) {
	m.seed = seed
	m.rnd = rand.New(rand.NewSource(seed))
	for i := range m.segments {
		m.segments[i] = m.randomSegment()
	}
}

// Seed returns the seed of the current random source
func (m *Manager) Seed() int64 {
	return m.seed
}

// SetPalette changes the colors used by Draw
func (m *Manager) SetPalette(p Palette) {
	m.palette = p
}

// SetClipper changes the classification tolerance
func (m *Manager) SetClipper(c clip.Clipper) {
	m.clipper = c
}

// SetArea changes where new random segments are placed
func (m *Manager) SetArea(area coords.Bounds) {
	m.area = area
}

// Draw renders every segment. Without a selection segments use the default
// color; otherwise each one is classified and colored by its outcome, with the
// visible part of a partial segment drawn over the full segment.
func (m *Manager) Draw(dst render.Renderer, sel *selection.Rectangle) Stats {
	var stats Stats
	for _, l := range m.segments {
		if sel == nil {
			dst.DrawSegment(l.Start, l.End, m.palette.Default)
			continue
		}

		outcome := m.clipper.Classify(*sel, l)
		switch outcome.Relation {
		case clip.Inside:
			stats.Inside++
			dst.DrawSegment(l.Start, l.End, m.palette.Inside)
		case clip.PartlyInside:
			stats.Partly++
			dst.DrawSegment(l.Start, l.End, m.palette.Outside)
			dst.DrawSegment(outcome.Visible.Start, outcome.Visible.End, m.palette.Partial)
		default:
			stats.Outside++
			dst.DrawSegment(l.Start, l.End, m.palette.Outside)
		}
	}
	return stats
}

func (m *Manager) randomSegment() geometry.Line {
	return geometry.NewLine(m.randomPoint(), m.randomPoint())
}

func (m *Manager) randomPoint() geometry.Point {
	return geometry.Point{
		X: m.area.Left + m.rnd.Float32()*(m.area.Right-m.area.Left),
		Y: m.area.Bottom + m.rnd.Float32()*(m.area.Top-m.area.Bottom),
	}
}
