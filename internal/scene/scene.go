// Package scene runs one frame of the selection viewer independently of the
// windowing toolkit: apply the frame's events, build the selection, classify
// and draw.
package scene

import (
	"image/color"

	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/internal/lines"
	"github.com/alexxxkny/lineclip/pkg/clip"
	"github.com/alexxxkny/lineclip/pkg/coords"
	"github.com/alexxxkny/lineclip/pkg/geometry"
	"github.com/alexxxkny/lineclip/pkg/render"
	"github.com/alexxxkny/lineclip/pkg/selection"
)

// Scene owns all per-window state. It is not safe for concurrent use; the
// frame loop is its only caller.
type Scene struct {
	builder *selection.Builder
	lines   *lines.Manager
	cursor  geometry.Point

	selectionColor color.RGBA
	axesColor      color.RGBA
	minDiagonal    float32
	showAxes       bool

	stats lines.Stats
}

// New creates a scene and generates the configured number of segments
func New(cfg *config.Config) (*Scene, error) {
	cc := coords.NewConverter(cfg.Window.Width, cfg.Window.Height)
	manager := lines.NewManager(
		cc.CenteredBounds(),
		cfg.Lines.Max,
		cfg.Lines.Seed,
		clip.New(cfg.Clip.Epsilon),
		paletteFrom(cfg),
	)
	if err := manager.SetCount(cfg.Lines.Count); err != nil {
		return nil, err
	}

	s := &Scene{
		builder:  selection.NewBuilder(),
		lines:    manager,
		showAxes: true,
	}
	s.applyStyle(cfg)
	return s, nil
}

// ApplyConfig picks up colors and tolerances from a reloaded configuration.
// The segment population is left alone.
func (s *Scene) ApplyConfig(cfg *config.Config) {
	s.lines.SetPalette(paletteFrom(cfg))
	s.lines.SetClipper(clip.New(cfg.Clip.Epsilon))
	s.applyStyle(cfg)
}

func (s *Scene) applyStyle(cfg *config.Config) {
	s.selectionColor = cfg.Colors.Selection.Value()
	s.axesColor = cfg.Colors.Axes.Value()
	s.minDiagonal = cfg.Selection.MinDiagonal
}

func paletteFrom(cfg *config.Config) lines.Palette {
	return lines.Palette{
		Default: cfg.Colors.Default.Value(),
		Inside:  cfg.Colors.Inside.Value(),
		Outside: cfg.Colors.Outside.Value(),
		Partial: cfg.Colors.Partial.Value(),
	}
}

// Apply feeds events to the selection builder in arrival order
func (s *Scene) Apply(events []Event, cc coords.Converter) {
	for _, e := range events {
		switch e.Kind {
		case CursorMoved:
			s.cursor = cc.TopLeftToCentered(geometry.NewPoint(e.X, e.Y))
			s.builder.Update(s.cursor, selection.NoAction)
		case MouseButton:
			if e.Button == ButtonLeft {
				s.builder.Update(s.cursor, e.Action)
			}
		}
	}
}

// Draw renders axes, segments and the selection outline
func (s *Scene) Draw(dst render.Renderer, cc coords.Converter) lines.Stats {
	if s.showAxes {
		b := cc.CenteredBounds()
		dst.DrawSegment(geometry.NewPoint(b.Left, 0), geometry.NewPoint(b.Right, 0), s.axesColor)
		dst.DrawSegment(geometry.NewPoint(0, b.Bottom), geometry.NewPoint(0, b.Top), s.axesColor)
	}

	sel, ok := s.builder.Build()
	if !ok {
		s.stats = s.lines.Draw(dst, nil)
		return s.stats
	}
	s.stats = s.lines.Draw(dst, &sel)
	sel.Draw(dst, s.selectionColor)
	return s.stats
}

// Frame runs one full frame for a viewport of the given size
func (s *Scene) Frame(events []Event, width, height int, dst render.Renderer) lines.Stats {
	cc := coords.NewConverter(width, height)
	s.lines.SetArea(cc.CenteredBounds())
	s.Apply(events, cc)
	return s.Draw(dst, cc)
}

// Selection returns the current selection, if any
func (s *Scene) Selection() (selection.Rectangle, bool) {
	return s.builder.Build()
}

// IsClick reports whether the current selection is shorter than the
// configured minimum diagonal
func (s *Scene) IsClick() bool {
	_, ok := s.builder.Build()
	return ok && s.builder.Diagonal() < s.minDiagonal
}

// ClearSelection returns the builder to idle
func (s *Scene) ClearSelection() {
	s.builder.Reset()
}

// ToggleAxes shows or hides the coordinate axes
func (s *Scene) ToggleAxes() {
	s.showAxes = !s.showAxes
}

// Cursor returns the last cursor position in centered coordinates
func (s *Scene) Cursor() geometry.Point {
	return s.cursor
}

// Lines exposes the segment manager for count changes
func (s *Scene) Lines() *lines.Manager {
	return s.lines
}

// Stats returns the outcome counts of the last Draw
func (s *Scene) Stats() lines.Stats {
	return s.stats
}

// State returns the selection builder state
func (s *Scene) State() selection.State {
	return s.builder.State()
}
