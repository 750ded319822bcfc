package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexxxkny/lineclip/internal/config"
	"github.com/alexxxkny/lineclip/internal/scene"
	"github.com/alexxxkny/lineclip/pkg/render"
)

var renderOpts struct {
	configPath string
	out        string
	engine     string
	width      int
	height     int
	lines      int
	seed       int64
	selection  string
	legend     bool
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one frame of the viewer to a PNG file",
	Long: `Render generates segments, applies a drag selection given in top-left
window pixels and writes the colored frame to a PNG file. The gg engine draws
anti-aliased lines and a legend; the raster engine draws plain Bresenham lines.`,
	Example: `  lineclip render --out frame.png --lines 40 --seed 7 --select 300,200,900,600`,
	Args:    cobra.NoArgs,
	RunE:    runRender,
}

func init() {
	f := renderCmd.Flags()
	f.StringVarP(&renderOpts.configPath, "config", "c", "", "YAML configuration file")
	f.StringVarP(&renderOpts.out, "out", "o", "frame.png", "Output PNG file")
	f.StringVar(&renderOpts.engine, "engine", "gg", "Drawing engine (gg or raster)")
	f.IntVar(&renderOpts.width, "width", 0, "Frame width (default from config)")
	f.IntVar(&renderOpts.height, "height", 0, "Frame height (default from config)")
	f.IntVarP(&renderOpts.lines, "lines", "n", -1, "Number of segments (default from config)")
	f.Int64Var(&renderOpts.seed, "seed", 0, "Seed for segment generation (default from config)")
	f.StringVar(&renderOpts.selection, "select", "", "Drag from x0,y0 to x1,y1 in top-left pixels")
	f.BoolVar(&renderOpts.legend, "legend", true, "Draw the statistics legend (gg engine only)")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(renderOpts.configPath)
	if err != nil {
		return err
	}
	if renderOpts.width > 0 {
		cfg.Window.Width = renderOpts.width
	}
	if renderOpts.height > 0 {
		cfg.Window.Height = renderOpts.height
	}
	if renderOpts.lines >= 0 {
		cfg.Lines.Count = renderOpts.lines
		if cfg.Lines.Count > cfg.Lines.Max {
			cfg.Lines.Max = cfg.Lines.Count
		}
	}
	if cmd.Flags().Changed("seed") {
		cfg.Lines.Seed = renderOpts.seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	events, err := dragEvents(renderOpts.selection)
	if err != nil {
		return fmt.Errorf("--select: %w", err)
	}

	sc, err := scene.New(cfg)
	if err != nil {
		return err
	}

	width, height := cfg.Window.Width, cfg.Window.Height
	background := cfg.Colors.Background.Value()

	switch renderOpts.engine {
	case "gg":
		canvas, err := render.NewCanvas(width, height, background)
		if err != nil {
			return err
		}
		stats := sc.Frame(events, width, height, canvas)
		if renderOpts.legend {
			canvas.DrawLabel(legend(sc), 10, 10, cfg.Colors.Text.Value())
		}
		if err := canvas.SavePNG(renderOpts.out); err != nil {
			return err
		}
		report(cmd, sc, stats.String())
	case "raster":
		raster := render.NewRaster(width, height, background)
		stats := sc.Frame(events, width, height, raster)
		if err := writePNG(renderOpts.out, raster); err != nil {
			return err
		}
		report(cmd, sc, stats.String())
	default:
		return fmt.Errorf("unknown engine %q (want gg or raster)", renderOpts.engine)
	}

	slog.Info("frame rendered", "out", renderOpts.out, "engine", renderOpts.engine, "lines", sc.Lines().Count())
	return nil
}

// dragEvents replays a left-button drag between two top-left pixels
func dragEvents(value string) ([]scene.Event, error) {
	if value == "" {
		return nil, nil
	}
	from, to, err := parsePair(value)
	if err != nil {
		return nil, err
	}
	return []scene.Event{
		scene.Move(from.X, from.Y),
		scene.Press(scene.ButtonLeft),
		scene.Move(to.X, to.Y),
		scene.Release(scene.ButtonLeft),
	}, nil
}

func legend(sc *scene.Scene) []string {
	lines := []string{fmt.Sprintf("Lines: %d", sc.Lines().Count())}
	if sel, ok := sc.Selection(); ok {
		lines = append(lines,
			fmt.Sprintf("Selection: L %.0f  R %.0f  T %.0f  B %.0f", sel.Left(), sel.Right(), sel.Top(), sel.Bottom()),
			sc.Stats().String(),
		)
	}
	return lines
}

func report(cmd *cobra.Command, sc *scene.Scene, stats string) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", renderOpts.out)
	if _, ok := sc.Selection(); ok {
		fmt.Fprintln(out, stats)
	} else {
		fmt.Fprintf(out, "%d segments, no selection\n", sc.Lines().Count())
	}
}

func writePNG(path string, raster *render.Raster) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := png.Encode(f, raster.Image()); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
