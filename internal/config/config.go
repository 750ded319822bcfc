// Package config loads the YAML configuration for the viewer and the CLI.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/alexxxkny/lineclip/internal/logging"
)

var (
	ErrInvalidWindow  = errors.New("window size must be positive")
	ErrInvalidLines   = errors.New("invalid lines settings")
	ErrInvalidEpsilon = errors.New("clip epsilon must be positive")
)

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	FPS    int    `yaml:"fps"`
}

// ColorConfig replaces the hard-coded outline and line colors
type ColorConfig struct {
	Background Color `yaml:"background"`
	Selection  Color `yaml:"selection"`
	Default    Color `yaml:"default"`
	Inside     Color `yaml:"inside"`
	Outside    Color `yaml:"outside"`
	Partial    Color `yaml:"partial"`
	Axes       Color `yaml:"axes"`
	Text       Color `yaml:"text"`
}

type LinesConfig struct {
	Count int   `yaml:"count"`
	Max   int   `yaml:"max"`
	Seed  int64 `yaml:"seed"`
}

type ClipConfig struct {
	// Epsilon is in centered pixels
	Epsilon float32 `yaml:"epsilon"`
}

type SelectionConfig struct {
	// MinDiagonal is the drag length below which the HUD reports a click
	MinDiagonal float32 `yaml:"min_diagonal"`
}

type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Colors    ColorConfig     `yaml:"colors"`
	Lines     LinesConfig     `yaml:"lines"`
	Clip      ClipConfig      `yaml:"clip"`
	Selection SelectionConfig `yaml:"selection"`
	Log       logging.Config  `yaml:"log"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  1200,
			Height: 800,
			Title:  "Line Clipping",
			FPS:    60,
		},
		Colors: ColorConfig{
			Background: RGB(255, 255, 255),
			Selection:  RGB(0, 0, 0),
			Default:    RGB(90, 90, 90),
			Inside:     RGB(30, 160, 60),
			Outside:    RGB(200, 200, 200),
			Partial:    RGB(220, 40, 40),
			Axes:       RGB(225, 225, 235),
			Text:       RGB(40, 40, 40),
		},
		Lines: LinesConfig{
			Count: 10,
			Max:   100,
			Seed:  1,
		},
		Clip:      ClipConfig{Epsilon: 2},
		Selection: SelectionConfig{MinDiagonal: 30},
		Log:       logging.DefaultConfig(),
	}
}

// Load reads path over the defaults. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if c.Lines.Max < 0 || c.Lines.Count < 0 || c.Lines.Count > c.Lines.Max {
		return fmt.Errorf("%w: count %d must be within 0..%d", ErrInvalidLines, c.Lines.Count, c.Lines.Max)
	}
	if c.Clip.Epsilon <= 0 {
		return fmt.Errorf("%w: got %v", ErrInvalidEpsilon, c.Clip.Epsilon)
	}
	if _, err := c.Log.Normalize(); err != nil {
		return err
	}
	return nil
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
