package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lineclip.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
	if cfg.Lines.Max != 100 {
		t.Errorf("expected max 100 lines, got %d", cfg.Lines.Max)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
window:
  width: 640
colors:
  partial: "#00ff00"
lines:
  count: 25
clip:
  epsilon: 0.5
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Window.Width != 640 || cfg.Window.Height != 800 {
		t.Errorf("expected 640x800 window, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if got := cfg.Colors.Partial.Value(); got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("partial color: got %v", got)
	}
	if cfg.Colors.Inside != Default().Colors.Inside {
		t.Errorf("unset colors should keep defaults, got %v", cfg.Colors.Inside)
	}
	if cfg.Lines.Count != 25 || cfg.Clip.Epsilon != 0.5 {
		t.Errorf("unexpected lines/clip settings: %+v %+v", cfg.Lines, cfg.Clip)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		want error
	}{
		{"negative width", "window:\n  width: -1\n", ErrInvalidWindow},
		{"too many lines", "lines:\n  count: 500\n", ErrInvalidLines},
		{"zero epsilon", "clip:\n  epsilon: 0\n", ErrInvalidEpsilon},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := Load(writeConfig(t, "colors:\n  inside: purple-ish\n")); err == nil {
		t.Error("expected error for malformed color")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#1e3c5a")
	if err != nil {
		t.Fatalf("ParseColor failed: %v", err)
	}
	if c.Value() != (color.RGBA{0x1e, 0x3c, 0x5a, 255}) {
		t.Errorf("unexpected color %v", c.Value())
	}
	if c.String() != "#1e3c5a" {
		t.Errorf("String: got %q", c.String())
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Colors.Partial = RGB(1, 2, 3)

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	loaded, err := Load(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("Load failed: %v\n%s", err, data)
	}
	if diff := cmp.Diff(cfg, loaded, cmp.Comparer(func(a, b Color) bool { return a == b })); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
