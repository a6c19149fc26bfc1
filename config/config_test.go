package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/snapmark/snapmark"
)

func TestDefault(t *testing.T) {
	c := Default()
	if c.StrokeWidth != 2 || c.StrokeStyle != "solid" || c.StrokeColor != "#f44336" {
		t.Errorf("stroke defaults = %v %q %q", c.StrokeWidth, c.StrokeStyle, c.StrokeColor)
	}
	if c.MarkerStyle != "number" || c.MarkerRadius != 12 {
		t.Errorf("marker defaults = %q %v", c.MarkerStyle, c.MarkerRadius)
	}
	if c.OutputDir != "." {
		t.Errorf("OutputDir = %q", c.OutputDir)
	}
	if c.Logger == nil {
		t.Error("Logger not defaulted")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapmark.yaml")
	data := []byte(`
stroke_width: 4
stroke_style: dashed
stroke_color: "#2196f3"
highlight_color: "#00ff0040"
marker_style: roman
marker_radius: 16
output_dir: /tmp/shots
shadow:
  radius: 8
  opacity: 0.4
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	ss := c.StrokeSettings()
	want := snapmark.StrokeSettings{
		Width: 4,
		Style: snapmark.LineDashed,
		Color: snapmark.RGBA{R: 0x21, G: 0x96, B: 0xf3, A: 255},
	}
	if ss != want {
		t.Errorf("StrokeSettings() = %v, want %v", ss, want)
	}
	if got := c.Highlight(); got != (snapmark.RGBA{G: 255, A: 0x40}) {
		t.Errorf("Highlight() = %v", got)
	}
	if got := c.LabelStyle(); got != snapmark.LabelRoman {
		t.Errorf("LabelStyle() = %v", got)
	}
	radius, col := c.Marker()
	if radius != 16 || col != (snapmark.RGBA{R: 0xf4, G: 0x43, B: 0x36, A: 255}) {
		t.Errorf("Marker() = %v, %v", radius, col)
	}
	if c.OutputDir != "/tmp/shots" {
		t.Errorf("OutputDir = %q", c.OutputDir)
	}
	if c.Shadow.Radius != 8 || c.Shadow.Opacity != 0.4 {
		t.Errorf("Shadow = %+v", c.Shadow)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v, want defaults", err)
	}
	if c.StrokeWidth != 2 || c.MarkerStyle != "number" {
		t.Errorf("missing file did not yield defaults: %+v", c)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("stroke_width: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted malformed yaml")
	}
}

func TestLoadPartialFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("stroke_width: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if c.StrokeWidth != 6 {
		t.Errorf("StrokeWidth = %v, want 6", c.StrokeWidth)
	}
	if c.StrokeStyle != "solid" || c.HighlightColor != "#ffff0080" {
		t.Errorf("defaults not filled: %q %q", c.StrokeStyle, c.HighlightColor)
	}
}
