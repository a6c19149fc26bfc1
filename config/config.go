// Package config loads session defaults for a snapmark tool from a yaml
// file and normalizes missing values.
package config

import (
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/snapmark/snapmark"
)

// Shadow configures the drop shadow applied on export.
type Shadow struct {
	Radius  float64 `yaml:"radius"`
	Opacity float64 `yaml:"opacity"`
}

// Config holds session defaults. Zero values are filled in by defaults().
type Config struct {
	// StrokeWidth is the pen width in logical pixels (default 2).
	StrokeWidth float64 `yaml:"stroke_width"`

	// StrokeStyle is one of solid, dashed, dotted (default solid).
	StrokeStyle string `yaml:"stroke_style"`

	// StrokeColor is the pen color as a hex string (default #f44336).
	StrokeColor string `yaml:"stroke_color"`

	// HighlightColor is the highlighter color as a hex string with alpha
	// (default #ffff0080).
	HighlightColor string `yaml:"highlight_color"`

	// MarkerStyle is one of number, letter, roman (default number).
	MarkerStyle string `yaml:"marker_style"`

	// MarkerRadius is the sequence marker radius in logical pixels
	// (default 12).
	MarkerRadius float64 `yaml:"marker_radius"`

	// MarkerColor is the sequence marker color as a hex string
	// (default #f44336).
	MarkerColor string `yaml:"marker_color"`

	// OutputDir is where exported images are written (default ".").
	OutputDir string `yaml:"output_dir"`

	// Shadow configures the export drop shadow. Zero opacity disables it.
	Shadow Shadow `yaml:"shadow"`

	// Logger for debug/warn messages.
	Logger *slog.Logger `yaml:"-"`
}

func (c *Config) defaults() {
	if c.StrokeWidth <= 0 {
		c.StrokeWidth = 2
	}
	if c.StrokeStyle == "" {
		c.StrokeStyle = "solid"
	}
	if c.StrokeColor == "" {
		c.StrokeColor = "#f44336"
	}
	if c.HighlightColor == "" {
		c.HighlightColor = "#ffff0080"
	}
	if c.MarkerStyle == "" {
		c.MarkerStyle = "number"
	}
	if c.MarkerRadius <= 0 {
		c.MarkerRadius = 12
	}
	if c.MarkerColor == "" {
		c.MarkerColor = "#f44336"
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Logger == nil {
		c.Logger = snapmark.Logger()
	}
}

// Default returns a config with every field at its default.
func Default() *Config {
	c := &Config{}
	c.defaults()
	return c
}

// Load reads a yaml config file and fills in defaults. A missing file is
// not an error; it yields the defaults.
func Load(path string) (*Config, error) {
	c := &Config{}
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		if os.IsNotExist(err) {
			c.defaults()
			return c, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	c.defaults()
	return c, nil
}

// StrokeSettings converts the pen fields to engine stroke settings.
func (c *Config) StrokeSettings() snapmark.StrokeSettings {
	return snapmark.StrokeSettings{
		Width: c.StrokeWidth,
		Style: snapmark.ParseLineStyle(c.StrokeStyle),
		Color: snapmark.Hex(c.StrokeColor),
	}
}

// Highlight returns the configured highlighter color.
func (c *Config) Highlight() snapmark.RGBA {
	return snapmark.Hex(c.HighlightColor)
}

// LabelStyle returns the configured marker label style.
func (c *Config) LabelStyle() snapmark.LabelStyle {
	return snapmark.ParseLabelStyle(c.MarkerStyle)
}

// Marker returns the configured marker radius and color.
func (c *Config) Marker() (radius float64, color snapmark.RGBA) {
	return c.MarkerRadius, snapmark.Hex(c.MarkerColor)
}
