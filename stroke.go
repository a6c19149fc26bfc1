package snapmark

import "fmt"

// LineStyle selects how a stroked line is broken up along its length.
type LineStyle int

const (
	// LineSolid draws an unbroken line.
	LineSolid LineStyle = iota
	// LineDashed draws the line in dash segments.
	LineDashed
	// LineDotted draws the line in short dot segments.
	LineDotted
)

// String returns the lowercase name of the style.
func (s LineStyle) String() string {
	switch s {
	case LineSolid:
		return "solid"
	case LineDashed:
		return "dashed"
	case LineDotted:
		return "dotted"
	default:
		return fmt.Sprintf("LineStyle(%d)", int(s))
	}
}

// ParseLineStyle converts a style name to a LineStyle.
// Unknown names fall back to LineSolid.
func ParseLineStyle(name string) LineStyle {
	switch name {
	case "dashed":
		return LineDashed
	case "dotted":
		return LineDotted
	default:
		return LineSolid
	}
}

// StrokeSettings describes the pen shared by strokes, arrows, shapes and
// polylines: width in logical pixels, line style, and color.
type StrokeSettings struct {
	Width float64
	Style LineStyle
	Color RGBA
}

// DefaultStrokeSettings returns a solid 2-pixel red pen.
func DefaultStrokeSettings() StrokeSettings {
	return StrokeSettings{
		Width: 2.0,
		Style: LineSolid,
		Color: Red,
	}
}

// WithWidth returns a copy of the settings with the given width.
func (s StrokeSettings) WithWidth(w float64) StrokeSettings {
	s.Width = w
	return s
}

// WithStyle returns a copy of the settings with the given line style.
func (s StrokeSettings) WithStyle(style LineStyle) StrokeSettings {
	s.Style = style
	return s
}

// WithColor returns a copy of the settings with the given color.
func (s StrokeSettings) WithColor(c RGBA) StrokeSettings {
	s.Color = c
	return s
}
