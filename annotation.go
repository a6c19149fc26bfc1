package snapmark

import (
	"fmt"
	"math"
	"strconv"
)

// Commit thresholds, in logical pixels. Geometry below these sizes is
// silently discarded on finish rather than reported as an error.
const (
	minStrokePoints    = 2
	minArrowLength     = 5.0
	minShapeExtent     = 5.0
	minHighlightExtent = 2.0
)

// Stroke is a freehand line: an ordered list of logical points.
type Stroke struct {
	Points   []Point
	Settings StrokeSettings
}

// Polyline is a sequence of connected straight segments.
// Closed connects the last vertex back to the first.
type Polyline struct {
	Points   []Point
	Closed   bool
	Settings StrokeSettings
}

// Arrow is a straight line from Start to End with an arrowhead at End.
type Arrow struct {
	Start, End Point
	Settings   StrokeSettings
}

// Direction returns the normalized direction from Start to End.
func (a Arrow) Direction() Point {
	return a.End.Sub(a.Start).Normalize()
}

// Length returns the distance from Start to End.
func (a Arrow) Length() float64 {
	return a.Start.Distance(a.End)
}

// SnapAngle returns a copy of the arrow with its direction rounded to the
// nearest 45 degree increment, preserving length. Applied as an optional
// modifier while the arrow is being dragged.
func (a Arrow) SnapAngle() Arrow {
	d := a.End.Sub(a.Start)
	length := d.Length()
	if length == 0 {
		return a
	}
	angle := math.Atan2(d.Y, d.X)
	snapped := math.Round(angle/(math.Pi/4)) * (math.Pi / 4)
	a.End = a.Start.Add(Point{X: math.Cos(snapped), Y: math.Sin(snapped)}.Mul(length))
	return a
}

// ShapeKind selects the geometric form of a Shape.
type ShapeKind int

const (
	// ShapeRectangle is an axis-aligned rectangle.
	ShapeRectangle ShapeKind = iota
	// ShapeEllipse is an axis-aligned ellipse inscribed in the bounds.
	ShapeEllipse
)

// FillMode selects whether a Shape is stroked or filled.
type FillMode int

const (
	// FillOutline strokes the shape boundary.
	FillOutline FillMode = iota
	// FillSolid fills the shape interior.
	FillSolid
)

// Shape is a rectangle or ellipse within a logical bounding rect.
type Shape struct {
	Bounds   Rect
	Kind     ShapeKind
	Fill     FillMode
	Settings StrokeSettings
}

// Highlighter is a semi-transparent rectangle. It carries only a color;
// stroke settings do not apply.
type Highlighter struct {
	Bounds Rect
	Color  RGBA
}

// LabelStyle selects how sequence marker numbers are written out.
type LabelStyle int

const (
	// LabelNumber renders decimal numbers: 1, 2, 3, ...
	LabelNumber LabelStyle = iota
	// LabelLetter renders letters A..Z, wrapping back to A after Z.
	LabelLetter
	// LabelRoman renders classic subtractive roman numerals.
	LabelRoman
)

// String returns the lowercase name of the style.
func (s LabelStyle) String() string {
	switch s {
	case LabelNumber:
		return "number"
	case LabelLetter:
		return "letter"
	case LabelRoman:
		return "roman"
	default:
		return fmt.Sprintf("LabelStyle(%d)", int(s))
	}
}

// ParseLabelStyle converts a style name to a LabelStyle.
// Unknown names fall back to LabelNumber.
func ParseLabelStyle(name string) LabelStyle {
	switch name {
	case "letter":
		return LabelLetter
	case "roman":
		return LabelRoman
	default:
		return LabelNumber
	}
}

// SequenceMarker is a numbered disc used to call out ordered steps.
type SequenceMarker struct {
	Center Point
	Number int // monotonic, >= 1
	Radius float64
	Color  RGBA
	Style  LabelStyle
}

// romanTable drives the greedy subtractive encoding in Label.
var romanTable = []struct {
	value  int
	symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// Label returns the marker number formatted per its label style.
// Letter style wraps single letters past Z (27 is "A" again).
func (m SequenceMarker) Label() string {
	n := m.Number
	if n < 1 {
		n = 1
	}
	switch m.Style {
	case LabelLetter:
		return string(rune('A' + (n-1)%26))
	case LabelRoman:
		var out []byte
		for _, e := range romanTable {
			for n >= e.value {
				out = append(out, e.symbol...)
				n -= e.value
			}
		}
		return string(out)
	default:
		return strconv.Itoa(n)
	}
}
