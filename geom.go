package snapmark

import (
	"image"
	"math"
)

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	Min, Max Point
}

// RectFromPoints returns the canonical rectangle spanned by two corners.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		Min: Point{X: math.Min(a.X, b.X), Y: math.Min(a.Y, b.Y)},
		Max: Point{X: math.Max(a.X, b.X), Y: math.Max(a.Y, b.Y)},
	}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Mapper converts logical coordinates to physical pixels for a selection
// window. Origin is the logical minimum of the selection and Scale is the
// physical/logical ratio of the display. Mapper is pure and stateless.
type Mapper struct {
	Origin Point
	Scale  float64
}

// ToPhysical maps a logical point into the cropped buffer's physical space:
// physical = round((logical - origin) * scale), applied per axis.
func (m Mapper) ToPhysical(p Point) image.Point {
	return image.Point{
		X: int(math.Round((p.X - m.Origin.X) * m.Scale)),
		Y: int(math.Round((p.Y - m.Origin.Y) * m.Scale)),
	}
}

// ScaleLen converts a logical length (stroke width, radius) to physical
// pixels. Lengths stay fractional; only coordinates are rounded.
func (m Mapper) ScaleLen(v float64) float64 {
	return v * m.Scale
}

// PhysicalRect maps a logical rectangle to an integer physical rectangle.
func (m Mapper) PhysicalRect(r Rect) image.Rectangle {
	a := m.ToPhysical(r.Min)
	b := m.ToPhysical(r.Max)
	return image.Rectangle{Min: a, Max: b}.Canon()
}
