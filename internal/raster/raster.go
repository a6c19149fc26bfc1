// Package raster implements the integer rasterization primitives of the
// compositor: over-blending, discs, thick styled lines, rectangles, ellipses
// and triangles, all on a raw RGBA8 pixel slice. Every pixel access is
// bounds-checked, so the primitives never fault on degenerate input.
package raster

import (
	"image"
	"image/color"
	"math"
	"sort"
)

// Style selects how a thick line is broken up along its Bresenham steps.
// The gating is step-indexed, so dash length depends on resolution and
// orientation rather than geometric distance.
type Style int

const (
	// StyleSolid paints every step.
	StyleSolid Style = iota
	// StyleDashed paints steps where (step/8) is even.
	StyleDashed
	// StyleDotted paints steps where (step/4) is even.
	StyleDotted
)

// Canvas wraps an RGBA8 pixel buffer for drawing.
type Canvas struct {
	width  int
	height int
	pix    []uint8 // 4 bytes per pixel
}

// New creates a canvas over pix, which must hold width*height*4 bytes.
func New(pix []uint8, width, height int) *Canvas {
	return &Canvas{width: width, height: height, pix: pix}
}

// Blend paints c at (x, y) with "over" semantics: alpha 255 overwrites,
// alpha 0 is skipped, anything in between lerps RGB by alpha/255 against the
// destination. The output alpha is always forced to 255, treating the
// destination as opaque after the first paint; overlapping semi-transparent
// paints therefore do not stack past the first layer's opacity.
func (c *Canvas) Blend(x, y int, col color.RGBA) {
	if x < 0 || x >= c.width || y < 0 || y >= c.height {
		return
	}
	if col.A == 0 {
		return
	}
	i := (y*c.width + x) * 4
	if col.A == 255 {
		c.pix[i+0] = col.R
		c.pix[i+1] = col.G
		c.pix[i+2] = col.B
		c.pix[i+3] = 255
		return
	}
	a := uint32(col.A)
	c.pix[i+0] = lerp8(c.pix[i+0], col.R, a)
	c.pix[i+1] = lerp8(c.pix[i+1], col.G, a)
	c.pix[i+2] = lerp8(c.pix[i+2], col.B, a)
	c.pix[i+3] = 255
}

// lerp8 interpolates dst toward src by a/255.
func lerp8(dst, src uint8, a uint32) uint8 {
	return uint8((uint32(dst)*(255-a) + uint32(src)*a) / 255)
}

// FillDisc blends a filled disc of the given radius centered at (cx, cy).
func (c *Canvas) FillDisc(cx, cy int, radius float64, col color.RGBA) {
	if radius <= 0 {
		return
	}
	ir := int(math.Ceil(radius))
	rr := radius * radius
	for dy := -ir; dy <= ir; dy++ {
		for dx := -ir; dx <= ir; dx++ {
			if float64(dx*dx+dy*dy) <= rr {
				c.Blend(cx+dx, cy+dy, col)
			}
		}
	}
}

// styleOn reports whether the given Bresenham step paints for the style.
func styleOn(s Style, step int) bool {
	switch s {
	case StyleDashed:
		return (step/8)%2 == 0
	case StyleDotted:
		return (step/4)%2 == 0
	default:
		return true
	}
}

// ThickLine draws a line from (x1, y1) to (x2, y2) by walking Bresenham's
// integer algorithm and stamping a filled disc of radius
// max(thickness/2, 0.5) at each painted step. The style gates which steps
// paint; the step index increments once per Bresenham iteration.
func (c *Canvas) ThickLine(x1, y1, x2, y2 int, thickness float64, style Style, col color.RGBA) {
	radius := thickness / 2
	if radius < 0.5 {
		radius = 0.5
	}

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for step := 0; ; step++ {
		if styleOn(style, step) {
			c.FillDisc(x, y, radius, col)
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// FillRect blends every pixel of the rectangle.
func (c *Canvas) FillRect(r image.Rectangle, col color.RGBA) {
	r = r.Canon()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			c.Blend(x, y, col)
		}
	}
}

// StrokeRect draws the rectangle outline as four thick edges. Corner pixels
// receive paint from both meeting edges and blend twice.
func (c *Canvas) StrokeRect(r image.Rectangle, thickness float64, style Style, col color.RGBA) {
	r = r.Canon()
	c.ThickLine(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y, thickness, style, col)
	c.ThickLine(r.Max.X, r.Min.Y, r.Max.X, r.Max.Y, thickness, style, col)
	c.ThickLine(r.Max.X, r.Max.Y, r.Min.X, r.Max.Y, thickness, style, col)
	c.ThickLine(r.Min.X, r.Max.Y, r.Min.X, r.Min.Y, thickness, style, col)
}

// FillEllipse blends a filled axis-aligned ellipse centered at (cx, cy)
// with radii rx, ry, one contiguous scanline span per row. Degenerate
// ellipses (rx <= 0 or ry <= 0) are skipped.
func (c *Canvas) FillEllipse(cx, cy int, rx, ry float64, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	iry := int(ry)
	for dy := -iry; dy <= iry; dy++ {
		// half-width of the span at this scanline
		half := rx * math.Sqrt(1-float64(dy)*float64(dy)/(ry*ry))
		x0 := cx - int(math.Round(half))
		x1 := cx + int(math.Round(half))
		for x := x0; x <= x1; x++ {
			c.Blend(x, cy+dy, col)
		}
	}
}

// StrokeEllipse approximates the ellipse outline with max(32, 2*(rx+ry))
// parametric samples joined by thick lines.
func (c *Canvas) StrokeEllipse(cx, cy int, rx, ry float64, thickness float64, style Style, col color.RGBA) {
	if rx <= 0 || ry <= 0 {
		return
	}
	n := int(2 * (rx + ry))
	if n < 32 {
		n = 32
	}
	px := cx + int(math.Round(rx))
	py := cy
	for i := 1; i <= n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		x := cx + int(math.Round(rx*math.Cos(theta)))
		y := cy + int(math.Round(ry*math.Sin(theta)))
		c.ThickLine(px, py, x, y, thickness, style, col)
		px, py = x, y
	}
}

// FillTriangle blends a filled triangle by scanline polygon fill: per
// integer row it intersects all three edges, sorts the hits and fills
// between the two smallest.
func (c *Canvas) FillTriangle(p1, p2, p3 image.Point, col color.RGBA) {
	minY := min3(p1.Y, p2.Y, p3.Y)
	maxY := max3(p1.Y, p2.Y, p3.Y)

	edges := [3][2]image.Point{{p1, p2}, {p2, p3}, {p3, p1}}
	for y := minY; y <= maxY; y++ {
		var xs []float64
		for _, e := range edges {
			a, b := e[0], e[1]
			if a.Y == b.Y {
				continue
			}
			lo, hi := a, b
			if lo.Y > hi.Y {
				lo, hi = hi, lo
			}
			if y < lo.Y || y > hi.Y {
				continue
			}
			t := float64(y-lo.Y) / float64(hi.Y-lo.Y)
			xs = append(xs, float64(lo.X)+t*float64(hi.X-lo.X))
		}
		if len(xs) < 2 {
			continue
		}
		sort.Float64s(xs)
		x0 := int(math.Round(xs[0]))
		x1 := int(math.Round(xs[1]))
		for x := x0; x <= x1; x++ {
			c.Blend(x, y, col)
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

func max3(a, b, c int) int {
	if b > a {
		a = b
	}
	if c > a {
		a = c
	}
	return a
}
