// Package palette provides the default annotation colors and helpers for
// generating visually distinct marker colors.
package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/snapmark/snapmark"
)

// Default returns the tool palette offered for pens, arrows and shapes.
func Default() []snapmark.RGBA {
	return []snapmark.RGBA{
		snapmark.Hex("#f44336"), // red
		snapmark.Hex("#ff9800"), // orange
		snapmark.Hex("#ffeb3b"), // yellow
		snapmark.Hex("#4caf50"), // green
		snapmark.Hex("#2196f3"), // blue
		snapmark.Hex("#9c27b0"), // purple
		snapmark.Black,
		snapmark.White,
	}
}

// Highlight returns the default semi-transparent highlighter color.
func Highlight() snapmark.RGBA {
	return snapmark.Yellow.WithAlpha(128)
}

// Marker returns the default sequence marker color.
func Marker() snapmark.RGBA {
	return snapmark.Hex("#f44336")
}

// Distinct returns n visually distinct opaque colors, evenly spaced in hue
// in the HCL color space and clamped into sRGB.
func Distinct(n int) []snapmark.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]snapmark.RGBA, n)
	for i := 0; i < n; i++ {
		h := 360 * float64(i) / float64(n)
		c := colorful.Hcl(h, 0.5, 0.5).Clamped()
		out[i] = snapmark.RGBA{
			R: uint8(c.R*255 + 0.5),
			G: uint8(c.G*255 + 0.5),
			B: uint8(c.B*255 + 0.5),
			A: 255,
		}
	}
	return out
}

// Contrast returns black or white, whichever reads better on top of c,
// judged by the color's lightness in Lab space.
func Contrast(c snapmark.RGBA) snapmark.RGBA {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	l, _, _ := col.Lab()
	if l > 0.5 {
		return snapmark.Black
	}
	return snapmark.White
}
