// Package label renders sequence-marker text through a bitmap font.
//
// The engine's compositor draws a placeholder dot for marker numerals unless
// a renderer is injected; Basic is the reference implementation, wired with
// snapmark.WithLabelRenderer. It draws fixed-size bitmap glyphs and performs
// no shaping.
package label

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Basic renders labels with a fixed bitmap face, centered on a point.
type Basic struct {
	// Face is the font face used for drawing. Nil selects basicfont.Face7x13.
	Face font.Face
}

// NewBasic returns a renderer using the 7x13 bitmap face.
func NewBasic() *Basic {
	return &Basic{Face: basicfont.Face7x13}
}

// RenderLabel draws text centered on center in the given color.
func (b *Basic) RenderLabel(dst draw.Image, center image.Point, text string, c color.Color) {
	face := b.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	width := d.MeasureString(text)
	metrics := face.Metrics()
	d.Dot = fixed.Point26_6{
		X: fixed.I(center.X) - width/2,
		Y: fixed.I(center.Y) + (metrics.Ascent-metrics.Descent)/2,
	}
	d.DrawString(text)
}
