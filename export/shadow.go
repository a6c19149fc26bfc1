package export

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/blur"
)

// ShadowOptions configures the drop shadow applied around an exported image.
type ShadowOptions struct {
	// Radius is the gaussian blur radius in pixels.
	Radius float64
	// Offset shifts the shadow relative to the image.
	Offset image.Point
	// Opacity is the shadow strength in [0, 1].
	Opacity float64
	// Margin is the transparent padding added on every side. Zero derives a
	// margin large enough to contain the blurred shadow.
	Margin int
}

// Normalize clamps the options into their valid ranges.
func (o ShadowOptions) Normalize() ShadowOptions {
	if o.Radius < 0 {
		o.Radius = 0
	}
	if o.Opacity < 0 {
		o.Opacity = 0
	}
	if o.Opacity > 1 {
		o.Opacity = 1
	}
	if o.Margin <= 0 {
		o.Margin = int(2*o.Radius) + maxAbs(o.Offset.X, o.Offset.Y)
	}
	return o
}

func maxAbs(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if b > a {
		a = b
	}
	return a
}

// Shadow returns img on a transparent canvas with a blurred drop shadow
// behind it. The canvas grows by the margin on every side.
func Shadow(img image.Image, opts ShadowOptions) *image.RGBA {
	opts = opts.Normalize()

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	m := opts.Margin

	canvas := image.NewRGBA(image.Rect(0, 0, w+2*m, h+2*m))

	if opts.Opacity > 0 {
		silhouette := image.NewRGBA(canvas.Bounds())
		shadowRect := image.Rect(
			m+opts.Offset.X, m+opts.Offset.Y,
			m+opts.Offset.X+w, m+opts.Offset.Y+h,
		)
		alpha := uint8(opts.Opacity * 255)
		draw.Draw(silhouette, shadowRect,
			image.NewUniform(color.RGBA{A: alpha}), image.Point{}, draw.Src)
		blurred := silhouette
		if opts.Radius > 0 {
			blurred = blur.Gaussian(silhouette, opts.Radius)
		}
		draw.Draw(canvas, canvas.Bounds(), blurred, image.Point{}, draw.Over)
	}

	draw.Draw(canvas, image.Rect(m, m, m+w, m+h), img, b.Min, draw.Over)
	return canvas
}
