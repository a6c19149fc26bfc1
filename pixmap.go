package snapmark

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap represents a rectangular pixel buffer.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
// Out-of-range coordinates are silently ignored.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = c.A
}

// PixelAt returns the color of a single pixel.
// Out-of-range coordinates return Transparent.
func (p *Pixmap) PixelAt(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Fill sets every pixel to the given color.
func (p *Pixmap) Fill(c RGBA) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = c.A
	}
}

// Clone returns a deep copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	out := NewPixmap(p.width, p.height)
	copy(out.data, p.data)
	return out
}

// SubCopy copies the window rect (in p's pixel coordinates) into a new
// pixmap sized to the window. Pixels of the window that fall outside p are
// skipped and stay zero in the destination. The copy is row-wise and
// bounds-checked; it never faults on a window that leaves the source.
func (p *Pixmap) SubCopy(window image.Rectangle) *Pixmap {
	window = window.Canon()
	out := NewPixmap(window.Dx(), window.Dy())

	for y := 0; y < out.height; y++ {
		sy := window.Min.Y + y
		if sy < 0 || sy >= p.height {
			continue
		}
		// Clamp the copied span to the source row.
		sx0 := window.Min.X
		dx0 := 0
		if sx0 < 0 {
			dx0 = -sx0
			sx0 = 0
		}
		sx1 := window.Max.X
		if sx1 > p.width {
			sx1 = p.width
		}
		if sx0 >= sx1 {
			continue
		}
		src := p.data[(sy*p.width+sx0)*4 : (sy*p.width+sx1)*4]
		di := (y*out.width + dx0) * 4
		copy(out.data[di:di+len(src)], src)
	}
	return out
}

// ToImage converts the pixmap to an image.RGBA.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
// *image.RGBA sources are copied row-wise; other types go through the
// color model conversion path.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pm := NewPixmap(width, height)

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < height; y++ {
			src := rgba.Pix[y*rgba.Stride : y*rgba.Stride+width*4]
			copy(pm.data[y*width*4:], src)
		}
		return pm
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := img.At(bounds.Min.X+x, bounds.Min.Y+y)
			pm.SetPixel(x, y, FromColor(c))
		}
	}
	return pm
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	return png.Encode(f, p.ToImage())
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.PixelAt(x, y).NRGBA()
}

// Set implements the draw.Image interface.
func (p *Pixmap) Set(x, y int, c color.Color) {
	p.SetPixel(x, y, FromColor(c))
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
