package sprite

import (
	"fmt"
	"image"
	"image/color"
)

// Pixmap represents a rectangular pixel buffer.
// Pixels are stored as non-premultiplied RGBA, 4 bytes per pixel, which is
// also PNG's storage model: ToImage and the PNG encoder copy the buffer
// without any alpha conversion.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel, not premultiplied
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
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

// Data returns the raw pixel data (non-premultiplied RGBA).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// SetPixel sets the color of a single pixel.
func (p *Pixmap) SetPixel(x, y int, c RGBA) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = uint8(clamp255(c.R * 255))
	p.data[i+1] = uint8(clamp255(c.G * 255))
	p.data[i+2] = uint8(clamp255(c.B * 255))
	p.data[i+3] = uint8(clamp255(c.A * 255))
}

// GetPixel returns the color of a single pixel.
func (p *Pixmap) GetPixel(x, y int) RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent
	}
	i := (y*p.width + x) * 4
	return RGBA{
		R: float64(p.data[i+0]) / 255,
		G: float64(p.data[i+1]) / 255,
		B: float64(p.data[i+2]) / 255,
		A: float64(p.data[i+3]) / 255,
	}
}

// Alpha returns the alpha channel value at (x, y).
// Returns 0 for coordinates outside the pixmap bounds.
func (p *Pixmap) Alpha(x, y int) uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return 0
	}
	return p.data[(y*p.width+x)*4+3]
}

// FillSolid fills the entire pixmap with a color.
func (p *Pixmap) FillSolid(c RGBA) {
	r := uint8(clamp255(c.R * 255))
	g := uint8(clamp255(c.G * 255))
	b := uint8(clamp255(c.B * 255))
	a := uint8(clamp255(c.A * 255))

	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = r
		p.data[i+1] = g
		p.data[i+2] = b
		p.data[i+3] = a
	}
}

// SetAlphaChannel replaces the alpha channel with the mask values,
// leaving the color channels untouched. The mask dimensions must match
// the pixmap dimensions.
func (p *Pixmap) SetAlphaChannel(m *Mask) error {
	if m.Width() != p.width || m.Height() != p.height {
		return fmt.Errorf("sprite: alpha mask size %dx%d does not match pixmap %dx%d",
			m.Width(), m.Height(), p.width, p.height)
	}
	md := m.Data()
	for i, a := range md {
		p.data[i*4+3] = a
	}
	return nil
}

// ToImage converts the pixmap to an image.NRGBA.
// The pixel layout is identical, so this is a straight copy.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	return p.GetPixel(x, y).Color()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
