package sprite

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"github.com/corona10/goimagehash"
)

// equivalenceThreshold is the maximum perceptual hash distance at which
// two alpha channels are still considered the same asset.
const equivalenceThreshold = 5

// WritePNG encodes the pixmap as PNG to w.
func (p *Pixmap) WritePNG(w io.Writer) error {
	return png.Encode(w, p.ToImage())
}

// SavePNG writes the pixmap to a PNG file and returns the number of bytes
// written.
func (p *Pixmap) SavePNG(path string) (int64, error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return 0, err
	}
	cw := &countingWriter{w: f}
	if err := p.WritePNG(cw); err != nil {
		_ = f.Close()
		return 0, fmt.Errorf("sprite: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return 0, err
	}
	return cw.n, nil
}

// countingWriter counts bytes passing through to the underlying writer.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(b []byte) (int, error) {
	n, err := c.w.Write(b)
	c.n += int64(n)
	return n, err
}

// Equivalent reports whether img shows the same asset as the pixmap.
//
// The shape of these assets lives in the alpha channel (the color channels
// are a solid fill), so the comparison runs a perceptual hash over the
// alpha channels and then checks that the alpha-weighted mean color agrees.
// Encoder differences pass; content changes do not.
func (p *Pixmap) Equivalent(img image.Image) (bool, error) {
	h1, err := goimagehash.PerceptionHash(alphaImage(p))
	if err != nil {
		return false, err
	}
	h2, err := goimagehash.PerceptionHash(alphaImage(img))
	if err != nil {
		return false, err
	}
	d, err := h1.Distance(h2)
	if err != nil {
		return false, err
	}
	if d >= equivalenceThreshold {
		return false, nil
	}

	pr, pg, pb := meanColor(p)
	ir, ig, ib := meanColor(img)
	const tol = 2.0 / 255
	if diff(pr, ir) > tol || diff(pg, ig) > tol || diff(pb, ib) > tol {
		return false, nil
	}
	return true, nil
}

// alphaImage extracts the alpha channel of img as a grayscale image.
func alphaImage(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// a is 0-65535, shift by 8 to get 0-255
			out.Pix[y*out.Stride+x] = uint8(a >> 8)
		}
	}
	return out
}

// meanColor returns the alpha-weighted mean of the straight (non-premultiplied)
// color channels, each in [0, 1]. Fully transparent images report black.
func meanColor(img image.Image) (r, g, b float64) {
	bnd := img.Bounds()
	var sr, sg, sb, sa float64
	for y := bnd.Min.Y; y < bnd.Max.Y; y++ {
		for x := bnd.Min.X; x < bnd.Max.X; x++ {
			pr, pg, pb, pa := img.At(x, y).RGBA()
			if pa == 0 {
				continue
			}
			// RGBA returns premultiplied components. Summing them and
			// dividing by the alpha sum yields the alpha-weighted mean
			// of the straight color.
			sr += float64(pr)
			sg += float64(pg)
			sb += float64(pb)
			sa += float64(pa)
		}
	}
	if sa == 0 {
		return 0, 0, 0
	}
	return sr / sa, sg / sa, sb / sa
}

func diff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}
