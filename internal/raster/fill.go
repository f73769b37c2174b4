package raster

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// bandHeight is the number of rows rasterized per pass. The rasterizer
// keeps a float32 accumulation buffer proportional to its viewport, so
// banding bounds memory at bandHeight*width*4 bytes regardless of how
// tall the supersampled canvas is.
const bandHeight = 256

// Rasterize fills the outline into a w×h single-channel coverage mask
// using nonzero winding. Coverage is antialiased: fully covered pixels
// read 255, boundary pixels read proportionally less.
func (o Outline) Rasterize(w, h int) []uint8 {
	out := make([]uint8, w*h)
	if o.IsEmpty() || w <= 0 || h <= 0 {
		return out
	}

	minY, maxY := o.yExtent()
	full := image.NewAlpha(image.Rect(0, 0, w, bandHeight))
	z := vector.NewRasterizer(w, bandHeight)

	for y0 := 0; y0 < h; y0 += bandHeight {
		bh := bandHeight
		if y0+bh > h {
			bh = h - y0
		}
		// Bands the outline never reaches stay all-zero.
		if float64(y0+bh) <= minY || float64(y0) >= maxY {
			continue
		}

		z.Reset(w, bh)
		z.DrawOp = draw.Src
		for i, pt := range o.pts {
			x := float32(pt.X)
			y := float32(pt.Y - float64(y0))
			if i == 0 {
				z.MoveTo(x, y)
			} else {
				z.LineTo(x, y)
			}
		}
		z.ClosePath()

		band := full
		if bh != bandHeight {
			band = image.NewAlpha(image.Rect(0, 0, w, bh))
		}
		z.Draw(band, band.Bounds(), image.Opaque, image.Point{})

		for row := 0; row < bh; row++ {
			copy(out[(y0+row)*w:(y0+row+1)*w], band.Pix[row*band.Stride:row*band.Stride+w])
		}
	}

	return out
}

// yExtent returns the vertical range covered by the outline.
func (o Outline) yExtent() (minY, maxY float64) {
	minY = math.Inf(1)
	maxY = math.Inf(-1)
	for _, p := range o.pts {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minY, maxY
}
