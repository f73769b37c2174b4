package sprite

import (
	"fmt"
	"time"

	"github.com/gogpu/sprite/internal/filter"
	"github.com/gogpu/sprite/internal/raster"
)

// Cleanup stage constants. The snap cutoffs straddle the antialiased rim:
// values below cleanupSnapLo collapse to transparent, values at or above
// cleanupSnapHi to opaque, and the band between keeps its antialiasing.
const (
	cleanupSnapLo   = 8
	cleanupSnapHi   = 200
	cleanupWideWin  = 5
	cleanupTightWin = 3
)

// IconParams configures the stroked-curve icon renderer.
type IconParams struct {
	// Size is the square output size in pixels.
	Size int

	// Scale is the supersampling factor. The stroke is rasterized on a
	// canvas of Size*Scale pixels per side and downsampled to Size.
	Scale int

	// StrokeWidth is the stroke width in output pixels.
	StrokeWidth float64

	// Samples is the number of points the curve is sampled at.
	Samples int

	// Curve holds the control points in output pixel coordinates.
	Curve CubicBez

	// Foreground is the solid color the mask is composited onto.
	Foreground RGBA
}

// DefaultIconParams returns the stock icon parameters: a flat-bottomed
// arc swinging up and back down, stroked in white.
func DefaultIconParams() IconParams {
	return IconParams{
		Size:        1024,
		Scale:       10,
		StrokeWidth: 75,
		Samples:     2000,
		Curve: NewCubicBez(
			Pt(160, 560),
			Pt(360, 560),
			Pt(664, 250),
			Pt(864, 535),
		),
		Foreground: White,
	}
}

// Validate checks that the parameters describe a renderable icon.
func (p IconParams) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("sprite: icon size must be positive, got %d", p.Size)
	}
	if p.Scale < 1 {
		return fmt.Errorf("sprite: icon scale must be at least 1, got %d", p.Scale)
	}
	if p.StrokeWidth <= 0 {
		return fmt.Errorf("sprite: icon stroke width must be positive, got %g", p.StrokeWidth)
	}
	if p.Samples < 2 {
		return fmt.Errorf("sprite: icon samples must be at least 2, got %d", p.Samples)
	}
	return nil
}

// RenderIcon renders a stroked-curve icon.
//
// Pipeline: sample Curve into a dense polyline at Scale times the output
// resolution; expand the polyline into a round-capped stroke outline and
// fill it into a supersampled coverage mask; downsample to Size with a
// Lanczos filter; clean the mask with two close-and-snap passes; then
// composite by filling a canvas with Foreground and installing the mask
// as its alpha channel.
//
// A degenerate curve whose samples all coincide renders the cap disk.
// The same parameters always produce the same pixels.
func RenderIcon(p IconParams) (*Pixmap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := Logger()
	if p.StrokeWidth > float64(p.Size) {
		log.Warn("icon stroke is wider than the canvas",
			"strokeWidth", p.StrokeWidth, "size", p.Size)
	}
	start := time.Now()

	ss := p.Size * p.Scale
	polyline := p.Curve.Scaled(float64(p.Scale)).Polyline(p.Samples)

	pts := make([]raster.Point, len(polyline))
	for i, pt := range polyline {
		pts[i] = raster.Point{X: pt.X, Y: pt.Y}
	}
	outline := raster.Stroke(pts, p.StrokeWidth*float64(p.Scale))
	big := outline.Rasterize(ss, ss)
	log.Debug("icon stroke rasterized",
		"canvas", ss, "samples", p.Samples, "elapsed", time.Since(start))

	small := filter.ResizeLanczos(big, ss, ss, p.Size, p.Size)
	mask, err := MaskFromData(p.Size, p.Size, cleanMask(small, p.Size, p.Size))
	if err != nil {
		return nil, err
	}

	pm := NewPixmap(p.Size, p.Size)
	pm.FillSolid(p.Foreground)
	if err := pm.SetAlphaChannel(mask); err != nil {
		return nil, err
	}

	log.Debug("icon rendered",
		"size", p.Size, "scale", p.Scale, "duration", time.Since(start))
	return pm, nil
}

// cleanMask stabilizes a downsampled stroke mask: a wide closing seals
// resampling pinholes, a tight closing settles the edge, and each pass
// ends with a threshold snap toward clean binary coverage.
//
// cleanMask is idempotent: running it on its own output changes nothing.
func cleanMask(pix []uint8, w, h int) []uint8 {
	out := filter.Close(pix, w, h, cleanupWideWin)
	filter.Snap(out, cleanupSnapLo, cleanupSnapHi)
	out = filter.Close(out, w, h, cleanupTightWin)
	filter.Snap(out, cleanupSnapLo, cleanupSnapHi)
	return out
}
