package sprite

import (
	"fmt"
	"math"
	"time"

	"github.com/gogpu/sprite/internal/filter"
)

// GlowParams configures the radial glow renderer.
type GlowParams struct {
	// Size is the square output size in pixels.
	Size int

	// Center is the glow center in pixel coordinates.
	Center Point

	// Radius is the distance at which the falloff reaches zero.
	Radius float64

	// Alpha is the peak alpha value at the center, in [0, 255].
	Alpha float64

	// Blur is the sigma of the Gaussian blur applied after the falloff.
	// Zero disables the blur.
	Blur float64

	// Power is the falloff exponent. Values above 1 concentrate the glow
	// toward the center; values below 1 flatten it.
	Power float64
}

// DefaultGlowParams returns the stock glow sprite parameters.
func DefaultGlowParams() GlowParams {
	return GlowParams{
		Size:   1024,
		Center: Pt(512, 410),
		Radius: 280,
		Alpha:  185,
		Blur:   20,
		Power:  1.9,
	}
}

// Validate checks that the parameters describe a renderable glow.
func (p GlowParams) Validate() error {
	if p.Size < 1 {
		return fmt.Errorf("sprite: glow size must be positive, got %d", p.Size)
	}
	if p.Radius <= 0 {
		return fmt.Errorf("sprite: glow radius must be positive, got %g", p.Radius)
	}
	if p.Alpha < 0 || p.Alpha > 255 {
		return fmt.Errorf("sprite: glow alpha must be in [0, 255], got %g", p.Alpha)
	}
	if p.Blur < 0 {
		return fmt.Errorf("sprite: glow blur must not be negative, got %g", p.Blur)
	}
	if p.Power <= 0 {
		return fmt.Errorf("sprite: glow power must be positive, got %g", p.Power)
	}
	return nil
}

// RenderGlow renders a radial glow sprite.
//
// For every pixel, the Euclidean distance d to Center maps to
// t = clamp(1 - d/Radius, 0, 1), and the pixel's alpha becomes
// t^Power * Alpha, clamped to [0, 255] and truncated to 8 bits. The color
// channels are constant white, so the sprite tints purely through alpha.
// A Gaussian blur with sigma Blur then softens the result.
//
// The same parameters always produce the same pixels.
func RenderGlow(p GlowParams) (*Pixmap, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	log := Logger()
	if p.Blur*3 > float64(p.Size) {
		log.Warn("glow blur sigma is large relative to the canvas",
			"blur", p.Blur, "size", p.Size)
	}
	start := time.Now()

	pm := NewPixmap(p.Size, p.Size)
	data := pm.Data()
	invRadius := 1 / p.Radius

	for y := 0; y < p.Size; y++ {
		dy := float64(y) - p.Center.Y
		for x := 0; x < p.Size; x++ {
			dx := float64(x) - p.Center.X
			dist := math.Sqrt(dx*dx + dy*dy)

			t := 1 - dist*invRadius
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			alpha := math.Pow(t, p.Power) * p.Alpha

			i := (y*p.Size + x) * 4
			data[i+0] = 255
			data[i+1] = 255
			data[i+2] = 255
			// Truncate, not round: quantization keeps the peak alpha exact.
			data[i+3] = uint8(clamp255(alpha))
		}
	}
	log.Debug("glow falloff computed",
		"size", p.Size, "radius", p.Radius, "power", p.Power)

	filter.BlurRGBA(data, p.Size, p.Size, p.Blur)

	log.Debug("glow rendered",
		"size", p.Size, "blur", p.Blur, "duration", time.Since(start))
	return pm, nil
}
