// Package sprite generates procedural sprite assets as PNG images.
//
// # Overview
//
// sprite is a deterministic, CPU-only asset generator for the GoGPU
// ecosystem. It renders two kinds of assets:
//
//   - a radial glow sprite: a soft white disk whose alpha falls off from a
//     center point along a power curve and is then softened with a Gaussian
//     blur (see [RenderGlow]);
//   - a stroked-curve icon mask: a cubic Bezier stroked with round caps at
//     high resolution, downsampled, cleaned up with morphological filters,
//     and composited onto a solid color (see [RenderIcon]).
//
// # Quick Start
//
//	import "github.com/gogpu/sprite"
//
//	pm, err := sprite.RenderGlow(sprite.DefaultGlowParams())
//	if err != nil {
//		log.Fatal(err)
//	}
//	n, err := pm.SavePNG("glow.png")
//
// # Determinism
//
// Rendering the same parameters always produces byte-identical PNG output.
// Every pipeline stage runs on the CPU with a fixed evaluation order;
// nothing depends on hardware, goroutine scheduling, or map iteration.
//
// # Architecture
//
// The library is organized into:
//   - Public API: GlowParams, IconParams, RenderGlow, RenderIcon, Pixmap, Mask
//   - internal/filter: Gaussian blur, morphology, Lanczos resize over raw byte buffers
//   - internal/raster: stroke outline construction and coverage fill
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package sprite

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
