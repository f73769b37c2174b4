package filter

import "math"

// lanczosA is the lobe count of the windowed sinc. Three lobes is the
// usual high-quality choice for downsampling.
const lanczosA = 3.0

// ResizeLanczos resamples a single-channel buffer from sw×sh to dw×dh
// using a separable Lanczos filter (a=3).
//
// On reduction the filter support expands by the scale ratio, so the
// kernel acts as an antialiasing low-pass as well as an interpolator.
// Weights are normalized per output pixel, which keeps constant inputs
// exactly constant. Intermediate values are kept in float32; the final
// store clamps to [0, 255], absorbing the over- and undershoot ringing
// a windowed sinc produces at hard edges.
//
// Source and destination dimensions must be positive. Equal dimensions
// return a plain copy.
func ResizeLanczos(src []uint8, sw, sh, dw, dh int) []uint8 {
	if sw <= 0 || sh <= 0 || dw <= 0 || dh <= 0 {
		return nil
	}
	if sw == dw && sh == dh {
		out := make([]uint8, len(src))
		copy(out, src)
		return out
	}

	xFirst, xWeights := resampleCoeffs(sw, dw)
	yFirst, yWeights := resampleCoeffs(sh, dh)

	// Pass 1: horizontal (src -> temp), still at source height.
	temp := getTempBuffer(dw * sh)
	defer putTempBuffer(temp)
	for y := 0; y < sh; y++ {
		row := src[y*sw : (y+1)*sw]
		out := temp[y*dw : (y+1)*dw]
		for x := 0; x < dw; x++ {
			var v float32
			first := xFirst[x]
			for k, weight := range xWeights[x] {
				v += float32(row[first+k]) * weight
			}
			out[x] = v
		}
	}

	// Pass 2: vertical (temp -> out).
	out := make([]uint8, dw*dh)
	for y := 0; y < dh; y++ {
		first := yFirst[y]
		weights := yWeights[y]
		for x := 0; x < dw; x++ {
			var v float32
			for k, weight := range weights {
				v += temp[(first+k)*dw+x] * weight
			}
			out[y*dw+x] = clampUint8(v)
		}
	}

	return out
}

// resampleCoeffs precomputes, for every destination coordinate, the first
// contributing source coordinate and the normalized filter weights over
// the contributing range.
//
// Source and destination pixel centers sit at integer+0.5. A destination
// center maps back to (d+0.5)*scale in source space; the filter support
// around it is 3*filterScale where filterScale = max(scale, 1).
func resampleCoeffs(srcSize, dstSize int) ([]int, [][]float32) {
	scale := float64(srcSize) / float64(dstSize)
	filterScale := scale
	if filterScale < 1 {
		filterScale = 1
	}
	support := lanczosA * filterScale
	invScale := 1 / filterScale

	first := make([]int, dstSize)
	weights := make([][]float32, dstSize)

	for d := 0; d < dstSize; d++ {
		center := (float64(d) + 0.5) * scale
		lo := int(center - support + 0.5)
		if lo < 0 {
			lo = 0
		}
		hi := int(center + support + 0.5)
		if hi > srcSize {
			hi = srcSize
		}

		w := make([]float32, hi-lo)
		var sum float64
		for s := lo; s < hi; s++ {
			v := lanczos3((float64(s) - center + 0.5) * invScale)
			w[s-lo] = float32(v)
			sum += v
		}
		if sum != 0 {
			inv := float32(1 / sum)
			for i := range w {
				w[i] *= inv
			}
		}

		first[d] = lo
		weights[d] = w
	}

	return first, weights
}

// lanczos3 evaluates the 3-lobe Lanczos kernel sinc(x)*sinc(x/3).
func lanczos3(x float64) float64 {
	if x <= -lanczosA || x >= lanczosA {
		return 0
	}
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return lanczosA * math.Sin(px) * math.Sin(px/lanczosA) / (px * px)
}
