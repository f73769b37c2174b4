package filter

import "sync"

// BlurRGBA applies a separable Gaussian blur to an RGBA buffer in place.
// The buffer is row-major, 4 bytes per pixel, len(pix) >= w*h*4.
//
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*k) complexity instead of O(w*h*k²).
// Edges are handled by clamping (edge extension). sigma <= 0 is the
// identity.
func BlurRGBA(pix []uint8, w, h int, sigma float64) {
	if sigma <= 0 || w <= 0 || h <= 0 {
		return
	}

	kernel := CachedGaussianKernel(sigma)
	temp := getTempBuffer(w * h * 4)
	defer putTempBuffer(temp)

	// Pass 1: horizontal (pix -> temp)
	halfKernel := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := pix[y*w*4:]
		out := temp[y*w*4:]
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := x + k - halfKernel
				// Clamp to row bounds (edge extension)
				if kx < 0 {
					kx = 0
				} else if kx >= w {
					kx = w - 1
				}
				i := kx * 4
				r += float32(row[i+0]) * weight
				g += float32(row[i+1]) * weight
				b += float32(row[i+2]) * weight
				a += float32(row[i+3]) * weight
			}
			i := x * 4
			out[i+0] = r
			out[i+1] = g
			out[i+2] = b
			out[i+3] = a
		}
	}

	// Pass 2: vertical (temp -> pix)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := y + k - halfKernel
				if ky < 0 {
					ky = 0
				} else if ky >= h {
					ky = h - 1
				}
				i := (ky*w + x) * 4
				r += temp[i+0] * weight
				g += temp[i+1] * weight
				b += temp[i+2] * weight
				a += temp[i+3] * weight
			}
			i := (y*w + x) * 4
			pix[i+0] = clampUint8(r)
			pix[i+1] = clampUint8(g)
			pix[i+2] = clampUint8(b)
			pix[i+3] = clampUint8(a)
		}
	}
}

// BlurGray applies a separable Gaussian blur to a single-channel buffer
// in place. The buffer is row-major, len(pix) >= w*h. Semantics match
// BlurRGBA.
func BlurGray(pix []uint8, w, h int, sigma float64) {
	if sigma <= 0 || w <= 0 || h <= 0 {
		return
	}

	kernel := CachedGaussianKernel(sigma)
	temp := getTempBuffer(w * h)
	defer putTempBuffer(temp)

	halfKernel := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := pix[y*w:]
		out := temp[y*w:]
		for x := 0; x < w; x++ {
			var v float32
			for k, weight := range kernel {
				kx := x + k - halfKernel
				if kx < 0 {
					kx = 0
				} else if kx >= w {
					kx = w - 1
				}
				v += float32(row[kx]) * weight
			}
			out[x] = v
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var v float32
			for k, weight := range kernel {
				ky := y + k - halfKernel
				if ky < 0 {
					ky = 0
				} else if ky >= h {
					ky = h - 1
				}
				v += temp[ky*w+x] * weight
			}
			pix[y*w+x] = clampUint8(v)
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

// Temporary buffer pool shared by the filter passes.
var tempBufferPool = sync.Pool{
	New: func() interface{} {
		return &floatBuffer{data: make([]float32, 1024*1024)}
	},
}

// getTempBuffer retrieves a temporary buffer with at least size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if len(wrapper.data) < size {
		// Need larger buffer - return old one and allocate new
		tempBufferPool.Put(wrapper)
		return make([]float32, size)
	}
	return wrapper.data[:size]
}

// putTempBuffer returns a temporary buffer to the pool.
func putTempBuffer(buf []float32) {
	// Only pool reasonably-sized buffers
	if cap(buf) <= 16*1024*1024 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and converts to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5) // Round to nearest
}
