package filter

// MaxFilter returns a new buffer where every pixel is the maximum of the
// size×size window centered on it. size must be odd; size <= 1 returns a
// copy. Windows are clamped at the borders, which for a rank filter is
// identical to replicate padding.
//
// The square window is separable for max/min: a horizontal pass followed
// by a vertical pass, O(w*h*size) instead of O(w*h*size²).
func MaxFilter(src []uint8, w, h, size int) []uint8 {
	return slideExtremum(src, w, h, size, true)
}

// MinFilter returns a new buffer where every pixel is the minimum of the
// size×size window centered on it. Semantics match MaxFilter.
func MinFilter(src []uint8, w, h, size int) []uint8 {
	return slideExtremum(src, w, h, size, false)
}

// Close performs morphological closing: dilation (MaxFilter) followed by
// erosion (MinFilter) with the same window. Closing fills pinholes and
// hairline gaps up to roughly size/2 pixels without growing the shape.
func Close(src []uint8, w, h, size int) []uint8 {
	return MinFilter(MaxFilter(src, w, h, size), w, h, size)
}

// Snap pushes near-extreme values to the extremes in place:
// values below lo become 0, values at or above hi become 255.
// Values in [lo, hi) are left untouched, preserving edge antialiasing.
func Snap(pix []uint8, lo, hi uint8) {
	for i, v := range pix {
		if v < lo {
			pix[i] = 0
		} else if v >= hi {
			pix[i] = 255
		}
	}
}

// slideExtremum runs the separable max/min window over src.
func slideExtremum(src []uint8, w, h, size int, wantMax bool) []uint8 {
	out := make([]uint8, w*h)
	if size <= 1 || w <= 0 || h <= 0 {
		copy(out, src)
		return out
	}

	half := size / 2
	tmp := make([]uint8, w*h)

	// Pass 1: horizontal (src -> tmp)
	for y := 0; y < h; y++ {
		row := src[y*w : (y+1)*w]
		dst := tmp[y*w : (y+1)*w]
		for x := 0; x < w; x++ {
			lo := x - half
			if lo < 0 {
				lo = 0
			}
			hi := x + half
			if hi > w-1 {
				hi = w - 1
			}
			best := row[lo]
			for i := lo + 1; i <= hi; i++ {
				v := row[i]
				if wantMax {
					if v > best {
						best = v
					}
				} else {
					if v < best {
						best = v
					}
				}
			}
			dst[x] = best
		}
	}

	// Pass 2: vertical (tmp -> out)
	for y := 0; y < h; y++ {
		lo := y - half
		if lo < 0 {
			lo = 0
		}
		hi := y + half
		if hi > h-1 {
			hi = h - 1
		}
		for x := 0; x < w; x++ {
			best := tmp[lo*w+x]
			for i := lo + 1; i <= hi; i++ {
				v := tmp[i*w+x]
				if wantMax {
					if v > best {
						best = v
					}
				} else {
					if v < best {
						best = v
					}
				}
			}
			out[y*w+x] = best
		}
	}

	return out
}
