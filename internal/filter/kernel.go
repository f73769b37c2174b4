// Package filter implements the image filters the render pipelines are
// built from: separable Gaussian blur, morphological max/min with threshold
// snapping, and Lanczos resampling.
//
// Every function operates on a raw row-major byte buffer plus explicit
// dimensions. Keeping the package free of higher-level image types makes
// each filter independently testable and reusable across channel layouts.
package filter

import (
	"math"
	"sync"
)

// GaussianKernel generates a 1D Gaussian kernel for the given sigma.
// The kernel is normalized so all values sum to 1.0.
//
// The kernel size is computed as 2 * ceil(sigma * 3) + 1, which covers
// 99.7% of the Gaussian distribution (3 standard deviations).
//
// For sigma <= 0, returns a single-element kernel [1.0] (identity).
func GaussianKernel(sigma float64) []float32 {
	if sigma <= 0 {
		return []float32{1.0}
	}

	halfSize := int(math.Ceil(sigma * 3))
	size := halfSize*2 + 1

	kernel := make([]float32, size)

	// Gaussian formula: G(x) = exp(-x²/(2σ²)) / (σ√(2π))
	// We skip the normalization constant since we'll normalize sum to 1
	twoSigmaSq := 2 * sigma * sigma
	sum := float64(0)

	for i := 0; i < size; i++ {
		x := float64(i - halfSize)
		val := math.Exp(-(x * x) / twoSigmaSq)
		kernel[i] = float32(val)
		sum += val
	}

	// Normalize so kernel sums to 1.0
	if sum > 0 {
		invSum := float32(1.0 / sum)
		for i := range kernel {
			kernel[i] *= invSum
		}
	}

	return kernel
}

// kernelCache caches computed Gaussian kernels to avoid recomputation.
// Key is sigma * 100 (to handle float precision), value is kernel.
type kernelCache struct {
	mu     sync.RWMutex
	cache  map[int][]float32
	maxLen int
}

var defaultKernelCache = newKernelCache(64)

// newKernelCache creates a kernel cache with the given maximum entries.
func newKernelCache(maxLen int) *kernelCache {
	return &kernelCache{
		cache:  make(map[int][]float32),
		maxLen: maxLen,
	}
}

// get retrieves a kernel from cache or generates and caches it.
func (c *kernelCache) get(sigma float64) []float32 {
	// Quantize sigma to 0.01 precision
	key := int(sigma * 100)

	// Try read lock first
	c.mu.RLock()
	if kernel, ok := c.cache[key]; ok {
		c.mu.RUnlock()
		return kernel
	}
	c.mu.RUnlock()

	// Generate kernel
	kernel := GaussianKernel(sigma)

	// Cache with write lock
	c.mu.Lock()
	if len(c.cache) >= c.maxLen {
		// Simple eviction: clear half the cache
		count := 0
		for k := range c.cache {
			delete(c.cache, k)
			count++
			if count >= c.maxLen/2 {
				break
			}
		}
	}
	c.cache[key] = kernel
	c.mu.Unlock()

	return kernel
}

// CachedGaussianKernel returns a cached Gaussian kernel for the sigma.
// This is more efficient when the same sigma is used repeatedly.
func CachedGaussianKernel(sigma float64) []float32 {
	return defaultKernelCache.get(sigma)
}
