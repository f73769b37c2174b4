package filter

// Test helper functions shared across filter tests.

// fillPattern writes a deterministic byte pattern into buf.
func fillPattern(buf []uint8) {
	for i := range buf {
		buf[i] = uint8((i*31 + i/7) % 251)
	}
}

// formatFloat formats a float for benchmark names.
func formatFloat(f float64) string {
	if f == float64(int(f)) {
		return formatInt(int(f))
	}
	intPart := int(f)
	fracPart := int((f - float64(intPart)) * 100)
	if fracPart < 0 {
		fracPart = -fracPart
	}
	return formatInt(intPart) + "." + formatInt(fracPart)
}

// formatInt formats an integer without using fmt.
func formatInt(i int) string {
	if i == 0 {
		return "0"
	}
	neg := i < 0
	if neg {
		i = -i
	}
	var digits []byte
	for i > 0 {
		digits = append([]byte{byte('0' + i%10)}, digits...)
		i /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
