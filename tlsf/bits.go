package tlsf

import "math/bits"

// Fls returns the zero-based position of the highest set bit of size.
// size must be non-zero; Fls(0) wraps to 255.
func Fls(size uint16) uint8 {
	return 15 - uint8(bits.LeadingZeros16(size))
}

// Ffs returns the zero-based position of the lowest set bit of x, or 16 when
// x is zero.
func Ffs(x uint16) uint8 {
	return uint8(bits.TrailingZeros16(x))
}
