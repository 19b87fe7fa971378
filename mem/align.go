package mem

// Integer is the set of fixed-width integer kinds the rounding helpers accept.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// RoundDown returns the largest multiple of multiple that is <= x.
//
// Example:
//
//	RoundDown(13, 4) = 12
//	RoundDown(12, 4) = 12
func RoundDown[T Integer](x, multiple T) T {
	rem := x % multiple
	if rem == 0 {
		return x
	}
	return x - rem
}

// RoundUp returns the smallest multiple of multiple that is >= x, together
// with x%multiple (zero when x was already aligned).
//
// Example:
//
//	RoundUp(13, 4) = (16, 1)
//	RoundUp(16, 4) = (16, 0)
func RoundUp[T Integer](x, multiple T) (T, T) {
	rem := x % multiple
	if rem == 0 {
		return x, 0
	}
	return x + (multiple - rem), rem
}

// IsAligned reports whether x is a multiple of multiple.
func IsAligned[T Integer](x, multiple T) bool {
	return x%multiple == 0
}
