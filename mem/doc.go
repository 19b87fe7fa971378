// Package mem provides the alignment arithmetic and the narrow word copy used
// by the allocator's block bookkeeping.
//
// # Alignment
//
// RoundDown and RoundUp work for any fixed-width integer type. Block sizes are
// normalised with them before classification:
//
//	size, _ := mem.RoundUp(uint16(13), 4) // 16
//	mem.RoundDown(uint16(13), 4)          // 12
//
// A zero multiple is a caller bug and panics with Go's integer divide error.
//
// # Word Copy
//
// CopyNonoverlapping moves payload bytes one 32-bit word at a time. It assumes
// both addresses are 4-byte aligned, that the ranges do not overlap, and that
// both buffers extend to the next multiple of four past count:
//
//	count = 10 → 3 words copied → bytes [10, 12) of dst are overwritten
//
// None of this is checked unless the module is built with -tags tlsfdebug.
package mem
