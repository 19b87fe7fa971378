package mem

import (
	"unsafe"

	"github.com/joshuapare/tlsfkit/internal/debug"
)

// WordSize is the copy granularity of CopyNonoverlapping.
const WordSize = 4

// CopyNonoverlapping copies count bytes from src to dst in 32-bit words.
//
// Both pointers must be 4-byte aligned and the ranges must not overlap. count
// is rounded up to a multiple of WordSize, so when it is not already one the
// routine reads and writes up to 3 bytes past the end of the requested range.
// Callers must guarantee both buffers have that slack.
//
// The builtin copy is deliberately not used: it would handle the tail byte by
// byte, and the allocator's buffer sizing relies on the full-word behaviour.
func CopyNonoverlapping(src, dst unsafe.Pointer, count uintptr) {
	if debug.Enabled {
		debug.Assertf(uintptr(src)%WordSize == 0, "copy: src %p not %d-byte aligned", src, WordSize)
		debug.Assertf(uintptr(dst)%WordSize == 0, "copy: dst %p not %d-byte aligned", dst, WordSize)
	}

	words, _ := RoundUp(count, WordSize)
	words >>= 2

	for i := uintptr(0); i < words; i++ {
		off := i * WordSize
		*(*uint32)(unsafe.Add(dst, off)) = *(*uint32)(unsafe.Add(src, off))
	}
}

// CopyWords is the slice form of CopyNonoverlapping. Both slices must be at
// least RoundUp(count, WordSize) long and start on a word boundary.
//
// The length and alignment requirements are only checked in tlsfdebug builds.
func CopyWords(dst, src []byte, count int) {
	if count <= 0 {
		return
	}
	if debug.Enabled {
		need, _ := RoundUp(count, WordSize)
		debug.Assertf(len(src) >= need, "copy: src has %d bytes, need %d", len(src), need)
		debug.Assertf(len(dst) >= need, "copy: dst has %d bytes, need %d", len(dst), need)
		debug.Assertf(!overlaps(dst[:need], src[:need]), "copy: ranges overlap")
	}
	CopyNonoverlapping(
		unsafe.Pointer(unsafe.SliceData(src)),
		unsafe.Pointer(unsafe.SliceData(dst)),
		uintptr(count),
	)
}

func overlaps(a, b []byte) bool {
	as := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	bs := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	return as < bs+uintptr(len(b)) && bs < as+uintptr(len(a))
}
