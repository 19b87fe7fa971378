// Package tlsf maps block sizes to the segregated free-list indices of a
// Two-Level Segregated Fit allocator.
//
// # Overview
//
// A TLSF allocator keeps one free-list per size class and addresses the lists
// with a two-level index: the first level (FL) picks a power-of-two bracket,
// the second level (SL) a linear subdivision inside it. This package computes
// that index in O(1) with a single bit scan. The free-list storage, block
// headers, splitting and coalescing live in the allocator that consumes the
// Index values returned here.
//
// # Mappings
//
// Two mappings are provided and must be used in pairs:
//
//   - MappingInsert(size): the exact class of a free block of size bytes.
//     Used when linking a freed block.
//   - MappingSearch(size): the class to probe for a request of size bytes.
//     The size is first rounded up to the top of its subdivision, so any block
//     found on that list (or any larger list) satisfies the request.
//
// Both take sizes already aligned to AlignSize (see mem.RoundUp).
//
//	idx := tlsf.MappingSearch(48)  // fl=0 sl=12
//	idx = tlsf.MappingInsert(256)  // fl=3 sl=0
//
// # Size Classes
//
// With the Default parameters (4-byte alignment, 16 subdivisions):
//
//	FL 0:     0 -    60 bytes, step 4  (linear region)
//	FL 1:    64 -   124 bytes, step 4
//	FL 2:   128 -   248 bytes, step 8
//	FL 3:   256 -   496 bytes, step 16
//	...
//	FL 10: 32768 - 65532 bytes, step 2048
//
// Below SizeThreshold a log2 bracket would be coarser than the alignment
// itself, so those sizes are classified linearly. SizeThreshold is always
// SLI << AlignSizeLog2, which makes the linear region exactly SLI classes wide.
//
// # Parameters
//
// The constants are carried by Params. Default mirrors the package constants;
// Fine and Coarse are alternative presets, and NewParams derives a custom set
// from an alignment, a subdivision count and a maximum block size. NewTable
// lists the resulting classes and Verify checks the mapping invariants over
// the whole 16-bit domain.
//
// # Debug Builds
//
// Preconditions (alignment, upper bounds) and the index bounds FL < FLI,
// SL < SLI are asserted only when built with -tags tlsfdebug. In release
// builds a violated precondition yields an out-of-range Index.
//
// # Thread Safety
//
// Every function is pure and allocation-free on the mapping path. Params is an
// immutable value. Synchronising the free-lists is the allocator's job.
package tlsf
