package tlsf

// Default allocator configuration. Default is built from these and the
// package-level mapping functions classify against it.
const (
	AlignSizeLog2 uint8  = 2
	AlignSize     uint16 = 1 << AlignSizeLog2

	SLILog2 uint8 = 4
	SLI     uint8 = 1 << SLILog2

	// SizeThreshold is the first size classified by the log2 path. Below it
	// each aligned size has its own class in first-level bucket 0.
	SizeThreshold uint16 = uint16(SLI) << AlignSizeLog2

	// FLIShift is log2(SizeThreshold). Subtracting FLIShift-1 from fls(size)
	// numbers the log2 buckets from 1, right after the linear bucket.
	FLIShift uint8 = SLILog2 + AlignSizeLog2

	MaxBlockSize uint16 = 0xFFFC

	// FLI counts first-level buckets: fls(MaxBlockSize) - (FLIShift-1) + 1.
	FLI uint8 = 15 - (FLIShift - 1) + 1

	// MaxRequestSize is the largest search size whose round-up stays in the
	// 16-bit domain.
	MaxRequestSize uint16 = 0xF800
)

// Limits accepted by NewParams.
const (
	MaxAlignLog2 uint8 = 7
	MaxSLILog2   uint8 = 7
)

// Compile-time consistency of the defaults.
var (
	_ = [1]struct{}{}[MaxBlockSize%AlignSize]
	_ = [1]struct{}{}[MaxRequestSize%AlignSize]
	_ [MaxBlockSize - MaxRequestSize - 1]struct{}
	_ [MaxBlockSize - SizeThreshold]struct{}
)
