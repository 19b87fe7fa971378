package tlsf

import (
	"fmt"
	"math"

	"github.com/joshuapare/tlsfkit/internal/logger"
	"github.com/joshuapare/tlsfkit/mem"
)

// Params is the fixed constant set of one allocator configuration. Build it
// with NewParams or take a preset; every field is derived from the alignment,
// the second-level subdivision count and the maximum block size.
//
// Params is an immutable value and safe to share between goroutines.
type Params struct {
	// Name identifies presets (empty for custom configurations)
	Name string

	AlignSizeLog2 uint8
	AlignSize     uint16

	SLILog2 uint8
	SLI     uint8

	SizeThreshold uint16 // SLI << AlignSizeLog2
	FLIShift      uint8  // log2(SizeThreshold)
	FLI           uint8  // first-level bucket count, linear bucket included

	MaxBlockSize   uint16 // largest size accepted by MappingInsert
	MaxRequestSize uint16 // largest size accepted by MappingSearch
}

// Predefined configurations.
var (
	// Default matches the package constants: 4-byte alignment, 16 subdivisions.
	// 0-60 step 4 (16 classes) + 64-64K in 10 log2 brackets of 16 = 176 classes.
	Default = mustPreset("default", AlignSizeLog2, SLILog2, MaxBlockSize)

	// Fine halves the second-level step: 4-byte alignment, 32 subdivisions.
	// 0-124 step 4 (32 classes) + 128-64K in 9 brackets of 32 = 320 classes.
	Fine = mustPreset("fine", 2, 5, 0xFFFF)

	// Coarse trades granularity for a smaller bitmap: 8-byte alignment, 8 subdivisions.
	// 0-56 step 8 (8 classes) + 64-64K in 10 brackets of 8 = 88 classes.
	Coarse = mustPreset("coarse", 3, 3, 0xFFFF)
)

// Presets returns the predefined configurations in ascending granularity.
func Presets() []Params {
	return []Params{Coarse, Default, Fine}
}

// Preset looks up a predefined configuration by name.
func Preset(name string) (Params, error) {
	for _, p := range Presets() {
		if p.Name == name {
			return p, nil
		}
	}
	return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// NewParams derives a configuration from the alignment log2, the
// second-level log2 and the largest block size. maxBlock is rounded down to
// the alignment.
func NewParams(alignLog2, sliLog2 uint8, maxBlock uint16) (Params, error) {
	if alignLog2 > MaxAlignLog2 {
		return Params{}, fmt.Errorf("%w: log2 %d > %d", ErrAlignment, alignLog2, MaxAlignLog2)
	}
	if sliLog2 < 1 || sliLog2 > MaxSLILog2 {
		return Params{}, fmt.Errorf("%w: log2 %d not in [1, %d]", ErrSecondLevel, sliLog2, MaxSLILog2)
	}
	// Both limits are 7, so the threshold is at most 1<<14.
	shift := alignLog2 + sliLog2

	p := Params{
		AlignSizeLog2: alignLog2,
		AlignSize:     1 << alignLog2,
		SLILog2:       sliLog2,
		SLI:           1 << sliLog2,
		SizeThreshold: 1 << shift,
		FLIShift:      shift,
	}

	p.MaxBlockSize = mem.RoundDown(maxBlock, p.AlignSize)
	if p.MaxBlockSize < p.SizeThreshold {
		return Params{}, fmt.Errorf("%w: %d < %d", ErrMaxBlock, p.MaxBlockSize, p.SizeThreshold)
	}
	p.FLI = Fls(p.MaxBlockSize) - (p.FLIShift - 1) + 1
	p.MaxRequestSize = p.maxRequest()

	logger.Debug("tlsf: params derived",
		"align", p.AlignSize,
		"sli", p.SLI,
		"threshold", p.SizeThreshold,
		"fli", p.FLI,
		"max_block", p.MaxBlockSize,
		"max_request", p.MaxRequestSize,
	)
	return p, nil
}

func mustPreset(name string, alignLog2, sliLog2 uint8, maxBlock uint16) Params {
	p, err := NewParams(alignLog2, sliLog2, maxBlock)
	if err != nil {
		panic(fmt.Sprintf("tlsf: preset %s: %v", name, err))
	}
	p.Name = name
	return p
}

// maxRequest finds the largest aligned size below MaxBlockSize whose search
// round-up neither overflows 16 bits nor lands in a class above MaxBlockSize.
// When no size at or above the threshold qualifies, the answer is the top of
// the linear region, where search is exact.
func (p Params) maxRequest() uint16 {
	align := uint32(p.AlignSize)
	for s := uint32(p.MaxBlockSize) - align; s >= uint32(p.SizeThreshold); s -= align {
		rounded := s + (1 << (Fls(uint16(s)) - p.SLILog2)) - 1
		if rounded > math.MaxUint16 {
			continue
		}
		if p.MinSize(p.insert(uint16(rounded))) <= p.MaxBlockSize {
			return uint16(s)
		}
	}
	return p.SizeThreshold - p.AlignSize
}

// MinSize returns the smallest size that insert-maps to idx. idx must be a
// valid index for p.
func (p Params) MinSize(idx Index) uint16 {
	if idx.FL == 0 {
		return uint16(idx.SL) << p.AlignSizeLog2
	}
	return uint16((uint32(p.SLI) + uint32(idx.SL)) << p.classShift(idx.FL))
}

// MaxSize returns the largest aligned size, capped at MaxBlockSize, that
// insert-maps to idx.
func (p Params) MaxSize(idx Index) uint16 {
	lo := uint32(p.MinSize(idx))
	if idx.FL == 0 {
		return uint16(lo)
	}
	hi := lo + (uint32(1) << p.classShift(idx.FL)) - uint32(p.AlignSize)
	return uint16(min(hi, uint32(p.MaxBlockSize)))
}

// classShift is log2 of the size span of one second-level class in bracket fl.
func (p Params) classShift(fl uint8) uint8 {
	return fl + p.FLIShift - 1 - p.SLILog2
}

// AdjustRequest rounds a raw request up to the alignment. It reports false
// for non-positive requests and for requests above MaxRequestSize.
func (p Params) AdjustRequest(n int) (uint16, bool) {
	if n <= 0 || n > int(p.MaxRequestSize) {
		return 0, false
	}
	size, _ := mem.RoundUp(n, int(p.AlignSize))
	if size > int(p.MaxRequestSize) {
		return 0, false
	}
	return uint16(size), true
}

// NumLists returns FLI*SLI, the size of a flat free-list array for p.
func (p Params) NumLists() int {
	return int(p.FLI) * int(p.SLI)
}

func (p Params) String() string {
	name := p.Name
	if name == "" {
		name = "custom"
	}
	return fmt.Sprintf(
		"%s: align=%d sli=%d threshold=%d fli=%d max_block=%d max_request=%d",
		name, p.AlignSize, p.SLI, p.SizeThreshold, p.FLI, p.MaxBlockSize, p.MaxRequestSize,
	)
}
