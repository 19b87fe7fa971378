package tlsf

import "github.com/joshuapare/tlsfkit/internal/debug"

// MappingInsert classifies a free block of exactly size bytes using Default.
func MappingInsert(size uint16) Index {
	return Default.MappingInsert(size)
}

// MappingSearch returns the first list to probe for a request of size bytes
// using Default.
func MappingSearch(size uint16) Index {
	return Default.MappingSearch(size)
}

// MappingInsert returns the class of a free block of exactly size bytes.
//
// size must be a multiple of AlignSize and at most MaxBlockSize. Sizes below
// SizeThreshold map linearly into bucket 0; from the threshold up FL is the
// log2 bracket and SL the SLILog2 bits under the leading one.
func (p Params) MappingInsert(size uint16) Index {
	if debug.Enabled {
		debug.Assertf(size%p.AlignSize == 0, "insert: size %d not aligned to %d", size, p.AlignSize)
		debug.Assertf(size <= p.MaxBlockSize, "insert: size %d > max block %d", size, p.MaxBlockSize)
	}
	return p.checked(p.insert(size))
}

// MappingSearch returns the class to probe for a request of at least size
// bytes. Any block on a non-empty list at the returned index satisfies the
// request.
//
// size must be a multiple of AlignSize and at most MaxRequestSize.
func (p Params) MappingSearch(size uint16) Index {
	if debug.Enabled {
		debug.Assertf(size%p.AlignSize == 0, "search: size %d not aligned to %d", size, p.AlignSize)
		debug.Assertf(size <= p.MaxRequestSize, "search: size %d > max request %d", size, p.MaxRequestSize)
	}
	return p.checked(p.search(size))
}

func (p Params) insert(size uint16) Index {
	if size < p.SizeThreshold {
		return Index{FL: 0, SL: uint8(size >> p.AlignSizeLog2)}
	}
	fl := Fls(size)
	// XOR drops the implicit leading one, leaving the SLILog2 bits below it.
	sl := uint8(size>>(fl-p.SLILog2)) ^ p.SLI
	fl -= p.FLIShift - 1
	return Index{FL: fl, SL: sl}
}

func (p Params) search(size uint16) Index {
	if size >= p.SizeThreshold {
		// Round up to the top of the current subdivision so every block in
		// the resulting class is at least size bytes.
		size += (1 << (Fls(size) - p.SLILog2)) - 1
	}
	return p.insert(size)
}

func (p Params) checked(idx Index) Index {
	if debug.Enabled {
		debug.Assertf(idx.FL < p.FLI, "index %v: fl >= FLI %d", idx, p.FLI)
		debug.Assertf(idx.SL < p.SLI, "index %v: sl >= SLI %d", idx, p.SLI)
	}
	return idx
}
