package tlsf

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/joshuapare/tlsfkit/internal/logger"
)

// Class is one size class: every aligned size in [Min, Max] insert-maps to Index.
type Class struct {
	Index Index
	Min   uint16
	Max   uint16
}

// Table lists the populated size classes of a configuration in ascending order.
type Table struct {
	params  Params
	classes []Class
}

// NewTable enumerates every aligned size up to MaxBlockSize and groups
// consecutive sizes sharing an index into classes.
func NewTable(p Params) *Table {
	t := &Table{
		params:  p,
		classes: make([]Class, 0, p.NumLists()),
	}

	step := uint32(p.AlignSize)
	for s := uint32(0); s <= uint32(p.MaxBlockSize); s += step {
		size := uint16(s)
		idx := p.MappingInsert(size)

		if n := len(t.classes); n > 0 && t.classes[n-1].Index == idx {
			t.classes[n-1].Max = size
			continue
		}
		t.classes = append(t.classes, Class{Index: idx, Min: size, Max: size})
	}

	logger.Debug("tlsf: table built", "params", p.Name, "classes", len(t.classes))
	return t
}

// Params returns the configuration the table was built from.
func (t *Table) Params() Params {
	return t.params
}

// Classes returns the classes in ascending order. The slice must not be modified.
func (t *Table) Classes() []Class {
	return t.classes
}

// NumClasses returns the number of populated classes.
func (t *Table) NumClasses() int {
	return len(t.classes)
}

// Lookup returns the class containing size. Unaligned sizes are rounded down
// first; sizes above MaxBlockSize report false.
func (t *Table) Lookup(size uint16) (Class, bool) {
	if size > t.params.MaxBlockSize {
		return Class{}, false
	}
	size -= size % t.params.AlignSize

	// Binary search for the first class whose upper bound covers size
	lo, hi := 0, len(t.classes)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if size <= t.classes[mid].Max {
			if mid == 0 || size > t.classes[mid-1].Max {
				return t.classes[mid], true
			}
			hi = mid - 1
		} else {
			lo = mid + 1
		}
	}
	return Class{}, false
}

// Fingerprint hashes the parameters and the full class list. Two tables with
// equal fingerprints classify every size identically.
func (t *Table) Fingerprint() uint64 {
	buf := make([]byte, 0, 8+len(t.classes)*6)
	buf = append(buf, t.params.AlignSizeLog2, t.params.SLILog2)
	buf = binary.LittleEndian.AppendUint16(buf, t.params.MaxBlockSize)
	buf = binary.LittleEndian.AppendUint16(buf, t.params.MaxRequestSize)
	buf = append(buf, t.params.FLI, t.params.FLIShift)

	for _, c := range t.classes {
		buf = append(buf, c.Index.FL, c.Index.SL)
		buf = binary.LittleEndian.AppendUint16(buf, c.Min)
		buf = binary.LittleEndian.AppendUint16(buf, c.Max)
	}
	return xxhash.Sum64(buf)
}

// String returns a human-readable description of the table.
func (t *Table) String() string {
	return t.params.String()
}
