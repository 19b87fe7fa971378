package tlsf

import (
	"cmp"
	"fmt"
)

// Index addresses one segregated free-list: FL selects the power-of-two
// bracket and SL the linear subdivision inside it.
type Index struct {
	FL uint8
	SL uint8
}

// Compare orders indices lexicographically by (FL, SL), which matches the
// order of the size classes they name.
func (i Index) Compare(o Index) int {
	if c := cmp.Compare(i.FL, o.FL); c != 0 {
		return c
	}
	return cmp.Compare(i.SL, o.SL)
}

// Less reports whether i names a smaller size class than o.
func (i Index) Less(o Index) bool {
	return i.Compare(o) < 0
}

// Flat returns FL*sli + SL, the list number for free-list storage laid out as
// one flat array.
func (i Index) Flat(sli uint8) int {
	return int(i.FL)*int(sli) + int(i.SL)
}

func (i Index) String() string {
	return fmt.Sprintf("fl=%d sl=%d", i.FL, i.SL)
}
