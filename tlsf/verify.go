package tlsf

import (
	"errors"
	"fmt"

	"github.com/joshuapare/tlsfkit/internal/logger"
)

// maxReported caps the violations Verify returns individually.
const maxReported = 32

// Verify checks every aligned size of p's domain against the mapping
// invariants:
//
//   - insert and search indices stay below (FLI, SLI)
//   - below SizeThreshold both mappings are linear and agree
//   - SizeThreshold itself maps to the first log2 class (1, 0)
//   - insert and search are monotonic in size
//   - MinSize/MaxSize of an insert index bracket the size
//   - the class chosen by search never holds blocks smaller than the request
//
// It returns nil or an error joining the violations, each wrapping ErrInvariant.
func Verify(p Params) error {
	v := verifier{p: p}

	var prevInsert, prevSearch Index
	step := uint32(p.AlignSize)
	for s := uint32(0); s <= uint32(p.MaxBlockSize); s += step {
		size := uint16(s)
		ins := p.insert(size)
		v.checkBounds(size, "insert", ins)

		if size > 0 && ins.Less(prevInsert) {
			v.fail(size, "insert index %v below previous %v", ins, prevInsert)
		}
		prevInsert = ins

		if lo, hi := p.MinSize(ins), p.MaxSize(ins); size < lo || size > hi {
			v.fail(size, "insert index %v covers [%d, %d]", ins, lo, hi)
		}

		switch {
		case size < p.SizeThreshold:
			want := Index{FL: 0, SL: uint8(size >> p.AlignSizeLog2)}
			if ins != want {
				v.fail(size, "linear insert %v, want %v", ins, want)
			}
		case size == p.SizeThreshold:
			if want := (Index{FL: 1, SL: 0}); ins != want {
				v.fail(size, "threshold insert %v, want %v", ins, want)
			}
		}

		if size > p.MaxRequestSize {
			continue
		}

		srch := p.search(size)
		v.checkBounds(size, "search", srch)

		if size > 0 && srch.Less(prevSearch) {
			v.fail(size, "search index %v below previous %v", srch, prevSearch)
		}
		prevSearch = srch

		if size < p.SizeThreshold {
			if srch != ins {
				v.fail(size, "search %v and insert %v disagree below threshold", srch, ins)
			}
			continue
		}
		if srch.Less(ins) {
			v.fail(size, "search %v below insert %v", srch, ins)
		}
		if got := p.MinSize(srch); got < size {
			v.fail(size, "search %v holds blocks from %d", srch, got)
		}
	}

	logger.Debug("tlsf: verified", "params", p.Name, "violations", v.count)
	return v.err()
}

type verifier struct {
	p     Params
	errs  []error
	count int
}

func (v *verifier) checkBounds(size uint16, op string, idx Index) {
	if idx.FL >= v.p.FLI || idx.SL >= v.p.SLI {
		v.fail(size, "%s index %v outside (%d, %d)", op, idx, v.p.FLI, v.p.SLI)
	}
}

func (v *verifier) fail(size uint16, format string, args ...any) {
	v.count++
	if len(v.errs) < maxReported {
		v.errs = append(v.errs, fmt.Errorf("%w: size %d: %s", ErrInvariant, size, fmt.Sprintf(format, args...)))
	}
}

func (v *verifier) err() error {
	if v.count == 0 {
		return nil
	}
	errs := v.errs
	if extra := v.count - len(errs); extra > 0 {
		errs = append(errs, fmt.Errorf("%w: %d further violations", ErrInvariant, extra))
	}
	return errors.Join(errs...)
}
