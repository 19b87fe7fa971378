// Package debug provides contract assertions that are compiled in only when
// building with the tlsfdebug tag.
//
// Callers guard every assertion with the Enabled constant so release builds
// pay nothing for argument evaluation:
//
//	if debug.Enabled {
//	    debug.Assertf(size%align == 0, "size %d not aligned to %d", size, align)
//	}
package debug

import (
	"errors"
	"fmt"
)

// ErrContract is wrapped by every assertion panic.
var ErrContract = errors.New("debug: contract violation")

// Assertf panics with an error wrapping ErrContract when cond is false.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(fmt.Errorf("%w: %s", ErrContract, fmt.Sprintf(format, args...)))
}
