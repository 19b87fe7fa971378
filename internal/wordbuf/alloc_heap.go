//go:build !linux && !darwin && !freebsd

package wordbuf

import "github.com/joshuapare/tlsfkit/mem"

// allocAligned over-allocates a Go slice and returns the word-aligned window.
func allocAligned(size int) ([]byte, func() error, error) {
	raw := make([]byte, size+mem.WordSize-1)
	return alignWindow(raw, size), func() error { return nil }, nil
}
