//go:build linux || darwin || freebsd

package wordbuf

import (
	"errors"

	"golang.org/x/sys/unix"
)

// allocAligned maps anonymous memory, which is always page aligned.
func allocAligned(size int) ([]byte, func() error, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	release := func() error {
		err := unix.Munmap(data)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return data[:size:size], release, nil
}
