// Package wordbuf hands out word-aligned scratch buffers that carry the tail
// slack required by mem.CopyNonoverlapping.
package wordbuf

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/joshuapare/tlsfkit/internal/logger"
	"github.com/joshuapare/tlsfkit/mem"
)

// ErrNegativeSize is returned by New for n < 0.
var ErrNegativeSize = errors.New("wordbuf: negative size")

// Buffer is a single-owner region of n usable bytes backed by at least
// RoundUp(n, mem.WordSize) bytes starting on a word boundary.
type Buffer struct {
	full    []byte
	n       int
	release func() error
}

// New returns a zeroed buffer of n usable bytes.
func New(n int) (*Buffer, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeSize, n)
	}
	if n == 0 {
		return &Buffer{full: []byte{}, release: func() error { return nil }}, nil
	}

	size, _ := mem.RoundUp(n, mem.WordSize)
	full, release, err := allocAligned(size)
	if err != nil {
		return nil, fmt.Errorf("wordbuf: allocate %d bytes: %w", size, err)
	}
	logger.Debug("wordbuf: allocated", "usable", n, "backing", len(full))

	return &Buffer{full: full, n: n, release: release}, nil
}

// Bytes returns the usable region. Its length is the size passed to New.
func (b *Buffer) Bytes() []byte {
	return b.full[:b.n:b.n]
}

// Slack returns the whole word-rounded region, including the tail bytes a word
// copy of Len() bytes may touch.
func (b *Buffer) Slack() []byte {
	return b.full
}

// Len returns the usable size.
func (b *Buffer) Len() int {
	return b.n
}

// Close releases the backing memory. Calling Close more than once is a no-op.
// The buffer must not be used afterwards.
func (b *Buffer) Close() error {
	if b.release == nil {
		return nil
	}
	err := b.release()
	b.release = nil
	b.full = nil
	b.n = 0
	return err
}

// alignWindow returns the first word-aligned window of size bytes inside raw,
// or nil when raw is too short to hold one. A raw slice of size+WordSize-1
// bytes always fits.
func alignWindow(raw []byte, size int) []byte {
	if size < 0 || len(raw) == 0 {
		return nil
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	aligned, _ := mem.RoundUp(addr, mem.WordSize)
	shift := int(aligned - addr)
	if shift+size > len(raw) {
		return nil
	}
	return raw[shift : shift+size : shift+size]
}
