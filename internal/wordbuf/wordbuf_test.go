package wordbuf

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tlsfkit/mem"
)

func TestNewSizes(t *testing.T) {
	tests := []struct {
		n         int
		wantSlack int
	}{
		{n: 0, wantSlack: 0},
		{n: 1, wantSlack: 4},
		{n: 4, wantSlack: 4},
		{n: 10, wantSlack: 12},
		{n: 4096, wantSlack: 4096},
		{n: 4097, wantSlack: 4100},
	}

	for _, tt := range tests {
		b, err := New(tt.n)
		require.NoError(t, err)

		require.Equal(t, tt.n, b.Len())
		require.Len(t, b.Bytes(), tt.n)
		require.Len(t, b.Slack(), tt.wantSlack)

		if tt.n > 0 {
			addr := uintptr(unsafe.Pointer(unsafe.SliceData(b.Slack())))
			require.True(t, mem.IsAligned(addr, mem.WordSize), "n=%d base %#x misaligned", tt.n, addr)
		}
		for i, v := range b.Slack() {
			require.Zero(t, v, "n=%d byte %d not zeroed", tt.n, i)
		}

		require.NoError(t, b.Close())
	}
}

func TestNewNegative(t *testing.T) {
	_, err := New(-1)
	require.True(t, errors.Is(err, ErrNegativeSize))
}

func TestBytesCapacityIsClamped(t *testing.T) {
	b, err := New(6)
	require.NoError(t, err)
	defer b.Close()

	require.Equal(t, 6, cap(b.Bytes()))
	require.Len(t, b.Slack(), 8)
}

func TestCloseIdempotent(t *testing.T) {
	b, err := New(64)
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
	require.Zero(t, b.Len())
}

func TestAlignWindow(t *testing.T) {
	const size = 10
	backing := make([]byte, 64)

	// Every starting offset of the raw slice, aligned or not, must yield an
	// aligned window of exactly size bytes inside raw.
	for off := 0; off < mem.WordSize; off++ {
		raw := backing[off : off+size+mem.WordSize-1]
		w := alignWindow(raw, size)
		require.NotNil(t, w, "off=%d", off)
		require.Len(t, w, size)
		require.Equal(t, size, cap(w))

		addr := uintptr(unsafe.Pointer(unsafe.SliceData(w)))
		require.True(t, mem.IsAligned(addr, mem.WordSize), "off=%d base %#x misaligned", off, addr)

		start := addr - uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
		require.Less(t, start, uintptr(mem.WordSize), "off=%d", off)
	}
}

func TestAlignWindowTooShort(t *testing.T) {
	backing := make([]byte, 16)
	base := uintptr(unsafe.Pointer(unsafe.SliceData(backing)))
	// Start one byte past a word boundary so the window must shift by 3.
	shift, _ := mem.RoundUp(base, mem.WordSize)
	off := int(shift-base) + 1

	raw := backing[off : off+8]
	require.Nil(t, alignWindow(raw, 8))
	require.NotNil(t, alignWindow(raw, 5))
	require.Nil(t, alignWindow(nil, 4))
	require.Nil(t, alignWindow(raw, -1))
}
