package tlsf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFls(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint8
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{64, 6},
		{255, 7},
		{256, 8},
		{0x8000, 15},
		{0xFFFF, 15},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Fls(tt.in), "Fls(%#x)", tt.in)
	}
}

func TestFlsMatchesShiftLoop(t *testing.T) {
	for x := uint32(1); x <= 0xFFFF; x++ {
		var want uint8
		for v := x; v > 1; v >>= 1 {
			want++
		}
		if got := Fls(uint16(x)); got != want {
			t.Fatalf("Fls(%#x) = %d, want %d", x, got, want)
		}
	}
}

func TestFfs(t *testing.T) {
	tests := []struct {
		in   uint16
		want uint8
	}{
		{1, 0},
		{2, 1},
		{12, 2},
		{0x8000, 15},
		{0xFFFF, 0},
		{0, 16},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Ffs(tt.in), "Ffs(%#x)", tt.in)
	}
}
