package tlsf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexCompare(t *testing.T) {
	a := Index{FL: 1, SL: 15}
	b := Index{FL: 2, SL: 0}
	c := Index{FL: 2, SL: 3}

	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, c.Compare(b))
	require.Zero(t, b.Compare(Index{FL: 2}))

	require.True(t, a.Less(b))
	require.True(t, b.Less(c))
	require.False(t, c.Less(c))
}

func TestIndexFlat(t *testing.T) {
	require.Equal(t, 0, Index{}.Flat(SLI))
	require.Equal(t, 35, Index{FL: 2, SL: 3}.Flat(SLI))
	require.Equal(t, Default.NumLists()-1, Index{FL: FLI - 1, SL: SLI - 1}.Flat(SLI))
}

func TestIndexString(t *testing.T) {
	require.Equal(t, "fl=3 sl=0", Index{FL: 3}.String())
}
