package debug

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssertfPassing(t *testing.T) {
	require.NotPanics(t, func() { Assertf(true, "never %d", 1) })
}

func TestAssertfFailing(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		require.True(t, errors.Is(err, ErrContract))
		require.Contains(t, err.Error(), "size 6 not aligned to 4")
	}()
	Assertf(false, "size %d not aligned to %d", 6, 4)
}
