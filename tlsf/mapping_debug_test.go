//go:build tlsfdebug

package tlsf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/tlsfkit/internal/debug"
)

func requireContract(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected contract panic")
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, debug.ErrContract), "got %v", err)
	}()
	fn()
}

func TestMappingInsertPreconditions(t *testing.T) {
	requireContract(t, func() { MappingInsert(33) })
	requireContract(t, func() { Coarse.MappingInsert(0xFFFC) })
}

func TestMappingSearchPreconditions(t *testing.T) {
	requireContract(t, func() { MappingSearch(30) })
	requireContract(t, func() { MappingSearch(MaxRequestSize + AlignSize) })
}

func TestMappingPostconditions(t *testing.T) {
	p := Default
	p.SLI = 8
	requireContract(t, func() { p.MappingInsert(256) })
}

func TestMappingValidInputsDoNotPanic(t *testing.T) {
	require.NotPanics(t, func() {
		MappingInsert(MaxBlockSize)
		MappingSearch(MaxRequestSize)
	})
}
