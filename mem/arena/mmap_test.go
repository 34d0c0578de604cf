//go:build linux || darwin

package arena

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapShape(t *testing.T) {
	a, err := Map(64, 4096)
	require.NoError(t, err)

	require.Zero(t, a.Base()%4096)
	require.Equal(t, 64*4096, a.Size())

	// Mapped memory is writable end to end.
	w, err := a.Window(a.Base(), 64)
	require.NoError(t, err)
	w[0] = 1
	w[len(w)-1] = 2

	require.NoError(t, a.Close())
}

func TestMapClose(t *testing.T) {
	a, err := Map(16, 4096)
	require.NoError(t, err)
	require.NoError(t, a.Close())
	require.NoError(t, a.Close(), "second close is a no-op")
}

func TestMapLargePageSize(t *testing.T) {
	// Page size above the OS page size still yields an aligned base.
	a, err := Map(16, 16384)
	require.NoError(t, err)
	defer a.Close()
	require.Zero(t, a.Base()%16384)
}
