package buddy

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/pagekit/pkg/types"
)

// Filling the arena one page at a time yields every page exactly once, the
// next allocation fails, and draining in reverse order coalesces everything
// back to a single root block.
func TestFillThenDrain(t *testing.T) {
	cfg := types.DefaultConfig() // 16384 pages
	a := newTestAllocCfg(t, cfg)
	base := a.Base()

	seen := make(map[uintptr]bool, cfg.Pages)
	addrs := make([]uintptr, 0, cfg.Pages)
	for i := 0; i < cfg.Pages; i++ {
		addr, err := a.Alloc(1)
		require.NoError(t, err, "alloc %d", i)
		require.Zero(t, addr%testPageSize, "alloc %d misaligned", i)
		require.GreaterOrEqual(t, addr, base)
		require.Less(t, addr, base+uintptr(cfg.Pages)*testPageSize)
		require.False(t, seen[addr], "alloc %d returned %#x twice", i, addr)
		seen[addr] = true
		addrs = append(addrs, addr)
	}

	_, err := a.Alloc(1)
	require.ErrorIs(t, err, ErrOutOfMemory)

	s := a.Stats()
	require.Equal(t, cfg.Pages, s.PagesUsed)
	require.Zero(t, s.PagesFree)
	mustVerify(t, a)

	for i := len(addrs) - 1; i >= 0; i-- {
		a.Free(addrs[i])
	}
	mustVerify(t, a)

	counts := freeCounts(a)
	for l := 0; l < a.depth-1; l++ {
		require.Zero(t, counts[l], "level %d", l)
	}
	require.Equal(t, 1, counts[a.depth-1])
}

// Draining in allocation order (not reverse) must restore the same end state.
func TestDrainForwardOrder(t *testing.T) {
	a := newTestAlloc(t, 256)

	addrs := make([]uintptr, 0, 256)
	for i := 0; i < 256; i++ {
		addr, err := a.Alloc(1)
		require.NoError(t, err)
		addrs = append(addrs, addr)
	}
	for _, addr := range addrs {
		a.Free(addr)
	}
	mustVerify(t, a)
	require.Equal(t, 1, freeCounts(a)[a.depth-1])
}
