package buddy

import (
	"testing"

	"github.com/joshuapare/pagekit/pkg/types"
)

const (
	testBase     = uintptr(0x1000_0000)
	testPageSize = 4096
)

// newTestAlloc builds an allocator over a synthetic address range. The core
// never dereferences block addresses, so no backing memory is needed.
func newTestAlloc(t *testing.T, pages int) *Allocator {
	t.Helper()
	cfg := types.Config{
		Pages:         pages,
		PageSize:      testPageSize,
		MaxBlockPages: pages / 2,
	}
	return newTestAllocCfg(t, cfg)
}

func newTestAllocCfg(t *testing.T, cfg types.Config) *Allocator {
	t.Helper()
	limit := testBase + uintptr(cfg.Pages)*uintptr(cfg.PageSize)
	a, err := New(testBase, limit, cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return a
}

// freeCounts returns the per-level free-list lengths.
func freeCounts(a *Allocator) []int {
	s := a.Stats()
	out := make([]int, len(s.Levels))
	for i, l := range s.Levels {
		out[i] = l.Blocks
	}
	return out
}

// mustVerify fails the test if any allocator invariant is broken.
func mustVerify(t *testing.T, a *Allocator) {
	t.Helper()
	if err := a.Verify(); err != nil {
		t.Fatalf("invariant violation: %v", err)
	}
}
