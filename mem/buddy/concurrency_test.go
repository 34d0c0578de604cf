package buddy

import (
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// Concurrent callers must always receive disjoint blocks, and the tree must
// be consistent once the dust settles.
func TestConcurrentAllocFree(t *testing.T) {
	a := newTestAlloc(t, 1024)

	const (
		workers = 8
		rounds  = 500
	)

	var (
		mu       sync.Mutex
		occupied = make(map[uintptr]int) // base -> pages
	)

	claim := func(t *testing.T, addr uintptr, pages int) {
		mu.Lock()
		defer mu.Unlock()
		lo := addr
		hi := addr + uintptr(pages)*testPageSize
		for base, n := range occupied {
			olo := base
			ohi := base + uintptr(n)*testPageSize
			if lo < ohi && olo < hi {
				t.Errorf("overlap: [%#x,%#x) and [%#x,%#x)", lo, hi, olo, ohi)
			}
		}
		occupied[addr] = pages
	}
	release := func(addr uintptr) {
		mu.Lock()
		defer mu.Unlock()
		delete(occupied, addr)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			var mine []struct {
				addr  uintptr
				pages int
			}
			for i := 0; i < rounds; i++ {
				if rng.Intn(2) == 0 || len(mine) == 0 {
					n := 1 << rng.Intn(5)
					addr, err := a.Alloc(n)
					if err != nil {
						continue // pressure; fine
					}
					claim(t, addr, n)
					mine = append(mine, struct {
						addr  uintptr
						pages int
					}{addr, n})
				} else {
					j := rng.Intn(len(mine))
					release(mine[j].addr)
					a.Free(mine[j].addr)
					mine[j] = mine[len(mine)-1]
					mine = mine[:len(mine)-1]
				}
			}
			for _, b := range mine {
				release(b.addr)
				a.Free(b.addr)
			}
		}(int64(w) + 1)
	}
	wg.Wait()

	mustVerify(t, a)
	require.Zero(t, a.Stats().PagesUsed)
	require.Equal(t, 1, freeCounts(a)[a.depth-1])
}
