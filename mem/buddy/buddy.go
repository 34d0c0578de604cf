package buddy

import (
	"fmt"
	"sync"

	"github.com/joshuapare/pagekit/internal/layout"
	"github.com/joshuapare/pagekit/pkg/types"
)

// Allocator is a binary-buddy allocator over a fixed arena of pages.
//
// The zero value is not usable; construct with New. All methods are safe for
// concurrent use.
type Allocator struct {
	mu sync.Mutex

	cfg      types.Config
	pageSize uintptr
	depth    int

	base  uintptr // page-aligned arena start
	limit uintptr // exclusive upper bound for address validation in Free

	// The complete binary tree, heap-indexed; see package doc.
	nodes []node

	// Per-level free lists: heads[l] is the first free node on level l
	// (nilNode when empty), counts[l] its length.
	heads  []int32
	counts []int
}

// New builds an allocator managing cfg.Pages pages starting at base rounded
// up to a page boundary. limit is the exclusive upper bound of valid physical
// addresses; Free panics on addresses outside [alignedBase, limit). The whole
// arena must fit below limit.
func New(base, limit uintptr, cfg types.Config) (*Allocator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pageSize := uintptr(cfg.PageSize)
	aligned := (base + pageSize - 1) &^ (pageSize - 1)
	arenaEnd := aligned + uintptr(cfg.Pages)*pageSize
	if arenaEnd < aligned || arenaEnd > limit {
		return nil, fmt.Errorf("%w: base %#x limit %#x needs %d bytes",
			ErrArenaTooSmall, base, limit, cfg.ArenaBytes())
	}

	depth := cfg.Depth()
	a := &Allocator{
		cfg:      cfg,
		pageSize: pageSize,
		depth:    depth,
		base:     aligned,
		limit:    limit,
		nodes:    make([]node, layout.NodeCount(cfg.Pages)),
		heads:    make([]int32, depth),
		counts:   make([]int, depth),
	}
	for l := range a.heads {
		a.heads[l] = nilNode
	}

	// Root covers the whole arena and starts free.
	root := &a.nodes[0]
	root.lvl = uint8(depth - 1)
	root.pages = int32(cfg.Pages)
	root.addr = aligned
	root.state = StateFree
	root.prev = nilNode
	root.next = nilNode
	a.pushFree(0)

	// Every other node derives its geometry from its parent: the left child
	// inherits the parent's base, the right child starts at the upper half.
	for id := int32(1); id < int32(len(a.nodes)); id++ {
		n := &a.nodes[id]
		p := &a.nodes[layout.Parent(id)]

		n.state = StateAbsent
		n.lvl = p.lvl - 1
		n.pages = p.pages / 2
		n.addr = p.addr
		if !layout.IsLeftChild(id) {
			n.addr += uintptr(n.pages) * pageSize
		}
		n.prev = nilNode
		n.next = nilNode
	}

	return a, nil
}

// Base returns the page-aligned start of the managed arena.
func (a *Allocator) Base() uintptr {
	return a.base
}

// Config returns the configuration the allocator was built with.
func (a *Allocator) Config() types.Config {
	return a.cfg
}

// Alloc returns the base address of a naturally aligned block of n contiguous
// pages, where n must be a power of two no larger than the configured cap.
//
// Requests that violate the contract return ErrBadCount or ErrTooLarge before
// any state is touched. Exhaustion returns ErrOutOfMemory and leaves all
// state unchanged.
func (a *Allocator) Alloc(n int) (uintptr, error) {
	// Validate before taking the lock; bad requests never touch state.
	if n <= 0 || !layout.IsPowerOfTwo(n) {
		return 0, fmt.Errorf("%w: got %d", ErrBadCount, n)
	}
	if n > a.cfg.MaxBlockPages {
		return 0, fmt.Errorf("%w: got %d, cap %d", ErrTooLarge, n, a.cfg.MaxBlockPages)
	}
	lvl := layout.Log2(n)

	a.mu.Lock()
	defer a.mu.Unlock()

	// Smallest level at or above lvl with a free node.
	splitLvl := -1
	for l := lvl; l < a.depth; l++ {
		if a.counts[l] > 0 {
			splitLvl = l
			break
		}
	}
	if splitLvl == -1 {
		return 0, fmt.Errorf("%w: %d pages requested", ErrOutOfMemory, n)
	}

	// Take the head of that list and split it down to the target level,
	// always descending left and freeing the right half of every split. The
	// surviving block keeps the original base address.
	cur := a.popFree(splitLvl)
	for int(a.nodes[cur].lvl) > lvl {
		a.nodes[cur].state = StateInner

		right := layout.Right(cur)
		a.nodes[right].state = StateFree
		a.pushFree(right)

		cur = layout.Left(cur)
	}
	a.nodes[cur].state = StateUsed

	return a.nodes[cur].addr, nil
}

// Free returns the block at addr to the allocator, merging it with its buddy
// as long as the buddy is also free.
//
// addr must be the exact base address returned by a prior Alloc that has not
// been freed since. A zero, misaligned, or out-of-arena address, a mid-block
// address, and a double free are all caller bugs; Free panics on each.
func (a *Allocator) Free(addr uintptr) {
	if addr == 0 || addr%a.pageSize != 0 || addr < a.base || addr >= a.limit {
		panic(fmt.Sprintf("buddy: Free of invalid address %#x", addr))
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// Descend from the root toward the block starting at addr. Inner nodes
	// are the only split points, so the walk ends on the covering node.
	cur := int32(0)
	for a.nodes[cur].state == StateInner {
		if a.nodes[layout.Right(cur)].addr > addr {
			cur = layout.Left(cur)
		} else {
			cur = layout.Right(cur)
		}
	}

	if a.nodes[cur].state != StateUsed || a.nodes[cur].addr != addr {
		panic(fmt.Sprintf("buddy: Free of %#x: double free or not a block base", addr))
	}

	if cur == 0 {
		a.nodes[cur].state = StateFree
		a.pushFree(cur)
		return
	}

	// Coalesce upward while the buddy is free. Both halves leave the
	// decomposition and the parent takes their place.
	for cur != 0 {
		bd := layout.Buddy(cur)
		if a.nodes[bd].state != StateFree {
			break
		}
		a.nodes[cur].state = StateAbsent
		a.nodes[bd].state = StateAbsent
		a.unlinkFree(bd)
		cur = layout.Parent(cur)
	}
	a.nodes[cur].state = StateFree
	a.pushFree(cur)
}
