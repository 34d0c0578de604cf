// Package buddy implements a binary-buddy allocator for whole physical pages.
//
// # Overview
//
// The allocator manages a contiguous, power-of-two-sized arena of pages with
// a complete binary tree: the root covers the whole arena, each node's two
// children cover its halves, and the leaves cover single pages. Allocation
// requests for n pages (n a power of two) are satisfied by splitting a free
// block down to the requested level; freeing merges a block with its buddy
// whenever the buddy is also free, so fragmentation never outlives the
// allocations that caused it.
//
// # Structure
//
// The tree lives in one flat array of 2*Pages - 1 nodes, heap-indexed: the
// root at index 0, children of i at 2i+1 and 2i+2. Node identity is
// positional, so parent, child, and buddy relations are index arithmetic and
// no node is ever allocated or moved after New.
//
// Each level keeps a doubly linked list of its free nodes plus a counter.
// Allocation scans the counters upward from the requested level, takes the
// head of the first non-empty list, and splits it down, pushing each split's
// right half onto the level below. Both alloc and free touch O(depth) nodes.
//
// # Usage
//
//	a, err := buddy.New(base, limit, types.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//
//	addr, err := a.Alloc(4) // 4 contiguous pages
//	if err != nil {
//	    return err
//	}
//
//	// ... use the block ...
//
//	a.Free(addr)
//
// # Errors
//
// Alloc fails softly: a request that is not a positive power of two, or that
// exceeds the configured single-block cap, returns ErrBadCount or ErrTooLarge
// without taking the lock; exhaustion returns ErrOutOfMemory with all state
// unchanged.
//
// Free treats every contract violation as fatal and panics: a zero,
// misaligned, or out-of-arena address, an address that is not the base of an
// outstanding allocation, and double frees all indicate caller bugs that
// cannot be recovered locally.
//
// # Thread safety
//
// All public operations serialize on a single internal mutex. Critical
// sections are bounded by O(depth) pointer operations and never block on
// anything else.
//
// # Related packages
//
//   - github.com/joshuapare/pagekit/mem/arena: arena provisioning (heap or mmap)
//   - github.com/joshuapare/pagekit/pkg/phys: pool facade tying arena and allocator together
//   - github.com/joshuapare/pagekit/pkg/types: configuration and statistics types
package buddy
