// Package phys is the public entry point of pagekit: it ties an arena and a
// buddy allocator together into a Pool of physical pages.
//
// # Usage
//
// Opening a pool with default settings (16384 pages of 4KB, heap-backed):
//
//	p, err := phys.Open(phys.Options{})
//	if err != nil {
//	    return err
//	}
//	defer p.Close()
//
// Allocating and freeing:
//
//	blk, err := p.Alloc(4) // 4 contiguous pages
//	if err != nil {
//	    return err
//	}
//	copy(blk.Data, payload)
//	p.Free(blk)
//
// Block addresses are naturally aligned: a block of n pages starts at a
// multiple of n page sizes from the arena base. Block.Data is a view over
// the arena, valid until the block is freed.
//
// # Failure modes
//
// Alloc returns buddy.ErrBadCount, buddy.ErrTooLarge, or buddy.ErrOutOfMemory
// as soft failures. Free panics on contract violations (double frees and
// addresses that were never a block base); those are caller bugs the pool
// cannot recover from.
package phys
