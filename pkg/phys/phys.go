package phys

import (
	"fmt"
	"io"

	"github.com/joshuapare/pagekit/mem/arena"
	"github.com/joshuapare/pagekit/mem/buddy"
	"github.com/joshuapare/pagekit/pkg/types"
)

// Pool is an arena plus the buddy allocator managing it.
//
// A Pool is safe for concurrent use; all allocation state serializes on the
// allocator's internal lock.
type Pool struct {
	ar  *arena.Arena
	ba  *buddy.Allocator
	cfg types.Config
}

// Block is one outstanding allocation.
type Block struct {
	// Addr is the block's base address, naturally aligned to its size.
	Addr uintptr

	// Pages is the block size in pages.
	Pages int

	// Data is the arena window backing the block, len Pages*PageSize.
	// Valid until the block is freed or the pool closed.
	Data []byte
}

// Open provisions an arena and builds an allocator over it.
func Open(opts Options) (*Pool, error) {
	cfg := opts.config()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var (
		ar  *arena.Arena
		err error
	)
	if opts.UseMmap {
		ar, err = arena.Map(cfg.Pages, cfg.PageSize)
	} else {
		ar, err = arena.NewHeap(cfg.Pages, cfg.PageSize)
	}
	if err != nil {
		return nil, err
	}

	ba, err := buddy.New(ar.Base(), ar.Limit(), cfg)
	if err != nil {
		ar.Close()
		return nil, err
	}

	return &Pool{ar: ar, ba: ba, cfg: cfg}, nil
}

// Alloc allocates n contiguous pages. n must be a power of two no larger
// than the configured cap.
func (p *Pool) Alloc(n int) (Block, error) {
	addr, err := p.ba.Alloc(n)
	if err != nil {
		return Block{}, err
	}
	data, err := p.ar.Window(addr, n)
	if err != nil {
		// The allocator only hands out addresses inside the arena.
		return Block{}, fmt.Errorf("phys: allocator returned bad block: %w", err)
	}
	return Block{Addr: addr, Pages: n, Data: data}, nil
}

// Free returns a block to the pool. Panics on double frees and blocks that
// did not come from Alloc.
func (p *Pool) Free(b Block) {
	p.ba.Free(b.Addr)
}

// FreeAddr returns the block starting at addr to the pool. Same contract as
// Free.
func (p *Pool) FreeAddr(addr uintptr) {
	p.ba.Free(addr)
}

// Base returns the page-aligned arena base address.
func (p *Pool) Base() uintptr {
	return p.ba.Base()
}

// Config returns the resolved pool configuration.
func (p *Pool) Config() types.Config {
	return p.cfg
}

// Stats returns a snapshot of pool occupancy.
func (p *Pool) Stats() types.Stats {
	return p.ba.Stats()
}

// Report writes a one-line occupancy summary to w.
func (p *Pool) Report(w io.Writer) {
	p.ba.Report(w)
}

// Verify checks every allocator invariant; see buddy.Allocator.Verify.
func (p *Pool) Verify() error {
	return p.ba.Verify()
}

// Close releases the arena. Outstanding blocks become invalid.
func (p *Pool) Close() error {
	return p.ar.Close()
}
