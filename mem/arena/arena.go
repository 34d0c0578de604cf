package arena

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/pagekit/internal/layout"
)

// Arena is a contiguous, page-aligned range of addressable memory.
//
// An Arena pins its backing store for its lifetime; addresses handed out by
// an allocator built on it stay valid until Close.
type Arena struct {
	data     []byte // backing store; may start before base
	slack    int    // offset of base within data
	base     uintptr
	size     int
	pageSize int

	// release returns the backing memory to the OS; nil for heap arenas.
	release func() error
}

// NewHeap returns an arena of pages*pageSize bytes backed by the Go heap.
// One extra page is allocated so the base can be rounded up to a page
// boundary.
func NewHeap(pages, pageSize int) (*Arena, error) {
	if err := checkShape(pages, pageSize); err != nil {
		return nil, err
	}

	size := pages * pageSize
	data := make([]byte, size+pageSize)

	start := uintptr(unsafe.Pointer(&data[0]))
	base := (start + uintptr(pageSize) - 1) &^ (uintptr(pageSize) - 1)

	return &Arena{
		data:     data,
		slack:    int(base - start),
		base:     base,
		size:     size,
		pageSize: pageSize,
	}, nil
}

func checkShape(pages, pageSize int) error {
	if !layout.IsPowerOfTwo(pages) {
		return fmt.Errorf("arena: pages must be a power of two, got %d", pages)
	}
	if !layout.IsPowerOfTwo(pageSize) {
		return fmt.Errorf("arena: page size must be a power of two, got %d", pageSize)
	}
	return nil
}

// Base returns the page-aligned address of the first managed byte.
func (a *Arena) Base() uintptr {
	return a.base
}

// Limit returns the exclusive upper bound of the arena.
func (a *Arena) Limit() uintptr {
	return a.base + uintptr(a.size)
}

// Size returns the managed size in bytes.
func (a *Arena) Size() int {
	return a.size
}

// Window returns the byte slice backing the block of the given page count at
// addr. addr must be page-aligned and the block must lie inside the arena.
func (a *Arena) Window(addr uintptr, pages int) ([]byte, error) {
	if addr%uintptr(a.pageSize) != 0 {
		return nil, fmt.Errorf("arena: window address %#x not page-aligned", addr)
	}
	n := pages * a.pageSize
	if addr < a.base || addr+uintptr(n) > a.Limit() {
		return nil, fmt.Errorf("arena: window [%#x, %#x) outside arena [%#x, %#x)",
			addr, addr+uintptr(n), a.base, a.Limit())
	}
	off := a.slack + int(addr-a.base)
	return a.data[off : off+n : off+n], nil
}

// Close releases OS-mapped backing memory. For heap arenas it only drops the
// reference; the Go runtime reclaims the storage. The arena must not be used
// afterwards.
func (a *Arena) Close() error {
	data := a.data
	a.data = nil
	if a.release == nil || data == nil {
		return nil
	}
	rel := a.release
	a.release = nil
	return rel()
}
