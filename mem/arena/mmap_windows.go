//go:build windows

package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Map returns an arena of pages*pageSize bytes of committed private memory
// via VirtualAlloc. VirtualAlloc rounds to the allocation granularity (64KB),
// which covers every supported page size, so no alignment slack is needed.
// The region is released on Close.
func Map(pages, pageSize int) (*Arena, error) {
	if err := checkShape(pages, pageSize); err != nil {
		return nil, err
	}

	size := pages * pageSize
	addr, err := windows.VirtualAlloc(0, uintptr(size),
		windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("arena: VirtualAlloc of %d bytes: %w", size, err)
	}

	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)

	return &Arena{
		data:     data,
		slack:    0,
		base:     addr,
		size:     size,
		pageSize: pageSize,
		release: func() error {
			return windows.VirtualFree(addr, 0, windows.MEM_RELEASE)
		},
	}, nil
}
