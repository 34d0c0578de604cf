//go:build linux || darwin

package arena

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Map returns an arena of pages*pageSize bytes of anonymous private memory.
// One extra page is mapped so the base stays aligned even when pageSize
// exceeds the OS page size. The mapping is released on Close.
func Map(pages, pageSize int) (*Arena, error) {
	if err := checkShape(pages, pageSize); err != nil {
		return nil, err
	}

	size := pages * pageSize
	data, err := unix.Mmap(-1, 0, size+pageSize,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("arena: mmap of %d bytes: %w", size+pageSize, err)
	}

	start := uintptr(unsafe.Pointer(&data[0]))
	base := (start + uintptr(pageSize) - 1) &^ (uintptr(pageSize) - 1)

	return &Arena{
		data:     data,
		slack:    int(base - start),
		base:     base,
		size:     size,
		pageSize: pageSize,
		release: func() error {
			return unix.Munmap(data)
		},
	}, nil
}
