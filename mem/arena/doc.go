// Package arena provisions the contiguous page range a buddy allocator
// manages.
//
// Two backings are available: NewHeap carves the arena out of a regular Go
// allocation, which is the right choice for tests and embedded use, and Map
// asks the OS for anonymous pages directly (mmap on Unix, VirtualAlloc on
// Windows), which keeps large arenas off the Go heap and releases them to
// the OS on Close.
//
// Either way the arena exposes a page-aligned base address, an exclusive
// limit, and byte-slice windows over sub-ranges, which is exactly the
// environment the allocator core expects.
package arena
