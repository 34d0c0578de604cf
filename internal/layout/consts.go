// Package layout houses the page-size constants and the flat-tree index
// arithmetic shared by the allocator core and the public API. The goal is to
// keep the arithmetic pure and allocation-free so higher-level packages can
// build on it without dragging in allocator state.
package layout

const (
	// PageShift is log2(PageSize).
	PageShift = 12

	// PageSize is the size of a physical page in bytes.
	PageSize = 1 << PageShift

	// PageMask is PageSize - 1, used for alignment arithmetic.
	PageMask = PageSize - 1

	// DefaultPages is the default number of managed pages (2^14, 64MB of
	// 4KB pages). Must be a power of two.
	DefaultPages = 512 * 32

	// DefaultMaxBlockPages is the default cap on a single allocation, in
	// pages. Kernels rarely need a single contiguous block anywhere near
	// the arena half, so the cap sits well below it (2MB of 4KB pages).
	DefaultMaxBlockPages = 512
)
