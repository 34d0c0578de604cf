// Package types holds the public configuration and statistics types shared
// between the allocator core, the pool facade, and the command-line tools.
package types

import (
	"fmt"

	"github.com/joshuapare/pagekit/internal/layout"
)

// Config describes the shape of a managed arena.
type Config struct {
	// Pages is the total number of pages managed. Must be a power of two.
	Pages int

	// PageSize is the page size in bytes. Must be a power of two.
	PageSize int

	// MaxBlockPages caps a single allocation, in pages. Must be a power of
	// two no larger than Pages/2. The buddy tree itself could satisfy a
	// request for the full arena half; the cap exists so a runaway caller
	// cannot take half of physical memory in one block.
	MaxBlockPages int
}

// DefaultConfig returns the standard configuration: 16384 pages of 4KB with
// single allocations capped at 512 pages.
func DefaultConfig() Config {
	return Config{
		Pages:         layout.DefaultPages,
		PageSize:      layout.PageSize,
		MaxBlockPages: layout.DefaultMaxBlockPages,
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if !layout.IsPowerOfTwo(c.Pages) {
		return fmt.Errorf("types: Pages must be a power of two, got %d", c.Pages)
	}
	if !layout.IsPowerOfTwo(c.PageSize) {
		return fmt.Errorf("types: PageSize must be a power of two, got %d", c.PageSize)
	}
	if !layout.IsPowerOfTwo(c.MaxBlockPages) {
		return fmt.Errorf("types: MaxBlockPages must be a power of two, got %d", c.MaxBlockPages)
	}
	if c.Pages < 2 {
		return fmt.Errorf("types: Pages must be >= 2, got %d", c.Pages)
	}
	if c.MaxBlockPages > c.Pages/2 {
		return fmt.Errorf("types: MaxBlockPages (%d) must be <= Pages/2 (%d)",
			c.MaxBlockPages, c.Pages/2)
	}
	return nil
}

// Depth returns the number of buddy-tree levels for this configuration.
func (c Config) Depth() int {
	return layout.Depth(c.Pages)
}

// ArenaBytes returns the managed arena size in bytes.
func (c Config) ArenaBytes() int {
	return c.Pages * c.PageSize
}

// LevelStat describes one free-list level in a Stats snapshot.
type LevelStat struct {
	// Level is the tree level; 0 holds single-page blocks.
	Level int `json:"level"`

	// Blocks is the number of free blocks on this level's list.
	Blocks int `json:"blocks"`

	// Pages is Blocks << Level, the pages those blocks cover.
	Pages int `json:"pages"`
}

// Stats is a point-in-time snapshot of allocator occupancy.
type Stats struct {
	// PagesUsed is the number of pages inside outstanding allocations.
	PagesUsed int `json:"pagesUsed"`

	// PagesFree is the number of pages on free lists. PagesUsed + PagesFree
	// always equals the configured page count.
	PagesFree int `json:"pagesFree"`

	// Levels holds one entry per tree level, level 0 first.
	Levels []LevelStat `json:"levels"`
}

// TotalPages returns PagesUsed + PagesFree.
func (s Stats) TotalPages() int {
	return s.PagesUsed + s.PagesFree
}
