package phys

import (
	"github.com/joshuapare/pagekit/pkg/types"
)

// Options controls pool construction. The zero value gives the default
// configuration.
type Options struct {
	// Pages is the number of managed pages. Must be a power of two.
	// Zero means the default (16384).
	Pages int

	// PageSize is the page size in bytes. Must be a power of two.
	// Zero means 4096.
	PageSize int

	// MaxBlockPages caps a single allocation, in pages. Must be a power of
	// two no larger than Pages/2. Zero means the default cap (512), clamped
	// to Pages/2 for small pools.
	MaxBlockPages int

	// UseMmap backs the arena with anonymous OS pages instead of the Go
	// heap. Large arenas stay out of the garbage collector's working set
	// and are returned to the OS on Close.
	UseMmap bool
}

// config resolves zero fields to defaults.
func (o Options) config() types.Config {
	cfg := types.DefaultConfig()
	if o.Pages != 0 {
		cfg.Pages = o.Pages
	}
	if o.PageSize != 0 {
		cfg.PageSize = o.PageSize
	}
	if o.MaxBlockPages != 0 {
		cfg.MaxBlockPages = o.MaxBlockPages
	} else if cfg.MaxBlockPages > cfg.Pages/2 {
		cfg.MaxBlockPages = cfg.Pages / 2
	}
	return cfg
}
