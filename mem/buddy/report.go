package buddy

import (
	"fmt"
	"io"

	"github.com/joshuapare/pagekit/internal/human"
	"github.com/joshuapare/pagekit/pkg/types"
)

// reportLevels caps the per-level columns in Report. Levels at and above the
// cap rarely hold more than a node or two, so they are folded into the last
// column, counted in units of the cap-1 level's block size.
const reportLevels = 10

// Stats returns a consistent snapshot of allocator occupancy, one LevelStat
// per tree level.
func (a *Allocator) Stats() types.Stats {
	a.mu.Lock()
	defer a.mu.Unlock()

	s := types.Stats{
		Levels: make([]types.LevelStat, a.depth),
	}
	for l := 0; l < a.depth; l++ {
		pages := a.counts[l] << l
		s.Levels[l] = types.LevelStat{Level: l, Blocks: a.counts[l], Pages: pages}
		s.PagesFree += pages
	}
	s.PagesUsed = a.cfg.Pages - s.PagesFree
	return s
}

// Report writes a one-line occupancy summary to w: pages used, pages free,
// and the free-block count per level with the top levels aggregated.
func (a *Allocator) Report(w io.Writer) {
	s := a.Stats()

	top := reportLevels
	if top > a.depth {
		top = a.depth
	}
	buckets := make([]int, top)
	for _, ls := range s.Levels {
		if ls.Level < top {
			buckets[ls.Level] += ls.Blocks
		} else {
			// Fold into the last bucket in units of its block size.
			buckets[top-1] += ls.Blocks << (ls.Level - (top - 1))
		}
	}

	fmt.Fprintf(w, "used = %s, free = %s, sizes: ", human.Count(s.PagesUsed), human.Count(s.PagesFree))
	for i, b := range buckets {
		if i == len(buckets)-1 {
			fmt.Fprintf(w, "%d\n", b)
		} else {
			fmt.Fprintf(w, "%d, ", b)
		}
	}
}
