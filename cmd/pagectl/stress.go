package main

import (
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/joshuapare/pagekit/pkg/phys"
	"github.com/joshuapare/pagekit/pkg/types"
)

var (
	stressPages   int
	stressWorkers int
	stressOps     int
	stressSeed    int64
)

func init() {
	cmd := newStressCmd()
	cmd.Flags().IntVar(&stressPages, "pages", types.DefaultConfig().Pages, "Pool size in pages (power of two)")
	cmd.Flags().IntVar(&stressWorkers, "workers", runtime.GOMAXPROCS(0), "Concurrent workers")
	cmd.Flags().IntVar(&stressOps, "ops", 100000, "Operations per worker")
	cmd.Flags().Int64Var(&stressSeed, "seed", 1, "Base RNG seed")
	rootCmd.AddCommand(cmd)
}

func newStressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stress",
		Short: "Hammer one pool from many goroutines",
		Long: `The stress command runs concurrent random alloc/free workers against a
single pool, then checks every allocator invariant and reports throughput.

Example:
  pagectl stress
  pagectl stress --pages 1024 --workers 16 --ops 1000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStress()
		},
	}
}

func runStress() error {
	p, err := phys.Open(phys.Options{Pages: stressPages})
	if err != nil {
		return err
	}
	defer p.Close()

	printVerbose("pool: %d pages, %d workers x %d ops\n",
		p.Config().Pages, stressWorkers, stressOps)

	maxLvl := 1
	for 1<<maxLvl < p.Config().MaxBlockPages {
		maxLvl++
	}

	start := time.Now()
	var g errgroup.Group
	for w := 0; w < stressWorkers; w++ {
		seed := stressSeed + int64(w)
		g.Go(func() error {
			rng := rand.New(rand.NewSource(seed))
			var mine []phys.Block
			for i := 0; i < stressOps; i++ {
				if rng.Intn(2) == 0 || len(mine) == 0 {
					blk, err := p.Alloc(1 << rng.Intn(maxLvl+1))
					if err != nil {
						continue
					}
					mine = append(mine, blk)
				} else {
					j := rng.Intn(len(mine))
					p.Free(mine[j])
					mine[j] = mine[len(mine)-1]
					mine = mine[:len(mine)-1]
				}
			}
			for _, blk := range mine {
				p.Free(blk)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	elapsed := time.Since(start)

	if err := p.Verify(); err != nil {
		return fmt.Errorf("invariant violation after stress: %w", err)
	}

	total := stressWorkers * stressOps
	result := struct {
		Workers    int     `json:"workers"`
		Ops        int     `json:"ops"`
		Seconds    float64 `json:"seconds"`
		OpsPerSec  float64 `json:"opsPerSec"`
		PagesUsed  int     `json:"pagesUsed"`
		Consistent bool    `json:"consistent"`
	}{
		Workers:    stressWorkers,
		Ops:        total,
		Seconds:    elapsed.Seconds(),
		OpsPerSec:  float64(total) / elapsed.Seconds(),
		PagesUsed:  p.Stats().PagesUsed,
		Consistent: true,
	}
	if jsonOut {
		return printJSON(result)
	}

	printInfo("%d ops across %d workers in %s (%.0f ops/s), invariants hold\n",
		result.Ops, result.Workers, elapsed.Round(time.Millisecond), result.OpsPerSec)
	return nil
}
