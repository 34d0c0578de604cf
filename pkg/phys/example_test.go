package phys_test

import (
	"fmt"

	"github.com/joshuapare/pagekit/pkg/phys"
)

func ExampleOpen() {
	p, err := phys.Open(phys.Options{Pages: 256})
	if err != nil {
		panic(err)
	}
	defer p.Close()

	blk, err := p.Alloc(4)
	if err != nil {
		panic(err)
	}
	fmt.Println(blk.Pages, len(blk.Data))

	p.Free(blk)
	fmt.Println(p.Stats().PagesUsed)
	// Output:
	// 4 16384
	// 0
}

func ExamplePool_Stats() {
	p, err := phys.Open(phys.Options{Pages: 64})
	if err != nil {
		panic(err)
	}
	defer p.Close()

	blk, _ := p.Alloc(16)
	s := p.Stats()
	fmt.Println(s.PagesUsed, s.PagesFree)

	p.Free(blk)
	// Output:
	// 16 48
}
