package main

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"

	"github.com/joshuapare/pagekit/pkg/phys"
)

// Model holds the TUI state: the live pool, outstanding blocks, and the
// current selection.
type Model struct {
	pool   *phys.Pool
	pages  int
	blocks []phys.Block // outstanding allocations, oldest first
	sel    int          // index into blocks
	size   int          // next allocation size in pages, power of two

	keys   KeyMap
	vp     viewport.Model
	width  int
	height int
	ready  bool

	status string // last action or error, shown in the status bar
}

// NewModel opens a pool of the given page count.
func NewModel(pages int) (*Model, error) {
	pool, err := phys.Open(phys.Options{Pages: pages})
	if err != nil {
		return nil, err
	}
	return &Model{
		pool:   pool,
		pages:  pages,
		size:   1,
		keys:   DefaultKeyMap(),
		status: fmt.Sprintf("pool of %d pages ready", pages),
	}, nil
}

// selected returns the currently selected block, or nil.
func (m *Model) selected() *phys.Block {
	if m.sel < 0 || m.sel >= len(m.blocks) {
		return nil
	}
	return &m.blocks[m.sel]
}

// clampSel keeps the selection inside the block list.
func (m *Model) clampSel() {
	if m.sel >= len(m.blocks) {
		m.sel = len(m.blocks) - 1
	}
	if m.sel < 0 {
		m.sel = 0
	}
}
