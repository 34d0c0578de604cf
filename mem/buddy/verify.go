package buddy

import (
	"fmt"

	"github.com/joshuapare/pagekit/internal/layout"
)

// Verify walks the whole tree and the free lists, checking every structural
// invariant the allocator promises between operations:
//
//   - every page is covered by exactly one used or free node, with all
//     ancestors inner (coverage)
//   - each level's list holds exactly the free nodes of that level, counts
//     match, and the links are a well-formed doubly linked list
//   - no two sibling nodes are simultaneously free (coalescing is eager)
//   - every inner node has at least one used descendant
//   - child addresses follow the left-inherits / right-offsets rule
//
// Verify is meant for tests and diagnostics; it takes the lock for the full
// walk, which is O(nodes), not O(depth).
func (a *Allocator) Verify() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Pass 1: free lists. Record membership so the tree walk can cross-check.
	onList := make(map[int32]bool)
	for l := 0; l < a.depth; l++ {
		seen := 0
		prev := nilNode
		for id := a.heads[l]; id != nilNode; id = a.nodes[id].next {
			n := &a.nodes[id]
			if n.state != StateFree {
				return fmt.Errorf("level %d list holds node %d in state %s", l, id, n.state)
			}
			if int(n.lvl) != l {
				return fmt.Errorf("level %d list holds node %d of level %d", l, id, n.lvl)
			}
			if n.prev != prev {
				return fmt.Errorf("node %d has prev %d, want %d", id, n.prev, prev)
			}
			if onList[id] {
				return fmt.Errorf("node %d linked twice", id)
			}
			onList[id] = true
			prev = id
			seen++
			if seen > a.counts[l]+1 {
				return fmt.Errorf("level %d list longer than its count %d", l, a.counts[l])
			}
		}
		if seen != a.counts[l] {
			return fmt.Errorf("level %d count is %d, list has %d", l, a.counts[l], seen)
		}
	}

	// Pass 2: decomposition walk from the root.
	if a.nodes[0].state == StateAbsent {
		return fmt.Errorf("root is absent")
	}
	covered, _, freeSeen, err := a.verifyNode(0, onList)
	if err != nil {
		return err
	}
	if covered != a.cfg.Pages {
		return fmt.Errorf("decomposition covers %d pages, want %d", covered, a.cfg.Pages)
	}
	if freeSeen != len(onList) {
		return fmt.Errorf("%d free nodes on lists, %d reachable from the root", len(onList), freeSeen)
	}

	return nil
}

// verifyNode checks the subtree at id and returns the pages covered by used
// or free nodes in it, whether it contains a used node, and how many free
// nodes it holds.
func (a *Allocator) verifyNode(id int32, onList map[int32]bool) (covered int, hasUsed bool, freeSeen int, err error) {
	n := &a.nodes[id]

	if id != 0 {
		p := &a.nodes[layout.Parent(id)]
		want := p.addr
		if !layout.IsLeftChild(id) {
			want += uintptr(n.pages) * a.pageSize
		}
		if n.addr != want {
			return 0, false, 0, fmt.Errorf("node %d addr %#x, want %#x", id, n.addr, want)
		}
	}

	switch n.state {
	case StateUsed:
		return int(n.pages), true, 0, nil

	case StateFree:
		if !onList[id] {
			return 0, false, 0, fmt.Errorf("free node %d missing from its level list", id)
		}
		return int(n.pages), false, 1, nil

	case StateInner:
		if n.lvl == 0 {
			return 0, false, 0, fmt.Errorf("leaf node %d marked inner", id)
		}
		if onList[id] {
			return 0, false, 0, fmt.Errorf("inner node %d linked on a free list", id)
		}
		l, r := layout.Left(id), layout.Right(id)
		if a.nodes[l].state == StateFree && a.nodes[r].state == StateFree {
			return 0, false, 0, fmt.Errorf("siblings %d and %d both free under %d", l, r, id)
		}
		if a.nodes[l].state == StateAbsent || a.nodes[r].state == StateAbsent {
			return 0, false, 0, fmt.Errorf("inner node %d has an absent child", id)
		}

		lc, lu, lf, lerr := a.verifyNode(l, onList)
		if lerr != nil {
			return 0, false, 0, lerr
		}
		rc, ru, rf, rerr := a.verifyNode(r, onList)
		if rerr != nil {
			return 0, false, 0, rerr
		}
		if !lu && !ru {
			return 0, false, 0, fmt.Errorf("inner node %d has no used descendant", id)
		}
		return lc + rc, true, lf + rf, nil

	default: // StateAbsent below an inner node is caught above; here it is the root.
		return 0, false, 0, fmt.Errorf("node %d unexpectedly absent", id)
	}
}
