package dlx

import "github.com/jlessner/dlxsudoku/internal/puzzleerr"

// cover removes column c from the header ring and, for every row that
// has a node in c, removes that row's other nodes from their columns.
// It never touches c's own column of nodes, only the rows passing
// through it — that data survives untouched so uncover can restore it.
func cover(a *Arena, c nodeID) {
	n := &a.nodes[c]
	a.nodes[n.right].left = n.left
	a.nodes[n.left].right = n.right

	for i := a.nodes[c].down; i != c; i = a.nodes[i].down {
		for j := a.nodes[i].right; j != i; j = a.nodes[j].right {
			nj := a.nodes[j]
			a.nodes[nj.down].up = nj.up
			a.nodes[nj.up].down = nj.down
			a.nodes[nj.column].size--
		}
	}
}

// uncover reverses cover(a, c) exactly, provided calls are nested LIFO.
// It walks rows bottom-to-top and, within a row, right-to-left — the
// mirror image of cover's top-to-bottom, left-to-right walk — so each
// splice restores exactly the link cover tore out.
func uncover(a *Arena, c nodeID) {
	for i := a.nodes[c].up; i != c; i = a.nodes[i].up {
		for j := a.nodes[i].left; j != i; j = a.nodes[j].left {
			nj := a.nodes[j]
			a.nodes[nj.column].size++
			a.nodes[nj.down].up = j
			a.nodes[nj.up].down = j
		}
	}
	n := &a.nodes[c]
	a.nodes[n.right].left = c
	a.nodes[n.left].right = c
}

// CoverRow forces matrix row q into the solution ahead of search,
// covering each of its columns in turn. It returns ErrInconsistentGiven
// if any of q's columns was already covered, which happens when two
// given cells conflict (directly, or through a shared row/column/block
// constraint).
func (a *Arena) CoverRow(q int) error {
	first := a.rowFirst[q]
	if first == nilNode {
		puzzleerr.Invariant("CoverRow: matrix row %d has no nodes", q)
	}
	for j := first; ; {
		col := a.nodes[j].column
		idx := a.colIndex(col)
		if !a.columnActive[idx] {
			a.uncoverRowPrefix(q, j)
			return puzzleerr.ErrInconsistentGiven
		}
		a.columnActive[idx] = false
		cover(a, col)

		j = a.nodes[j].right
		if j == first {
			break
		}
	}
	return nil
}

// uncoverRowPrefix reverses the columns of row q already covered by a
// partial, failed CoverRow, stopping before stop (which was never
// covered). It walks in the opposite direction from the forward cover
// loop, mirroring the order CoverRow used.
func (a *Arena) uncoverRowPrefix(q int, stop nodeID) {
	first := a.rowFirst[q]
	nodes := []nodeID{}
	for j := first; ; {
		if j == stop {
			break
		}
		nodes = append(nodes, j)
		j = a.nodes[j].right
		if j == first {
			break
		}
	}
	for i := len(nodes) - 1; i >= 0; i-- {
		col := a.nodes[nodes[i]].column
		uncover(a, col)
		a.columnActive[a.colIndex(col)] = true
	}
}

// UncoverRow reverses a prior successful CoverRow(q).
func (a *Arena) UncoverRow(q int) {
	first := a.rowFirst[q]
	last := a.nodes[first].left
	for j := last; ; {
		col := a.nodes[j].column
		uncover(a, col)
		a.columnActive[a.colIndex(col)] = true

		if j == first {
			break
		}
		j = a.nodes[j].left
	}
}
