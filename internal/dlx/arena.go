// Package dlx implements the doubly-linked toroidal exact-cover
// structure ("dancing links") and Knuth's Algorithm X search over it.
//
// The torus has unavoidable cycles, so nodes live in a single arena and
// are addressed by index rather than by pointer: an index survives
// reallocation of the backing slice, which keeps restoration after
// backtracking simple and makes cover/uncover free functions over
// (arena, index) rather than methods on a self-referential node type.
package dlx

import "iter"

type nodeID int32

const nilNode nodeID = -1

// node is the single representation for the root sentinel, column
// headers, and data nodes. Column headers additionally use size; data
// nodes additionally use row. Row membership outside of column headers
// is tracked separately by Arena.rowFirst, since a matrix row's four
// data nodes form their own small ring with no header of their own —
// only a column is traversed with "exclusive of the header" semantics
// during search.
type node struct {
	up, down, left, right nodeID
	column                nodeID // owning column header, for data nodes
	row                   int    // originating matrix row, for data nodes
	size                  int    // remaining node count, for column headers
}

// Arena is the arena-indexed link structure built from a sparse
// exact-cover matrix: a root, numCols column headers, and one data
// node per (matrixRow, matrixCol) pair fed to Build.
type Arena struct {
	nodes        []node
	root         nodeID
	numCols      int
	numRows      int
	rowFirst     []nodeID // first data node of each matrix row, or nilNode
	columnActive []bool
}

// Build constructs the arena for a numRows×numCols sparse 0/1 matrix
// from its nonzero entries, given as (matrixRow, matrixCol) pairs. Column
// headers are threaded into the root's ring in ascending column order,
// so the search's tie-break ("lowest arena index") matches ascending
// canonical column numbering for the lifetime of the arena.
func Build(numCols, numRows int, pairs iter.Seq2[int, int]) *Arena {
	a := &Arena{numCols: numCols, numRows: numRows}
	a.nodes = make([]node, 0, 1+numCols+numRows)

	a.root = a.alloc()
	a.nodes[a.root] = node{up: a.root, down: a.root, left: a.root, right: a.root, column: a.root}

	colHeaders := make([]nodeID, numCols)
	for i := 0; i < numCols; i++ {
		id := a.alloc()
		a.nodes[id] = node{up: id, down: id, column: id}
		a.appendColumnHeader(id)
		colHeaders[i] = id
	}

	a.columnActive = make([]bool, numCols)
	for i := range a.columnActive {
		a.columnActive[i] = true
	}

	a.rowFirst = make([]nodeID, numRows)
	for i := range a.rowFirst {
		a.rowFirst[i] = nilNode
	}
	rowLast := make([]nodeID, numRows)

	for matRow, matCol := range pairs {
		id := a.alloc()
		colHeader := colHeaders[matCol]
		a.nodes[id] = node{column: colHeader, row: matRow}
		a.appendToColumn(colHeader, id)

		if a.rowFirst[matRow] == nilNode {
			a.rowFirst[matRow] = id
			a.nodes[id].left = id
			a.nodes[id].right = id
		} else {
			first := a.rowFirst[matRow]
			last := rowLast[matRow]
			a.nodes[id].left = last
			a.nodes[id].right = first
			a.nodes[last].right = id
			a.nodes[first].left = id
		}
		rowLast[matRow] = id
	}

	return a
}

func (a *Arena) alloc() nodeID {
	a.nodes = append(a.nodes, node{})
	return nodeID(len(a.nodes) - 1)
}

// appendColumnHeader splices a freshly allocated column header id onto
// the root's ring, just to the left of root (i.e. at the ring's end),
// preserving ascending insertion order.
func (a *Arena) appendColumnHeader(id nodeID) {
	last := a.nodes[a.root].left
	a.nodes[id].left = last
	a.nodes[id].right = a.root
	a.nodes[last].right = id
	a.nodes[a.root].left = id
}

// appendToColumn splices a freshly allocated data node onto column's
// ring, just above the header (i.e. at the bottom of the column).
func (a *Arena) appendToColumn(column, id nodeID) {
	last := a.nodes[column].up
	a.nodes[id].up = last
	a.nodes[id].down = column
	a.nodes[last].down = id
	a.nodes[column].up = id
	a.nodes[column].size++
}

func (a *Arena) colIndex(header nodeID) int {
	return int(header) - 1
}
