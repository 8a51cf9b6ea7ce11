package game

import "github.com/gammazero/deque"

// floodFrame is one pending level of the cascade: a cell whose neighbors are
// being scanned, and the next offset to look at.
type floodFrame struct {
	cell       *Cell
	nextOffset int
}

// cascadeClear reveals outward from origin. A revealed neighbor is expanded in
// turn when it lies orthogonally to the cell that revealed it, or when it has
// no adjacent mines. Mines and already-revealed cells are never touched.
//
// origin itself is not revealed here; it is scanned like any other cell if a
// neighbor reaches back to it. The frame stack walks neighbors in the same
// depth-first order a recursive fill would, so the revealed set matches it
// cell for cell.
func (board *Board) cascadeClear(origin *Cell) int {
	var stack deque.Deque
	stack.PushBack(&floodFrame{cell: origin})

	revealed := 0
	for stack.Len() > 0 {
		frame := stack.Back().(*floodFrame)
		if frame.nextOffset == len(neighborOffsets) {
			stack.PopBack()
			continue
		}

		offset := neighborOffsets[frame.nextOffset]
		frame.nextOffset++

		neighbor := board.CellAt(frame.cell.row+offset[0], frame.cell.col+offset[1])
		if neighbor == nil || neighbor.content.isMine || neighbor.isRevealed {
			continue
		}

		neighbor.isRevealed = true
		revealed++

		isOrthogonal := offset[0] == 0 || offset[1] == 0
		if isOrthogonal || neighbor.content.numMines == 0 {
			stack.PushBack(&floodFrame{cell: neighbor})
		}
	}

	return revealed
}
