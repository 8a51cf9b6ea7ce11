package game

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrInvalidDimensions = errors.New("board dimensions must be positive and at most MaxCells in area")

// MaxCells bounds the area of a board
const MaxCells = 1 << 24

// neighborOffsets lists the 8-neighborhood in scan order: row offset outer,
// column offset inner. Cascade order depends on it.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

type Board struct {
	width, height int // in number of cells
	numMines      int
	cells         [][]Cell
}

func (board *Board) Width() int {
	return board.width
}

func (board *Board) Height() int {
	return board.height
}

func (board *Board) NumCells() int {
	return board.width * board.height
}

func (board *Board) NumMines() int {
	return board.numMines
}

func (board *Board) inBounds(row, col int) bool {
	return row >= 0 && col >= 0 && row < board.height && col < board.width
}

// CellAt returns nil for out-of-bounds coordinates
func (board *Board) CellAt(row, col int) *Cell {
	if board.inBounds(row, col) {
		return &board.cells[row][col]
	}
	return nil
}

// Neighbors returns the in-bounds 8-neighborhood of the cell, in scan order
func (board *Board) Neighbors(cell *Cell) []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := board.CellAt(cell.row+offset[0], cell.col+offset[1]); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func (board *Board) forEachCell(fn func(cell *Cell)) {
	for row := range board.cells {
		for col := range board.cells[row] {
			fn(&board.cells[row][col])
		}
	}
}

func (board *Board) allCleared() bool {
	for row := range board.cells {
		for col := range board.cells[row] {
			if board.cells[row][col].isCovered() {
				return false
			}
		}
	}
	return true
}

// String dumps every cell's content, one tab-separated line per row
func (board *Board) String() string {
	lines := make([]string, board.height)
	for row := range board.cells {
		values := make([]string, board.width)
		for col := range board.cells[row] {
			values[col] = board.cells[row][col].content.String()
		}
		lines[row] = strings.Join(values, "\t")
	}
	return strings.Join(lines, "\n")
}

func createBoard(width, height int) (*Board, error) {
	if width <= 0 || height <= 0 || width > MaxCells/height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "got %dx%d", width, height)
	}

	board := Board{
		width:  width,
		height: height,
		cells:  make([][]Cell, height),
	}

	for row := 0; row < height; row++ {
		board.cells[row] = make([]Cell, width)
		for col := 0; col < width; col++ {
			cell := &board.cells[row][col]
			cell.row, cell.col = row, col
		}
	}

	return &board, nil
}

// generateBoard draws once per cell, row-major, and makes a mine wherever the
// draw falls below mineiness. The mine count is whatever the draws produce.
func generateBoard(width, height int, mineiness float64, random RandomSource) (*Board, error) {
	board, err := createBoard(width, height)
	if err != nil {
		return nil, err
	}

	board.forEachCell(func(cell *Cell) {
		if random.Float64() < mineiness {
			cell.content = MineContent()
			board.numMines++
		}
	})
	board.fillNumbers()

	return board, nil
}

// fillNumbers derives adjacency counts once every mine is placed
func (board *Board) fillNumbers() {
	board.forEachCell(func(cell *Cell) {
		if cell.content.isMine {
			return
		}

		var numMines uint8
		for _, neighbor := range board.Neighbors(cell) {
			if neighbor.content.isMine {
				numMines++
			}
		}
		cell.content = SafeContent(numMines)
	})
}
