package game

import (
	"fmt"
	"strconv"
)

// Content is what lies under a cell: either a mine, or a count of the mines
// surrounding it. Never compare Contents against a magic count.
type Content struct {
	isMine   bool
	numMines uint8
}

func MineContent() Content {
	return Content{isMine: true}
}

func SafeContent(numMines uint8) Content {
	return Content{numMines: numMines}
}

func (content Content) IsMine() bool {
	return content.isMine
}

// NumMines returns the adjacency count, and false for a mine
func (content Content) NumMines() (uint8, bool) {
	if content.isMine {
		return 0, false
	}
	return content.numMines, true
}

func (content Content) String() string {
	if content.isMine {
		return MineGlyph
	}
	return strconv.Itoa(int(content.numMines))
}

type Cell struct {
	row, col int
	content  Content

	isRevealed, isFlagged bool
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.row, cell.col)
}

func (cell *Cell) Row() int {
	return cell.row
}

func (cell *Cell) Col() int {
	return cell.col
}

func (cell *Cell) Content() Content {
	return cell.content
}

func (cell *Cell) IsMine() bool {
	return cell.content.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// isCovered reports whether the cell still counts against a win
func (cell *Cell) isCovered() bool {
	return !(cell.isRevealed || cell.isFlagged)
}

func (cell *Cell) toggleFlagged() {
	cell.isFlagged = !cell.isFlagged
}

// DisplayValue is the glyph a renderer should show for the cell
func (cell *Cell) DisplayValue() string {
	switch {
	case cell.isRevealed:
		if cell.content.isMine {
			return MineGlyph
		}
		if cell.content.numMines == 0 {
			return BlankGlyph
		}
		return strconv.Itoa(int(cell.content.numMines))
	case cell.isFlagged:
		return FlagGlyph
	default:
		return BlankGlyph
	}
}

// CellView is a read-only copy of a cell, safe to hand out past the game lock
type CellView struct {
	Row, Col     int
	Revealed     bool
	Flagged      bool
	DisplayValue string

	// Adjacency count of a revealed safe cell; -1 while covered or for a mine
	Count int
}

func (cell *Cell) view() CellView {
	count := -1
	if cell.isRevealed && !cell.content.isMine {
		count = int(cell.content.numMines)
	}
	return CellView{
		Count:        count,
		Row:          cell.row,
		Col:          cell.col,
		Revealed:     cell.isRevealed,
		Flagged:      cell.isFlagged,
		DisplayValue: cell.DisplayValue(),
	}
}
